package baseline

import (
	"sort"

	"configlint/internal/validator"
)

// Diff compares a current run against a recorded baseline. Regressions are
// errors absent from the baseline; Fixed lists baseline entries no longer
// reproduced. Both are sorted.
type Diff struct {
	BaselineName string   `json:"baselineName"`
	Regressions  []string `json:"regressions"`
	Fixed        []string `json:"fixed"`
}

// HasRegressions reports whether the current run introduced new errors.
func (d Diff) HasRegressions() bool {
	return len(d.Regressions) > 0
}

// Compare diffs the current results against a baseline.
func Compare(b Baseline, results []validator.ValidationResult) Diff {
	recorded := make(map[string]bool, len(b.Fingerprints))
	for _, fp := range b.Fingerprints {
		recorded[fp] = true
	}

	current := Collect(results)
	seen := make(map[string]bool, len(current))

	diff := Diff{BaselineName: b.Name}
	for _, fp := range current {
		seen[fp] = true
		if !recorded[fp] {
			diff.Regressions = append(diff.Regressions, fp)
		}
	}
	for _, fp := range b.Fingerprints {
		if !seen[fp] {
			diff.Fixed = append(diff.Fixed, fp)
		}
	}

	sort.Strings(diff.Regressions)
	sort.Strings(diff.Fixed)
	return diff
}
