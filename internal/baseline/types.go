// Package baseline records the known validation failures of a config tree
// so batch runs can fail only on regressions, the way lint baselines work.
package baseline

import (
	"fmt"
	"sort"
	"time"

	"configlint/internal/validator"
)

// Baseline is a named snapshot of every error fingerprint present in a
// validation run.
type Baseline struct {
	Name         string    `json:"name"`
	Fingerprints []string  `json:"fingerprints"`
	Timestamp    time.Time `json:"timestamp"`
}

// Summary is a lightweight view for listing baselines.
type Summary struct {
	Name      string    `json:"name"`
	Errors    int       `json:"errors"`
	Timestamp time.Time `json:"timestamp"`
}

// Fingerprint identifies one error stably across runs: source file, path
// into the document, and message.
func Fingerprint(source string, e validator.ValidationError) string {
	return fmt.Sprintf("%s:%s: %s", source, e.Path, e.Message)
}

// Collect builds the sorted fingerprint set for a batch of results.
// Warnings are not recorded; they never fail a run.
func Collect(results []validator.ValidationResult) []string {
	var fps []string
	for _, r := range results {
		for _, e := range r.Errors {
			fps = append(fps, Fingerprint(r.Source, e))
		}
	}
	sort.Strings(fps)
	return fps
}

// New creates a baseline from a batch of results.
func New(name string, results []validator.ValidationResult) Baseline {
	return Baseline{
		Name:         name,
		Fingerprints: Collect(results),
		Timestamp:    time.Now().UTC(),
	}
}
