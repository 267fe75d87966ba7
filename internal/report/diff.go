package report

import (
	"fmt"
	"strings"

	"configlint/internal/baseline"
)

// FormatDiff renders a baseline comparison for terminal output.
func FormatDiff(d baseline.Diff) string {
	var sb strings.Builder

	if len(d.Fixed) > 0 {
		fmt.Fprintf(&sb, "%s %d error(s) fixed since baseline '%s':\n", passMark.Sprint("✓"), len(d.Fixed), d.BaselineName)
		for _, fp := range d.Fixed {
			fmt.Fprintf(&sb, "  - %s\n", fp)
		}
	}

	if d.HasRegressions() {
		fmt.Fprintf(&sb, "%s %d new error(s) since baseline '%s':\n", failMark.Sprint("✗"), len(d.Regressions), d.BaselineName)
		for _, fp := range d.Regressions {
			fmt.Fprintf(&sb, "  + %s\n", fp)
		}
	} else {
		fmt.Fprintf(&sb, "%s No new errors since baseline '%s'\n", passMark.Sprint("✓"), d.BaselineName)
	}

	return sb.String()
}

// FormatDiffCI renders a baseline comparison as GitHub Actions annotations.
func FormatDiffCI(d baseline.Diff) string {
	var sb strings.Builder

	for _, fp := range d.Regressions {
		fmt.Fprintf(&sb, "::error::New validation error since baseline '%s': %s\n", d.BaselineName, fp)
	}

	if d.HasRegressions() {
		fmt.Fprintf(&sb, "\n✗ %d new error(s) since baseline '%s'\n", len(d.Regressions), d.BaselineName)
	}

	return sb.String()
}
