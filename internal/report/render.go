// Package report renders validation results for terminals, CI annotations,
// and JSON consumers. Rendering is kept out of the validator so results
// stay pure data.
package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"configlint/internal/validator"
)

var (
	passMark  = color.New(color.FgGreen)
	failMark  = color.New(color.FgRed)
	warnMark  = color.New(color.FgYellow)
	pathStyle = color.New(color.Bold)
)

// DisableColor turns off ANSI styling for all renderers. Color is also
// disabled automatically when stdout is not a terminal.
func DisableColor() {
	color.NoColor = true
}

// FormatCLI renders one result for terminal output.
func FormatCLI(result validator.ValidationResult) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Validating: %s\n", result.Source)
	kind := "unknown"
	if result.Kind != "" {
		kind = string(result.Kind)
	}
	fmt.Fprintf(&sb, "Detected type: %s\n", kind)

	for _, e := range result.Errors {
		fmt.Fprintf(&sb, "  %s %s: %s\n", failMark.Sprint("[ERROR]"), pathStyle.Sprint(e.Path), e.Message)
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(&sb, "  %s %s: %s\n", warnMark.Sprint("[WARNING]"), pathStyle.Sprint(w.Path), w.Message)
	}

	if result.Valid() {
		fmt.Fprintf(&sb, "%s Validation passed", passMark.Sprint("✓"))
		if n := len(result.Warnings); n > 0 {
			fmt.Fprintf(&sb, " (%d warning(s))", n)
		}
		sb.WriteString("\n")
	} else {
		fmt.Fprintf(&sb, "%s Validation failed (%d error(s))\n", failMark.Sprint("✗"), len(result.Errors))
	}

	return sb.String()
}

// FormatCI renders one result as GitHub Actions annotations so findings
// surface inline on pull requests.
func FormatCI(result validator.ValidationResult) string {
	var sb strings.Builder

	for _, e := range result.Errors {
		fmt.Fprintf(&sb, "::error file=%s::%s: %s\n", result.Source, e.Path, e.Message)
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(&sb, "::warning file=%s::%s: %s\n", result.Source, w.Path, w.Message)
	}

	if !result.Valid() {
		fmt.Fprintf(&sb, "\n✗ %s: validation failed (%d error(s))\n", result.Source, len(result.Errors))
	}

	return sb.String()
}

// FormatSummary renders the closing block of a batch run: one line per
// file, then totals and the list of failed files.
func FormatSummary(results []validator.ValidationResult) string {
	var sb strings.Builder

	totalErrors := 0
	totalWarnings := 0
	var failed []string

	for _, r := range results {
		fmt.Fprintf(&sb, "%s: ", r.Source)
		if r.Valid() {
			sb.WriteString(passMark.Sprint("✓ OK"))
			if n := len(r.Warnings); n > 0 {
				fmt.Fprintf(&sb, " (%d warning(s))", n)
			}
			sb.WriteString("\n")
		} else {
			fmt.Fprintf(&sb, "%s (%d error(s))\n", failMark.Sprint("✗ FAILED"), len(r.Errors))
			failed = append(failed, r.Source)
			for _, e := range r.Errors {
				fmt.Fprintf(&sb, "    %s: %s\n", e.Path, e.Message)
			}
		}
		totalErrors += len(r.Errors)
		totalWarnings += len(r.Warnings)
	}

	sb.WriteString(strings.Repeat("=", 40) + "\n")
	fmt.Fprintf(&sb, "Total: %d file(s), %d error(s), %d warning(s)\n", len(results), totalErrors, totalWarnings)

	if len(failed) > 0 {
		sb.WriteString("\nFailed files:\n")
		for _, f := range failed {
			fmt.Fprintf(&sb, "  - %s\n", f)
		}
	}

	return sb.String()
}
