// Command configlint validates game config files (YAML/JSON) against the
// schema registry for Unity ScriptableObject data: eras, unit archetypes,
// weapon stats, and upgrade definitions.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"configlint/internal/baseline"
	"configlint/internal/batch"
	"configlint/internal/logging"
	"configlint/internal/report"
	"configlint/internal/schema"
	"configlint/internal/validator"
)

func main() {
	os.Exit(run(os.Args[1:], os.Environ(), os.Stdout, os.Stderr))
}

// options carries the global flags shared by all subcommands.
type options struct {
	jsonOut    bool
	ciMode     bool
	reportFile string
}

// run orchestrates the full execution flow and returns an exit code:
// 0 success, 1 validation errors or regressions, 2 usage errors,
// 3 I/O errors. Separated from main() to enable testing.
func run(args, environ []string, stdout, stderr io.Writer) int {
	app := kingpin.New("configlint", "Schema validator for game config files destined to become ScriptableObjects.")
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)
	app.Terminate(nil)

	jsonOut := app.Flag("json", "Emit results as JSON.").Bool()
	ciMode := app.Flag("ci", "Emit GitHub Actions annotations.").Bool()
	noColor := app.Flag("no-color", "Disable colored output.").Bool()
	verbose := app.Flag("verbose", "Log per-file progress to stderr.").Short('v').Bool()
	reportFile := app.Flag("report-file", "Write a JSON report to this path.").PlaceHolder("PATH").String()

	validateCmd := app.Command("validate", "Validate one or more config files.")
	validateFiles := validateCmd.Arg("files", "Config files to validate.").Required().Strings()

	validateAllCmd := app.Command("validate-all", "Validate every config file under a directory.")
	validateAllDir := validateAllCmd.Arg("directory", "Directory containing configs.").Required().String()
	writeBaselineName := validateAllCmd.Flag("write-baseline", "Record current errors as a named baseline.").PlaceHolder("NAME").String()
	checkBaselineName := validateAllCmd.Flag("baseline", "Fail only on errors not present in this baseline.").PlaceHolder("NAME").String()

	schemaCmd := app.Command("schema", "Print the schema for a config type.")
	schemaType := schemaCmd.Arg("type", "Config type (EraConfig, UnitArchetype, WeaponStats, UpgradeDefinition).").String()

	baselineCmd := app.Command("baseline", "Manage recorded baselines.")
	baselineListCmd := baselineCmd.Command("list", "List stored baselines.")
	baselineShowCmd := baselineCmd.Command("show", "Show a baseline.")
	baselineShowName := baselineShowCmd.Arg("name", "Baseline name.").Required().String()
	baselineDeleteCmd := baselineCmd.Command("delete", "Delete a baseline.")
	baselineDeleteName := baselineDeleteCmd.Arg("name", "Baseline name.").Required().String()

	cmd, err := app.Parse(args)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 2
	}

	if *noColor {
		report.DisableColor()
	}

	logger, err := logging.New(*verbose)
	if err != nil {
		fmt.Fprintf(stderr, "Error: cannot initialize logger: %v\n", err)
		return 1
	}
	defer func() {
		_ = logger.Sync()
	}()

	opts := options{
		jsonOut:    *jsonOut,
		ciMode:     *ciMode || getEnvBool(environ, "CI"),
		reportFile: *reportFile,
	}

	store := baseline.NewStore(baseline.ResolveDir(environ))

	switch cmd {
	case validateCmd.FullCommand():
		return runValidate(*validateFiles, opts, stdout, stderr)
	case validateAllCmd.FullCommand():
		return runValidateAll(*validateAllDir, *writeBaselineName, *checkBaselineName, opts, store, logger, stdout, stderr)
	case schemaCmd.FullCommand():
		return runSchema(*schemaType, stdout, stderr)
	case baselineListCmd.FullCommand():
		return runBaselineList(store, opts, stdout, stderr)
	case baselineShowCmd.FullCommand():
		return runBaselineShow(store, *baselineShowName, opts, stdout, stderr)
	case baselineDeleteCmd.FullCommand():
		return runBaselineDelete(store, *baselineDeleteName, stdout, stderr)
	}

	return 0
}

func runValidate(files []string, opts options, stdout, stderr io.Writer) int {
	var results []validator.ValidationResult
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			fmt.Fprintf(stderr, "Error: file not found: %s\n", file)
			return 3
		}
		results = append(results, batch.ValidateFile(file))
	}

	if code := emitResults(results, opts, stdout, stderr); code != 0 {
		return code
	}

	for _, r := range results {
		if !r.Valid() {
			return 1
		}
	}
	return 0
}

func runValidateAll(dir, writeName, checkName string, opts options, store *baseline.Store, logger *zap.Logger, stdout, stderr io.Writer) int {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		fmt.Fprintf(stderr, "Error: directory not found: %s\n", dir)
		return 3
	}

	runner := batch.NewRunner(logger)
	results, err := runner.Run(dir)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 3
	}

	if len(results) == 0 {
		fmt.Fprintln(stdout, "No config files found")
		return 0
	}

	if code := emitResults(results, opts, stdout, stderr); code != 0 {
		return code
	}

	if writeName != "" {
		b := baseline.New(writeName, results)
		if err := store.Save(b); err != nil {
			fmt.Fprintf(stderr, "Error: cannot save baseline: %v\n", err)
			return 3
		}
		fmt.Fprintf(stdout, "Recorded baseline '%s' with %d error(s)\n", writeName, len(b.Fingerprints))
		if checkName == "" {
			// Recording a baseline accepts the current failures.
			return 0
		}
	}

	if checkName != "" {
		b, err := store.Load(checkName)
		if err != nil {
			if err == baseline.ErrBaselineNotFound {
				fmt.Fprintf(stderr, "Error: baseline not found: %s\n", checkName)
			} else {
				fmt.Fprintf(stderr, "Error: cannot load baseline: %v\n", err)
			}
			return 3
		}

		diff := baseline.Compare(b, results)
		switch {
		case opts.jsonOut:
			data, err := json.MarshalIndent(diff, "", "  ")
			if err != nil {
				fmt.Fprintf(stderr, "Error: cannot serialize diff: %v\n", err)
				return 1
			}
			fmt.Fprintln(stdout, string(data))
		case opts.ciMode:
			fmt.Fprint(stderr, report.FormatDiffCI(diff))
		default:
			fmt.Fprint(stdout, report.FormatDiff(diff))
		}

		if diff.HasRegressions() {
			return 1
		}
		// Baselined errors are tolerated; only regressions fail the run.
		return 0
	}

	for _, r := range results {
		if !r.Valid() {
			return 1
		}
	}
	return 0
}

// emitResults renders results in the selected format and writes the report
// file when requested. Returns non-zero only on I/O failure.
func emitResults(results []validator.ValidationResult, opts options, stdout, stderr io.Writer) int {
	switch {
	case opts.jsonOut:
		var out string
		var err error
		if len(results) == 1 {
			out, err = report.FormatJSON(results[0])
		} else {
			out, err = report.FormatJSONAll(results)
		}
		if err != nil {
			fmt.Fprintf(stderr, "Error: cannot serialize results: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, out)

	case opts.ciMode:
		for _, r := range results {
			fmt.Fprint(stderr, report.FormatCI(r))
		}

	case len(results) == 1:
		fmt.Fprint(stdout, report.FormatCLI(results[0]))

	default:
		fmt.Fprint(stdout, report.FormatSummary(results))
	}

	if opts.reportFile != "" {
		if err := report.WriteReport(opts.reportFile, results); err != nil {
			fmt.Fprintf(stderr, "Error: cannot write report: %s: %v\n", opts.reportFile, err)
			return 3
		}
	}

	return 0
}

func runSchema(typeName string, stdout, stderr io.Writer) int {
	if typeName == "" {
		fmt.Fprintln(stdout, "Available types:", strings.Join(schema.Kinds(), ", "))
		return 0
	}

	kind, ok := schema.KindByName(typeName)
	if !ok {
		fmt.Fprintf(stderr, "Unknown config type: %s\n", typeName)
		fmt.Fprintln(stderr, "Available types:", strings.Join(schema.Kinds(), ", "))
		return 2
	}

	s, _ := schema.Lookup(kind)
	fmt.Fprint(stdout, report.DescribeSchema(s))
	return 0
}

func runBaselineList(store *baseline.Store, opts options, stdout, stderr io.Writer) int {
	summaries, err := store.List()
	if err != nil {
		fmt.Fprintf(stderr, "Error: cannot list baselines: %v\n", err)
		return 3
	}

	if len(summaries) == 0 {
		if opts.jsonOut {
			fmt.Fprintln(stdout, "[]")
		} else {
			fmt.Fprintln(stdout, "No baselines found")
		}
		return 0
	}

	if opts.jsonOut {
		data, err := json.MarshalIndent(summaries, "", "  ")
		if err != nil {
			fmt.Fprintf(stderr, "Error: cannot serialize baselines: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, string(data))
		return 0
	}

	for _, s := range summaries {
		fmt.Fprintf(stdout, "%s  %d error(s)  %s\n", s.Name, s.Errors, s.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return 0
}

func runBaselineShow(store *baseline.Store, name string, opts options, stdout, stderr io.Writer) int {
	b, err := store.Load(name)
	if err != nil {
		if err == baseline.ErrBaselineNotFound {
			fmt.Fprintf(stderr, "Error: baseline not found: %s\n", name)
		} else {
			fmt.Fprintf(stderr, "Error: cannot load baseline: %v\n", err)
		}
		return 3
	}

	if opts.jsonOut {
		data, err := json.MarshalIndent(b, "", "  ")
		if err != nil {
			fmt.Fprintf(stderr, "Error: cannot serialize baseline: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, string(data))
		return 0
	}

	fmt.Fprintf(stdout, "Name:      %s\n", b.Name)
	fmt.Fprintf(stdout, "Recorded:  %s\n", b.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(stdout, "Errors:    %d\n", len(b.Fingerprints))
	for _, fp := range b.Fingerprints {
		fmt.Fprintf(stdout, "  %s\n", fp)
	}
	return 0
}

func runBaselineDelete(store *baseline.Store, name string, stdout, stderr io.Writer) int {
	if err := store.Delete(name); err != nil {
		if err == baseline.ErrBaselineNotFound {
			fmt.Fprintf(stderr, "Error: baseline not found: %s\n", name)
		} else {
			fmt.Fprintf(stderr, "Error: cannot delete baseline: %v\n", err)
		}
		return 3
	}
	fmt.Fprintf(stdout, "Deleted baseline: %s\n", name)
	return 0
}

// getEnvBool checks if an environment variable is set to a truthy value.
func getEnvBool(environ []string, name string) bool {
	prefix := name + "="
	for _, env := range environ {
		if strings.HasPrefix(env, prefix) {
			val := strings.ToLower(strings.TrimPrefix(env, prefix))
			return val == "true" || val == "1" || val == "yes"
		}
	}
	return false
}
