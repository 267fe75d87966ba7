// Package batch validates every config file under a directory. Files are
// independent: a file that fails to parse contributes a failed result and
// the walk continues.
package batch

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"configlint/internal/document"
	"configlint/internal/validator"
)

// Runner walks directories and validates each config file it finds.
type Runner struct {
	logger *zap.Logger
}

// NewRunner creates a batch runner. A nil logger disables diagnostics.
func NewRunner(logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{logger: logger}
}

// Run validates every YAML/JSON file under dir, in lexical walk order.
// Directories named test/tests and dot-directories are skipped, since test
// fixtures are allowed to be deliberately malformed.
func (r *Runner) Run(dir string) ([]validator.ValidationResult, error) {
	var results []validator.ValidationResult

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			name := d.Name()
			if path != dir && (name == "test" || name == "tests" || strings.HasPrefix(name, ".")) {
				r.logger.Debug("skipping directory", zap.String("dir", path))
				return filepath.SkipDir
			}
			return nil
		}

		if _, err := document.FormatForPath(path); err != nil {
			return nil
		}

		r.logger.Debug("validating file", zap.String("file", path))
		results = append(results, ValidateFile(path))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}

	return results, nil
}

// ValidateFile loads and validates one config file. Load failures become a
// single error at the document root rather than an aborted run.
func ValidateFile(path string) validator.ValidationResult {
	value, err := document.Load(path)
	if err != nil {
		result := validator.ValidationResult{Source: path}
		result.AddError("file", err.Error())
		return result
	}

	return validator.ValidateValue(value, path)
}
