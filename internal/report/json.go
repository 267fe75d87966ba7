package report

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"configlint/internal/validator"
)

// Entry is the JSON projection of a single result, with validity
// precomputed for consumers that do not want to count errors themselves.
type Entry struct {
	Source   string                      `json:"source"`
	Kind     string                      `json:"kind,omitempty"`
	Valid    bool                        `json:"valid"`
	Errors   []validator.ValidationError `json:"errors"`
	Warnings []validator.ValidationError `json:"warnings"`
}

func toEntry(r validator.ValidationResult) Entry {
	return Entry{
		Source:   r.Source,
		Kind:     string(r.Kind),
		Valid:    r.Valid(),
		Errors:   append([]validator.ValidationError{}, r.Errors...),
		Warnings: append([]validator.ValidationError{}, r.Warnings...),
	}
}

// FormatJSON serializes one result.
func FormatJSON(result validator.ValidationResult) (string, error) {
	data, err := json.MarshalIndent(toEntry(result), "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatJSONAll serializes a batch of results as a JSON array.
func FormatJSONAll(results []validator.ValidationResult) (string, error) {
	entries := make([]Entry, len(results))
	for i, r := range results {
		entries[i] = toEntry(r)
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteReport writes the JSON report to a file, creating parent directories
// as needed.
func WriteReport(path string, results []validator.ValidationResult) error {
	out, err := FormatJSONAll(results)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return os.WriteFile(path, []byte(out+"\n"), 0644)
}
