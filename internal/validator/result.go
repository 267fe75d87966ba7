package validator

import "configlint/internal/schema"

// Severity classifies a finding. Errors fail validation; warnings never do.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ValidationError is a single finding located by a dotted/indexed path into
// the document (e.g. "archetypes[2].base_health").
type ValidationError struct {
	Path     string   `json:"path"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// ValidationResult collects every finding for one document. It is built up
// during a single Validate call and read-only afterwards.
type ValidationResult struct {
	Source   string            `json:"source"`
	Kind     schema.Kind       `json:"kind,omitempty"`
	Errors   []ValidationError `json:"errors"`
	Warnings []ValidationError `json:"warnings"`
}

// Valid reports whether the document passed. Warnings do not affect validity.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// AddError appends a fatal finding.
func (r *ValidationResult) AddError(path, message string) {
	r.Errors = append(r.Errors, ValidationError{Path: path, Message: message, Severity: SeverityError})
}

// AddWarning appends a non-fatal finding.
func (r *ValidationResult) AddWarning(path, message string) {
	r.Warnings = append(r.Warnings, ValidationError{Path: path, Message: message, Severity: SeverityWarning})
}
