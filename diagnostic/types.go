package diagnostic

import (
	"fmt"
	"strings"
)

// Diagnostic codes.
const (
	CodeDefaultRules   = "default_rules"
	CodeSkipped        = "skipped_rule"
	CodeUnknownRule    = "unknown_rule"
	CodeUnknownTag     = "unknown_operator"
	CodeUnresolvedPath = "unresolved_path"
	CodeForcedValue    = "forced_value"
	CodePruned         = "pruned"
	CodeExtendsExports = "extends_exports"
	CodeExtAttr        = "ext_attr"
)

// Diagnostics holds all diagnostics from one evaluation.
type Diagnostics struct {
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Field is the target field this relates to (if any).
	Field string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, field string, suggestions ...string) {
	d.Warnings = append(d.Warnings, newDiagnostic(SeverityWarning, code, message, field, suggestions))
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, field string, suggestions ...string) {
	d.Infos = append(d.Infos, newDiagnostic(SeverityInfo, code, message, field, suggestions))
}

func newDiagnostic(severity Severity, code, message, field string, suggestions []string) Diagnostic {
	return Diagnostic{
		Severity:    severity,
		Code:        code,
		Message:     message,
		Field:       field,
		Suggestions: suggestions,
	}
}

// Len returns the total number of diagnostics.
func (d *Diagnostics) Len() int {
	return len(d.Warnings) + len(d.Infos)
}

// All returns every diagnostic, warnings first.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, d.Len())
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// ByCode returns the diagnostics with the given code.
func (d *Diagnostics) ByCode(code string) []Diagnostic {
	var out []Diagnostic

	for _, diag := range d.All() {
		if diag.Code == code {
			out = append(out, diag)
		}
	}

	return out
}

// ForField returns the diagnostics recorded for a target field.
func (d *Diagnostics) ForField(field string) []Diagnostic {
	var out []Diagnostic

	for _, diag := range d.All() {
		if diag.Field == field {
			out = append(out, diag)
		}
	}

	return out
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if d.Field != "" {
		return d.Field + ": " + msg
	}

	return msg
}
