package params

import (
	"errors"
	"fmt"
	"strings"
)

// Severity classifies how serious a constraint violation is. Hard errors mean
// the value is unusable; warnings mean the value parsed but falls outside a
// documented range, and the hosting tool decides whether to proceed.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// ValidationError reports a value that fails its parameter's constraints.
type ValidationError struct {
	Section  string
	Name     string
	Value    string
	Reason   string
	Allowed  []string
	Severity Severity
}

func (e *ValidationError) Error() string {
	key := e.Name
	if e.Section != "" {
		key = e.Section + ":" + e.Name
	}
	if len(e.Allowed) > 0 {
		return fmt.Sprintf("%s: '%s' %s, must be one of: %s",
			key, e.Value, e.Reason, strings.Join(e.Allowed, ", "))
	}
	return fmt.Sprintf("%s: '%s' %s", key, e.Value, e.Reason)
}

// IsWarning reports whether err is a warning-severity ValidationError.
func IsWarning(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr) && verr.Severity == SeverityWarning
}

// FormatError reports a structural problem in the schema text: a value line
// outside any section, a duplicate key, an unrecognized type, or a default
// that does not satisfy its own declared kind.
type FormatError struct {
	Section string
	Key     string
	Line    int
	Reason  string
}

func (e *FormatError) Error() string {
	switch {
	case e.Section == "":
		return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
	case e.Key == "":
		return fmt.Sprintf("line %d: [%s]: %s", e.Line, e.Section, e.Reason)
	default:
		return fmt.Sprintf("line %d: [%s] %s: %s", e.Line, e.Section, e.Key, e.Reason)
	}
}

// LoadError aggregates every FormatError found in one load pass, so a single
// malformed parameter does not hide the others.
type LoadError struct {
	Errors []*FormatError
}

func (e *LoadError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msgs := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		msgs[i] = fe.Error()
	}
	return fmt.Sprintf("%d schema errors:\n  %s", len(e.Errors), strings.Join(msgs, "\n  "))
}

// NotFoundError reports a lookup of an unknown section or parameter name.
type NotFoundError struct {
	Section string
	Name    string
}

func (e *NotFoundError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("section not found: %s", e.Section)
	}
	return fmt.Sprintf("parameter not found: %s:%s", e.Section, e.Name)
}
