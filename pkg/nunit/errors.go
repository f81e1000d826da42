package nunit

import "fmt"

// MalformedReportError reports a structurally invalid report: a required
// field is missing, a summary number or the timestamp cannot be parsed, or the
// XML itself is broken. It is always fatal for the render.
type MalformedReportError struct {
	Element string // element the problem was found on, e.g. "test-case"
	Field   string // attribute or child name, "" for document-level problems
	Value   string // offending value, if any
	Err     error  // underlying cause, if any
}

func (e *MalformedReportError) Error() string {
	msg := "malformed report"
	switch {
	case e.Field != "" && e.Value != "":
		msg += fmt.Sprintf(": %s %q has invalid value %q", e.Element, e.Field, e.Value)
	case e.Field != "":
		msg += fmt.Sprintf(": %s is missing required %q", e.Element, e.Field)
	case e.Element != "":
		msg += ": " + e.Element
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedReportError) Unwrap() error { return e.Err }

func missing(element, field string) error {
	return &MalformedReportError{Element: element, Field: field}
}

func invalid(element, field, value string, err error) error {
	return &MalformedReportError{Element: element, Field: field, Value: value, Err: err}
}
