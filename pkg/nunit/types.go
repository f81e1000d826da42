// Package nunit loads NUnit 2.x XML test-results reports into an immutable
// suite/case tree and aggregates statuses over it.
package nunit

import (
	"encoding/xml"
	"strings"
)

// Element names and attribute values recognised in an NUnit 2.x report.
const (
	elemSuite      = "test-suite"
	elemCase       = "test-case"
	elemReason     = "reason"
	elemFailure    = "failure"
	elemMessage    = "message"
	elemStackTrace = "stack-trace"

	// TypeNamespace is the test-suite type that marks a namespace grouping node.
	TypeNamespace = "namespace"
)

// xmlElement is a generic XML element that keeps attributes and children in
// document order. NUnit nests suites and cases inside wrapper elements such as
// <results>, so the loader walks this tree instead of binding fixed structs.
type xmlElement struct {
	XMLName  xml.Name
	Attrs    []xml.Attr   `xml:",any,attr"`
	Children []xmlElement `xml:",any"`
	Text     string       `xml:",chardata"`
}

// attr returns the named attribute value and whether it was present.
func (e *xmlElement) attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// child returns the first direct child with the given local name.
func (e *xmlElement) child(name string) *xmlElement {
	for i := range e.Children {
		if e.Children[i].XMLName.Local == name {
			return &e.Children[i]
		}
	}
	return nil
}

// childText returns the trimmed text of e/<name>, or "" when absent.
func (e *xmlElement) childText(name string) (string, bool) {
	c := e.child(name)
	if c == nil {
		return "", false
	}
	return strings.TrimSpace(c.Text), true
}
