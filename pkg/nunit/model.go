package nunit

import (
	"strings"
	"time"
)

// Kind distinguishes suites from cases.
type Kind int

const (
	KindSuite Kind = iota
	KindCase
)

func (k Kind) String() string {
	if k == KindCase {
		return "case"
	}
	return "suite"
}

// Failure carries the detail of a failed case.
type Failure struct {
	Message    string
	StackTrace string
}

// Node is a suite or a case in the report tree. Nodes are built by the loader
// and never modified afterwards.
type Node struct {
	Kind     Kind
	Name     string
	Children []*Node // suites only

	// Suite fields.
	Type   string // test-suite type attribute, e.g. "Namespace", "TestFixture"
	Reason string // reason/message, "" when absent

	// Case fields.
	Success  string // raw success attribute, lower-cased
	Passed   bool
	Executed bool
	Failure  *Failure

	parent *Node
}

// Parent returns the enclosing suite, or nil for a top-level suite.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

// IsCase reports whether n is a test case.
func (n *Node) IsCase() bool { return n != nil && n.Kind == KindCase }

// IsNamespace reports whether n is a namespace grouping suite.
func (n *Node) IsNamespace() bool {
	return n != nil && n.Kind == KindSuite && strings.EqualFold(n.Type, TypeNamespace)
}

// ShortName returns the part of the name after the final '.'.
func (n *Node) ShortName() string {
	return ShortName(n.Name)
}

// ShortName strips everything up to and including the final '.' of name.
func ShortName(name string) string {
	return name[strings.LastIndexByte(name, '.')+1:]
}

// Report is the root of a loaded test-results document.
type Report struct {
	Name      string
	Total     int
	Failures  int
	NotRun    int
	Timestamp time.Time

	// Root is a synthetic suite whose children are the top-level suites.
	Root *Node
}

// Fixtures returns the top-level suites in document order.
func (r *Report) Fixtures() []*Node {
	if r == nil || r.Root == nil {
		return nil
	}
	var out []*Node
	for _, c := range r.Root.Children {
		if c.Kind == KindSuite {
			out = append(out, c)
		}
	}
	return out
}

// Suites returns every suite in the report in document order.
func (r *Report) Suites() []*Node {
	if r == nil || r.Root == nil {
		return nil
	}
	var out []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		for _, c := range n.Children {
			if c.Kind == KindSuite {
				out = append(out, c)
				walk(c)
			}
		}
	}
	walk(r.Root)
	return out
}
