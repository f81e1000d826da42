package nunit

import "fmt"

// Status is the tri-state verdict of a case or subtree.
type Status string

const (
	StatusPass    Status = "pass"
	StatusFail    Status = "fail"
	StatusSkip    Status = "skip"
	StatusUnknown Status = ""
)

// Cases returns the case descendants of n in document order.
func Cases(n *Node) []*Node {
	var out []*Node
	walkCases(n, func(c *Node) bool {
		out = append(out, c)
		return true
	})
	return out
}

// walkCases visits case descendants depth-first until visit returns false.
func walkCases(n *Node, visit func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if n.IsCase() {
		return visit(n)
	}
	for _, c := range n.Children {
		if !walkCases(c, visit) {
			return false
		}
	}
	return true
}

// Rollup returns the status of the subtree rooted at n. The first failing
// case decides Fail and stops the scan; a case that was not executed only
// makes Skip tentative, so a later failure still wins. A subtree without
// cases is Pass.
func Rollup(n *Node) Status {
	status := StatusPass
	walkCases(n, func(c *Node) bool {
		if !c.Passed {
			status = StatusFail
			return false
		}
		if !c.Executed {
			status = StatusSkip
		}
		return true
	})
	return status
}

// Classify returns the status of a single case: fail before skip before pass.
func Classify(c *Node) Status {
	switch {
	case !c.Passed:
		return StatusFail
	case !c.Executed:
		return StatusSkip
	default:
		return StatusPass
	}
}

// CaseVisual returns the status used to colour a case panel in the detail
// overlay. Unlike Classify a case that never ran is shown as skipped even when
// marked unsuccessful, and success values other than true/false/ignored map to
// StatusUnknown.
func CaseVisual(c *Node) Status {
	switch c.Success {
	case "true":
		if c.Executed {
			return StatusPass
		}
		return StatusSkip
	case "false":
		if c.Executed {
			return StatusFail
		}
		return StatusSkip
	case "ignored":
		return StatusSkip
	default:
		return StatusUnknown
	}
}

// PrintedCaseVisual returns the status used to colour a case panel in the
// printable view. It looks at execution only for unsuccessful cases: a
// successful case is Pass even if it never ran, and "ignored" is unknown here.
func PrintedCaseVisual(c *Node) Status {
	switch c.Success {
	case "true":
		return StatusPass
	case "false":
		if c.Executed {
			return StatusFail
		}
		return StatusSkip
	default:
		return StatusUnknown
	}
}

// Counts tallies cases by Classify.
type Counts struct {
	Pass int `json:"pass"`
	Fail int `json:"fail"`
	Skip int `json:"skip"`
}

// Total returns the number of classified cases.
func (c Counts) Total() int { return c.Pass + c.Fail + c.Skip }

func (c Counts) String() string {
	return fmt.Sprintf("p:%d / f:%d / s:%d", c.Pass, c.Fail, c.Skip)
}

// Summarize classifies every case descendant of n.
func Summarize(n *Node) Counts {
	var counts Counts
	walkCases(n, func(c *Node) bool {
		switch Classify(c) {
		case StatusFail:
			counts.Fail++
		case StatusSkip:
			counts.Skip++
		default:
			counts.Pass++
		}
		return true
	})
	return counts
}
