package htmlreport

import (
	"strconv"

	"github.com/dkoosis/nreport/pkg/nunit"
)

// pageData is the view model passed to the body template.
type pageData struct {
	Summary  summaryView
	Fixtures []fixtureView
}

type summaryView struct {
	Name          string
	Total         int
	Failures      int
	Skipped       int
	FailuresClass string
	SkippedClass  string
	Date          string
	Time          string
	SuccessRate   string
}

type fixtureView struct {
	ID        string
	Name      string
	Namespace string
	Reason    string
	Counts    string
	Panel     string
	Link      *linkView
	Cases     []caseView
}

// linkView is the coloured link that opens a fixture overlay.
type linkView struct {
	Class string
	Icon  string
	Label string
}

type caseView struct {
	Name        string
	Panel       string // overlay colour
	PrintPanel  string // printable view colour
	Status      string
	AccordionID string
	Failure     *nunit.Failure
}

// panelClass maps a status to its panel colour; unknown statuses fall back to
// the neutral panel.
func panelClass(s nunit.Status) string {
	switch s {
	case nunit.StatusPass:
		return "panel-success"
	case nunit.StatusSkip:
		return "panel-info"
	case nunit.StatusFail:
		return "panel-danger"
	default:
		return "panel-default"
	}
}

func fixtureLink(s nunit.Status) *linkView {
	switch s {
	case nunit.StatusPass:
		return &linkView{Class: "text-success", Icon: "glyphicon-ok-sign", Label: "Success"}
	case nunit.StatusFail:
		return &linkView{Class: "text-danger", Icon: "glyphicon-exclamation-sign", Label: "Failed"}
	case nunit.StatusSkip:
		return &linkView{Class: "text-info", Icon: "glyphicon-asterisk", Label: "Skipped"}
	default:
		return nil
	}
}

// statusText is the wording used for a single case.
func statusText(s nunit.Status) string {
	switch s {
	case nunit.StatusFail:
		return "fail"
	case nunit.StatusSkip:
		return "skipped"
	default:
		return "pass"
	}
}

func dangerIf(n int) string {
	if n > 0 {
		return "text-danger"
	}
	return ""
}

// SuccessRate returns the displayed success percentage without the % sign:
// 100 minus the failure percentage rounded half-to-even to one decimal, or
// "100" when the report has no tests. A failure ratio that is a whole number
// prints without a decimal ("100", "0"); any other prints with one ("80.0",
// "66.7"). Integer arithmetic keeps the rounding exact.
func SuccessRate(total, failures int) string {
	if total <= 0 {
		return "100"
	}
	if failures%total == 0 {
		return strconv.Itoa(100 - failures/total*100)
	}
	num := int64(failures) * 1000
	den := int64(total)
	tenths, rem := num/den, num%den
	if rem < 0 {
		rem = -rem
	}
	switch {
	case 2*rem > den, 2*rem == den && tenths%2 != 0:
		if num < 0 {
			tenths--
		} else {
			tenths++
		}
	}
	return strconv.FormatFloat(float64(1000-tenths)/10, 'f', 1, 64)
}
