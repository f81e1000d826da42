package render

import (
	"github.com/dkoosis/nreport/pkg/htmlreport"
	"github.com/dkoosis/nreport/pkg/nunit"
)

// Summary describes one converted report.
type Summary struct {
	Report      string       `json:"report"`
	Output      string       `json:"output,omitempty"`
	Total       int          `json:"total"`
	Failures    int          `json:"failures"`
	NotRun      int          `json:"not_run"`
	SuccessRate string       `json:"success_rate"`
	Status      nunit.Status `json:"status"`
	Fixtures    []FixtureRow `json:"fixtures"`
}

// FixtureRow is one rendered fixture card.
type FixtureRow struct {
	Name      string       `json:"name"`
	Namespace string       `json:"namespace,omitempty"`
	Status    nunit.Status `json:"status"`
	Counts    nunit.Counts `json:"counts"`
	Reason    string       `json:"reason,omitempty"`
}

// Summarize builds the summary for report over the given fixtures, which
// should be the suites rendered as cards.
func Summarize(report *nunit.Report, fixtures []*nunit.Node) *Summary {
	s := &Summary{
		Report:      report.Name,
		Total:       report.Total,
		Failures:    report.Failures,
		NotRun:      report.NotRun,
		SuccessRate: htmlreport.SuccessRate(report.Total, report.Failures) + "%",
		Status:      nunit.Rollup(report.Root),
		Fixtures:    make([]FixtureRow, 0, len(fixtures)),
	}
	for _, f := range fixtures {
		s.Fixtures = append(s.Fixtures, FixtureRow{
			Name:      f.Name,
			Namespace: nunit.ResolveNamespace(f),
			Status:    nunit.Rollup(f),
			Counts:    nunit.Summarize(f),
			Reason:    f.Reason,
		})
	}
	return s
}
