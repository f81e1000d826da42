// Package htmlreport renders a loaded NUnit report as a self-contained HTML
// document: a summary panel, one status card per fixture with a printable
// view and a detail overlay, wrapped in a shell carrying the page assets.
package htmlreport

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/dkoosis/nreport/pkg/nunit"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// FixtureMode selects which suites are rendered as cards.
type FixtureMode string

const (
	// FixturesTopLevel renders the immediate children of the report root.
	FixturesTopLevel FixtureMode = "top"
	// FixturesAll renders every suite in document order.
	FixturesAll FixtureMode = "all"
)

// ParseFixtureMode validates a fixture mode name.
func ParseFixtureMode(s string) (FixtureMode, error) {
	switch FixtureMode(s) {
	case FixturesTopLevel, FixturesAll:
		return FixtureMode(s), nil
	default:
		return "", fmt.Errorf("unknown fixture mode %q (expected top or all)", s)
	}
}

// Options controls rendering.
type Options struct {
	Title      string
	Fixtures   FixtureMode
	DateLayout string // Go time layout for the summary date
	TimeLayout string // Go time layout for the summary time
	Assets     Assets
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Title:      "Results",
		Fixtures:   FixturesTopLevel,
		DateLayout: "2 Jan",
		TimeLayout: "15:04",
		Assets:     DefaultAssets(),
	}
}

// Renderer turns reports into HTML documents. A Renderer holds no state
// between calls and may be reused.
type Renderer struct {
	opts Options
}

// New creates a renderer. Empty fields of opts take their defaults.
func New(opts Options) *Renderer {
	def := DefaultOptions()
	if opts.Title == "" {
		opts.Title = def.Title
	}
	if opts.Fixtures == "" {
		opts.Fixtures = def.Fixtures
	}
	if opts.DateLayout == "" {
		opts.DateLayout = def.DateLayout
	}
	if opts.TimeLayout == "" {
		opts.TimeLayout = def.TimeLayout
	}
	if opts.Assets == (Assets{}) {
		opts.Assets = def.Assets
	}
	return &Renderer{opts: opts}
}

// Render returns the complete document for report.
func (r *Renderer) Render(report *nunit.Report) (string, error) {
	body, err := r.RenderBody(report)
	if err != nil {
		return "", err
	}
	shell := Shell{Title: r.opts.Title, Assets: r.opts.Assets}
	return shell.Wrap(body)
}

// RenderBody returns the summary panel and fixture cards without the shell.
func (r *Renderer) RenderBody(report *nunit.Report) (string, error) {
	if report == nil {
		return "", fmt.Errorf("render: nil report")
	}

	data := pageData{Summary: r.summary(report)}
	ids := newIDSequence("modal")
	for _, fixture := range r.Fixtures(report) {
		data.Fixtures = append(data.Fixtures, buildFixture(fixture, ids.Next(fixture.Name)))
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "body", data); err != nil {
		return "", fmt.Errorf("render body: %w", err)
	}
	return buf.String(), nil
}

// Fixtures returns the suites rendered as cards under the configured mode.
func (r *Renderer) Fixtures(report *nunit.Report) []*nunit.Node {
	if r.opts.Fixtures == FixturesAll {
		return report.Suites()
	}
	return report.Fixtures()
}

func (r *Renderer) summary(report *nunit.Report) summaryView {
	return summaryView{
		Name:          report.Name,
		Total:         report.Total,
		Failures:      report.Failures,
		Skipped:       report.NotRun,
		FailuresClass: dangerIf(report.Failures),
		SkippedClass:  dangerIf(report.NotRun),
		Date:          report.Timestamp.Format(r.opts.DateLayout),
		Time:          report.Timestamp.Format(r.opts.TimeLayout),
		SuccessRate:   SuccessRate(report.Total, report.Failures),
	}
}

func buildFixture(fixture *nunit.Node, id string) fixtureView {
	status := nunit.Rollup(fixture)
	view := fixtureView{
		ID:        id,
		Name:      fixture.Name,
		Namespace: nunit.ResolveNamespace(fixture),
		Reason:    fixture.Reason,
		Counts:    nunit.Summarize(fixture).String(),
		Panel:     panelClass(status),
		Link:      fixtureLink(status),
	}
	for i, c := range nunit.Cases(fixture) {
		view.Cases = append(view.Cases, caseView{
			Name:        c.ShortName(),
			Panel:       panelClass(nunit.CaseVisual(c)),
			PrintPanel:  panelClass(nunit.PrintedCaseVisual(c)),
			Status:      statusText(nunit.Classify(c)),
			AccordionID: fmt.Sprintf("%s_case-%d", id, i),
			Failure:     c.Failure,
		})
	}
	return view
}
