package htmlreport

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/nreport/pkg/nunit"
)

func loadReport(t *testing.T, doc string) *nunit.Report {
	t.Helper()
	report, err := nunit.ReadBytes([]byte(doc))
	require.NoError(t, err)
	return report
}

func renderBody(t *testing.T, opts Options, doc string) string {
	t.Helper()
	body, err := New(opts).RenderBody(loadReport(t, doc))
	require.NoError(t, err)
	return body
}

func TestSuccessRate(t *testing.T) {
	tests := []struct {
		total, failures int
		want            string
	}{
		{10, 2, "80.0"},
		{0, 0, "100"},
		{0, 3, "100"},
		{1, 0, "100"},
		{7, 0, "100"},
		{2, 2, "0"},
		{2, 1, "50.0"},
		{4, 1, "75.0"},
		{3, 1, "66.7"},
		{8, 1, "87.5"},
		{16, 1, "93.8"},
		{16, 3, "81.2"},
		{4, 4, "0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SuccessRate(tt.total, tt.failures), "total=%d failures=%d", tt.total, tt.failures)
	}
}

func TestRenderBody_SinglePassingFixture(t *testing.T) {
	doc := `<test-results name="Suite.dll" total="1" failures="0" not-run="0" date="2014-03-11" time="09:41:07">
  <test-suite type="TestFixture" name="MathTests">
    <results>
      <test-case name="Calc.MathTests.Adds" executed="True" success="True"/>
    </results>
  </test-suite>
</test-results>`

	body := renderBody(t, Options{}, doc)

	assert.Contains(t, body, `<div class="panel panel-success">`)
	assert.Contains(t, body, `p:1 / f:0 / s:0`)
	assert.Contains(t, body, `<div class="stat">Success Rate</div><div class="val">100%</div>`)
	assert.Contains(t, body, `<span class="test-result">Success</span>`)
	assert.Contains(t, body, `href="#modal-MathTests-0"`)
	assert.Contains(t, body, `id="modal-MathTests-0"`)
	assert.Contains(t, body, `<h4 class="panel-title">Adds</h4>`)
	assert.NotContains(t, body, "Calc.MathTests.Adds")
	assert.Contains(t, body, `Summary - <small>Suite.dll</small>`)
	assert.Contains(t, body, `<div class="val">11 Mar</div>`)
	assert.Contains(t, body, `<div class="val">09:41</div>`)
	assert.NotContains(t, body, "text-danger")
}

func TestRenderBody_ZeroTotal(t *testing.T) {
	body := renderBody(t, Options{}, `<test-results name="Empty" date="2014-03-11" time="09:41:07"/>`)

	assert.Contains(t, body, `<div class="val">100%</div>`)
	assert.NotContains(t, body, "modal fade")
}

func TestRenderBody_SummaryHighlights(t *testing.T) {
	body := renderBody(t, Options{}, `<test-results name="R" total="10" failures="2" not-run="1" date="2014-03-11" time="09:41:07"/>`)

	assert.Contains(t, body, `<div class="stat">Failures</div><div class="val text-danger">2</div>`)
	assert.Contains(t, body, `<div class="stat">Skipped</div><div class="val text-danger">1</div>`)
	assert.Contains(t, body, `80.0%`)
}

func TestRenderBody_FixtureWithoutCases(t *testing.T) {
	body := renderBody(t, Options{}, `<test-results name="R" total="0" date="2014-03-11" time="09:41:07">
  <test-suite type="TestFixture" name="Nothing"><results/></test-suite>
</test-results>`)

	assert.Contains(t, body, `<div class="panel panel-success">`)
	assert.Contains(t, body, `p:0 / f:0 / s:0`)
}

func TestRenderBody_FailingFixture(t *testing.T) {
	doc := `<test-results name="R" total="3" failures="2" date="2014-03-11" time="09:41:07">
  <test-suite type="TestFixture" name="Broken">
    <results>
      <test-case name="Ns.Broken.Skipped" executed="False" success="True"/>
      <test-case name="Ns.Broken.WithDetail" executed="True" success="False">
        <failure><message>expected 1 &lt; 2</message><stack-trace>at Broken.cs:10</stack-trace></failure>
      </test-case>
      <test-case name="Ns.Broken.NoDetail" executed="True" success="False"/>
    </results>
  </test-suite>
</test-results>`

	body := renderBody(t, Options{}, doc)

	assert.Contains(t, body, `<div class="panel panel-danger">`)
	assert.Contains(t, body, `p:0 / f:2 / s:1`)
	assert.Contains(t, body, `<span class="test-result">Failed</span>`)
	assert.Contains(t, body, `class="text-danger no-underline"`)

	// Message and stack trace appear in both the printable view and the overlay.
	assert.Equal(t, 2, strings.Count(body, `<div><strong>Message:</strong> expected 1 &lt; 2</div>`))
	assert.Equal(t, 2, strings.Count(body, `<pre>at Broken.cs:10</pre>`))
	// Only the case with a failure element gets detail lines.
	assert.Equal(t, 2, strings.Count(body, "Message:"))

	assert.Contains(t, body, `<div><strong>skipped</strong></div>`)
	assert.Contains(t, body, `<div><strong>Status:</strong> fail</div>`)
	assert.Contains(t, body, `href="#modal-Broken-0_case-2"`)
	assert.Contains(t, body, `id="modal-Broken-0_case-2"`)
}

func TestRenderBody_SkippedFixtureWithReason(t *testing.T) {
	doc := `<test-results name="R" total="1" not-run="1" date="2014-03-11" time="09:41:07">
  <test-suite type="TestFixture" name="Legacy">
    <reason><message>Legacy API "removed"</message></reason>
    <results>
      <test-case name="Legacy.Old" executed="False" success="True"/>
    </results>
  </test-suite>
</test-results>`

	body := renderBody(t, Options{}, doc)

	assert.Contains(t, body, `<div class="panel panel-info">`)
	assert.Contains(t, body, `<span class="test-result">Skipped</span>`)
	assert.Contains(t, body, `data-toggle="tooltip" title="Legacy API &#34;removed&#34;"`)
	assert.Equal(t, 2, strings.Count(body, `<div class="alert alert-warning"><strong>Warning:</strong> Legacy API &#34;removed&#34;</div>`))
}

func TestRenderBody_CasePanels(t *testing.T) {
	doc := `<test-results name="R" date="2014-03-11" time="09:41:07">
  <test-suite type="TestFixture" name="F">
    <test-case name="F.Pass" executed="True" success="True"/>
    <test-case name="F.NotRunFailure" executed="False" success="False"/>
    <test-case name="F.Odd" executed="True" success="Inconclusive"/>
  </test-suite>
</test-results>`

	body := renderBody(t, Options{}, doc)

	// Card is red: an unsuccessful case decides the rollup even if it never ran.
	assert.Contains(t, body, `<div class="col-md-3">
<div class="panel panel-danger">`)
	// The case itself is shown with the skip colour and the fail wording.
	assert.Contains(t, body, `<div class="panel panel-info">
<div class="panel-heading">
<h4 class="panel-title">NotRunFailure</h4>`)
	assert.Contains(t, body, `<div><strong>fail</strong></div>`)
	// Unknown success values fall back to the neutral panel.
	assert.Contains(t, body, `<div class="panel panel-default">
<div class="panel-heading">
<h4 class="panel-title">Odd</h4>`)
}

func TestRenderBody_PrintAndOverlayColoursDiffer(t *testing.T) {
	doc := `<test-results name="R" date="2014-03-11" time="09:41:07">
  <test-suite type="TestFixture" name="F">
    <test-case name="F.NeverRan" executed="False" success="True"/>
    <test-case name="F.Ignored" executed="False" success="Ignored"/>
  </test-suite>
</test-results>`

	body := renderBody(t, Options{}, doc)

	// Printable view: a successful case is green whether or not it ran.
	assert.Contains(t, body, `<div class="panel panel-success">
<div class="panel-heading">
<h4 class="panel-title">NeverRan</h4>`)
	assert.Contains(t, body, `<div class="panel panel-default">
<div class="panel-heading">
<h4 class="panel-title">Ignored</h4>`)
	// Overlay: the same cases are shown as skipped.
	assert.Contains(t, body, `<div class="panel panel-info">
<div class="panel-heading">
<h4 class="panel-title"><a data-toggle="collapse" data-parent="#modal-F-0-accordion" href="#modal-F-0_case-0">NeverRan</a></h4>`)
	assert.Contains(t, body, `<div class="panel panel-info">
<div class="panel-heading">
<h4 class="panel-title"><a data-toggle="collapse" data-parent="#modal-F-0-accordion" href="#modal-F-0_case-1">Ignored</a></h4>`)
}

func TestRenderBody_CaseIDsNeverMatchOverlayIDs(t *testing.T) {
	doc := `<test-results name="R" date="2014-03-11" time="09:41:07">
  <test-suite type="TestFixture" name="x-1-accordion"><test-case name="a" executed="True" success="True"/></test-suite>
  <test-suite type="TestFixture" name="x"><test-case name="b" executed="True" success="True"/></test-suite>
</test-results>`

	body := renderBody(t, Options{}, doc)

	ids := map[string]int{}
	for _, m := range regexp.MustCompile(` id="([^"]+)"`).FindAllStringSubmatch(body, -1) {
		ids[m[1]]++
	}
	for id, n := range ids {
		assert.Equal(t, 1, n, "id %q appears %d times", id, n)
	}
	assert.Contains(t, ids, "modal-x-1-accordion-0")
	assert.Contains(t, ids, "modal-x-1_case-0")
}

func TestRenderBody_FixtureModes(t *testing.T) {
	doc := `<test-results name="R" date="2014-03-11" time="09:41:07">
  <test-suite type="Namespace" name="Company">
    <results>
      <test-suite type="Namespace" name="Product">
        <results>
          <test-suite type="TestFixture" name="Same"><test-case name="a" executed="True" success="True"/></test-suite>
          <test-suite type="TestFixture" name="Same"><test-case name="b" executed="True" success="False"/></test-suite>
        </results>
      </test-suite>
    </results>
  </test-suite>
</test-results>`

	top := renderBody(t, Options{Fixtures: FixturesTopLevel}, doc)
	assert.Equal(t, 1, strings.Count(top, `class="modal fade"`))
	assert.Contains(t, top, `id="modal-Company-0"`)
	assert.NotContains(t, top, `class="namespace"`)

	all := renderBody(t, Options{Fixtures: FixturesAll}, doc)
	assert.Equal(t, 4, strings.Count(all, `class="modal fade"`))
	for _, id := range []string{"modal-Company-0", "modal-Product-1", "modal-Same-2", "modal-Same-3"} {
		assert.Contains(t, all, `id="`+id+`"`)
	}
	assert.Contains(t, all, `<small class="namespace">Company</small>`)
	assert.Contains(t, all, `<small class="namespace">Company.Product</small>`)
}

func TestRenderBody_EscapesText(t *testing.T) {
	doc := `<test-results name="&lt;b&gt;R&lt;/b&gt;" date="2014-03-11" time="09:41:07">
  <test-suite type="TestFixture" name="&lt;script&gt;x&lt;/script&gt;">
    <test-case name="a" executed="True" success="True"/>
  </test-suite>
</test-results>`

	body := renderBody(t, Options{}, doc)

	assert.NotContains(t, body, "<script>")
	assert.NotContains(t, body, "<b>R</b>")
	assert.Contains(t, body, "&lt;script&gt;x&lt;/script&gt;")
	assert.Contains(t, body, `id="modal-3Cscript3Ex3C2Fscript3E-0"`)
}

func TestRender_Deterministic(t *testing.T) {
	doc := `<test-results name="R" total="2" date="2014-03-11" time="09:41:07">
  <test-suite type="TestFixture" name="A"><test-case name="a" executed="True" success="True"/></test-suite>
  <test-suite type="TestFixture" name="A"><test-case name="b" executed="False" success="True"/></test-suite>
</test-results>`
	report := loadReport(t, doc)
	r := New(DefaultOptions())

	first, err := r.Render(report)
	require.NoError(t, err)
	second, err := r.Render(report)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, `id="modal-A-0"`)
	assert.Contains(t, first, `id="modal-A-1"`)
}

func TestRenderBody_NilReport(t *testing.T) {
	_, err := New(Options{}).RenderBody(nil)
	assert.Error(t, err)
}

func TestParseFixtureMode(t *testing.T) {
	mode, err := ParseFixtureMode("all")
	require.NoError(t, err)
	assert.Equal(t, FixturesAll, mode)

	_, err = ParseFixtureMode("some")
	assert.Error(t, err)
}

func TestRenderBody_CustomLayouts(t *testing.T) {
	body := renderBody(t, Options{DateLayout: "2006-01-02", TimeLayout: "3:04 PM"},
		`<test-results name="R" date="2014-03-11" time="21:41:07"/>`)

	assert.Contains(t, body, `<div class="val">2014-03-11</div>`)
	assert.Contains(t, body, `<div class="val">9:41 PM</div>`)
}
