// Package render provides the run summaries printed after a report is
// converted: a styled terminal table and a JSON document.
package render

// Renderer converts a run summary to formatted output.
type Renderer interface {
	Render(s *Summary) string
}
