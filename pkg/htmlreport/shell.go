package htmlreport

import (
	"bytes"
	"fmt"
	"html/template"
)

// Shell wraps a rendered body with the document head and footer.
type Shell struct {
	Title  string
	Assets Assets
}

type shellData struct {
	Title      string
	ScriptA    template.JS
	ScriptB    template.JS
	Stylesheet template.CSS
	Body       template.HTML
}

// Wrap returns the full document around body. The assets and body are
// trusted and inserted verbatim; the title is escaped.
func (s Shell) Wrap(body string) (string, error) {
	data := shellData{
		Title:      s.Title,
		ScriptA:    template.JS(s.Assets.ScriptA),
		ScriptB:    template.JS(s.Assets.ScriptB),
		Stylesheet: template.CSS(s.Assets.Stylesheet),
		Body:       template.HTML(body),
	}
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "shell", data); err != nil {
		return "", fmt.Errorf("render shell: %w", err)
	}
	return buf.String(), nil
}
