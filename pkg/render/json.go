package render

import (
	"encoding/json"
)

// JSON renders the summary as structured JSON for automation.
type JSON struct{}

// NewJSON creates a JSON renderer.
func NewJSON() *JSON {
	return &JSON{}
}

type jsonOutput struct {
	Version string   `json:"version"`
	Summary *Summary `json:"summary"`
}

// Render formats the summary as indented JSON.
func (j *JSON) Render(s *Summary) string {
	data, err := json.MarshalIndent(jsonOutput{Version: "1.0", Summary: s}, "", "  ")
	if err != nil {
		errJSON, _ := json.Marshal(map[string]string{"error": err.Error()})
		return string(errJSON)
	}
	return string(data) + "\n"
}
