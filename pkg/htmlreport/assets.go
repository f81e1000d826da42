package htmlreport

import (
	_ "embed"
	"fmt"
	"os"
)

// Embedded page assets
var (
	//go:embed assets/core.js
	coreScript string

	//go:embed assets/widgets.js
	widgetScript string

	//go:embed assets/style.css
	baseStylesheet string
)

// Assets are the opaque payloads embedded into the document head.
type Assets struct {
	ScriptA    string // loaded first; helpers used by ScriptB
	ScriptB    string // widget behaviour
	Stylesheet string
}

// AssetPaths names files that replace individual embedded assets. Empty
// paths keep the embedded payload.
type AssetPaths struct {
	ScriptA    string `yaml:"script_a,omitempty"`
	ScriptB    string `yaml:"script_b,omitempty"`
	Stylesheet string `yaml:"stylesheet,omitempty"`
}

// DefaultAssets returns the payloads compiled into the binary.
func DefaultAssets() Assets {
	return Assets{
		ScriptA:    coreScript,
		ScriptB:    widgetScript,
		Stylesheet: baseStylesheet,
	}
}

// LoadAssets starts from DefaultAssets and replaces each payload whose path
// is set.
func LoadAssets(paths AssetPaths) (Assets, error) {
	assets := DefaultAssets()
	for _, a := range []struct {
		path string
		dst  *string
	}{
		{paths.ScriptA, &assets.ScriptA},
		{paths.ScriptB, &assets.ScriptB},
		{paths.Stylesheet, &assets.Stylesheet},
	} {
		if a.path == "" {
			continue
		}
		data, err := os.ReadFile(a.path)
		if err != nil {
			return Assets{}, fmt.Errorf("load asset: %w", err)
		}
		*a.dst = string(data)
	}
	return assets, nil
}
