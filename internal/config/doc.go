// Package config handles configuration loading and resolution for nreport.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--title, --fixtures, --theme, --no-color, --debug)
//  2. Environment variables (NREPORT_TITLE, NREPORT_FIXTURES, NREPORT_THEME,
//     NREPORT_NO_COLOR, NO_COLOR, NREPORT_DEBUG)
//  3. YAML config file (--config, ./.nreport.yaml or $XDG_CONFIG_HOME/nreport/config.yaml)
//  4. Hardcoded defaults
//
// # Key Configuration Options
//
//   - Title: the HTML document title
//   - Fixtures: "top" renders the top-level suites, "all" renders every suite
//   - DateLayout/TimeLayout: Go time layouts for the summary panel
//   - Assets: files replacing the embedded scripts and stylesheet
//   - Theme/NoColor: styling of the terminal run summary
package config
