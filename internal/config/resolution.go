package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/dkoosis/nreport/pkg/htmlreport"
)

// Value sources recorded in ResolvedConfig.
const (
	SourceCLI     = "cli"
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceDefault = "default"
)

// CliFlags holds the values of command-line flags. The *Set fields record
// whether a flag was given explicitly.
type CliFlags struct {
	ConfigPath string
	Title      string
	Fixtures   string
	ThemeName  string
	NoColor    bool
	Debug      bool

	NoColorSet bool
	DebugSet   bool
}

// ResolvedConfig holds the final configuration after applying all priority rules.
type ResolvedConfig struct {
	Title      string
	Fixtures   htmlreport.FixtureMode
	ThemeName  string
	NoColor    bool
	Debug      bool
	DateLayout string
	TimeLayout string
	AssetPaths htmlreport.AssetPaths

	// Resolution metadata
	ConfigPath     string // file that was loaded, "" if none
	TitleSource    string
	FixturesSource string
	ThemeSource    string
	NoColorSource  string
}

// LookupEnv matches os.LookupEnv so tests can supply their own environment.
type LookupEnv func(key string) (string, bool)

// Resolve resolves configuration from flags, the process environment, the
// config file and defaults, in that priority order.
func Resolve(flags CliFlags) (*ResolvedConfig, error) {
	return ResolveWithEnv(flags, os.LookupEnv)
}

// ResolveWithEnv is Resolve with an explicit environment.
func ResolveWithEnv(flags CliFlags, env LookupEnv) (*ResolvedConfig, error) {
	file, path, err := loadConfig(flags.ConfigPath)
	if err != nil {
		return nil, err
	}

	res := &ResolvedConfig{
		ConfigPath: path,
		DateLayout: firstNonEmpty(file.DateFormat, DefaultDateLayout),
		TimeLayout: firstNonEmpty(file.TimeFormat, DefaultTimeLayout),
		AssetPaths: file.Assets,
	}

	res.Title, res.TitleSource = pick(flags.Title, env, "NREPORT_TITLE", file.Title, DefaultTitle)
	res.ThemeName, res.ThemeSource = pick(flags.ThemeName, env, "NREPORT_THEME", file.Theme, DefaultTheme)

	var fixtures string
	fixtures, res.FixturesSource = pick(flags.Fixtures, env, "NREPORT_FIXTURES", file.Fixtures, DefaultFixtures)
	if res.Fixtures, err = htmlreport.ParseFixtureMode(fixtures); err != nil {
		return nil, err
	}

	noColorEnv := envBool(env, "NREPORT_NO_COLOR")
	switch {
	case flags.NoColorSet:
		res.NoColor, res.NoColorSource = flags.NoColor, SourceCLI
	case noColorEnv != nil:
		res.NoColor, res.NoColorSource = *noColorEnv, SourceEnv
	case envSet(env, "NO_COLOR"):
		res.NoColor, res.NoColorSource = true, SourceEnv
	case file.NoColor != nil:
		res.NoColor, res.NoColorSource = *file.NoColor, SourceFile
	default:
		res.NoColorSource = SourceDefault
	}

	debugEnv := envBool(env, "NREPORT_DEBUG")
	switch {
	case flags.DebugSet:
		res.Debug = flags.Debug
	case debugEnv != nil:
		res.Debug = *debugEnv
	default:
		res.Debug = file.Debug
	}

	return res, nil
}

// RenderOptions converts the resolved configuration into renderer options,
// loading any asset overrides.
func (c *ResolvedConfig) RenderOptions() (htmlreport.Options, error) {
	assets, err := htmlreport.LoadAssets(c.AssetPaths)
	if err != nil {
		return htmlreport.Options{}, err
	}
	return htmlreport.Options{
		Title:      c.Title,
		Fixtures:   c.Fixtures,
		DateLayout: c.DateLayout,
		TimeLayout: c.TimeLayout,
		Assets:     assets,
	}, nil
}

// pick returns the first set value among flag, environment, file and default
// together with its source.
func pick(flag string, env LookupEnv, key, file, def string) (string, string) {
	if flag != "" {
		return flag, SourceCLI
	}
	if v, ok := env(key); ok && v != "" {
		return v, SourceEnv
	}
	if file != "" {
		return file, SourceFile
	}
	return def, SourceDefault
}

// envBool parses a boolean environment variable; nil when unset or invalid.
func envBool(env LookupEnv, key string) *bool {
	v, ok := env(key)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return nil
	}
	return &b
}

func envSet(env LookupEnv, key string) bool {
	v, ok := env(key)
	return ok && v != ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
