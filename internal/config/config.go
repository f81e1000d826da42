package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/nreport/pkg/htmlreport"
)

// LocalConfigName is the project-level config file looked up in the working directory.
const LocalConfigName = ".nreport.yaml"

// Constants for default values.
const (
	DefaultTitle      = "Results"
	DefaultFixtures   = string(htmlreport.FixturesTopLevel)
	DefaultTheme      = "default"
	DefaultDateLayout = "2 Jan"
	DefaultTimeLayout = "15:04"
)

// AppConfig represents the contents of a .nreport.yaml file.
type AppConfig struct {
	Title      string                `yaml:"title,omitempty"`
	Fixtures   string                `yaml:"fixtures,omitempty"`
	Theme      string                `yaml:"theme,omitempty"`
	NoColor    *bool                 `yaml:"no_color,omitempty"`
	Debug      bool                  `yaml:"debug,omitempty"`
	DateFormat string                `yaml:"date_format,omitempty"`
	TimeFormat string                `yaml:"time_format,omitempty"`
	Assets     htmlreport.AssetPaths `yaml:"assets,omitempty"`
}

// LoadFile parses a YAML config file. Relative asset paths are resolved
// against the directory holding the file.
func LoadFile(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	dir := filepath.Dir(path)
	for _, p := range []*string{&cfg.Assets.ScriptA, &cfg.Assets.ScriptB, &cfg.Assets.Stylesheet} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
	return &cfg, nil
}

// FindConfigPath returns the first existing config file: the local
// .nreport.yaml, then the user config directory. It returns "" if neither
// exists.
func FindConfigPath() string {
	if _, err := os.Stat(LocalConfigName); err == nil {
		return LocalConfigName
	}
	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	userPath := filepath.Join(configHome, "nreport", "config.yaml")
	if _, err := os.Stat(userPath); err == nil {
		return userPath
	}
	return ""
}

// loadConfig loads the explicit path, or the discovered one when explicit is
// empty. A missing discovered file yields an empty config.
func loadConfig(explicit string) (*AppConfig, string, error) {
	path := explicit
	if path == "" {
		path = FindConfigPath()
	}
	if path == "" {
		return &AppConfig{}, "", nil
	}
	cfg, err := LoadFile(path)
	if err != nil {
		if explicit == "" && errors.Is(err, os.ErrNotExist) {
			return &AppConfig{}, "", nil
		}
		return nil, "", err
	}
	return cfg, path, nil
}
