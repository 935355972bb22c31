package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/galleon/foundation/core/error"
)

// Output field names
const (
	FieldMeters      = "meters"
	FieldMillimeters = "millimeters"
	FieldImperial    = "imperial"
)

// EnvConfigPath names the environment variable consulted by LoadFromEnv
const EnvConfigPath = "GALLEON_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Output  OutputConfig  `toml:"output" yaml:"output"`
	TUI     TUIConfig     `toml:"tui" yaml:"tui"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// OutputConfig controls how conversions are printed
type OutputConfig struct {
	Format    string   `toml:"format" yaml:"format"`
	Fields    []string `toml:"fields" yaml:"fields"`
	EchoInput *bool    `toml:"echo_input" yaml:"echo_input"`
}

// TUIConfig holds interactive converter settings
type TUIConfig struct {
	Prompt      string `toml:"prompt" yaml:"prompt"`
	HistorySize int    `toml:"history_size" yaml:"history_size"`
}

// Echo reports whether the prompted input line is echoed back
func (o OutputConfig) Echo() bool {
	return o.EchoInput == nil || *o.EchoInput
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mdwerror.Newf("config file not found: %s", path).
				WithCode(mdwerror.CodeMissingConfig).
				WithOperation("config.load").
				WithDetail("path", path)
		}
		return nil, mdwerror.Wrap(err, "failed to read config").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.load").
			WithDetail("path", path)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		_, err = toml.Decode(string(data), &cfg)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.load").
			WithDetail("path", path)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromEnv loads configuration from the GALLEON_CONFIG environment
// variable or the first default location that exists
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		for _, p := range defaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return nil, mdwerror.New("no config file found, set GALLEON_CONFIG or create configs/config.toml").
			WithCode(mdwerror.CodeMissingConfig).
			WithOperation("config.load")
	}

	return Load(path)
}

func defaultPaths() []string {
	return []string{
		"./configs/config.toml",
		"./config.toml",
		filepath.Join(os.Getenv("HOME"), ".config/galleon/config.toml"),
	}
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Output
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
	if len(c.Output.Fields) == 0 {
		c.Output.Fields = []string{FieldMeters, FieldMillimeters, FieldImperial}
	}

	// TUI
	if c.TUI.Prompt == "" {
		c.TUI.Prompt = "Input: "
	}
	if c.TUI.HistorySize == 0 {
		c.TUI.HistorySize = 50
	}
}

// Validate checks names and ranges of all settings
func (c *Config) Validate() error {
	var problems []string

	switch strings.ToLower(c.General.LogLevel) {
	case "trace", "debug", "info", "warn", "warning", "error":
	default:
		problems = append(problems, "general.log_level: unknown level "+c.General.LogLevel)
	}

	switch strings.ToLower(c.General.LogFormat) {
	case "text", "json", "logfmt":
	default:
		problems = append(problems, "general.log_format: unknown format "+c.General.LogFormat)
	}

	switch strings.ToLower(c.Output.Format) {
	case "text", "json", "yaml":
	default:
		problems = append(problems, "output.format: unknown format "+c.Output.Format)
	}

	for _, f := range c.Output.Fields {
		switch f {
		case FieldMeters, FieldMillimeters, FieldImperial:
		default:
			problems = append(problems, "output.fields: unknown field "+f)
		}
	}

	if c.TUI.HistorySize < 0 {
		problems = append(problems, "tui.history_size: must be positive")
	}

	if len(problems) == 0 {
		return nil
	}

	return mdwerror.New("invalid configuration: "+strings.Join(problems, "; ")).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.validate").
		WithDetail("problems", problems)
}
