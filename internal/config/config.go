package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aivibes/devkit/internal/attribution"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/mod/semver"
)

// FileName is the optional per-repository config file
const FileName = ".devkit.toml"

type Config struct {
	Attribution attribution.Lexicon `toml:"attribution"`
	Log         LogConfig           `toml:"log"`
	Output      OutputConfig        `toml:"output"`
	Setup       SetupConfig         `toml:"setup"`

	// Parsed from Log.Timeout and Setup.Timeout (not serialized)
	timeout      time.Duration
	setupTimeout time.Duration
}

type LogConfig struct {
	Count   int    `toml:"count"`
	Timeout string `toml:"timeout"`
}

type OutputConfig struct {
	// Color is "auto" or "never"
	Color string `toml:"color"`
}

type SetupConfig struct {
	Interpreter     string   `toml:"interpreter"`
	MinVersion      string   `toml:"min_version"`
	VenvDir         string   `toml:"venv_dir"`
	Requirements    []string `toml:"requirements"`
	PreCommitConfig string   `toml:"pre_commit_config"`
	// Timeout caps each install step; dependency installs can take minutes
	Timeout         string   `toml:"timeout"`
}

func DefaultConfig() *Config {
	return &Config{
		Attribution: attribution.DefaultLexicon(),
		Log: LogConfig{
			Count:   10,
			Timeout: "30s",
		},
		Output: OutputConfig{
			Color: "auto",
		},
		Setup: SetupConfig{
			Interpreter:     "python3",
			MinVersion:      "3.8",
			VenvDir:         "venv",
			Requirements:    []string{"requirements.txt", "requirements-dev.txt"},
			PreCommitConfig: ".pre-commit-config.yaml",
			Timeout:         "10m",
		},
		timeout:      30 * time.Second,
		setupTimeout: 10 * time.Minute,
	}
}

// Load reads FileName from dir. A missing file yields the defaults.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	return Parse(data)
}

// Parse decodes TOML over the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", FileName, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Log.Count < 1 {
		return fmt.Errorf("log.count must be at least 1, got %d", c.Log.Count)
	}

	d, err := time.ParseDuration(c.Log.Timeout)
	if err != nil {
		return fmt.Errorf("invalid log.timeout %q: %w", c.Log.Timeout, err)
	}
	if d <= 0 {
		return fmt.Errorf("log.timeout must be positive, got %s", d)
	}
	c.timeout = d

	d, err = time.ParseDuration(c.Setup.Timeout)
	if err != nil {
		return fmt.Errorf("invalid setup.timeout %q: %w", c.Setup.Timeout, err)
	}
	if d <= 0 {
		return fmt.Errorf("setup.timeout must be positive, got %s", d)
	}
	c.setupTimeout = d

	switch c.Output.Color {
	case "auto", "never":
	default:
		return fmt.Errorf("output.color must be \"auto\" or \"never\", got %q", c.Output.Color)
	}

	if !semver.IsValid("v" + c.Setup.MinVersion) {
		return fmt.Errorf("invalid setup.min_version %q", c.Setup.MinVersion)
	}

	// Surface bad marker patterns at load time rather than at first use
	if _, err := attribution.New(c.Attribution); err != nil {
		return err
	}

	return nil
}

// Timeout returns the parsed log.timeout
func (c *Config) Timeout() time.Duration {
	return c.timeout
}

// SetupTimeout returns the parsed setup.timeout
func (c *Config) SetupTimeout() time.Duration {
	return c.setupTimeout
}

// NoColor reports whether styled output is disabled
func (c *Config) NoColor() bool {
	return c.Output.Color == "never"
}
