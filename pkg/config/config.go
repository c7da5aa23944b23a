// Package config loads mockvars CLI configuration.
//
// Values are merged with the following precedence (highest first):
//  1. Command-line flags
//  2. Environment variables (MOCKVARS_*), including a .env file in the
//     current directory
//  3. Local config file (.mockvarsrc.yaml in the current directory)
//  4. Global config file (<user config dir>/mockvars/config.yaml)
//  5. Default values
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/getmockd/mockvars/pkg/i18n"
	"github.com/getmockd/mockvars/pkg/logging"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "MOCKVARS_"

// GlobalConfigDir is the directory for the global config under the user
// config dir.
const GlobalConfigDir = "mockvars"

// LocalConfigFileNames are the names to search for local config (in order).
var LocalConfigFileNames = []string{".mockvarsrc.yaml", ".mockvarsrc.yml"}

// GlobalConfigFileNames are the names to search for global config (in order).
var GlobalConfigFileNames = []string{"config.yaml", "config.yml"}

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the CLI configuration.
type Config struct {
	// Seed makes every generated value reproducible. Nil means random.
	Seed *uint64 `yaml:"seed,omitempty" json:"seed,omitempty" env:"SEED"`

	LogLevel  string `yaml:"logLevel" json:"logLevel" env:"LOG_LEVEL"`
	LogFormat string `yaml:"logFormat" json:"logFormat" env:"LOG_FORMAT"`

	// Language selects the string table for descriptions, e.g. "pt-BR".
	Language string `yaml:"language" json:"language" env:"LANGUAGE"`

	// Variables are user variables available to render.
	// From the environment: MOCKVARS_VARIABLES="baseUrl:http://localhost,token:abc".
	Variables map[string]string `yaml:"variables,omitempty" json:"variables,omitempty" env:"VARIABLES"`

	// File is the config file that was loaded, if any.
	File string `yaml:"-" json:"file,omitempty"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		LogLevel:  "warn",
		LogFormat: "text",
		Language:  "en",
		Variables: make(map[string]string),
	}
}

// Load builds the configuration from defaults, the given config file (or
// the first local/global file found when path is empty) and the
// environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = FindConfigFile()
	}
	if path != "" {
		fileCfg, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		cfg.merge(fileCfg)
		cfg.File = path
	}

	// A missing .env file is fine.
	_ = godotenv.Load()

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("%w: environment: %w", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads a YAML config file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	return &cfg, nil
}

// FileError reports a malformed config file.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e *FileError) Unwrap() []error {
	return []error{ErrInvalidConfig, e.Err}
}

// FindConfigFile returns the local config file if present, else the global
// one, else "".
func FindConfigFile() string {
	if cwd, err := os.Getwd(); err == nil {
		if p := firstExisting(cwd, LocalConfigFileNames); p != "" {
			return p
		}
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return firstExisting(filepath.Join(dir, GlobalConfigDir), GlobalConfigFileNames)
	}
	return ""
}

func firstExisting(dir string, names []string) string {
	for _, name := range names {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// merge copies the values set in src onto c.
func (c *Config) merge(src *Config) {
	if src.Seed != nil {
		seed := *src.Seed
		c.Seed = &seed
	}
	if src.LogLevel != "" {
		c.LogLevel = src.LogLevel
	}
	if src.LogFormat != "" {
		c.LogFormat = src.LogFormat
	}
	if src.Language != "" {
		c.Language = src.Language
	}
	for k, v := range src.Variables {
		c.Variables[k] = v
	}
}

// Validate checks that every value parses.
func (c *Config) Validate() error {
	var errs []error
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		errs = append(errs, err)
	}
	if _, err := i18n.Parse(c.Language); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Logging returns the logging configuration. Call Validate first.
func (c *Config) Logging() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level, _ = logging.ParseLevel(c.LogLevel)
	cfg.Format, _ = logging.ParseFormat(c.LogFormat)
	return cfg
}
