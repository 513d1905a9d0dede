package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-chat2pdf/internal/fileutil"
	"github.com/alnah/go-chat2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Config holds file-based configuration. Flags take precedence over
// config values.
type Config struct {
	Output    OutputConfig `yaml:"output"`
	Fonts     FontsConfig  `yaml:"fonts"`
	CSS       CSSConfig    `yaml:"css"`
	RTL       RTLConfig    `yaml:"rtl"`
	Markdown  bool         `yaml:"markdown"`
	Timeout   string       `yaml:"timeout"`
	AssetPath string       `yaml:"assetPath"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as transcript)
}

// FontsConfig defines font resolution options.
type FontsConfig struct {
	Dir string `yaml:"dir"` // Primary font directory (empty = installed/relative fallbacks)
}

// CSSConfig defines CSS styling options.
type CSSConfig struct {
	Style string `yaml:"style"` // Style name, file path, or inline CSS (empty = built-in default)
}

// RTLConfig defines right-to-left text handling options.
type RTLConfig struct {
	WrapWidth int `yaml:"wrapWidth"` // Columns for RTL line wrapping (0 = default 75)
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return &cfg, nil
}

// resolveConfigPath searches standard locations for a named config:
// ./{name}.yaml, then ~/.config/chat2pdf/{name}.yaml.
func resolveConfigPath(name string) (string, error) {
	candidates := []string{name + ".yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "chat2pdf", name+".yaml"))
	}

	for _, candidate := range candidates {
		if fileutil.FileExists(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %q (searched %v)", ErrConfigNotFound, name, candidates)
}
