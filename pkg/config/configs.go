// Package config provides configuration management for trace rendering.
package config

import (
	"fmt"
	"path/filepath"

	"TracePlot/pkg/exporting"
	"TracePlot/pkg/graphing"
)

// Config holds all rendering options.
type Config struct {
	// Input settings
	Root    string
	LogPath string

	// Output settings
	OutputDir string
	Profile   string
	Export    string

	// Logging
	LogLevel string
}

// Default configuration values.
const (
	DefaultRoot      = "."
	DefaultLogPath   = "assets/cpu.log"
	DefaultOutputDir = "assets"
	DefaultLogLevel  = "info"
)

// New creates a Config with default values.
func New() *Config {
	return &Config{
		Root:      DefaultRoot,
		LogPath:   DefaultLogPath,
		OutputDir: DefaultOutputDir,
		Profile:   graphing.DefaultProfile,
		LogLevel:  DefaultLogLevel,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.LogPath == "" {
		return fmt.Errorf("input log path is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	if _, err := graphing.LookupProfile(c.Profile); err != nil {
		return err
	}
	if c.Export != "" {
		if _, ok := exporting.GetByPath(c.Export); !ok {
			return fmt.Errorf("invalid export file: %s (valid formats: %v)", c.Export, exporting.Names())
		}
	}
	return nil
}

// ApplyDefaults fills in any missing values with defaults.
func (c *Config) ApplyDefaults() {
	if c.Root == "" {
		c.Root = DefaultRoot
	}
	if c.LogPath == "" {
		c.LogPath = DefaultLogPath
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.Profile == "" {
		c.Profile = graphing.DefaultProfile
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Resolve joins a relative path onto the project root.
func (c *Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Root, path)
}

// Relative reports path relative to the project root, falling back to path
// itself when no relative form exists.
func (c *Config) Relative(path string) string {
	rel, err := filepath.Rel(c.Root, path)
	if err != nil {
		return path
	}
	return rel
}

// InputPath returns the resolved trace log path.
func (c *Config) InputPath() string {
	return c.Resolve(c.LogPath)
}

// OutputPath returns the resolved output directory.
func (c *Config) OutputPath() string {
	return c.Resolve(c.OutputDir)
}
