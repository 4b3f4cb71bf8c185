package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-resume2pdf/internal/fileutil"
	"github.com/alnah/go-resume2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits for multi-tenant safety.
const (
	MaxTemplateLength  = 50   // "ats", "modern"
	MaxFormatLength    = 10   // "pdf", "html", "txt"
	MaxPathLength      = 4096 // Filesystem limit
	MaxTimestampLength = 30   // "D:20240101000000+00'00'"
)

// Config holds all configuration for résumé generation.
type Config struct {
	Input       InputConfig       `yaml:"input"`
	Output      OutputConfig      `yaml:"output"`
	Render      RenderConfig      `yaml:"render"`
	Determinism DeterminismConfig `yaml:"determinism"`
	Browser     BrowserConfig     `yaml:"browser"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir     string `yaml:"defaultDir"`     // Default input directory (empty = must specify)
	SkipValidation bool   `yaml:"skipValidation"` // Skip JSON schema validation of input
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = next to input)
	Format     string `yaml:"format"`     // "pdf", "html", "txt" (default: "pdf")
}

// RenderConfig defines template and styling options.
type RenderConfig struct {
	Template string `yaml:"template"` // Template name (default: "ats")
	ATSMode  bool   `yaml:"atsMode"`  // Suppress decorative styling
}

// DeterminismConfig defines artifact normalization options.
type DeterminismConfig struct {
	Enabled           bool   `yaml:"enabled"`           // Normalize artifact metadata (default: true)
	FixedCreationDate string `yaml:"fixedCreationDate"` // Optional: D:YYYYMMDDHHmmSS+00'00'
	Verify            bool   `yaml:"verify"`            // Validate artifact structure after normalization
}

// BrowserConfig defines renderer process options.
type BrowserConfig struct {
	ContentTimeoutSec int `yaml:"contentTimeoutSec"` // Content-set timeout in seconds (default: 10)
	IdleTimeoutSec    int `yaml:"idleTimeoutSec"`    // Idle browser teardown in seconds (default: 60)
}

// Validate checks field values and lengths.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("render.template", c.Render.Template, MaxTemplateLength); err != nil {
		return err
	}
	if err := validateFieldLength("determinism.fixedCreationDate", c.Determinism.FixedCreationDate, MaxTimestampLength); err != nil {
		return err
	}

	if c.Output.Format != "" {
		switch strings.ToLower(c.Output.Format) {
		case "pdf", "html", "txt":
			// valid
		default:
			return fmt.Errorf("output.format: invalid value %q (must be pdf, html, or txt)", c.Output.Format)
		}
	}

	if c.Browser.ContentTimeoutSec < 0 {
		return fmt.Errorf("browser.contentTimeoutSec: must be non-negative, got %d", c.Browser.ContentTimeoutSec)
	}
	if c.Browser.IdleTimeoutSec < 0 {
		return fmt.Errorf("browser.idleTimeoutSec: must be non-negative, got %d", c.Browser.IdleTimeoutSec)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no config file is given:
// PDF output, default template, determinism on.
func DefaultConfig() *Config {
	return &Config{
		Output:      OutputConfig{Format: "pdf"},
		Determinism: DeterminismConfig{Enabled: true},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-resume2pdf/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-resume2pdf", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
