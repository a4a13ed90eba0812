// Package config loads the recipebook YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	recipebook "github.com/alnah/go-recipebook"
	"github.com/alnah/go-recipebook/internal/dateutil"
	"github.com/alnah/go-recipebook/internal/fileutil"
	"github.com/alnah/go-recipebook/internal/yamlutil"
)

// AppName names the per-user config and data directories.
const AppName = "go-recipebook"

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxFormatLength     = 10   // "epub", "azw3"
	MaxProfileLength    = 50   // "kindle_pw3"
	MaxPathLength       = 4096 // PATH_MAX
	MaxAssetNameLength  = 100
	MaxDateFormatLength = dateutil.MaxDateFormatLength
	MaxWorkers          = 64
	MaxBaseFontSize     = 72.0
)

// Config holds all configuration for fetching recipes.
type Config struct {
	Output      OutputConfig      `yaml:"output"`
	Preferences PreferencesConfig `yaml:"preferences"`
	Converter   ConverterConfig   `yaml:"converter"`
	Library     LibraryConfig     `yaml:"library"`
	Assets      AssetsConfig      `yaml:"assets"`
	Temp        TempConfig        `yaml:"temp"`
	Log         LogConfig         `yaml:"log"`
}

// OutputConfig defines the produced e-book.
type OutputConfig struct {
	Format string `yaml:"format"` // "epub", "mobi", "azw3", ... (default: "epub")
}

// PreferencesConfig mirrors the converter's option groups.
type PreferencesConfig struct {
	PageSetup   PageSetupConfig   `yaml:"pageSetup"`
	LookAndFeel LookAndFeelConfig `yaml:"lookAndFeel"`
	LRFOutput   LRFOutputConfig   `yaml:"lrfOutput"`
	EPUBOutput  EPUBOutputConfig  `yaml:"epubOutput"`
}

// PageSetupConfig defines device profile options.
type PageSetupConfig struct {
	OutputProfile string `yaml:"outputProfile"` // Empty = converter default
}

// LookAndFeelConfig defines font options.
type LookAndFeelConfig struct {
	BaseFontSize  float64 `yaml:"baseFontSize"`  // points, 0 = converter default
	KeepLigatures bool    `yaml:"keepLigatures"` // applied only with baseFontSize
}

// LRFOutputConfig defines LRF output options.
type LRFOutputConfig struct {
	Header bool `yaml:"header"`
}

// EPUBOutputConfig defines EPUB output options.
type EPUBOutputConfig struct {
	Flatten bool `yaml:"flatten"`
}

// ConverterConfig defines how conversion jobs run.
type ConverterConfig struct {
	Bin     string `yaml:"bin"`     // converter executable (default: "ebook-convert")
	Workers int    `yaml:"workers"` // 0 = auto
	Timeout string `yaml:"timeout"` // Go duration, empty = none
}

// LibraryConfig defines where imported books go.
type LibraryConfig struct {
	Dir        string `yaml:"dir"`        // Empty = DefaultLibraryDir()
	DateFormat string `yaml:"dateFormat"` // preset or token format (default: "iso")
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
	Recipe   string `yaml:"recipe"`   // recipe template name (default: "cookedwiki")
	Logo     string `yaml:"logo"`     // logo image name (default: "icon")
}

// TempConfig defines where scratch files go.
type TempConfig struct {
	Dir string `yaml:"dir"` // Empty = os.TempDir()
}

// LogConfig defines logging output.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error (default: "info")
	Format string `yaml:"format"` // console, json (default: "console")
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Output:    OutputConfig{Format: "epub"},
		Converter: ConverterConfig{Bin: "ebook-convert"},
		Library:   LibraryConfig{DateFormat: "iso"},
		Assets:    AssetsConfig{Recipe: recipebook.DefaultRecipe, Logo: recipebook.DefaultLogo},
		Log:       LogConfig{Level: "info", Format: "console"},
	}
}

// OutputPreferences returns the output preferences snapshot for one fetch.
func (c *Config) OutputPreferences() recipebook.OutputPreferences {
	return recipebook.OutputPreferences{
		Format:        c.Output.Format,
		OutputProfile: c.Preferences.PageSetup.OutputProfile,
		BaseFontSize:  c.Preferences.LookAndFeel.BaseFontSize,
		KeepLigatures: c.Preferences.LookAndFeel.KeepLigatures,
		Header:        c.Preferences.LRFOutput.Header,
		EPUBFlatten:   c.Preferences.EPUBOutput.Flatten,
	}
}

// TimeoutDuration parses Converter.Timeout. Empty means no timeout.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Converter.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Converter.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: converter.timeout %q: %v", ErrInvalidValue, c.Converter.Timeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: converter.timeout must not be negative", ErrInvalidValue)
	}
	return d, nil
}

// LibraryDir returns Library.Dir, or DefaultLibraryDir when unset.
func (c *Config) LibraryDir() string {
	if c.Library.Dir != "" {
		return c.Library.Dir
	}
	return DefaultLibraryDir()
}

// DefaultLibraryDir is the per-user library location.
func DefaultLibraryDir() string {
	if dir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(dir, "RecipeBook Library")
	}
	return "RecipeBook Library"
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("output.format", c.Output.Format, MaxFormatLength); err != nil {
		return err
	}
	if c.Output.Format != "" {
		for _, r := range strings.ToLower(c.Output.Format) {
			if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
				return fmt.Errorf("%w: output.format %q (letters and digits only)", ErrInvalidValue, c.Output.Format)
			}
		}
	}

	if err := validateFieldLength("preferences.pageSetup.outputProfile", c.Preferences.PageSetup.OutputProfile, MaxProfileLength); err != nil {
		return err
	}
	if fs := c.Preferences.LookAndFeel.BaseFontSize; fs < 0 || fs > MaxBaseFontSize {
		return fmt.Errorf("%w: preferences.lookAndFeel.baseFontSize must be between 0 and %.0f, got %.2f", ErrInvalidValue, MaxBaseFontSize, fs)
	}

	if err := validateFieldLength("converter.bin", c.Converter.Bin, MaxPathLength); err != nil {
		return err
	}
	if c.Converter.Workers < 0 || c.Converter.Workers > MaxWorkers {
		return fmt.Errorf("%w: converter.workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Converter.Workers)
	}
	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}

	if err := validateFieldLength("library.dir", c.Library.Dir, MaxPathLength); err != nil {
		return err
	}
	if c.Library.DateFormat != "" {
		if _, err := dateutil.ResolveFormat(c.Library.DateFormat); err != nil {
			return fmt.Errorf("library.dateFormat: %w", err)
		}
	}

	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.recipe", c.Assets.Recipe, MaxAssetNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.logo", c.Assets.Logo, MaxAssetNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("temp.dir", c.Temp.Dir, MaxPathLength); err != nil {
		return err
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q (must be debug, info, warn, or error)", ErrInvalidValue, c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "console", "json":
	default:
		return fmt.Errorf("%w: log.format %q (must be console or json)", ErrInvalidValue, c.Log.Format)
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

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields missing from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	cfg := DefaultConfig()
	if err := yamlutil.DecodeFile(configPath, cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists where a config name is looked up, in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath searches for a config file by name in standard locations:
// the current directory, then the user config directory; .yaml before .yml.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
