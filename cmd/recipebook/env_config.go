package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-recipebook/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides script-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath   string // RECIPEBOOK_CONFIG: config file name or path
	Format       string // RECIPEBOOK_FORMAT: output format
	LibraryDir   string // RECIPEBOOK_LIBRARY_DIR: library directory
	ConverterBin string // RECIPEBOOK_CONVERTER_BIN: converter executable
	Workers      int    // RECIPEBOOK_WORKERS: concurrent converters
	Timeout      string // RECIPEBOOK_TIMEOUT: converter timeout
	LogLevel     string // RECIPEBOOK_LOG_LEVEL: debug, info, warn, error
}

// knownEnvVars lists valid RECIPEBOOK_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"RECIPEBOOK_CONFIG":        true,
	"RECIPEBOOK_FORMAT":        true,
	"RECIPEBOOK_LIBRARY_DIR":   true,
	"RECIPEBOOK_CONVERTER_BIN": true,
	"RECIPEBOOK_WORKERS":       true,
	"RECIPEBOOK_TIMEOUT":       true,
	"RECIPEBOOK_LOG_LEVEL":     true,
	"RECIPEBOOK_CONTAINER":     true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:   os.Getenv("RECIPEBOOK_CONFIG"),
		Format:       os.Getenv("RECIPEBOOK_FORMAT"),
		LibraryDir:   os.Getenv("RECIPEBOOK_LIBRARY_DIR"),
		ConverterBin: os.Getenv("RECIPEBOOK_CONVERTER_BIN"),
		Timeout:      os.Getenv("RECIPEBOOK_TIMEOUT"),
		LogLevel:     os.Getenv("RECIPEBOOK_LOG_LEVEL"),
	}

	if workers := os.Getenv("RECIPEBOOK_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// unknownEnvVars returns the set RECIPEBOOK_* variables that are not recognized.
func unknownEnvVars() []string {
	var unknown []string
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "RECIPEBOOK_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				unknown = append(unknown, name)
			}
		}
	}
	return unknown
}

// warnUnknownEnvVars prints warnings for unrecognized RECIPEBOOK_* variables.
// Helps catch typos like RECIPEBOOK_WORKER instead of RECIPEBOOK_WORKERS.
func warnUnknownEnvVars(w io.Writer) {
	for _, name := range unknownEnvVars() {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// applyEnvConfig overlays set environment variables on cfg.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied afterwards by each command).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Format != "" {
		cfg.Output.Format = env.Format
	}
	if env.LibraryDir != "" {
		cfg.Library.Dir = env.LibraryDir
	}
	if env.ConverterBin != "" {
		cfg.Converter.Bin = env.ConverterBin
	}
	if env.Workers > 0 {
		cfg.Converter.Workers = env.Workers
	}
	if env.Timeout != "" {
		cfg.Converter.Timeout = env.Timeout
	}
	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
}
