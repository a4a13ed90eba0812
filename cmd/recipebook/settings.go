package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/alnah/go-recipebook/internal/config"
	"github.com/alnah/go-recipebook/internal/hints"
	"github.com/alnah/go-recipebook/internal/logging"
)

// loadConfig resolves the effective configuration before command flags:
// the named config file (flag, then RECIPEBOOK_CONFIG) or the defaults,
// with environment overrides applied.
func loadConfig(common commonFlags, env *Environment) (*config.Config, error) {
	warnUnknownEnvVars(env.Stderr)
	ec := loadEnvConfig()

	name := common.config
	if name == "" {
		name = ec.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, err
		}
		cfg = loaded
	}

	applyEnvConfig(ec, cfg)
	return cfg, nil
}

// newLogger builds the command logger from cfg, with --verbose and
// --quiet taking precedence over log.level.
func newLogger(cfg *config.Config, common commonFlags, env *Environment) (*slog.Logger, error) {
	level := cfg.Log.Level
	switch {
	case common.verbose:
		level = "debug"
	case common.quiet:
		level = "error"
	}
	return logging.New(logging.Options{
		Level:  level,
		Format: cfg.Log.Format,
		Writer: env.Stderr,
	})
}

// mergeOutputFlags applies output flag overrides to cfg.
func mergeOutputFlags(f outputFlags, cfg *config.Config) {
	if f.format != "" {
		cfg.Output.Format = f.format
	}
	if f.assetPath != "" {
		cfg.Assets.BasePath = f.assetPath
	}
	if f.tempDir != "" {
		cfg.Temp.Dir = f.tempDir
	}
}

// mergeConverterFlags applies converter flag overrides to cfg.
func mergeConverterFlags(f converterFlags, cfg *config.Config) {
	if f.bin != "" {
		cfg.Converter.Bin = f.bin
	}
	if f.workers > 0 {
		cfg.Converter.Workers = f.workers
	}
	if f.timeout != "" {
		cfg.Converter.Timeout = f.timeout
	}
}
