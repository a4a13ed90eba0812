package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alnah/go-recipebook/internal/logging"
	"github.com/alnah/go-recipebook/internal/render"
)

// runAssemble renders the recipe and its scratch files without running
// the converter. The files are removed on return unless --keep is set.
func runAssemble(args []string, env *Environment) error {
	flags, positional, err := parseAssembleFlags(args, env.Stderr)
	if err != nil {
		return flagError(err)
	}

	cfg, err := loadConfig(flags.common, env)
	if err != nil {
		return err
	}
	mergeOutputFlags(flags.output, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg, flags.common, env)
	if err != nil {
		return err
	}

	urls, err := collectURLs(positional, flags.request.stdin, env.Stdin)
	if err != nil {
		return err
	}

	assembler, err := newAssembler(cfg, logger)
	if err != nil {
		return withAssetHint(err, cfg.Assets.BasePath)
	}

	recipe, err := assembler.Assemble(recipebookRequest(urls, flags.request.title), cfg.OutputPreferences())
	if err != nil {
		return withAssetHint(err, cfg.Assets.BasePath)
	}
	if !flags.keep {
		defer func() {
			recipe.Remove()
			logger.Debug("scratch files removed", slog.String("recipe", recipe.ArtifactPath))
		}()
	}

	fmt.Fprintf(env.Stdout, "recipe: %s\n", recipe.ArtifactPath)
	fmt.Fprintf(env.Stdout, "output: %s\n", recipe.OutputPath)
	fmt.Fprintf(env.Stdout, "logo:   %s\n", recipe.LogoPath)
	for _, rec := range recipe.Recommendations {
		fmt.Fprintf(env.Stdout, "option: %s=%v (%s)\n", rec.Name, rec.Value, rec.Priority)
	}

	if flags.print {
		src, err := os.ReadFile(recipe.ArtifactPath)
		if err != nil {
			return fmt.Errorf("reading recipe: %w", err)
		}
		fmt.Fprintln(env.Stdout)
		if err := render.HighlightRecipe(env.Stdout, string(src), logging.IsTerminal(env.Stdout)); err != nil {
			return fmt.Errorf("printing recipe: %w", err)
		}
	}
	return nil
}
