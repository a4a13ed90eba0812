package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	recipebook "github.com/alnah/go-recipebook"
	"github.com/alnah/go-recipebook/internal/config"
	"github.com/alnah/go-recipebook/internal/hints"
)

// maxStdinSize bounds how much text --stdin reads.
const maxStdinSize = 1 << 20

// collectURLs returns the positional URLs followed by those found in
// stdin text when fromStdin is set. The result is normalized; ErrNoURLs
// is returned when nothing usable remains.
func collectURLs(positional []string, fromStdin bool, stdin io.Reader) ([]string, error) {
	raw := append([]string(nil), positional...)
	if fromStdin {
		data, err := io.ReadAll(io.LimitReader(stdin, maxStdinSize))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadStdin, err)
		}
		raw = append(raw, recipebook.ExtractURLs(string(data))...)
	}

	urls := recipebook.NormalizeURLs(raw)
	if len(urls) == 0 {
		return nil, fmt.Errorf("%w%s", recipebook.ErrNoURLs, hints.ForNoURLs(fromStdin))
	}
	return urls, nil
}

// newAssembler builds an Assembler from the asset and temp settings.
func newAssembler(cfg *config.Config, logger *slog.Logger) (*recipebook.Assembler, error) {
	opts := []recipebook.Option{
		recipebook.WithLogger(logger),
		recipebook.WithTempDir(cfg.Temp.Dir),
		recipebook.WithAssetPath(cfg.Assets.BasePath),
	}
	if cfg.Assets.Recipe != "" {
		opts = append(opts, recipebook.WithRecipeName(cfg.Assets.Recipe))
	}
	if cfg.Assets.Logo != "" {
		opts = append(opts, recipebook.WithLogoName(cfg.Assets.Logo))
	}
	return recipebook.NewAssembler(opts...)
}

// withAssetHint appends an asset hint to template and logo errors.
func withAssetHint(err error, basePath string) error {
	if errors.Is(err, recipebook.ErrTemplateNotFound) ||
		errors.Is(err, recipebook.ErrLogoNotFound) ||
		errors.Is(err, recipebook.ErrInvalidAssetPath) {
		return fmt.Errorf("%w%s", err, hints.ForAssetNotFound(basePath))
	}
	return err
}

// recipebookRequest builds the request for already normalized URLs.
func recipebookRequest(urls []string, title string) recipebook.RecipeRequest {
	return recipebook.RecipeRequest{URLs: urls, Title: title}
}
