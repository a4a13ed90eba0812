package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	recipebook "github.com/alnah/go-recipebook"
	"github.com/alnah/go-recipebook/internal/hints"
	"github.com/alnah/go-recipebook/internal/jobrunner"
	"github.com/alnah/go-recipebook/internal/library"
)

// runFetch downloads recipes into a book and imports it into the library.
// The completion callback fires on the runner's goroutine; it only forwards
// the job, and the completion handler runs here on the command goroutine.
func runFetch(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseFetchFlags(args, env.Stderr)
	if err != nil {
		return flagError(err)
	}

	cfg, err := loadConfig(flags.common, env)
	if err != nil {
		return err
	}
	mergeOutputFlags(flags.output, cfg)
	mergeConverterFlags(flags.converter, cfg)
	if flags.library != "" {
		cfg.Library.Dir = flags.library
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	timeout, err := cfg.TimeoutDuration()
	if err != nil {
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

	lib, err := library.Open(cfg.LibraryDir(),
		library.WithLogger(logger),
		library.WithDefaultTitle(bookTitle(flags.request.title)))
	if err != nil {
		return fmt.Errorf("%w: %w%s", ErrOpenLibrary, err, hints.ForLibraryDirectory())
	}
	defer lib.Close()

	var converterOutput io.Writer
	if flags.common.verbose {
		converterOutput = env.Stderr
	}
	runner := jobrunner.New(jobrunner.Options{
		Bin:     cfg.Converter.Bin,
		Workers: cfg.Converter.Workers,
		Timeout: timeout,
		Logger:  logger,
		Output:  converterOutput,
	})

	completed := make(chan *recipebook.Job, 1)
	dispatcher := recipebook.NewDispatcher(runner, func(job *recipebook.Job) {
		completed <- job
	}, recipebook.WithLogger(logger))

	notifier := newNotifier(env.Stderr, flags.common.quiet)
	reporter := &cliReporter{}
	handler := recipebook.NewCompletionHandler(lib, reporter, notifier, recipebook.WithLogger(logger))
	service := recipebook.NewService(assembler, dispatcher, notifier, recipebook.WithLogger(logger))

	job, err := service.Fetch(recipebookRequest(urls, flags.request.title), cfg.OutputPreferences())
	if err != nil {
		return withAssetHint(err, cfg.Assets.BasePath)
	}

	select {
	case done := <-completed:
		handler.OnComplete(done)
	case <-ctx.Done():
		logger.Warn("interrupted, stopping converter", slog.String("job", job.ID))
		runner.Shutdown()
		handler.OnComplete(<-completed)
	}
	runner.Wait()

	err = reporter.Err()
	if err == nil && job.Err() == nil && len(job.TempFiles) > 0 {
		// The library holds its own copy of the imported book.
		if rmErr := job.TempFiles[0].Remove(); rmErr != nil {
			logger.Debug("converted book not removed", slog.Any("error", rmErr))
		}
	}
	if err != nil {
		if isConverterMissing(err) {
			return fmt.Errorf("%w%s", err, hints.ForConverterNotFound())
		}
		return err
	}
	return nil
}

// defaultBookTitle is the title the Cooked Wiki recipe gives untitled books.
const defaultBookTitle = "Cooked Wiki Recipes"

func bookTitle(title string) string {
	if t := strings.TrimSpace(title); t != "" {
		return t
	}
	return defaultBookTitle
}
