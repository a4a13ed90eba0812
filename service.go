package recipebook

import (
	"fmt"
	"log/slog"
	"time"
)

// Service runs the fetch flow: normalize, assemble, submit.
type Service struct {
	assembler  *Assembler
	dispatcher *Dispatcher
	notifier   Notifier
	logger     *slog.Logger
}

// NewService wires an Assembler and a Dispatcher. A nil notifier discards
// notices.
func NewService(assembler *Assembler, dispatcher *Dispatcher, notifier Notifier, opts ...Option) *Service {
	o := newOptions(opts)
	if notifier == nil {
		notifier = NotifierFunc(func(string, time.Duration) {})
	}
	return &Service{
		assembler:  assembler,
		dispatcher: dispatcher,
		notifier:   notifier,
		logger:     o.logger,
	}
}

// DownloadingMessage returns the notice shown when a fetch starts.
func DownloadingMessage(n int) string {
	return fmt.Sprintf("Downloading %d recipe(s) from Cooked Wiki. "+
		"When the download completes the book will be added to your library.", n)
}

// Fetch normalizes req.URLs, assembles the recipe and submits it.
// Returns ErrNoURLs without touching the filesystem when no URL remains.
// If submission fails, the assembled temp files are removed.
func (s *Service) Fetch(req RecipeRequest, prefs OutputPreferences) (*Job, error) {
	urls := NormalizeURLs(req.URLs)
	if len(urls) == 0 {
		return nil, ErrNoURLs
	}
	req.URLs = urls

	recipe, err := s.assembler.Assemble(req, prefs)
	if err != nil {
		return nil, fmt.Errorf("assembling recipe: %w", err)
	}

	job, err := s.dispatcher.Submit(recipe)
	if err != nil {
		recipe.Remove()
		return nil, err
	}

	s.notifier.Notify(DownloadingMessage(len(urls)), 0)
	s.logger.Info("fetch started", slog.String("job", job.ID), slog.Int("urls", len(urls)))
	return job, nil
}
