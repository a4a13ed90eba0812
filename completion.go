package recipebook

import (
	"errors"
	"log/slog"
	"sync"
	"time"
)

// Status notice shown after a successful import.
const (
	FetchedMessage  = "Cooked Wiki recipes fetched."
	FetchedDuration = 3 * time.Second
)

// Library imports finished books.
type Library interface {
	AddBooks(paths []string) error
}

// ErrorReporter surfaces failures to the user.
type ErrorReporter interface {
	// JobFailed reports a job whose conversion failed.
	JobFailed(job *Job, err error)
	// ImportFailed reports a converted book the library could not import.
	ImportFailed(job *Job, err error)
}

// Notifier shows a status message for d, or until dismissed when d is 0.
type Notifier interface {
	Notify(message string, d time.Duration)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(message string, d time.Duration)

// Notify calls f(message, d).
func (f NotifierFunc) Notify(message string, d time.Duration) {
	f(message, d)
}

// CompletionHandler reacts to finished jobs: failures are reported,
// successes are imported and their scratch files removed.
type CompletionHandler struct {
	library  Library
	reporter ErrorReporter
	notifier Notifier
	logger   *slog.Logger

	mu      sync.Mutex
	handled map[string]struct{}
}

// NewCompletionHandler creates a handler. A nil notifier discards notices.
func NewCompletionHandler(library Library, reporter ErrorReporter, notifier Notifier, opts ...Option) *CompletionHandler {
	o := newOptions(opts)
	if notifier == nil {
		notifier = NotifierFunc(func(string, time.Duration) {})
	}
	return &CompletionHandler{
		library:  library,
		reporter: reporter,
		notifier: notifier,
		logger:   o.logger,
		handled:  make(map[string]struct{}),
	}
}

// OnComplete handles a finished job once. Jobs that have not finished, and
// jobs already handled, are ignored.
//
// On failure the error is reported and no file is removed. On success the
// output file is imported, then every other temp file of the job is
// removed, then a status notice is shown. A failed import is reported and
// suppresses the notice; the scratch files are removed regardless.
func (h *CompletionHandler) OnComplete(job *Job) {
	if job == nil {
		return
	}
	outcome := job.Outcome()
	if outcome == nil {
		h.logger.Warn("completion for unfinished job ignored", slog.String("job", job.ID))
		return
	}
	if !h.claim(job.ID) {
		h.logger.Debug("completion already handled", slog.String("job", job.ID))
		return
	}

	switch o := outcome.(type) {
	case Failed:
		h.logger.Error("conversion job failed", slog.String("job", job.ID), slog.Any("error", o.Err))
		h.reportJobFailed(job, o.Err)
	case Succeeded:
		h.importAndClean(job, o)
	}
}

func (h *CompletionHandler) importAndClean(job *Job, o Succeeded) {
	output := o.OutputPath
	if len(job.TempFiles) > 0 {
		output = job.TempFiles[0].Name()
	}

	var importErr error
	switch {
	case output == "":
		importErr = errors.New("job has no output file")
	case h.library == nil:
		importErr = errors.New("no library configured")
	default:
		importErr = h.library.AddBooks([]string{output})
	}

	if len(job.TempFiles) > 1 {
		for _, f := range job.TempFiles[1:] {
			if err := f.Remove(); err != nil {
				h.logger.Debug("temp file not removed", slog.String("path", f.Name()), slog.Any("error", err))
			}
		}
	}

	if importErr != nil {
		h.logger.Error("importing book failed", slog.String("job", job.ID), slog.Any("error", importErr))
		if h.reporter != nil {
			h.reporter.ImportFailed(job, importErr)
		}
		return
	}

	h.logger.Info("book imported", slog.String("job", job.ID), slog.String("path", output))
	h.notifier.Notify(FetchedMessage, FetchedDuration)
}

func (h *CompletionHandler) reportJobFailed(job *Job, err error) {
	if h.reporter != nil {
		h.reporter.JobFailed(job, err)
	}
}

// claim marks a job as handled and reports whether this call was first.
func (h *CompletionHandler) claim(id string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.handled[id]; ok {
		return false
	}
	h.handled[id] = struct{}{}
	return true
}
