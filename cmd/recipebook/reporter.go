package main

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	recipebook "github.com/alnah/go-recipebook"
	"github.com/alnah/go-recipebook/internal/hints"
	"github.com/alnah/go-recipebook/internal/jobrunner"
	"github.com/alnah/go-recipebook/internal/library"
)

// cliReporter collects job and import failures; the command returns
// them once the job is handled.
type cliReporter struct {
	mu   sync.Mutex
	errs []error
}

func (r *cliReporter) JobFailed(job *recipebook.Job, err error) {
	if errors.Is(err, jobrunner.ErrTimeout) {
		err = fmt.Errorf("%w%s", err, hints.ForTimeout())
	}
	r.add(fmt.Errorf("%s: %w", job.Description, err))
}

func (r *cliReporter) ImportFailed(_ *recipebook.Job, err error) {
	hint := hints.ForLibraryDirectory()
	if errors.Is(err, library.ErrLocked) {
		hint = hints.ForLibraryLocked()
	}
	r.add(fmt.Errorf("%w: %w%s", ErrImportFailed, err, hint))
}

func (r *cliReporter) add(err error) {
	r.mu.Lock()
	r.errs = append(r.errs, err)
	r.mu.Unlock()
}

// Err returns every reported failure joined, or nil.
func (r *cliReporter) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return errors.Join(r.errs...)
}

// newNotifier prints notices on w; a terminal has no timed toasts, so the
// duration is ignored.
func newNotifier(w io.Writer, quiet bool) recipebook.Notifier {
	return recipebook.NotifierFunc(func(message string, _ time.Duration) {
		if !quiet {
			fmt.Fprintln(w, message)
		}
	})
}

var _ recipebook.ErrorReporter = (*cliReporter)(nil)
