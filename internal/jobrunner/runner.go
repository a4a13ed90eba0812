package jobrunner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	recipebook "github.com/alnah/go-recipebook"
	"github.com/alnah/go-recipebook/internal/process"
)

// DefaultBin is the converter executable looked up on PATH.
const DefaultBin = "ebook-convert"

// Sentinel errors for job execution.
var (
	ErrUnsupportedKind = errors.New("unsupported job kind")
	ErrShutdown        = errors.New("job runner shut down")
	ErrNilJob          = errors.New("job is nil")
	ErrTimeout         = errors.New("converter timed out")
)

const (
	outputTailSize = 4096
	killWaitDelay  = 5 * time.Second
)

// Options configures a Runner.
type Options struct {
	Bin     string        // converter executable (default: ebook-convert)
	Workers int           // 0 = ResolveWorkers default
	Timeout time.Duration // per job, 0 = none
	Logger  *slog.Logger
	Output  io.Writer // receives converter output as it runs; nil discards it
}

// Runner executes convert jobs in child processes.
type Runner struct {
	bin     string
	timeout time.Duration
	logger  *slog.Logger
	output  io.Writer
	slots   chan struct{}

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
	closed bool
}

// New creates a Runner.
func New(opts Options) *Runner {
	bin := opts.Bin
	if bin == "" {
		bin = DefaultBin
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	output := opts.Output
	if output == nil {
		output = io.Discard
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Runner{
		bin:     bin,
		timeout: opts.Timeout,
		logger:  logger,
		output:  output,
		slots:   make(chan struct{}, ResolveWorkers(opts.Workers)),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Run starts job in the background. It returns ErrShutdown once Shutdown
// has been called.
func (r *Runner) Run(job *recipebook.Job) error {
	if job == nil {
		return ErrNilJob
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return ErrShutdown
	}
	r.wg.Add(1)
	r.mu.Unlock()

	go r.execute(job)
	return nil
}

// Wait blocks until every started job has finished.
func (r *Runner) Wait() {
	r.wg.Wait()
}

// Shutdown refuses new jobs and kills every running converter.
// Call Wait afterwards to let the affected jobs finish.
func (r *Runner) Shutdown() {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
	r.cancel()
}

// Workers returns the number of converters that may run at once.
func (r *Runner) Workers() int {
	return cap(r.slots)
}

func (r *Runner) execute(job *recipebook.Job) {
	defer r.wg.Done()

	if job.Kind != recipebook.KindConvert {
		job.Finish(recipebook.Failed{Err: fmt.Errorf("%w: %q", ErrUnsupportedKind, job.Kind)})
		return
	}

	select {
	case r.slots <- struct{}{}:
	case <-r.ctx.Done():
		job.Finish(recipebook.Failed{Err: fmt.Errorf("%w: %w", recipebook.ErrConversionFailed, ErrShutdown)})
		return
	}
	defer func() { <-r.slots }()

	job.Finish(r.convert(job))
}

func (r *Runner) convert(job *recipebook.Job) recipebook.Outcome {
	ctx := r.ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	args := BuildArgs(job.Args)
	cmd := exec.CommandContext(ctx, r.bin, args...)
	process.Configure(cmd)
	cmd.Cancel = func() error {
		process.KillProcessGroup(cmd.Process.Pid)
		return nil
	}
	cmd.WaitDelay = killWaitDelay

	tail := newTailBuffer(outputTailSize)
	w := io.MultiWriter(tail, r.output)
	cmd.Stdout = w
	cmd.Stderr = w

	log := r.logger.With(slog.String("job", job.ID))
	log.Debug("starting converter", slog.String("bin", r.bin), slog.Any("args", args))
	start := time.Now()

	err := cmd.Run()
	elapsed := time.Since(start)

	if err != nil {
		switch {
		case errors.Is(r.ctx.Err(), context.Canceled):
			log.Warn("converter killed on shutdown", slog.Duration("elapsed", elapsed))
			return recipebook.Failed{Err: fmt.Errorf("%w: %w", recipebook.ErrConversionFailed, ErrShutdown)}
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			log.Warn("converter timed out", slog.Duration("timeout", r.timeout))
			return recipebook.Failed{Err: fmt.Errorf("%w: %w after %s%s",
				recipebook.ErrConversionFailed, ErrTimeout, r.timeout, formatTail(tail))}
		default:
			log.Warn("converter failed", slog.Any("error", err), slog.Duration("elapsed", elapsed))
			return recipebook.Failed{Err: fmt.Errorf("%w: %w%s", recipebook.ErrConversionFailed, err, formatTail(tail))}
		}
	}

	info, statErr := os.Stat(job.Args.OutputPath)
	if statErr != nil || info.Size() == 0 {
		log.Warn("converter produced no output", slog.String("output", job.Args.OutputPath))
		return recipebook.Failed{Err: fmt.Errorf("%w: converter produced no output%s",
			recipebook.ErrConversionFailed, formatTail(tail))}
	}

	log.Info("conversion finished", slog.Duration("elapsed", elapsed), slog.Int64("bytes", info.Size()))
	return recipebook.Succeeded{OutputPath: job.Args.OutputPath}
}

func formatTail(t *tailBuffer) string {
	s := strings.TrimSpace(t.String())
	if s == "" {
		return ""
	}
	return "\n" + s
}

// Compile-time interface check.
var _ recipebook.JobRunner = (*Runner)(nil)
