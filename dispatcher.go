package recipebook

import (
	"fmt"
	"log/slog"
	"time"
)

// JobDescription is the human-readable label of every fetch job.
const JobDescription = "Fetch recipe from Cooked Wiki"

// JobRunner executes jobs asynchronously.
// Run must return without waiting for the job and must call job.Finish
// exactly once when the job ends.
type JobRunner interface {
	Run(job *Job) error
}

// JobRunnerFunc adapts a function to JobRunner.
type JobRunnerFunc func(job *Job) error

// Run calls f(job).
func (f JobRunnerFunc) Run(job *Job) error {
	return f(job)
}

// Dispatcher turns assembled recipes into jobs and starts them.
type Dispatcher struct {
	runner     JobRunner
	onComplete func(*Job)
	logger     *slog.Logger
	now        func() time.Time
}

// NewDispatcher creates a Dispatcher. onComplete is called once per job,
// from whatever goroutine the runner finishes it on; it may be nil.
func NewDispatcher(runner JobRunner, onComplete func(*Job), opts ...Option) *Dispatcher {
	o := newOptions(opts)
	return &Dispatcher{
		runner:     runner,
		onComplete: onComplete,
		logger:     o.logger,
		now:        o.now,
	}
}

// Submit creates a convert job for recipe and hands it to the runner.
// It returns as soon as the runner accepted the job.
func (d *Dispatcher) Submit(recipe *AssembledRecipe) (*Job, error) {
	if recipe == nil {
		return nil, ErrNilRecipe
	}
	if d.runner == nil {
		return nil, fmt.Errorf("%w: no runner configured", ErrJobSubmit)
	}

	job := NewJob(KindConvert, JobDescription, JobArgs{
		ArtifactPath:    recipe.ArtifactPath,
		OutputPath:      recipe.OutputPath,
		Recommendations: recipe.Recommendations,
	})
	job.TempFiles = recipe.TempFiles
	job.Format = recipe.Format
	job.SubmittedAt = d.now()
	job.setCallback(d.onComplete)

	if err := d.runner.Run(job); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrJobSubmit, err)
	}

	d.logger.Info("conversion job submitted",
		slog.String("job", job.ID),
		slog.String("format", job.Format),
		slog.String("artifact", job.Args.ArtifactPath))
	return job, nil
}
