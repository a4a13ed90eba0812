package recipebook

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// JobKind names the operation a runner performs for a job.
type JobKind string

// KindConvert runs the converter on a recipe artifact.
const KindConvert JobKind = "convert"

// JobArgs are the converter inputs of a job.
type JobArgs struct {
	ArtifactPath    string
	OutputPath      string
	Recommendations []Recommendation
}

// Outcome is the terminal state of a job: Succeeded or Failed.
type Outcome interface {
	outcome()
}

// Succeeded reports a job that produced its output file.
type Succeeded struct {
	OutputPath string
}

// Failed reports a job that did not produce output.
type Failed struct {
	Err error
}

func (Succeeded) outcome() {}
func (Failed) outcome()    {}

// Job is a submitted conversion. Its metadata is fixed before the job is
// handed to a runner; the runner reports the result through Finish.
type Job struct {
	ID          string
	Kind        JobKind
	Description string
	Args        JobArgs

	// TempFiles mirrors AssembledRecipe.TempFiles: output, logo, artifact.
	TempFiles   []*TempFile
	Format      string
	SubmittedAt time.Time

	done     chan struct{}
	once     sync.Once
	mu       sync.Mutex
	result   Outcome
	callback func(*Job)
}

// NewJob creates an unfinished job with a fresh ID.
func NewJob(kind JobKind, description string, args JobArgs) *Job {
	return &Job{
		ID:          uuid.NewString(),
		Kind:        kind,
		Description: description,
		Args:        args,
		SubmittedAt: time.Now(),
		done:        make(chan struct{}),
	}
}

// Finish records the outcome, closes Done and runs the completion callback.
// Only the first call has any effect; it returns false for later calls.
// A nil outcome is recorded as a conversion failure.
func (j *Job) Finish(o Outcome) bool {
	if o == nil {
		o = Failed{Err: fmt.Errorf("%w: runner reported no outcome", ErrConversionFailed)}
	}

	first := false
	j.once.Do(func() {
		first = true
		j.mu.Lock()
		j.result = o
		cb := j.callback
		j.mu.Unlock()

		close(j.done)
		if cb != nil {
			cb(j)
		}
	})
	return first
}

// Done is closed once the job has finished.
func (j *Job) Done() <-chan struct{} {
	return j.done
}

// Outcome returns the terminal outcome, or nil while the job is running.
func (j *Job) Outcome() Outcome {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.result
}

// Err returns the failure of a finished job, or nil.
func (j *Job) Err() error {
	if f, ok := j.Outcome().(Failed); ok {
		return f.Err
	}
	return nil
}

func (j *Job) setCallback(cb func(*Job)) {
	j.mu.Lock()
	j.callback = cb
	j.mu.Unlock()
}
