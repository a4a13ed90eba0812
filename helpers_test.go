package recipebook

import (
	"errors"
	"os"
	"sync"
	"testing"
	"time"
)

// Mock implementations for testing.

const testTemplate = `LOGO = None
DEFAULT_TITLE = 'Cooked Wiki Recipes'


class R(BasicNewsRecipe):

    title = DEFAULT_TITLE
    urls = []  # REPLACE_ME_URLS

    def get_cover_url(self):
        return LOGO
`

var testLogo = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

type mockLoader struct {
	recipe    []byte
	image     []byte
	recipeErr error
	imageErr  error
}

func (m *mockLoader) LoadRecipe(string) ([]byte, error) {
	if m.recipeErr != nil {
		return nil, m.recipeErr
	}
	return m.recipe, nil
}

func (m *mockLoader) LoadImage(string) ([]byte, error) {
	if m.imageErr != nil {
		return nil, m.imageErr
	}
	return m.image, nil
}

func newMockLoader() *mockLoader {
	return &mockLoader{recipe: []byte(testTemplate), image: testLogo}
}

// mockRunner records jobs and optionally finishes them right away.
type mockRunner struct {
	mu      sync.Mutex
	jobs    []*Job
	err     error
	outcome Outcome // nil = leave jobs running
}

func (m *mockRunner) Run(job *Job) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	m.jobs = append(m.jobs, job)
	m.mu.Unlock()
	if m.outcome != nil {
		go job.Finish(m.outcome)
	}
	return nil
}

type mockLibrary struct {
	mu    sync.Mutex
	calls [][]string
	err   error
}

func (m *mockLibrary) AddBooks(paths []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, append([]string(nil), paths...))
	return m.err
}

type mockReporter struct {
	mu         sync.Mutex
	jobErrs    []error
	importErrs []error
}

func (m *mockReporter) JobFailed(_ *Job, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobErrs = append(m.jobErrs, err)
}

func (m *mockReporter) ImportFailed(_ *Job, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.importErrs = append(m.importErrs, err)
}

type notice struct {
	message  string
	duration time.Duration
}

type mockNotifier struct {
	mu      sync.Mutex
	notices []notice
}

func (m *mockNotifier) Notify(message string, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notices = append(m.notices, notice{message, d})
}

var errMock = errors.New("mock error")

func newTestAssembler(t *testing.T, loader AssetLoader) *Assembler {
	t.Helper()
	asm, err := NewAssembler(WithAssetLoader(loader), WithTempDir(t.TempDir()))
	if err != nil {
		t.Fatalf("NewAssembler() error = %v", err)
	}
	return asm
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%s) error = %v", path, err)
	}
	return string(data)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func dirEntries(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir(%s) error = %v", dir, err)
	}
	return len(entries)
}

func waitDone(t *testing.T, job *Job) {
	t.Helper()
	select {
	case <-job.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("job did not finish")
	}
}

func sleepBriefly() {
	time.Sleep(10 * time.Millisecond)
}
