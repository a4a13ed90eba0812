package library

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"
)

// File and directory names inside a library directory.
const (
	BooksDir = "books"
	DBFile   = "library.db"
	LockFile = "library.lock"
)

// Sentinel errors for library operations.
var (
	ErrEmptyDir = errors.New("library directory is empty")
	ErrLocked   = errors.New("library is locked by another process")
	ErrClosed   = errors.New("library is closed")
	ErrImport   = errors.New("book import failed")
)

const (
	defaultLockTimeout = 30 * time.Second
	lockRetryDelay     = 50 * time.Millisecond

	sqliteBusyCode          = 5
	busyRetryAttempts       = 5
	busyRetryInitialBackoff = 10 * time.Millisecond
	busyRetryMaxBackoff     = 200 * time.Millisecond
)

const schema = `CREATE TABLE IF NOT EXISTS books (
	id       TEXT PRIMARY KEY,
	title    TEXT NOT NULL,
	format   TEXT NOT NULL,
	path     TEXT NOT NULL,
	added_at INTEGER NOT NULL
)`

// Book is one catalogued book.
type Book struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Format  string    `json:"format"`
	Path    string    `json:"path"`
	AddedAt time.Time `json:"addedAt"`
}

// Option configures a Library.
type Option func(*Library)

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Library) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithLockTimeout bounds how long AddBooks waits for the library lock.
func WithLockTimeout(d time.Duration) Option {
	return func(l *Library) {
		if d > 0 {
			l.lockTimeout = d
		}
	}
}

// WithClock overrides the time source used for added_at.
func WithClock(now func() time.Time) Option {
	return func(l *Library) {
		if now != nil {
			l.now = now
		}
	}
}

// WithDefaultTitle sets the title given to imported books whose own
// metadata has no title. Without it the file name stem is used.
func WithDefaultTitle(title string) Option {
	return func(l *Library) {
		l.defaultTitle = strings.TrimSpace(title)
	}
}

// Library is an open library directory.
type Library struct {
	dir         string
	db          *sql.DB
	lock        *flock.Flock
	logger      *slog.Logger
	lockTimeout time.Duration
	now         func() time.Time

	// defaultTitle replaces the file name stem as the fallback title.
	defaultTitle string

	mu     sync.Mutex
	closed bool
}

// Open creates the library layout under dir when missing and opens its catalog.
func Open(dir string, opts ...Option) (*Library, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, ErrEmptyDir
	}
	if err := os.MkdirAll(filepath.Join(dir, BooksDir), 0o750); err != nil {
		return nil, fmt.Errorf("create library directory: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, DBFile))
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	l := &Library{
		dir:         dir,
		db:          db,
		lock:        flock.New(filepath.Join(dir, LockFile)),
		logger:      slog.New(slog.DiscardHandler),
		lockTimeout: defaultLockTimeout,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Dir returns the library directory.
func (l *Library) Dir() string {
	return l.dir
}

// Close closes the catalog. It is safe to call more than once.
func (l *Library) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil
	}
	l.closed = true
	return l.db.Close()
}

// List returns every book, newest first.
func (l *Library) List(ctx context.Context) ([]Book, error) {
	if l.isClosed() {
		return nil, ErrClosed
	}
	rows, err := l.db.QueryContext(ctx,
		"SELECT id, title, format, path, added_at FROM books ORDER BY added_at DESC, rowid DESC")
	if err != nil {
		return nil, fmt.Errorf("query books: %w", err)
	}
	defer rows.Close()

	var books []Book
	for rows.Next() {
		var (
			b     Book
			nanos int64
		)
		if err := rows.Scan(&b.ID, &b.Title, &b.Format, &b.Path, &nanos); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		b.AddedAt = time.Unix(0, nanos)
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate books: %w", err)
	}
	return books, nil
}

func (l *Library) isClosed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closed
}

func (l *Library) insert(ctx context.Context, b Book) error {
	return retryOnBusy(ctx, func() error {
		_, err := l.db.ExecContext(ctx,
			"INSERT INTO books (id, title, format, path, added_at) VALUES (?, ?, ?, ?, ?)",
			b.ID, b.Title, b.Format, b.Path, b.AddedAt.UnixNano())
		return err
	})
}

func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	var coder interface{ Code() int }
	if errors.As(err, &coder) && coder.Code() == sqliteBusyCode {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

func retryOnBusy(ctx context.Context, op func() error) error {
	delay := busyRetryInitialBackoff
	var lastErr error
	for attempt := 0; attempt < busyRetryAttempts; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if !isSQLiteBusy(lastErr) || attempt == busyRetryAttempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		if next := delay * 2; next <= busyRetryMaxBackoff {
			delay = next
		}
	}
	return lastErr
}
