package library

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// AddBooks imports each file into the library: it is copied under books/
// and catalogued. Files that fail are reported together; the others are
// still imported. The source files are left in place.
func (l *Library) AddBooks(paths []string) error {
	return l.AddBooksContext(context.Background(), paths)
}

// AddBooksContext is AddBooks with a context bounding the lock wait and
// the catalog writes.
func (l *Library) AddBooksContext(ctx context.Context, paths []string) error {
	if l.isClosed() {
		return ErrClosed
	}
	if len(paths) == 0 {
		return nil
	}

	lockCtx, cancel := context.WithTimeout(ctx, l.lockTimeout)
	defer cancel()
	ok, err := l.lock.TryLockContext(lockCtx, lockRetryDelay)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("acquire library lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrLocked, l.lock.Path())
	}
	defer func() { _ = l.lock.Unlock() }()

	var errs []error
	for _, path := range paths {
		book, err := l.importOne(ctx, path)
		if err != nil {
			l.logger.Warn("book import failed", slog.String("path", path), slog.Any("error", err))
			errs = append(errs, fmt.Errorf("%w: %s: %w", ErrImport, path, err))
			continue
		}
		l.logger.Info("book added",
			slog.String("id", book.ID),
			slog.String("title", book.Title),
			slog.String("format", book.Format))
	}
	return errors.Join(errs...)
}

func (l *Library) importOne(ctx context.Context, src string) (Book, error) {
	info, err := os.Stat(src)
	if err != nil {
		return Book{}, err
	}
	if !info.Mode().IsRegular() {
		return Book{}, errors.New("not a regular file")
	}

	id := uuid.NewString()
	ext := strings.ToLower(filepath.Ext(src))
	dest := filepath.Join(l.dir, BooksDir, id+ext)

	if err := copyFile(src, dest); err != nil {
		return Book{}, err
	}

	book := Book{
		ID:      id,
		Title:   l.bookTitle(src),
		Format:  strings.TrimPrefix(ext, "."),
		Path:    dest,
		AddedAt: l.now(),
	}
	if err := l.insert(ctx, book); err != nil {
		_ = os.Remove(dest)
		return Book{}, fmt.Errorf("catalog book: %w", err)
	}
	return book, nil
}

func copyFile(src, dest string) (err error) {
	in, err := os.Open(src) // #nosec G304 -- path comes from a finished job
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600) // #nosec G304 -- uuid name inside the library
	if err != nil {
		return fmt.Errorf("create book file: %w", err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(dest)
		}
	}()

	if _, err = io.Copy(out, in); err != nil {
		return fmt.Errorf("copy book: %w", err)
	}
	return out.Sync()
}

func (l *Library) bookTitle(src string) string {
	if l.defaultTitle == "" {
		return BookTitle(src)
	}
	if title, ok := epubTitle(src); ok {
		return title
	}
	return l.defaultTitle
}
