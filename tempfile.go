package recipebook

import (
	"errors"
	"os"
	"sync"
)

// TempFile is a handle on one temporary file created during assembly.
// Remove deletes the file at most once; later calls are no-ops.
type TempFile struct {
	name string
	once sync.Once
	err  error
}

func newTempFile(name string) *TempFile {
	return &TempFile{name: name}
}

// Name returns the absolute path of the file.
func (f *TempFile) Name() string {
	return f.name
}

// Remove deletes the file. A file that is already gone is not an error.
func (f *TempFile) Remove() error {
	f.once.Do(func() {
		if err := os.Remove(f.name); err != nil && !errors.Is(err, os.ErrNotExist) {
			f.err = err
		}
	})
	return f.err
}

// removeAll deletes every file, ignoring errors.
func removeAll(files []*TempFile) {
	for _, f := range files {
		_ = f.Remove()
	}
}
