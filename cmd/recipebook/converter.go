package main

import (
	"errors"
	"io/fs"
	"os/exec"

	recipebook "github.com/alnah/go-recipebook"
)

// isConverterMissing reports whether a job failed because the converter
// executable could not be found or started.
func isConverterMissing(err error) bool {
	if !errors.Is(err, recipebook.ErrConversionFailed) || errors.Is(err, ErrImportFailed) {
		return false
	}
	return errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist)
}
