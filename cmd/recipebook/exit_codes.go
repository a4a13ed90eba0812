package main

import (
	"errors"
	"os"

	recipebook "github.com/alnah/go-recipebook"
	"github.com/alnah/go-recipebook/internal/config"
	"github.com/alnah/go-recipebook/internal/dateutil"
	"github.com/alnah/go-recipebook/internal/library"
)

// Exit codes for the recipebook CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess    = 0 // Command completed
	ExitGeneral    = 1 // General/unexpected error
	ExitUsage      = 2 // Invalid flags, config, or input
	ExitIO         = 3 // File, temp or library I/O errors
	ExitConversion = 4 // Converter job failed or its book could not be imported
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Conversion errors (exit 4)
	if errors.Is(err, recipebook.ErrConversionFailed) ||
		errors.Is(err, recipebook.ErrJobSubmit) ||
		errors.Is(err, ErrImportFailed) {
		return ExitConversion
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, recipebook.ErrTempFile) ||
		errors.Is(err, library.ErrLocked) ||
		errors.Is(err, ErrOpenLibrary) ||
		errors.Is(err, ErrReadStdin) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, recipebook.ErrNoURLs) ||
		errors.Is(err, recipebook.ErrEmptyFormat) ||
		errors.Is(err, recipebook.ErrInvalidFormat) ||
		errors.Is(err, recipebook.ErrTemplateNotFound) ||
		errors.Is(err, recipebook.ErrLogoNotFound) ||
		errors.Is(err, recipebook.ErrInvalidAssetPath) ||
		errors.Is(err, ErrUsage) {
		return ExitUsage
	}

	return ExitGeneral
}
