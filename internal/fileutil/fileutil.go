// Package fileutil provides temp file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrSuffixEmpty         = errors.New("suffix cannot be empty")
	ErrSuffixPathTraversal = errors.New("suffix contains path separator, wildcard or null byte")
)

// TempPrefix starts the name of every temp file this module creates.
const TempPrefix = "recipebook-"

// ReserveTemp creates an empty temporary file whose name ends with suffix.
// The file exists on return so the path cannot be claimed by another process.
// An empty dir means os.TempDir().
func ReserveTemp(dir, suffix string) (string, error) {
	return WriteTemp(dir, suffix, nil)
}

// WriteTemp creates a temporary file ending with suffix and writes content to it.
// On any write or close failure the file is removed before returning.
func WriteTemp(dir, suffix string, content []byte) (path string, err error) {
	if err := ValidateSuffix(suffix); err != nil {
		return "", err
	}

	tmpFile, err := os.CreateTemp(dir, TempPrefix+"*"+suffix)
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	path = tmpFile.Name()

	if len(content) > 0 {
		if _, writeErr := tmpFile.Write(content); writeErr != nil {
			_ = tmpFile.Close()
			RemoveQuietly(path)
			return "", fmt.Errorf("writing temp file: %w", writeErr)
		}
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		RemoveQuietly(path)
		return "", fmt.Errorf("closing temp file: %w", closeErr)
	}

	return path, nil
}

// ValidateSuffix checks that suffix is safe to embed in a temp file pattern.
func ValidateSuffix(suffix string) error {
	if suffix == "" {
		return ErrSuffixEmpty
	}
	if strings.ContainsAny(suffix, "/\\*\x00") {
		return ErrSuffixPathTraversal
	}
	return nil
}

// RemoveQuietly deletes path and ignores every error, including a missing file.
func RemoveQuietly(path string) {
	if path == "" {
		return
	}
	_ = os.Remove(path)
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// CheckWritableDir verifies that dir exists (creating it when missing) and
// accepts new files.
func CheckWritableDir(dir string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	probe, err := os.CreateTemp(dir, TempPrefix+"probe-*")
	if err != nil {
		return fmt.Errorf("directory not writable: %w", err)
	}
	name := probe.Name()
	_ = probe.Close()
	RemoveQuietly(name)
	return nil
}
