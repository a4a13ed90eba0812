package recipebook

import "errors"

// Sentinel errors for library operations.
var (
	// Input errors.
	ErrNoURLs        = errors.New("no recipe URLs given")
	ErrEmptyFormat   = errors.New("output format cannot be empty")
	ErrInvalidFormat = errors.New("invalid output format")

	// Asset loading errors.
	ErrTemplateNotFound = errors.New("recipe template not found")
	ErrLogoNotFound     = errors.New("logo image not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")

	// Temp file errors.
	ErrTempFile = errors.New("temporary file operation failed")

	// Dispatch errors.
	ErrNilRecipe = errors.New("assembled recipe is nil")
	ErrJobSubmit = errors.New("failed to submit conversion job")

	// ErrConversionFailed is carried by Failed outcomes when the converter
	// exits unsuccessfully.
	ErrConversionFailed = errors.New("conversion failed")
)
