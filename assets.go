package recipebook

import (
	"errors"
	"fmt"

	"github.com/alnah/go-recipebook/internal/assets"
)

// Asset name constants for the built-in recipe template and logo.
const (
	// DefaultRecipe is the name of the built-in recipe template.
	DefaultRecipe = assets.DefaultRecipeName

	// DefaultLogo is the name of the built-in logo image.
	DefaultLogo = assets.DefaultImageName
)

// AssetLoader defines the contract for loading recipe templates and logos.
// Implementations may load from filesystem, embedded assets, a database, etc.
//
// The library provides NewAssetLoader() for filesystem-based loading with
// fallback to embedded defaults. Implement this interface for custom backends.
type AssetLoader interface {
	// LoadRecipe loads a recipe template by name (without .recipe extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	LoadRecipe(name string) ([]byte, error)

	// LoadImage loads a PNG image by name (without .png extension).
	// Returns ErrLogoNotFound if the image doesn't exist.
	LoadImage(name string) ([]byte, error)
}

// NewAssetLoader creates an AssetLoader for the given base path.
// If basePath is empty, returns a loader using only embedded assets.
// If basePath is set, custom assets take precedence with fallback to embedded.
//
// The basePath directory should contain:
//   - recipes/{name}.recipe for recipe templates
//   - images/{name}.png for logos
//
// Returns ErrInvalidAssetPath if basePath is set but not a valid, readable directory.
func NewAssetLoader(basePath string) (AssetLoader, error) {
	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return &assetLoaderAdapter{resolver: resolver}, nil
}

// assetLoaderAdapter wraps internal AssetResolver to return public errors.
type assetLoaderAdapter struct {
	resolver *assets.AssetResolver
}

func (a *assetLoaderAdapter) LoadRecipe(name string) ([]byte, error) {
	content, err := a.resolver.LoadRecipe(name)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return content, nil
}

func (a *assetLoaderAdapter) LoadImage(name string) ([]byte, error) {
	content, err := a.resolver.LoadImage(name)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return content, nil
}

// convertAssetError maps internal asset errors to public sentinels.
func convertAssetError(err error) error {
	switch {
	case errors.Is(err, assets.ErrRecipeNotFound):
		return fmt.Errorf("%w: %v", ErrTemplateNotFound, err)
	case errors.Is(err, assets.ErrImageNotFound):
		return fmt.Errorf("%w: %v", ErrLogoNotFound, err)
	case errors.Is(err, assets.ErrInvalidBasePath),
		errors.Is(err, assets.ErrInvalidAssetName),
		errors.Is(err, assets.ErrPathTraversal):
		return fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	default:
		return err
	}
}

// Compile-time interface check.
var _ AssetLoader = (*assetLoaderAdapter)(nil)
