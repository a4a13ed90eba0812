package assets

import "errors"

// AssetResolver combines custom and embedded loaders with fallback logic.
// When a custom loader is configured, it tries custom first, then falls back
// to embedded if the asset is not found in the custom location.
type AssetResolver struct {
	custom   AssetLoader // nil if no custom path configured
	embedded AssetLoader
}

// NewAssetResolver creates an AssetResolver.
// If customBasePath is empty, only embedded assets are used.
// Returns error if customBasePath is set but invalid.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	resolver := &AssetResolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadRecipe loads a recipe template, trying the custom loader first.
func (r *AssetResolver) LoadRecipe(name string) ([]byte, error) {
	return r.loadWithFallback(func(loader AssetLoader) ([]byte, error) {
		return loader.LoadRecipe(name)
	})
}

// LoadImage loads an image, trying the custom loader first.
func (r *AssetResolver) LoadImage(name string) ([]byte, error) {
	return r.loadWithFallback(func(loader AssetLoader) ([]byte, error) {
		return loader.LoadImage(name)
	})
}

func (r *AssetResolver) loadWithFallback(loadFn func(AssetLoader) ([]byte, error)) ([]byte, error) {
	if r.custom == nil {
		return loadFn(r.embedded)
	}

	content, err := loadFn(r.custom)
	if err == nil {
		return content, nil
	}

	// Only fall back for "not found" errors, not validation or I/O errors
	if !isNotFoundError(err) {
		return nil, err
	}

	return loadFn(r.embedded)
}

func isNotFoundError(err error) bool {
	return errors.Is(err, ErrRecipeNotFound) || errors.Is(err, ErrImageNotFound)
}

// HasCustomLoader returns true if a custom asset loader is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ AssetLoader = (*AssetResolver)(nil)
