package assets

import (
	"embed"
	"fmt"
)

//go:embed recipes/*.recipe
var recipes embed.FS

//go:embed images/*.png
var images embed.FS

//go:embed docs/*.md
var docs embed.FS

// EmbeddedLoader loads assets from embedded filesystem.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadRecipe loads a recipe template from embedded assets by name.
func (e *EmbeddedLoader) LoadRecipe(name string) ([]byte, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	content, err := recipes.ReadFile("recipes/" + name + ".recipe")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrRecipeNotFound, name)
	}
	return content, nil
}

// LoadImage loads a PNG image from embedded assets by name.
func (e *EmbeddedLoader) LoadImage(name string) ([]byte, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	content, err := images.ReadFile("images/" + name + ".png")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrImageNotFound, name)
	}
	return content, nil
}

// LoadDocument returns an embedded markdown document such as "about".
func LoadDocument(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := docs.ReadFile("docs/" + name + ".md")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrDocumentNotFound, name)
	}
	return string(content), nil
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
