package assets

// AssetLoader defines the contract for loading recipe templates and images.
// Implementations may load from embedded assets, filesystem, S3, database, etc.
type AssetLoader interface {
	// LoadRecipe loads a recipe template by name (without .recipe extension).
	// Returns ErrRecipeNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadRecipe(name string) ([]byte, error)

	// LoadImage loads a PNG image by name (without .png extension).
	// Returns ErrImageNotFound if the image doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadImage(name string) ([]byte, error)
}
