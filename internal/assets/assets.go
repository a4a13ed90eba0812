package assets

// Built-in asset names.
const (
	DefaultRecipeName = "cookedwiki"
	DefaultImageName  = "icon"
)

var defaultLoader = NewEmbeddedLoader()

// LoadRecipe loads a recipe template by name using the embedded loader.
func LoadRecipe(name string) ([]byte, error) {
	return defaultLoader.LoadRecipe(name)
}

// LoadImage loads an image by name using the embedded loader.
func LoadImage(name string) ([]byte, error) {
	return defaultLoader.LoadImage(name)
}
