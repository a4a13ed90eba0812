package recipebook

// RecipeRequest is what the user asked for: recipe page URLs and an
// optional book title. URLs should already be normalized (see NormalizeURLs).
type RecipeRequest struct {
	URLs  []string
	Title string // blank keeps the template's default title
}

// AssembledRecipe is the result of one assembly: the recipe file ready for
// the converter, the reserved output path, and every temp file created.
type AssembledRecipe struct {
	ArtifactPath    string // rendered .recipe file
	OutputPath      string // empty file reserved for the converter's output
	LogoPath        string // logo referenced by the recipe
	Format          string // uppercase output format
	Recommendations []Recommendation

	// TempFiles is ordered output, logo, artifact. The output file is
	// never deleted by this package.
	TempFiles []*TempFile
}

// Remove deletes every temp file of the recipe, ignoring errors.
// Use it when the recipe will not be submitted.
func (r *AssembledRecipe) Remove() {
	if r == nil {
		return
	}
	removeAll(r.TempFiles)
}
