package recipebook

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alnah/go-recipebook/internal/fileutil"
	"github.com/alnah/go-recipebook/internal/recipe"
)

// Temp file suffixes. The output suffix is completed with the lowercase format.
const (
	outputSuffixPrefix = "_recipe_out."
	logoSuffix         = "_recipe_logo.png"
	artifactSuffix     = "_recipe.recipe"
)

func outputSuffix(format string) string {
	return outputSuffixPrefix + strings.ToLower(format)
}

// Assembler fills the recipe template with a request and writes the files
// a conversion job needs. It holds no per-request state and is safe for
// concurrent use.
type Assembler struct {
	loader     AssetLoader
	tempDir    string
	recipeName string
	logoName   string
	logger     *slog.Logger
}

// NewAssembler creates an Assembler using the embedded assets unless
// WithAssetLoader or WithAssetPath says otherwise.
// Returns ErrInvalidAssetPath if the asset path is not a readable directory.
func NewAssembler(opts ...Option) (*Assembler, error) {
	o := newOptions(opts)

	loader := o.assetLoader
	if loader == nil {
		var err error
		loader, err = NewAssetLoader(o.assetPath)
		if err != nil {
			return nil, err
		}
	}

	return &Assembler{
		loader:     loader,
		tempDir:    o.tempDir,
		recipeName: o.recipeName,
		logoName:   o.logoName,
		logger:     o.logger,
	}, nil
}

// Assemble renders the recipe for req and writes three temp files: the
// reserved output, the logo and the recipe artifact. If any step fails,
// every file created so far is removed before returning.
func (a *Assembler) Assemble(req RecipeRequest, prefs OutputPreferences) (_ *AssembledRecipe, err error) {
	if err := prefs.validateFormat(); err != nil {
		return nil, err
	}
	format := prefs.NormalizedFormat()

	var files []*TempFile
	defer func() {
		if err != nil {
			removeAll(files)
		}
	}()

	outputPath, err := fileutil.ReserveTemp(a.tempDir, outputSuffix(format))
	if err != nil {
		return nil, fmt.Errorf("%w: reserving output: %v", ErrTempFile, err)
	}
	files = append(files, newTempFile(outputPath))

	recs := Recommendations(prefs)

	tmpl, err := a.loader.LoadRecipe(a.recipeName)
	if err != nil {
		return nil, assetError(ErrTemplateNotFound, a.recipeName, err)
	}

	doc := recipe.Parse(tmpl)
	for _, slot := range doc.Missing() {
		a.logger.Warn("recipe template is missing a slot",
			slog.String("template", a.recipeName), slog.String("slot", string(slot)))
	}

	a.fill(doc, recipe.SlotURLs, recipe.ListLiteral(req.URLs))
	if strings.TrimSpace(req.Title) != "" {
		a.fill(doc, recipe.SlotTitle, recipe.StringLiteral(req.Title))
	}

	logo, err := a.loader.LoadImage(a.logoName)
	if err != nil {
		return nil, assetError(ErrLogoNotFound, a.logoName, err)
	}
	logoPath, err := fileutil.WriteTemp(a.tempDir, logoSuffix, logo)
	if err != nil {
		return nil, fmt.Errorf("%w: writing logo: %v", ErrTempFile, err)
	}
	files = append(files, newTempFile(logoPath))
	a.fill(doc, recipe.SlotLogo, recipe.StringLiteral(logoPath))

	artifactPath, err := fileutil.WriteTemp(a.tempDir, artifactSuffix, doc.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: writing recipe: %v", ErrTempFile, err)
	}
	files = append(files, newTempFile(artifactPath))

	a.logger.Debug("recipe assembled",
		slog.String("artifact", artifactPath),
		slog.String("output", outputPath),
		slog.Int("urls", len(req.URLs)),
		slog.String("format", format))

	return &AssembledRecipe{
		ArtifactPath:    artifactPath,
		OutputPath:      outputPath,
		LogoPath:        logoPath,
		Format:          format,
		Recommendations: recs,
		TempFiles:       files,
	}, nil
}

// fill sets a slot; a missing slot was already reported by Assemble.
func (a *Assembler) fill(doc *recipe.Document, slot recipe.Slot, expr string) {
	if err := doc.Set(slot, expr); err != nil {
		a.logger.Debug("slot not filled", slog.String("slot", string(slot)), slog.Any("error", err))
	}
}

// assetError wraps a loader error with sentinel unless it already carries
// a public asset sentinel.
func assetError(sentinel error, name string, err error) error {
	if errors.Is(err, sentinel) || errors.Is(err, ErrInvalidAssetPath) {
		return fmt.Errorf("loading %q: %w", name, err)
	}
	return fmt.Errorf("%w: %q: %w", sentinel, name, err)
}
