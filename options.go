package recipebook

import (
	"log/slog"
	"time"
)

// Option configures an Assembler, Dispatcher, CompletionHandler or Service.
// Each component reads only the options that apply to it.
type Option func(*options)

// options holds the settings shared by every component.
type options struct {
	logger      *slog.Logger
	assetLoader AssetLoader
	assetPath   string
	tempDir     string
	recipeName  string
	logoName    string
	now         func() time.Time
}

func newOptions(opts []Option) options {
	o := options{
		logger:     slog.New(slog.DiscardHandler),
		recipeName: DefaultRecipe,
		logoName:   DefaultLogo,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithAssetLoader sets a custom asset loader for the recipe template and logo.
// It takes precedence over WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(o *options) {
		o.assetLoader = loader
	}
}

// WithAssetPath loads assets from a directory, falling back to the
// embedded ones for anything it does not contain.
func WithAssetPath(path string) Option {
	return func(o *options) {
		o.assetPath = path
	}
}

// WithTempDir sets where temp files are created. Empty means os.TempDir().
func WithTempDir(dir string) Option {
	return func(o *options) {
		o.tempDir = dir
	}
}

// WithRecipeName selects the recipe template by name.
// Panics if name is empty (programmer error).
func WithRecipeName(name string) Option {
	if name == "" {
		panic("recipebook: WithRecipeName name must not be empty")
	}
	return func(o *options) {
		o.recipeName = name
	}
}

// WithLogoName selects the logo image by name.
// Panics if name is empty (programmer error).
func WithLogoName(name string) Option {
	if name == "" {
		panic("recipebook: WithLogoName name must not be empty")
	}
	return func(o *options) {
		o.logoName = name
	}
}

// WithClock overrides the time source used for job timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}
