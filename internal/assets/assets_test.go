package assets

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// Notes:
// - Embedded assets are checked for the slot markers recipe assembly relies on.
// - Filesystem tests build their own asset trees under t.TempDir().
// - Symlink escape tests are skipped on Windows.

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// ---------------------------------------------------------------------------
// TestLoadRecipe - embedded recipe template carries its slots
// ---------------------------------------------------------------------------

func TestLoadRecipe(t *testing.T) {
	t.Parallel()

	content, err := LoadRecipe(DefaultRecipeName)
	if err != nil {
		t.Fatalf("LoadRecipe(%q) error = %v", DefaultRecipeName, err)
	}

	for _, marker := range []string{"# REPLACE_ME_URLS", "DEFAULT_TITLE", "LOGO = None"} {
		if !bytes.Contains(content, []byte(marker)) {
			t.Errorf("embedded recipe missing %q", marker)
		}
	}
}

func TestLoadImage(t *testing.T) {
	t.Parallel()

	content, err := LoadImage(DefaultImageName)
	if err != nil {
		t.Fatalf("LoadImage(%q) error = %v", DefaultImageName, err)
	}
	if !bytes.HasPrefix(content, pngSignature) {
		t.Error("embedded image is not a PNG")
	}
}

func TestLoadDocument(t *testing.T) {
	t.Parallel()

	t.Run("about", func(t *testing.T) {
		t.Parallel()

		got, err := LoadDocument("about")
		if err != nil {
			t.Fatalf("LoadDocument(about) error = %v", err)
		}
		if !strings.HasPrefix(got, "#") {
			t.Errorf("about document should start with a heading, got %q", got[:min(len(got), 20)])
		}
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		_, err := LoadDocument("nonexistent")
		if !errors.Is(err, ErrDocumentNotFound) {
			t.Errorf("LoadDocument() error = %v, want ErrDocumentNotFound", err)
		}
	})

	t.Run("invalid name", func(t *testing.T) {
		t.Parallel()

		_, err := LoadDocument("../about")
		if !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadDocument() error = %v, want ErrInvalidAssetName", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestEmbeddedLoader - not found and validation errors
// ---------------------------------------------------------------------------

func TestEmbeddedLoader(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name    string
		load    func(string) ([]byte, error)
		arg     string
		wantErr error
	}{
		{"recipe not found", loader.LoadRecipe, "nonexistent", ErrRecipeNotFound},
		{"image not found", loader.LoadImage, "nonexistent", ErrImageNotFound},
		{"recipe traversal", loader.LoadRecipe, "../cookedwiki", ErrInvalidAssetName},
		{"image with extension", loader.LoadImage, "icon.png", ErrInvalidAssetName},
		{"empty recipe name", loader.LoadRecipe, "", ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := tt.load(tt.arg)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidateAssetName - accepted and rejected names
// ---------------------------------------------------------------------------

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "cookedwiki", false},
		{"hyphen", "cooked-wiki", false},
		{"underscore", "cooked_wiki", false},
		{"empty", "", true},
		{"slash", "a/b", true},
		{"backslash", `a\b`, true},
		{"dot", "a.b", true},
		{"parent", "..", true},
		{"nul", "a\x00b", true},
		{"space", "a b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAssetName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidAssetName) {
				t.Errorf("ValidateAssetName(%q) error = %v, want ErrInvalidAssetName", tt.input, err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestFilesystemLoader - custom asset directory
// ---------------------------------------------------------------------------

func writeAsset(t *testing.T, base, dir, file, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(base, dir), 0o750); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(base, dir, file), []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

func TestNewFilesystemLoader(t *testing.T) {
	t.Parallel()

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()

		_, err := NewFilesystemLoader("")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		_, err := NewFilesystemLoader(filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("file instead of directory", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "file")
		if err := os.WriteFile(path, nil, 0o600); err != nil {
			t.Fatal(err)
		}
		_, err := NewFilesystemLoader(path)
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestFilesystemLoader_Load(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeAsset(t, base, "recipes", "custom.recipe", "urls = []  # REPLACE_ME_URLS\n")
	writeAsset(t, base, "images", "logo.png", "png-bytes")

	loader, err := NewFilesystemLoader(base)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}

	t.Run("recipe", func(t *testing.T) {
		t.Parallel()

		got, err := loader.LoadRecipe("custom")
		if err != nil {
			t.Fatalf("LoadRecipe() error = %v", err)
		}
		if !strings.Contains(string(got), "REPLACE_ME_URLS") {
			t.Errorf("LoadRecipe() = %q", got)
		}
	})

	t.Run("image", func(t *testing.T) {
		t.Parallel()

		got, err := loader.LoadImage("logo")
		if err != nil {
			t.Fatalf("LoadImage() error = %v", err)
		}
		if string(got) != "png-bytes" {
			t.Errorf("LoadImage() = %q", got)
		}
	})

	t.Run("recipe not found", func(t *testing.T) {
		t.Parallel()

		_, err := loader.LoadRecipe("other")
		if !errors.Is(err, ErrRecipeNotFound) {
			t.Errorf("error = %v, want ErrRecipeNotFound", err)
		}
	})

	t.Run("image not found", func(t *testing.T) {
		t.Parallel()

		_, err := loader.LoadImage("other")
		if !errors.Is(err, ErrImageNotFound) {
			t.Errorf("error = %v, want ErrImageNotFound", err)
		}
	})
}

func TestFilesystemLoader_SymlinkEscape(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("symlinks require privileges on Windows")
	}

	outside := t.TempDir()
	writeAsset(t, outside, ".", "secret.recipe", "secret")

	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "recipes"), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(filepath.Join(outside, "secret.recipe"), filepath.Join(base, "recipes", "evil.recipe")); err != nil {
		t.Fatalf("Symlink() error = %v", err)
	}

	loader, err := NewFilesystemLoader(base)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}

	_, err = loader.LoadRecipe("evil")
	if !errors.Is(err, ErrPathTraversal) {
		t.Errorf("LoadRecipe() error = %v, want ErrPathTraversal", err)
	}
}

// ---------------------------------------------------------------------------
// TestAssetResolver - custom-first with embedded fallback
// ---------------------------------------------------------------------------

func TestNewAssetResolver(t *testing.T) {
	t.Parallel()

	t.Run("empty path uses embedded only", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewAssetResolver("")
		if err != nil {
			t.Fatalf("NewAssetResolver(\"\") error = %v", err)
		}
		if resolver.HasCustomLoader() {
			t.Error("expected no custom loader for empty path")
		}
	})

	t.Run("invalid custom path returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewAssetResolver("/nonexistent/path/abc123xyz")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewAssetResolver() error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestAssetResolver_Fallback(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeAsset(t, base, "recipes", DefaultRecipeName+".recipe", "custom recipe")

	resolver, err := NewAssetResolver(base)
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}
	if !resolver.HasCustomLoader() {
		t.Fatal("expected custom loader")
	}

	t.Run("custom recipe wins", func(t *testing.T) {
		t.Parallel()

		got, err := resolver.LoadRecipe(DefaultRecipeName)
		if err != nil {
			t.Fatalf("LoadRecipe() error = %v", err)
		}
		if string(got) != "custom recipe" {
			t.Errorf("LoadRecipe() = %q, want custom content", got)
		}
	})

	t.Run("image falls back to embedded", func(t *testing.T) {
		t.Parallel()

		got, err := resolver.LoadImage(DefaultImageName)
		if err != nil {
			t.Fatalf("LoadImage() error = %v", err)
		}
		if !bytes.HasPrefix(got, pngSignature) {
			t.Error("expected embedded PNG")
		}
	})

	t.Run("validation errors do not fall back", func(t *testing.T) {
		t.Parallel()

		_, err := resolver.LoadRecipe("../x")
		if !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadRecipe() error = %v, want ErrInvalidAssetName", err)
		}
	})

	t.Run("missing everywhere", func(t *testing.T) {
		t.Parallel()

		_, err := resolver.LoadRecipe("nowhere")
		if !errors.Is(err, ErrRecipeNotFound) {
			t.Errorf("LoadRecipe() error = %v, want ErrRecipeNotFound", err)
		}
	})
}
