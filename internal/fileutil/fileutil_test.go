package fileutil_test

// Notes:
// - Write and Close failure branches in WriteTemp are not tested because
//   triggering disk write failures is platform-specific.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-recipebook/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestValidateSuffix - Suffix validation
// ---------------------------------------------------------------------------

func TestValidateSuffix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		suffix  string
		wantErr error
	}{
		{"output suffix", "_recipe_out.epub", nil},
		{"recipe suffix", "_recipe.recipe", nil},
		{"empty suffix", "", fileutil.ErrSuffixEmpty},
		{"forward slash", "../etc/passwd", fileutil.ErrSuffixPathTraversal},
		{"backslash", "..\\windows", fileutil.ErrSuffixPathTraversal},
		{"wildcard", "_out*.epub", fileutil.ErrSuffixPathTraversal},
		{"null byte", "_out.epub\x00exe", fileutil.ErrSuffixPathTraversal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fileutil.ValidateSuffix(tt.suffix)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateSuffix(%q) = %v, want %v", tt.suffix, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestReserveTemp - Empty temp file reservation
// ---------------------------------------------------------------------------

func TestReserveTemp(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path, err := fileutil.ReserveTemp(dir, "_recipe_out.epub")
	if err != nil {
		t.Fatalf("ReserveTemp() error = %v", err)
	}

	if filepath.Dir(path) != dir {
		t.Errorf("dir = %q, want %q", filepath.Dir(path), dir)
	}
	base := filepath.Base(path)
	if !strings.HasPrefix(base, fileutil.TempPrefix) {
		t.Errorf("name %q missing prefix %q", base, fileutil.TempPrefix)
	}
	if !strings.HasSuffix(base, "_recipe_out.epub") {
		t.Errorf("name %q missing suffix", base)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("size = %d, want 0", info.Size())
	}
}

func TestReserveTemp_UniqueNames(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first, err := fileutil.ReserveTemp(dir, "_recipe_out.epub")
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := fileutil.ReserveTemp(dir, "_recipe_out.epub")
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if first == second {
		t.Errorf("ReserveTemp returned the same path twice: %q", first)
	}
}

// ---------------------------------------------------------------------------
// TestWriteTemp - Temp file with content
// ---------------------------------------------------------------------------

func TestWriteTemp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content []byte
		suffix  string
	}{
		{"recipe text", []byte("class Recipe:\n    pass\n"), "_recipe.recipe"},
		{"binary logo", []byte{0x89, 'P', 'N', 'G', 0x00, 0xff}, "_recipe_logo.png"},
		{"empty content", nil, "_recipe.recipe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path, err := fileutil.WriteTemp(t.TempDir(), tt.suffix, tt.content)
			if err != nil {
				t.Fatalf("WriteTemp() error = %v", err)
			}

			got, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read back: %v", err)
			}
			if string(got) != string(tt.content) {
				t.Errorf("content = %q, want %q", got, tt.content)
			}
		})
	}
}

func TestWriteTemp_InvalidSuffix(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := fileutil.WriteTemp(dir, "../escape", []byte("x"))
	if !errors.Is(err, fileutil.ErrSuffixPathTraversal) {
		t.Fatalf("error = %v, want ErrSuffixPathTraversal", err)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("directory has %d entries, want 0", len(entries))
	}
}

func TestWriteTemp_MissingDir(t *testing.T) {
	t.Parallel()

	_, err := fileutil.WriteTemp(filepath.Join(t.TempDir(), "missing"), "_x.recipe", []byte("x"))
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}

// ---------------------------------------------------------------------------
// TestRemoveQuietly - Best-effort deletion
// ---------------------------------------------------------------------------

func TestRemoveQuietly(t *testing.T) {
	t.Parallel()

	t.Run("existing file is removed", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "f.png")
		if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}
		fileutil.RemoveQuietly(path)
		if fileutil.FileExists(path) {
			t.Error("file still exists")
		}
	})

	t.Run("missing file does not panic", func(t *testing.T) {
		t.Parallel()

		fileutil.RemoveQuietly(filepath.Join(t.TempDir(), "gone.png"))
		fileutil.RemoveQuietly("")
	})
}

// ---------------------------------------------------------------------------
// TestFileExists / TestIsFilePath
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if !fileutil.FileExists(file) {
		t.Error("FileExists(file) = false, want true")
	}
	if fileutil.FileExists(dir) {
		t.Error("FileExists(dir) = true, want false")
	}
	if fileutil.FileExists(filepath.Join(dir, "nope")) {
		t.Error("FileExists(missing) = true, want false")
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"cookedwiki", false},
		{"./recipes/custom.recipe", true},
		{"/abs/path", true},
		{`C:\assets`, true},
		{"my-recipe", false},
	}

	for _, tt := range tests {
		if got := fileutil.IsFilePath(tt.input); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestCheckWritableDir
// ---------------------------------------------------------------------------

func TestCheckWritableDir(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "library")
	if err := fileutil.CheckWritableDir(dir); err != nil {
		t.Fatalf("CheckWritableDir() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("probe file left behind: %d entries", len(entries))
	}
}
