package hints

// Notes:
// - ForConverterNotFound tests cannot use t.Parallel() because they:
//   1. Use t.Setenv() which modifies process environment
//   2. Modify the package-level IsInContainer variable

import (
	"strings"
	"testing"
)

func TestForConverterNotFound_InContainer(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return true }

	t.Setenv("RECIPEBOOK_CONVERTER_BIN", "")

	hint := ForConverterNotFound()
	if !strings.HasPrefix(hint, "\n  hint: ") {
		t.Errorf("hint = %q, want hint prefix", hint)
	}
	if !strings.Contains(hint, "apt-get install calibre") {
		t.Error("expected container install suggestion")
	}
	if !strings.Contains(hint, "RECIPEBOOK_CONVERTER_BIN") {
		t.Error("expected env var suggestion")
	}
}

func TestForConverterNotFound_BinSet(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return false }

	t.Setenv("RECIPEBOOK_CONVERTER_BIN", "/opt/calibre/ebook-convert")

	if hint := ForConverterNotFound(); strings.Contains(hint, "RECIPEBOOK_CONVERTER_BIN") {
		t.Errorf("hint = %q, should not suggest a variable that is set", hint)
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		paths []string
		want  string
	}{
		{"no user path", []string{"work.yaml"}, "use --config"},
		{"user path suggested", []string{"work.yaml", "/home/u/.config/go-recipebook/work.yaml"}, "or create /home/u/.config/go-recipebook/work.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ForConfigNotFound(tt.paths); !strings.Contains(got, tt.want) {
				t.Errorf("ForConfigNotFound() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestSimpleHints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"timeout", ForTimeout(), "--timeout"},
		{"no urls args", ForNoURLs(false), "--stdin"},
		{"no urls stdin", ForNoURLs(true), "http://"},
		{"library dir", ForLibraryDirectory(), "RECIPEBOOK_LIBRARY_DIR"},
		{"library locked", ForLibraryLocked(), "retry"},
		{"embedded assets", ForAssetNotFound(""), "cookedwiki"},
		{"custom assets", ForAssetNotFound("/a"), "/a/recipes/<name>.recipe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !strings.HasPrefix(tt.got, "\n  hint: ") || !strings.Contains(tt.got, tt.want) {
				t.Errorf("hint = %q, want prefix and %q", tt.got, tt.want)
			}
		})
	}
}

func TestFormatHints_Empty(t *testing.T) {
	t.Parallel()

	if got := formatHints(nil); got != "" {
		t.Errorf("formatHints(nil) = %q, want empty", got)
	}
	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
}
