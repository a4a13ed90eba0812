// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"runtime"
	"strings"

	"github.com/alnah/go-recipebook/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForConverterNotFound returns hints for a missing converter executable.
func ForConverterNotFound() string {
	var hints []string

	switch {
	case IsInContainer():
		hints = append(hints, "install calibre in the image (apt-get install calibre)")
	case runtime.GOOS == "darwin":
		hints = append(hints, "install calibre and add /Applications/calibre.app/Contents/MacOS to PATH")
	default:
		hints = append(hints, "install calibre so ebook-convert is on PATH")
	}

	if os.Getenv("RECIPEBOOK_CONVERTER_BIN") == "" {
		hints = append(hints, "or set RECIPEBOOK_CONVERTER_BIN to its full path")
	}

	return formatHints(hints)
}

// ForTimeout returns a hint about increasing timeout for slow downloads.
func ForTimeout() string {
	return format("many recipes take longer; raise --timeout or converter.timeout")
}

// ForNoURLs returns a hint when no recipe URL was given.
func ForNoURLs(fromStdin bool) string {
	if fromStdin {
		return format("only lines starting with http:// or https:// are read from stdin")
	}
	return format("pass one or more URLs, or pipe text with --stdin")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-recipebook") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForLibraryDirectory returns hints for library directory errors.
func ForLibraryDirectory() string {
	return format("check the directory is writable, or set --library / RECIPEBOOK_LIBRARY_DIR")
}

// ForLibraryLocked returns a hint when another process holds the library lock.
func ForLibraryLocked() string {
	return format("another recipebook process is importing; retry when it finishes")
}

// ForAssetNotFound returns hints for a missing recipe template or logo.
func ForAssetNotFound(basePath string) string {
	if basePath == "" {
		return format("built-in assets are cookedwiki (recipe) and icon (logo)")
	}
	return format("expected " + basePath + "/recipes/<name>.recipe or " + basePath + "/images/<name>.png")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
