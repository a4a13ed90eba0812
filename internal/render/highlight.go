package render

import (
	"io"

	"github.com/alecthomas/chroma/v2/quick"
)

// HighlightRecipe writes a recipe's Python source to w with terminal colors.
// When color is false the source is written unchanged.
func HighlightRecipe(w io.Writer, source string, color bool) error {
	if !color {
		_, err := io.WriteString(w, source)
		return err
	}
	return quick.Highlight(w, source, "python", "terminal256", "monokai")
}
