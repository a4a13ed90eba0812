package jobrunner

import (
	"fmt"
	"strconv"
	"strings"

	recipebook "github.com/alnah/go-recipebook"
)

// BuildArgs renders job arguments as an ebook-convert command line:
// the recipe, the output, then one --option per recommendation. Boolean
// options become bare flags and are omitted when false.
func BuildArgs(args recipebook.JobArgs) []string {
	out := []string{args.ArtifactPath, args.OutputPath}
	for _, rec := range args.Recommendations {
		flag := "--" + strings.ReplaceAll(rec.Name, "_", "-")
		switch v := rec.Value.(type) {
		case bool:
			if v {
				out = append(out, flag)
			}
		case string:
			out = append(out, flag, v)
		case float64:
			out = append(out, flag, strconv.FormatFloat(v, 'f', -1, 64))
		case int:
			out = append(out, flag, strconv.Itoa(v))
		default:
			out = append(out, flag, fmt.Sprint(v))
		}
	}
	return out
}
