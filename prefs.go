package recipebook

import (
	"fmt"
	"strings"

	"github.com/alnah/go-recipebook/internal/fileutil"
)

// OutputPreferences is a read-only snapshot of the user's conversion
// preferences. Zero values mean "not set": an empty OutputProfile, a zero
// BaseFontSize and false flags produce no recommendation.
type OutputPreferences struct {
	Format        string  // output format, case-insensitive ("epub", "MOBI")
	OutputProfile string  // device profile ("kindle", "tablet")
	BaseFontSize  float64 // points; 0 = unset
	KeepLigatures bool    // only meaningful with BaseFontSize
	Header        bool    // LRF header
	EPUBFlatten   bool    // flatten EPUB file structure
}

// NormalizedFormat returns the trimmed, uppercased format.
func (p OutputPreferences) NormalizedFormat() string {
	return strings.ToUpper(strings.TrimSpace(p.Format))
}

// validateFormat checks the format is usable as a file extension.
func (p OutputPreferences) validateFormat() error {
	format := p.NormalizedFormat()
	if format == "" {
		return ErrEmptyFormat
	}
	for _, r := range format {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return fmt.Errorf("%w: %q", ErrInvalidFormat, p.Format)
		}
	}
	if err := fileutil.ValidateSuffix(outputSuffix(format)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return nil
}

// Priority ranks a conversion option against the converter's own defaults.
type Priority int

// Recommendation priorities, lowest first.
const (
	PriorityLow Priority = iota + 1
	PriorityMedium
	PriorityHigh
)

// String returns the priority name.
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	default:
		return fmt.Sprintf("Priority(%d)", int(p))
	}
}

// Recommendation is one conversion option passed to the converter.
// Value holds a string, float64 or bool.
type Recommendation struct {
	Name     string
	Value    any
	Priority Priority
}

// Recommendations builds the converter options implied by prefs, in a
// fixed order: output_profile, base_font_size, keep_ligatures, header,
// header_format, epub_flatten.
func Recommendations(prefs OutputPreferences) []Recommendation {
	var recs []Recommendation
	add := func(name string, value any) {
		recs = append(recs, Recommendation{Name: name, Value: value, Priority: PriorityHigh})
	}

	if prefs.OutputProfile != "" {
		add("output_profile", prefs.OutputProfile)
	}
	if prefs.BaseFontSize != 0 {
		add("base_font_size", prefs.BaseFontSize)
		add("keep_ligatures", prefs.KeepLigatures)
	}
	if prefs.Header {
		add("header", true)
		add("header_format", "%t")
	}
	if prefs.EPUBFlatten {
		add("epub_flatten", true)
	}
	return recs
}
