package recipebook

import "strings"

// NormalizeURLs trims each entry, drops empty ones and prefixes http://
// when an entry has no scheme. Order and duplicates are preserved.
func NormalizeURLs(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if !hasScheme(s) {
			s = "http://" + s
		}
		out = append(out, s)
	}
	return out
}

// hasScheme reports whether s starts with a URL scheme followed by a colon:
// a letter, then letters, digits, '+', '-' or '.'. The rest of s is not
// parsed, so a malformed URL keeps its scheme.
func hasScheme(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' || c == '+' || c == '-' || c == '.':
			if i == 0 {
				return false
			}
		case c == ':':
			return i > 0
		default:
			return false
		}
	}
	return false
}

// isLineBreak reports whether r ends a line in pasted text. Besides \n and
// \r this covers the vertical tab, form feed, the file, group and record
// separators, NEL and the Unicode line and paragraph separators.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// ExtractURLs returns the lines of text that start with http:// or https://
// (case-insensitive), trimmed, in order. It is used to prefill URLs from
// pasted or clipboard text.
func ExtractURLs(text string) []string {
	var urls []string
	for _, line := range strings.FieldsFunc(text, isLineBreak) {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)
		if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
			urls = append(urls, line)
		}
	}
	return urls
}
