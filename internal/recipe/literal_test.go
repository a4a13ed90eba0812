package recipe

import "testing"

// ---------------------------------------------------------------------------
// TestStringLiteral - Python repr() compatible string encoding
// ---------------------------------------------------------------------------

func TestStringLiteral(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", `''`},
		{"plain", "My Book", `'My Book'`},
		{"single quote switches to double", "Grandma's Pie", `"Grandma's Pie"`},
		{"both quotes keep single", `it's "good"`, `'it\'s "good"'`},
		{"double quote only", `say "hi"`, `'say "hi"'`},
		{"backslash", `C:\recipes`, `'C:\\recipes'`},
		{"newline and tab", "a\nb\tc\rd", `'a\nb\tc\rd'`},
		{"injection attempt", "x'\nimport os\n#", `"x'\nimport os\n#"`},
		{"nul byte", "a\x00b", `'a\x00b'`},
		{"escape char", "\x1b[0m", `'\x1b[0m'`},
		{"delete", "\x7f", `'\x7f'`},
		{"latin accents kept", "crème brûlée", `'crème brûlée'`},
		{"cjk kept", "拉面", `'拉面'`},
		{"emoji kept", "🍜", `'🍜'`},
		{"no-break space escaped", "a\u00a0b", `'a\xa0b'`},
		{"line separator escaped", "a\u2028b", `'a\u2028b'`},
		{"private use plane escaped", "\U000f0000", `'\U000f0000'`},
		{"invalid utf8 replaced", "a\xffb", "'a\uFFFDb'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := StringLiteral(tt.input); got != tt.want {
				t.Errorf("StringLiteral(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestListLiteral(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []string
		want  string
	}{
		{"nil", nil, "[]"},
		{"empty", []string{}, "[]"},
		{"one", []string{"http://example.com/a"}, `['http://example.com/a']`},
		{"two", []string{"http://a", "https://b"}, `['http://a', 'https://b']`},
		{"mixed quoting", []string{"it's", "plain"}, `["it's", 'plain']`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ListLiteral(tt.input); got != tt.want {
				t.Errorf("ListLiteral(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}
