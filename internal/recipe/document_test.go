package recipe

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

// Notes:
// - The fixture mirrors the embedded template's slot lines; the asset
//   package tests cover that the real template still has them.
// - Rendering must leave every non-slot line byte-identical.

const fixture = `LOGO = None
DEFAULT_TITLE = 'Cooked Wiki Recipes'


class R(BasicNewsRecipe):

    title = DEFAULT_TITLE
    urls = []  # REPLACE_ME_URLS
    subtitle = DEFAULT_TITLE

    def cover(self):
        return LOGO
`

// ---------------------------------------------------------------------------
// TestParse - slot discovery
// ---------------------------------------------------------------------------

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		src         string
		wantMissing []Slot
	}{
		{"all slots", fixture, nil},
		{"empty template", "", []Slot{SlotURLs, SlotTitle, SlotLogo}},
		{"unindented title is not a slot", "title = DEFAULT_TITLE\n    urls = [] # REPLACE_ME_URLS\nLOGO = None\n", []Slot{SlotTitle}},
		{"urls without marker", "    urls = []\n    title = DEFAULT_TITLE\nLOGO = None\n", []Slot{SlotURLs}},
		{"title across lines is not a slot", "    title =\nDEFAULT_TITLE\n    urls = [] # REPLACE_ME_URLS\nLOGO = None", []Slot{SlotTitle}},
		{"crlf line endings", "LOGO = None\r\n    title = DEFAULT_TITLE\r\n    urls = [] # REPLACE_ME_URLS\r\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := Parse([]byte(tt.src))
			if got := doc.Missing(); !slices.Equal(got, tt.wantMissing) {
				t.Errorf("Missing() = %v, want %v", got, tt.wantMissing)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDocument_Bytes - rendering filled slots
// ---------------------------------------------------------------------------

func TestDocument_Bytes_Unfilled(t *testing.T) {
	t.Parallel()

	doc := Parse([]byte(fixture))
	if got := string(doc.Bytes()); got != fixture {
		t.Errorf("Bytes() changed an unfilled template:\n%s", got)
	}
}

func TestDocument_Bytes_Filled(t *testing.T) {
	t.Parallel()

	doc := Parse([]byte(fixture))
	mustSet(t, doc, SlotURLs, ListLiteral([]string{"http://example.com/a"}))
	mustSet(t, doc, SlotTitle, StringLiteral("My Book"))
	mustSet(t, doc, SlotLogo, StringLiteral("/tmp/logo.png"))

	got := string(doc.Bytes())
	want := strings.NewReplacer(
		"    urls = []  # REPLACE_ME_URLS", "    urls = ['http://example.com/a']",
		"    title = DEFAULT_TITLE", "    title = 'My Book'",
		"LOGO = None", "LOGO = '/tmp/logo.png'",
	).Replace(fixture)

	if got != want {
		t.Errorf("Bytes() =\n%s\nwant\n%s", got, want)
	}
}

func TestDocument_Bytes_OtherLinesUnchanged(t *testing.T) {
	t.Parallel()

	doc := Parse([]byte(fixture))
	mustSet(t, doc, SlotURLs, ListLiteral([]string{"x'\nimport os"}))

	gotLines := strings.Split(string(doc.Bytes()), "\n")
	wantLines := strings.Split(fixture, "\n")
	if len(gotLines) != len(wantLines) {
		t.Fatalf("line count = %d, want %d", len(gotLines), len(wantLines))
	}

	changed := 0
	for i := range gotLines {
		if gotLines[i] != wantLines[i] {
			changed++
			if !strings.HasPrefix(gotLines[i], "    urls = ") {
				t.Errorf("unexpected change on line %d: %q", i+1, gotLines[i])
			}
		}
	}
	if changed != 1 {
		t.Errorf("changed lines = %d, want 1", changed)
	}
}

func TestDocument_Bytes_KeepsTextAfterSlot(t *testing.T) {
	t.Parallel()

	src := "    urls = [] # REPLACE_ME_URLS trailing\r\n    title = DEFAULT_TITLE  # keep\r\n"
	doc := Parse([]byte(src))
	mustSet(t, doc, SlotURLs, "[]")
	mustSet(t, doc, SlotTitle, "'T'")

	want := "    urls = [] trailing\r\n    title = 'T'  # keep\r\n"
	if got := string(doc.Bytes()); got != want {
		t.Errorf("Bytes() = %q, want %q", got, want)
	}
}

func TestDocument_Bytes_TwoSlotsOneLine(t *testing.T) {
	t.Parallel()

	src := "    title = DEFAULT_TITLE; LOGO = None\n"
	doc := Parse([]byte(src))
	mustSet(t, doc, SlotTitle, "'T'")
	mustSet(t, doc, SlotLogo, "'/l.png'")

	want := "    title = 'T'; LOGO = '/l.png'\n"
	if got := string(doc.Bytes()); got != want {
		t.Errorf("Bytes() = %q, want %q", got, want)
	}
}

func TestDocument_Set_Missing(t *testing.T) {
	t.Parallel()

	doc := Parse([]byte("nothing here\n"))
	err := doc.Set(SlotTitle, "'x'")
	if !errors.Is(err, ErrSlotMissing) {
		t.Errorf("Set() error = %v, want ErrSlotMissing", err)
	}
	if got := string(doc.Bytes()); got != "nothing here\n" {
		t.Errorf("Bytes() = %q, want input unchanged", got)
	}
}

func mustSet(t *testing.T, doc *Document, slot Slot, expr string) {
	t.Helper()
	if err := doc.Set(slot, expr); err != nil {
		t.Fatalf("Set(%s) error = %v", slot, err)
	}
}
