package recipe

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// ErrSlotMissing indicates the template has no line for the requested slot.
var ErrSlotMissing = errors.New("template slot missing")

// Slot names a replaceable assignment in a recipe template.
type Slot string

// Known slots, in the order Parse reports them.
const (
	SlotURLs  Slot = "urls"
	SlotTitle Slot = "title"
	SlotLogo  Slot = "logo"
)

// Slots lists every slot Parse looks for.
var Slots = []Slot{SlotURLs, SlotTitle, SlotLogo}

var (
	urlsPattern  = regexp.MustCompile(`^([ \t]+urls = ).+?# REPLACE_ME_URLS`)
	titlePattern = regexp.MustCompile(`^([ \t]+title[ \t]+=[ \t]+)DEFAULT_TITLE`)
)

const logoMarker = "LOGO = None"

// span is the part of one line a slot rewrites: line[start:end] becomes
// prefix + value.
type span struct {
	line   int
	start  int
	end    int
	prefix string
}

// Document is a parsed recipe template.
// It is not safe for concurrent use.
type Document struct {
	lines  []string // each line keeps its terminator
	spans  map[Slot]span
	values map[Slot]string
}

// Parse splits src into lines and locates every known slot. The first
// matching line wins for each slot; templates without a slot still parse
// and report it through Missing.
func Parse(src []byte) *Document {
	doc := &Document{
		lines:  strings.SplitAfter(string(src), "\n"),
		spans:  make(map[Slot]span, len(Slots)),
		values: make(map[Slot]string, len(Slots)),
	}

	for i, raw := range doc.lines {
		line := trimEOL(raw)
		if _, ok := doc.spans[SlotURLs]; !ok {
			if m := urlsPattern.FindStringSubmatchIndex(line); m != nil {
				doc.spans[SlotURLs] = span{line: i, start: m[0], end: m[1], prefix: line[m[2]:m[3]]}
			}
		}
		if _, ok := doc.spans[SlotTitle]; !ok {
			if m := titlePattern.FindStringSubmatchIndex(line); m != nil {
				doc.spans[SlotTitle] = span{line: i, start: m[0], end: m[1], prefix: line[m[2]:m[3]]}
			}
		}
		if _, ok := doc.spans[SlotLogo]; !ok {
			if idx := strings.Index(line, logoMarker); idx >= 0 {
				doc.spans[SlotLogo] = span{line: i, start: idx, end: idx + len(logoMarker), prefix: "LOGO = "}
			}
		}
	}
	return doc
}

// Has reports whether the template contains the slot.
func (d *Document) Has(slot Slot) bool {
	_, ok := d.spans[slot]
	return ok
}

// Missing returns the known slots the template does not contain.
func (d *Document) Missing() []Slot {
	var missing []Slot
	for _, s := range Slots {
		if !d.Has(s) {
			missing = append(missing, s)
		}
	}
	return missing
}

// Set assigns a Python expression to a slot. The expression is written
// as-is; use StringLiteral or ListLiteral for untrusted values.
func (d *Document) Set(slot Slot, expr string) error {
	if !d.Has(slot) {
		return fmt.Errorf("%w: %s", ErrSlotMissing, slot)
	}
	d.values[slot] = expr
	return nil
}

// Bytes renders the document. Unset slots keep their original text.
func (d *Document) Bytes() []byte {
	byLine := make(map[int][]Slot, len(d.values))
	for slot := range d.values {
		line := d.spans[slot].line
		byLine[line] = append(byLine[line], slot)
	}

	var b strings.Builder
	for i, line := range d.lines {
		slots, ok := byLine[i]
		if !ok {
			b.WriteString(line)
			continue
		}
		b.WriteString(d.rewrite(line, slots))
	}
	return []byte(b.String())
}

// rewrite applies the filled slots of one line right to left so earlier
// offsets stay valid.
func (d *Document) rewrite(line string, slots []Slot) string {
	sort.Slice(slots, func(a, b int) bool {
		return d.spans[slots[a]].start > d.spans[slots[b]].start
	})
	for _, slot := range slots {
		sp := d.spans[slot]
		line = line[:sp.start] + sp.prefix + d.values[slot] + line[sp.end:]
	}
	return line
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
