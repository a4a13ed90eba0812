// Package recipe edits calibre recipe templates through named slots.
//
// A template is plain Python source. Parse locates a small set of
// assignment lines (the slots) by line-anchored patterns; Set stores a
// Python expression for a slot; Bytes renders the document with every
// filled slot rewritten and every other byte passed through unchanged.
//
// Values from users never reach the template as raw text: callers encode
// them with StringLiteral or ListLiteral, which produce Python string and
// list literals that round-trip to the original value.
package recipe
