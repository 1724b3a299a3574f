package record

import (
	"bytes"
	"strconv"
)

// CompareKind governs how a field's bytes are coerced before comparison.
// Exactly one policy is used for numeric fields across the whole
// engine: numeric-with-text-fallback.
type CompareKind int

const (
	// KindString compares fields as raw bytes, lexicographically.
	KindString CompareKind = iota
	// KindNumeric parses both fields as int64; if either fails to
	// parse, falls back to byte-lexicographic comparison of both.
	KindNumeric
	// KindDate compares on the field's zero-padded canonical text,
	// which for this engine's record families is always already
	// zero-padded, so this is byte-lexicographic.
	KindDate
	// KindTime behaves identically to KindDate.
	KindTime
)

// Key is one (field-index, comparison-kind) pair in a sort-key list.
type Key struct {
	FieldIndex int
	Kind       CompareKind
}

// KeyList is an ordered list of Keys defining a total pre-order.
type KeyList []Key

// Compare returns <0, 0, >0 as a sorts before, ties, or sorts after b
// under keys, iterating keys in order and returning on the first
// non-equal comparison.
func Compare(a, b *Record, keys KeyList) int {
	for _, k := range keys {
		av, bv := a.Field(k.FieldIndex), b.Field(k.FieldIndex)
		if c := compareField(av, bv, k.Kind); c != 0 {
			return c
		}
	}
	return 0
}

func compareField(av, bv []byte, kind CompareKind) int {
	switch kind {
	case KindNumeric:
		an, aerr := strconv.ParseInt(string(bytes.TrimSpace(av)), 10, 64)
		bn, berr := strconv.ParseInt(string(bytes.TrimSpace(bv)), 10, 64)
		if aerr != nil || berr != nil {
			return bytes.Compare(av, bv)
		}
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		default:
			return 0
		}
	default: // KindString, KindDate, KindTime
		return bytes.Compare(av, bv)
	}
}
