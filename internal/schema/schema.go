// Package schema implements cross-file schema agreement checks and
// sort-column name resolution, for both the delimited and fixed-width
// record families.
package schema

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"github.com/preedep/split-merge-hub-demo/internal/obslog"
	"github.com/preedep/split-merge-hub-demo/internal/record"
	"github.com/preedep/split-merge-hub-demo/internal/sorterr"
)

var log = obslog.New("schema")

// ValidateDelimitedHeaders requires every header in headers (one per
// input file, in file order) to be element-wise equal to headers[0].
// Every disagreeing file is reported; the caller aborts the run on any
// non-nil error.
func ValidateDelimitedHeaders(paths []string, headers [][]string) error {
	if len(headers) == 0 {
		return nil
	}
	want := headers[0]
	var errs *multierror.Error
	for i, got := range headers[1:] {
		if !equalHeader(got, want) {
			errs = multierror.Append(errs, fmt.Errorf(
				"%s: header %v disagrees with %s's header %v",
				paths[i+1], got, paths[0], want))
		}
	}
	if errs.ErrorOrNil() != nil {
		return sorterr.New(sorterr.SchemaMismatch, "header mismatch across inputs", errs.ErrorOrNil())
	}
	return nil
}

func equalHeader(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ResolveDelimitedSortColumns maps requested column names to field
// indices against header. Resolution is case-insensitive and trims
// surrounding whitespace from both the header and the request. An
// unresolved name is warned about, along with substring-containment
// near-matches; if no name resolves at all, the run falls back to
// field 0 with a warning.
func ResolveDelimitedSortColumns(header []string, names []string) []int {
	log.Info("resolving sort columns", zap.Strings("header", header), zap.Strings("requested", names))

	var indices []int
	for _, raw := range names {
		want := strings.TrimSpace(raw)
		idx := -1
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), want) {
				idx = i
				break
			}
		}
		if idx >= 0 {
			indices = append(indices, idx)
			continue
		}

		log.Warn("sort column not found in header", zap.String("column", want))
		if similar := nearMatches(header, want); len(similar) > 0 {
			log.Warn("did you mean one of these?", zap.Strings("candidates", similar))
		}
	}

	if len(indices) == 0 {
		log.Warn("no requested sort columns resolved, falling back to field 0", zap.Strings("header", header))
		return []int{0}
	}
	return indices
}

// nearMatches returns header columns whose lowercased, trimmed text
// contains want's lowercased, trimmed text as a substring.
func nearMatches(header []string, want string) []string {
	needle := strings.ToLower(strings.TrimSpace(want))
	var out []string
	for _, h := range header {
		if strings.Contains(strings.ToLower(strings.TrimSpace(h)), needle) {
			out = append(out, h)
		}
	}
	return out
}

// ValidateFixedWidthIndices checks that every requested field index is
// within range for schema and that the field's declared type is one of
// the supported kinds (date, time, uint, int, string).
func ValidateFixedWidthIndices(s *record.FixedWidthSchema, indices []int) error {
	for _, i := range indices {
		if i < 0 || i >= s.FieldCount() {
			return sorterr.New(sorterr.SchemaMismatch,
				fmt.Sprintf("sort field index %d out of range [0,%d)", i, s.FieldCount()), nil)
		}
		if k := s.Fields[i].Kind; k < record.FWString || k > record.FWTime {
			return sorterr.New(sorterr.SchemaMismatch,
				fmt.Sprintf("sort field %q has unsupported type %d", s.Fields[i].Name, k), nil)
		}
	}
	return nil
}

// ResolveFixedWidthSortColumns maps requested field names to indices
// against the static schema. Unlike the delimited family this never
// falls back silently: an unresolved name is an immediate schema
// error since the schema is not user-supplied data, it is a build-time
// constant the caller should get right.
func ResolveFixedWidthSortColumns(s *record.FixedWidthSchema, names []string) ([]int, error) {
	indices := make([]int, 0, len(names))
	var errs *multierror.Error
	for _, raw := range names {
		want := strings.TrimSpace(raw)
		idx := s.FieldIndexByName(want)
		if idx < 0 {
			errs = multierror.Append(errs, fmt.Errorf("unknown fixed-width field %q", want))
			continue
		}
		indices = append(indices, idx)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, sorterr.New(sorterr.SchemaMismatch, "resolving fixed-width sort fields", err)
	}
	return indices, nil
}

// BuildFixedWidthKeyList resolves names against the static schema and
// pairs each index with that field's declared default comparison kind.
func BuildFixedWidthKeyList(s *record.FixedWidthSchema, names []string) (record.KeyList, error) {
	indices, err := ResolveFixedWidthSortColumns(s, names)
	if err != nil {
		return nil, err
	}
	if err := ValidateFixedWidthIndices(s, indices); err != nil {
		return nil, err
	}
	keys := make(record.KeyList, len(indices))
	for i, idx := range indices {
		keys[i] = record.Key{FieldIndex: idx, Kind: s.Fields[idx].Kind.DefaultCompareKind()}
	}
	return keys, nil
}
