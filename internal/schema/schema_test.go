package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preedep/split-merge-hub-demo/internal/record"
)

func TestValidateDelimitedHeadersAgree(t *testing.T) {
	paths := []string{"a.csv", "b.csv"}
	headers := [][]string{{"id", "name"}, {"id", "name"}}
	require.NoError(t, ValidateDelimitedHeaders(paths, headers))
}

func TestValidateDelimitedHeadersDisagree(t *testing.T) {
	paths := []string{"a.csv", "b.csv"}
	headers := [][]string{{"id", "name"}, {"name", "id"}}
	require.Error(t, ValidateDelimitedHeaders(paths, headers))
}

func TestResolveDelimitedSortColumnsCaseInsensitive(t *testing.T) {
	header := []string{"ID", " Name "}
	indices := ResolveDelimitedSortColumns(header, []string{"id", "name"})
	assert.Equal(t, []int{0, 1}, indices)
}

func TestResolveDelimitedSortColumnsFallsBackToFieldZero(t *testing.T) {
	header := []string{"id", "name"}
	indices := ResolveDelimitedSortColumns(header, []string{"nonexistent"})
	assert.Equal(t, []int{0}, indices)
}

func TestResolveFixedWidthSortColumns(t *testing.T) {
	s := &record.FixedWidthSchema{
		RecordBytes: 10,
		Fields: []record.FixedField{
			{Name: "a", Offset: 0, Length: 5, Kind: record.FWString},
			{Name: "b", Offset: 5, Length: 5, Kind: record.FWUint},
		},
	}
	indices, err := ResolveFixedWidthSortColumns(s, []string{"b", "a"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, indices)

	_, err = ResolveFixedWidthSortColumns(s, []string{"unknown"})
	require.Error(t, err)
}

func TestValidateFixedWidthIndicesOutOfRange(t *testing.T) {
	s := &record.FixedWidthSchema{Fields: []record.FixedField{{Name: "a"}}}
	require.NoError(t, ValidateFixedWidthIndices(s, []int{0}))
	require.Error(t, ValidateFixedWidthIndices(s, []int{1}))
}
