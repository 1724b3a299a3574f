package genfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preedep/split-merge-hub-demo/internal/chunk"
	"github.com/preedep/split-merge-hub-demo/internal/record"
)

func TestGenerateDelimitedFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.csv")
	opts := Options{
		Rows:            10,
		Family:          chunk.Delimited,
		DelimitedSchema: &record.DelimitedSchema{Header: []string{"id", "name"}, Delimiter: ','},
	}
	require.NoError(t, Generate(path, opts))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "id,name\n")

	r, err := record.OpenDelimitedReader(path, opts.DelimitedSchema, 0)
	require.NoError(t, err)
	defer r.Close()
	require.NoError(t, r.ReadHeader())

	var count int
	for {
		_, err := r.Next()
		if err != nil {
			break
		}
		count++
	}
	assert.Equal(t, 10, count)
}

func TestGenerateFixedWidthFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.mtlog")
	opts := Options{Rows: 5, Family: chunk.FixedWidth, FixedSchema: record.MTLogSchema()}
	require.NoError(t, Generate(path, opts))

	info, err := os.Stat(path)
	require.NoError(t, err)
	// each record is RecordBytes + 1 trailing newline
	assert.Equal(t, int64(5*(record.MTLogSchema().RecordBytes+1)), info.Size())
}
