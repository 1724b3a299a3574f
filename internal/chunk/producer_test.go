package chunk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preedep/split-merge-hub-demo/internal/config"
	"github.com/preedep/split-merge-hub-demo/internal/record"
	"github.com/preedep/split-merge-hub-demo/internal/tempscope"
)

func writeInput(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func testSpec() Spec {
	return Spec{
		Family:          Delimited,
		DelimitedSchema: &record.DelimitedSchema{Header: []string{"id", "name"}, Delimiter: ','},
		Keys:            record.KeyList{{FieldIndex: 0, Kind: record.KindNumeric}},
	}
}

func testConfig() *config.Config {
	return &config.Config{
		ChunkSizeMB:    256,
		ChunkRecords:   2,
		MergeK:         2,
		ParallelGroups: 4,
		MergeBufMB:     1,
	}
}

func TestProduceSplitsByRecordBudget(t *testing.T) {
	input := writeInput(t, "id,name\n3,c\n1,a\n2,b\n4,d\n5,e\n")
	scope, err := tempscope.Acquire(t.TempDir())
	require.NoError(t, err)
	defer scope.Close()

	paths, err := Produce(input, scope, testSpec(), testConfig())
	require.NoError(t, err)
	// 5 records, budget of 2 per chunk -> 3 chunks (2, 2, 1)
	assert.Len(t, paths, 3)

	for _, p := range paths {
		assertChunkSorted(t, p)
	}
}

func assertChunkSorted(t *testing.T, path string) {
	t.Helper()
	r, err := record.OpenDelimitedReader(path, &record.DelimitedSchema{Header: []string{"id", "name"}, Delimiter: ','}, 0)
	require.NoError(t, err)
	defer r.Close()
	require.NoError(t, r.ReadHeader())

	var prev *record.Record
	keys := record.KeyList{{FieldIndex: 0, Kind: record.KindNumeric}}
	for {
		rec, err := r.Next()
		if err != nil {
			break
		}
		if prev != nil {
			assert.LessOrEqual(t, record.Compare(prev, rec, keys), 0)
		}
		prev = rec
	}
}

func TestProduceSkipsMalformedRecords(t *testing.T) {
	input := writeInput(t, "id,name\n1,a\n2,b,extra\n3,c\n")
	scope, err := tempscope.Acquire(t.TempDir())
	require.NoError(t, err)
	defer scope.Close()

	cfg := testConfig()
	cfg.ChunkRecords = 10
	paths, err := Produce(input, scope, testSpec(), cfg)
	require.NoError(t, err)
	require.Len(t, paths, 1)

	r, err := record.OpenDelimitedReader(paths[0], testSpec().DelimitedSchema, 0)
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
	assert.Equal(t, 2, count) // the malformed row was skipped
}
