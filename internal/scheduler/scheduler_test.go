package scheduler

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preedep/split-merge-hub-demo/internal/chunk"
	"github.com/preedep/split-merge-hub-demo/internal/config"
	"github.com/preedep/split-merge-hub-demo/internal/record"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestExecuteMergesMultipleInputs(t *testing.T) {
	a := writeFile(t, "a.csv", "id,name\n5,e\n1,a\n3,c\n")
	b := writeFile(t, "b.csv", "id,name\n4,d\n2,b\n")

	out := filepath.Join(t.TempDir(), "out.csv")

	run := Run{
		Inputs: []string{a, b},
		Output: out,
		Spec: chunk.Spec{
			Family:          chunk.Delimited,
			DelimitedSchema: &record.DelimitedSchema{Header: []string{"id", "name"}, Delimiter: ','},
			Keys:            record.KeyList{{FieldIndex: 0, Kind: record.KindNumeric}},
		},
		Cfg: &config.Config{
			ChunkSizeMB:    256,
			ChunkRecords:   2,
			MergeK:         2,
			ParallelGroups: 2,
			MergeBufMB:     1,
		},
		TempDir: t.TempDir(),
	}

	require.NoError(t, Execute(context.Background(), run))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "id,name\n1,a\n2,b\n3,c\n4,d\n5,e\n", string(data))
}

func TestExecuteRejectsDisagreeingHeaders(t *testing.T) {
	a := writeFile(t, "a.csv", "id,name\n1,a\n")
	b := writeFile(t, "b.csv", "name,id\nalice,1\n")

	run := Run{
		Inputs: []string{a, b},
		Output: filepath.Join(t.TempDir(), "out.csv"),
		Spec: chunk.Spec{
			Family:          chunk.Delimited,
			DelimitedSchema: &record.DelimitedSchema{Header: []string{"id", "name"}, Delimiter: ','},
			Keys:            record.KeyList{{FieldIndex: 0, Kind: record.KindNumeric}},
		},
		Cfg:     config.Load(),
		TempDir: t.TempDir(),
	}

	err := Execute(context.Background(), run)
	require.Error(t, err)
}

func TestGroupChunksWideVsNarrow(t *testing.T) {
	chunks := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"}

	narrow := groupChunks(chunks[:3], 2, 4)
	assert.Len(t, narrow, 2) // 3 chunks, K=2: groups of [2,1]

	wide := groupChunks(chunks, 2, 2) // 9 chunks > K*G=4 -> wide mode, G=2 groups
	assert.Len(t, wide, 2)
}
