package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withEnv(t *testing.T, key, value string) {
	t.Helper()
	old, had := os.LookupEnv(key)
	require.NoError(t, os.Setenv(key, value))
	t.Cleanup(func() {
		if had {
			os.Setenv(key, old)
		} else {
			os.Unsetenv(key)
		}
	})
}

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("CHUNK_SIZE_MB")
	os.Unsetenv("CHUNK_RECORDS")
	os.Unsetenv("MERGE_K")
	os.Unsetenv("MERGE_PARALLEL_GROUPS")
	os.Unsetenv("MERGE_BUF_MB")

	cfg := Load()
	assert.Equal(t, defaultChunkSizeMB, cfg.ChunkSizeMB)
	assert.Equal(t, defaultChunkRecords, cfg.ChunkRecords)
	assert.Equal(t, defaultMergeK, cfg.MergeK)
	assert.Equal(t, defaultParallelGroups, cfg.ParallelGroups)
	assert.Equal(t, defaultMergeBufMB, cfg.MergeBufMB)
}

func TestLoadOverridesFromEnv(t *testing.T) {
	withEnv(t, "CHUNK_SIZE_MB", "64")
	cfg := Load()
	assert.Equal(t, 64, cfg.ChunkSizeMB)
}

func TestLoadFallsBackOnInvalidValue(t *testing.T) {
	withEnv(t, "CHUNK_SIZE_MB", "not-a-number")
	cfg := Load()
	assert.Equal(t, defaultChunkSizeMB, cfg.ChunkSizeMB)
}

func TestLoadEnforcesMergeKMinimum(t *testing.T) {
	withEnv(t, "MERGE_K", "1")
	cfg := Load()
	assert.Equal(t, defaultMergeK, cfg.MergeK)
}

func TestChunkBudgetBytes(t *testing.T) {
	cfg := &Config{ChunkSizeMB: 10}
	assert.Equal(t, int64(10*1024*1024), cfg.ChunkBudgetBytes())
}
