// Package config resolves the engine's environment-variable knobs. An
// invalid value is a Budget error: it is logged and the default is
// used, never fatal.
package config

import (
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/preedep/split-merge-hub-demo/internal/obslog"
)

const (
	defaultChunkSizeMB    = 256
	defaultChunkRecords   = 1_000_000
	defaultMergeK         = 2
	minMergeK             = 2
	defaultParallelGroups = 4
	defaultMergeBufMB     = 32
)

var log = obslog.New("config")

// Config holds the resolved values of every engine knob.
type Config struct {
	ChunkSizeMB    int
	ChunkRecords   int
	MergeK         int
	ParallelGroups int
	MergeBufMB     int
}

// Load reads all five environment variables, using the default for any
// variable that is unset, and warning and using the default for any
// value that fails to parse or is below its minimum.
func Load() *Config {
	return &Config{
		ChunkSizeMB:    positiveIntEnv("CHUNK_SIZE_MB", defaultChunkSizeMB),
		ChunkRecords:   positiveIntEnv("CHUNK_RECORDS", defaultChunkRecords),
		MergeK:         atLeastIntEnv("MERGE_K", defaultMergeK, minMergeK),
		ParallelGroups: positiveIntEnv("MERGE_PARALLEL_GROUPS", defaultParallelGroups),
		MergeBufMB:     positiveIntEnv("MERGE_BUF_MB", defaultMergeBufMB),
	}
}

// ChunkBudgetBytes returns the byte budget in bytes (ChunkSizeMB * 1MiB).
func (c *Config) ChunkBudgetBytes() int64 {
	return int64(c.ChunkSizeMB) * 1024 * 1024
}

// MergeBufBytes returns the per-stream merge buffer size in bytes.
func (c *Config) MergeBufBytes() int {
	return c.MergeBufMB * 1024 * 1024
}

func positiveIntEnv(name string, def int) int {
	return atLeastIntEnv(name, def, 1)
}

func atLeastIntEnv(name string, def, min int) int {
	raw, ok := os.LookupEnv(name)
	if !ok {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Warn("invalid value, falling back to default",
			zap.String("var", name), zap.String("value", raw))
		return def
	}
	if v < min {
		log.Warn("value below minimum, falling back to default",
			zap.String("var", name), zap.Int("value", v), zap.Int("min", min))
		return def
	}
	return v
}
