package tempscope

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireCreatesDirectory(t *testing.T) {
	scope, err := Acquire(t.TempDir())
	require.NoError(t, err)
	defer scope.Close()

	info, err := os.Stat(scope.Dir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewPathIsUniqueAndWithinScope(t *testing.T) {
	scope, err := Acquire(t.TempDir())
	require.NoError(t, err)
	defer scope.Close()

	a := scope.NewPath("chunk_", ".tmp")
	b := scope.NewPath("chunk_", ".tmp")
	assert.NotEqual(t, a, b)
	assert.Contains(t, a, scope.Dir())
}

func TestCloseRemovesDirectory(t *testing.T) {
	scope, err := Acquire(t.TempDir())
	require.NoError(t, err)
	dir := scope.Dir()

	require.NoError(t, scope.Close())
	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestCloseIsIdempotent(t *testing.T) {
	scope, err := Acquire(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, scope.Close())
	require.NoError(t, scope.Close())
}
