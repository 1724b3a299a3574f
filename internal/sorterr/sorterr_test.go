package sorterr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesKind(t *testing.T) {
	err := New(RecordMalformed, "bad row", nil)
	assert.True(t, Is(err, RecordMalformed))
	assert.False(t, Is(err, IoRead))
}

func TestIsFalseForPlainError(t *testing.T) {
	assert.False(t, Is(errors.New("plain"), RecordMalformed))
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("root cause")
	err := New(IoWrite, "writing chunk", cause)
	assert.ErrorIs(t, err, cause)
}

func TestErrorStringIncludesContext(t *testing.T) {
	err := New(SchemaMismatch, "header differs", nil)
	assert.Contains(t, err.Error(), "header differs")
}
