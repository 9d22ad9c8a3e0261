package tour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_Wraps(t *testing.T) {
	c, err := New(5, 6)
	require.NoError(t, err)

	assert.Equal(t, 0, c.Next().Index)
	assert.Equal(t, 4, c.Prev().Index)

	first, _ := New(0, 6)
	assert.Equal(t, 5, first.Prev().Index)
	assert.Equal(t, 1, first.Position())
}

func TestCursor_NormalizesIndex(t *testing.T) {
	c, err := New(-1, 6)
	require.NoError(t, err)
	assert.Equal(t, 5, c.Index)

	c, err = New(13, 6)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Index)
}

func TestCursor_Empty(t *testing.T) {
	_, err := New(0, 0)
	assert.ErrorIs(t, err, ErrEmpty)
}
