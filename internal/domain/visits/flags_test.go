package visits

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShowInstructions_OnlyFirstTime(t *testing.T) {
	st := NewMemoryStore()

	assert.True(t, ShowInstructions(st))
	assert.False(t, ShowInstructions(st))

	v, ok := st.Get(VirtualGalleryKey)
	assert.True(t, ok)
	assert.Equal(t, "true", v)
}

func TestShowInstructions_FreshStorePerCase(t *testing.T) {
	assert.True(t, ShowInstructions(NewMemoryStore()))
	assert.True(t, ShowInstructions(NewMemoryStore()))
}

func TestStores_PerVisitor(t *testing.T) {
	s := NewStores()

	assert.True(t, ShowInstructions(s.For("a")))
	assert.False(t, ShowInstructions(s.For("a")))
	assert.True(t, ShowInstructions(s.For("b")))
}

func TestStores_ReadDoesNotRemember(t *testing.T) {
	s := NewStores()

	_, ok := s.For("anon").Get(VirtualGalleryKey)
	assert.False(t, ok)
	assert.Zero(t, s.Len())

	s.For("anon").Set("k", "v")
	assert.Equal(t, 1, s.Len())
}

func TestStores_ForgetsOldestPastCap(t *testing.T) {
	s := NewBoundedStores(2)

	for _, v := range []string{"a", "b", "c", "d"} {
		assert.True(t, ShowInstructions(s.For(v)), v)
	}
	assert.Equal(t, 2, s.Len())

	// the two newest are still remembered
	assert.False(t, ShowInstructions(s.For("c")))
	assert.False(t, ShowInstructions(s.For("d")))

	// "a" was evicted and sees the instructions again
	assert.True(t, ShowInstructions(s.For("a")))
	assert.Equal(t, 2, s.Len())
}

func TestStores_ManyAnonymousVisitorsStayBounded(t *testing.T) {
	s := NewBoundedStores(100)
	for i := 0; i < 1000; i++ {
		ShowInstructions(s.For(fmt.Sprintf("visitor-%d", i)))
	}
	assert.Equal(t, 100, s.Len())
}
