package selection

import (
	"sync"
	"sync/atomic"
	"testing"

	"gallery-app/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func painting(t *testing.T, id string) catalog.Painting {
	t.Helper()
	p, ok := catalog.NewSeeded().ByID(id)
	require.True(t, ok)
	return p
}

func TestCart_AddThenRemoveIsEmpty(t *testing.T) {
	var c Cart
	c = Add(c, painting(t, "1"))
	require.Equal(t, 1, c.Len())

	c = Remove(c, "1")
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, Checkout(c).PaintingIDs)
}

func TestCart_AddSoldIsNoop(t *testing.T) {
	c := Add(Cart{}, painting(t, "2"))
	got := Add(c, painting(t, "4"))

	assert.Equal(t, []string{"2"}, Checkout(got).PaintingIDs)
}

func TestCart_AddDuplicateIsNoop(t *testing.T) {
	c := Add(Cart{}, painting(t, "1"))
	c = Add(c, painting(t, "1"))
	assert.Equal(t, 1, c.Len())
}

func TestCart_KeepsInsertionOrder(t *testing.T) {
	var c Cart
	for _, id := range []string{"5", "1", "6"} {
		c = Add(c, painting(t, id))
	}
	assert.Equal(t, []string{"5", "1", "6"}, Checkout(c).PaintingIDs)

	c = Remove(c, "1")
	assert.Equal(t, []string{"5", "6"}, Checkout(c).PaintingIDs)
}

func TestCart_RemoveAbsentIsNoop(t *testing.T) {
	c := Add(Cart{}, painting(t, "1"))
	assert.Equal(t, c, Remove(c, "42"))
}

func TestCart_OperationsDoNotMutateInput(t *testing.T) {
	base := Add(Cart{}, painting(t, "1"))
	_ = Add(base, painting(t, "2"))
	_ = Remove(base, "1")

	assert.Equal(t, []string{"1"}, Checkout(base).PaintingIDs)
}

func TestCart_Total(t *testing.T) {
	assert.Zero(t, Total(Cart{}))

	c := Add(Cart{}, painting(t, "1"))
	c = Add(c, painting(t, "3"))
	c = Add(c, painting(t, "6"))
	assert.InDelta(t, 1200+950+1550, Total(c), 0.0001)
}

func TestCheckout_DoesNotClear(t *testing.T) {
	c := Add(Cart{}, painting(t, "2"))
	req := Checkout(c)

	assert.Equal(t, []string{"2"}, req.PaintingIDs)
	assert.Equal(t, 1, c.Len())
}

func TestCheckoutRequest_ContactURL(t *testing.T) {
	req := CheckoutRequest{PaintingIDs: []string{"1", "2"}}
	assert.Equal(t, "/#contact?paintings=1,2", req.ContactURL())

	assert.Equal(t, "/#contact?paintings=", CheckoutRequest{}.ContactURL())
}

func TestRegistry_PerVisitor(t *testing.T) {
	r := NewRegistry()
	r.Add("a", painting(t, "1"))
	r.Add("b", painting(t, "2"))
	r.Add("a", painting(t, "5"))

	assert.Equal(t, []string{"1", "5"}, Checkout(r.Get("a")).PaintingIDs)
	assert.Equal(t, []string{"2"}, Checkout(r.Get("b")).PaintingIDs)

	r.Remove("a", "1")
	assert.Equal(t, []string{"5"}, Checkout(r.Get("a")).PaintingIDs)

	_, ok := r.Add("a", painting(t, "5"))
	assert.False(t, ok)
	_, ok = r.Add("c", painting(t, "4"))
	assert.False(t, ok, "sold")
	assert.Equal(t, 0, r.Get("c").Len())

	r.Clear("b")
	assert.Equal(t, 0, r.Get("b").Len())
	assert.Equal(t, 0, r.Get("unknown").Len())
}

func TestRegistry_ConcurrentAdds(t *testing.T) {
	r := NewRegistry()
	ps := catalog.Seed()

	var (
		wg    sync.WaitGroup
		added atomic.Int32
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, ok := r.Add("v", ps[i%len(ps)]); ok {
				added.Add(1)
			}
		}(i)
	}
	wg.Wait()

	// five unsold paintings, no duplicates, each reported as added once
	assert.Equal(t, 5, r.Get("v").Len())
	assert.EqualValues(t, 5, added.Load())
}
