package selection

import (
	"sync"

	"gallery-app/internal/domain/catalog"
)

// Registry keeps one cart per visitor session. Carts only live in memory and
// are gone after a restart, like the page state they replace.
type Registry struct {
	mu    sync.Mutex
	carts map[string]Cart
}

func NewRegistry() *Registry {
	return &Registry{carts: make(map[string]Cart)}
}

func (r *Registry) Get(visitor string) Cart {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.carts[visitor]
}

// Add reports whether p actually went into the cart; sold paintings and
// duplicates leave it unchanged.
func (r *Registry) Add(visitor string, p catalog.Painting) (Cart, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	before := r.carts[visitor]
	c := Add(before, p)
	if c.Len() == before.Len() {
		return before, false
	}
	r.carts[visitor] = c
	return c, true
}

func (r *Registry) Remove(visitor, id string) Cart {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := Remove(r.carts[visitor], id)
	if c.Len() == 0 {
		delete(r.carts, visitor)
		return c
	}
	r.carts[visitor] = c
	return c
}

// Clear drops a visitor's cart. Checkout never calls it; callers decide.
func (r *Registry) Clear(visitor string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, visitor)
}
