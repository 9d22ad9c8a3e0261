package visits

import "sync"

const VirtualGalleryKey = "hasVisitedVirtualGallery"

// FlagStore is a small key-value store scoped to one visitor.
type FlagStore interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// ShowInstructions reports whether the virtual gallery instructions should be
// shown, which is only the case on the first call for a store.
func ShowInstructions(store FlagStore) bool {
	if _, seen := store.Get(VirtualGalleryKey); seen {
		return false
	}
	store.Set(VirtualGalleryKey, "true")
	return true
}

type MemoryStore struct {
	mu   sync.Mutex
	vals map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{vals: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.vals[key]
	return v, ok
}

func (m *MemoryStore) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vals[key] = value
}

// DefaultMaxVisitors caps how many visitors Stores remembers.
const DefaultMaxVisitors = 10000

// Stores keeps one FlagStore per visitor id. A visitor gets an entry on the
// first Set; past max entries the oldest visitor is forgotten and will see
// the instructions again.
type Stores struct {
	mu     sync.Mutex
	max    int
	stores map[string]*MemoryStore
	order  []string
}

func NewStores() *Stores {
	return NewBoundedStores(DefaultMaxVisitors)
}

func NewBoundedStores(max int) *Stores {
	if max <= 0 {
		max = DefaultMaxVisitors
	}
	return &Stores{max: max, stores: make(map[string]*MemoryStore)}
}

func (s *Stores) For(visitor string) FlagStore {
	return visitorFlags{stores: s, visitor: visitor}
}

// Len is the number of visitors currently remembered.
func (s *Stores) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.stores)
}

func (s *Stores) lookup(visitor string) (*MemoryStore, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.stores[visitor]
	return st, ok
}

func (s *Stores) getOrCreate(visitor string) *MemoryStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.stores[visitor]; ok {
		return st
	}
	for len(s.order) >= s.max {
		delete(s.stores, s.order[0])
		s.order = s.order[1:]
	}
	st := NewMemoryStore()
	s.stores[visitor] = st
	s.order = append(s.order, visitor)
	return st
}

type visitorFlags struct {
	stores  *Stores
	visitor string
}

func (v visitorFlags) Get(key string) (string, bool) {
	st, ok := v.stores.lookup(v.visitor)
	if !ok {
		return "", false
	}
	return st.Get(key)
}

func (v visitorFlags) Set(key, value string) {
	v.stores.getOrCreate(v.visitor).Set(key, value)
}
