package inquiry

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps inquiries in process memory. It is what the server uses
// when no database is configured.
type MemoryStore struct {
	mu     sync.Mutex
	rows   []ContactRequest
	nextID uint
	now    func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1, now: time.Now}
}

func (m *MemoryStore) Submit(ctx context.Context, r Record) (Ack, error) {
	if err := ctx.Err(); err != nil {
		return Ack{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	cr := NewContactRequest(r, uuid.NewString(), m.now().UTC())
	cr.ID = m.nextID
	m.nextID++
	m.rows = append(m.rows, cr)
	return cr.Ack(), nil
}

func (m *MemoryStore) List(ctx context.Context, status Status) ([]ContactRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]ContactRequest, 0, len(m.rows))
	for _, cr := range m.rows {
		if status == "" || cr.Status == status {
			out = append(out, cr)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *MemoryStore) UpdateStatus(ctx context.Context, id uint, status Status) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !status.Valid() {
		return ErrInvalidStatus
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.rows {
		if m.rows[i].ID == id {
			m.rows[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStore) Get(ctx context.Context, id uint) (ContactRequest, error) {
	if err := ctx.Err(); err != nil {
		return ContactRequest{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, cr := range m.rows {
		if cr.ID == id {
			return cr, nil
		}
	}
	return ContactRequest{}, ErrNotFound
}
