package admin

import (
	"strconv"
	"sync"

	"gallery-app/internal/domain/catalog"
)

// Workspace is an admin's private copy of the catalog. Edits stay in this
// copy and are never written back to the seed or to any store: they vanish
// with the workspace.
type Workspace struct {
	mu        sync.Mutex
	paintings []catalog.Painting
	nextID    int
}

func NewWorkspace(seed []catalog.Painting) *Workspace {
	w := &Workspace{
		paintings: make([]catalog.Painting, len(seed)),
		nextID:    1,
	}
	copy(w.paintings, seed)

	for _, p := range w.paintings {
		n, err := strconv.Atoi(p.ID)
		if err != nil {
			continue
		}
		if n >= w.nextID {
			w.nextID = n + 1
		}
	}
	return w
}

func (w *Workspace) List() []catalog.Painting {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]catalog.Painting, len(w.paintings))
	copy(out, w.paintings)
	return out
}

func (w *Workspace) Get(id string) (catalog.Painting, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	i := w.indexOf(id)
	if i < 0 {
		return catalog.Painting{}, false
	}
	return w.paintings[i], true
}

// Create appends a painting under the next free numeric id. Ids only move
// forward, so an id is never handed out twice by the same workspace.
func (w *Workspace) Create(f Fields) catalog.Painting {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := strconv.Itoa(w.nextID)
	w.nextID++

	p := f.withDefaults().painting(id)
	w.paintings = append(w.paintings, p)
	return p
}

// Update replaces every editable field of id. An empty image URL keeps the
// current one.
func (w *Workspace) Update(id string, f Fields) (catalog.Painting, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	i := w.indexOf(id)
	if i < 0 {
		return catalog.Painting{}, false
	}
	if f.ImageURL == "" {
		f.ImageURL = w.paintings[i].ImageURL
	}
	p := f.withDefaults().painting(id)
	w.paintings[i] = p
	return p, true
}

func (w *Workspace) Delete(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	i := w.indexOf(id)
	if i < 0 {
		return false
	}
	w.paintings = append(w.paintings[:i:i], w.paintings[i+1:]...)
	return true
}

func (w *Workspace) indexOf(id string) int {
	for i, p := range w.paintings {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Workspaces hands each admin identity its own workspace, created lazily
// from seed.
type Workspaces struct {
	mu     sync.Mutex
	seed   func() []catalog.Painting
	byUser map[string]*Workspace
}

func NewWorkspaces(seed func() []catalog.Painting) *Workspaces {
	return &Workspaces{seed: seed, byUser: make(map[string]*Workspace)}
}

func (ws *Workspaces) For(owner string) *Workspace {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	w, ok := ws.byUser[owner]
	if !ok {
		w = NewWorkspace(ws.seed())
		ws.byUser[owner] = w
	}
	return w
}

// Reset throws away owner's edits; the next For starts from the seed again.
func (ws *Workspaces) Reset(owner string) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	delete(ws.byUser, owner)
}
