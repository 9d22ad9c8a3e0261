package catalog

// Catalog is a read-only, ordered painting list. Accessors hand out copies so
// no caller can change what another caller sees.
type Catalog struct {
	paintings []Painting
}

func New(paintings []Painting) Catalog {
	cp := make([]Painting, len(paintings))
	copy(cp, paintings)
	return Catalog{paintings: cp}
}

// NewSeeded builds the catalog served at process start.
func NewSeeded() Catalog {
	return New(Seed())
}

func (c Catalog) All() []Painting {
	out := make([]Painting, len(c.paintings))
	copy(out, c.paintings)
	return out
}

func (c Catalog) Len() int {
	return len(c.paintings)
}

func (c Catalog) Featured() []Painting {
	out := make([]Painting, 0, len(c.paintings))
	for _, p := range c.paintings {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// ByID reports false when no painting carries id; callers send the visitor
// back to the listing.
func (c Catalog) ByID(id string) (Painting, bool) {
	return findByID(c.paintings, id)
}

// Mediums lists distinct media in first-seen order.
func (c Catalog) Mediums() []string {
	seen := make(map[string]bool, len(c.paintings))
	out := make([]string, 0, len(c.paintings))
	for _, p := range c.paintings {
		if seen[p.Medium] {
			continue
		}
		seen[p.Medium] = true
		out = append(out, p.Medium)
	}
	return out
}

func findByID(paintings []Painting, id string) (Painting, bool) {
	for _, p := range paintings {
		if p.ID == id {
			return p, true
		}
	}
	return Painting{}, false
}
