package tour

import "errors"

var ErrEmpty = errors.New("no paintings to show")

// Cursor is the position in the virtual gallery walkthrough. Moving past
// either end wraps around.
type Cursor struct {
	Index int `json:"index"`
	Len   int `json:"len"`
}

func New(index, length int) (Cursor, error) {
	if length <= 0 {
		return Cursor{}, ErrEmpty
	}
	return Cursor{Index: wrap(index, length), Len: length}, nil
}

func (c Cursor) Next() Cursor {
	return Cursor{Index: wrap(c.Index+1, c.Len), Len: c.Len}
}

func (c Cursor) Prev() Cursor {
	return Cursor{Index: wrap(c.Index-1, c.Len), Len: c.Len}
}

// Position is the 1-based counter shown under the painting, "3 / 6".
func (c Cursor) Position() int {
	return c.Index + 1
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
