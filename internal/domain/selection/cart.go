package selection

import (
	"net/url"
	"strings"

	"gallery-app/internal/domain/catalog"
)

// Cart is an ordered set of paintings a visitor wants to ask about.
// Operations return a new Cart and leave the receiver untouched.
type Cart struct {
	items []catalog.Painting
}

type CheckoutRequest struct {
	PaintingIDs []string `json:"painting_ids"`
}

func Add(c Cart, p catalog.Painting) Cart {
	if p.Sold || c.Contains(p.ID) {
		return c
	}
	items := make([]catalog.Painting, len(c.items), len(c.items)+1)
	copy(items, c.items)
	return Cart{items: append(items, p)}
}

func Remove(c Cart, id string) Cart {
	if !c.Contains(id) {
		return c
	}
	items := make([]catalog.Painting, 0, len(c.items)-1)
	for _, p := range c.items {
		if p.ID != id {
			items = append(items, p)
		}
	}
	return Cart{items: items}
}

func Total(c Cart) float64 {
	var sum float64
	for _, p := range c.items {
		sum += p.Price
	}
	return sum
}

// Checkout lists the cart in order for the contact workflow. The cart is not
// cleared.
func Checkout(c Cart) CheckoutRequest {
	out := make([]string, 0, len(c.items))
	for _, p := range c.items {
		out = append(out, p.ID)
	}
	return CheckoutRequest{PaintingIDs: out}
}

func (c Cart) Contains(id string) bool {
	for _, p := range c.items {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (c Cart) Items() []catalog.Painting {
	out := make([]catalog.Painting, len(c.items))
	copy(out, c.items)
	return out
}

func (c Cart) Len() int {
	return len(c.items)
}

// ContactURL is the link the site's contact section reads the selection from,
// e.g. "/#contact?paintings=1,2".
func (r CheckoutRequest) ContactURL() string {
	escaped := make([]string, 0, len(r.PaintingIDs))
	for _, id := range r.PaintingIDs {
		escaped = append(escaped, url.QueryEscape(id))
	}
	return "/#contact?paintings=" + strings.Join(escaped, ",")
}
