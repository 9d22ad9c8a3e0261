package catalog

import "fmt"

const maxRelated = 3

type Detail struct {
	Painting Painting   `json:"painting"`
	Related  []Painting `json:"related"`
}

// Resolve finds id and up to three other paintings that share its medium or
// its artist, in catalog order.
func Resolve(paintings []Painting, id string) (Detail, bool) {
	p, ok := findByID(paintings, id)
	if !ok {
		return Detail{}, false
	}

	related := make([]Painting, 0, maxRelated)
	for _, other := range paintings {
		if len(related) == maxRelated {
			break
		}
		if other.ID == p.ID {
			continue
		}
		if other.Medium == p.Medium || other.Artist == p.Artist {
			related = append(related, other)
		}
	}

	return Detail{Painting: p, Related: related}, true
}

// InquiryMessage is the text prefilled in the detail page contact form.
func InquiryMessage(p Painting) string {
	return fmt.Sprintf("Je suis intéressé(e) par \"%s\" de %s.", p.Title, p.Artist)
}
