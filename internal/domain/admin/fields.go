package admin

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gallery-app/internal/domain/catalog"
)

const MinYear = 2000

var ErrInvalidFields = errors.New("invalid painting fields")

// Fields is everything an admin can set on a painting except its id.
type Fields struct {
	Title       string  `json:"title"`
	Artist      string  `json:"artist"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Dimensions  string  `json:"dimensions"`
	Medium      string  `json:"medium"`
	Year        int     `json:"year"`
	ImageURL    string  `json:"imageUrl"`
	Featured    bool    `json:"featured"`
	Sold        bool    `json:"sold"`
}

// Validate applies the admin form rules. Stored paintings are not rechecked.
func (f Fields) Validate(now time.Time) error {
	var problems []string

	required := []struct {
		name, value string
	}{
		{"title", f.Title},
		{"description", f.Description},
		{"medium", f.Medium},
		{"dimensions", f.Dimensions},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			problems = append(problems, r.name+" is required")
		}
	}

	if f.Price < 0 {
		problems = append(problems, "price must not be negative")
	}
	if f.Year < MinYear || f.Year > now.Year() {
		problems = append(problems, fmt.Sprintf("year must be between %d and %d", MinYear, now.Year()))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidFields, strings.Join(problems, "; "))
	}
	return nil
}

func (f Fields) withDefaults() Fields {
	if strings.TrimSpace(f.Artist) == "" {
		f.Artist = catalog.DefaultArtist
	}
	if strings.TrimSpace(f.ImageURL) == "" {
		f.ImageURL = ImagePathFor(f.Title)
	}
	return f
}

func (f Fields) painting(id string) catalog.Painting {
	return catalog.Painting{
		ID:          id,
		Title:       f.Title,
		Artist:      f.Artist,
		Description: f.Description,
		Price:       f.Price,
		Dimensions:  f.Dimensions,
		Medium:      f.Medium,
		Year:        f.Year,
		ImageURL:    f.ImageURL,
		Featured:    f.Featured,
		Sold:        f.Sold,
	}
}

// FieldsOf is the editable part of p, used to prefill the edit form.
func FieldsOf(p catalog.Painting) Fields {
	return Fields{
		Title:       p.Title,
		Artist:      p.Artist,
		Description: p.Description,
		Price:       p.Price,
		Dimensions:  p.Dimensions,
		Medium:      p.Medium,
		Year:        p.Year,
		ImageURL:    p.ImageURL,
		Featured:    p.Featured,
		Sold:        p.Sold,
	}
}
