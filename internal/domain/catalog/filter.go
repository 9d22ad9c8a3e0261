package catalog

import (
	"fmt"
	"strings"
)

const All = "all"

type PriceRange string

const (
	PriceAll        PriceRange = All
	PriceUnder1000  PriceRange = "under1000"
	Price1000To2000 PriceRange = "1000to2000"
	PriceOver2000   PriceRange = "over2000"
)

type Availability string

const (
	AvailabilityAll       Availability = All
	AvailabilityAvailable Availability = "available"
	AvailabilitySold      Availability = "sold"
)

type Criteria struct {
	Query        string       `json:"query"`
	Medium       string       `json:"medium"`
	PriceRange   PriceRange   `json:"priceRange"`
	Availability Availability `json:"availability"`
}

// AllCriteria matches every painting.
func AllCriteria() Criteria {
	return Criteria{
		Medium:       All,
		PriceRange:   PriceAll,
		Availability: AvailabilityAll,
	}
}

// Normalize maps empty selector values to "all".
func (c Criteria) Normalize() Criteria {
	if c.Medium == "" {
		c.Medium = All
	}
	if c.PriceRange == "" {
		c.PriceRange = PriceAll
	}
	if c.Availability == "" {
		c.Availability = AvailabilityAll
	}
	return c
}

func (c Criteria) Validate() error {
	switch c.PriceRange {
	case PriceAll, PriceUnder1000, Price1000To2000, PriceOver2000:
	default:
		return fmt.Errorf("unknown price range %q", c.PriceRange)
	}
	switch c.Availability {
	case AvailabilityAll, AvailabilityAvailable, AvailabilitySold:
	default:
		return fmt.Errorf("unknown availability %q", c.Availability)
	}
	return nil
}

// Apply narrows paintings stage by stage and keeps the input order.
//
// The medium selector matches by substring, so "Huile" keeps both
// "Huile sur toile" and "Huile sur lin".
func Apply(paintings []Painting, c Criteria) []Painting {
	result := paintings

	if c.Query != "" {
		q := strings.ToLower(c.Query)
		result = keep(result, func(p Painting) bool {
			return strings.Contains(strings.ToLower(p.Title), q) ||
				strings.Contains(strings.ToLower(p.Description), q) ||
				strings.Contains(strings.ToLower(p.Medium), q)
		})
	}

	if c.Medium != "" && c.Medium != All {
		m := strings.ToLower(c.Medium)
		result = keep(result, func(p Painting) bool {
			return strings.Contains(strings.ToLower(p.Medium), m)
		})
	}

	switch c.PriceRange {
	case PriceUnder1000:
		result = keep(result, func(p Painting) bool { return p.Price < 1000 })
	case Price1000To2000:
		result = keep(result, func(p Painting) bool { return p.Price >= 1000 && p.Price <= 2000 })
	case PriceOver2000:
		result = keep(result, func(p Painting) bool { return p.Price > 2000 })
	}

	switch c.Availability {
	case AvailabilityAvailable:
		result = keep(result, func(p Painting) bool { return !p.Sold })
	case AvailabilitySold:
		result = keep(result, func(p Painting) bool { return p.Sold })
	}

	out := make([]Painting, len(result))
	copy(out, result)
	return out
}

func keep(in []Painting, pred func(Painting) bool) []Painting {
	out := make([]Painting, 0, len(in))
	for _, p := range in {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}
