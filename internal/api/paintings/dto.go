package paintings

import "gallery-app/internal/domain/catalog"

type ListQuery struct {
	Query        string `form:"q"`
	Medium       string `form:"medium"`
	PriceRange   string `form:"price_range"`
	Availability string `form:"availability"`
}

func (q ListQuery) Criteria() catalog.Criteria {
	return catalog.Criteria{
		Query:        q.Query,
		Medium:       q.Medium,
		PriceRange:   catalog.PriceRange(q.PriceRange),
		Availability: catalog.Availability(q.Availability),
	}.Normalize()
}

type ListResponse struct {
	Paintings []catalog.Painting `json:"paintings"`
	Count     int                `json:"count"`
	Criteria  catalog.Criteria   `json:"criteria"`
}

type DetailResponse struct {
	Painting       catalog.Painting   `json:"painting"`
	Related        []catalog.Painting `json:"related"`
	InquiryMessage string             `json:"inquiry_message"`
}
