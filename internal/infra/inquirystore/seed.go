package inquirystore

import (
	"context"
	"fmt"

	"gallery-app/internal/domain/inquiry"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

// mockRequests are development rows for an empty table.
func mockRequests() []inquiry.ContactRequest {
	return []inquiry.ContactRequest{
		{
			Name:         "Jean Dupont",
			Email:        "jean.dupont@example.com",
			Phone:        "+33 6 12 34 56 78",
			Message:      `Je suis intéressé(e) par l'œuvre "Coucher de Soleil sur Paris". Veuillez me contacter pour plus d'informations.`,
			PaintingName: strPtr("Coucher de Soleil sur Paris"),
			Status:       inquiry.StatusNew,
		},
		{
			Name:         "Marie Laurent",
			Email:        "marie.laurent@example.com",
			Phone:        "+33 7 98 76 54 32",
			Message:      `Bonjour, je souhaiterais avoir plus d'informations sur l'œuvre "Abstraction en Bleu". Est-elle toujours disponible?`,
			PaintingName: strPtr("Abstraction en Bleu"),
			Status:       inquiry.StatusContacted,
		},
		{
			Name:         "Pierre Martin",
			Email:        "pierre.martin@example.com",
			Phone:        "+33 6 55 44 33 22",
			Message:      `Je voudrais acheter "Nature Morte aux Fruits". Pouvez-vous me contacter pour discuter du prix et de la livraison?`,
			PaintingName: strPtr("Nature Morte aux Fruits"),
			Status:       inquiry.StatusCompleted,
		},
		{
			Name:    "Sophie Dubois",
			Email:   "sophie.dubois@example.com",
			Phone:   "+33 7 11 22 33 44",
			Message: "Bonjour, je suis intéressée par plusieurs œuvres de votre galerie. Pouvez-vous me contacter pour discuter des options?",
			Status:  inquiry.StatusNew,
		},
		{
			Name:         "Thomas Bernard",
			Email:        "thomas.bernard@example.com",
			Phone:        "+33 6 99 88 77 66",
			Message:      `Je souhaite obtenir plus d'informations sur l'œuvre "Paysage Urbain". Est-il possible de la voir en personne?`,
			PaintingName: strPtr("Paysage Urbain"),
			Status:       inquiry.StatusNew,
		},
	}
}

// SeedMockIfEmpty inserts the development rows when contact_requests has
// none. It returns how many rows were inserted.
func (s *Store) SeedMockIfEmpty(ctx context.Context) (int, error) {
	const op = "inquirystore.SeedMockIfEmpty"

	inserted := 0
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&inquiry.ContactRequest{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		for _, cr := range mockRequests() {
			cr.Reference = uuid.NewString()
			cr.CreatedAt = s.now().UTC()
			if err := tx.Create(&cr).Error; err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return inserted, nil
}
