package inquirystore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gallery-app/internal/domain/inquiry"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store writes inquiries to the contact_requests table.
type Store struct {
	db  *gorm.DB
	now func() time.Time
}

var _ inquiry.Store = (*Store)(nil)

func New(db *gorm.DB) *Store {
	return &Store{db: db, now: time.Now}
}

func (s *Store) Submit(ctx context.Context, r inquiry.Record) (inquiry.Ack, error) {
	const op = "inquirystore.Submit"

	cr := inquiry.NewContactRequest(r, uuid.NewString(), s.now().UTC())
	if err := s.db.WithContext(ctx).Create(&cr).Error; err != nil {
		return inquiry.Ack{}, fmt.Errorf("%s: %w", op, err)
	}
	return cr.Ack(), nil
}

func (s *Store) List(ctx context.Context, status inquiry.Status) ([]inquiry.ContactRequest, error) {
	const op = "inquirystore.List"

	q := s.db.WithContext(ctx).Model(&inquiry.ContactRequest{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var rows []inquiry.ContactRequest
	if err := q.Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return rows, nil
}

func (s *Store) UpdateStatus(ctx context.Context, id uint, status inquiry.Status) error {
	const op = "inquirystore.UpdateStatus"

	if !status.Valid() {
		return fmt.Errorf("%s: %w", op, inquiry.ErrInvalidStatus)
	}

	res := s.db.WithContext(ctx).
		Model(&inquiry.ContactRequest{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("%s: %w", op, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, inquiry.ErrNotFound)
	}
	return nil
}

// Get loads one inquiry by id.
func (s *Store) Get(ctx context.Context, id uint) (inquiry.ContactRequest, error) {
	const op = "inquirystore.Get"

	var cr inquiry.ContactRequest
	if err := s.db.WithContext(ctx).First(&cr, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return cr, fmt.Errorf("%s: %w", op, inquiry.ErrNotFound)
		}
		return cr, fmt.Errorf("%s: %w", op, err)
	}
	return cr, nil
}
