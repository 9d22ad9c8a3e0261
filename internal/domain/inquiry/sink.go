package inquiry

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("inquiry not found")
	ErrInvalidStatus = errors.New("invalid inquiry status")
)

//go:generate mockgen -destination=mocks/mock_inquiry.go -package=mocks gallery-app/internal/domain/inquiry Store,Notifier

// Sink receives inquiries. The catalog never reads from it.
type Sink interface {
	Submit(ctx context.Context, r Record) (Ack, error)
}

// Store is a Sink the gallery staff can also work through.
type Store interface {
	Sink
	// List returns inquiries newest first; an empty status lists all.
	List(ctx context.Context, status Status) ([]ContactRequest, error)
	UpdateStatus(ctx context.Context, id uint, status Status) error
	// Get returns ErrNotFound for an unknown id.
	Get(ctx context.Context, id uint) (ContactRequest, error)
}

// Notifier tells the gallery about a stored inquiry.
type Notifier interface {
	NotifyInquiry(ctx context.Context, cr ContactRequest) error
}

// NopNotifier is used when no mail server is configured.
type NopNotifier struct{}

func (NopNotifier) NotifyInquiry(context.Context, ContactRequest) error { return nil }
