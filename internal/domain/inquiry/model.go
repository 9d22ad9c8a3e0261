package inquiry

import (
	"strings"
	"time"
)

type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusCompleted:
		return true
	}
	return false
}

// ContactRequest is one visitor inquiry, stored in contact_requests.
type ContactRequest struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Reference string `gorm:"type:varchar(36);uniqueIndex;not null" json:"reference"`

	Name    string `gorm:"type:varchar(255);not null" json:"name"`
	Email   string `gorm:"type:varchar(255);not null" json:"email"`
	Phone   string `gorm:"type:varchar(50);not null" json:"phone"`
	Message string `gorm:"type:text;not null" json:"message"`

	PaintingName *string `gorm:"type:varchar(255)" json:"painting_name,omitempty"`
	PaintingIDs  string  `gorm:"type:text" json:"painting_ids,omitempty"` // comma separated

	Status Status `gorm:"type:varchar(20);not null;default:'new';index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}

func (ContactRequest) TableName() string {
	return "contact_requests"
}

// Record is what a visitor submits.
type Record struct {
	Name         string
	Email        string
	Phone        string
	Message      string
	PaintingName string
	PaintingIDs  []string
}

// Ack confirms a stored inquiry.
type Ack struct {
	ID        uint      `json:"id"`
	Reference string    `json:"reference"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// NewContactRequest maps a submission onto a new row; reference and
// createdAt come from the caller.
func NewContactRequest(r Record, reference string, createdAt time.Time) ContactRequest {
	cr := ContactRequest{
		Reference:   reference,
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Message:     r.Message,
		PaintingIDs: strings.Join(r.PaintingIDs, ","),
		Status:      StatusNew,
		CreatedAt:   createdAt,
	}
	if r.PaintingName != "" {
		name := r.PaintingName
		cr.PaintingName = &name
	}
	return cr
}

func (c ContactRequest) Ack() Ack {
	return Ack{ID: c.ID, Reference: c.Reference, Status: c.Status, CreatedAt: c.CreatedAt}
}
