package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// Payment records one financial event against a booking. Rows are
// immutable once created: settlement is expressed by creating the
// record with its final status, not by updating it later.
type Payment struct {
	ID        int64         `json:"id" gorm:"primaryKey"`
	Reference uuid.UUID     `json:"reference" gorm:"type:uuid;uniqueIndex"`
	BookingID int64         `json:"booking_id" gorm:"index;not null"`
	Amount    float64       `json:"amount" gorm:"not null"`
	Method    string        `json:"method" gorm:"size:40"`
	Status    PaymentStatus `json:"status" gorm:"size:16;index"`
	CreatedAt time.Time     `json:"created_at"`
}

func (p *Payment) BeforeCreate(_ *gorm.DB) error {
	if p.Reference == uuid.Nil {
		p.Reference = uuid.New()
	}
	return nil
}
