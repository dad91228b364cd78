package booking

import (
	"context"
	"time"

	"rentpark/internal/domain"
	"rentpark/internal/repository"
)

// BookingRepository defines the store operations the engine depends on.
// Multi-step mutations (Create/Update/Delete/ExpireOverdue) are atomic:
// the booking write, the equipment status sync and the ledger credit
// commit or roll back together.
type BookingRepository interface {
	List(ctx context.Context) ([]repository.BookingDetails, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	CountOverlapping(ctx context.Context, matricule string, start, end time.Time, excludeID int64) (int64, error)
	Create(ctx context.Context, b *domain.Booking, credit float64) error
	Update(ctx context.Context, b *domain.Booking, oldMatricule string) error
	Delete(ctx context.Context, id int64) error
	ExpireOverdue(ctx context.Context, now time.Time) (int64, error)
}

// EquipmentReader resolves a unit and its daily price.
type EquipmentReader interface {
	GetByMatricule(ctx context.Context, matricule string) (*domain.Equipment, error)
}

// EventPublisher pushes booking transitions to the dashboard feed.
type EventPublisher interface {
	PublishBookingEvent(event string, b *domain.Booking)
}
