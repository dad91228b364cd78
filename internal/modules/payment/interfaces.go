package payment

import (
	"context"

	"rentpark/internal/domain"
)

type paymentRepo interface {
	List(ctx context.Context) ([]domain.Payment, error)
	Create(ctx context.Context, p *domain.Payment) error
	Delete(ctx context.Context, id int64) error
}

type bookingReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}
