package payment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"rentpark/internal/domain"
)

// Service records payments. A payment carries its final status from
// creation; when that status is "paid" the repository credits the
// balance ledger in the same transaction as the insert.
type Service struct {
	payments paymentRepo
	bookings bookingReader
}

func NewService(payments paymentRepo, bookings bookingReader) *Service {
	return &Service{
		payments: payments,
		bookings: bookings,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Payment, error) {
	return s.payments.List(ctx)
}

func (s *Service) Create(ctx context.Context, req CreatePaymentRequest) (*domain.Payment, error) {
	if req.BookingID == 0 || req.Amount == 0 {
		return nil, ErrValidation
	}

	status := domain.PaymentStatus(req.Status)
	switch status {
	case "":
		status = domain.PaymentPending
	case domain.PaymentPending, domain.PaymentPaid, domain.PaymentFailed:
	default:
		return nil, ErrValidation
	}

	if _, err := s.bookings.GetByID(ctx, req.BookingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	p := &domain.Payment{
		BookingID: req.BookingID,
		Amount:    req.Amount,
		Method:    req.Method,
		Status:    status,
	}

	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.payments.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
