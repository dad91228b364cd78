package balance

import (
	"context"
	"errors"

	"rentpark/internal/domain"
)

var ErrInvalidDelta = errors.New("delta must be non-zero")

type BalanceRepository interface {
	Get(ctx context.Context) (*domain.Balance, error)
	Increment(ctx context.Context, delta float64) (*domain.Balance, error)
}

// Service fronts the single running total. Increments are add-in-place
// in the store; negative deltas are allowed and the total may go
// negative — this is an accumulator, not an audited ledger.
type Service struct {
	balance BalanceRepository
}

func NewService(balance BalanceRepository) *Service {
	return &Service{balance: balance}
}

func (s *Service) Read(ctx context.Context) (*domain.Balance, error) {
	return s.balance.Get(ctx)
}

func (s *Service) Increment(ctx context.Context, delta float64) (*domain.Balance, error) {
	if delta == 0 {
		return nil, ErrInvalidDelta
	}
	return s.balance.Increment(ctx, delta)
}
