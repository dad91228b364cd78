package balance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"rentpark/internal/domain"
)

type MockBalanceRepository struct {
	mock.Mock
}

func (m *MockBalanceRepository) Get(ctx context.Context) (*domain.Balance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Balance), args.Error(1)
}

func (m *MockBalanceRepository) Increment(ctx context.Context, delta float64) (*domain.Balance, error) {
	args := m.Called(ctx, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Balance), args.Error(1)
}

func TestIncrement_AllowsNegativeDelta(t *testing.T) {
	repo := new(MockBalanceRepository)
	svc := NewService(repo)
	ctx := context.Background()

	repo.On("Increment", ctx, -50.0).Return(&domain.Balance{ID: 1, Amount: 250}, nil)

	b, err := svc.Increment(ctx, -50)
	assert.NoError(t, err)
	assert.Equal(t, 250.0, b.Amount)
}

func TestIncrement_RejectsZeroDelta(t *testing.T) {
	repo := new(MockBalanceRepository)
	svc := NewService(repo)

	_, err := svc.Increment(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidDelta)
	repo.AssertNotCalled(t, "Increment", mock.Anything, mock.Anything)
}

func TestRead_PassesThrough(t *testing.T) {
	repo := new(MockBalanceRepository)
	svc := NewService(repo)
	ctx := context.Background()

	repo.On("Get", ctx).Return(&domain.Balance{ID: 1, Amount: 270}, nil)

	b, err := svc.Read(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 270.0, b.Amount)
}
