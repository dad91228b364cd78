package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"rentpark/internal/domain"
)

type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) List(ctx context.Context) ([]domain.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	if p != nil {
		p.ID = 55
	}
	return args.Error(0)
}

func (m *MockPaymentRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBookingReader struct {
	mock.Mock
}

func (m *MockBookingReader) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func TestCreate_DefaultsToPending(t *testing.T) {
	payments := new(MockPaymentRepo)
	bookings := new(MockBookingReader)
	svc := NewService(payments, bookings)
	ctx := context.Background()

	bookings.On("GetByID", ctx, int64(3)).Return(&domain.Booking{ID: 3}, nil)
	payments.On("Create", ctx, mock.Anything).Return(nil)

	p, err := svc.Create(ctx, CreatePaymentRequest{BookingID: 3, Amount: 300, Method: "card"})

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentPending, p.Status)
	assert.Equal(t, int64(55), p.ID)
	payments.AssertExpectations(t)
}

func TestCreate_PaidStatusPassedThrough(t *testing.T) {
	payments := new(MockPaymentRepo)
	bookings := new(MockBookingReader)
	svc := NewService(payments, bookings)
	ctx := context.Background()

	bookings.On("GetByID", ctx, int64(3)).Return(&domain.Booking{ID: 3}, nil)
	payments.On("Create", ctx, mock.MatchedBy(func(p *domain.Payment) bool {
		return p.Status == domain.PaymentPaid && p.Amount == 300
	})).Return(nil)

	p, err := svc.Create(ctx, CreatePaymentRequest{
		BookingID: 3,
		Amount:    300,
		Method:    "card",
		Status:    "paid",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, p.Status)
	payments.AssertExpectations(t)
}

func TestCreate_UnknownBooking(t *testing.T) {
	payments := new(MockPaymentRepo)
	bookings := new(MockBookingReader)
	svc := NewService(payments, bookings)
	ctx := context.Background()

	bookings.On("GetByID", ctx, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(ctx, CreatePaymentRequest{BookingID: 404, Amount: 300})
	assert.ErrorIs(t, err, ErrBookingNotFound)
	payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_RejectsInvalidInput(t *testing.T) {
	payments := new(MockPaymentRepo)
	bookings := new(MockBookingReader)
	svc := NewService(payments, bookings)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreatePaymentRequest{Amount: 300})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, CreatePaymentRequest{BookingID: 3})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, CreatePaymentRequest{BookingID: 3, Amount: 300, Status: "settled"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDelete_NotFound(t *testing.T) {
	payments := new(MockPaymentRepo)
	bookings := new(MockBookingReader)
	svc := NewService(payments, bookings)
	ctx := context.Background()

	payments.On("Delete", ctx, int64(404)).Return(gorm.ErrRecordNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, 404), ErrNotFound)
}
