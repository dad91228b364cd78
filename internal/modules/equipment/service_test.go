package equipment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"rentpark/internal/domain"
)

type MockEquipmentRepository struct {
	mock.Mock
}

func (m *MockEquipmentRepository) List(ctx context.Context) ([]domain.Equipment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) GetByMatricule(ctx context.Context, matricule string) (*domain.Equipment, error) {
	args := m.Called(ctx, matricule)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEquipmentRepository) Update(ctx context.Context, e *domain.Equipment) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEquipmentRepository) Delete(ctx context.Context, matricule string) error {
	args := m.Called(ctx, matricule)
	return args.Error(0)
}

func (m *MockEquipmentRepository) SetStatus(ctx context.Context, matricule string, status domain.EquipmentStatus) error {
	args := m.Called(ctx, matricule, status)
	return args.Error(0)
}

func TestCreate_DefaultsToAvailable(t *testing.T) {
	repo := new(MockEquipmentRepository)
	svc := NewService(repo)
	ctx := context.Background()

	repo.On("Create", ctx, mock.Anything).Return(nil)

	e, err := svc.Create(ctx, CreateEquipmentRequest{
		Matricule:  "CRN-001",
		Category:   "crane",
		DailyPrice: 900,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.EquipmentAvailable, e.Status)
	repo.AssertExpectations(t)
}

func TestCreate_RejectsInvalidInput(t *testing.T) {
	repo := new(MockEquipmentRepository)
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateEquipmentRequest{Category: "crane", DailyPrice: 900})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, CreateEquipmentRequest{Matricule: "CRN-001", Category: "crane"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, CreateEquipmentRequest{
		Matricule:  "CRN-001",
		Category:   "crane",
		DailyPrice: 900,
		Status:     "broken",
	})
	assert.ErrorIs(t, err, ErrValidation)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_DuplicateMatricule(t *testing.T) {
	repo := new(MockEquipmentRepository)
	svc := NewService(repo)
	ctx := context.Background()

	repo.On("Create", ctx, mock.Anything).Return(gorm.ErrDuplicatedKey)

	_, err := svc.Create(ctx, CreateEquipmentRequest{
		Matricule:  "CRN-001",
		Category:   "crane",
		DailyPrice: 900,
	})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestGet_NotFound(t *testing.T) {
	repo := new(MockEquipmentRepository)
	svc := NewService(repo)
	ctx := context.Background()

	repo.On("GetByMatricule", ctx, "NOPE-1").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Get(ctx, "NOPE-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate_ReplacesRowAndReloads(t *testing.T) {
	repo := new(MockEquipmentRepository)
	svc := NewService(repo)
	ctx := context.Background()

	updated := &domain.Equipment{
		Matricule:  "CRN-001",
		Category:   "crane",
		DailyPrice: 950,
		Status:     domain.EquipmentMaintenance,
	}
	repo.On("Update", ctx, mock.Anything).Return(nil)
	repo.On("GetByMatricule", ctx, "CRN-001").Return(updated, nil)

	e, err := svc.Update(ctx, "CRN-001", UpdateEquipmentRequest{
		Category:   "crane",
		DailyPrice: 950,
		Status:     "maintenance",
	})

	assert.NoError(t, err)
	assert.Equal(t, 950.0, e.DailyPrice)
	assert.Equal(t, domain.EquipmentMaintenance, e.Status)
}

func TestSetStatus_MaintenanceHold(t *testing.T) {
	repo := new(MockEquipmentRepository)
	svc := NewService(repo)
	ctx := context.Background()

	repo.On("GetByMatricule", ctx, "GEN-001").
		Return(&domain.Equipment{Matricule: "GEN-001", Status: domain.EquipmentAvailable}, nil).Once()
	repo.On("SetStatus", ctx, "GEN-001", domain.EquipmentMaintenance).Return(nil)
	repo.On("GetByMatricule", ctx, "GEN-001").
		Return(&domain.Equipment{Matricule: "GEN-001", Status: domain.EquipmentMaintenance}, nil)

	e, err := svc.SetStatus(ctx, "GEN-001", "maintenance")

	assert.NoError(t, err)
	assert.Equal(t, domain.EquipmentMaintenance, e.Status)
	repo.AssertExpectations(t)
}

func TestSetStatus_RejectsUnknownStatus(t *testing.T) {
	repo := new(MockEquipmentRepository)
	svc := NewService(repo)

	_, err := svc.SetStatus(context.Background(), "GEN-001", "broken")
	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestDelete_NotFound(t *testing.T) {
	repo := new(MockEquipmentRepository)
	svc := NewService(repo)
	ctx := context.Background()

	repo.On("Delete", ctx, "NOPE-1").Return(gorm.ErrRecordNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, "NOPE-1"), ErrNotFound)
}
