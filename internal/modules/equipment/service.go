package equipment

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"rentpark/internal/domain"
	"rentpark/internal/pkg/validator"
)

type Service struct {
	equipment EquipmentRepository
}

func NewService(equipment EquipmentRepository) *Service {
	return &Service{equipment: equipment}
}

func (s *Service) List(ctx context.Context) ([]domain.Equipment, error) {
	return s.equipment.List(ctx)
}

func (s *Service) Get(ctx context.Context, matricule string) (*domain.Equipment, error) {
	e, err := s.equipment.GetByMatricule(ctx, matricule)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *Service) Create(ctx context.Context, req CreateEquipmentRequest) (*domain.Equipment, error) {
	if req.Matricule == "" || req.Category == "" || req.DailyPrice <= 0 {
		return nil, ErrValidation
	}

	status := domain.EquipmentAvailable
	if req.Status != "" {
		status = domain.EquipmentStatus(req.Status)
		if !validStatus(status) {
			return nil, ErrValidation
		}
	}

	e := &domain.Equipment{
		Matricule:  strings.TrimSpace(req.Matricule),
		Category:   req.Category,
		Make:       req.Make,
		Model:      req.Model,
		DailyPrice: req.DailyPrice,
		Status:     status,
	}
	if errs := validator.Validate(e); errs != nil {
		return nil, ErrValidation
	}

	if err := s.equipment.Create(ctx, e); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return e, nil
}

// Update is a full-row replace of the mutable fields. The status field
// is the administrator override that may bypass booking consistency.
func (s *Service) Update(ctx context.Context, matricule string, req UpdateEquipmentRequest) (*domain.Equipment, error) {
	if req.DailyPrice <= 0 {
		return nil, ErrValidation
	}
	status := domain.EquipmentStatus(req.Status)
	if req.Status != "" && !validStatus(status) {
		return nil, ErrValidation
	}

	e := &domain.Equipment{
		Matricule:  matricule,
		Category:   req.Category,
		Make:       req.Make,
		Model:      req.Model,
		DailyPrice: req.DailyPrice,
		Status:     status,
	}

	if err := s.equipment.Update(ctx, e); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Get(ctx, matricule)
}

// SetStatus changes only the status column, without touching the rest
// of the row. Used for maintenance holds.
func (s *Service) SetStatus(ctx context.Context, matricule, status string) (*domain.Equipment, error) {
	st := domain.EquipmentStatus(status)
	if !validStatus(st) {
		return nil, ErrValidation
	}
	if _, err := s.Get(ctx, matricule); err != nil {
		return nil, err
	}
	if err := s.equipment.SetStatus(ctx, matricule, st); err != nil {
		return nil, err
	}
	return s.Get(ctx, matricule)
}

func (s *Service) Delete(ctx context.Context, matricule string) error {
	if err := s.equipment.Delete(ctx, matricule); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func validStatus(s domain.EquipmentStatus) bool {
	switch s {
	case domain.EquipmentAvailable, domain.EquipmentRented, domain.EquipmentMaintenance:
		return true
	}
	return false
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique constraint") || strings.Contains(msg, "unique failed")
}
