package equipment

import (
	"context"

	"rentpark/internal/domain"
)

type EquipmentRepository interface {
	List(ctx context.Context) ([]domain.Equipment, error)
	GetByMatricule(ctx context.Context, matricule string) (*domain.Equipment, error)
	Create(ctx context.Context, e *domain.Equipment) error
	Update(ctx context.Context, e *domain.Equipment) error
	Delete(ctx context.Context, matricule string) error
	SetStatus(ctx context.Context, matricule string, status domain.EquipmentStatus) error
}
