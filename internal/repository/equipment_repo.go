package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"rentpark/internal/domain"
)

type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

type equipmentModel struct {
	Matricule  string    `gorm:"column:matricule;primaryKey"`
	Category   string    `gorm:"column:category"`
	Make       string    `gorm:"column:make"`
	Model      string    `gorm:"column:model"`
	DailyPrice float64   `gorm:"column:daily_price"`
	Status     string    `gorm:"column:status"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (equipmentModel) TableName() string { return "equipment" }

func toDomainEquipment(m equipmentModel) *domain.Equipment {
	return &domain.Equipment{
		Matricule:  m.Matricule,
		Category:   m.Category,
		Make:       m.Make,
		Model:      m.Model,
		DailyPrice: m.DailyPrice,
		Status:     domain.EquipmentStatus(m.Status),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func toEquipmentModel(e *domain.Equipment) equipmentModel {
	return equipmentModel{
		Matricule:  e.Matricule,
		Category:   e.Category,
		Make:       e.Make,
		Model:      e.Model,
		DailyPrice: e.DailyPrice,
		Status:     string(e.Status),
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func (r *EquipmentRepository) List(ctx context.Context) ([]domain.Equipment, error) {
	var ms []equipmentModel
	tx := r.db.WithContext(ctx).Order("matricule").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Equipment, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainEquipment(m))
	}
	return out, nil
}

func (r *EquipmentRepository) GetByMatricule(ctx context.Context, matricule string) (*domain.Equipment, error) {
	var m equipmentModel
	tx := r.db.WithContext(ctx).First(&m, "matricule = ?", matricule)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainEquipment(m), nil
}

func (r *EquipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	m := toEquipmentModel(e)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*e = *toDomainEquipment(m)
	return nil
}

// Update replaces all mutable fields of the unit, the administrator
// override included (status may bypass booking consistency here).
func (r *EquipmentRepository) Update(ctx context.Context, e *domain.Equipment) error {
	res := r.db.WithContext(ctx).Model(&equipmentModel{}).
		Where("matricule = ?", e.Matricule).
		Updates(map[string]any{
			"category":    e.Category,
			"make":        e.Make,
			"model":       e.Model,
			"daily_price": e.DailyPrice,
			"status":      string(e.Status),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the unit. Existing bookings keep their matricule
// reference; the enriched listing tolerates the dangle.
func (r *EquipmentRepository) Delete(ctx context.Context, matricule string) error {
	res := r.db.WithContext(ctx).Delete(&equipmentModel{}, "matricule = ?", matricule)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetStatus is the Booking Engine's hook. Idempotent.
func (r *EquipmentRepository) SetStatus(ctx context.Context, matricule string, status domain.EquipmentStatus) error {
	return r.db.WithContext(ctx).Model(&equipmentModel{}).
		Where("matricule = ?", matricule).
		Update("status", string(status)).Error
}
