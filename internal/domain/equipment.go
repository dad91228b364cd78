package domain

import "time"

type EquipmentStatus string

const (
	EquipmentAvailable   EquipmentStatus = "available"
	EquipmentRented      EquipmentStatus = "rented"
	EquipmentMaintenance EquipmentStatus = "maintenance"
)

// Equipment is a single rentable unit identified by its matricule.
// Status is denormalized: "rented" iff at least one active booking
// references the unit. Every booking transition goes through the
// repository helpers that keep it in sync.
type Equipment struct {
	Matricule  string          `json:"matricule" gorm:"primaryKey" validate:"required"`
	Category   string          `json:"category" validate:"required"`
	Make       string          `json:"make"`
	Model      string          `json:"model"`
	DailyPrice float64         `json:"daily_price" validate:"required,gt=0"`
	Status     EquipmentStatus `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
