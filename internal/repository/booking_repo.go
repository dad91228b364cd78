package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rentpark/internal/domain"
)

// ErrOverlap is returned when the in-transaction re-check finds a
// conflicting active booking for the requested period.
var ErrOverlap = errors.New("equipment already booked for this period")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	ClientID  int64     `gorm:"column:client_id"`
	AgentID   *int64    `gorm:"column:agent_id"`
	Matricule string    `gorm:"column:matricule"`
	StartDate time.Time `gorm:"column:start_date"`
	EndDate   time.Time `gorm:"column:end_date"`
	Amount    float64   `gorm:"column:amount"`
	Status    string    `gorm:"column:status"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:        m.ID,
		ClientID:  m.ClientID,
		AgentID:   m.AgentID,
		Matricule: m.Matricule,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		Amount:    m.Amount,
		Status:    domain.BookingStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:        b.ID,
		ClientID:  b.ClientID,
		AgentID:   b.AgentID,
		Matricule: b.Matricule,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		Amount:    b.Amount,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// BookingDetails is one row of the enriched listing: the booking joined
// with client, optional agent and equipment descriptive fields. The
// equipment join is a LEFT JOIN because equipment deletion does not
// cascade, so a booking may reference a removed unit.
type BookingDetails struct {
	ID              int64     `json:"id"`
	ClientID        int64     `json:"client_id"`
	AgentID         *int64    `json:"agent_id,omitempty"`
	Matricule       string    `json:"matricule"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	Amount          float64   `json:"amount"`
	Status          string    `json:"status"`
	ClientLastName  string    `json:"client_last_name"`
	ClientFirstName string    `json:"client_first_name"`
	AgentLastName   *string   `json:"agent_last_name,omitempty"`
	AgentFirstName  *string   `json:"agent_first_name,omitempty"`
	Category        *string   `json:"category,omitempty"`
	Make            *string   `json:"make,omitempty"`
	Model           *string   `json:"model,omitempty"`
	DailyPrice      *float64  `json:"daily_price,omitempty"`
}

func (r *BookingRepository) List(ctx context.Context) ([]BookingDetails, error) {
	var rows []BookingDetails
	q := `
SELECT
  b.id, b.client_id, b.agent_id, b.matricule, b.start_date, b.end_date, b.amount, b.status,
  c.last_name  AS client_last_name,
  c.first_name AS client_first_name,
  a.last_name  AS agent_last_name,
  a.first_name AS agent_first_name,
  e.category, e.make, e.model, e.daily_price
FROM bookings b
JOIN users c      ON b.client_id = c.id
LEFT JOIN users a ON b.agent_id = a.id
LEFT JOIN equipment e ON b.matricule = e.matricule
ORDER BY b.id DESC
`
	tx := r.db.WithContext(ctx).Raw(q).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// CountOverlapping counts active bookings for the unit whose inclusive
// [start,end] interval overlaps the given one. Boundary equality counts
// as overlap. excludeID skips the booking being updated (0 for none).
func (r *BookingRepository) CountOverlapping(ctx context.Context, matricule string, start, end time.Time, excludeID int64) (int64, error) {
	return countOverlapping(r.db.WithContext(ctx), matricule, start, end, excludeID)
}

func countOverlapping(tx *gorm.DB, matricule string, start, end time.Time, excludeID int64) (int64, error) {
	var cnt int64
	err := tx.Model(&bookingModel{}).
		Where("matricule = ? AND status = ? AND id <> ?", matricule, string(domain.BookingActive), excludeID).
		Where("start_date <= ? AND ? <= end_date", end, start).
		Count(&cnt).Error
	return cnt, err
}

// Create persists the booking, flips its equipment to rented and, when
// credit is non-zero, feeds the balance ledger — all in one transaction.
// The overlap check is re-validated inside the transaction under a row
// lock on the equipment unit; on PostgreSQL the idx_no_double_rental
// exclusion constraint backs it up against concurrent writers.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking, credit float64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var eq equipmentModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&eq, "matricule = ?", b.Matricule).Error; err != nil {
			return err
		}

		cnt, err := countOverlapping(tx, b.Matricule, b.StartDate, b.EndDate, 0)
		if err != nil {
			return err
		}
		if cnt > 0 {
			return ErrOverlap
		}

		m := toBookingModel(b)
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		*b = *toDomainBooking(m)

		if err := setEquipmentRented(tx, b.Matricule); err != nil {
			return err
		}

		if credit != 0 {
			return creditBalance(tx, credit)
		}
		return nil
	})
}

// Update persists the merged booking and reconciles equipment statuses:
// a changed matricule frees the old unit (re-checked) and rents the new
// one; a terminal status frees the booking's unit (re-checked).
func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking, oldMatricule string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if b.Status == domain.BookingActive {
			cnt, err := countOverlapping(tx, b.Matricule, b.StartDate, b.EndDate, b.ID)
			if err != nil {
				return err
			}
			if cnt > 0 {
				return ErrOverlap
			}
		}

		m := toBookingModel(b)
		res := tx.Model(&bookingModel{}).Where("id = ?", b.ID).Updates(map[string]any{
			"client_id":  m.ClientID,
			"agent_id":   m.AgentID,
			"matricule":  m.Matricule,
			"start_date": m.StartDate,
			"end_date":   m.EndDate,
			"amount":     m.Amount,
			"status":     m.Status,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if oldMatricule != b.Matricule {
			if err := freeEquipmentIfIdle(tx, oldMatricule, b.ID); err != nil {
				return err
			}
		}

		if b.Status == domain.BookingActive {
			return setEquipmentRented(tx, b.Matricule)
		}
		return freeEquipmentIfIdle(tx, b.Matricule, b.ID)
	})
}

// Delete frees the booking's equipment (unless another active booking
// still holds it) and removes the row.
func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m bookingModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&m, id).Error; err != nil {
			return err
		}
		if err := freeEquipmentIfIdle(tx, m.Matricule, m.ID); err != nil {
			return err
		}
		return tx.Delete(&bookingModel{}, id).Error
	})
}

// ExpireOverdue completes every active booking whose end date is
// strictly in the past and frees the affected equipment. Idempotent:
// a second run finds nothing to transition.
func (r *BookingRepository) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	var expired int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var matricules []string
		if err := tx.Model(&bookingModel{}).
			Distinct("matricule").
			Where("status = ? AND end_date < ?", string(domain.BookingActive), now).
			Pluck("matricule", &matricules).Error; err != nil {
			return err
		}

		res := tx.Model(&bookingModel{}).
			Where("status = ? AND end_date < ?", string(domain.BookingActive), now).
			Update("status", string(domain.BookingCompleted))
		if res.Error != nil {
			return res.Error
		}
		expired = res.RowsAffected

		for _, m := range matricules {
			if err := freeEquipmentIfIdle(tx, m, 0); err != nil {
				return err
			}
		}
		return nil
	})
	return expired, err
}

func setEquipmentRented(tx *gorm.DB, matricule string) error {
	return tx.Model(&equipmentModel{}).
		Where("matricule = ?", matricule).
		Update("status", string(domain.EquipmentRented)).Error
}

// freeEquipmentIfIdle sets the unit back to available only when no
// active booking other than excludeBookingID still references it. It is
// the single place any code path frees a unit.
func freeEquipmentIfIdle(tx *gorm.DB, matricule string, excludeBookingID int64) error {
	var cnt int64
	if err := tx.Model(&bookingModel{}).
		Where("matricule = ? AND status = ? AND id <> ?", matricule, string(domain.BookingActive), excludeBookingID).
		Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return nil
	}
	return tx.Model(&equipmentModel{}).
		Where("matricule = ? AND status = ?", matricule, string(domain.EquipmentRented)).
		Update("status", string(domain.EquipmentAvailable)).Error
}
