package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rentpark/internal/domain"
)

type BalanceRepository struct {
	db *gorm.DB
}

func NewBalanceRepository(db *gorm.DB) *BalanceRepository {
	return &BalanceRepository{db: db}
}

// Get returns the running total, creating the zero row on first use.
func (r *BalanceRepository) Get(ctx context.Context) (*domain.Balance, error) {
	var b domain.Balance
	err := r.db.WithContext(ctx).First(&b, domain.BalanceRowID).Error
	if err == nil {
		return &b, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	if err := ensureBalanceRow(r.db.WithContext(ctx)); err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).First(&b, domain.BalanceRowID).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// Increment atomically adds delta (positive or negative) to the total.
func (r *BalanceRepository) Increment(ctx context.Context, delta float64) (*domain.Balance, error) {
	if err := creditBalance(r.db.WithContext(ctx), delta); err != nil {
		return nil, err
	}
	return r.Get(ctx)
}

// creditBalance is the single add-in-place path used by every caller,
// inside and outside transactions. Never read-modify-write.
func creditBalance(tx *gorm.DB, delta float64) error {
	if err := ensureBalanceRow(tx); err != nil {
		return err
	}
	return tx.Model(&domain.Balance{}).
		Where("id = ?", domain.BalanceRowID).
		UpdateColumn("amount", gorm.Expr("amount + ?", delta)).Error
}

func ensureBalanceRow(tx *gorm.DB) error {
	return tx.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&domain.Balance{ID: domain.BalanceRowID}).Error
}
