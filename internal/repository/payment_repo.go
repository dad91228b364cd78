package repository

import (
	"context"

	"gorm.io/gorm"

	"rentpark/internal/domain"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) List(ctx context.Context) ([]domain.Payment, error) {
	var ps []domain.Payment
	tx := r.db.WithContext(ctx).Order("id DESC").Find(&ps)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return ps, nil
}

// Create inserts the payment and, when it is settled at creation time,
// credits the balance ledger in the same transaction.
func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		if p.Status == domain.PaymentPaid {
			return creditBalance(tx, p.Amount)
		}
		return nil
	})
}

func (r *PaymentRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.Payment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
