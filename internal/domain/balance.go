package domain

import "time"

// BalanceRowID is the primary key of the single balance row.
const BalanceRowID int64 = 1

// Balance is the running total of all settled money movement.
// There is exactly one row; it is only ever changed by additive
// increments, never overwritten wholesale.
type Balance struct {
	ID        int64     `json:"-" gorm:"primaryKey"`
	Amount    float64   `json:"amount" gorm:"not null;default:0"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Balance) TableName() string { return "balances" }
