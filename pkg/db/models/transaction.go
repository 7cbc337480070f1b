package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the immutable record of one purchase line. Rows are created
// only inside the purchase service's transaction and never mutated.
type Transaction struct {
	ID              int64           `gorm:"column:id;primaryKey;autoIncrement"`
	UserID          int64           `gorm:"column:user_id;not null;index"`
	PharmacyID      int64           `gorm:"column:pharmacy_id;not null;index"`
	MaskID          int64           `gorm:"column:mask_id;not null"`
	Amount          decimal.Decimal `gorm:"column:transaction_amount;type:numeric(14,2);not null"`
	TransactionDate time.Time       `gorm:"column:transaction_date;not null;index"`
	User            *User           `gorm:"foreignKey:UserID"`
	Pharmacy        *Pharmacy       `gorm:"foreignKey:PharmacyID"`
	Mask            *Mask           `gorm:"foreignKey:MaskID"`
}
