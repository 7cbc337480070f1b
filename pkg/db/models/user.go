package models

import (
	"github.com/shopspring/decimal"
)

// User is a buyer identity with a spendable cash balance.
type User struct {
	ID          int64           `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string          `gorm:"column:name;type:text;not null;uniqueIndex"`
	CashBalance decimal.Decimal `gorm:"column:cash_balance;type:numeric(14,2);not null"`
}
