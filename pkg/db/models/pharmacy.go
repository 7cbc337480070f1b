package models

import (
	"github.com/shopspring/decimal"
)

// Pharmacy is a storefront with a cash balance credited on every sale.
type Pharmacy struct {
	ID           int64           `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string          `gorm:"column:name;type:text;not null;uniqueIndex"`
	CashBalance  decimal.Decimal `gorm:"column:cash_balance;type:numeric(14,2);not null"`
	OpeningHours []OpeningHour   `gorm:"foreignKey:PharmacyID;constraint:OnDelete:CASCADE"`
	Masks        []PharmacyMask  `gorm:"foreignKey:PharmacyID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default pluralization.
func (Pharmacy) TableName() string {
	return "pharmacies"
}
