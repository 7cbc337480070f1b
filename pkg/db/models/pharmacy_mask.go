package models

import (
	"github.com/shopspring/decimal"
)

// PharmacyMask is the catalog entry tying a mask to the pharmacy selling it
// at a given price. At most one entry exists per (pharmacy, mask) pair.
type PharmacyMask struct {
	ID         int64           `gorm:"column:id;primaryKey;autoIncrement"`
	PharmacyID int64           `gorm:"column:pharmacy_id;not null;uniqueIndex:idx_pharmacy_mask"`
	MaskID     int64           `gorm:"column:mask_id;not null;uniqueIndex:idx_pharmacy_mask"`
	Price      decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
	Mask       *Mask           `gorm:"foreignKey:MaskID"`
	Pharmacy   *Pharmacy       `gorm:"foreignKey:PharmacyID"`
}

// TableName overrides GORM's default pluralization.
func (PharmacyMask) TableName() string {
	return "pharmacy_masks"
}
