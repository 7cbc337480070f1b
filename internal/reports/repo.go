package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/maskrx/pharmacy-backend/pkg/db/models"
)

// SummaryRow is the raw aggregate scanned from the sales summary query.
type SummaryRow struct {
	TotalValue    decimal.Decimal
	TotalQuantity float64
}

// TopUserRow is the raw aggregate scanned from the top-users query.
type TopUserRow struct {
	UserID      int64
	UserName    string
	TotalAmount decimal.Decimal
}

// Repository runs the read-side aggregations over transactions.
type Repository interface {
	CountTransactions(ctx context.Context, from, to time.Time) (int64, error)
	SumSales(ctx context.Context, from, to time.Time) (SummaryRow, error)
	TopUsers(ctx context.Context, from, to time.Time, limit int) ([]TopUserRow, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a reports repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountTransactions(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("transaction_date >= ? AND transaction_date <= ?", from, to).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) SumSales(ctx context.Context, from, to time.Time) (SummaryRow, error) {
	var row SummaryRow
	err := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Select(
			"COALESCE(SUM(transactions.transaction_amount), 0) AS total_value, " +
				"COALESCE(SUM(transactions.transaction_amount / pharmacy_masks.price), 0) AS total_quantity",
		).
		Joins(
			"JOIN pharmacy_masks ON pharmacy_masks.pharmacy_id = transactions.pharmacy_id " +
				"AND pharmacy_masks.mask_id = transactions.mask_id",
		).
		Where("transactions.transaction_date >= ? AND transactions.transaction_date <= ?", from, to).
		Scan(&row).Error
	if err != nil {
		return SummaryRow{}, err
	}
	return row, nil
}

func (r *repository) TopUsers(ctx context.Context, from, to time.Time, limit int) ([]TopUserRow, error) {
	var rows []TopUserRow
	err := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Select("users.id AS user_id, users.name AS user_name, SUM(transactions.transaction_amount) AS total_amount").
		Joins("JOIN users ON users.id = transactions.user_id").
		Where("transactions.transaction_date >= ? AND transactions.transaction_date <= ?", from, to).
		Group("users.id, users.name").
		Order("total_amount DESC, user_id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
