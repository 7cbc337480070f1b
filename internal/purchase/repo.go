package purchase

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/maskrx/pharmacy-backend/pkg/db/models"
)

// Repository covers the lookups and balance mutations a purchase performs.
// WithTx rebinds the repository to an open transaction so every statement
// of one purchase shares it.
type Repository interface {
	FindUserByName(ctx context.Context, name string) (*models.User, error)
	FindPharmacyByName(ctx context.Context, name string) (*models.Pharmacy, error)
	FindMaskByName(ctx context.Context, name string) (*models.Mask, error)
	FindCatalogEntry(ctx context.Context, pharmacyID, maskID int64) (*models.PharmacyMask, error)
	DebitUser(ctx context.Context, userID int64, amount decimal.Decimal) error
	CreditPharmacy(ctx context.Context, pharmacyID int64, amount decimal.Decimal) error
	CreateTransactions(ctx context.Context, records []models.Transaction) error
	WithTx(tx *gorm.DB) Repository
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a purchase repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) FindUserByName(ctx context.Context, name string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repository) FindPharmacyByName(ctx context.Context, name string) (*models.Pharmacy, error) {
	var pharmacy models.Pharmacy
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&pharmacy).Error; err != nil {
		return nil, err
	}
	return &pharmacy, nil
}

func (r *repository) FindMaskByName(ctx context.Context, name string) (*models.Mask, error) {
	var mask models.Mask
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&mask).Error; err != nil {
		return nil, err
	}
	return &mask, nil
}

func (r *repository) FindCatalogEntry(ctx context.Context, pharmacyID, maskID int64) (*models.PharmacyMask, error) {
	var entry models.PharmacyMask
	err := r.db.WithContext(ctx).
		Where("pharmacy_id = ? AND mask_id = ?", pharmacyID, maskID).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *repository) DebitUser(ctx context.Context, userID int64, amount decimal.Decimal) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("cash_balance", gorm.Expr("cash_balance - ?", amount)).Error
}

func (r *repository) CreditPharmacy(ctx context.Context, pharmacyID int64, amount decimal.Decimal) error {
	return r.db.WithContext(ctx).
		Model(&models.Pharmacy{}).
		Where("id = ?", pharmacyID).
		Update("cash_balance", gorm.Expr("cash_balance + ?", amount)).Error
}

func (r *repository) CreateTransactions(ctx context.Context, records []models.Transaction) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&records).Error
}
