package pharmacies

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/maskrx/pharmacy-backend/pkg/db/models"
	"github.com/maskrx/pharmacy-backend/pkg/enums"
)

// Repository exposes the pharmacy catalog queries.
type Repository interface {
	ListOpeningHours(ctx context.Context, day enums.Weekday) ([]models.OpeningHour, error)
	FindByIDs(ctx context.Context, ids []int64) ([]models.Pharmacy, error)
	FindByName(ctx context.Context, name string) (*models.Pharmacy, error)
	ListCatalog(ctx context.Context, pharmacyID int64, sortBy enums.MaskSort) ([]models.PharmacyMask, error)
	ListCatalogInBand(ctx context.Context, minPrice, maxPrice decimal.Decimal) ([]models.PharmacyMask, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a pharmacy repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListOpeningHours(ctx context.Context, day enums.Weekday) ([]models.OpeningHour, error) {
	var hours []models.OpeningHour
	err := r.db.WithContext(ctx).
		Where("weekday = ?", day.String()).
		Order("pharmacy_id ASC").
		Find(&hours).Error
	if err != nil {
		return nil, err
	}
	return hours, nil
}

func (r *repository) FindByIDs(ctx context.Context, ids []int64) ([]models.Pharmacy, error) {
	if len(ids) == 0 {
		return []models.Pharmacy{}, nil
	}

	var pharmacies []models.Pharmacy
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&pharmacies).Error
	if err != nil {
		return nil, err
	}
	return pharmacies, nil
}

func (r *repository) FindByName(ctx context.Context, name string) (*models.Pharmacy, error) {
	var pharmacy models.Pharmacy
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&pharmacy).Error
	if err != nil {
		return nil, err
	}
	return &pharmacy, nil
}

func (r *repository) ListCatalog(ctx context.Context, pharmacyID int64, sortBy enums.MaskSort) ([]models.PharmacyMask, error) {
	order := "masks.name ASC"
	if sortBy == enums.MaskSortPrice {
		order = "pharmacy_masks.price ASC"
	}

	var entries []models.PharmacyMask
	err := r.db.WithContext(ctx).
		Joins("JOIN masks ON masks.id = pharmacy_masks.mask_id").
		Where("pharmacy_masks.pharmacy_id = ?", pharmacyID).
		Order(order).
		Preload("Mask").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *repository) ListCatalogInBand(ctx context.Context, minPrice, maxPrice decimal.Decimal) ([]models.PharmacyMask, error) {
	var entries []models.PharmacyMask
	err := r.db.WithContext(ctx).
		Where("price >= ? AND price <= ?", minPrice, maxPrice).
		Order("pharmacy_id ASC, id ASC").
		Preload("Mask").
		Preload("Pharmacy").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
