package search

import (
	"context"

	"github.com/maskrx/pharmacy-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository loads the catalog slices the search service scores against.
type Repository interface {
	ListPharmacies(ctx context.Context) ([]models.Pharmacy, error)
	ListCatalogEntries(ctx context.Context) ([]models.PharmacyMask, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a search repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListPharmacies(ctx context.Context) ([]models.Pharmacy, error) {
	var pharmacies []models.Pharmacy
	err := r.db.WithContext(ctx).
		Preload("OpeningHours").
		Preload("Masks.Mask").
		Order("id ASC").
		Find(&pharmacies).Error
	if err != nil {
		return nil, err
	}
	return pharmacies, nil
}

func (r *repository) ListCatalogEntries(ctx context.Context) ([]models.PharmacyMask, error) {
	var entries []models.PharmacyMask
	err := r.db.WithContext(ctx).
		Preload("Mask").
		Preload("Pharmacy.OpeningHours").
		Order("id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
