package pharmacies

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/maskrx/pharmacy-backend/pkg/db/models"
	"github.com/maskrx/pharmacy-backend/pkg/enums"
	pkgerrors "github.com/maskrx/pharmacy-backend/pkg/errors"
)

type stubPharmacyRepo struct {
	hours      []models.OpeningHour
	pharmacies []models.Pharmacy
	byName     map[string]*models.Pharmacy
	catalog    []models.PharmacyMask
	inBand     []models.PharmacyMask
	err        error
}

func (s *stubPharmacyRepo) ListOpeningHours(ctx context.Context, day enums.Weekday) ([]models.OpeningHour, error) {
	if s.err != nil {
		return nil, s.err
	}
	filtered := make([]models.OpeningHour, 0)
	for _, hour := range s.hours {
		if hour.Weekday == day {
			filtered = append(filtered, hour)
		}
	}
	return filtered, nil
}

func (s *stubPharmacyRepo) FindByIDs(ctx context.Context, ids []int64) ([]models.Pharmacy, error) {
	if s.err != nil {
		return nil, s.err
	}
	keep := make(map[int64]bool, len(ids))
	for _, id := range ids {
		keep[id] = true
	}
	matched := make([]models.Pharmacy, 0)
	for _, pharmacy := range s.pharmacies {
		if keep[pharmacy.ID] {
			matched = append(matched, pharmacy)
		}
	}
	return matched, nil
}

func (s *stubPharmacyRepo) FindByName(ctx context.Context, name string) (*models.Pharmacy, error) {
	if s.err != nil {
		return nil, s.err
	}
	if pharmacy, ok := s.byName[name]; ok {
		return pharmacy, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubPharmacyRepo) ListCatalog(ctx context.Context, pharmacyID int64, sortBy enums.MaskSort) ([]models.PharmacyMask, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.catalog, nil
}

func (s *stubPharmacyRepo) ListCatalogInBand(ctx context.Context, minPrice, maxPrice decimal.Decimal) ([]models.PharmacyMask, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.inBand, nil
}

func maskPtr(id int64, name string) *models.Mask {
	return &models.Mask{ID: id, Name: name}
}

func TestOpenPharmaciesMatchesSchedule(t *testing.T) {
	repo := &stubPharmacyRepo{
		hours: []models.OpeningHour{
			{PharmacyID: 1, Weekday: enums.WeekdayMon, StartTime: mustTime(t, "08:00"), EndTime: mustTime(t, "18:00")},
			{PharmacyID: 2, Weekday: enums.WeekdayMon, StartTime: mustTime(t, "22:00"), EndTime: mustTime(t, "06:00"), Overnight: true},
			{PharmacyID: 3, Weekday: enums.WeekdayMon, StartTime: mustTime(t, "10:00"), EndTime: mustTime(t, "12:00")},
		},
		pharmacies: []models.Pharmacy{
			{ID: 1, Name: "DayShop", CashBalance: decimal.NewFromInt(100)},
			{ID: 2, Name: "NightShop", CashBalance: decimal.NewFromInt(50)},
			{ID: 3, Name: "Brunch", CashBalance: decimal.NewFromInt(10)},
		},
	}
	svc, err := NewService(repo)
	require.NoError(t, err)

	open, err := svc.OpenPharmacies(context.Background(), OpenQuery{
		Weekday: enums.WeekdayMon,
		Time:    mustTime(t, "23:30"),
	})
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "NightShop", open[0].PharmacyName)
	assert.Equal(t, 50.0, open[0].CashBalance)

	open, err = svc.OpenPharmacies(context.Background(), OpenQuery{
		Weekday: enums.WeekdayMon,
		Time:    mustTime(t, "11:00"),
	})
	require.NoError(t, err)
	require.Len(t, open, 2)
	assert.Equal(t, int64(1), open[0].PharmacyID)
	assert.Equal(t, int64(3), open[1].PharmacyID)
}

func TestOpenPharmaciesRejectsUnknownWeekday(t *testing.T) {
	svc, err := NewService(&stubPharmacyRepo{})
	require.NoError(t, err)

	_, err = svc.OpenPharmacies(context.Background(), OpenQuery{Weekday: "Funday"})
	require.Error(t, err)

	coded := pkgerrors.As(err)
	require.NotNil(t, coded)
	assert.Equal(t, pkgerrors.CodeValidation, coded.Code())
}

func TestListMasksUnknownPharmacy(t *testing.T) {
	svc, err := NewService(&stubPharmacyRepo{byName: map[string]*models.Pharmacy{}})
	require.NoError(t, err)

	_, err = svc.ListMasks(context.Background(), "Nowhere", enums.MaskSortName)
	require.Error(t, err)

	coded := pkgerrors.As(err)
	require.NotNil(t, coded)
	assert.Equal(t, pkgerrors.CodeNotFound, coded.Code())
}

func TestListMasksReturnsCatalogLines(t *testing.T) {
	repo := &stubPharmacyRepo{
		byName: map[string]*models.Pharmacy{
			"Carepoint": {ID: 1, Name: "Carepoint"},
		},
		catalog: []models.PharmacyMask{
			{ID: 11, PharmacyID: 1, MaskID: 5, Price: decimal.NewFromFloat(5.60), Mask: maskPtr(5, "MaskT (green) (10 per pack)")},
			{ID: 12, PharmacyID: 1, MaskID: 6, Price: decimal.NewFromFloat(12.35), Mask: maskPtr(6, "True Barrier (green) (3 per pack)")},
		},
	}
	svc, err := NewService(repo)
	require.NoError(t, err)

	lines, err := svc.ListMasks(context.Background(), "Carepoint", enums.MaskSortPrice)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, int64(11), lines[0].MaskID, "catalog entry id is exposed")
	assert.Equal(t, "MaskT (green) (10 per pack)", lines[0].MaskName)
	assert.Equal(t, 5.6, lines[0].Price)
}

func TestFilterByMaskCountValidation(t *testing.T) {
	svc, err := NewService(&stubPharmacyRepo{})
	require.NoError(t, err)

	_, err = svc.FilterByMaskCount(context.Background(), MaskCountFilter{
		MinPrice:   decimal.NewFromInt(20),
		MaxPrice:   decimal.NewFromInt(10),
		Count:      1,
		Comparison: enums.ComparisonMore,
	})
	require.Error(t, err)

	coded := pkgerrors.As(err)
	require.NotNil(t, coded)
	assert.Equal(t, pkgerrors.CodeValidation, coded.Code())

	_, err = svc.FilterByMaskCount(context.Background(), MaskCountFilter{
		MinPrice:   decimal.NewFromInt(1),
		MaxPrice:   decimal.NewFromInt(10),
		Count:      1,
		Comparison: "roughly",
	})
	require.Error(t, err)
}

func TestFilterByMaskCountThresholds(t *testing.T) {
	inBand := []models.PharmacyMask{
		{ID: 1, PharmacyID: 1, MaskID: 1, Price: decimal.NewFromInt(8), Mask: maskPtr(1, "A"), Pharmacy: &models.Pharmacy{ID: 1, Name: "Carepoint"}},
		{ID: 2, PharmacyID: 1, MaskID: 2, Price: decimal.NewFromInt(9), Mask: maskPtr(2, "B"), Pharmacy: &models.Pharmacy{ID: 1, Name: "Carepoint"}},
		{ID: 3, PharmacyID: 2, MaskID: 3, Price: decimal.NewFromInt(7), Mask: maskPtr(3, "C"), Pharmacy: &models.Pharmacy{ID: 2, Name: "Neighbors"}},
	}
	svc, err := NewService(&stubPharmacyRepo{inBand: inBand})
	require.NoError(t, err)

	response, err := svc.FilterByMaskCount(context.Background(), MaskCountFilter{
		MinPrice:   decimal.NewFromInt(1),
		MaxPrice:   decimal.NewFromInt(10),
		Count:      2,
		Comparison: enums.ComparisonMore,
	})
	require.NoError(t, err)
	require.Len(t, response.Pharmacies, 1, "threshold is inclusive")
	assert.Equal(t, "Carepoint", response.Pharmacies[0].PharmacyName)
	assert.Len(t, response.Pharmacies[0].Masks, 2)
	assert.Equal(t, "Filtered pharmacies retrieved successfully.", response.Message)

	response, err = svc.FilterByMaskCount(context.Background(), MaskCountFilter{
		MinPrice:   decimal.NewFromInt(1),
		MaxPrice:   decimal.NewFromInt(10),
		Count:      1,
		Comparison: enums.ComparisonFewer,
	})
	require.NoError(t, err)
	require.Len(t, response.Pharmacies, 1)
	assert.Equal(t, "Neighbors", response.Pharmacies[0].PharmacyName)

	response, err = svc.FilterByMaskCount(context.Background(), MaskCountFilter{
		MinPrice:   decimal.NewFromInt(1),
		MaxPrice:   decimal.NewFromInt(10),
		Count:      5,
		Comparison: enums.ComparisonMore,
	})
	require.NoError(t, err)
	assert.Empty(t, response.Pharmacies)
	assert.Equal(t, "No pharmacies matched the condition.", response.Message)
}

func TestFilterByMaskCountExposesCatalogEntryID(t *testing.T) {
	inBand := []models.PharmacyMask{
		{ID: 10, PharmacyID: 1, MaskID: 99, Price: decimal.NewFromInt(8), Mask: maskPtr(99, "A"), Pharmacy: &models.Pharmacy{ID: 1, Name: "Carepoint"}},
	}
	svc, err := NewService(&stubPharmacyRepo{inBand: inBand})
	require.NoError(t, err)

	response, err := svc.FilterByMaskCount(context.Background(), MaskCountFilter{
		MinPrice:   decimal.NewFromInt(1),
		MaxPrice:   decimal.NewFromInt(10),
		Count:      1,
		Comparison: enums.ComparisonMore,
	})
	require.NoError(t, err)
	require.Len(t, response.Pharmacies, 1)
	require.Len(t, response.Pharmacies[0].Masks, 1)
	assert.Equal(t, int64(10), response.Pharmacies[0].Masks[0].MaskID, "catalog entry id is exposed, not the mask id")
}

func TestFilterByMaskCountCountZeroKeepsEveryStockedPharmacy(t *testing.T) {
	inBand := []models.PharmacyMask{
		{ID: 1, PharmacyID: 1, MaskID: 1, Price: decimal.NewFromInt(8), Pharmacy: &models.Pharmacy{ID: 1, Name: "Carepoint"}},
		{ID: 2, PharmacyID: 2, MaskID: 2, Price: decimal.NewFromInt(9), Pharmacy: &models.Pharmacy{ID: 2, Name: "Neighbors"}},
	}
	svc, err := NewService(&stubPharmacyRepo{inBand: inBand})
	require.NoError(t, err)

	response, err := svc.FilterByMaskCount(context.Background(), MaskCountFilter{
		MinPrice:   decimal.NewFromInt(1),
		MaxPrice:   decimal.NewFromInt(10),
		Count:      0,
		Comparison: enums.ComparisonMore,
	})
	require.NoError(t, err)
	assert.Len(t, response.Pharmacies, 2)
}

func TestPharmacyServiceWrapsRepoErrors(t *testing.T) {
	svc, err := NewService(&stubPharmacyRepo{err: errors.New("socket closed")})
	require.NoError(t, err)

	_, err = svc.OpenPharmacies(context.Background(), OpenQuery{Weekday: enums.WeekdayMon})
	require.Error(t, err)

	coded := pkgerrors.As(err)
	require.NotNil(t, coded)
	assert.Equal(t, pkgerrors.CodeDependency, coded.Code())
}
