package pharmacies

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/maskrx/pharmacy-backend/pkg/db/models"
	dbtypes "github.com/maskrx/pharmacy-backend/pkg/db/types"
	"github.com/maskrx/pharmacy-backend/pkg/enums"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(
		&models.Pharmacy{},
		&models.OpeningHour{},
		&models.Mask{},
		&models.PharmacyMask{},
	))
	return conn
}

func mustTime(t *testing.T, value string) dbtypes.TimeOfDay {
	t.Helper()
	parsed, err := dbtypes.ParseTimeOfDay(value)
	require.NoError(t, err)
	return parsed
}

func seedCatalog(t *testing.T, conn *gorm.DB) {
	t.Helper()

	pharmacies := []models.Pharmacy{
		{ID: 1, Name: "Carepoint", CashBalance: decimal.NewFromInt(500)},
		{ID: 2, Name: "Neighbors", CashBalance: decimal.NewFromInt(200)},
	}
	require.NoError(t, conn.Create(&pharmacies).Error)

	hours := []models.OpeningHour{
		{PharmacyID: 1, Weekday: "Mon", StartTime: mustTime(t, "08:00"), EndTime: mustTime(t, "18:00")},
		{PharmacyID: 1, Weekday: "Tue", StartTime: mustTime(t, "08:00"), EndTime: mustTime(t, "18:00")},
		{PharmacyID: 2, Weekday: "Mon", StartTime: mustTime(t, "22:00"), EndTime: mustTime(t, "06:00"), Overnight: true},
	}
	require.NoError(t, conn.Create(&hours).Error)

	masks := []models.Mask{
		{ID: 1, Name: "True Barrier (green) (3 per pack)"},
		{ID: 2, Name: "MaskT (green) (10 per pack)"},
		{ID: 3, Name: "Second Smile (black) (50 per pack)"},
	}
	require.NoError(t, conn.Create(&masks).Error)

	entries := []models.PharmacyMask{
		{ID: 1, PharmacyID: 1, MaskID: 1, Price: decimal.NewFromFloat(12.35)},
		{ID: 2, PharmacyID: 1, MaskID: 2, Price: decimal.NewFromFloat(5.60)},
		{ID: 3, PharmacyID: 2, MaskID: 3, Price: decimal.NewFromFloat(48.90)},
	}
	require.NoError(t, conn.Create(&entries).Error)
}

func TestListOpeningHoursFiltersByWeekday(t *testing.T) {
	conn := newTestDB(t)
	seedCatalog(t, conn)
	repo := NewRepository(conn)

	hours, err := repo.ListOpeningHours(context.Background(), enums.WeekdayMon)
	require.NoError(t, err)
	require.Len(t, hours, 2)
	assert.Equal(t, int64(1), hours[0].PharmacyID)
	assert.Equal(t, int64(2), hours[1].PharmacyID)
	assert.True(t, hours[1].Overnight)
}

func TestFindByNameMissingPharmacy(t *testing.T) {
	conn := newTestDB(t)
	seedCatalog(t, conn)
	repo := NewRepository(conn)

	_, err := repo.FindByName(context.Background(), "Nowhere")
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	pharmacy, err := repo.FindByName(context.Background(), "Carepoint")
	require.NoError(t, err)
	assert.Equal(t, int64(1), pharmacy.ID)
}

func TestListCatalogSortsByNameAndPrice(t *testing.T) {
	conn := newTestDB(t)
	seedCatalog(t, conn)
	repo := NewRepository(conn)

	byName, err := repo.ListCatalog(context.Background(), 1, enums.MaskSortName)
	require.NoError(t, err)
	require.Len(t, byName, 2)
	assert.Equal(t, int64(2), byName[0].MaskID, "MaskT sorts before True Barrier")

	byPrice, err := repo.ListCatalog(context.Background(), 1, enums.MaskSortPrice)
	require.NoError(t, err)
	require.Len(t, byPrice, 2)
	assert.Equal(t, int64(2), byPrice[0].MaskID, "cheapest entry first")
	require.NotNil(t, byPrice[0].Mask)
	assert.Equal(t, "MaskT (green) (10 per pack)", byPrice[0].Mask.Name)
}

func TestListCatalogInBand(t *testing.T) {
	conn := newTestDB(t)
	seedCatalog(t, conn)
	repo := NewRepository(conn)

	entries, err := repo.ListCatalogInBand(context.Background(), decimal.NewFromInt(5), decimal.NewFromInt(15))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Equal(t, int64(1), entry.PharmacyID)
		require.NotNil(t, entry.Pharmacy)
		assert.Equal(t, "Carepoint", entry.Pharmacy.Name)
	}
}
