package etl

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/maskrx/pharmacy-backend/pkg/db"
	"github.com/maskrx/pharmacy-backend/pkg/db/models"
	"github.com/maskrx/pharmacy-backend/pkg/logger"
)

const pharmaciesJSON = `[
  {
    "name": "Carepoint",
    "cashBalance": 593.35,
    "openingHours": "Mon - Fri 08:00 - 17:00 / Sat, Sun 08:00 - 12:00",
    "masks": [
      {"name": "True Barrier (green) (3 per pack)", "price": 13.70},
      {"name": "MaskT (green) (10 per pack)", "price": 41.86}
    ]
  },
  {
    "name": "First Care Rx",
    "cashBalance": 222.52,
    "openingHours": "Mon 20:00 - 02:00",
    "masks": [
      {"name": "True Barrier (green) (3 per pack)", "price": 12.00}
    ]
  }
]`

const usersJSON = `[
  {
    "name": "Yvonne Guerrero",
    "cashBalance": 191.83,
    "purchaseHistories": [
      {
        "pharmacyName": "Carepoint",
        "maskName": "True Barrier (green) (3 per pack)",
        "transactionAmount": 13.70,
        "transactionDate": "2021-01-04 15:18:51"
      },
      {
        "pharmacyName": "Ghost Pharmacy",
        "maskName": "True Barrier (green) (3 per pack)",
        "transactionAmount": 5.00,
        "transactionDate": "2021-01-05 10:00:00"
      }
    ]
  }
]`

func newTestLoader(t *testing.T) (*Loader, *gorm.DB) {
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
		&models.User{},
		&models.Transaction{},
	))

	logg := logger.New(logger.Options{ServiceName: "etl-test", Output: io.Discard})
	loader, err := NewLoader(db.NewFromConn(conn), logg)
	require.NoError(t, err)
	return loader, conn
}

func writeSeed(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadPharmaciesImportsScheduleAndCatalog(t *testing.T) {
	loader, conn := newTestLoader(t)
	path := writeSeed(t, "pharmacies.json", pharmaciesJSON)

	require.NoError(t, loader.LoadPharmacies(context.Background(), path))

	var pharmacies []models.Pharmacy
	require.NoError(t, conn.Order("id").Find(&pharmacies).Error)
	require.Len(t, pharmacies, 2)
	assert.Equal(t, "Carepoint", pharmacies[0].Name)

	var hours []models.OpeningHour
	require.NoError(t, conn.Where("pharmacy_id = ?", pharmacies[0].ID).Find(&hours).Error)
	assert.Len(t, hours, 7, "Mon-Fri range plus Sat and Sun")

	var overnight models.OpeningHour
	require.NoError(t, conn.Where("pharmacy_id = ?", pharmacies[1].ID).First(&overnight).Error)
	assert.True(t, overnight.Overnight)

	var maskCount int64
	require.NoError(t, conn.Model(&models.Mask{}).Count(&maskCount).Error)
	assert.Equal(t, int64(2), maskCount, "shared mask deduplicated by name")

	var entryCount int64
	require.NoError(t, conn.Model(&models.PharmacyMask{}).Count(&entryCount).Error)
	assert.Equal(t, int64(3), entryCount)
}

func TestLoadPharmaciesIsIdempotent(t *testing.T) {
	loader, conn := newTestLoader(t)
	path := writeSeed(t, "pharmacies.json", pharmaciesJSON)

	require.NoError(t, loader.LoadPharmacies(context.Background(), path))
	require.NoError(t, loader.LoadPharmacies(context.Background(), path))

	var pharmacyCount, entryCount, hourCount int64
	require.NoError(t, conn.Model(&models.Pharmacy{}).Count(&pharmacyCount).Error)
	require.NoError(t, conn.Model(&models.PharmacyMask{}).Count(&entryCount).Error)
	require.NoError(t, conn.Model(&models.OpeningHour{}).Count(&hourCount).Error)
	assert.Equal(t, int64(2), pharmacyCount)
	assert.Equal(t, int64(3), entryCount)
	assert.Equal(t, int64(8), hourCount, "schedules replaced, not duplicated")
}

func TestLoadUsersImportsHistoriesAndSkipsUnknownRefs(t *testing.T) {
	loader, conn := newTestLoader(t)
	require.NoError(t, loader.LoadPharmacies(context.Background(), writeSeed(t, "pharmacies.json", pharmaciesJSON)))

	usersPath := writeSeed(t, "users.json", usersJSON)
	require.NoError(t, loader.LoadUsers(context.Background(), usersPath))

	var user models.User
	require.NoError(t, conn.Where("name = ?", "Yvonne Guerrero").First(&user).Error)

	var txCount int64
	require.NoError(t, conn.Model(&models.Transaction{}).Count(&txCount).Error)
	assert.Equal(t, int64(1), txCount, "line against the unknown pharmacy skipped")

	// Re-running must not duplicate the imported transaction.
	require.NoError(t, loader.LoadUsers(context.Background(), usersPath))
	require.NoError(t, conn.Model(&models.Transaction{}).Count(&txCount).Error)
	assert.Equal(t, int64(1), txCount)
}

func TestRunCombinesErrors(t *testing.T) {
	loader, _ := newTestLoader(t)

	err := loader.Run(context.Background(), "missing-pharmacies.json", "missing-users.json")
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
}
