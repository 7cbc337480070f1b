package etl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"gorm.io/gorm"

	"github.com/maskrx/pharmacy-backend/internal/schedule"
	"github.com/maskrx/pharmacy-backend/pkg/db"
	"github.com/maskrx/pharmacy-backend/pkg/db/models"
	"github.com/maskrx/pharmacy-backend/pkg/logger"
)

const transactionDateLayout = "2006-01-02 15:04:05"

// pharmacyRecord mirrors one element of pharmacies.json.
type pharmacyRecord struct {
	Name         string  `json:"name"`
	CashBalance  float64 `json:"cashBalance"`
	OpeningHours string  `json:"openingHours"`
	Masks        []struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	} `json:"masks"`
}

// userRecord mirrors one element of users.json.
type userRecord struct {
	Name              string          `json:"name"`
	CashBalance       float64         `json:"cashBalance"`
	PurchaseHistories []historyRecord `json:"purchaseHistories"`
}

type historyRecord struct {
	PharmacyName      string  `json:"pharmacyName"`
	MaskName          string  `json:"maskName"`
	TransactionAmount float64 `json:"transactionAmount"`
	TransactionDate   string  `json:"transactionDate"`
}

// Loader imports the seed JSON files. Loading is idempotent: pharmacies,
// masks, and users are matched by name, transactions by their full tuple.
type Loader struct {
	client *db.Client
	logg   *logger.Logger
}

// NewLoader builds a loader.
func NewLoader(client *db.Client, logg *logger.Logger) (*Loader, error) {
	if client == nil {
		return nil, fmt.Errorf("db client required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Loader{client: client, logg: logg}, nil
}

// Run loads both seed files. Each file is committed in its own transaction;
// users reference pharmacies and masks, so pharmacies load first. Errors
// from both phases are combined.
func (l *Loader) Run(ctx context.Context, pharmaciesPath, usersPath string) error {
	var combined error
	if err := l.LoadPharmacies(ctx, pharmaciesPath); err != nil {
		combined = multierr.Append(combined, fmt.Errorf("loading pharmacies: %w", err))
	}
	if err := l.LoadUsers(ctx, usersPath); err != nil {
		combined = multierr.Append(combined, fmt.Errorf("loading users: %w", err))
	}
	return combined
}

// LoadPharmacies imports pharmacies.json: the pharmacy rows, their parsed
// opening hours, and their mask catalog.
func (l *Loader) LoadPharmacies(ctx context.Context, path string) error {
	var records []pharmacyRecord
	if err := readJSON(path, &records); err != nil {
		return err
	}

	return l.client.WithTx(ctx, func(tx *gorm.DB) error {
		for _, record := range records {
			pharmacy, err := upsertPharmacy(tx, record)
			if err != nil {
				return err
			}

			// Re-imported pharmacies get their schedule replaced wholesale.
			if err := tx.Where("pharmacy_id = ?", pharmacy.ID).Delete(&models.OpeningHour{}).Error; err != nil {
				return err
			}
			for _, entry := range schedule.Parse(record.OpeningHours) {
				hour := models.OpeningHour{
					PharmacyID: pharmacy.ID,
					Weekday:    entry.Day,
					StartTime:  entry.Start,
					EndTime:    entry.End,
					Overnight:  entry.Overnight,
				}
				if err := tx.Create(&hour).Error; err != nil {
					return err
				}
			}

			for _, maskRecord := range record.Masks {
				if err := upsertCatalogEntry(tx, pharmacy.ID, maskRecord.Name, maskRecord.Price); err != nil {
					return err
				}
			}
			l.logg.Info(l.logg.WithPharmacy(ctx, record.Name), "pharmacy imported")
		}
		return nil
	})
}

// LoadUsers imports users.json: the user rows and their purchase histories.
// History lines referencing an unknown pharmacy or mask are skipped with a
// warning, matching the tolerance of the seed data.
func (l *Loader) LoadUsers(ctx context.Context, path string) error {
	var records []userRecord
	if err := readJSON(path, &records); err != nil {
		return err
	}

	return l.client.WithTx(ctx, func(tx *gorm.DB) error {
		for _, record := range records {
			user, err := upsertUser(tx, record)
			if err != nil {
				return err
			}

			userCtx := l.logg.WithUserName(ctx, record.Name)
			for _, history := range record.PurchaseHistories {
				if err := l.importHistory(userCtx, tx, user.ID, history); err != nil {
					return err
				}
			}
			l.logg.Info(userCtx, "user imported")
		}
		return nil
	})
}

func (l *Loader) importHistory(ctx context.Context, tx *gorm.DB, userID int64, history historyRecord) error {
	var pharmacy models.Pharmacy
	if err := tx.Where("name = ?", history.PharmacyName).First(&pharmacy).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.logg.Warn(ctx, fmt.Sprintf("skipping history line, unknown pharmacy %q", history.PharmacyName))
			return nil
		}
		return err
	}

	var mask models.Mask
	if err := tx.Where("name = ?", history.MaskName).First(&mask).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.logg.Warn(ctx, fmt.Sprintf("skipping history line, unknown mask %q", history.MaskName))
			return nil
		}
		return err
	}

	when, err := time.ParseInLocation(transactionDateLayout, history.TransactionDate, time.UTC)
	if err != nil {
		l.logg.Warn(ctx, fmt.Sprintf("skipping history line, bad date %q", history.TransactionDate))
		return nil
	}

	amount := decimal.NewFromFloat(history.TransactionAmount)
	var existing int64
	err = tx.Model(&models.Transaction{}).
		Where("user_id = ? AND pharmacy_id = ? AND mask_id = ? AND transaction_amount = ? AND transaction_date = ?",
			userID, pharmacy.ID, mask.ID, amount, when).
		Count(&existing).Error
	if err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}

	return tx.Create(&models.Transaction{
		UserID:          userID,
		PharmacyID:      pharmacy.ID,
		MaskID:          mask.ID,
		Amount:          amount,
		TransactionDate: when,
	}).Error
}

func upsertPharmacy(tx *gorm.DB, record pharmacyRecord) (*models.Pharmacy, error) {
	balance := decimal.NewFromFloat(record.CashBalance)

	var pharmacy models.Pharmacy
	err := tx.Where("name = ?", record.Name).First(&pharmacy).Error
	switch {
	case err == nil:
		pharmacy.CashBalance = balance
		if err := tx.Model(&pharmacy).Update("cash_balance", balance).Error; err != nil {
			return nil, err
		}
		return &pharmacy, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		pharmacy = models.Pharmacy{Name: record.Name, CashBalance: balance}
		if err := tx.Create(&pharmacy).Error; err != nil {
			return nil, err
		}
		return &pharmacy, nil
	default:
		return nil, err
	}
}

func upsertUser(tx *gorm.DB, record userRecord) (*models.User, error) {
	balance := decimal.NewFromFloat(record.CashBalance)

	var user models.User
	err := tx.Where("name = ?", record.Name).First(&user).Error
	switch {
	case err == nil:
		user.CashBalance = balance
		if err := tx.Model(&user).Update("cash_balance", balance).Error; err != nil {
			return nil, err
		}
		return &user, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = models.User{Name: record.Name, CashBalance: balance}
		if err := tx.Create(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	default:
		return nil, err
	}
}

func upsertCatalogEntry(tx *gorm.DB, pharmacyID int64, maskName string, price float64) error {
	var mask models.Mask
	err := tx.Where("name = ?", maskName).First(&mask).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		mask = models.Mask{Name: maskName}
		if err = tx.Create(&mask).Error; db.IsUniqueViolation(err, "") {
			// Concurrent import created it between the lookup and the insert.
			err = tx.Where("name = ?", maskName).First(&mask).Error
		}
	}
	if err != nil {
		return err
	}

	var existing int64
	err = tx.Model(&models.PharmacyMask{}).
		Where("pharmacy_id = ? AND mask_id = ?", pharmacyID, mask.ID).
		Count(&existing).Error
	if err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}

	err = tx.Create(&models.PharmacyMask{
		PharmacyID: pharmacyID,
		MaskID:     mask.ID,
		Price:      decimal.NewFromFloat(price),
	}).Error
	if db.IsUniqueViolation(err, "") {
		return nil
	}
	return err
}

func readJSON(path string, out any) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}
