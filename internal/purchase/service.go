package purchase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/maskrx/pharmacy-backend/pkg/db"
	"github.com/maskrx/pharmacy-backend/pkg/db/models"
	pkgerrors "github.com/maskrx/pharmacy-backend/pkg/errors"
)

// Service executes purchases atomically: every lookup, balance move, and
// transaction record of one request happens in a single DB transaction.
type Service interface {
	Purchase(ctx context.Context, req Request) (*Receipt, error)
}

type service struct {
	client *db.Client
	repo   Repository
	now    func() time.Time
}

// NewService builds the purchase service.
func NewService(client *db.Client, repo Repository) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("db client required")
	}
	if repo == nil {
		return nil, fmt.Errorf("purchase repository required")
	}
	return &service{client: client, repo: repo, now: func() time.Time { return time.Now().UTC() }}, nil
}

func (s *service) Purchase(ctx context.Context, req Request) (*Receipt, error) {
	if req.UserName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user_name is required")
	}
	if len(req.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "items must not be empty")
	}
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
		}
	}

	var receipt *Receipt
	err := s.client.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		user, err := repo.FindUserByName(ctx, req.UserName)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
			}
			return err
		}

		total := decimal.Zero
		records := make([]models.Transaction, 0, len(req.Items))
		for _, line := range req.Items {
			pharmacy, err := repo.FindPharmacyByName(ctx, line.PharmacyName)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return pkgerrors.New(pkgerrors.CodeNotFound,
						fmt.Sprintf("pharmacy %q not found", line.PharmacyName))
				}
				return err
			}

			mask, err := repo.FindMaskByName(ctx, line.MaskName)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return pkgerrors.New(pkgerrors.CodeNotFound,
						fmt.Sprintf("mask %q not found", line.MaskName))
				}
				return err
			}

			entry, err := repo.FindCatalogEntry(ctx, pharmacy.ID, mask.ID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return pkgerrors.New(pkgerrors.CodeNotFound,
						fmt.Sprintf("mask %q not sold by %q", mask.Name, pharmacy.Name))
				}
				return err
			}

			cost := entry.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
			total = total.Add(cost)
			records = append(records, models.Transaction{
				UserID:     user.ID,
				PharmacyID: pharmacy.ID,
				MaskID:     mask.ID,
				Amount:     cost,
			})
		}

		if total.GreaterThan(user.CashBalance) {
			return pkgerrors.New(pkgerrors.CodeInsufficientFunds, "insufficient balance")
		}

		if err := repo.DebitUser(ctx, user.ID, total); err != nil {
			return err
		}
		when := s.now()
		for i := range records {
			records[i].TransactionDate = when
			if err := repo.CreditPharmacy(ctx, records[i].PharmacyID, records[i].Amount); err != nil {
				return err
			}
		}
		if err := repo.CreateTransactions(ctx, records); err != nil {
			return err
		}

		receipt = &Receipt{
			UserID:      user.ID,
			UserName:    user.Name,
			TotalAmount: total.Round(2).InexactFloat64(),
			Message:     "Purchase completed successfully",
		}
		return nil
	})
	if err != nil {
		if coded := pkgerrors.As(err); coded != nil {
			return nil, coded
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "purchase transaction failed")
	}
	return receipt, nil
}
