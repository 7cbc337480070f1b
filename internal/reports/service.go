package reports

import (
	"context"
	"fmt"

	pkgerrors "github.com/maskrx/pharmacy-backend/pkg/errors"
)

const (
	defaultTopUsersLimit = 5
	maxTopUsersLimit     = 100
)

// Service answers the reporting queries.
type Service interface {
	SalesSummary(ctx context.Context, dateRange DateRange) (*Summary, error)
	TopUsers(ctx context.Context, dateRange DateRange, limit int) ([]TopUser, error)
}

type service struct {
	repo Repository
}

// NewService builds the reports service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("reports repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) SalesSummary(ctx context.Context, dateRange DateRange) (*Summary, error) {
	count, err := s.repo.CountTransactions(ctx, dateRange.Start, dateRange.End)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count transactions")
	}

	row, err := s.repo.SumSales(ctx, dateRange.Start, dateRange.End)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "sum sales")
	}

	return &Summary{
		TotalTransactions: count,
		TotalMasksSold:    int64(row.TotalQuantity),
		TotalValue:        row.TotalValue.Round(2).InexactFloat64(),
	}, nil
}

func (s *service) TopUsers(ctx context.Context, dateRange DateRange, limit int) ([]TopUser, error) {
	if limit <= 0 {
		limit = defaultTopUsersLimit
	}
	if limit > maxTopUsersLimit {
		limit = maxTopUsersLimit
	}

	rows, err := s.repo.TopUsers(ctx, dateRange.Start, dateRange.End, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "top users")
	}

	users := make([]TopUser, 0, len(rows))
	for _, row := range rows {
		users = append(users, TopUser{
			UserID:      row.UserID,
			UserName:    row.UserName,
			TotalAmount: row.TotalAmount.Round(2).InexactFloat64(),
		})
	}
	return users, nil
}
