package search

import (
	"context"
	"fmt"
	"sort"

	pkgerrors "github.com/maskrx/pharmacy-backend/pkg/errors"
)

// Service ranks pharmacies or catalog masks by relevance to a keyword.
type Service interface {
	SearchPharmacies(ctx context.Context, keyword string) ([]PharmacyResult, error)
	SearchMasks(ctx context.Context, keyword string) ([]MaskResult, error)
}

type service struct {
	repo Repository
}

// NewService builds the search service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("search repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) SearchPharmacies(ctx context.Context, keyword string) ([]PharmacyResult, error) {
	if keyword == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "query_name is required")
	}

	pharmacies, err := s.repo.ListPharmacies(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list pharmacies")
	}

	results := make([]PharmacyResult, 0)
	for _, pharmacy := range pharmacies {
		score := Score(keyword, pharmacy.Name)
		if score <= 0 {
			continue
		}

		masks := make([]MaskSummary, 0, len(pharmacy.Masks))
		for _, entry := range pharmacy.Masks {
			summary := MaskSummary{
				MaskID: entry.MaskID,
				Price:  entry.Price.InexactFloat64(),
			}
			if entry.Mask != nil {
				summary.MaskName = entry.Mask.Name
			}
			masks = append(masks, summary)
		}

		results = append(results, PharmacyResult{
			PharmacyID:     pharmacy.ID,
			PharmacyName:   pharmacy.Name,
			CashBalance:    pharmacy.CashBalance.InexactFloat64(),
			OpeningHours:   formatOpeningHours(pharmacy.OpeningHours),
			Masks:          masks,
			RelevanceScore: score,
		})
	}

	// Stable: equal scores keep catalog enumeration order.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})
	return results, nil
}

func (s *service) SearchMasks(ctx context.Context, keyword string) ([]MaskResult, error) {
	if keyword == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "query_name is required")
	}

	entries, err := s.repo.ListCatalogEntries(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list catalog entries")
	}

	results := make([]MaskResult, 0)
	for _, entry := range entries {
		if entry.Mask == nil || entry.Pharmacy == nil {
			continue
		}
		score := Score(keyword, entry.Mask.Name)
		if score <= 0 {
			continue
		}

		results = append(results, MaskResult{
			MaskID:    entry.MaskID,
			MaskName:  entry.Mask.Name,
			MaskPrice: entry.Price.InexactFloat64(),
			Pharmacy: PharmacySummary{
				PharmacyID:   entry.Pharmacy.ID,
				PharmacyName: entry.Pharmacy.Name,
				CashBalance:  entry.Pharmacy.CashBalance.InexactFloat64(),
				OpeningHours: formatOpeningHours(entry.Pharmacy.OpeningHours),
			},
			RelevanceScore: score,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})
	return results, nil
}
