package pharmacies

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/maskrx/pharmacy-backend/internal/schedule"
	"github.com/maskrx/pharmacy-backend/pkg/db/models"
	"github.com/maskrx/pharmacy-backend/pkg/enums"
	pkgerrors "github.com/maskrx/pharmacy-backend/pkg/errors"
)

// FilterResponse carries the mask-count filter outcome and an operator
// facing message.
type FilterResponse struct {
	Message    string             `json:"message"`
	Pharmacies []FilteredPharmacy `json:"pharmacies"`
}

// Service answers the pharmacy directory queries.
type Service interface {
	OpenPharmacies(ctx context.Context, query OpenQuery) ([]OpenPharmacy, error)
	ListMasks(ctx context.Context, pharmacyName string, sortBy enums.MaskSort) ([]MaskLine, error)
	FilterByMaskCount(ctx context.Context, filter MaskCountFilter) (*FilterResponse, error)
}

type service struct {
	repo Repository
}

// NewService builds the pharmacy service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("pharmacy repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) OpenPharmacies(ctx context.Context, query OpenQuery) ([]OpenPharmacy, error) {
	if !query.Weekday.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown weekday")
	}

	hours, err := s.repo.ListOpeningHours(ctx, query.Weekday)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list opening hours")
	}

	ids := schedule.OpenPharmacyIDs(hours, query.Weekday, query.Time)
	pharmacies, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load pharmacies")
	}

	byID := make(map[int64]models.Pharmacy, len(pharmacies))
	for _, pharmacy := range pharmacies {
		byID[pharmacy.ID] = pharmacy
	}

	// Preserve first-appearance order of the matching opening hours.
	results := make([]OpenPharmacy, 0, len(ids))
	for _, id := range ids {
		pharmacy, ok := byID[id]
		if !ok {
			continue
		}
		results = append(results, OpenPharmacy{
			PharmacyID:   pharmacy.ID,
			PharmacyName: pharmacy.Name,
			CashBalance:  pharmacy.CashBalance.InexactFloat64(),
		})
	}
	return results, nil
}

func (s *service) ListMasks(ctx context.Context, pharmacyName string, sortBy enums.MaskSort) ([]MaskLine, error) {
	if pharmacyName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "pharmacy name is required")
	}

	pharmacy, err := s.repo.FindByName(ctx, pharmacyName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "pharmacy not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find pharmacy")
	}

	entries, err := s.repo.ListCatalog(ctx, pharmacy.ID, sortBy)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list pharmacy masks")
	}

	lines := make([]MaskLine, 0, len(entries))
	for _, entry := range entries {
		line := MaskLine{
			MaskID: entry.ID,
			Price:  entry.Price.InexactFloat64(),
		}
		if entry.Mask != nil {
			line.MaskName = entry.Mask.Name
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (s *service) FilterByMaskCount(ctx context.Context, filter MaskCountFilter) (*FilterResponse, error) {
	if filter.MinPrice.GreaterThan(filter.MaxPrice) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "min_price must not exceed max_price")
	}
	if filter.Count < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "count must be non-negative")
	}
	if !filter.Comparison.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "comparison must be 'more' or 'fewer'")
	}

	entries, err := s.repo.ListCatalogInBand(ctx, filter.MinPrice, filter.MaxPrice)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list catalog entries")
	}

	grouped := make(map[int64][]models.PharmacyMask)
	order := make([]int64, 0)
	for _, entry := range entries {
		if _, seen := grouped[entry.PharmacyID]; !seen {
			order = append(order, entry.PharmacyID)
		}
		grouped[entry.PharmacyID] = append(grouped[entry.PharmacyID], entry)
	}

	matched := make([]FilteredPharmacy, 0)
	for _, id := range order {
		group := grouped[id]
		count := len(group)

		pass := count >= filter.Count
		if filter.Comparison == enums.ComparisonFewer {
			pass = count <= filter.Count
		}
		if !pass {
			continue
		}

		masks := make([]MaskLine, 0, count)
		for _, entry := range group {
			line := MaskLine{
				MaskID: entry.ID,
				Price:  entry.Price.InexactFloat64(),
			}
			if entry.Mask != nil {
				line.MaskName = entry.Mask.Name
			}
			masks = append(masks, line)
		}

		result := FilteredPharmacy{PharmacyID: id, Masks: masks}
		if group[0].Pharmacy != nil {
			result.PharmacyName = group[0].Pharmacy.Name
		}
		matched = append(matched, result)
	}

	response := &FilterResponse{Pharmacies: matched, Message: "Filtered pharmacies retrieved successfully."}
	if len(matched) == 0 {
		response.Message = "No pharmacies matched the condition."
	}
	return response, nil
}
