package search

import (
	"fmt"

	"github.com/maskrx/pharmacy-backend/pkg/db/models"
)

// MaskSummary is the denormalized catalog line shown inside pharmacy hits.
type MaskSummary struct {
	MaskID   int64   `json:"mask_id"`
	MaskName string  `json:"mask_name"`
	Price    float64 `json:"price"`
}

// PharmacySummary is the owning-pharmacy block shown inside mask hits.
type PharmacySummary struct {
	PharmacyID   int64    `json:"pharmacy_id"`
	PharmacyName string   `json:"pharmacy_name"`
	CashBalance  float64  `json:"cashBalance"`
	OpeningHours []string `json:"openingHours"`
}

// PharmacyResult is one ranked pharmacy search hit.
type PharmacyResult struct {
	PharmacyID     int64         `json:"pharmacy_id"`
	PharmacyName   string        `json:"pharmacy_name"`
	CashBalance    float64       `json:"cashBalance"`
	OpeningHours   []string      `json:"openingHours"`
	Masks          []MaskSummary `json:"masks"`
	RelevanceScore float64       `json:"relevanceScore"`
}

// MaskResult is one ranked mask search hit.
type MaskResult struct {
	MaskID         int64           `json:"mask_id"`
	MaskName       string          `json:"mask_name"`
	MaskPrice      float64         `json:"mask_price"`
	Pharmacy       PharmacySummary `json:"pharmacy"`
	RelevanceScore float64         `json:"relevanceScore"`
}

func formatOpeningHours(hours []models.OpeningHour) []string {
	formatted := make([]string, 0, len(hours))
	for _, hour := range hours {
		formatted = append(formatted, fmt.Sprintf("%s %s - %s", hour.Weekday, hour.StartTime, hour.EndTime))
	}
	return formatted
}
