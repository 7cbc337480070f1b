package pharmacies

import (
	"github.com/shopspring/decimal"

	dbtypes "github.com/maskrx/pharmacy-backend/pkg/db/types"
	"github.com/maskrx/pharmacy-backend/pkg/enums"
)

// OpenPharmacy is one pharmacy open at the queried instant.
type OpenPharmacy struct {
	PharmacyID   int64   `json:"pharmacy_id"`
	PharmacyName string  `json:"pharmacy_name"`
	CashBalance  float64 `json:"cash_balance"`
}

// MaskLine is one catalog row of a pharmacy's mask listing.
type MaskLine struct {
	MaskID   int64   `json:"mask_id"`
	MaskName string  `json:"mask_name"`
	Price    float64 `json:"price"`
}

// FilteredPharmacy is a pharmacy passing the mask-count filter, along with
// its catalog entries inside the price band.
type FilteredPharmacy struct {
	PharmacyID   int64      `json:"pharmacy_id"`
	PharmacyName string     `json:"pharmacy_name"`
	Masks        []MaskLine `json:"masks"`
}

// OpenQuery identifies the instant an open-pharmacies lookup targets.
type OpenQuery struct {
	Weekday enums.Weekday
	Time    dbtypes.TimeOfDay
}

// MaskCountFilter bounds the price band and count threshold of the filter
// endpoint.
type MaskCountFilter struct {
	MinPrice   decimal.Decimal
	MaxPrice   decimal.Decimal
	Count      int
	Comparison enums.Comparison
}
