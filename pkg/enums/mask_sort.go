package enums

import "fmt"

// MaskSort selects the ordering of a pharmacy's mask listing.
type MaskSort string

const (
	MaskSortName  MaskSort = "name"
	MaskSortPrice MaskSort = "price"
)

var validMaskSorts = []MaskSort{
	MaskSortName,
	MaskSortPrice,
}

// String implements fmt.Stringer.
func (m MaskSort) String() string {
	return string(m)
}

// IsValid reports whether the sort key is recognized.
func (m MaskSort) IsValid() bool {
	for _, candidate := range validMaskSorts {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMaskSort converts a raw string into a MaskSort.
func ParseMaskSort(value string) (MaskSort, error) {
	for _, candidate := range validMaskSorts {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort key %q", value)
}
