package enums

import "fmt"

// SearchType selects which catalog dimension a relevance search targets.
type SearchType string

const (
	SearchTypePharmacy SearchType = "pharmacy"
	SearchTypeMask     SearchType = "mask"
)

var validSearchTypes = []SearchType{
	SearchTypePharmacy,
	SearchTypeMask,
}

// String implements fmt.Stringer.
func (s SearchType) String() string {
	return string(s)
}

// IsValid reports whether the search type is recognized.
func (s SearchType) IsValid() bool {
	for _, candidate := range validSearchTypes {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSearchType converts a raw string into a SearchType.
func ParseSearchType(value string) (SearchType, error) {
	for _, candidate := range validSearchTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid search type %q", value)
}
