package enums

import "fmt"

// Comparison selects the direction of a count threshold.
type Comparison string

const (
	ComparisonMore  Comparison = "more"
	ComparisonFewer Comparison = "fewer"
)

var validComparisons = []Comparison{
	ComparisonMore,
	ComparisonFewer,
}

// String implements fmt.Stringer.
func (c Comparison) String() string {
	return string(c)
}

// IsValid reports whether the comparison is recognized.
func (c Comparison) IsValid() bool {
	for _, candidate := range validComparisons {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseComparison converts a raw string into a Comparison.
func ParseComparison(value string) (Comparison, error) {
	for _, candidate := range validComparisons {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid comparison %q", value)
}
