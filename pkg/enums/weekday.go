package enums

import (
	"fmt"
	"strings"
)

// Weekday identifies a day of the week using the three-letter tokens carried
// by opening-hours data.
type Weekday string

const (
	WeekdayMon Weekday = "Mon"
	WeekdayTue Weekday = "Tue"
	WeekdayWed Weekday = "Wed"
	WeekdayThu Weekday = "Thu"
	WeekdayFri Weekday = "Fri"
	WeekdaySat Weekday = "Sat"
	WeekdaySun Weekday = "Sun"
)

// WeekdayOrder is the canonical Mon..Sun ordering used to expand day ranges.
var WeekdayOrder = []Weekday{
	WeekdayMon,
	WeekdayTue,
	WeekdayWed,
	WeekdayThu,
	WeekdayFri,
	WeekdaySat,
	WeekdaySun,
}

var weekdayAliases = map[string]Weekday{
	"Mon":  WeekdayMon,
	"Tue":  WeekdayTue,
	"Wed":  WeekdayWed,
	"Thu":  WeekdayThu,
	"Thur": WeekdayThu,
	"Fri":  WeekdayFri,
	"Sat":  WeekdaySat,
	"Sun":  WeekdaySun,
}

// String implements fmt.Stringer.
func (w Weekday) String() string {
	return string(w)
}

// IsValid reports whether the weekday is recognized.
func (w Weekday) IsValid() bool {
	for _, candidate := range WeekdayOrder {
		if candidate == w {
			return true
		}
	}
	return false
}

// Index returns the position of the weekday in the canonical order, or -1.
func (w Weekday) Index() int {
	for i, candidate := range WeekdayOrder {
		if candidate == w {
			return i
		}
	}
	return -1
}

// ParseWeekday converts a raw token into a Weekday. "Thur" is accepted as
// an alias for Thursday.
func ParseWeekday(value string) (Weekday, error) {
	if day, ok := weekdayAliases[strings.TrimSpace(value)]; ok {
		return day, nil
	}
	return "", fmt.Errorf("invalid weekday %q", value)
}
