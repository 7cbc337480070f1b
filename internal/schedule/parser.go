package schedule

import (
	"regexp"
	"strings"

	dbtypes "github.com/maskrx/pharmacy-backend/pkg/db/types"
	"github.com/maskrx/pharmacy-backend/pkg/enums"
)

// Entry is one parsed (day, interval) record of an opening-hours string.
// Overnight is true when the interval wraps past midnight (end <= start).
type Entry struct {
	Day       enums.Weekday
	Start     dbtypes.TimeOfDay
	End       dbtypes.TimeOfDay
	Overnight bool
}

var sectionRe = regexp.MustCompile(`^([A-Za-z,\s\-]+)\s+(\d{1,2}:\d{2})\s*-\s*(\d{1,2}:\d{2})$`)

// Parse converts a free-text schedule such as
// "Mon - Fri 08:00 - 18:00 / Sat, Sun 09:00 - 12:00" into entries, one per
// (day, section) pair. Parsing is best-effort: sections that do not match the
// expected shape are skipped, not reported.
func Parse(openingHours string) []Entry {
	var entries []Entry

	for _, section := range strings.Split(openingHours, "/") {
		section = strings.TrimSpace(section)
		match := sectionRe.FindStringSubmatch(section)
		if match == nil {
			continue
		}

		start, err := dbtypes.ParseTimeOfDay(match[2])
		if err != nil {
			continue
		}
		end, err := dbtypes.ParseTimeOfDay(match[3])
		if err != nil {
			continue
		}
		overnight := !start.Before(end)

		for _, day := range parseDays(match[1]) {
			entries = append(entries, Entry{
				Day:       day,
				Start:     start,
				End:       end,
				Overnight: overnight,
			})
		}
	}

	return entries
}

// parseDays expands a day spec, either a range ("Mon - Fri") or a comma list
// ("Mon, Wed, Fri"). Ranges expand inclusively along the canonical Mon..Sun
// order; a range whose end precedes its start yields nothing rather than
// wrapping around the week.
func parseDays(daySpec string) []enums.Weekday {
	daySpec = strings.TrimSpace(daySpec)

	if strings.Contains(daySpec, "-") {
		bounds := strings.SplitN(daySpec, "-", 2)
		startDay, err := enums.ParseWeekday(bounds[0])
		if err != nil {
			return nil
		}
		endDay, err := enums.ParseWeekday(bounds[1])
		if err != nil {
			return nil
		}
		startIdx, endIdx := startDay.Index(), endDay.Index()
		if endIdx < startIdx {
			return nil
		}
		return append([]enums.Weekday(nil), enums.WeekdayOrder[startIdx:endIdx+1]...)
	}

	var days []enums.Weekday
	for _, token := range strings.Split(daySpec, ",") {
		if day, err := enums.ParseWeekday(token); err == nil {
			days = append(days, day)
		}
	}
	return days
}
