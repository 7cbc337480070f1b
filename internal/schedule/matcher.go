package schedule

import (
	"github.com/maskrx/pharmacy-backend/pkg/db/models"
	dbtypes "github.com/maskrx/pharmacy-backend/pkg/db/types"
	"github.com/maskrx/pharmacy-backend/pkg/enums"
)

// Covers reports whether the entry's interval contains the given clock time.
// The closing edge is always exclusive:
//   - regular interval (start < end): start <= t < end
//   - overnight interval (end <= start): t >= start OR t < end
//
// A zero-width interval (start == end) is treated as overnight and covers
// every time of day.
func (e Entry) Covers(t dbtypes.TimeOfDay) bool {
	if e.Start.Before(e.End) {
		return !t.Before(e.Start) && t.Before(e.End)
	}
	return !t.Before(e.Start) || t.Before(e.End)
}

// RecordCovers applies the same interval logic to a persisted OpeningHour.
func RecordCovers(record models.OpeningHour, day enums.Weekday, t dbtypes.TimeOfDay) bool {
	if record.Weekday != day {
		return false
	}
	entry := Entry{Start: record.StartTime, End: record.EndTime}
	return entry.Covers(t)
}

// OpenPharmacyIDs returns the distinct pharmacy IDs among records that cover
// the given weekday and time. A pharmacy is open if any one of its records
// matches. Order follows first appearance in records.
func OpenPharmacyIDs(records []models.OpeningHour, day enums.Weekday, t dbtypes.TimeOfDay) []int64 {
	seen := make(map[int64]struct{})
	var ids []int64
	for _, record := range records {
		if !RecordCovers(record, day, t) {
			continue
		}
		if _, ok := seen[record.PharmacyID]; ok {
			continue
		}
		seen[record.PharmacyID] = struct{}{}
		ids = append(ids, record.PharmacyID)
	}
	return ids
}
