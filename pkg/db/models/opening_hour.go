package models

import (
	dbtypes "github.com/maskrx/pharmacy-backend/pkg/db/types"
	"github.com/maskrx/pharmacy-backend/pkg/enums"
)

// OpeningHour is one (day, interval) record of a pharmacy's schedule.
// Overnight is derived at load time: end <= start means the interval wraps
// past midnight.
type OpeningHour struct {
	ID         int64             `gorm:"column:id;primaryKey;autoIncrement"`
	PharmacyID int64             `gorm:"column:pharmacy_id;not null;index"`
	Weekday    enums.Weekday     `gorm:"column:weekday;type:text;not null;index"`
	StartTime  dbtypes.TimeOfDay `gorm:"column:start_time;type:text;not null"`
	EndTime    dbtypes.TimeOfDay `gorm:"column:end_time;type:text;not null"`
	Overnight  bool              `gorm:"column:overnight;not null;default:false"`
}
