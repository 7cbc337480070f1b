package reports

import (
	"time"

	pkgerrors "github.com/maskrx/pharmacy-backend/pkg/errors"
)

const dateLayout = "2006-01-02"

// DateRange bounds a report query. Start is the first instant of the start
// day, End the last second of the end day.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ParseDateRange expands two YYYY-MM-DD strings into an inclusive range
// covering both whole days.
func ParseDateRange(startDate, endDate string) (DateRange, error) {
	start, err := time.ParseInLocation(dateLayout, startDate, time.UTC)
	if err != nil {
		return DateRange{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid date format, use YYYY-MM-DD")
	}
	end, err := time.ParseInLocation(dateLayout, endDate, time.UTC)
	if err != nil {
		return DateRange{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid date format, use YYYY-MM-DD")
	}
	return DateRange{
		Start: start,
		End:   end.Add(23*time.Hour + 59*time.Minute + 59*time.Second),
	}, nil
}

// Summary aggregates sales over a date range. TotalMasksSold divides each
// transaction amount by the catalog price currently on record, which assumes
// prices have not changed since the sale.
type Summary struct {
	TotalTransactions int64   `json:"total_transactions"`
	TotalMasksSold    int64   `json:"total_masks_sold"`
	TotalValue        float64 `json:"total_value"`
}

// TopUser is one row of the top-spenders report.
type TopUser struct {
	UserID      int64   `json:"user_id"`
	UserName    string  `json:"user_name"`
	TotalAmount float64 `json:"total_amount"`
}
