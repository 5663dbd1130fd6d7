package booking

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// ToDay truncates t to calendar-day granularity. The day is rebuilt from the
// local calendar components so that time-of-day and DST offsets cannot shift
// the date.
func ToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DateRange is a stay interval in whole days. Both ends are inclusive:
// a reservation ending on day D still occupies D.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds a range from two instants, truncating both to days.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: ToDay(start), End: ToDay(end)}
}

// ParseDateRange parses two YYYY-MM-DD values in local time.
func ParseDateRange(start, end string) (DateRange, error) {
	s, err := time.ParseInLocation(DateLayout, start, time.Local)
	if err != nil {
		return DateRange{}, fmt.Errorf("parse start date %q: %w", start, err)
	}
	e, err := time.ParseInLocation(DateLayout, end, time.Local)
	if err != nil {
		return DateRange{}, fmt.Errorf("parse end date %q: %w", end, err)
	}
	return DateRange{Start: s, End: e}, nil
}

// Overlaps reports whether r and other share at least one calendar day.
// The test is inclusive on both boundaries: a range ending on day D conflicts
// with one starting on day D, so same-day checkout/checkin is not allowed.
// It stays correct for degenerate single-day ranges where Start == End.
func (r DateRange) Overlaps(other DateRange) bool {
	return !(r.End.Before(other.Start) || r.Start.After(other.End))
}
