package timezone

import "time"

const DefaultTimezone = "Asia/Kolkata"

func Location() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

// Today returns the salon-local calendar date in the wire format used by
// appointments.
func Today() string {
	return Now().Format("2006-01-02")
}

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, Location())
}
