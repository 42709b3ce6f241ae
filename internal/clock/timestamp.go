package clock

import "time"

// DocumentLayout renders UTC instants with microsecond precision and a Z suffix.
const DocumentLayout = "2006-01-02T15:04:05.000000Z"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock.
type System struct{}

// Now returns the current wall-clock time.
func (System) Now() time.Time {
	return time.Now()
}

// Fixed always reports the same instant.
type Fixed time.Time

// Now returns the fixed instant.
func (f Fixed) Now() time.Time {
	return time.Time(f)
}

// Format renders t in UTC using DocumentLayout.
func Format(t time.Time) string {
	return t.UTC().Format(DocumentLayout)
}
