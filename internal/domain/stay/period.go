package stay

import (
	"time"

	"hotel-booking-engine/internal/pkg/errs"
)

const day = 24 * time.Hour

var ErrInvalidPeriod = errs.Validation("check-out date must be after check-in date")

// Period is a half-open range of hotel nights [CheckIn, CheckOut). Both ends
// are calendar dates stored as midnight UTC.
type Period struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewPeriod(checkIn, checkOut time.Time) (Period, error) {
	in, out := Date(checkIn), Date(checkOut)
	if !out.After(in) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{checkIn: in, checkOut: out}, nil
}

func (p Period) CheckIn() time.Time  { return p.checkIn }
func (p Period) CheckOut() time.Time { return p.checkOut }
func (p Period) IsZero() bool        { return p.checkIn.IsZero() && p.checkOut.IsZero() }

// Nights is ceil((checkOut - checkIn) / 1 day).
func (p Period) Nights() int {
	return ceilDays(p.checkOut.Sub(p.checkIn))
}

// Overlaps reports whether two half-open periods share at least one night.
func (p Period) Overlaps(o Period) bool {
	return p.checkIn.Before(o.checkOut) && o.checkIn.Before(p.checkOut)
}

// Truncate returns the period ending at checkOut when that shortens it.
func (p Period) Truncate(checkOut time.Time) Period {
	out := Date(checkOut)
	if !out.After(p.checkIn) {
		out = p.checkIn.Add(day)
	}
	if out.Before(p.checkOut) {
		return Period{checkIn: p.checkIn, checkOut: out}
	}
	return p
}

func (p Period) String() string {
	return "[" + p.checkIn.Format(time.DateOnly) + ", " + p.checkOut.Format(time.DateOnly) + ")"
}

// ChargeableNights counts nights from the check-in date to departure, rounding
// partial days up, with a minimum of one.
func ChargeableNights(checkIn, departure time.Time) int {
	n := ceilDays(departure.Sub(Date(checkIn)))
	if n < 1 {
		return 1
	}
	return n
}

// Date drops the clock part, keeping the calendar date of t as midnight UTC.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WallClock re-expresses the local wall time of t in loc as a UTC instant so it
// can be compared with stay dates.
func WallClock(t time.Time, loc *time.Location) time.Time {
	l := t.In(loc)
	return time.Date(l.Year(), l.Month(), l.Day(), l.Hour(), l.Minute(), l.Second(), l.Nanosecond(), time.UTC)
}

func ceilDays(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	n := int(d / day)
	if d%day != 0 {
		n++
	}
	return n
}
