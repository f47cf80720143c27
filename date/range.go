package date

import (
	"iter"
	"time"
)

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// Year returns the range covering a whole civil year.
func Year(y int) Range {
	return Range{From: New(y, time.January, 1), To: New(y, time.December, 31)}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return (!date.Before(r.From) && !date.After(r.To)) }

// Len returns the number of days in the range, boundaries included.
func (r Range) Len() int {
	if r.To.Before(r.From) {
		return 0
	}
	return int(r.To.time().Sub(r.From.time())/Day) + 1
}

// Days returns an iterator over every day in the range, in chronological order.
func (r Range) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.From; !d.After(r.To); d = d.Add(1) {
			if !yield(d) {
				return
			}
		}
	}
}

// String formats the range in its standard form.
func (r Range) String() string { return r.From.String() + " => " + r.To.String() }
