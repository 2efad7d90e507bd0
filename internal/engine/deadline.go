package engine

import (
	"math"
	"time"

	"github.com/minsukang/stagegate/internal/domain"
)

// Deadline is the classification of one event against a reference day.
type Deadline struct {
	DDay   int
	Bucket domain.DeadlineBucket
}

// Classify computes the signed day distance (D-Day) between today and the
// event date and assigns a bucket. Executed events are completed regardless
// of date; otherwise negative D-Day is overdue, zero is today, positive is
// upcoming.
//
// Both instants are normalized to midnight in today's location before
// subtracting, so time-of-day drift between the two values cannot shift
// the day count.
func Classify(ev Event, today time.Time) Deadline {
	d := Deadline{DDay: DaysBetween(today, ev.Date)}
	switch {
	case ev.Executed:
		d.Bucket = domain.BucketCompleted
	case d.DDay < 0:
		d.Bucket = domain.BucketOverdue
	case d.DDay == 0:
		d.Bucket = domain.BucketToday
	default:
		d.Bucket = domain.BucketUpcoming
	}
	return d
}

// DaysBetween returns the signed calendar-day distance from 'from' to 'to',
// both taken at midnight in from's location.
func DaysBetween(from, to time.Time) int {
	a := atMidnight(from, from.Location())
	b := atMidnight(to, from.Location())
	return int(math.Ceil(b.Sub(a).Hours() / 24))
}

// Horizon sub-buckets an upcoming D-Day for display: imminent within a
// week, soon within a month, future beyond. Presentation policy layered on
// top of the classifier, not part of it.
func Horizon(dDay int) domain.HorizonBucket {
	switch {
	case dDay <= 7:
		return domain.HorizonImminent
	case dDay <= 30:
		return domain.HorizonSoon
	}
	return domain.HorizonFuture
}

func atMidnight(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
