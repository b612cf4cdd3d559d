package engine

import (
	"time"

	"github.com/ekumamatthew/hackathon-bot/internal/entities"
)

const secondsInHour = 3600

// Elapsed reports how long an assignment has persisted, in whole calendar
// days plus leftover whole hours. Days are counted with calendar arithmetic
// so a span crossing a month boundary or a DST transition still yields the
// conventional "days since" number rather than a naive duration division.
func Elapsed(now, assignedAt time.Time) entities.Span {
	if !assignedAt.Before(now) {
		return entities.Span{}
	}

	days := int(now.Sub(assignedAt).Hours() / 24)
	for !assignedAt.AddDate(0, 0, days+1).After(now) {
		days++
	}
	for days > 0 && assignedAt.AddDate(0, 0, days).After(now) {
		days--
	}

	rest := now.Sub(assignedAt.AddDate(0, 0, days))
	return entities.Span{
		Days:  days,
		Hours: int(rest / time.Hour),
	}
}

// Remaining reports the countdown to the deadline assignedAt+limitSeconds.
// ok is false once the deadline has passed. Unlike Elapsed this is a
// fixed-duration countdown: days are 86400-second blocks and hours the
// truncated 0-23 remainder.
func Remaining(now, assignedAt time.Time, limitSeconds int64) (span entities.Span, ok bool) {
	deadline := assignedAt.Add(time.Duration(limitSeconds) * time.Second)
	if !deadline.After(now) {
		return entities.Span{}, false
	}

	total := int64(deadline.Sub(now) / time.Second)
	return entities.Span{
		Days:  int(total / (24 * secondsInHour)),
		Hours: int(total / secondsInHour % 24),
	}, true
}
