package datephrase

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

// Wednesday.
var fixed = time.Date(2026, time.February, 25, 12, 30, 45, 0, time.UTC)

func newTestParser(t *testing.T, now time.Time, opts ...Option) *Parser {
	t.Helper()

	base := []Option{
		WithClock(clockwork.NewFakeClockAt(now)),
		WithLocation(time.UTC),
	}
	return New(append(base, opts...)...)
}

func at(year int, month time.Month, day, hour, minute, second int) time.Time {
	return time.Date(year, month, day, hour, minute, second, 0, time.UTC)
}
