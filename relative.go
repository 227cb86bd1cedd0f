package datephrase

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	secondMillis int64 = 1000
	minuteMillis       = 60 * secondMillis
	hourMillis         = 60 * minuteMillis
	dayMillis          = 24 * hourMillis
	weekMillis         = 7 * dayMillis
	// Average Gregorian month and year.
	monthMillis int64 = 2_629_740_000
	yearMillis  int64 = 31_556_900_000

	maxDurationMillis = math.MaxInt64 / int64(time.Millisecond)
)

var relativeRules = []rule{
	newRule("now", `(?:just\s+now|right\s+now|now)`, nil, resolveNow),
	newRule("named-day", `(yesterday|today|tomorrow)\s*(?:at)?\s*(`+timeOfDayPattern+`)?`,
		map[field]int{fieldNamedDay: 1, fieldHours: 2}, resolveNamedDay),
	offsetRule("seconds", `s|secs?|seconds?`, secondMillis),
	offsetRule("minutes", `m|mins?|minutes?`, minuteMillis),
	offsetRule("hours", `h|hrs?|hours?`, hourMillis),
	offsetRule("days", `d|days?`, dayMillis),
	offsetRule("weeks", `w|weeks?`, weekMillis),
	offsetRule("months", `months?`, monthMillis),
	offsetRule("years", `y|years?`, yearMillis),
}

func resolveNow(now time.Time, _ match) (time.Time, bool) {
	return now, true
}

func resolveNamedDay(now time.Time, m match) (time.Time, bool) {
	name, _ := m.get(fieldNamedDay)

	var days int
	switch strings.ToLower(name) {
	case "yesterday":
		days = -1
	case "tomorrow":
		days = 1
	}

	c := calendarOf(now.AddDate(0, 0, days))
	if !setTimeOfDay(&c, m) {
		return time.Time{}, false
	}
	return c.time(), true
}

// offsetRule matches "<n><unit>" with an optional "ago" or "from now"
// suffix. Bare amounts and "ago" point to the past.
func offsetRule(name, units string, unitMillis int64) rule {
	pattern := `(\d+)\s*(?:` + units + `)(?:\s+(ago|from\s+now))?`
	return newRule(name, pattern, map[field]int{fieldAmount: 1, fieldDirection: 2},
		func(now time.Time, m match) (time.Time, bool) {
			s, _ := m.get(fieldAmount)
			n, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return time.Time{}, false
			}

			sign := int64(-1)
			if dir, ok := m.get(fieldDirection); ok && strings.HasPrefix(strings.ToLower(dir), "from") {
				sign = 1
			}

			return shiftMillis(now, sign, n, unitMillis)
		})
}

func shiftMillis(now time.Time, sign, amount, unitMillis int64) (time.Time, bool) {
	if amount > math.MaxInt64/unitMillis {
		return time.Time{}, false
	}

	ms := amount * unitMillis
	if ms <= maxDurationMillis {
		return now.Add(time.Duration(sign*ms) * time.Millisecond), true
	}

	// Beyond ~292 years time.Duration overflows; fall back to epoch millis.
	base := now.UnixMilli()
	if (sign > 0 && base > math.MaxInt64-ms) || (sign < 0 && base < math.MinInt64+ms) {
		return time.Time{}, false
	}
	return time.UnixMilli(base + sign*ms).In(now.Location()), true
}
