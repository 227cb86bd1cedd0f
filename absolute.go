package datephrase

import (
	"strings"
	"time"
)

var absoluteRules = []rule{
	newRule("day-month-year", `(\d+)\s+`+monthPattern+`\s+(\d+)`,
		map[field]int{fieldDay: 1, fieldMonth: 2, fieldYear: 3}, resolveCalendar),
	newRule("month-day-year", monthPattern+`\s+(\d+)\s*,\s*(\d+)`,
		map[field]int{fieldMonth: 1, fieldDay: 2, fieldYear: 3}, resolveCalendar),
	newRule("day-month", `(\d+)\s+`+monthPattern,
		map[field]int{fieldDay: 1, fieldMonth: 2}, resolveCalendar),
	newRule("time-of-day", `(`+timeOfDayPattern+`)`,
		map[field]int{fieldHours: 1}, resolveCalendar),
	newRule("weekday", `(?:(previous|last|next)\s*)?`+weekdayPattern,
		map[field]int{fieldShift: 1, fieldWeekday: 2}, resolveWeekday),
}

// calendar is a broken-down wall-clock time. Fields may hold out-of-range
// values; they are normalized by time.Date when converted back.
type calendar struct {
	year   int
	month  time.Month
	day    int
	hour   int
	minute int
	second int
	nsec   int
	loc    *time.Location
}

func calendarOf(t time.Time) calendar {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	return calendar{
		year:   year,
		month:  month,
		day:    day,
		hour:   hour,
		minute: minute,
		second: second,
		nsec:   t.Nanosecond(),
		loc:    t.Location(),
	}
}

func (c calendar) time() time.Time {
	return time.Date(c.year, c.month, c.day, c.hour, c.minute, c.second, c.nsec, c.loc)
}

func (c *calendar) setTimeOfDay(tod timeOfDay) {
	c.hour = tod.hour
	c.minute = tod.minute
	if tod.hasSecond {
		c.second = tod.second
	}
}

type calendarSetter func(*calendar, match) bool

// Setters run in this order and later ones overwrite earlier ones, so a
// discrete hour/minute/second field wins over the composite time of day.
var calendarSetters = []calendarSetter{
	numberSetter(fieldYear, func(c *calendar, n int) { c.year = fullYear(n) }),
	setMonth,
	numberSetter(fieldDay, func(c *calendar, n int) { c.day = n }),
	setTimeOfDay,
	numberSetter(fieldHour, func(c *calendar, n int) { c.hour = n }),
	numberSetter(fieldMinute, func(c *calendar, n int) { c.minute = n }),
	numberSetter(fieldSecond, func(c *calendar, n int) { c.second = n }),
}

func numberSetter(f field, apply func(*calendar, int)) calendarSetter {
	return func(c *calendar, m match) bool {
		n, ok, err := m.number(f)
		if err != nil {
			return false
		}
		if ok {
			apply(c, n)
		}
		return true
	}
}

func setMonth(c *calendar, m match) bool {
	name, ok := m.get(fieldMonth)
	if !ok {
		return true
	}
	month, ok := lookupMonth(name)
	if !ok {
		return false
	}
	c.month = month
	return true
}

func setTimeOfDay(c *calendar, m match) bool {
	s, ok := m.get(fieldHours)
	if !ok {
		return true
	}
	tod, ok := parseTimeOfDay(s)
	if !ok {
		return false
	}
	c.setTimeOfDay(tod)
	return true
}

func resolveCalendar(now time.Time, m match) (time.Time, bool) {
	c := calendarOf(now)
	for _, set := range calendarSetters {
		if !set(&c, m) {
			return time.Time{}, false
		}
	}
	return c.time(), true
}

// resolveWeekday moves back to the target weekday when it is earlier in the
// current week (or today), forward when it is later, then applies the
// optional one-week shift.
func resolveWeekday(now time.Time, m match) (time.Time, bool) {
	name, _ := m.get(fieldWeekday)
	target, ok := lookupWeekday(name)
	if !ok {
		return time.Time{}, false
	}

	diff := int(now.Weekday()) - int(target)

	var shift int
	if s, ok := m.get(fieldShift); ok {
		switch strings.ToLower(s) {
		case "next":
			shift = 7
		case "previous", "last":
			shift = -7
		}
	}

	return now.AddDate(0, 0, shift-diff), true
}
