package datephrase

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRelative(t *testing.T) {
	p := newTestParser(t, fixed)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		noMatch bool
	}{
		{name: "now", input: "now", want: fixed},
		{name: "just now trimmed and mixed case", input: "  Just Now ", want: fixed},
		{name: "right now", input: "right  now", want: fixed},
		{name: "yesterday", input: "yesterday", want: at(2026, time.February, 24, 12, 30, 45)},
		{name: "today", input: "Today", want: fixed},
		{name: "tomorrow", input: "tomorrow", want: at(2026, time.February, 26, 12, 30, 45)},
		{name: "yesterday at pm time", input: "yesterday at 5:30pm", want: at(2026, time.February, 24, 17, 30, 45)},
		{name: "tomorrow without at", input: "Tomorrow 9am", want: at(2026, time.February, 26, 9, 0, 45)},
		{name: "today at 24 hour time", input: "today at 23:15:01", want: at(2026, time.February, 25, 23, 15, 1)},
		{name: "seconds ago", input: "10 seconds ago", want: fixed.Add(-10 * time.Second)},
		{name: "second singular", input: "1 second ago", want: fixed.Add(-time.Second)},
		{name: "seconds short", input: "10s", want: fixed.Add(-10 * time.Second)},
		{name: "sec", input: "10 sec ago", want: fixed.Add(-10 * time.Second)},
		{name: "minutes", input: "5 minutes ago", want: fixed.Add(-5 * time.Minute)},
		{name: "minutes short", input: "5m ago", want: fixed.Add(-5 * time.Minute)},
		{name: "hours", input: "3 hours ago", want: fixed.Add(-3 * time.Hour)},
		{name: "hours short mixed case", input: "3H AGO", want: fixed.Add(-3 * time.Hour)},
		{name: "days", input: "2 days ago", want: fixed.Add(-48 * time.Hour)},
		{name: "days short", input: "2d", want: fixed.Add(-48 * time.Hour)},
		{name: "weeks", input: "1 week ago", want: fixed.Add(-7 * 24 * time.Hour)},
		{name: "months use average length", input: "2 months ago", want: fixed.Add(-2 * 2_629_740_000 * time.Millisecond)},
		{name: "years use average length", input: "1 year ago", want: fixed.Add(-31_556_900_000 * time.Millisecond)},
		{name: "years short", input: "1y", want: fixed.Add(-31_556_900_000 * time.Millisecond)},
		{name: "from now is in the future", input: "3 days from now", want: fixed.Add(72 * time.Hour)},
		{name: "from now short unit", input: "90s from now", want: fixed.Add(90 * time.Second)},
		{
			name:  "beyond duration range",
			input: "1000 years ago",
			want:  time.UnixMilli(fixed.UnixMilli() - 1000*31_556_900_000).In(time.UTC),
		},
		{name: "unknown unit", input: "3 fortnights ago", noMatch: true},
		{name: "named time of day", input: "yesterday at noon", noMatch: true},
		{name: "absolute phrase", input: "5 March 2020", noMatch: true},
		{name: "amount overflows", input: "99999999999999999999 days ago", noMatch: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.ParseRelative(tt.input)
			if tt.noMatch {
				assert.False(t, ok, "ParseRelative(%q) should not match", tt.input)
				return
			}

			require.True(t, ok, "ParseRelative(%q) should match", tt.input)
			assert.Equal(t, tt.want, got, "ParseRelative(%q) returned unexpected value", tt.input)
		})
	}
}

func TestHoursAgoMillis(t *testing.T) {
	p := newTestParser(t, fixed)

	got, ok := p.ParseRelative("3 hours ago")
	require.True(t, ok)
	assert.Equal(t, fixed.UnixMilli()-10_800_000, got.UnixMilli())
}

func TestShiftMillis(t *testing.T) {
	_, ok := shiftMillis(fixed, -1, math.MaxInt64/yearMillis+1, yearMillis)
	assert.False(t, ok, "amount overflowing int64 milliseconds should not resolve")

	got, ok := shiftMillis(fixed, 1, 2, dayMillis)
	require.True(t, ok)
	assert.Equal(t, fixed.AddDate(0, 0, 2), got)

	_, ok = shiftMillis(fixed, 1, math.MaxInt64/yearMillis, yearMillis)
	assert.False(t, ok, "result beyond the epoch millisecond range should not resolve")
}

func TestNamedDayRuleFields(t *testing.T) {
	var named rule
	for _, r := range relativeRules {
		if r.name == "named-day" {
			named = r
		}
	}
	require.NotNil(t, named.re, "named-day rule should exist")

	assert.Equal(t, map[field]int{fieldNamedDay: 1, fieldHours: 2}, named.fields)
	assert.NotContains(t, named.fields, fieldShift, "weekday shift field should not be reused for named days")
}
