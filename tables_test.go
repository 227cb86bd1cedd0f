package datephrase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFullYear(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, 2000},
		{15, 2015},
		{19, 2019},
		{20, 1920},
		{99, 1999},
		{100, 100},
		{2024, 2024},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, fullYear(tt.in), "fullYear(%d)", tt.in)
	}
}

func TestLookupMonth(t *testing.T) {
	for _, tt := range []struct {
		name   string
		want   time.Month
		wantOK bool
	}{
		{name: "jan", want: time.January, wantOK: true},
		{name: "January", want: time.January, wantOK: true},
		{name: "SEPT", want: time.September, wantOK: true},
		{name: "dec", want: time.December, wantOK: true},
		{name: "smarch"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := lookupMonth(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookupWeekday(t *testing.T) {
	for _, tt := range []struct {
		name   string
		want   time.Weekday
		wantOK bool
	}{
		{name: "sun", want: time.Sunday, wantOK: true},
		{name: "Saturday", want: time.Saturday, wantOK: true},
		{name: "THU", want: time.Thursday, wantOK: true},
		{name: "someday"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := lookupWeekday(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
