package datephrase

import (
	"regexp"
	"strconv"
	"strings"
)

// timeOfDayPattern matches H:MM, H:MM:SS and H with an am/pm suffix.
const timeOfDayPattern = `\d+(?::\d+(?::\d+)?(?:\s*(?:am|pm))?|\s*(?:am|pm))`

var timeOfDayRE = regexp.MustCompile(`(?i)^(\d+)(?::(\d+)(?::(\d+))?)?\s*(am|pm)?$`)

type timeOfDay struct {
	hour      int
	minute    int
	second    int
	hasSecond bool
}

func parseTimeOfDay(s string) (timeOfDay, bool) {
	m := timeOfDayRE.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return timeOfDay{}, false
	}

	meridiem := strings.ToLower(m[4])
	if m[2] == "" && meridiem == "" {
		return timeOfDay{}, false
	}

	var (
		tod timeOfDay
		err error
	)

	if tod.hour, err = strconv.Atoi(m[1]); err != nil {
		return timeOfDay{}, false
	}
	if m[2] != "" {
		if tod.minute, err = strconv.Atoi(m[2]); err != nil {
			return timeOfDay{}, false
		}
	}
	if m[3] != "" {
		if tod.second, err = strconv.Atoi(m[3]); err != nil {
			return timeOfDay{}, false
		}
		tod.hasSecond = true
	}

	switch meridiem {
	case "am":
		if tod.hour == 12 {
			tod.hour = 0
		}
	case "pm":
		if tod.hour < 12 {
			tod.hour += 12
		}
	}

	return tod, true
}
