package datephrase

import (
	"regexp"
	"strconv"
	"time"
)

type field int

const (
	fieldDay field = iota
	fieldMonth
	fieldYear
	fieldHours // composite time of day, e.g. "5:30pm"
	fieldHour
	fieldMinute
	fieldSecond
	fieldWeekday
	fieldShift
	fieldNamedDay // yesterday, today or tomorrow
	fieldAmount
	fieldDirection
)

// rule is a single entry of a recognizer: a pattern, the capture group that
// supplies each field, and how a match turns into a time.
type rule struct {
	name    string
	re      *regexp.Regexp
	fields  map[field]int
	resolve func(now time.Time, m match) (time.Time, bool)
}

type match struct {
	groups []string
	fields map[field]int
}

// get returns the text captured for f. Groups that did not participate in
// the match report false.
func (m match) get(f field) (string, bool) {
	idx, ok := m.fields[f]
	if !ok || idx >= len(m.groups) || m.groups[idx] == "" {
		return "", false
	}
	return m.groups[idx], true
}

func (m match) number(f field) (int, bool, error) {
	s, ok := m.get(f)
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, true, err
	}
	return n, true, nil
}

func newRule(name, pattern string, fields map[field]int, resolve func(time.Time, match) (time.Time, bool)) rule {
	return rule{
		name:    name,
		re:      regexp.MustCompile(`(?i)^` + pattern + `$`),
		fields:  fields,
		resolve: resolve,
	}
}

// evaluate runs rules in order. The first rule whose pattern matches decides
// the outcome; later rules are never consulted, even when resolving fails.
func evaluate(rules []rule, s string, now time.Time) (time.Time, string, bool) {
	for _, r := range rules {
		groups := r.re.FindStringSubmatch(s)
		if groups == nil {
			continue
		}
		t, ok := r.resolve(now, match{groups: groups, fields: r.fields})
		return t, r.name, ok
	}
	return time.Time{}, "", false
}
