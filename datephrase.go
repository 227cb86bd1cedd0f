// Package datephrase turns loosely written date text into a point in time.
//
// Input is tried against absolute calendar expressions ("12 Jan 2024",
// "Jan 12, 2024", "5:30pm", "next friday"), then relative expressions
// ("now", "yesterday at 5pm", "3 hours ago", "2d from now"), and finally
// handed to a general purpose parser. Callers import and call it
// explicitly; nothing in the process-wide time handling is replaced.
package datephrase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

var (
	// ErrUnrecognized is returned when no rule and no fallback parser
	// understood the input.
	ErrUnrecognized = errors.New("unrecognized date")
	// ErrNotString is returned by ParseValue for non-string input.
	ErrNotString = errors.New("input is not a string")
)

// FallbackFunc parses input that none of the built-in rules matched.
type FallbackFunc func(s string, loc *time.Location) (time.Time, error)

// DefaultFallback hands the input to github.com/araddon/dateparse.
func DefaultFallback(s string, loc *time.Location) (time.Time, error) {
	return dateparse.ParseIn(s, loc)
}

// Parser resolves date phrases against a clock. It is safe for concurrent
// use once constructed.
type Parser struct {
	clock    clockwork.Clock
	loc      *time.Location
	fallback FallbackFunc
	logger   zerolog.Logger
	metrics  *parseMetrics
}

type Option func(*Parser)

// WithClock sets the source of the current instant.
func WithClock(clock clockwork.Clock) Option {
	return func(p *Parser) {
		p.clock = clock
	}
}

// WithLocation sets the wall-clock location calendar arithmetic happens in.
// Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(p *Parser) {
		p.loc = loc
	}
}

// WithFallback replaces the parser used when no rule matches. A nil
// function disables the fallback.
func WithFallback(fn FallbackFunc) Option {
	return func(p *Parser) {
		p.fallback = fn
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// WithRegisterer counts parses per recognizer on reg. A nil registerer
// leaves metrics off.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(p *Parser) {
		if reg == nil {
			p.metrics = nil
			return
		}
		p.metrics = newParseMetrics(reg)
	}
}

func New(opts ...Option) *Parser {
	p := &Parser{
		clock:    clockwork.NewRealClock(),
		loc:      time.Local,
		fallback: DefaultFallback,
		logger:   zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

func (p *Parser) now() time.Time {
	return p.clock.Now().In(p.loc)
}

// Parse resolves s, trying absolute rules, then relative rules, then the
// fallback parser.
func (p *Parser) Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	now := p.now()

	if t, name, ok := evaluate(absoluteRules, s, now); ok {
		p.observe(recognizerAbsolute, name, s, t)
		return t, nil
	}

	if t, name, ok := evaluate(relativeRules, s, now); ok {
		p.observe(recognizerRelative, name, s, t)
		return t, nil
	}

	if p.fallback == nil {
		p.observe(recognizerNone, "", s, time.Time{})
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, s)
	}

	t, err := p.fallback(s, p.loc)
	if err != nil {
		p.observe(recognizerNone, "", s, time.Time{})
		return time.Time{}, fmt.Errorf("%w: %q: %w", ErrUnrecognized, s, err)
	}

	p.observe(recognizerFallback, "", s, t)
	return t, nil
}

// ParseValue is Parse for values of unknown type. Anything but a string
// fails with ErrNotString without being inspected further.
func (p *Parser) ParseValue(v any) (time.Time, error) {
	s, ok := v.(string)
	if !ok {
		p.observe(recognizerNone, "", fmt.Sprintf("%v", v), time.Time{})
		return time.Time{}, fmt.Errorf("%w: %T", ErrNotString, v)
	}
	return p.Parse(s)
}

// ParseMillis returns the parsed instant as milliseconds since the Unix
// epoch. ok is false when the value could not be parsed.
func (p *Parser) ParseMillis(v any) (ms int64, ok bool) {
	t, err := p.ParseValue(v)
	if err != nil {
		return 0, false
	}
	return t.UnixMilli(), true
}

// ParseAbsolute applies only the absolute calendar rules.
func (p *Parser) ParseAbsolute(s string) (time.Time, bool) {
	t, _, ok := evaluate(absoluteRules, strings.TrimSpace(s), p.now())
	return t, ok
}

// ParseRelative applies only the relative rules.
func (p *Parser) ParseRelative(s string) (time.Time, bool) {
	t, _, ok := evaluate(relativeRules, strings.TrimSpace(s), p.now())
	return t, ok
}

func (p *Parser) observe(recognizer, ruleName, input string, t time.Time) {
	p.metrics.inc(recognizer)

	ev := p.logger.Debug().Str("input", input).Str("recognizer", recognizer)
	if ruleName != "" {
		ev = ev.Str("rule", ruleName)
	}
	if !t.IsZero() {
		ev = ev.Time("resolved", t)
	}
	ev.Msg("parsed date phrase")
}

var defaultParser = New()

// Parse resolves s with a parser on the real clock in time.Local.
func Parse(s string) (time.Time, error) {
	return defaultParser.Parse(s)
}

func ParseValue(v any) (time.Time, error) {
	return defaultParser.ParseValue(v)
}

func ParseMillis(v any) (int64, bool) {
	return defaultParser.ParseMillis(v)
}
