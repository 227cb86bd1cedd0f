package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/steved/datephrase"
)

type Global struct {
	Now        string `help:"Reference time phrases are resolved against, itself a phrase like 'yesterday at 9am' read in --tz." default:"now" placeholder:"time"`
	TZ         string `help:"IANA time zone calendar arithmetic happens in." default:"Local" name:"tz"`
	NoFallback bool   `help:"Only use the built-in rules for phrases; do not fall back to the general purpose parser."`
	Verbose    bool   `help:"Enable debug logging." short:"v"`
}

func (g *Global) Validate() error {
	if _, err := time.LoadLocation(g.TZ); err != nil {
		return fmt.Errorf("--tz: %w", err)
	}
	return nil
}

func (g *Global) configureLogger() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if g.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}

// newParser builds a parser whose clock is frozen at --now so every phrase
// in a run is resolved against the same instant. --now is itself read in
// the --tz zone; the resolved instant is returned alongside the parser.
func (g *Global) newParser(opts ...datephrase.Option) (*datephrase.Parser, time.Time, error) {
	loc, err := time.LoadLocation(g.TZ)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("loading time zone %q: %w", g.TZ, err)
	}

	now, err := datephrase.New(datephrase.WithLocation(loc)).Parse(g.Now)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("--now: %w", err)
	}

	base := []datephrase.Option{
		datephrase.WithClock(clockwork.NewFakeClockAt(now)),
		datephrase.WithLocation(loc),
		datephrase.WithLogger(zlog.Logger),
	}
	if g.NoFallback {
		base = append(base, datephrase.WithFallback(nil))
	}

	return datephrase.New(append(base, opts...)...), now, nil
}

type cli struct {
	Global

	Parse       ParseCmd       `cmd:"" help:"Resolve date phrases to timestamps." default:"withargs"`
	Interactive InteractiveCmd `cmd:"" help:"Type phrases and see what they resolve to."`
}

func main() {
	root := cli{}
	ctx := kong.Parse(&root,
		kong.Name("datephrase"),
		kong.Description("Resolve loosely written dates like 'next friday' or '3 hours ago'."),
		kong.UsageOnError(),
	)

	ctx.FatalIfErrorf(ctx.Run(&root.Global))
}
