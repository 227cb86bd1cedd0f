package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	zlog "github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/steved/datephrase"
	"github.com/steved/datephrase/internal/output"
)

type ParseCmd struct {
	Phrases     []string `arg:"" optional:"" help:"Phrases to resolve. Read one per line from stdin when omitted."`
	Format      string   `help:"Output format (table, plain, yaml)." enum:"table,plain,yaml" default:"table"`
	Parallelism int      `help:"Number of phrases resolved concurrently." default:"4"`
	Strict      bool     `help:"Exit with an error when any phrase is unrecognized."`
}

func (cmd *ParseCmd) Validate() error {
	if cmd.Parallelism < 1 {
		return fmt.Errorf("--parallelism must be at least 1")
	}
	return nil
}

func (cmd *ParseCmd) Run(g *Global) error {
	g.configureLogger()

	reg := prometheus.NewRegistry()
	parser, now, err := g.newParser(datephrase.WithRegisterer(reg))
	if err != nil {
		return err
	}

	phrases := cmd.Phrases
	if len(phrases) == 0 {
		phrases, err = readPhrases(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading phrases from stdin: %w", err)
		}
	}

	zlog.Debug().
		Int("phrases", len(phrases)).
		Time("now", now).
		Str("tz", g.TZ).
		Msg("resolving phrases")

	results, err := resolveAll(parser, phrases, cmd.Parallelism)
	if err != nil {
		return fmt.Errorf("resolving phrases: %w", err)
	}
	logRecognizerCounts(reg)

	if err := output.Print(results, now, output.Format(cmd.Format)); err != nil {
		return fmt.Errorf("printing results: %w", err)
	}

	if cmd.Strict {
		return checkStrict(results)
	}

	return nil
}

// checkStrict fails when any phrase could not be resolved.
func checkStrict(results []output.Result) error {
	var failed int
	for _, r := range results {
		if !r.OK() {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d phrases unrecognized", failed, len(results))
	}

	return nil
}

// resolveAll parses phrases concurrently; results keep the input order.
func resolveAll(parser *datephrase.Parser, phrases []string, parallelism int) ([]output.Result, error) {
	results := make([]output.Result, len(phrases))

	var eg errgroup.Group
	eg.SetLimit(parallelism)
	for i, phrase := range phrases {
		eg.Go(func() error {
			t, err := parser.Parse(phrase)
			results[i] = output.Result{Input: phrase, Time: t, Err: err}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func readPhrases(r io.Reader) ([]string, error) {
	var phrases []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		phrases = append(phrases, line)
	}

	return phrases, scanner.Err()
}

func logRecognizerCounts(gatherer prometheus.Gatherer) {
	families, err := gatherer.Gather()
	if err != nil {
		zlog.Warn().Err(err).Msg("gathering parse metrics")
		return
	}

	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			ev := zlog.Debug().Str("metric", mf.GetName())
			for _, l := range m.GetLabel() {
				ev = ev.Str(l.GetName(), l.GetValue())
			}
			ev.Float64("count", m.GetCounter().GetValue()).Msg("parse summary")
		}
	}
}
