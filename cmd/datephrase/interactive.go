package main

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/steved/datephrase"
	"github.com/steved/datephrase/internal/interactive"
)

type InteractiveCmd struct{}

func (cmd *InteractiveCmd) Run(g *Global) error {
	g.configureLogger()

	// Log lines would corrupt the terminal UI.
	parser, now, err := g.newParser(datephrase.WithLogger(zerolog.Nop()))
	if err != nil {
		return err
	}

	return interactive.Run(parser, func() time.Time { return now })
}
