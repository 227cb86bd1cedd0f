package datephrase

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	recognizerAbsolute = "absolute"
	recognizerRelative = "relative"
	recognizerFallback = "fallback"
	recognizerNone     = "unrecognized"
)

type parseMetrics struct {
	parses *prometheus.CounterVec
}

func newParseMetrics(reg prometheus.Registerer) *parseMetrics {
	parses := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "datephrase_parses_total",
		Help: "Date phrases parsed, by the recognizer that resolved them.",
	}, []string{"recognizer"})

	if err := reg.Register(parses); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			panic(err)
		}
		parses = are.ExistingCollector.(*prometheus.CounterVec)
	}

	return &parseMetrics{parses: parses}
}

func (m *parseMetrics) inc(recognizer string) {
	if m == nil {
		return
	}
	m.parses.WithLabelValues(recognizer).Inc()
}
