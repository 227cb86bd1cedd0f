package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	lipglosstable "github.com/charmbracelet/lipgloss/table"
	zlog "github.com/rs/zerolog/log"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

const TimeFormat = "2006-01-02 15:04:05 MST"

type Format string

const (
	FormatTable Format = "table"
	FormatPlain Format = "plain"
	FormatYAML  Format = "yaml"
)

// Result is the outcome of resolving one phrase.
type Result struct {
	Input string
	Time  time.Time
	Err   error
}

func (r Result) OK() bool {
	return r.Err == nil
}

// Print writes results to stdout. Tables get borders and colors only when
// stdout is a terminal; otherwise they are rendered as markdown.
func Print(results []Result, now time.Time, format Format) error {
	if len(results) == 0 {
		zlog.Info().Msg("No phrases to resolve.")
		return nil
	}

	styled := term.IsTerminal(int(os.Stdout.Fd()))
	return Write(os.Stdout, results, now, format, styled)
}

func Write(w io.Writer, results []Result, now time.Time, format Format, styled bool) error {
	switch format {
	case FormatTable:
		return writeTable(w, results, now, styled)
	case FormatPlain:
		return writePlain(w, results, now)
	case FormatYAML:
		return writeYAML(w, results, now)
	default:
		return fmt.Errorf("unknown format: %q (must be table, plain, or yaml)", format)
	}
}

func writeTable(w io.Writer, results []Result, now time.Time, styled bool) error {
	var (
		re          = lipgloss.NewRenderer(w)
		headerStyle = re.NewStyle().Bold(true).Padding(0, 1)
		cellStyle   = re.NewStyle().Padding(0, 1)
		failedStyle = cellStyle.Foreground(lipgloss.Color("9"))
	)

	t := lipglosstable.New().
		Headers("Input", "Resolved", "Unix ms", "Offset")

	if styled {
		t = t.Border(lipgloss.RoundedBorder()).
			BorderStyle(re.NewStyle().Foreground(lipgloss.Color("240")))
	} else {
		t = t.Border(lipgloss.MarkdownBorder()).
			BorderTop(false).
			BorderBottom(false)
	}

	t = t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == lipglosstable.HeaderRow:
			return headerStyle
		case styled && row >= 0 && row < len(results) && !results[row].OK():
			return failedStyle
		default:
			return cellStyle
		}
	})

	for _, r := range results {
		if !r.OK() {
			t.Row(r.Input, "unrecognized", "--", "--")
			continue
		}
		t.Row(r.Input, r.Time.Format(TimeFormat), fmt.Sprintf("%d", r.Time.UnixMilli()), FormatOffset(r.Time.Sub(now)))
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func writePlain(w io.Writer, results []Result, now time.Time) error {
	for _, r := range results {
		var err error
		if r.OK() {
			_, err = fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
				r.Input, r.Time.Format(time.RFC3339), r.Time.UnixMilli(), FormatOffset(r.Time.Sub(now)))
		} else {
			_, err = fmt.Fprintf(w, "%s\tunrecognized\n", r.Input)
		}
		if err != nil {
			return fmt.Errorf("writing result for %q: %w", r.Input, err)
		}
	}
	return nil
}

type yamlResult struct {
	Input     string `yaml:"input"`
	Time      string `yaml:"time,omitempty"`
	UnixMilli int64  `yaml:"unix_ms,omitempty"`
	Offset    string `yaml:"offset,omitempty"`
	Error     string `yaml:"error,omitempty"`
}

func writeYAML(w io.Writer, results []Result, now time.Time) error {
	out := make([]yamlResult, 0, len(results))
	for _, r := range results {
		if !r.OK() {
			out = append(out, yamlResult{Input: r.Input, Error: r.Err.Error()})
			continue
		}
		out = append(out, yamlResult{
			Input:     r.Input,
			Time:      r.Time.Format(time.RFC3339),
			UnixMilli: r.Time.UnixMilli(),
			Offset:    FormatOffset(r.Time.Sub(now)),
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}
