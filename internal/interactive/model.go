package interactive

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/steved/datephrase"
	"github.com/steved/datephrase/internal/output"
)

const maxHistory = 100

var (
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
	previewStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type model struct {
	parser  *datephrase.Parser
	now     func() time.Time
	input   textinput.Model
	history table.Model
	rows    []table.Row
	preview string
	failed  bool
}

func newModel(parser *datephrase.Parser, now func() time.Time) model {
	ti := textinput.New()
	ti.Placeholder = "next friday, 3 hours ago, 12 Jan 2024..."
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.Width = 50
	ti.Focus()

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Input", Width: 30},
			{Title: "Resolved", Width: 25},
			{Title: "Offset", Width: 12},
		}),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	t.SetStyles(s)

	return model{
		parser:  parser,
		now:     now,
		input:   ti,
		history: t,
	}
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.commit()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.history.SetHeight(max(msg.Height-8, 3))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.preview, m.failed = m.describe(m.input.Value())

	return m, cmd
}

func (m *model) commit() {
	phrase := strings.TrimSpace(m.input.Value())
	if phrase == "" {
		return
	}

	row := table.Row{phrase, "unrecognized", "--"}
	if t, err := m.parser.Parse(phrase); err == nil {
		row = table.Row{phrase, t.Format(output.TimeFormat), output.FormatOffset(t.Sub(m.now()))}
	}

	m.rows = append([]table.Row{row}, m.rows...)
	if len(m.rows) > maxHistory {
		m.rows = m.rows[:maxHistory]
	}
	m.history.SetRows(m.rows)

	m.input.Reset()
	m.preview, m.failed = "", false
}

func (m model) describe(phrase string) (string, bool) {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return "", false
	}

	t, err := m.parser.Parse(phrase)
	if err != nil {
		return "unrecognized", true
	}

	return fmt.Sprintf("%s (%s, %d)", t.Format(output.TimeFormat), output.FormatOffset(t.Sub(m.now())), t.UnixMilli()), false
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	switch {
	case m.preview == "":
		b.WriteString("\n")
	case m.failed:
		b.WriteString(errorStyle.Render(m.preview) + "\n")
	default:
		b.WriteString(previewStyle.Render(m.preview) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(baseStyle.Render(m.history.View()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("  enter to keep, esc to quit"))
	b.WriteString("\n")

	return b.String()
}

// Run starts an interactive session resolving phrases with parser.
func Run(parser *datephrase.Parser, now func() time.Time) error {
	p := tea.NewProgram(newModel(parser, now))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running interactive session: %w", err)
	}
	return nil
}
