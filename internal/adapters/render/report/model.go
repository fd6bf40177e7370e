package report

import (
	"errors"
	"io"

	"github.com/bnema/moodline/internal/application"
	"github.com/bnema/moodline/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	results []application.AnalysisResult
	summary domain.HistorySummary
	styles  styles
	output  string
}

func newModel(results []application.AnalysisResult, summary domain.HistorySummary) model {
	return model{
		results: results,
		summary: summary,
		styles:  newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.results, m.summary, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render lays out analysis results followed by the history summary.
func Render(results []application.AnalysisResult, summary domain.HistorySummary) (string, error) {
	p := tea.NewProgram(
		newModel(results, summary),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
