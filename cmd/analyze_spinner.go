package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type entryAnalyzedMsg struct{}

type analysisFinishedMsg struct {
	err error
}

// analyzeProgressModel counts analyzed entries while the batch runs.
type analyzeProgressModel struct {
	spinner  spinner.Model
	counter  lipgloss.Style
	total    int
	analyzed int
	run      tea.Cmd
	err      error
	finished bool
}

func newAnalyzeProgressModel(total int, run tea.Cmd) analyzeProgressModel {
	return analyzeProgressModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("212"))),
		),
		counter: lipgloss.NewStyle().Bold(true),
		total:   total,
		run:     run,
	}
}

func (m analyzeProgressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.run)
}

func (m analyzeProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case entryAnalyzedMsg:
		if m.analyzed < m.total {
			m.analyzed++
		}
		return m, nil
	case analysisFinishedMsg:
		m.finished = true
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m analyzeProgressModel) View() string {
	if m.finished {
		return ""
	}

	noun := "entries"
	if m.total == 1 {
		noun = "entry"
	}
	return fmt.Sprintf("%s Analyzing %s %s...", m.spinner.View(), m.counter.Render(fmt.Sprintf("%d/%d", m.analyzed, m.total)), noun)
}

// runAnalyzeSpinner shows progress on output while run analyzes total
// entries; run reports each finished entry through its progress callback.
func runAnalyzeSpinner(ctx context.Context, output io.Writer, total int, run func(ctx context.Context, progress func()) error) error {
	var p *tea.Program
	progress := func() {
		p.Send(entryAnalyzedMsg{})
	}

	p = tea.NewProgram(
		newAnalyzeProgressModel(total, func() tea.Msg {
			return analysisFinishedMsg{err: run(ctx, progress)}
		}),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	model, ok := finalModel.(analyzeProgressModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return model.err
}
