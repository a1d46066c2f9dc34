package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/compagnon-app/compagnon-cli/internal/application"
)

type typingDoneMsg struct {
	result application.ReplyResult
}

type typingSpinnerModel struct {
	spinner spinner.Model
	wait    tea.Cmd
	result  application.ReplyResult
	done    bool
}

func newTypingSpinnerModel(wait tea.Cmd) typingSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("114"))),
	)

	return typingSpinnerModel{
		spinner: s,
		wait:    wait,
	}
}

func (m typingSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.wait)
}

func (m typingSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case typingDoneMsg:
		m.done = true
		m.result = msg.result
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m typingSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s Le compagnon écrit...", m.spinner.View())
}

func runTypingSpinner(ctx context.Context, output io.Writer, reply <-chan application.ReplyResult) (application.ReplyResult, error) {
	wait := func() tea.Msg {
		select {
		case result := <-reply:
			return typingDoneMsg{result: result}
		case <-ctx.Done():
			return typingDoneMsg{result: application.ReplyResult{Err: ctx.Err()}}
		}
	}

	p := tea.NewProgram(
		newTypingSpinnerModel(wait),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return application.ReplyResult{}, err
	}

	result, ok := finalModel.(typingSpinnerModel)
	if !ok {
		return application.ReplyResult{}, fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.result, nil
}
