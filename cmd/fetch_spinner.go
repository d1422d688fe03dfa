package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type fetchDoneMsg[T any] struct {
	result T
	err    error
}

// fetchSpinnerModel spins until its load command reports back, then keeps
// the loaded view for the caller.
type fetchSpinnerModel[T any] struct {
	spinner spinner.Model
	label   string
	load    tea.Cmd
	result  T
	err     error
	done    bool
}

func newFetchSpinnerModel[T any](label string, load tea.Cmd) fetchSpinnerModel[T] {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return fetchSpinnerModel[T]{
		spinner: s,
		label:   label,
		load:    load,
	}
}

func (m fetchSpinnerModel[T]) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load)
}

func (m fetchSpinnerModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case fetchDoneMsg[T]:
		m.done = true
		m.result = msg.result
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m fetchSpinnerModel[T]) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

func runFetchSpinner[T any](ctx context.Context, output io.Writer, label string, load func(context.Context) (T, error)) (T, error) {
	var zero T

	loadCmd := func() tea.Msg {
		result, err := load(ctx)
		return fetchDoneMsg[T]{result: result, err: err}
	}

	p := tea.NewProgram(
		newFetchSpinnerModel[T](label, loadCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return zero, err
	}

	final, ok := finalModel.(fetchSpinnerModel[T])
	if !ok {
		return zero, fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return final.result, final.err
}
