package console

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"dashcheck/internal/model"
)

// msgWorkDone carries the result of the work run under the spinner.
type msgWorkDone struct{ err error }

type spinModel struct {
	spinner spinner.Model
	title   string
	work    func() error

	done bool
	err  error
}

func (m spinModel) Init() tea.Cmd {
	work := m.work
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return msgWorkDone{err: work()}
	})
}

func (m spinModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case msgWorkDone:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s %s\n", m.spinner.View(), m.title)
}

// Spin runs work while showing title next to a spinner. When the status
// writer is not a terminal, or colors are off, it prints title once and runs
// work directly.
func (c *Console) Spin(title string, work func() error) error {
	if !c.interactive() {
		c.Infof("%s %s", model.IconDownload, title)
		return work()
	}

	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	s.Style = c.spinnerStyle

	p := tea.NewProgram(spinModel{spinner: s, title: title, work: work},
		tea.WithOutput(c.out),
		tea.WithInput(nil),
	)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("progress display: %w", err)
	}
	m, ok := final.(spinModel)
	if !ok {
		return fmt.Errorf("progress display: unexpected model %T", final)
	}
	c.Infof("%s %s", model.IconDownload, title)
	return m.err
}

func (c *Console) interactive() bool {
	if !c.color {
		return false
	}
	f, ok := c.out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
