package prompt

import (
	"fmt"
	"os"
	"sync"

	spn "github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00dd00"))

type SpinnerT struct {
	spinner   spn.Model
	prefix    string
	suffix    string
	cancelled bool

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

type stopMsg struct{}

type textMsg string

func newSpinner(prefix, suffix string) *SpinnerT {
	s := spn.New()
	s.Spinner = spn.Dot
	s.Style = spinnerStyle
	return &SpinnerT{spinner: s, prefix: prefix, suffix: suffix}
}

func (m *SpinnerT) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *SpinnerT) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stopMsg:
		m.suffix = ""
		return m, tea.Quit
	case textMsg:
		m.suffix = string(msg)
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.cancelled = true
			return m, tea.Quit
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m *SpinnerT) View() string {
	if m.suffix == "" && m.prefix == "" {
		return ""
	}
	return fmt.Sprintf("%s%s %s", m.prefix, m.spinner.View(), m.suffix)
}

// Stop ends the spinner and waits for it to clear its line.
func (m *SpinnerT) Stop() {
	m.mu.Lock()
	program, done := m.program, m.done
	m.program, m.done = nil, nil
	m.mu.Unlock()
	if program == nil {
		return
	}
	program.Send(stopMsg{})
	<-done
}

func (m *SpinnerT) Text(t string) {
	m.mu.Lock()
	program := m.program
	m.mu.Unlock()
	if program == nil {
		m.suffix = t
		return
	}
	program.Send(textMsg(t))
}

func (m *SpinnerT) Start() {
	if !isInteractive {
		fmt.Fprintln(os.Stderr, m.suffix)
		return
	}

	done := make(chan struct{})
	program := tea.NewProgram(m, tea.WithOutput(os.Stderr))
	m.mu.Lock()
	m.program, m.done = program, done
	m.mu.Unlock()
	m.cancelled = false
	go func() {
		defer close(done)
		program.Run()
		if m.cancelled {
			os.Exit(130)
		}
	}()
}

func StoppedSpinner(text string) *SpinnerT {
	spinner := newSpinner("", text)
	return spinner
}

func Spinner(text string) *SpinnerT {
	spinner := StoppedSpinner(text)
	spinner.Start()
	return spinner
}
