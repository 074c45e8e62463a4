package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type stepDoneMsg string

type allDoneMsg struct{}

// ProgressModel shows a per-category checklist while collection runs.
type ProgressModel struct {
	spinner  spinner.Model
	steps    []string
	done     map[string]bool
	finished bool
	aborted  bool
}

// NewProgress creates a checklist model for the given steps.
func NewProgress(steps []string) ProgressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(PrimaryColor)
	return ProgressModel{
		spinner: s,
		steps:   steps,
		done:    make(map[string]bool, len(steps)),
	}
}

func (m ProgressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.aborted = true
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case stepDoneMsg:
		m.done[string(msg)] = true
		return m, nil
	case allDoneMsg:
		m.finished = true
		return m, tea.Quit
	}
	return m, nil
}

func (m ProgressModel) View() string {
	if m.finished {
		return ""
	}
	var view string
	for _, step := range m.steps {
		if m.done[step] {
			view += fmt.Sprintf("  %s %s\n", SuccessStyle.Render(IconSuccess), GrayStyle.Render(step))
		} else {
			view += fmt.Sprintf("  %s %s\n", m.spinner.View(), WhiteStyle.Render(fmt.Sprintf("Gathering %s...", step)))
		}
	}
	return view
}

// RunWithProgress runs fn in the background while rendering the
// checklist; fn reports each finished step through stepDone. On a
// non-terminal stdout the checklist is skipped and fn runs directly.
func RunWithProgress(steps []string, fn func(stepDone func(step string))) error {
	if !IsTerminal() {
		fn(func(string) {})
		return nil
	}

	p := tea.NewProgram(NewProgress(steps))
	go func() {
		fn(func(step string) { p.Send(stepDoneMsg(step)) })
		p.Send(allDoneMsg{})
	}()
	model, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := model.(ProgressModel); ok && m.aborted {
		return fmt.Errorf("collection interrupted")
	}
	return nil
}
