package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// SimpleSpinner is a non-interactive spinner for simple loading states,
// used while waiting for the first assistant token.
type SimpleSpinner struct {
	frames  []string
	current int
	message string
	done    chan bool
	active  bool
}

// NewSimpleSpinner creates a simple non-blocking spinner.
func NewSimpleSpinner(message string) *SimpleSpinner {
	return &SimpleSpinner{
		frames:  []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		current: 0,
		message: message,
		done:    make(chan bool),
	}
}

// Start starts the spinner animation. On a non-terminal stdout it does
// nothing, so piped output stays clean.
func (s *SimpleSpinner) Start() {
	if !IsTerminal() {
		return
	}
	s.active = true
	go func() {
		style := lipgloss.NewStyle().Foreground(PrimaryColor)
		for {
			select {
			case <-s.done:
				return
			default:
				fmt.Printf("\r  %s %s", style.Render(s.frames[s.current]), WhiteStyle.Render(s.message))
				s.current = (s.current + 1) % len(s.frames)
				time.Sleep(80 * time.Millisecond)
			}
		}
	}()
}

// Stop stops the spinner and clears the line. Safe to call more than
// once and without a prior Start.
func (s *SimpleSpinner) Stop() {
	if !s.active {
		return
	}
	s.active = false
	s.done <- true
	fmt.Print("\r\033[K")
}
