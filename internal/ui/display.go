package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

const minPanelWidth = 60

// TitledPanel frames content in a box whose top border carries the
// title, in the panel accent color.
func TitledPanel(title, content string) string {
	return titledPanel(title, content, PanelBorderStyle)
}

// WarnPanel is TitledPanel in the warning color, used for insights.
func WarnPanel(title, content string) string {
	border := lipgloss.NewStyle().Foreground(WarningColor).Bold(true)
	return titledPanel(title, content, border)
}

func titledPanel(title, content string, border lipgloss.Style) string {
	content = strings.TrimRight(content, "\n")
	width := minPanelWidth
	for _, line := range strings.Split(content, "\n") {
		if w := lipgloss.Width(line) + 4; w > width {
			width = w
		}
	}

	dashes := width - lipgloss.Width(title) - 4
	if dashes < 0 {
		dashes = 0
	}

	var b strings.Builder
	b.WriteString(border.Render("┌─ ") +
		PanelTitleStyle.Render(title) +
		border.Render(" "+strings.Repeat("─", dashes)+"┐"))
	b.WriteByte('\n')
	for _, line := range strings.Split(content, "\n") {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString(border.Render("└" + strings.Repeat("─", width) + "┘"))
	return b.String()
}

// RenderStatus renders a one-line status message with an icon.
func RenderStatus(status, message string) string {
	switch status {
	case "success":
		return fmt.Sprintf("  %s %s", SuccessStyle.Render(IconSuccess), WhiteStyle.Render(message))
	case "warning":
		return fmt.Sprintf("  %s %s", WarningStyle.Render(IconWarning), WhiteStyle.Render(message))
	case "error":
		return fmt.Sprintf("  %s %s", ErrorStyle.Render(IconError), WhiteStyle.Render(message))
	default:
		return fmt.Sprintf("  %s %s", InfoStyle.Render(IconInfo), WhiteStyle.Render(message))
	}
}

// PrintStatus prints a status message to stdout.
func PrintStatus(status, message string) {
	fmt.Println(RenderStatus(status, message))
}

// IsTerminal reports whether stdout is attached to a terminal. Progress
// and spinner animations are skipped when it is not.
func IsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
