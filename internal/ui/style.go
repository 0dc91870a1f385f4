package ui

import (
	"os"

	"github.com/amonks/todolist/todo"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	urgentCriticalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	urgentStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	normalStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	completedStyle      = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	headingStyle        = lipgloss.NewStyle().Bold(true).Underline(true)
)

// colorEnabled reports whether stdout should receive ANSI styling.
var colorEnabled = func() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// PriorityStyle returns the style for a priority: red, orange, or green.
func PriorityStyle(p todo.Priority) lipgloss.Style {
	switch p {
	case todo.PriorityUrgentCritical:
		return urgentCriticalStyle
	case todo.PriorityUrgent:
		return urgentStyle
	case todo.PriorityNormal:
		return normalStyle
	default:
		return lipgloss.NewStyle()
	}
}

// PriorityLabel renders a priority name in its colour.
func PriorityLabel(p todo.Priority) string {
	return render(PriorityStyle(p), string(p))
}

// RecordText renders todo text, struck through once completed.
func RecordText(rec todo.Record) string {
	style := PriorityStyle(rec.Priority)
	if rec.Completed {
		style = completedStyle
	}
	return render(style, rec.Text)
}

// Heading renders a section heading.
func Heading(text string) string {
	return render(headingStyle, text)
}

func render(style lipgloss.Style, text string) string {
	if !colorEnabled() {
		return text
	}
	return style.Render(text)
}
