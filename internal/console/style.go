package console

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used for interactive text.
type Styles struct {
	Prompt lipgloss.Style // Input prompts
	Error  lipgloss.Style // Invalid-input messages
}

// DefaultStyles returns the standard color styles.
func DefaultStyles() Styles {
	return Styles{
		Prompt: lipgloss.NewStyle().Bold(true),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// PlainStyles returns styles that render text unchanged, for NO_COLOR
// environments and tests.
func PlainStyles() Styles {
	return Styles{
		Prompt: lipgloss.NewStyle(),
		Error:  lipgloss.NewStyle(),
	}
}
