package commands

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CliError is an error that might get displayed to the user
type CliError struct {
	Text        string
	Code        string
	Suggestions []string
	Help        string
	// Err is the underlying error (if any)
	Err error
}

func (e *CliError) Error() string {
	return e.Text
}

func (e *CliError) Unwrap() error {
	return e.Err
}

func (e *CliError) RichError() string {
	rendered := ErrorBox(e.Text, e.Help)
	if len(e.Suggestions) == 0 {
		return rendered
	}

	title := "Suggestion:"
	if len(e.Suggestions) > 1 {
		title = "Suggestions:"
	}
	b := strings.Builder{}
	b.WriteString(Emoji("📎 ") + title + "\n")
	for _, s := range e.Suggestions {
		b.WriteString(" ⦁ " + s + "\n")
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered, styleHelpBox.Render(b.String()))
}
