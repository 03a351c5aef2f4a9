package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/typable/crates/pkg/errors"
)

var (
	colorCyan = lipgloss.Color("36")  // Teal - spinner
	colorRed  = lipgloss.Color("167") // Soft red - errors
	colorDim  = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
)

const iconError = "✗"

// PrintError writes a styled, user-facing description of err to w.
// Usage errors are skipped: their usage text has already been printed.
func PrintError(w io.Writer, err error) {
	if err == nil || errors.Is(err, errors.ErrCodeInvalidArgument) {
		return
	}
	msg := errors.UserMessage(err)
	if code := errors.GetCode(err); code != "" {
		msg += " " + StyleDim.Render(fmt.Sprintf("[%s]", code))
	}
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+msg)
}
