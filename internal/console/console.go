// Package console prints the wrapper's diagnostics. Status lines go to the
// out writer, warnings and errors to the err writer.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"dashcheck/internal/model"
)

// Console writes styled diagnostics.
type Console struct {
	out   io.Writer
	err   io.Writer
	color bool

	titleStyle   lipgloss.Style
	keyStyle     lipgloss.Style
	dimStyle     lipgloss.Style
	okStyle      lipgloss.Style
	warnStyle    lipgloss.Style
	errorStyle   lipgloss.Style
	spinnerStyle lipgloss.Style
}

// ColorEnabled reports whether ANSI colors are allowed. Any non-empty
// NO_COLOR disables them.
func ColorEnabled() bool {
	return os.Getenv("NO_COLOR") == ""
}

// New returns a Console writing to out and errOut. With color false every
// style renders as plain text.
func New(out, errOut io.Writer, color bool) *Console {
	outR := newRenderer(out, color)
	errR := newRenderer(errOut, color)

	return &Console{
		out:   out,
		err:   errOut,
		color: color,

		titleStyle: outR.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1),
		keyStyle: outR.NewStyle().
			Foreground(lipgloss.Color("81")). // Sky Blue/Cyan
			Bold(true),
		dimStyle: outR.NewStyle().
			Foreground(lipgloss.Color("240")),
		okStyle: outR.NewStyle().
			Foreground(lipgloss.Color("42")),
		warnStyle: errR.NewStyle().
			Foreground(lipgloss.Color("208")), // Orange
		errorStyle: errR.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")),
		spinnerStyle: outR.NewStyle().
			Foreground(lipgloss.Color("205")), // Pinkish
	}
}

func newRenderer(w io.Writer, color bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// Out returns the status writer.
func (c *Console) Out() io.Writer {
	return c.out
}

// Infof prints a plain status line.
func (c *Console) Infof(format string, args ...any) {
	fmt.Fprintln(c.out, fmt.Sprintf(format, args...))
}

// Successf prints a success line.
func (c *Console) Successf(format string, args ...any) {
	fmt.Fprintln(c.out, model.IconOK+" "+c.okStyle.Render(fmt.Sprintf(format, args...)))
}

// Warnf prints a warning line.
func (c *Console) Warnf(format string, args ...any) {
	fmt.Fprintln(c.err, model.IconWarn+" "+c.warnStyle.Render(fmt.Sprintf(format, args...)))
}

// Errorf prints an error line.
func (c *Console) Errorf(format string, args ...any) {
	fmt.Fprintln(c.err, model.IconError+" "+c.errorStyle.Render(fmt.Sprintf(format, args...)))
}

// Table prints a titled list of key/value rows with aligned values.
func (c *Console) Table(title string, rows [][2]string) {
	width := 0
	for _, row := range rows {
		if len(row[0]) > width {
			width = len(row[0])
		}
	}

	var b strings.Builder
	b.WriteString(c.titleStyle.Render(title))
	b.WriteString("\n")
	if len(rows) == 0 {
		b.WriteString("  " + c.dimStyle.Render("(none)") + "\n")
	}
	for _, row := range rows {
		pad := strings.Repeat(" ", width-len(row[0]))
		b.WriteString("  " + c.keyStyle.Render(row[0]) + pad + "  " + row[1] + "\n")
	}
	fmt.Fprint(c.out, b.String())
}
