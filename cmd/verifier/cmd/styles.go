package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorOK      = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	headerStyle = lipgloss.NewStyle().
			Bold(true)

	okStyle = lipgloss.NewStyle().
		Foreground(colorOK).
		Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// printer writes styled output, or plain text when w is not a terminal
type printer struct {
	w     io.Writer
	plain bool
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w, plain: !isTerminal(w)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p *printer) style(s lipgloss.Style, text string) string {
	if p.plain {
		return text
	}
	return s.Render(text)
}

func (p *printer) title(text string) {
	fmt.Fprintln(p.w, p.style(titleStyle, text))
	fmt.Fprintln(p.w, p.style(titleStyle, strings.Repeat("=", lipgloss.Width(text))))
	fmt.Fprintln(p.w)
}

func (p *printer) line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// table prints rows in aligned columns. The last column is not padded.
func (p *printer) table(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	pad := func(cells []string) []string {
		out := make([]string, len(cells))
		for i, cell := range cells {
			if i == len(cells)-1 {
				out[i] = cell
				continue
			}
			out[i] = cell + strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
		}
		return out
	}

	header := pad(headers)
	for i := range header {
		header[i] = p.style(headerStyle, header[i])
	}
	fmt.Fprintln(p.w, strings.TrimRight(strings.Join(header, "  "), " "))
	for _, row := range rows {
		fmt.Fprintln(p.w, strings.TrimRight(strings.Join(pad(row), "  "), " "))
	}
}
