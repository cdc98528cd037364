package help

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/footprint-tools/argtree/internal/ui/style"
	"github.com/footprint-tools/argtree/internal/usage"
)

// Layout constants of the two-column table.
const (
	leftIndent   = 4
	leftMargin   = 2
	rightMargin  = 6
	maxLeftWidth = 40
	maxTextWidth = 80

	// DefaultWidth is used when the output is not a terminal.
	DefaultWidth = 80
)

// Render writes the description, usage line and sections of page,
// wrapped to width columns. A width of zero or less means DefaultWidth.
func Render(w io.Writer, page Page, width int) error {
	if width <= 0 {
		width = DefaultWidth
	}

	var b strings.Builder
	if page.Description != "" {
		b.WriteString(page.Description)
		b.WriteString("\n\n")
	}
	if page.Usage != "" {
		fmt.Fprintf(&b, "%s %s\n", style.Header("Usage:"), page.Usage)
	}

	leftW, rightW := columns(page.Sections, width)
	for _, sec := range page.Sections {
		b.WriteString("\n")
		b.WriteString(style.Header(sec.Title))
		b.WriteString("\n")
		for _, row := range sec.Rows {
			writeRow(&b, row, leftW, rightW)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// columns computes the left and right column widths shared by all sections.
func columns(sections []Section, width int) (int, int) {
	maxLeft, maxRight := 0, 0
	for _, sec := range sections {
		for _, row := range sec.Rows {
			maxLeft = max(maxLeft, lipgloss.Width(row.Names))
			maxRight = max(maxRight, lipgloss.Width(row.Description))
		}
	}

	usable := width - leftMargin - rightMargin
	leftW := min(maxLeft+leftIndent, maxLeftWidth, usable/3)
	rightW := min(maxRight, maxTextWidth, usable*2/3)
	return max(leftW, leftIndent+1), max(rightW, 1)
}

func writeRow(b *strings.Builder, row Row, leftW, rightW int) {
	left := wrap(row.Names, leftW-leftIndent)
	right := wrap(row.Description, rightW)

	for i := range max(len(left), len(right)) {
		var l, r string
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		if i > 0 {
			l = strings.Repeat(" ", leftIndent) + l
		}

		line := strings.Repeat(" ", leftMargin) + style.Name(l)
		if r != "" {
			line += strings.Repeat(" ", leftW+rightMargin-lipgloss.Width(l)) + r
		}
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteString("\n")
	}
}

// wrap word-wraps text to width columns.
func wrap(text string, width int) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(lipgloss.NewStyle().Width(width).Render(text), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return lines
}

// Intro writes the application name line and license, followed by a blank
// line. Nothing is written when the page has no name.
func Intro(w io.Writer, page Page) error {
	if page.Name == "" {
		return nil
	}

	var b strings.Builder
	b.WriteString(style.Header(page.Name))
	if page.Version != "" {
		b.WriteString(style.Muted(" v" + page.Version))
	}
	if page.Author != "" {
		b.WriteString(style.Muted(" by " + page.Author))
	}
	b.WriteString("\n")
	if page.License != "" {
		b.WriteString(style.Muted("Licensed under the " + page.License + " license."))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// UserError writes a command line error followed by a blank line. Usage
// errors raised inside a command name it.
func UserError(w io.Writer, err error) error {
	msg := err.Error()
	if ue, ok := usage.As(err); ok {
		msg = ue.Message
		if ue.Command != "" {
			msg += " (in '" + ue.Command + "')"
		}
	}
	_, werr := fmt.Fprintf(w, "%s\n\n", style.Error("Command line error: "+msg+"."))
	return werr
}
