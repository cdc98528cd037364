package ui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/footprint-tools/argtree/internal/domain"
	"golang.org/x/term"
)

// Writer implements domain.OutputWriter for stdout.
type Writer struct {
	out           io.Writer
	pagerDisabled bool
	pagerOverride string
	configGetter  func(string) (string, bool)
	envGetter     func(string) string
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithPagerDisabled disables the pager.
func WithPagerDisabled() WriterOption {
	return func(w *Writer) {
		w.pagerDisabled = true
	}
}

// WithPagerOverride sets a pager command override.
func WithPagerOverride(cmd string) WriterOption {
	return func(w *Writer) {
		w.pagerOverride = cmd
	}
}

// WithConfigGetter sets the config getter function.
func WithConfigGetter(fn func(string) (string, bool)) WriterOption {
	return func(w *Writer) {
		w.configGetter = fn
	}
}

// WithEnvGetter sets the environment variable getter function.
func WithEnvGetter(fn func(string) string) WriterOption {
	return func(w *Writer) {
		w.envGetter = fn
	}
}

// NewWriter creates a new Writer that writes to stdout.
func NewWriter(opts ...WriterOption) *Writer {
	w := &Writer{
		out:       os.Stdout,
		envGetter: os.Getenv,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// NewWriterTo creates a new Writer that writes to the specified writer.
func NewWriterTo(out io.Writer, opts ...WriterOption) *Writer {
	w := &Writer{
		out:       out,
		envGetter: os.Getenv,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Width returns the layout width for help text: the help_width config key
// when set, else the terminal width, or 0 when the output is not a terminal.
func (w *Writer) Width() int {
	if w.configGetter != nil {
		if v, ok := w.configGetter("help_width"); ok {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				return n
			}
		}
	}

	f, ok := w.out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// IsTerminal reports whether the output is an interactive terminal.
func (w *Writer) IsTerminal() bool {
	f, ok := w.out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (n int, err error) {
	return w.out.Write(p)
}

// Printf formats and prints to the output.
func (w *Writer) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(w.out, format, args...)
}

// Println prints a line to the output.
func (w *Writer) Println(args ...any) (int, error) {
	return fmt.Fprintln(w.out, args...)
}

// Pager writes content through a pager when the output is a terminal.
// A pager that cannot be started falls back to plain output.
func (w *Writer) Pager(content string) {
	if w.pagerDisabled || !w.IsTerminal() {
		fmt.Fprint(w.out, content)
		return
	}

	args := strings.Fields(w.pagerCommand())
	if len(args) == 0 || args[0] == "cat" {
		fmt.Fprint(w.out, content)
		return
	}

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = w.out
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Fprint(w.out, content)
	}
}

// pagerCommand picks the pager: --pager, then the pager config key, then
// $ARGTREE_PAGER and $PAGER, then less.
func (w *Writer) pagerCommand() string {
	if w.pagerOverride != "" {
		return w.pagerOverride
	}
	if w.configGetter != nil {
		if v, ok := w.configGetter("pager"); ok && v != "" {
			return v
		}
	}
	if w.envGetter != nil {
		for _, env := range []string{"ARGTREE_PAGER", "PAGER"} {
			if v := w.envGetter(env); v != "" {
				return v
			}
		}
	}
	return "less -FRSX"
}

var _ domain.OutputWriter = (*Writer)(nil)
