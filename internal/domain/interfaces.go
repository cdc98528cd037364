package domain

import "io"

// ConfigProvider reads and edits the rc file.
type ConfigProvider interface {
	Get(key string) (string, bool)
	GetAll() (map[string]string, error)
	Set(key, value string) error
	Unset(key string) error
}

// Logger is the leveled logger the parser and the commands write to.
// Format strings follow fmt.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	Close() error
}

// OutputWriter is where commands print. Pager shows long text, such as a
// help page, through the configured pager when stdout is a terminal.
type OutputWriter interface {
	io.Writer
	Printf(format string, args ...any) (int, error)
	Println(args ...any) (int, error)
	Pager(content string)
}

// Styler applies the semantic styles of the active theme. Every method
// returns text unchanged when styling is disabled.
type Styler interface {
	Enabled() bool

	Success(text string) string
	Warning(text string) string
	Error(text string) string
	Info(text string) string
	Muted(text string) string

	// Header, Name and Hint style help pages: section titles, option and
	// command names, and value placeholders.
	Header(text string) string
	Name(text string) string
	Hint(text string) string
}
