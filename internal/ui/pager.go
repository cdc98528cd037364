// Package ui provides terminal output utilities including pager support.
//
// The pager runs whatever command the user configured via --pager, the
// pager config key or $PAGER, the same way git and man do.
package ui

import (
	"os"
	"sync"

	"github.com/footprint-tools/argtree/internal/config"
	"github.com/footprint-tools/argtree/internal/domain"
)

var (
	pagerDisabled bool
	pagerOverride string
	pagerMu       sync.RWMutex
)

// DisablePager disables the pager globally (used by --no-pager).
func DisablePager() {
	pagerMu.Lock()
	pagerDisabled = true
	pagerMu.Unlock()
}

// SetPager sets a pager override for this invocation.
func SetPager(cmd string) {
	pagerMu.Lock()
	pagerOverride = cmd
	pagerMu.Unlock()
}

// Stdout returns a Writer on os.Stdout honoring the global pager settings
// and the pager config key.
//
// Precedence:
//  1. --no-pager → direct output
//  2. stdout not a TTY → direct output
//  3. --pager=<cmd> → that pager, "cat" bypasses
//  4. argtree config pager → configured pager, "cat" bypasses
//  5. $PAGER → env pager, "cat" bypasses
//  6. Default: "less -FRSX"
func Stdout() *Writer {
	pagerMu.RLock()
	defer pagerMu.RUnlock()

	opts := []WriterOption{WithConfigGetter(config.Get)}
	if pagerDisabled {
		opts = append(opts, WithPagerDisabled())
	}
	if pagerOverride != "" {
		opts = append(opts, WithPagerOverride(pagerOverride))
	}
	return NewWriterTo(os.Stdout, opts...)
}

// Pager displays content on stdout through a pager if appropriate.
func Pager(content string) {
	Stdout().Pager(content)
}

// Console is an OutputWriter on stdout that reads the global pager settings
// at each call, so it can be handed out before the flags are parsed.
type Console struct{}

func (Console) Write(p []byte) (int, error)                    { return Stdout().Write(p) }
func (Console) Printf(format string, args ...any) (int, error) { return Stdout().Printf(format, args...) }
func (Console) Println(args ...any) (int, error)               { return Stdout().Println(args...) }
func (Console) Pager(content string)                           { Stdout().Pager(content) }
func (Console) Width() int                                     { return Stdout().Width() }

var _ domain.OutputWriter = Console{}
