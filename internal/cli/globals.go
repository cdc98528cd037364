package cli

import (
	"github.com/footprint-tools/argtree/internal/app"
	"github.com/footprint-tools/argtree/internal/log"
	"github.com/footprint-tools/argtree/internal/schema"
	"github.com/footprint-tools/argtree/internal/usage"
	"github.com/footprint-tools/argtree/internal/values"
)

// Global option keys. --no-color and --no-pager are the negated forms of
// KeyColor and KeyPager.
const (
	KeyColor    = "color"
	KeyPager    = "pager"
	KeyLogLevel = "log-level"
)

const globalGroup = "Global options"

func declareGlobals(root *schema.Schema) {
	root.Option(KeyColor).Boolean().Group(globalGroup).
		Describe("Colored output, --no-color turns it off")
	// Left untyped: a command string, or false from --no-pager.
	root.Option(KeyPager).Hint("cmd").Group(globalGroup).
		Describe("Pager for this command, --no-pager turns paging off")
	root.Option(KeyLogLevel).String().Hint("level").Group(globalGroup).
		Describe("Log at this level for this command: debug, info, warn or error")
}

// ApplyGlobals refines opts with the global options of a parse result.
func ApplyGlobals(opts app.Options, args values.Map) (app.Options, error) {
	if color, ok := args[KeyColor].(bool); ok && !color {
		opts.StyleEnabled = false
	}
	switch pager := args[KeyPager].(type) {
	case bool:
		opts.PagerDisabled = !pager
	case string:
		opts.PagerOverride = pager
	}
	if level := args.String(KeyLogLevel, ""); level != "" {
		if !log.IsValidLevel(level) {
			return opts, usage.InvalidValue(KeyLogLevel, level, "expecting debug, info, warn or error")
		}
		opts.LogEnabled = true
		opts.LogLevel = log.ParseLevel(level)
	}
	return opts, nil
}
