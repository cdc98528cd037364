package app

import (
	"os"

	"github.com/footprint-tools/argtree/internal/config"
	"github.com/footprint-tools/argtree/internal/domain"
	"github.com/footprint-tools/argtree/internal/log"
	"github.com/footprint-tools/argtree/internal/paths"
	"github.com/footprint-tools/argtree/internal/ui"
	"github.com/footprint-tools/argtree/internal/ui/style"
	"golang.org/x/term"
)

// Options configures the process-wide services.
type Options struct {
	// Pager options
	PagerDisabled bool
	PagerOverride string

	// Log options
	LogEnabled bool
	LogLevel   log.Level

	// Style options
	StyleEnabled bool
	StyleConfig  map[string]string
}

// DefaultOptions reads the options from the configuration file.
// Styling is enabled when stdout is a terminal.
func DefaultOptions() Options {
	logEnabled, _ := config.Get("enable_log")
	logLevel, _ := config.Get("log_level")
	styleConfig, _ := config.GetAll()

	return Options{
		LogEnabled:   logEnabled == "true",
		LogLevel:     log.ParseLevel(logLevel),
		StyleEnabled: term.IsTerminal(int(os.Stdout.Fd())),
		StyleConfig:  styleConfig,
	}
}

// Setup applies opts to the global logger, styles and pager.
// It may be called again once command line flags refine the options.
func Setup(opts Options) {
	if opts.LogEnabled {
		if err := log.Init(paths.LogFilePath(), opts.LogLevel); err != nil {
			// Logging is best effort.
			_ = log.Close()
		}
	} else {
		_ = log.Close()
	}

	style.Init(opts.StyleEnabled, opts.StyleConfig)

	if opts.PagerDisabled {
		ui.DisablePager()
	}
	if opts.PagerOverride != "" {
		ui.SetPager(opts.PagerOverride)
	}
}

// New creates an Application on the global services configured by Setup.
func New() *domain.Application {
	return &domain.Application{
		Config: config.NewProvider(),
		Logger: log.Named("argtree"),
		Output: ui.Console{},
		Styler: style.NewStyler(),
	}
}

// NewForTesting creates an Application writing to w, with no logging,
// styling or pager.
func NewForTesting(w *ui.Writer) *domain.Application {
	if w == nil {
		w = ui.NewWriter(ui.WithPagerDisabled())
	}
	return &domain.Application{
		Config: config.NewProvider(),
		Logger: log.NopLogger{},
		Output: w,
		Styler: style.NopStyler{},
	}
}

// Close releases the global logger.
func Close(app *domain.Application) error {
	if app != nil && app.Logger != nil {
		_ = app.Logger.Close()
	}
	return log.Close()
}
