package help

import (
	"io"
	"strings"

	"github.com/footprint-tools/argtree/internal/domain"
	"github.com/footprint-tools/argtree/internal/parser"
	"github.com/footprint-tools/argtree/internal/schema"
	"github.com/footprint-tools/argtree/internal/usage"
	"github.com/footprint-tools/argtree/internal/values"
)

const (
	// HelpPathKey is the rest key of the help command declared by CommonCommands.
	HelpPathKey = "path"
	// CommonGroup is the help section of the options declared by CommonOptions.
	CommonGroup = "Common options"
)

// Show writes the intro and help page of s to out. Writers that implement
// domain.OutputWriter get the text through their pager, and a Width method
// on out sets the layout width.
func Show(out io.Writer, s *schema.Schema) error {
	page := Build(s)

	var b strings.Builder
	if err := Intro(&b, page); err != nil {
		return err
	}
	if err := Render(&b, page, widthOf(out)); err != nil {
		return err
	}

	if pw, ok := out.(domain.OutputWriter); ok {
		pw.Pager(b.String())
		return nil
	}
	_, err := io.WriteString(out, b.String())
	return err
}

// Version writes "<name> v<version>" for the application of s.
func Version(out io.Writer, s *schema.Schema) error {
	page := Build(s.Root())
	name := page.Name
	if name == "" {
		name = page.Exe
	}
	line := name
	if page.Version != "" {
		line += " v" + page.Version
	}
	_, err := io.WriteString(out, line+"\n")
	return err
}

// HelpAction shows help for the invoked command, or the root when none matched.
func HelpAction(out io.Writer) schema.ExecFunc {
	return func(root *schema.Schema, _ values.Map, cmd *schema.Schema, _ values.Map) error {
		if cmd != nil {
			return Show(out, cmd)
		}
		return Show(out, root)
	}
}

// VersionAction prints the application version.
func VersionAction(out io.Writer) schema.ExecFunc {
	return func(root *schema.Schema, _ values.Map, _ *schema.Schema, _ values.Map) error {
		return Version(out, root)
	}
}

// CommonOptions declares the exclusive --help, -h and --version options on s.
// Declare them before any command so inheriting commands get them too.
func CommonOptions(s *schema.Schema, out io.Writer) {
	s.Option("help", "h").Boolean().Exclusive().
		Describe("Show this help and exit").
		Group(CommonGroup).
		Exec(HelpAction(out))
	s.Option("version").Boolean().Exclusive().
		Describe("Show the version and exit").
		Group(CommonGroup).
		Exec(VersionAction(out))
}

// CommonCommands declares a "help [command...]" command on s.
func CommonCommands(s *schema.Schema, out io.Writer) *schema.Schema {
	cmd := s.Command("help").Describe("Show help for a command")
	cmd.Rest(HelpPathKey).Describe("Command path to describe")
	cmd.Exec(func(root *schema.Schema, _ values.Map, _ *schema.Schema, cmdArgs values.Map) error {
		target, missing := Lookup(root, cmdArgs.Strings(HelpPathKey))
		if missing != "" {
			suggestions := parser.SimilarCommands(missing, target, 3)
			return usage.UnknownCommand(missing, suggestions...).In(target.CommandPath())
		}
		return Show(out, target)
	})
	return cmd
}

// HasCommon reports whether both CommonOptions and CommonCommands were
// declared on s.
func HasCommon(s *schema.Schema) bool {
	common := func(name string) bool {
		opt := s.Lookup(name)
		return opt != nil && opt.Exclusive && opt.Group == CommonGroup && !s.Inherited(name)
	}
	return common("help") && common("version") && s.LookupCommand("help") != nil
}

func widthOf(out io.Writer) int {
	if w, ok := out.(interface{ Width() int }); ok {
		return w.Width()
	}
	return 0
}
