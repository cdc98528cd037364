// Package cli declares the argtree command line on the argtree parser.
package cli

import (
	"io"

	"github.com/footprint-tools/argtree/internal/actions"
	"github.com/footprint-tools/argtree/internal/app"
	"github.com/footprint-tools/argtree/internal/help"
	"github.com/footprint-tools/argtree/internal/schema"
)

// BuildSchema declares the argtree commands. Help pages go to out and the
// commands run on d, which may be filled in after parsing.
func BuildSchema(d *actions.Deps, out io.Writer) *schema.Schema {
	root := schema.New("argtree", schema.WithStrict(), schema.WithInherit())
	root.SetInfo(schema.Info{
		Name:        "argtree",
		Version:     app.Version,
		License:     "MIT",
		Description: "Declare command lines in TOML, YAML or JSON and try them out.",
		Exe:         "argtree",
	})

	// Declared first so that every command inherits them.
	root.Option("help", "h").Boolean().Exclusive().
		Describe("Show help and exit").
		Group(help.CommonGroup).
		Exec(help.HelpAction(out))
	root.Option("version", "v").Boolean().Exclusive().
		Describe("Show version and exit").
		Group(help.CommonGroup).
		Exec(d.ShowVersion)
	declareGlobals(root)

	root.Exec(help.HelpAction(out))

	parse := root.Command("parse").
		Describe("Parse arguments against a manifest and print the result").
		SetUsage("argtree parse <manifest> [--format json|yaml|toml] [--run] -- <args>...")
	manifestArg(parse)
	parse.Option(actions.KeyFormat, "f").String().Default("json").Hint("format").
		Describe("Output format: json, yaml or toml")
	parse.Option(actions.KeyRun, "r").Boolean().
		Describe("Run the selected callbacks instead of printing the result")
	parse.Rest(actions.KeyArgs).Describe("Arguments to parse, after --")
	parse.Exec(d.Parse)

	helpCmd := root.Command("help").
		Describe("Show the help of a manifest or one of its commands").
		SetUsage("argtree help <manifest> [<command>...] [-i]")
	manifestArg(helpCmd)
	helpCmd.Option(actions.KeyInteractive, "i").Boolean().
		Describe("Browse every help page of the manifest")
	helpCmd.Rest(actions.KeyPath).Describe("Command path to describe")
	helpCmd.Exec(d.Help)

	check := root.Command("check").
		Describe("Validate a manifest and print a summary")
	manifestArg(check)
	check.Option(actions.KeyDump, "d").String().Hint("format").
		Describe("Print the manifest as read, in json, yaml or toml")
	check.Exec(d.Check)

	completion := root.Command("completion").
		Describe("Print a shell completion script").
		SetUsage("argtree completion [<manifest>] [--shell bash|zsh|fish]")
	completion.Arg(actions.KeyManifest).String().Hint("file").
		Describe("Manifest to complete, argtree itself when omitted")
	completion.Option(actions.KeyShell, "s").String().Hint("shell").
		Describe("Target shell, guessed from $SHELL by default")
	completion.Exec(d.Completion)

	declareConfig(root, d, out)
	declareTheme(root, d, out)

	root.Command("version").
		Describe("Show argtree version").
		Exec(d.ShowVersion)

	return root
}

func manifestArg(s *schema.Schema) {
	s.Arg(actions.KeyManifest).String().Mandatory().Hint("file").
		Describe("Manifest file (.toml, .yaml, .yml or .json)")
}

func declareConfig(root *schema.Schema, d *actions.Deps, out io.Writer) {
	config := root.Command("config").
		Describe("Manage configuration").
		Exec(help.HelpAction(out))

	get := config.Command("get").Describe("Print a config value")
	get.Arg("key").String().Mandatory().Describe("Configuration key to read")
	get.Exec(d.ConfigGet)

	set := config.Command("set").Describe("Set a config value")
	set.Arg("key").String().Mandatory().Describe("Configuration key to write")
	set.Arg("value").String().Mandatory().Describe("New value")
	set.Exec(d.ConfigSet)

	unset := config.Command("unset").Describe("Remove a config value")
	unset.Arg("key").String().Describe("Configuration key to remove")
	unset.Option("all", "a").Boolean().Describe("Remove every config entry")
	unset.Exec(d.ConfigUnset)

	config.Command("list").
		Describe("List the config values").
		Exec(d.ConfigList)
}

func declareTheme(root *schema.Schema, d *actions.Deps, out io.Writer) {
	theme := root.Command("theme").
		Describe("Manage color themes").
		Exec(help.HelpAction(out))

	theme.Command("list", "ls").
		Describe("List the available themes").
		Exec(d.ThemeList)

	set := theme.Command("set").Describe("Select a theme")
	set.Arg(actions.KeyName).String().Mandatory().Hint("theme").
		Describe("Base theme (default, mono, ocean) or variant such as ocean-light")
	set.Exec(d.ThemeSet)
}
