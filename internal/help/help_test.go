package help

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/argtree/internal/parser"
	"github.com/footprint-tools/argtree/internal/schema"
	"github.com/footprint-tools/argtree/internal/usage"
)

func toolSchema() *schema.Schema {
	s := schema.New("tool")
	s.SetInfo(schema.Info{
		Name:        "Tool",
		Version:     "1.2.0",
		Author:      "Jane Doe",
		License:     "MIT",
		Description: "Does things.",
	})
	s.Option("verbose", "v").Boolean().Describe("Be verbose")
	s.Option("out", "o").String().Hint("file").Describe("Output file")
	s.Option("color").Boolean().Group("Display").Describe("Colorize")
	s.Arg("input").Describe("Input path")
	s.Command("build", "b").Describe("Build it")
	return s
}

func TestBuild(t *testing.T) {
	want := Page{
		Name:        "Tool",
		Version:     "1.2.0",
		Author:      "Jane Doe",
		License:     "MIT",
		Exe:         "tool",
		Description: "Does things.",
		Usage:       "tool [options] <command> <input>",
		Sections: []Section{
			{Title: "Options", Rows: []Row{
				{Names: "--verbose, -v", Description: "Be verbose"},
				{Names: "--out, -o <file>", Description: "Output file"},
			}},
			{Title: "Display", Rows: []Row{
				{Names: "--color", Description: "Colorize"},
			}},
			{Title: "Arguments", Rows: []Row{
				{Names: "<input>", Description: "Input path"},
			}},
			{Title: "Commands", Rows: []Row{
				{Names: "build, b", Description: "Build it"},
			}},
		},
	}

	if diff := cmp.Diff(want, Build(toolSchema())); diff != "" {
		t.Errorf("Build() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_Command(t *testing.T) {
	s := schema.New("git")
	s.SetInfo(schema.Info{Name: "Git", Description: "Root only."})
	remote := s.Command("remote")
	add := remote.Command("add").Describe("Add a remote")
	add.Arg("name")
	add.Rest("urls")

	page := Build(add)
	require.Equal(t, "remote add", page.Command)
	require.Equal(t, "Git", page.Name)
	require.Equal(t, "Add a remote", page.Description)
	require.Equal(t, "git remote add <name> [<urls>...]", page.Usage)

	require.Empty(t, Build(remote).Description)

	add.SetUsage("git remote add <name> <url>")
	require.Equal(t, "git remote add <name> <url>", Build(add).Usage)
}

func TestOptionNames(t *testing.T) {
	s := schema.New("")
	tests := []struct {
		name string
		opt  *schema.Option
		want string
	}{
		{"long", s.Option("long").Spec(), "--long"},
		{"short", s.Option("s").Spec(), "-s"},
		{"aliases", s.Option("output", "o", "out").Spec(), "--output, -o, --out"},
		{"hint", s.Option("file", "f").Hint("path").Spec(), "--file, -f <path>"},
		{"bracketed hint", s.Option("level").Hint("[n]").Spec(), "--level [n]"},
		{"unicode short", s.Option("é").Spec(), "-é"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, OptionNames(tt.opt))
		})
	}
}

func TestLookup(t *testing.T) {
	s := schema.New("git")
	remote := s.Command("remote", "r")
	add := remote.Command("add")

	got, missing := Lookup(s, []string{"r", "add"})
	require.Same(t, add, got)
	require.Empty(t, missing)

	got, missing = Lookup(s, []string{"remote", "rm"})
	require.Same(t, remote, got)
	require.Equal(t, "rm", missing)

	got, _ = Lookup(s, nil)
	require.Same(t, s, got)
}

func TestRender(t *testing.T) {
	page := Page{
		Usage: "tool [options]",
		Sections: []Section{{Title: "Options", Rows: []Row{
			{Names: "--verbose, -v", Description: "Be verbose"},
			{Names: "--out, -o <file>", Description: "Output file"},
		}}},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, page, 80))

	want := "Usage: tool [options]\n" +
		"\n" +
		"Options\n" +
		"  --verbose, -v" + strings.Repeat(" ", 13) + "Be verbose\n" +
		"  --out, -o <file>" + strings.Repeat(" ", 10) + "Output file\n"
	require.Equal(t, want, buf.String())
}

func TestRender_WrapsDescriptions(t *testing.T) {
	page := Page{
		Sections: []Section{{Title: "Options", Rows: []Row{
			{Names: "-x", Description: "alpha beta gamma delta epsilon"},
		}}},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, page, 30))

	want := "\n" +
		"Options\n" +
		"  -x" + strings.Repeat(" ", 10) + "alpha beta\n" +
		strings.Repeat(" ", 14) + "gamma delta\n" +
		strings.Repeat(" ", 14) + "epsilon\n"
	require.Equal(t, want, buf.String())
}

func TestRender_DescriptionAndEmptyRows(t *testing.T) {
	page := Page{
		Description: "Does things.",
		Usage:       "tool",
		Sections: []Section{{Title: "Arguments", Rows: []Row{
			{Names: "<input>"},
		}}},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, page, 0))
	require.Equal(t, "Does things.\n\nUsage: tool\n\nArguments\n  <input>\n", buf.String())
}

func TestColumns(t *testing.T) {
	sections := []Section{{Rows: []Row{
		{Names: strings.Repeat("n", 60), Description: strings.Repeat("d", 120)},
	}}}

	tests := []struct {
		width     int
		wantLeft  int
		wantRight int
	}{
		{200, 40, 80},
		{80, 24, 48},
		{20, 5, 8},
	}

	for _, tt := range tests {
		left, right := columns(sections, tt.width)
		require.Equal(t, tt.wantLeft, left, "width %d", tt.width)
		require.Equal(t, tt.wantRight, right, "width %d", tt.width)
	}
}

func TestIntro(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Intro(&buf, Page{Name: "Tool", Version: "1.2.0", Author: "Jane Doe", License: "MIT"}))
	require.Equal(t, "Tool v1.2.0 by Jane Doe\nLicensed under the MIT license.\n\n", buf.String())

	buf.Reset()
	require.NoError(t, Intro(&buf, Page{Name: "Tool"}))
	require.Equal(t, "Tool\n\n", buf.String())

	buf.Reset()
	require.NoError(t, Intro(&buf, Page{Version: "1.0.0"}))
	require.Empty(t, buf.String())
}

func TestUserError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"usage error", usage.UnknownOption("x", true), "Command line error: unknown option 'x'.\n\n"},
		{"in command", usage.MissingOption("name").In("remote add"), "Command line error: mandatory option 'name' missing (in 'remote add').\n\n"},
		{"plain error", errors.New("boom"), "Command line error: boom.\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, UserError(&buf, tt.err))
			require.Equal(t, tt.want, buf.String())
		})
	}
}

func commonSchema(out *bytes.Buffer) *schema.Schema {
	s := schema.New("tool")
	s.SetInfo(schema.Info{Name: "Tool", Version: "1.0.0"})
	CommonOptions(s, out)
	CommonCommands(s, out)
	remote := s.Command("remote").Describe("Manage remotes")
	remote.Command("add").Describe("Add a remote").Arg("name").Mandatory()
	return s
}

func TestCommonOptions(t *testing.T) {
	t.Run("version", func(t *testing.T) {
		var out bytes.Buffer
		_, err := parser.Run(commonSchema(&out), []string{"--version"})
		require.NoError(t, err)
		require.Equal(t, "Tool v1.0.0\n", out.String())
	})

	t.Run("help at root", func(t *testing.T) {
		var out bytes.Buffer
		_, err := parser.Run(commonSchema(&out), []string{"-h"})
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(out.String(), "Tool v1.0.0\n\nUsage: tool [options] <command>\n"), out.String())
		require.Contains(t, out.String(), "Common options\n")
		require.Contains(t, out.String(), "--help, -h")
		require.Contains(t, out.String(), "Manage remotes")
	})

	t.Run("help skips mandatory checks", func(t *testing.T) {
		var out bytes.Buffer
		_, err := parser.Run(commonSchema(&out), []string{"remote", "add", "--help"})
		require.NoError(t, err)
		require.Contains(t, out.String(), "Usage: tool remote add <name>\n")
	})
}

func TestCommonCommands(t *testing.T) {
	t.Run("help command path", func(t *testing.T) {
		var out bytes.Buffer
		_, err := parser.Run(commonSchema(&out), []string{"help", "remote", "add"})
		require.NoError(t, err)
		require.Contains(t, out.String(), "Add a remote")
		require.Contains(t, out.String(), "Usage: tool remote add <name>\n")
	})

	t.Run("bare help", func(t *testing.T) {
		var out bytes.Buffer
		_, err := parser.Run(commonSchema(&out), []string{"help"})
		require.NoError(t, err)
		require.Contains(t, out.String(), "Usage: tool [options] <command>\n")
	})

	t.Run("unknown command", func(t *testing.T) {
		var out bytes.Buffer
		_, err := parser.Run(commonSchema(&out), []string{"help", "remote", "ad"})
		require.Error(t, err)

		ue, ok := usage.As(err)
		require.True(t, ok)
		require.Equal(t, usage.ErrUnknownCommand, ue.Kind)
		require.Equal(t, "remote", ue.Command)
		require.Equal(t, []string{"add"}, ue.Suggestions)
		require.Empty(t, out.String())
	})
}

func TestHasCommon(t *testing.T) {
	require.True(t, HasCommon(commonSchema(&bytes.Buffer{})))

	s := schema.New("tool")
	CommonOptions(s, &bytes.Buffer{})
	require.False(t, HasCommon(s), "the help command is missing")

	s = schema.New("tool")
	s.Option("help").Boolean()
	s.Option("version").Boolean()
	s.Command("help")
	require.False(t, HasCommon(s))
}
