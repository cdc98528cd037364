package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/argtree/internal/schema"
	"github.com/footprint-tools/argtree/internal/usage"
	"github.com/footprint-tools/argtree/internal/values"
)

// gitLike declares verbose at the root, push with tags and commit with a
// message and a positional file.
func gitLike(split, mandatoryVerbose, mandatoryMessage bool) *schema.Schema {
	s := schema.New("git", schema.WithStrict())
	s.SetSplit(split)

	verbose := s.Option("verbose").Boolean()
	if mandatoryVerbose {
		verbose.Mandatory()
	}

	push := s.Command("push")
	push.Option("tags").Boolean()

	commit := s.Command("commit")
	message := commit.Option("message", "m").String()
	if mandatoryMessage {
		message.Mandatory()
	}
	commit.Arg("file")
	return s
}

func TestParse_MergedCommands(t *testing.T) {
	runParseCases(t, gitLike(false, false, false), []parseCase{
		{name: "root flag only", args: args("--verbose"), want: values.Map{"verbose": true}},
		{name: "command", args: args("push"), want: values.Map{"command": "push"}},
		{name: "root flag after command", args: args("push", "--verbose"), wantErr: usage.ErrUnknownOption},
		{name: "root flag before command", args: args("--verbose=yes", "push"), want: values.Map{"command": "push", "verbose": true}},
		{name: "unknown command", args: args("omg"), wantErr: usage.ErrUnknownCommand},
		{name: "command flag", args: args("push", "--tags"), want: values.Map{"command": "push", "tags": true}},
		{name: "root and command flags", args: args("--verbose=yes", "push", "--tags"), want: values.Map{"command": "push", "tags": true, "verbose": true}},
		{name: "unknown command flag", args: args("push", "--oh-noooes"), wantErr: usage.ErrUnknownOption},
		{name: "unknown command argument", args: args("push", "oh-noooes"), wantErr: usage.ErrUnknownArgument},
		{name: "flag of another command", args: args("push", "--message"), wantErr: usage.ErrUnknownOption},
		{name: "flag of another command with value", args: args("push", "--message", "wip"), wantErr: usage.ErrUnknownOption},
		{name: "commit", args: args("commit", "--message", "wip"), want: values.Map{"command": "commit", "message": "wip"}},
		{name: "commit alias and arg", args: args("commit", "-m", "wip", "a.txt"), want: values.Map{"command": "commit", "message": "wip", "file": "a.txt"}},
		{name: "commit with push flag", args: args("commit", "--tags"), wantErr: usage.ErrUnknownOption},
		{name: "commit message type", args: args("commit", "--message"), wantErr: usage.ErrBadType},
	})
}

func TestParse_SplitCommands(t *testing.T) {
	runParseCases(t, gitLike(true, false, false), []parseCase{
		{name: "root flag only", args: args("--verbose"), want: values.Map{"verbose": true}},
		{name: "command", args: args("push"), want: values.Map{"command": "push", "commandOptions": map[string]any{}}},
		{name: "root flag after command", args: args("push", "--verbose"), wantErr: usage.ErrUnknownOption},
		{name: "root flag before command", args: args("--verbose=yes", "push"), want: values.Map{"command": "push", "verbose": true, "commandOptions": map[string]any{}}},
		{name: "command flag", args: args("push", "--tags"), want: values.Map{"command": "push", "commandOptions": map[string]any{"tags": true}}},
		{
			name: "root and command flags",
			args: args("--verbose=yes", "push", "--tags"),
			want: values.Map{"command": "push", "commandOptions": map[string]any{"tags": true}, "verbose": true},
		},
		{name: "commit", args: args("commit", "--message", "wip"), want: values.Map{"command": "commit", "commandOptions": map[string]any{"message": "wip"}}},
		{name: "commit alias", args: args("commit", "-m", "wip"), want: values.Map{"command": "commit", "commandOptions": map[string]any{"message": "wip"}}},
	})
}

func TestParse_CommandsAfterDoubleDash(t *testing.T) {
	// Once rest mode is on, command names are plain values.
	runParseCases(t, gitLike(false, false, false), []parseCase{
		{name: "strict root rejects the value", args: args("--verbose", "--", "push"), wantErr: usage.ErrUnknownArgument},
	})

	s := schema.New("git")
	s.Command("push")
	runParseCases(t, s, []parseCase{
		{name: "permissive root buckets the value", args: args("--verbose", "--", "push"), want: values.Map{"verbose": true, "_": []any{"push"}}},
	})
}

func TestParse_MandatoryInCommands(t *testing.T) {
	t.Run("merged, mandatory command option", func(t *testing.T) {
		runParseCases(t, gitLike(false, false, true), []parseCase{
			{name: "root flag only", args: args("--verbose"), want: values.Map{"verbose": true}},
			{name: "other command", args: args("push"), want: values.Map{"command": "push"}},
			{name: "present", args: args("commit", "--message", "wip"), want: values.Map{"command": "commit", "message": "wip"}},
			{name: "missing", args: args("commit"), wantErr: usage.ErrMissingOption},
		})
	})

	t.Run("merged, mandatory root and command options", func(t *testing.T) {
		runParseCases(t, gitLike(false, true, true), []parseCase{
			{name: "root flag only", args: args("--verbose"), want: values.Map{"verbose": true}},
			{name: "root missing", args: args("push"), wantErr: usage.ErrMissingOption},
			{name: "root present", args: args("--verbose=yes", "push"), want: values.Map{"verbose": true, "command": "push"}},
			{name: "root missing with command present", args: args("commit", "--message", "wip"), wantErr: usage.ErrMissingOption},
			{name: "both present", args: args("--verbose=yes", "commit", "--message", "wip"), want: values.Map{"verbose": true, "command": "commit", "message": "wip"}},
			{name: "both missing", args: args("commit"), wantErr: usage.ErrMissingOption},
		})
	})

	t.Run("split, mandatory command option", func(t *testing.T) {
		runParseCases(t, gitLike(true, false, true), []parseCase{
			{name: "root flag only", args: args("--verbose"), want: values.Map{"verbose": true}},
			{name: "other command", args: args("push"), want: values.Map{"command": "push", "commandOptions": map[string]any{}}},
			{name: "present", args: args("commit", "--message", "wip"), want: values.Map{"command": "commit", "commandOptions": map[string]any{"message": "wip"}}},
			{name: "missing", args: args("commit"), wantErr: usage.ErrMissingOption},
		})
	})

	t.Run("split, mandatory root and command options", func(t *testing.T) {
		runParseCases(t, gitLike(true, true, true), []parseCase{
			{name: "root flag only", args: args("--verbose"), want: values.Map{"verbose": true}},
			{name: "root missing", args: args("push"), wantErr: usage.ErrMissingOption},
			{name: "root present", args: args("--verbose=yes", "push"), want: values.Map{"verbose": true, "command": "push", "commandOptions": map[string]any{}}},
			{name: "root missing with command present", args: args("commit", "--message", "wip"), wantErr: usage.ErrMissingOption},
			{
				name: "both present",
				args: args("--verbose=yes", "commit", "--message", "wip"),
				want: values.Map{"verbose": true, "command": "commit", "commandOptions": map[string]any{"message": "wip"}},
			},
			{name: "both missing", args: args("commit"), wantErr: usage.ErrMissingOption},
		})
	})
}

func TestParse_CommandErrorsNameTheirCommand(t *testing.T) {
	s := gitLike(true, false, true)

	_, err := Parse(s, args("commit", "--tags"))
	ue, ok := usage.As(err)
	require.True(t, ok)
	require.Equal(t, "commit", ue.Command)
	require.Equal(t, "unknown option 'tags'", ue.Message)

	_, err = Parse(s, args("commit"))
	ue, ok = usage.As(err)
	require.True(t, ok)
	require.Equal(t, usage.ErrMissingOption, ue.Kind)
	require.Equal(t, "commit", ue.Command)
	require.Equal(t, "message", ue.Key)

	_, err = Parse(s, args("--verbose=true", "nope"))
	ue, ok = usage.As(err)
	require.True(t, ok)
	require.Equal(t, "", ue.Command)
	require.Equal(t, 1, ue.GetExitCode())
}

func TestParse_ScenarioCommitMessage(t *testing.T) {
	s := schema.New("app", schema.WithStrict())
	s.Option("verbose").Boolean()
	s.Command("push").Option("tags").Boolean()
	s.Command("commit").Option("message").String().Mandatory()

	got, err := Parse(s, args("commit", "--message", "wip"))
	require.NoError(t, err)
	require.Equal(t, values.Map{"command": "commit", "message": "wip"}, got)

	_, err = Parse(s, args("commit"))
	require.True(t, usage.Is(err, usage.ErrMissingOption))
}

func TestParse_CommandAliases(t *testing.T) {
	s := schema.New("app")
	s.Command("install", "i", "add").Arg("pkg")

	runParseCases(t, s, []parseCase{
		{name: "canonical", args: args("install", "x"), want: values.Map{"command": "install", "pkg": "x"}},
		{name: "alias is stored canonical", args: args("i", "x"), want: values.Map{"command": "install", "pkg": "x"}},
		{name: "second alias", args: args("add", "x"), want: values.Map{"command": "install", "pkg": "x"}},
	})
}

func TestParse_UnknownCommandSuggestions(t *testing.T) {
	s := schema.New("app")
	s.Command("push")
	s.Command("pull")
	s.Command("commit")

	tests := []struct {
		input       string
		suggestions []string
		message     string
	}{
		{"comit", []string{"commit"}, "unknown command 'comit', did you mean 'commit'?"},
		{"psh", []string{"push", "pull"}, "unknown command 'psh', did you mean one of: 'push', 'pull'?"},
		{"xxxxxxxxxx", nil, "unknown command 'xxxxxxxxxx'"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(s, args(tt.input))
			ue, ok := usage.As(err)
			require.True(t, ok)
			require.Equal(t, usage.ErrUnknownCommand, ue.Kind)
			require.Equal(t, tt.input, ue.Key)
			if tt.suggestions == nil {
				require.Empty(t, ue.Suggestions)
			} else {
				require.Equal(t, tt.suggestions, ue.Suggestions)
			}
			require.Equal(t, tt.message, ue.Error())
		})
	}
}

func TestParse_NestedCommands(t *testing.T) {
	build := func(split bool) *schema.Schema {
		s := schema.New("git", schema.WithStrict())
		s.SetSplit(split)
		s.Option("verbose", "v").Boolean()
		remote := s.Command("remote")
		remote.Option("quiet").Boolean()
		add := remote.Command("add")
		add.Arg("name").Mandatory()
		add.Arg("url")
		remote.Command("remove", "rm").Arg("name")
		return s
	}

	runParseCases(t, build(false), []parseCase{
		{
			name: "merged path is space joined",
			args: args("--verbose=yes", "remote", "--quiet=yes", "add", "origin", "git@host:x"),
			want: values.Map{"verbose": true, "command": "remote add", "quiet": true, "name": "origin", "url": "git@host:x"},
		},
		{name: "merged alias", args: args("remote", "rm", "origin"), want: values.Map{"command": "remote remove", "name": "origin"}},
		{name: "merged missing nested mandatory", args: args("remote", "add"), wantErr: usage.ErrMissingOption},
		{name: "group without sub-command", args: args("remote"), want: values.Map{"command": "remote"}},
		{name: "unknown nested command", args: args("remote", "ad"), wantErr: usage.ErrUnknownCommand},
	})

	runParseCases(t, build(true), []parseCase{
		{
			name: "split nests each level",
			args: args("--verbose=yes", "remote", "--quiet=yes", "add", "origin"),
			want: values.Map{
				"verbose": true,
				"command": "remote",
				"commandOptions": map[string]any{
					"quiet":   true,
					"command": "add",
					"commandOptions": map[string]any{
						"name": "origin",
					},
				},
			},
		},
	})

	out, err := New(build(false)).Prepare(args("remote", "add", "origin"))
	require.NoError(t, err)
	require.Equal(t, "add", out.Command.Name())
	require.Equal(t, "remote add", out.Command.CommandPath())
}

func TestParse_InheritedOptions(t *testing.T) {
	s := schema.New("app", schema.WithStrict(), schema.WithInherit())
	s.Option("verbose", "v").Boolean()
	s.Option("config").String().Default("app.toml")

	build := s.Command("build")
	build.Option("target").String()
	build.Option("config").String().Default("build.toml")

	runParseCases(t, s, []parseCase{
		{name: "inherited flag after command", args: args("build", "-v"), want: values.Map{"command": "build", "verbose": true, "config": "build.toml"}},
		{name: "redeclared default wins", args: args("build"), want: values.Map{"command": "build", "config": "build.toml"}},
		{name: "root default without command", args: args(), want: values.Map{"config": "app.toml"}},
		{name: "own flag", args: args("build", "--target", "x"), want: values.Map{"command": "build", "target": "x", "config": "build.toml"}},
	})
}

func TestParse_SplitInheritedDefaults(t *testing.T) {
	s := schema.New("app", schema.WithSplit(), schema.WithInherit())
	s.Option("level").Number().Default(1)
	s.Command("run")

	got, err := Parse(s, args("run", "--level", "2"))
	require.NoError(t, err)
	require.Equal(t, values.Map{
		"level":          float64(1),
		"command":        "run",
		"commandOptions": map[string]any{"level": float64(2)},
	}, got)
}

func TestParse_CustomCommandKeys(t *testing.T) {
	s := schema.New("app", schema.WithSplit(), schema.WithCommandKey("cmd"), schema.WithCommandOptionsKey("opts"))
	s.Command("go").Option("fast").Boolean()

	got, err := Parse(s, args("go", "--fast"))
	require.NoError(t, err)
	require.Equal(t, values.Map{"cmd": "go", "opts": map[string]any{"fast": true}}, got)
}

func TestPrepare_CommandArgs(t *testing.T) {
	merged := gitLike(false, false, false)
	out, err := New(merged).Prepare(args("--verbose=true", "push", "--tags"))
	require.NoError(t, err)
	require.Equal(t, "push", out.Command.Name())
	require.Equal(t, out.Args, out.CommandArgs)

	split := gitLike(true, false, false)
	out, err = New(split).Prepare(args("--verbose=true", "push", "--tags"))
	require.NoError(t, err)
	require.Equal(t, values.Map{"tags": true}, out.CommandArgs)
	require.Equal(t, map[string]any{"tags": true}, out.Args["commandOptions"])

	out, err = New(split).Prepare(args("--verbose"))
	require.NoError(t, err)
	require.Nil(t, out.Command)
	require.Nil(t, out.CommandArgs)
}
