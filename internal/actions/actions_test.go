package actions

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	themeactions "github.com/footprint-tools/argtree/internal/actions/theme"
	"github.com/footprint-tools/argtree/internal/log"
	"github.com/footprint-tools/argtree/internal/manifest"
	"github.com/footprint-tools/argtree/internal/ui"
	"github.com/footprint-tools/argtree/internal/ui/browser"
	"github.com/footprint-tools/argtree/internal/ui/style"
	"github.com/footprint-tools/argtree/internal/usage"
	"github.com/footprint-tools/argtree/internal/values"
)

const gitManifest = `
package: mini-git
version: 2.1.0
description: A tiny git front end.
strict: true
common: true
options:
  - name: verbose
    aliases: [v]
    type: boolean
  - name: git-dir
    type: string
    default: .git
commands:
  - name: commit
    aliases: [ci]
    description: Record changes
    options:
      - name: message
        aliases: [m]
        type: string
        mandatory: true
      - name: jobs
        type: number
        default: 1
  - name: remote
    split: true
    commands:
      - name: add
        args:
          - name: name
            mandatory: true
        rest:
          name: extra
`

func testDeps(t *testing.T) (*Deps, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return &Deps{
		Out:    ui.NewWriterTo(&out, ui.WithPagerDisabled()),
		Logger: log.NopLogger{},
		Styler: style.NopStyler{},
		Load: func(path string) (*manifest.Manifest, error) {
			if path != "git.yaml" {
				return nil, os.ErrNotExist
			}
			return manifest.Decode(strings.NewReader(gitManifest), manifest.FormatYAML)
		},
		Browse: func([]browser.Entry, int) error {
			t.Fatal("unexpected browser")
			return nil
		},
		Getenv:  func(string) string { return "/bin/zsh" },
		Version: func() string { return "1.2.3" },
	}, &out
}

func TestShowVersion(t *testing.T) {
	d, out := testDeps(t)

	require.NoError(t, d.ShowVersion(nil, nil, nil, nil))
	require.Equal(t, "argtree version 1.2.3\n", out.String())
}

func TestParse_Formats(t *testing.T) {
	raw := []any{"ci", "-m", "fix", "--jobs", "3"}

	t.Run("json", func(t *testing.T) {
		d, out := testDeps(t)
		err := d.Parse(nil, values.Map{KeyManifest: "git.yaml", KeyArgs: raw}, nil, nil)
		require.NoError(t, err)
		require.JSONEq(t, `{"command":"commit","git-dir":".git","jobs":3,"message":"fix"}`, out.String())
	})

	t.Run("yaml", func(t *testing.T) {
		d, out := testDeps(t)
		err := d.Parse(nil, values.Map{KeyManifest: "git.yaml", KeyFormat: "yaml", KeyArgs: raw}, nil, nil)
		require.NoError(t, err)
		require.Contains(t, out.String(), "command: commit\n")
		require.Contains(t, out.String(), "jobs: 3\n")
	})

	t.Run("toml", func(t *testing.T) {
		d, out := testDeps(t)
		err := d.Parse(nil, values.Map{KeyManifest: "git.yaml", KeyFormat: "toml", KeyArgs: raw}, nil, nil)
		require.NoError(t, err)
		require.Contains(t, out.String(), `command = "commit"`)
		require.Contains(t, out.String(), `message = "fix"`)
	})
}

func TestParse_SplitResult(t *testing.T) {
	d, out := testDeps(t)
	raw := []any{"remote", "add", "origin", "more"}

	err := d.Parse(nil, values.Map{KeyManifest: "git.yaml", KeyArgs: raw}, nil, nil)

	require.NoError(t, err)
	require.JSONEq(t, `{"command":"remote add","git-dir":".git","commandOptions":{"name":"origin","extra":["more"]}}`, out.String())
}

func TestParse_Errors(t *testing.T) {
	d, _ := testDeps(t)

	err := d.Parse(nil, values.Map{KeyManifest: "git.yaml", KeyArgs: []any{"commit"}}, nil, nil)
	require.True(t, usage.Is(err, usage.ErrMissingOption))

	err = d.Parse(nil, values.Map{KeyManifest: "git.yaml", KeyArgs: []any{"comit"}}, nil, nil)
	ue, ok := usage.As(err)
	require.True(t, ok)
	require.Equal(t, usage.ErrUnknownCommand, ue.Kind)
	require.Contains(t, ue.Suggestions, "commit")

	err = d.Parse(nil, values.Map{KeyManifest: "missing.yaml"}, nil, nil)
	require.ErrorIs(t, err, os.ErrNotExist)

	err = d.Parse(nil, values.Map{KeyManifest: "git.yaml", KeyFormat: "xml"}, nil, nil)
	require.ErrorIs(t, err, manifest.ErrUnknownFormat)
}

func TestParse_Run(t *testing.T) {
	d, out := testDeps(t)

	err := d.Parse(nil, values.Map{KeyManifest: "git.yaml", KeyRun: true, KeyArgs: []any{"--version"}}, nil, nil)
	require.NoError(t, err)
	require.Equal(t, "Mini Git v2.1.0\n", out.String())

	out.Reset()
	err = d.Parse(nil, values.Map{KeyManifest: "git.yaml", KeyRun: true, KeyArgs: []any{"-v"}}, nil, nil)
	require.NoError(t, err)
	require.JSONEq(t, `{"verbose":true,"git-dir":".git"}`, out.String())
}

func TestHelp(t *testing.T) {
	d, out := testDeps(t)

	err := d.Help(nil, values.Map{KeyManifest: "git.yaml", KeyPath: []any{"ci"}}, nil, nil)

	require.NoError(t, err)
	require.Contains(t, out.String(), "Record changes")
	require.Contains(t, out.String(), "--message, -m")
}

func TestHelp_UnknownCommand(t *testing.T) {
	d, _ := testDeps(t)

	err := d.Help(nil, values.Map{KeyManifest: "git.yaml", KeyPath: []any{"remote", "ad"}}, nil, nil)

	ue, ok := usage.As(err)
	require.True(t, ok)
	require.Equal(t, "remote", ue.Command)
	require.Equal(t, []string{"add"}, ue.Suggestions)
}

func TestHelp_Interactive(t *testing.T) {
	d, _ := testDeps(t)

	var titles []string
	var start int
	d.Browse = func(entries []browser.Entry, s int) error {
		for _, e := range entries {
			titles = append(titles, e.Title)
		}
		start = s
		require.Contains(t, entries[s].Render(80), "--message, -m")
		return nil
	}

	err := d.Help(nil, values.Map{KeyManifest: "git.yaml", KeyPath: []any{"commit"}, KeyInteractive: true}, nil, nil)

	require.NoError(t, err)
	require.Equal(t, []string{"mini-git", "commit", "remote", "remote add", "help"}, titles)
	require.Equal(t, 1, start)
}

func TestHelp_InteractiveWithoutTerminal(t *testing.T) {
	d, out := testDeps(t)
	d.Browse = func([]browser.Entry, int) error { return browser.ErrNotTerminal }

	err := d.Help(nil, values.Map{KeyManifest: "git.yaml", KeyInteractive: true}, nil, nil)

	require.NoError(t, err)
	require.Contains(t, out.String(), "A tiny git front end.")

	d.Browse = func([]browser.Entry, int) error { return errors.New("boom") }
	err = d.Help(nil, values.Map{KeyManifest: "git.yaml", KeyInteractive: true}, nil, nil)
	require.EqualError(t, err, "boom")
}

func TestCheck(t *testing.T) {
	d, out := testDeps(t)

	err := d.Check(nil, values.Map{KeyManifest: "git.yaml"}, nil, nil)

	require.NoError(t, err)
	require.Equal(t, "git.yaml: ok (4 commands, 9 options)\n", out.String())
}

func TestCheck_Dump(t *testing.T) {
	d, out := testDeps(t)

	err := d.Check(nil, values.Map{KeyManifest: "git.yaml", KeyDump: "toml"}, nil, nil)
	require.NoError(t, err)

	m, err := manifest.Decode(strings.NewReader(out.String()), manifest.FormatTOML)
	require.NoError(t, err)
	require.Equal(t, "2.1.0", m.Version)
	require.Len(t, m.Commands, 2)
}

func TestConfig_Delegates(t *testing.T) {
	d, out := testDeps(t)
	d.Config.Get = func(key string) (string, bool) { return "less", true }
	d.Config.Println = d.Out.Println

	require.NoError(t, d.ConfigGet(nil, values.Map{"key": "pager"}, nil, nil))
	require.Equal(t, "less\n", out.String())
}

func TestTheme_Delegates(t *testing.T) {
	d, _ := testDeps(t)
	d.Theme = themeactions.Deps{
		ThemeNames: []string{"mono-dark"},
		Themes:     map[string]style.ColorConfig{"mono-dark": {}},
	}

	err := d.ThemeSet(nil, values.Map{KeyName: "neon"}, nil, nil)
	require.True(t, usage.Is(err, usage.ErrInvalidValue))
	require.Contains(t, err.Error(), "invalid value 'neon' for 'theme'")
}

func TestCompletion(t *testing.T) {
	d, out := testDeps(t)

	err := d.Completion(nil, values.Map{KeyManifest: "git.yaml"}, nil, nil)
	require.NoError(t, err)
	require.Contains(t, out.String(), "#compdef mini-git")
	require.Contains(t, out.String(), "'commit:Record changes'")

	out.Reset()
	err = d.Completion(nil, values.Map{KeyManifest: "git.yaml", KeyShell: "fish"}, nil, nil)
	require.NoError(t, err)
	require.Contains(t, out.String(), "complete -c mini-git -f")

	err = d.Completion(nil, values.Map{KeyShell: "pwsh"}, nil, nil)
	require.True(t, usage.Is(err, usage.ErrInvalidValue))
}
