package manifest

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/argtree/internal/parser"
	"github.com/footprint-tools/argtree/internal/schema"
	"github.com/footprint-tools/argtree/internal/values"
)

func load(t *testing.T, name string) *Manifest {
	t.Helper()
	m, err := Load(filepath.Join("testdata", name))
	require.NoError(t, err)
	return m
}

func build(t *testing.T, m *Manifest) (*schema.Schema, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	s, err := m.Build(&out)
	require.NoError(t, err)
	return s, &out
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"cli.toml", FormatTOML},
		{"cli.yaml", FormatYAML},
		{"cli.YML", FormatYAML},
		{"dir/cli.json", FormatJSON},
	}
	for _, tt := range tests {
		got, err := FormatOf(tt.path)
		require.NoError(t, err)
		require.Equal(t, tt.want, got, tt.path)
	}

	_, err := FormatOf("cli.ini")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestParseFormat(t *testing.T) {
	for name, want := range map[string]Format{"toml": FormatTOML, "YAML": FormatYAML, "yml": FormatYAML, "json": FormatJSON} {
		got, err := ParseFormat(name)
		require.NoError(t, err)
		require.Equal(t, want, got, name)
	}

	_, err := ParseFormat("xml")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoad_TOMLAndYAMLAgree(t *testing.T) {
	fromTOML := load(t, "git.toml")
	fromYAML := load(t, "git.yaml")

	require.Equal(t, Author("Jane Doe"), fromTOML.Author)
	require.Equal(t, Author("Jane Doe"), fromYAML.Author)
	require.Len(t, fromTOML.Commands, 2)
	require.NotNil(t, fromTOML.Commands[1].Split)
	require.True(t, *fromTOML.Commands[1].Split)

	s1, _ := build(t, fromTOML)
	s2, _ := build(t, fromYAML)
	if diff := cmp.Diff(FromSchema(s1), FromSchema(s2), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("toml and yaml manifests differ (-toml +yaml):\n%s", diff)
	}
}

func TestBuild_Info(t *testing.T) {
	s, _ := build(t, load(t, "git.toml"))

	require.Equal(t, schema.Info{
		Name:        "Mini Git",
		Version:     "2.1.0",
		Author:      "Jane Doe",
		License:     "MIT",
		Description: "A tiny git front end.",
		Exe:         "mini-git",
	}, s.Info())
	require.True(t, s.Settings().Strict)
	require.True(t, s.LookupCommand("commit").Settings().Strict)
}

func TestBuild_Parses(t *testing.T) {
	s, _ := build(t, load(t, "git.yaml"))

	tests := []struct {
		name string
		args []string
		want values.Map
	}{
		{
			name: "merged command",
			args: []string{"ci", "-m", "fix", "--jobs", "3"},
			want: values.Map{"command": "commit", "message": "fix", "jobs": float64(3), "git-dir": ".git"},
		},
		{
			name: "split nested command",
			args: []string{"--verbose=true", "remote", "add", "origin", "https://example.com/repo", "more"},
			want: values.Map{
				"verbose": true,
				"git-dir": ".git",
				"command": "remote add",
				"commandOptions": map[string]any{
					"name":  "origin",
					"url":   "https://example.com/repo",
					"extra": []any{"more"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(s, tt.args)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}

	_, err := parser.Parse(s, []string{"commit"})
	require.EqualError(t, err, "mandatory option 'message' missing")

	_, err = parser.Parse(s, []string{"--colour"})
	require.EqualError(t, err, "unknown option 'colour'")
}

func TestBuild_Common(t *testing.T) {
	s, out := build(t, load(t, "git.toml"))

	_, err := parser.Run(s, []string{"--version"})
	require.NoError(t, err)
	require.Equal(t, "Mini Git v2.1.0\n", out.String())

	out.Reset()
	_, err = parser.Run(s, []string{"help", "commit"})
	require.NoError(t, err)
	require.Contains(t, out.String(), "Record changes")
	require.Contains(t, out.String(), "--message, -m")
}

func TestLoad_JSON(t *testing.T) {
	m := load(t, "tags.json")
	require.Equal(t, "files", m.RestKey)

	s, _ := build(t, m)
	got, err := parser.Parse(s, []string{"a.txt", "-t", "v1", "-t", "v2"})
	require.NoError(t, err)

	want := values.Map{
		"files":  []any{"a.txt"},
		"tag":    []any{"v1", "v2"},
		"limits": map[string]any{"cpu": float64(2)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}

	got, err = parser.Parse(s, nil)
	require.NoError(t, err)
	require.Equal(t, []any{"latest"}, got["tag"])
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		file    string
		wantErr []string
	}{
		{"unknown.toml", []string{"unknown keys", "colour", "kind"}},
		{"unknown.yaml", []string{"field kind not found"}},
		{"badversion.yaml", []string{`version "one point two"`}},
		{"missing.toml", []string{"missing.toml"}},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			_, err := Load(filepath.Join("testdata", tt.file))
			require.Error(t, err)
			for _, want := range tt.wantErr {
				require.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestDecode_TOMLAuthor(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		want    Author
		wantErr string
	}{
		{name: "string", doc: "name = \"x\"\nauthor = \"Jane\"\n", want: "Jane"},
		{name: "inline table", doc: "name = \"x\"\nauthor = { name = \"Jane\" }\n", want: "Jane"},
		{name: "table", doc: "name = \"x\"\n[author]\nname = \"Jane\"\n", want: "Jane"},
		{name: "table without name", doc: "author = { email = \"j@x.org\" }\n", wantErr: "author must be a string or a table with a name"},
		{name: "other unknown keys still fail", doc: "author = { name = \"Jane\" }\ncolour = \"blue\"\n", wantErr: "unknown keys: colour"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Decode(strings.NewReader(tt.doc), FormatTOML)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, m.Author)
		})
	}
}

func TestBuild_DeclarationError(t *testing.T) {
	m := load(t, "duplicate.yaml")

	s, err := m.Build(&bytes.Buffer{})
	require.Nil(t, s)

	var de *schema.DeclarationError
	require.True(t, errors.As(err, &de), "got %v", err)
	require.Equal(t, "x", de.Name)
}

func TestBuild_ManifestErrors(t *testing.T) {
	tests := []struct {
		name string
		m    Manifest
		want string
	}{
		{"unnamed option", Manifest{Options: []Option{{Type: "string"}}}, "root schema: an option needs a name"},
		{"unnamed command", Manifest{Name: "x", Commands: []Command{{}}}, "schema x: a command needs a name"},
		{"arg alias", Manifest{Args: []Option{{Name: "a", Aliases: []string{"b"}}}}, "root schema: argument 'a' cannot have aliases"},
		{"bad type", Manifest{Options: []Option{{Name: "a", Type: "integer"}}}, `unknown type "integer"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.m.Build(&bytes.Buffer{})
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	s, _ := build(t, load(t, "git.toml"))
	want := FromSchema(s)

	for _, format := range []Format{FormatTOML, FormatYAML, FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, want.Encode(&buf, format))

			decoded, err := Decode(&buf, format)
			require.NoError(t, err)

			rebuilt, _ := build(t, decoded)
			if diff := cmp.Diff(want, FromSchema(rebuilt), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFromSchema_Common(t *testing.T) {
	s, _ := build(t, load(t, "git.toml"))

	m := FromSchema(s)
	require.True(t, m.Common)
	for _, o := range m.Options {
		require.NotContains(t, []string{"help", "version"}, o.Name)
	}
	for _, c := range m.Commands {
		require.NotEqual(t, "help", c.Name)
	}
}

func TestFromSchema(t *testing.T) {
	s := schema.New("tool", schema.WithInherit(), schema.WithRestKey("rest"))
	s.Option("verbose", "v").Boolean()
	cmd := s.Command("run").SetSplit(true)
	cmd.Arg("target").Mandatory()
	cmd.Rest("files")

	m := FromSchema(s)
	require.Equal(t, "tool", m.Exe)
	require.True(t, m.Inherit)
	require.Equal(t, "rest", m.RestKey)
	require.Nil(t, m.NegativePrefix)
	require.Len(t, m.Options, 1)

	require.Len(t, m.Commands, 1)
	run := m.Commands[0]
	require.Empty(t, run.Options, "inherited options are not exported")
	require.NotNil(t, run.Split)
	require.Nil(t, run.Strict)
	require.Equal(t, []Option{{Name: "target", Mandatory: true}}, run.Args)
	require.Equal(t, &Option{Name: "files"}, run.Rest)
}

func TestMergeInfo(t *testing.T) {
	s := schema.New("tool")
	s.SetInfo(schema.Info{Version: "1.0.0"})

	MergeInfo(s, schema.Info{Name: "my_cool.tool", Version: "9.9.9", License: "MIT"})

	require.Equal(t, schema.Info{
		Name:    "My Cool Tool",
		Version: "1.0.0",
		License: "MIT",
		Exe:     "tool",
	}, s.Info())

	s.SetInfo(schema.Info{Name: "Kept"})
	MergeInfo(s, schema.Info{Name: "other"})
	require.Equal(t, "Kept", s.Info().Name)
}

func TestTitleName(t *testing.T) {
	for in, want := range map[string]string{
		"mini-git":   "Mini Git",
		"argtree":    "Argtree",
		"a__b":       "A B",
		"already Ok": "Already Ok",
	} {
		require.Equal(t, want, TitleName(in), in)
	}
	require.False(t, strings.Contains(TitleName("x-y"), "-"))
}
