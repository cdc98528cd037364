// Package manifest loads declarative schema files.
//
// A manifest describes the application metadata, parser settings and the
// option tree of a command line. TOML files are read with BurntSushi/toml,
// YAML and JSON files with yaml.v3; unknown keys are errors in both.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// Format is a manifest file syntax.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned for file extensions no decoder handles.
var ErrUnknownFormat = errors.New("manifest: unknown format")

// FormatOf returns the format matching a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// ParseFormat returns the format named name, case insensitive.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatTOML, FormatYAML, FormatJSON:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Manifest is the root of a schema file.
type Manifest struct {
	Package     string `toml:"package,omitempty" yaml:"package,omitempty" json:"package,omitempty"`
	Name        string `toml:"name,omitempty" yaml:"name,omitempty" json:"name,omitempty"`
	Version     string `toml:"version,omitempty" yaml:"version,omitempty" json:"version,omitempty"`
	Author      Author `toml:"author,omitempty" yaml:"author,omitempty" json:"author,omitempty"`
	License     string `toml:"license,omitempty" yaml:"license,omitempty" json:"license,omitempty"`
	Description string `toml:"description,omitempty" yaml:"description,omitempty" json:"description,omitempty"`
	Date        string `toml:"date,omitempty" yaml:"date,omitempty" json:"date,omitempty"`
	Exe         string `toml:"exe,omitempty" yaml:"exe,omitempty" json:"exe,omitempty"`
	Usage       string `toml:"usage,omitempty" yaml:"usage,omitempty" json:"usage,omitempty"`

	Strict            bool    `toml:"strict,omitempty" yaml:"strict,omitempty" json:"strict,omitempty"`
	Inherit           bool    `toml:"inherit,omitempty" yaml:"inherit,omitempty" json:"inherit,omitempty"`
	Split             bool    `toml:"split,omitempty" yaml:"split,omitempty" json:"split,omitempty"`
	NegativePrefix    *string `toml:"negativePrefix,omitempty" yaml:"negativePrefix,omitempty" json:"negativePrefix,omitempty"`
	CommandKey        string  `toml:"commandKey,omitempty" yaml:"commandKey,omitempty" json:"commandKey,omitempty"`
	CommandOptionsKey string  `toml:"commandOptionsKey,omitempty" yaml:"commandOptionsKey,omitempty" json:"commandOptionsKey,omitempty"`
	RestKey           string  `toml:"restKey,omitempty" yaml:"restKey,omitempty" json:"restKey,omitempty"`

	// Common adds --help, -h, --version and a help command.
	Common bool `toml:"common,omitempty" yaml:"common,omitempty" json:"common,omitempty"`

	Options  []Option  `toml:"options,omitempty" yaml:"options,omitempty" json:"options,omitempty"`
	Args     []Option  `toml:"args,omitempty" yaml:"args,omitempty" json:"args,omitempty"`
	Rest     *Option   `toml:"rest,omitempty" yaml:"rest,omitempty" json:"rest,omitempty"`
	Commands []Command `toml:"commands,omitempty" yaml:"commands,omitempty" json:"commands,omitempty"`
}

// Option declares a flag, a positional argument or the rest bucket.
type Option struct {
	Name        string   `toml:"name" yaml:"name" json:"name"`
	Aliases     []string `toml:"aliases,omitempty" yaml:"aliases,omitempty" json:"aliases,omitempty"`
	Type        string   `toml:"type,omitempty" yaml:"type,omitempty" json:"type,omitempty"`
	Default     any      `toml:"default,omitempty" yaml:"default,omitempty" json:"default,omitempty"`
	Mandatory   bool     `toml:"mandatory,omitempty" yaml:"mandatory,omitempty" json:"mandatory,omitempty"`
	Exclusive   bool     `toml:"exclusive,omitempty" yaml:"exclusive,omitempty" json:"exclusive,omitempty"`
	Description string   `toml:"description,omitempty" yaml:"description,omitempty" json:"description,omitempty"`
	Hint        string   `toml:"hint,omitempty" yaml:"hint,omitempty" json:"hint,omitempty"`
	Group       string   `toml:"group,omitempty" yaml:"group,omitempty" json:"group,omitempty"`
}

// Command declares a sub-command. Nil settings keep the parent's.
type Command struct {
	Name        string   `toml:"name" yaml:"name" json:"name"`
	Aliases     []string `toml:"aliases,omitempty" yaml:"aliases,omitempty" json:"aliases,omitempty"`
	Description string   `toml:"description,omitempty" yaml:"description,omitempty" json:"description,omitempty"`
	Usage       string   `toml:"usage,omitempty" yaml:"usage,omitempty" json:"usage,omitempty"`

	Strict  *bool `toml:"strict,omitempty" yaml:"strict,omitempty" json:"strict,omitempty"`
	Inherit *bool `toml:"inherit,omitempty" yaml:"inherit,omitempty" json:"inherit,omitempty"`
	Split   *bool `toml:"split,omitempty" yaml:"split,omitempty" json:"split,omitempty"`

	Options  []Option  `toml:"options,omitempty" yaml:"options,omitempty" json:"options,omitempty"`
	Args     []Option  `toml:"args,omitempty" yaml:"args,omitempty" json:"args,omitempty"`
	Rest     *Option   `toml:"rest,omitempty" yaml:"rest,omitempty" json:"rest,omitempty"`
	Commands []Command `toml:"commands,omitempty" yaml:"commands,omitempty" json:"commands,omitempty"`
}

// Author is a plain name, or a table with a name field.
type Author string

// UnmarshalTOML accepts a string or a {name = "..."} table.
func (a *Author) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case string:
		*a = Author(v)
		return nil
	case map[string]any:
		if name, ok := v["name"].(string); ok {
			*a = Author(name)
			return nil
		}
	}
	return fmt.Errorf("author must be a string or a table with a name, got %T", v)
}

// UnmarshalYAML accepts a scalar or a mapping with a name field.
func (a *Author) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*a = Author(node.Value)
		return nil
	case yaml.MappingNode:
		var v struct {
			Name string `yaml:"name"`
		}
		if err := node.Decode(&v); err != nil {
			return err
		}
		*a = Author(v.Name)
		return nil
	}
	return fmt.Errorf("line %d: author must be a string or a mapping with a name", node.Line)
}

// Load reads the manifest at path, picking the decoder from its extension.
func Load(path string) (*Manifest, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	m, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Decode reads a manifest in the given format and validates it.
func Decode(r io.Reader, format Format) (*Manifest, error) {
	var m Manifest

	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&m)
		if err != nil {
			return nil, err
		}
		if keys := unknownKeys(md); len(keys) > 0 {
			return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
		}

	case FormatYAML, FormatJSON:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// unknownKeys lists the undecoded TOML keys, sorted. The fields of an author
// table are read by Author.UnmarshalTOML, which the decoder does not track.
func unknownKeys(md toml.MetaData) []string {
	var keys []string
	for _, k := range md.Undecoded() {
		if len(k) > 1 && k[0] == "author" {
			continue
		}
		keys = append(keys, k.String())
	}
	sort.Strings(keys)
	return keys
}

// Validate checks what declaration cannot: the version must be semver.
func (m *Manifest) Validate() error {
	if m.Version == "" {
		return nil
	}
	if _, err := semver.NewVersion(m.Version); err != nil {
		return fmt.Errorf("version %q: %w", m.Version, err)
	}
	return nil
}

// Encode writes m in the given format.
func (m *Manifest) Encode(w io.Writer, format Format) error {
	return EncodeValue(w, m, format)
}

// EncodeValue writes any TOML, YAML or JSON encodable value in format.
// TOML needs a map or struct at the top level.
func EncodeValue(w io.Writer, v any, format Format) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(v)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
