package actions

import (
	"fmt"

	"github.com/footprint-tools/argtree/internal/manifest"
	"github.com/footprint-tools/argtree/internal/parser"
	"github.com/footprint-tools/argtree/internal/schema"
	"github.com/footprint-tools/argtree/internal/values"
)

// Parse parses the arguments after "--" against a manifest and prints the
// result. With --run the callbacks the parse selected run instead, and the
// result is printed only when there were none.
func (d *Deps) Parse(_ *schema.Schema, args values.Map, _ *schema.Schema, _ values.Map) error {
	format, err := manifest.ParseFormat(args.String(KeyFormat, string(manifest.FormatJSON)))
	if err != nil {
		return err
	}

	s, err := d.build(args.String(KeyManifest, ""))
	if err != nil {
		return err
	}

	raw := args.Strings(KeyArgs)
	d.Logger.Debug("parse %d arguments against %s", len(raw), s.Name())

	outcome, err := parser.New(s, parser.WithLogger(d.Logger)).Prepare(raw)
	if err != nil {
		return err
	}

	if args.Bool(KeyRun, false) && len(outcome.Queue) > 0 {
		return outcome.Execute()
	}
	return manifest.EncodeValue(d.Out, outcome.Args, format)
}

func (d *Deps) build(path string) (*schema.Schema, error) {
	m, err := d.Load(path)
	if err != nil {
		return nil, err
	}

	s, err := m.Build(d.Out)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
