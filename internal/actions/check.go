package actions

import (
	"github.com/footprint-tools/argtree/internal/manifest"
	"github.com/footprint-tools/argtree/internal/schema"
	"github.com/footprint-tools/argtree/internal/values"
)

// Check validates a manifest and prints a summary, or with --dump the
// manifest as argtree reads it, in the requested format.
func (d *Deps) Check(_ *schema.Schema, args values.Map, _ *schema.Schema, _ values.Map) error {
	path := args.String(KeyManifest, "")
	s, err := d.build(path)
	if err != nil {
		return err
	}

	if dump := args.String(KeyDump, ""); dump != "" {
		format, err := manifest.ParseFormat(dump)
		if err != nil {
			return err
		}
		return manifest.FromSchema(s).Encode(d.Out, format)
	}

	commands, options := count(s)
	_, _ = d.Out.Printf("%s: %s (%d commands, %d options)\n", path, d.Styler.Success("ok"), commands, options)
	return nil
}

// count returns the commands below s and the options declared in the whole
// tree, inherited copies excluded.
func count(s *schema.Schema) (commands, options int) {
	for _, opt := range s.Options() {
		if !s.Inherited(opt.Name) {
			options++
		}
	}
	for _, cmd := range s.Commands() {
		c, o := count(cmd)
		commands += c + 1
		options += o
	}
	return commands, options
}
