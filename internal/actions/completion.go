package actions

import (
	"github.com/footprint-tools/argtree/internal/completions"
	"github.com/footprint-tools/argtree/internal/schema"
	"github.com/footprint-tools/argtree/internal/usage"
	"github.com/footprint-tools/argtree/internal/values"
)

// Completion prints a shell completion script for a manifest, or for
// argtree itself when no manifest is given.
func (d *Deps) Completion(root *schema.Schema, args values.Map, _ *schema.Schema, _ values.Map) error {
	shell := completions.DetectShell(d.Getenv)
	if name := args.String(KeyShell, ""); name != "" {
		var err error
		if shell, err = completions.ParseShell(name); err != nil {
			return usage.InvalidValue(KeyShell, name, "expecting bash, zsh or fish")
		}
	}

	target := root
	if path := args.String(KeyManifest, ""); path != "" {
		var err error
		if target, err = d.build(path); err != nil {
			return err
		}
	}

	return completions.PrintCompletions(d.Out, target, shell)
}
