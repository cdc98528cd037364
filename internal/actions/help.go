package actions

import (
	"errors"
	"strings"

	"github.com/footprint-tools/argtree/internal/help"
	"github.com/footprint-tools/argtree/internal/parser"
	"github.com/footprint-tools/argtree/internal/schema"
	"github.com/footprint-tools/argtree/internal/ui/browser"
	"github.com/footprint-tools/argtree/internal/usage"
	"github.com/footprint-tools/argtree/internal/values"
)

// Help renders the help page of a manifest command, or browses every page
// of the manifest with --interactive.
func (d *Deps) Help(_ *schema.Schema, args values.Map, _ *schema.Schema, _ values.Map) error {
	s, err := d.build(args.String(KeyManifest, ""))
	if err != nil {
		return err
	}

	target, missing := help.Lookup(s, args.Strings(KeyPath))
	if missing != "" {
		suggestions := parser.SimilarCommands(missing, target, 3)
		return usage.UnknownCommand(missing, suggestions...).In(target.CommandPath())
	}

	if !args.Bool(KeyInteractive, false) {
		return help.Show(d.Out, target)
	}

	entries, start := pages(s, target)
	err = d.Browse(entries, start)
	if errors.Is(err, browser.ErrNotTerminal) {
		d.Logger.Info("help browser needs a terminal, printing instead")
		return help.Show(d.Out, target)
	}
	return err
}

// pages lists the help page of every schema under root, depth first, and
// the index of target among them.
func pages(root, target *schema.Schema) ([]browser.Entry, int) {
	var entries []browser.Entry
	start := 0

	var walk func(s *schema.Schema)
	walk = func(s *schema.Schema) {
		if s == target {
			start = len(entries)
		}
		page := help.Build(s)
		title := s.CommandPath()
		if title == "" {
			title = page.Exe
		}
		entries = append(entries, browser.Entry{
			Title: title,
			Render: func(width int) string {
				var b strings.Builder
				_ = help.Render(&b, page, width)
				return b.String()
			},
		})
		for _, cmd := range s.Commands() {
			walk(cmd)
		}
	}
	walk(root)

	return entries, start
}
