package parser

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/footprint-tools/argtree/internal/schema"
	"github.com/footprint-tools/argtree/internal/usage"
	"github.com/footprint-tools/argtree/internal/values"
)

// document is one result map being filled by the tokenizer. order keeps the
// top-level keys in the order they were first written.
type document struct {
	values values.Map
	order  []string
}

func newDocument() *document {
	return &document{values: values.Map{}}
}

func (d *document) touch(key string) {
	if !d.values.Has(key) {
		d.order = append(d.order, key)
	}
}

func (d *document) push(path string, v any) {
	root, _ := values.SplitPath(path)
	d.touch(root)
	d.values.Push(path, v)
}

func (d *document) set(key string, v any) {
	d.touch(key)
	d.values[key] = v
}

func (d *document) list(key string) {
	d.touch(key)
	d.values.Init(key)
}

// level pairs a schema of the matched command chain with the document it wrote to.
// In merged mode consecutive levels share a document.
type level struct {
	schema *schema.Schema
	doc    *document
}

// Raw is the result of tokenizing, before casting, defaults and checks.
type Raw struct {
	levels []level
}

// Args returns the uncast root document.
func (r *Raw) Args() values.Map {
	return r.levels[0].doc.values
}

// Commands returns the matched command chain below the root, outermost first.
func (r *Raw) Commands() []*schema.Schema {
	var out []*schema.Schema
	for _, lv := range r.levels[1:] {
		out = append(out, lv.schema)
	}
	return out
}

// clone deep-copies the documents, keeping shared and nested ones linked.
func (r *Raw) clone() []level {
	out := make([]level, len(r.levels))
	copies := make(map[*document]*document, len(r.levels))

	for i, lv := range r.levels {
		cp, ok := copies[lv.doc]
		if !ok {
			if i == 0 {
				cp = &document{values: lv.doc.values.Clone(), order: lv.doc.order}
			} else {
				key := r.levels[i-1].schema.Settings().CommandOptionsKey
				nested, _ := out[i-1].doc.values[key].(map[string]any)
				if nested == nil {
					nested = map[string]any(lv.doc.values.Clone())
				}
				cp = &document{values: values.Map(nested), order: lv.doc.order}
			}
			copies[lv.doc] = cp
		}
		out[i] = level{schema: lv.schema, doc: cp}
	}
	return out
}

type tokenizer struct {
	p      *Parser
	levels []level
}

// run walks raw once against s, writing into doc. A command token hands the
// remaining tokens to the command and ends this level.
func (tk *tokenizer) run(s *schema.Schema, doc *document, raw []string) error {
	tk.levels = append(tk.levels, level{schema: s, doc: doc})

	st := s.Settings()
	args := s.Args()
	hasCommands := len(s.Commands()) > 0
	argIndex := 0
	rest := false

	for i := 0; i < len(raw); i++ {
		tok := raw[i]

		if rest || !strings.HasPrefix(tok, "-") {
			if !rest && hasCommands {
				return tk.command(s, doc, tok, raw[i+1:])
			}
			if err := tk.value(s, doc, args, argIndex, tok); err != nil {
				return err
			}
			argIndex++
			continue
		}

		// next reports whether the following token can be taken as a value.
		next := func() bool {
			return i+1 < len(raw) && !strings.HasPrefix(raw[i+1], "-")
		}

		switch {
		case tok == "-":
			continue

		case !strings.HasPrefix(tok, "--"):
			names := clusters(tok[1:])
			for _, name := range names[:len(names)-1] {
				if err := tk.flag(s, doc, name, true); err != nil {
					return err
				}
			}
			var v any = true
			if next() {
				i++
				v = raw[i]
			}
			if err := tk.flag(s, doc, names[len(names)-1], v); err != nil {
				return err
			}

		case tok == "--":
			tk.p.log.Debug("rest mode on at token %d of %s", i, describe(s))
			rest = true

		default:
			name := tok[2:]
			if st.NegativePrefix != "" && strings.HasPrefix(name, st.NegativePrefix) {
				if err := tk.flag(s, doc, strings.TrimPrefix(name, st.NegativePrefix), false); err != nil {
					return err
				}
				continue
			}
			if key, v, ok := strings.Cut(name, "="); ok {
				if err := tk.flag(s, doc, key, v); err != nil {
					return err
				}
				continue
			}
			var v any = true
			if next() {
				i++
				v = raw[i]
			}
			if err := tk.flag(s, doc, name, v); err != nil {
				return err
			}
		}
	}

	return nil
}

// flag writes a flag value, resolving the top-level key to its canonical name.
func (tk *tokenizer) flag(s *schema.Schema, doc *document, key string, v any) error {
	st := s.Settings()
	root, rest := values.SplitPath(key)

	if opt := s.Resolve(root); opt != nil {
		root = opt.Name
	} else if st.Strict {
		return usage.UnknownOption(root, v).In(s.CommandPath())
	}

	if root == st.RestKey && s.RestOption() == nil {
		doc.list(root)
	}
	doc.push(root+rest, v)
	return nil
}

// value routes a bare token to the next positional slot or a rest bucket.
func (tk *tokenizer) value(s *schema.Schema, doc *document, args []*schema.Option, index int, tok string) error {
	st := s.Settings()

	switch {
	case index < len(args):
		doc.push(args[index].Name, tok)
	case s.RestOption() != nil:
		name := s.RestOption().Name
		doc.list(name)
		doc.push(name, tok)
	case st.Strict:
		return usage.UnknownArgument(index, tok).In(s.CommandPath())
	default:
		doc.list(st.RestKey)
		doc.push(st.RestKey, tok)
	}
	return nil
}

func (tk *tokenizer) command(s *schema.Schema, doc *document, tok string, remaining []string) error {
	cmd := s.LookupCommand(tok)
	if cmd == nil {
		suggestions := SimilarCommands(tok, s, defaultSuggestionsCount)
		return usage.UnknownCommand(tok, suggestions...).In(s.CommandPath())
	}

	st := s.Settings()
	name := cmd.Name()
	if n := len(tk.levels); n > 1 && tk.levels[n-2].doc == doc {
		if prev, ok := doc.values[st.CommandKey].(string); ok {
			name = prev + " " + name
		}
	}
	doc.set(st.CommandKey, name)

	child := doc
	if st.Split {
		child = newDocument()
		doc.set(st.CommandOptionsKey, map[string]any(child.values))
	}

	tk.p.log.Debug("matched command %q (split=%t), %d tokens left", cmd.CommandPath(), st.Split, len(remaining))
	return tk.run(cmd, child, remaining)
}

// clusters splits a short-flag group into user-perceived characters.
func clusters(s string) []string {
	var out []string
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}

func describe(s *schema.Schema) string {
	if name := s.String(); name != "" {
		return name
	}
	return "root schema"
}
