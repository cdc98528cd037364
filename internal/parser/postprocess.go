package parser

import (
	"github.com/footprint-tools/argtree/internal/caster"
	"github.com/footprint-tools/argtree/internal/schema"
	"github.com/footprint-tools/argtree/internal/usage"
	"github.com/footprint-tools/argtree/internal/values"
)

// Call is a queued callback: an option's or the invoked command's Exec.
type Call struct {
	Name string // option name, or command path ("" for the root)
	Fn   schema.ExecFunc
}

// Outcome is a fully validated parse with the callbacks it selected.
type Outcome struct {
	Root *schema.Schema
	Args values.Map

	// Command is the innermost matched command, nil when none matched.
	Command *schema.Schema
	// CommandArgs is the document Command wrote to: Args itself in merged
	// mode, the nested command options in split mode.
	CommandArgs values.Map

	Queue []Call
}

// Execute runs the queued callbacks in order and stops at the first error.
func (o *Outcome) Execute() error {
	for _, call := range o.Queue {
		if err := call.Fn(o.Root, o.Args, o.Command, o.CommandArgs); err != nil {
			return err
		}
	}
	return nil
}

type postprocessor struct {
	levels       []level
	queue        []Call
	locked       bool
	exclusiveHit bool
}

func (pp *postprocessor) castAll() error {
	done := make(map[*document]bool)

	for i, lv := range pp.levels {
		if done[lv.doc] {
			continue
		}
		done[lv.doc] = true

		sharing := pp.sharing(i)
		for _, key := range lv.doc.order {
			if reserved(sharing, key) {
				continue
			}

			opt, owner := resolve(sharing, key)
			typ, elem := schema.TypeAuto, schema.TypeAuto
			if opt != nil {
				typ, elem = opt.Type, opt.Elem
			}

			cast, err := caster.Cast(key, lv.doc.values[key], typ, elem)
			if err != nil {
				return within(err, owner)
			}
			lv.doc.values[key] = cast

			if opt != nil {
				pp.match(opt)
			}
		}
	}
	return nil
}

// sharing returns the levels writing to the same document as level i, outermost first.
func (pp *postprocessor) sharing(i int) []level {
	var out []level
	for _, lv := range pp.levels[i:] {
		if lv.doc == pp.levels[i].doc {
			out = append(out, lv)
		}
	}
	return out
}

func (pp *postprocessor) match(opt *schema.Option) {
	if opt.Exclusive {
		pp.exclusiveHit = true
		if opt.Exec != nil && !pp.locked {
			pp.queue = []Call{{Name: opt.Name, Fn: opt.Exec}}
			pp.locked = true
		}
		return
	}
	if opt.Exec != nil && !pp.locked {
		pp.queue = append(pp.queue, Call{Name: opt.Name, Fn: opt.Exec})
	}
}

// invoke queues the innermost schema's own callback.
func (pp *postprocessor) invoke() {
	leaf := pp.levels[len(pp.levels)-1].schema
	if fn := leaf.Action(); fn != nil && !pp.locked {
		pp.queue = append(pp.queue, Call{Name: leaf.CommandPath(), Fn: fn})
	}
}

// defaults fills absent options, innermost level first so a command's
// default wins over its parent's in a shared document.
func (pp *postprocessor) defaults() {
	for i := len(pp.levels) - 1; i >= 0; i-- {
		lv := pp.levels[i]
		for _, opt := range lv.schema.Options() {
			if opt.HasDefault && !lv.doc.values.Has(opt.Name) {
				lv.doc.set(opt.Name, values.Clone(opt.Default))
			}
		}
	}
}

func (pp *postprocessor) mandatory() error {
	if pp.exclusiveHit {
		return nil
	}
	for _, lv := range pp.levels {
		for _, opt := range lv.schema.Options() {
			if opt.Mandatory && !lv.doc.values.Has(opt.Name) {
				return usage.MissingOption(opt.Name).In(lv.schema.CommandPath())
			}
		}
	}
	return nil
}

func (pp *postprocessor) outcome() *Outcome {
	root := pp.levels[0]
	out := &Outcome{
		Root:  root.schema,
		Args:  root.doc.values,
		Queue: pp.queue,
	}
	if len(pp.levels) > 1 {
		leaf := pp.levels[len(pp.levels)-1]
		out.Command = leaf.schema
		out.CommandArgs = leaf.doc.values
	}
	return out
}

// resolve finds the option for a canonical key, preferring the innermost schema.
func resolve(sharing []level, key string) (*schema.Option, *schema.Schema) {
	for i := len(sharing) - 1; i >= 0; i-- {
		if opt := sharing[i].schema.Lookup(key); opt != nil {
			return opt, sharing[i].schema
		}
	}
	return nil, sharing[len(sharing)-1].schema
}

func reserved(sharing []level, key string) bool {
	for _, lv := range sharing {
		st := lv.schema.Settings()
		if st.Reserved(key) && lv.schema.Lookup(key) == nil {
			return true
		}
	}
	return false
}

func within(err error, s *schema.Schema) error {
	if ue, ok := usage.As(err); ok {
		return ue.In(s.CommandPath())
	}
	return err
}
