package schema

import "github.com/footprint-tools/argtree/internal/values"

// ExecFunc is a callback bound to an option or a command. It runs after a
// successful parse with the root schema and result, and the invoked command
// and its own result (nil when no command matched).
type ExecFunc func(root *Schema, args values.Map, cmd *Schema, cmdArgs values.Map) error

// Option is one declared flag, positional argument or rest bucket.
type Option struct {
	Name    string
	Aliases []string
	Kind    Kind

	Type Type
	Elem Type // element type when Type is TypeArray

	Default    any
	HasDefault bool
	Mandatory  bool
	Exclusive  bool
	Exec       ExecFunc

	Description string
	ValueHint   string
	Group       string
}

// Names returns the canonical name followed by the aliases.
func (o *Option) Names() []string {
	return append([]string{o.Name}, o.Aliases...)
}

// TypeName returns the declaration name of the option's type.
func (o *Option) TypeName() string {
	return TypeName(o.Type, o.Elem)
}

func (o *Option) clone() *Option {
	cp := *o
	cp.Aliases = append([]string(nil), o.Aliases...)
	return &cp
}

// OptionBuilder configures one option right after it was declared.
type OptionBuilder struct {
	schema *Schema
	opt    *Option
}

// Spec returns the option being built.
func (b *OptionBuilder) Spec() *Option { return b.opt }

// Schema returns the schema the option belongs to.
func (b *OptionBuilder) Schema() *Schema { return b.schema }

func (b *OptionBuilder) Type(t Type) *OptionBuilder {
	if t < TypeAuto || t > TypeArray {
		b.schema.fail(b.opt.Name, "invalid type %d", int(t))
	}
	if b.opt.Kind == KindRest && t != TypeArray {
		b.schema.fail(b.opt.Name, "rest arguments are always an array")
	}
	b.opt.Type = t
	b.opt.Elem = TypeAuto
	return b
}

// TypeName sets the type from its declaration name, see ParseType.
func (b *OptionBuilder) TypeName(name string) *OptionBuilder {
	t, elem, err := ParseType(name)
	if err != nil {
		b.schema.fail(b.opt.Name, "%v", err)
	}
	if t == TypeArray {
		return b.ArrayOf(elem)
	}
	return b.Type(t)
}

func (b *OptionBuilder) Boolean() *OptionBuilder { return b.Type(TypeBoolean) }
func (b *OptionBuilder) String() *OptionBuilder  { return b.Type(TypeString) }
func (b *OptionBuilder) Number() *OptionBuilder  { return b.Type(TypeNumber) }
func (b *OptionBuilder) Object() *OptionBuilder  { return b.Type(TypeObject) }
func (b *OptionBuilder) Array() *OptionBuilder   { return b.Type(TypeArray) }

// ArrayOf makes the option an array whose elements are cast to elem.
func (b *OptionBuilder) ArrayOf(elem Type) *OptionBuilder {
	if elem == TypeArray || elem == TypeObject || elem < TypeAuto || elem > TypeArray {
		b.schema.fail(b.opt.Name, "arrays hold auto, boolean, string or number elements, not %s", elem)
	}
	b.opt.Type = TypeArray
	b.opt.Elem = elem
	return b
}

// Default sets the value written when the option is absent.
func (b *OptionBuilder) Default(v any) *OptionBuilder {
	b.opt.Default = values.Normalize(v)
	b.opt.HasDefault = true
	return b
}

func (b *OptionBuilder) Mandatory() *OptionBuilder {
	b.opt.Mandatory = true
	return b
}

// Exclusive marks an escape option: its presence disables mandatory checks,
// and its callback, if any, becomes the only one run.
func (b *OptionBuilder) Exclusive() *OptionBuilder {
	b.opt.Exclusive = true
	return b
}

func (b *OptionBuilder) Exec(fn ExecFunc) *OptionBuilder {
	b.opt.Exec = fn
	return b
}

func (b *OptionBuilder) Describe(s string) *OptionBuilder {
	b.opt.Description = s
	return b
}

// Hint sets the value placeholder shown in help, e.g. "file".
func (b *OptionBuilder) Hint(s string) *OptionBuilder {
	b.opt.ValueHint = s
	return b
}

// Group sets the help section the option is listed under.
func (b *OptionBuilder) Group(s string) *OptionBuilder {
	b.opt.Group = s
	return b
}

// Alias adds alternate names.
func (b *OptionBuilder) Alias(names ...string) *OptionBuilder {
	for _, name := range names {
		b.schema.claim(name)
		b.opt.Aliases = append(b.opt.Aliases, name)
		b.schema.optAlias[name] = b.opt
	}
	return b
}
