// Package schema declares what a command line accepts: flags, positional
// arguments, rest arguments and nested commands.
//
// Schemas are built once with explicit builder values and are read-only
// afterwards, so a finished schema can be shared by concurrent parses.
// Misuse during declaration panics with *DeclarationError.
package schema

import (
	"slices"
	"strings"
)

// Info is the application metadata shown in help.
type Info struct {
	Name        string
	Version     string
	Author      string
	License     string
	Description string
	ReleaseDate string
	Exe         string
}

// Schema is one level of the command tree: the root or a command.
type Schema struct {
	name     string
	aliases  []string
	parent   *Schema
	settings Settings

	options   map[string]*Option // by canonical name, every kind
	optAlias  map[string]*Option
	order     []*Option // declaration order, every kind
	args      []*Option
	rest      *Option
	inherited map[string]bool

	commands     map[string]*Schema // canonical and alias
	commandOrder []*Schema

	exec        ExecFunc
	info        Info
	usage       string
	description string
}

// New creates a root schema.
func New(name string, opts ...Setting) *Schema {
	st := DefaultSettings()
	for _, opt := range opts {
		opt(&st)
	}
	return newSchema(name, nil, nil, st)
}

func newSchema(name string, aliases []string, parent *Schema, st Settings) *Schema {
	return &Schema{
		name:      name,
		aliases:   aliases,
		parent:    parent,
		settings:  st,
		options:   make(map[string]*Option),
		optAlias:  make(map[string]*Option),
		inherited: make(map[string]bool),
		commands:  make(map[string]*Schema),
	}
}

// Command declares a sub-command. The first name is canonical.
// The command starts from a copy of this schema's settings and, when
// Inherit is set, a copy of its options.
func (s *Schema) Command(names ...string) *Schema {
	if len(names) == 0 || names[0] == "" {
		s.fail("", "a command needs a name")
	}
	for _, name := range names {
		if name == "" || strings.HasPrefix(name, "-") {
			s.fail(name, "invalid command name")
		}
		if _, ok := s.commands[name]; ok {
			s.fail(name, "command already declared")
		}
	}

	cmd := newSchema(names[0], slices.Clone(names[1:]), s, s.settings)

	if s.settings.Inherit {
		for _, opt := range s.order {
			cp := opt.clone()
			cmd.index(cp)
			cmd.inherited[cp.Name] = true
		}
	}

	for _, name := range names {
		s.commands[name] = cmd
	}
	s.commandOrder = append(s.commandOrder, cmd)
	return cmd
}

// Option declares a flag. The first name is canonical, the rest are aliases.
func (s *Schema) Option(names ...string) *OptionBuilder {
	if len(names) == 0 {
		s.fail("", "an option needs a name")
	}
	return s.declare(&Option{Name: names[0], Aliases: slices.Clone(names[1:]), Kind: KindFlag})
}

// Arg declares the next positional argument.
func (s *Schema) Arg(name string) *OptionBuilder {
	return s.declare(&Option{Name: name, Kind: KindArg})
}

// Rest declares the key collecting bare tokens past the positional arguments.
func (s *Schema) Rest(name string) *OptionBuilder {
	if s.rest != nil && !s.inherited[s.rest.Name] {
		s.fail(name, "rest arguments already declared as '%s'", s.rest.Name)
	}
	if s.rest != nil {
		s.drop(s.rest)
	}
	return s.declare(&Option{Name: name, Kind: KindRest, Type: TypeArray, Elem: TypeString})
}

func (s *Schema) declare(opt *Option) *OptionBuilder {
	for _, name := range opt.Names() {
		s.claim(name)
	}
	s.index(opt)
	return &OptionBuilder{schema: s, opt: opt}
}

// claim checks that name is free, dropping an inherited option that holds it.
func (s *Schema) claim(name string) {
	if name == "" {
		s.fail(name, "empty option name")
	}
	if strings.HasPrefix(name, "-") || strings.ContainsAny(name, ".[]= ") {
		s.fail(name, "invalid option name")
	}
	if s.settings.Reserved(name) {
		s.fail(name, "name is reserved for the parse result")
	}
	if prefix := s.settings.NegativePrefix; prefix != "" && strings.HasPrefix(name, prefix) {
		s.fail(name, "starts with the negative prefix '%s', declare '%s' instead", prefix, strings.TrimPrefix(name, prefix))
	}

	existing := s.options[name]
	if existing == nil {
		existing = s.optAlias[name]
	}
	if existing == nil {
		return
	}
	if !s.inherited[existing.Name] {
		s.fail(name, "already declared by option '%s'", existing.Name)
	}
	s.drop(existing)
}

func (s *Schema) index(opt *Option) {
	s.options[opt.Name] = opt
	for _, alias := range opt.Aliases {
		s.optAlias[alias] = opt
	}
	s.order = append(s.order, opt)
	switch opt.Kind {
	case KindArg:
		s.args = append(s.args, opt)
	case KindRest:
		s.rest = opt
	}
}

func (s *Schema) drop(opt *Option) {
	delete(s.options, opt.Name)
	delete(s.inherited, opt.Name)
	for _, alias := range opt.Aliases {
		delete(s.optAlias, alias)
	}
	remove := func(o *Option) bool { return o == opt }
	s.order = slices.DeleteFunc(s.order, remove)
	s.args = slices.DeleteFunc(s.args, remove)
	if s.rest == opt {
		s.rest = nil
	}
}

// Settings setters. They only affect this schema and commands declared afterwards.

func (s *Schema) SetStrict(v bool) *Schema  { s.settings.Strict = v; return s }
func (s *Schema) SetInherit(v bool) *Schema { s.settings.Inherit = v; return s }
func (s *Schema) SetSplit(v bool) *Schema   { s.settings.Split = v; return s }

func (s *Schema) NegativePrefix(prefix string) *Schema {
	s.settings.NegativePrefix = prefix
	return s
}

func (s *Schema) CommandKey(key string) *Schema {
	s.reserve(key)
	s.settings.CommandKey = key
	return s
}

func (s *Schema) CommandOptionsKey(key string) *Schema {
	s.reserve(key)
	s.settings.CommandOptionsKey = key
	return s
}

func (s *Schema) RestKey(key string) *Schema {
	s.reserve(key)
	s.settings.RestKey = key
	return s
}

func (s *Schema) reserve(key string) {
	if key == "" {
		s.fail(key, "result keys cannot be empty")
	}
	if opt := s.Resolve(key); opt != nil {
		s.fail(key, "already declared by option '%s'", opt.Name)
	}
}

// Describe sets the schema description shown in help.
func (s *Schema) Describe(text string) *Schema { s.description = text; return s }

// SetUsage sets the usage line shown in help.
func (s *Schema) SetUsage(usage string) *Schema { s.usage = usage; return s }

func (s *Schema) SetInfo(info Info) *Schema { s.info = info; return s }

// Exec binds the callback run when this schema is the invoked command.
func (s *Schema) Exec(fn ExecFunc) *Schema { s.exec = fn; return s }

// Views.

func (s *Schema) Name() string        { return s.name }
func (s *Schema) Aliases() []string   { return s.aliases }
func (s *Schema) Settings() Settings  { return s.settings }
func (s *Schema) Parent() *Schema     { return s.parent }
func (s *Schema) Info() Info          { return s.info }
func (s *Schema) Usage() string       { return s.usage }
func (s *Schema) Description() string { return s.description }
func (s *Schema) Action() ExecFunc    { return s.exec }

// Root returns the top of the command tree.
func (s *Schema) Root() *Schema {
	for s.parent != nil {
		s = s.parent
	}
	return s
}

// Path returns the names from the root down to s, the root name included.
func (s *Schema) Path() []string {
	if s.parent == nil {
		return []string{s.name}
	}
	return append(s.parent.Path(), s.name)
}

// CommandPath returns the space-joined command names below the root,
// empty for the root itself.
func (s *Schema) CommandPath() string {
	return strings.Join(s.Path()[1:], " ")
}

// String returns the space-joined path without empty names.
func (s *Schema) String() string {
	parts := slices.DeleteFunc(s.Path(), func(p string) bool { return p == "" })
	return strings.Join(parts, " ")
}

// Lookup finds an option by canonical name.
func (s *Schema) Lookup(name string) *Option {
	return s.options[name]
}

// Resolve finds an option by canonical name or alias.
func (s *Schema) Resolve(name string) *Option {
	if opt, ok := s.options[name]; ok {
		return opt
	}
	return s.optAlias[name]
}

// Options returns every declared option in declaration order.
func (s *Schema) Options() []*Option { return slices.Clone(s.order) }

// Flags returns the flag options in declaration order.
func (s *Schema) Flags() []*Option {
	var out []*Option
	for _, opt := range s.order {
		if opt.Kind == KindFlag {
			out = append(out, opt)
		}
	}
	return out
}

// Args returns the positional arguments in declaration order.
func (s *Schema) Args() []*Option { return slices.Clone(s.args) }

// RestOption returns the declared rest option, or nil.
func (s *Schema) RestOption() *Option { return s.rest }

// Inherited reports whether the named option was copied from the parent.
func (s *Schema) Inherited(name string) bool { return s.inherited[name] }

// Commands returns the sub-commands in declaration order.
func (s *Schema) Commands() []*Schema { return slices.Clone(s.commandOrder) }

// LookupCommand finds a sub-command by canonical name or alias.
func (s *Schema) LookupCommand(name string) *Schema {
	return s.commands[name]
}

// CommandNames returns every canonical name and alias of the sub-commands.
func (s *Schema) CommandNames() []string {
	var names []string
	for _, cmd := range s.commandOrder {
		names = append(names, cmd.name)
		names = append(names, cmd.aliases...)
	}
	return names
}
