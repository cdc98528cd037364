package manifest

import (
	"fmt"
	"io"

	"github.com/footprint-tools/argtree/internal/help"
	"github.com/footprint-tools/argtree/internal/schema"
)

// Build declares the schema described by m. Help and version callbacks of
// common options write to out. Declaration mistakes come back as
// *schema.DeclarationError.
func (m *Manifest) Build(out io.Writer) (s *schema.Schema, err error) {
	defer func() {
		if r := recover(); r != nil {
			de, ok := r.(*schema.DeclarationError)
			if !ok {
				panic(r)
			}
			s, err = nil, de
		}
	}()

	s = schema.New(m.rootName(), m.settings()...)
	s.SetInfo(schema.Info{
		Name:        m.Name,
		Version:     m.Version,
		Author:      string(m.Author),
		License:     m.License,
		Description: m.Description,
		ReleaseDate: m.Date,
		Exe:         m.Exe,
	})
	MergeInfo(s, schema.Info{Name: m.Package})
	s.SetUsage(m.Usage)

	if m.Common {
		help.CommonOptions(s, out)
	}
	if err := declareOptions(s, m.Options, m.Args, m.Rest); err != nil {
		return nil, err
	}
	for _, c := range m.Commands {
		if err := declareCommand(s, c); err != nil {
			return nil, err
		}
	}
	if m.Common {
		help.CommonCommands(s, out)
	}
	return s, nil
}

func (m *Manifest) rootName() string {
	if m.Exe != "" {
		return m.Exe
	}
	if m.Package != "" {
		return m.Package
	}
	return m.Name
}

func (m *Manifest) settings() []schema.Setting {
	var opts []schema.Setting
	if m.Strict {
		opts = append(opts, schema.WithStrict())
	}
	if m.Inherit {
		opts = append(opts, schema.WithInherit())
	}
	if m.Split {
		opts = append(opts, schema.WithSplit())
	}
	if m.NegativePrefix != nil {
		opts = append(opts, schema.WithNegativePrefix(*m.NegativePrefix))
	}
	if m.CommandKey != "" {
		opts = append(opts, schema.WithCommandKey(m.CommandKey))
	}
	if m.CommandOptionsKey != "" {
		opts = append(opts, schema.WithCommandOptionsKey(m.CommandOptionsKey))
	}
	if m.RestKey != "" {
		opts = append(opts, schema.WithRestKey(m.RestKey))
	}
	return opts
}

func declareCommand(parent *schema.Schema, c Command) error {
	if c.Name == "" {
		return fmt.Errorf("%s: a command needs a name", describe(parent))
	}

	s := parent.Command(append([]string{c.Name}, c.Aliases...)...)
	s.Describe(c.Description)
	s.SetUsage(c.Usage)
	if c.Strict != nil {
		s.SetStrict(*c.Strict)
	}
	if c.Inherit != nil {
		s.SetInherit(*c.Inherit)
	}
	if c.Split != nil {
		s.SetSplit(*c.Split)
	}

	if err := declareOptions(s, c.Options, c.Args, c.Rest); err != nil {
		return err
	}
	for _, sub := range c.Commands {
		if err := declareCommand(s, sub); err != nil {
			return err
		}
	}
	return nil
}

func declareOptions(s *schema.Schema, options, args []Option, rest *Option) error {
	for _, o := range options {
		if o.Name == "" {
			return fmt.Errorf("%s: an option needs a name", describe(s))
		}
		configure(s.Option(append([]string{o.Name}, o.Aliases...)...), o)
	}
	for _, a := range args {
		if len(a.Aliases) > 0 {
			return fmt.Errorf("%s: argument '%s' cannot have aliases", describe(s), a.Name)
		}
		configure(s.Arg(a.Name), a)
	}
	if rest != nil {
		if len(rest.Aliases) > 0 {
			return fmt.Errorf("%s: rest '%s' cannot have aliases", describe(s), rest.Name)
		}
		configure(s.Rest(rest.Name), *rest)
	}
	return nil
}

func configure(b *schema.OptionBuilder, o Option) {
	if o.Type != "" {
		b.TypeName(o.Type)
	}
	if o.Default != nil {
		b.Default(o.Default)
	}
	if o.Mandatory {
		b.Mandatory()
	}
	if o.Exclusive {
		b.Exclusive()
	}
	b.Describe(o.Description).Hint(o.Hint).Group(o.Group)
}

func describe(s *schema.Schema) string {
	if name := s.String(); name != "" {
		return "schema " + name
	}
	return "root schema"
}
