package manifest

import (
	"slices"

	"github.com/footprint-tools/argtree/internal/help"
	"github.com/footprint-tools/argtree/internal/schema"
)

// FromSchema describes s as a manifest. Options a command inherited from
// its parent are left out, they come back when the manifest is built with
// the same inherit setting. The declarations of help.CommonOptions and
// help.CommonCommands turn back into common.
func FromSchema(s *schema.Schema) *Manifest {
	info := s.Info()
	st := s.Settings()
	def := schema.DefaultSettings()

	m := &Manifest{
		Name:        info.Name,
		Version:     info.Version,
		Author:      Author(info.Author),
		License:     info.License,
		Description: info.Description,
		Date:        info.ReleaseDate,
		Exe:         info.Exe,
		Usage:       s.Usage(),
		Strict:      st.Strict,
		Inherit:     st.Inherit,
		Split:       st.Split,
		Common:      help.HasCommon(s),
	}
	if m.Exe == "" {
		m.Exe = s.Name()
	}
	if st.NegativePrefix != def.NegativePrefix {
		prefix := st.NegativePrefix
		m.NegativePrefix = &prefix
	}
	if st.CommandKey != def.CommandKey {
		m.CommandKey = st.CommandKey
	}
	if st.CommandOptionsKey != def.CommandOptionsKey {
		m.CommandOptionsKey = st.CommandOptionsKey
	}
	if st.RestKey != def.RestKey {
		m.RestKey = st.RestKey
	}

	m.Options, m.Args, m.Rest = exportOptions(s)
	for _, cmd := range s.Commands() {
		if m.Common && cmd.Name() == "help" {
			continue
		}
		m.Commands = append(m.Commands, exportCommand(cmd))
	}
	if m.Common {
		m.Options = slices.DeleteFunc(m.Options, func(o Option) bool {
			return o.Name == "help" || o.Name == "version"
		})
	}
	return m
}

func exportCommand(s *schema.Schema) Command {
	c := Command{
		Name:        s.Name(),
		Aliases:     s.Aliases(),
		Description: s.Description(),
		Usage:       s.Usage(),
	}

	st, parent := s.Settings(), s.Parent().Settings()
	if st.Strict != parent.Strict {
		c.Strict = &st.Strict
	}
	if st.Inherit != parent.Inherit {
		c.Inherit = &st.Inherit
	}
	if st.Split != parent.Split {
		c.Split = &st.Split
	}

	c.Options, c.Args, c.Rest = exportOptions(s)
	for _, sub := range s.Commands() {
		c.Commands = append(c.Commands, exportCommand(sub))
	}
	return c
}

func exportOptions(s *schema.Schema) (options, args []Option, rest *Option) {
	for _, opt := range s.Options() {
		if s.Inherited(opt.Name) {
			continue
		}

		o := Option{
			Name:        opt.Name,
			Aliases:     opt.Aliases,
			Type:        opt.TypeName(),
			Mandatory:   opt.Mandatory,
			Exclusive:   opt.Exclusive,
			Description: opt.Description,
			Hint:        opt.ValueHint,
			Group:       opt.Group,
		}
		if o.Type == schema.TypeAuto.String() {
			o.Type = ""
		}
		if opt.HasDefault {
			o.Default = opt.Default
		}

		switch opt.Kind {
		case schema.KindArg:
			args = append(args, o)
		case schema.KindRest:
			if o.Type == schema.TypeName(schema.TypeArray, schema.TypeString) {
				o.Type = ""
			}
			rest = &o
		default:
			options = append(options, o)
		}
	}
	return options, args, rest
}
