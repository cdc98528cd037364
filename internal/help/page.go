// Package help turns a schema into help pages and renders them.
//
// Build produces plain data so other renderers (the interactive browser,
// tests) can reuse it. Render lays the page out in two columns.
package help

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/footprint-tools/argtree/internal/schema"
)

// DefaultGroup names the section of options declared without a group.
const DefaultGroup = "Options"

// Row is one entry of a section: names on the left, description on the right.
type Row struct {
	Names       string
	Description string
}

// Section is a titled list of rows.
type Section struct {
	Title string
	Rows  []Row
}

// Page is everything help shows for one schema.
type Page struct {
	Name    string
	Version string
	Author  string
	License string
	Exe     string

	// Command is the space-joined command path, empty for the root.
	Command     string
	Description string
	Usage       string
	Sections    []Section
}

// Build collects the help page of s. Application metadata comes from the
// root schema.
func Build(s *schema.Schema) Page {
	info := s.Root().Info()
	page := Page{
		Name:    info.Name,
		Version: info.Version,
		Author:  info.Author,
		License: info.License,
		Exe:     info.Exe,
		Command: s.CommandPath(),
	}
	if page.Exe == "" {
		page.Exe = s.Root().Name()
	}
	if page.Exe == "" && len(os.Args) > 0 {
		page.Exe = filepath.Base(os.Args[0])
	}

	page.Description = s.Description()
	if page.Description == "" && s.Parent() == nil {
		page.Description = info.Description
	}

	page.Usage = s.Usage()
	if page.Usage == "" {
		page.Usage = defaultUsage(s, page.Exe)
	}

	page.Sections = append(page.Sections, optionSections(s)...)
	if args := argumentSection(s); len(args.Rows) > 0 {
		page.Sections = append(page.Sections, args)
	}
	if cmds := commandSection(s); len(cmds.Rows) > 0 {
		page.Sections = append(page.Sections, cmds)
	}
	return page
}

// Lookup walks path down from s by command name or alias. It returns the
// deepest schema reached and the first name that matched nothing.
func Lookup(s *schema.Schema, path []string) (*schema.Schema, string) {
	for _, name := range path {
		next := s.LookupCommand(name)
		if next == nil {
			return s, name
		}
		s = next
	}
	return s, ""
}

func defaultUsage(s *schema.Schema, exe string) string {
	parts := []string{exe}
	if cmd := s.CommandPath(); cmd != "" {
		parts = append(parts, cmd)
	}
	if len(s.Flags()) > 0 {
		parts = append(parts, "[options]")
	}
	if len(s.Commands()) > 0 {
		parts = append(parts, "<command>")
	}
	for _, arg := range s.Args() {
		parts = append(parts, "<"+arg.Name+">")
	}
	if rest := s.RestOption(); rest != nil {
		parts = append(parts, "[<"+rest.Name+">...]")
	}
	return strings.Join(parts, " ")
}

func optionSections(s *schema.Schema) []Section {
	var sections []Section
	index := make(map[string]int)

	for _, opt := range s.Flags() {
		group := opt.Group
		if group == "" {
			group = DefaultGroup
		}
		i, ok := index[group]
		if !ok {
			i = len(sections)
			index[group] = i
			sections = append(sections, Section{Title: group})
		}
		sections[i].Rows = append(sections[i].Rows, Row{
			Names:       OptionNames(opt),
			Description: opt.Description,
		})
	}
	return sections
}

func argumentSection(s *schema.Schema) Section {
	sec := Section{Title: "Arguments"}
	for _, arg := range s.Args() {
		sec.Rows = append(sec.Rows, Row{Names: "<" + arg.Name + ">", Description: arg.Description})
	}
	if rest := s.RestOption(); rest != nil {
		sec.Rows = append(sec.Rows, Row{Names: "<" + rest.Name + ">...", Description: rest.Description})
	}
	return sec
}

func commandSection(s *schema.Schema) Section {
	sec := Section{Title: "Commands"}
	for _, cmd := range s.Commands() {
		names := append([]string{cmd.Name()}, cmd.Aliases()...)
		sec.Rows = append(sec.Rows, Row{Names: strings.Join(names, ", "), Description: cmd.Description()})
	}
	return sec
}

// OptionNames formats an option's names the way they are typed: "--name"
// for names longer than one character, "-n" otherwise, followed by the
// value hint.
func OptionNames(opt *schema.Option) string {
	names := make([]string, 0, len(opt.Aliases)+1)
	for _, name := range opt.Names() {
		if utf8.RuneCountInString(name) > 1 {
			names = append(names, "--"+name)
		} else {
			names = append(names, "-"+name)
		}
	}

	out := strings.Join(names, ", ")
	if hint := opt.ValueHint; hint != "" {
		if !strings.HasPrefix(hint, "<") && !strings.HasPrefix(hint, "[") {
			hint = "<" + hint + ">"
		}
		out += " " + hint
	}
	return out
}
