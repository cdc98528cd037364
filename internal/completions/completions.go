// Package completions generates shell completion scripts from a schema.
package completions

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/footprint-tools/argtree/internal/help"
	"github.com/footprint-tools/argtree/internal/schema"
)

// Shell is a supported completion target.
type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ParseShell returns the shell named name.
func ParseShell(name string) (Shell, error) {
	switch s := Shell(strings.ToLower(name)); s {
	case ShellBash, ShellZsh, ShellFish:
		return s, nil
	}
	return "", fmt.Errorf("unsupported shell: %s", name)
}

// DetectShell guesses the shell from $SHELL, bash when unknown.
func DetectShell(getenv func(string) string) Shell {
	if s, err := ParseShell(filepath.Base(getenv("SHELL"))); err == nil {
		return s
	}
	return ShellBash
}

// CommandInfo is one level of the command tree.
type CommandInfo struct {
	Name        string
	Path        []string // binary name first, e.g. ["git", "remote", "add"]
	Summary     string
	Subcommands []string
	Flags       []FlagInfo
}

// FlagInfo is one flag of a command.
type FlagInfo struct {
	Names       []string // with dashes, long names first as declared
	Description string
	HasValue    bool
}

// ExtractCommands lists s and every command below it, depth first in
// declaration order. The root path element is the binary name.
func ExtractCommands(s *schema.Schema) []CommandInfo {
	bin := help.Build(s.Root()).Exe
	var commands []CommandInfo
	extract(s, bin, &commands)
	return commands
}

func extract(s *schema.Schema, bin string, commands *[]CommandInfo) {
	path := append([]string{bin}, s.Path()[1:]...)

	var subcommands []string
	for _, cmd := range s.Commands() {
		subcommands = append(subcommands, cmd.Name())
	}

	var flags []FlagInfo
	for _, opt := range s.Flags() {
		var names []string
		for _, name := range opt.Names() {
			names = append(names, dashed(name))
		}
		flags = append(flags, FlagInfo{
			Names:       names,
			Description: opt.Description,
			HasValue:    opt.Type != schema.TypeBoolean,
		})
	}

	*commands = append(*commands, CommandInfo{
		Name:        path[len(path)-1],
		Path:        path,
		Summary:     s.Description(),
		Subcommands: subcommands,
		Flags:       flags,
	})

	for _, cmd := range s.Commands() {
		extract(cmd, bin, commands)
	}
}

func dashed(name string) string {
	if len([]rune(name)) == 1 {
		return "-" + name
	}
	return "--" + name
}

// FindCommand finds a command by its path
func FindCommand(commands []CommandInfo, path []string) *CommandInfo {
	for i := range commands {
		if pathsEqual(commands[i].Path, path) {
			return &commands[i]
		}
	}
	return nil
}

func pathsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// PrintCompletions writes the completion script of s for shell to w.
func PrintCompletions(w io.Writer, s *schema.Schema, shell Shell) error {
	script := generateScript(shell, ExtractCommands(s))
	if script == "" {
		return fmt.Errorf("unsupported shell: %s", shell)
	}

	_, err := fmt.Fprint(w, script)
	return err
}

func generateScript(shell Shell, commands []CommandInfo) string {
	switch shell {
	case ShellBash:
		return GenerateBash(commands)
	case ShellZsh:
		return GenerateZsh(commands)
	case ShellFish:
		return GenerateFish(commands)
	default:
		return ""
	}
}
