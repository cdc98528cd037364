package completions

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

var nonIdent = regexp.MustCompile(`[^A-Za-z0-9_]`)

// funcName turns a binary name into a shell function name suffix.
func funcName(bin string) string {
	return nonIdent.ReplaceAllString(bin, "_")
}

// singleQuote quotes s for bash and zsh.
func singleQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// fishQuote quotes s for fish.
func fishQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}

// summaryLine keeps the first line of a description.
func summaryLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(line)
}

func binOf(commands []CommandInfo) string {
	if len(commands) == 0 {
		return "app"
	}
	return commands[0].Path[0]
}

// byDepth returns the commands below the root, deepest first, so that the
// first matching case pattern is the most specific one.
func byDepth(commands []CommandInfo) []CommandInfo {
	var out []CommandInfo
	for _, cmd := range commands {
		if len(cmd.Path) > 1 {
			out = append(out, cmd)
		}
	}
	slices.SortStableFunc(out, func(a, b CommandInfo) int {
		return len(b.Path) - len(a.Path)
	})
	return out
}

func words(cmd CommandInfo) []string {
	w := slices.Clone(cmd.Subcommands)
	for _, f := range cmd.Flags {
		w = append(w, f.Names...)
	}
	return w
}

func casePattern(cmd CommandInfo) string {
	p := strings.Join(cmd.Path[1:], " ")
	return fmt.Sprintf(`"%s"|"%s "*`, p, p)
}

// GenerateBash returns a bash script completing command names and flags.
func GenerateBash(commands []CommandInfo) string {
	bin := binOf(commands)
	fn := "_" + funcName(bin) + "_completions"

	var b strings.Builder
	fmt.Fprintf(&b, "# %s bash completion script\n\n", bin)
	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    local cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    local path=\"\" i\n")
	b.WriteString("    for ((i = 1; i < COMP_CWORD; i++)); do\n")
	b.WriteString("        case \"${COMP_WORDS[i]}\" in\n")
	b.WriteString("            -*) ;;\n")
	b.WriteString("            *) path=\"${path:+$path }${COMP_WORDS[i]}\" ;;\n")
	b.WriteString("        esac\n")
	b.WriteString("    done\n\n")
	b.WriteString("    local opts=\"\"\n")
	b.WriteString("    case \"$path\" in\n")
	for _, cmd := range byDepth(commands) {
		fmt.Fprintf(&b, "        %s) opts=%s ;;\n", casePattern(cmd), singleQuote(strings.Join(words(cmd), " ")))
	}
	if len(commands) > 0 {
		fmt.Fprintf(&b, "        *) opts=%s ;;\n", singleQuote(strings.Join(words(commands[0]), " ")))
	}
	b.WriteString("    esac\n\n")
	b.WriteString("    COMPREPLY=($(compgen -W \"$opts\" -- \"$cur\"))\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "complete -F %s %s\n", fn, bin)
	return b.String()
}

func zshDescribed(cmd CommandInfo, commands []CommandInfo) []string {
	var items []string
	for _, name := range cmd.Subcommands {
		summary := ""
		if sub := FindCommand(commands, append(slices.Clone(cmd.Path), name)); sub != nil {
			summary = summaryLine(sub.Summary)
		}
		items = append(items, singleQuote(strings.ReplaceAll(name, ":", `\:`)+":"+summary))
	}
	return items
}

func zshFlags(cmd CommandInfo) string {
	var names []string
	for _, f := range cmd.Flags {
		names = append(names, f.Names...)
	}
	return strings.Join(names, " ")
}

// GenerateZsh returns a zsh script completing command names with their
// summaries, and flags.
func GenerateZsh(commands []CommandInfo) string {
	bin := binOf(commands)
	fn := "_" + funcName(bin)

	var b strings.Builder
	fmt.Fprintf(&b, "#compdef %s\n\n", bin)

	fmt.Fprintf(&b, "%s_commands() {\n", fn)
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	if len(commands) > 0 {
		for _, item := range zshDescribed(commands[0], commands) {
			fmt.Fprintf(&b, "        %s\n", item)
		}
	}
	b.WriteString("    )\n")
	b.WriteString("    _describe 'command' commands\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    local -a cmdpath subcommands flags\n")
	b.WriteString("    local word\n")
	b.WriteString("    for word in \"${(@)words[2,CURRENT-1]}\"; do\n")
	b.WriteString("        [[ $word == -* ]] || cmdpath+=(\"$word\")\n")
	b.WriteString("    done\n\n")
	b.WriteString("    case \"${cmdpath[*]}\" in\n")
	for _, cmd := range byDepth(commands) {
		fmt.Fprintf(&b, "        %s)\n", casePattern(cmd))
		fmt.Fprintf(&b, "            subcommands=(%s)\n", strings.Join(zshDescribed(cmd, commands), " "))
		fmt.Fprintf(&b, "            flags=(%s)\n", zshFlags(cmd))
		b.WriteString("            ;;\n")
	}
	b.WriteString("        *)\n")
	if len(commands) > 0 {
		fmt.Fprintf(&b, "            flags=(%s)\n", zshFlags(commands[0]))
	}
	b.WriteString("            if [[ $PREFIX == -* ]]; then\n")
	b.WriteString("                compadd -- $flags\n")
	b.WriteString("            else\n")
	fmt.Fprintf(&b, "                %s_commands\n", fn)
	b.WriteString("            fi\n")
	b.WriteString("            return\n")
	b.WriteString("            ;;\n")
	b.WriteString("    esac\n\n")
	b.WriteString("    if [[ $PREFIX == -* ]]; then\n")
	b.WriteString("        compadd -- $flags\n")
	b.WriteString("    elif (( ${#subcommands} )); then\n")
	b.WriteString("        _describe 'command' subcommands\n")
	b.WriteString("    fi\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "%s \"$@\"\n", fn)
	return b.String()
}

// GenerateFish returns fish complete commands for command names and flags.
func GenerateFish(commands []CommandInfo) string {
	bin := binOf(commands)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s fish completion script\n\n", bin)
	fmt.Fprintf(&b, "complete -c %s -f\n", bin)

	for _, cmd := range commands {
		cond := "__fish_use_subcommand"
		if len(cmd.Path) > 1 {
			cond = "__fish_seen_subcommand_from " + cmd.Name
		}

		for _, name := range cmd.Subcommands {
			line := fmt.Sprintf("complete -c %s -n %s -a %s", bin, fishQuote(cond), fishQuote(name))
			if sub := FindCommand(commands, append(slices.Clone(cmd.Path), name)); sub != nil && sub.Summary != "" {
				line += " -d " + fishQuote(summaryLine(sub.Summary))
			}
			b.WriteString(line + "\n")
		}

		for _, f := range cmd.Flags {
			line := fmt.Sprintf("complete -c %s", bin)
			if len(cmd.Path) > 1 {
				line += " -n " + fishQuote(cond)
			}
			for _, name := range f.Names {
				if strings.HasPrefix(name, "--") {
					line += " -l " + strings.TrimPrefix(name, "--")
				} else {
					line += " -s " + strings.TrimPrefix(name, "-")
				}
			}
			if f.HasValue {
				line += " -r"
			}
			if f.Description != "" {
				line += " -d " + fishQuote(summaryLine(f.Description))
			}
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}
