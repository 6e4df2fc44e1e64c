package completions

import (
	"fmt"
	"strings"
)

func programName(commands []CommandInfo) string {
	if len(commands) == 0 || commands[0].Name == "" {
		return "taskcmd"
	}
	return commands[0].Name
}

// quote wraps s in single quotes for any of the supported shells.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func subcommandKey(cmd CommandInfo) string {
	return strings.Join(cmd.Path[1:], " ")
}

// GenerateBash returns a bash completion script.
func GenerateBash(commands []CommandInfo) string {
	prog := programName(commands)
	fn := "_" + strings.ReplaceAll(prog, "-", "_") + "_completions"

	var b strings.Builder
	fmt.Fprintf(&b, "# %s bash completion script\n", prog)
	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    local cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    local cmdpath=\"${COMP_WORDS[*]:1:COMP_CWORD-1}\"\n")
	b.WriteString("    case \"$cmdpath\" in\n")
	for _, cmd := range commands {
		if len(cmd.Subcommands) == 0 {
			continue
		}
		fmt.Fprintf(&b, "        %q) COMPREPLY=($(compgen -W %s -- \"$cur\")) ;;\n",
			subcommandKey(cmd), quote(strings.Join(cmd.Subcommands, " ")))
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n")
	fmt.Fprintf(&b, "complete -F %s %s\n", fn, prog)

	return b.String()
}

// GenerateZsh returns a zsh completion script.
func GenerateZsh(commands []CommandInfo) string {
	prog := programName(commands)
	fn := "_" + strings.ReplaceAll(prog, "-", "_")

	var b strings.Builder
	fmt.Fprintf(&b, "#compdef %s\n\n", prog)

	fmt.Fprintf(&b, "%s_commands() {\n", fn)
	b.WriteString("    local -a commands\n")
	b.WriteString("    case \"$1\" in\n")
	for _, cmd := range commands {
		if len(cmd.Subcommands) == 0 {
			continue
		}
		fmt.Fprintf(&b, "        %q)\n", subcommandKey(cmd))
		b.WriteString("            commands=(\n")
		for _, sub := range cmd.Subcommands {
			summary := ""
			if child := FindCommand(commands, append(append([]string{}, cmd.Path...), sub)); child != nil {
				summary = child.Summary
			}
			fmt.Fprintf(&b, "                %s\n", quote(sub+":"+summary))
		}
		b.WriteString("            )\n")
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("    _describe 'command' commands\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    local cmdpath=\"${(j: :)words[2,CURRENT-1]}\"\n")
	fmt.Fprintf(&b, "    %s_commands \"$cmdpath\"\n", fn)
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "%s \"$@\"\n", fn)

	return b.String()
}

// GenerateFish returns a fish completion script.
func GenerateFish(commands []CommandInfo) string {
	prog := programName(commands)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s fish completion script\n", prog)
	fmt.Fprintf(&b, "complete -c %s -f\n", prog)

	for _, cmd := range commands {
		if len(cmd.Path) < 2 {
			continue
		}

		condition := "__fish_use_subcommand"
		if len(cmd.Path) > 2 {
			condition = "__fish_seen_subcommand_from " + cmd.Path[len(cmd.Path)-2]
		}

		line := fmt.Sprintf("complete -c %s -n %s -a %s", prog, quote(condition), quote(cmd.Name))
		if cmd.Summary != "" {
			line += " -d " + quote(cmd.Summary)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
