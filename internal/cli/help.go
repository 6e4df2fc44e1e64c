package cli

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/taskcmd/taskcmd/internal/dispatchers"
	"github.com/taskcmd/taskcmd/internal/ui/style"
	"github.com/taskcmd/taskcmd/internal/usage"
)

const maxSuggestions = 3

// commandDisplayOrder defines explicit ordering within categories.
// Commands not listed appear alphabetically after listed ones.
var commandDisplayOrder = map[string]int{
	"version":      1,
	"config get":   1,
	"config set":   2,
	"config unset": 3,
	"config list":  4,
}

// formatUsage styles the usage line with the command in Info color and the rest muted.
func formatUsage(line string) string {
	cmdEnd := len(line)
	for i, c := range line {
		if c == '[' || c == '<' {
			cmdEnd = i
			break
		}
	}

	cmd := strings.TrimSpace(line[:cmdEnd])
	rest := ""
	if cmdEnd < len(line) {
		rest = line[cmdEnd:]
	}

	if rest == "" {
		return style.Info(cmd)
	}
	return style.Info(cmd) + " " + style.Muted(rest)
}

type listed struct {
	path string
	task *dispatchers.Task
}

// collectLeafCommands appends every runnable descendant of t, named by its
// path below t with prefix in front.
func collectLeafCommands(t *dispatchers.Task, prefix string, out *[]listed) {
	paths := map[*dispatchers.Task]string{t: prefix}

	dispatchers.Walk(t, func(node *dispatchers.Task) {
		for name, child := range node.Tasks {
			path := strings.TrimSpace(paths[node] + " " + name)
			paths[child] = path
			if child.Executable() || child.Resolve != nil || len(child.Tasks) == 0 {
				*out = append(*out, listed{path: path, task: child})
			}
		}
	})
}

func sortListed(cmds []listed) {
	sort.Slice(cmds, func(i, j int) bool {
		orderI, hasI := commandDisplayOrder[cmds[i].path]
		orderJ, hasJ := commandDisplayOrder[cmds[j].path]
		if hasI && hasJ && orderI != orderJ {
			return orderI < orderJ
		}
		if hasI != hasJ {
			return hasI
		}
		return cmds[i].path < cmds[j].path
	})
}

func writeFlags(out *strings.Builder, flags []Flag) {
	if len(flags) == 0 {
		return
	}
	out.WriteString(style.Header("FLAGS"))
	out.WriteString("\n")
	for _, f := range flags {
		name := strings.Join(f.Names, ", ")
		if f.ValueHint != "" {
			name = name + " " + f.ValueHint
		}
		fmt.Fprintf(out, "   %s  %s\n", style.Info(fmt.Sprintf("%-20s", name)), f.Description)
	}
	out.WriteString("\n")
}

// RenderHelp renders help for t. path is the command path from the root
// name, e.g. ["taskcmd", "config", "get"]; a single-element path renders
// the root listing.
func RenderHelp(t *dispatchers.Task, path []string, flags []Flag) string {
	var out strings.Builder
	program := path[0]

	if len(path) == 1 {
		out.WriteString(program)
		out.WriteString(" - ")
		out.WriteString(t.Summary)
		out.WriteString("\n\n")

		out.WriteString(style.Header("USAGE"))
		out.WriteString("\n   ")
		out.WriteString(formatUsage(t.Usage))
		out.WriteString("\n\n")

		var leaves []listed
		collectLeafCommands(t, "", &leaves)

		grouped := make(map[dispatchers.CommandCategory][]listed)
		for _, cmd := range leaves {
			grouped[cmd.task.Category] = append(grouped[cmd.task.Category], cmd)
		}

		for _, cat := range dispatchers.CategoryOrder() {
			cmds := grouped[cat]
			if len(cmds) == 0 {
				continue
			}

			out.WriteString(style.Header(cat.String()))
			out.WriteString("\n")

			sortListed(cmds)
			for _, cmd := range cmds {
				fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-16s", cmd.path)), cmd.task.Summary)
			}
			out.WriteString("\n")
		}

		writeFlags(&out, flags)

		fmt.Fprintf(&out, "See '%s help <command>' for detailed help on a specific command.\n", program)
		return out.String()
	}

	out.WriteString(strings.Join(path, " "))
	if t.Summary != "" {
		out.WriteString(" - ")
		out.WriteString(t.Summary)
	}
	out.WriteString("\n\n")

	if t.Usage != "" {
		out.WriteString(style.Header("USAGE"))
		out.WriteString("\n   ")
		out.WriteString(formatUsage(t.Usage))
		out.WriteString("\n\n")
	}

	if len(t.Tasks) > 0 {
		out.WriteString(style.Header("COMMANDS"))
		out.WriteString("\n")

		prefix := strings.Join(path[1:], " ")
		children := make([]listed, 0, len(t.Tasks))
		for name, child := range t.Tasks {
			children = append(children, listed{path: prefix + " " + name, task: child})
		}
		sortListed(children)

		for _, child := range children {
			fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-12s", child.task.Name)), child.task.Summary)
		}
		out.WriteString("\n")
	}

	writeFlags(&out, flags)

	return strings.TrimRight(out.String(), "\n") + "\n"
}

// helpFor builds the Help hook for t. Outside help mode, a leftover token
// means nothing below t matched it, so it is reported as unknown.
func helpFor(t *dispatchers.Task, path []string, flags []Flag) dispatchers.HelpFunc {
	return func(parsed *dispatchers.Parsed) (any, error) {
		if !slices.Contains(parsed.Positional, dispatchers.HelpToken) && len(parsed.Sliced) > 0 {
			arg := parsed.Sliced[0]
			return nil, usage.UnknownCommand(arg, dispatchers.FindSimilarCommands(arg, t, maxSuggestions)...)
		}
		return RenderHelp(t, path, flags), nil
	}
}
