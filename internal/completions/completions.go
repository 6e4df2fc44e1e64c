package completions

import (
	"fmt"
	"io"
	"sort"

	"github.com/taskcmd/taskcmd/internal/dispatchers"
)

// CommandInfo represents a command extracted from the task tree
type CommandInfo struct {
	Name        string
	Path        []string // Full path from root (e.g., ["taskcmd", "config", "set"])
	Summary     string
	Subcommands []string
}

// ExtractCommands walks the static task tree and extracts all commands.
// Children resolved at eval time are not known here and are left out.
func ExtractCommands(root *dispatchers.Task) []CommandInfo {
	var commands []CommandInfo
	if root != nil {
		extractTask(root, []string{root.Name}, &commands)
	}
	return commands
}

func extractTask(t *dispatchers.Task, path []string, commands *[]CommandInfo) {
	subcommands := make([]string, 0, len(t.Tasks))
	for name := range t.Tasks {
		subcommands = append(subcommands, name)
	}
	sort.Strings(subcommands)

	*commands = append(*commands, CommandInfo{
		Name:        t.Name,
		Path:        path,
		Summary:     t.Summary,
		Subcommands: subcommands,
	})

	for _, name := range subcommands {
		childPath := append(append([]string{}, path...), name)
		extractTask(t.Tasks[name], childPath, commands)
	}
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

// PrintCompletions writes the completion script for the given shell to w
func PrintCompletions(w io.Writer, shell Shell, root *dispatchers.Task) error {
	script, err := Script(shell, root)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, script)
	return err
}

// Script returns the completion script for shell.
func Script(shell Shell, root *dispatchers.Task) (string, error) {
	if root == nil {
		return "", fmt.Errorf("command tree not registered")
	}

	commands := ExtractCommands(root)
	switch shell {
	case ShellBash:
		return GenerateBash(commands), nil
	case ShellZsh:
		return GenerateZsh(commands), nil
	case ShellFish:
		return GenerateFish(commands), nil
	default:
		return "", fmt.Errorf("unsupported shell: %s", shell)
	}
}
