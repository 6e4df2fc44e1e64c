package actions

import (
	"context"
	"fmt"

	"github.com/taskcmd/taskcmd/internal/completions"
	"github.com/taskcmd/taskcmd/internal/dispatchers"
)

// Completions prints the completion script for the shell named by the
// first argument, or for $SHELL when none is given. root is read at call
// time, so it may be the tree that contains this command.
func Completions(root *dispatchers.Task, deps Deps) dispatchers.ExecuteFunc {
	return func(_ context.Context, parsed *dispatchers.Parsed) (any, error) {
		return completionsCmd(parsed, root, deps)
	}
}

func completionsCmd(parsed *dispatchers.Parsed, root *dispatchers.Task, deps Deps) (any, error) {
	name := ""
	if len(parsed.Sliced) > 0 {
		name = parsed.Sliced[0]
	} else if env, ok := deps.LookupEnv("SHELL"); ok {
		name = env
	}

	if name == "" {
		return nil, fmt.Errorf("could not detect shell, specify one: taskcmd completions <bash|zsh|fish>")
	}

	shell, ok := completions.ParseShell(name)
	if !ok {
		return nil, fmt.Errorf("unsupported shell: %s (use bash, zsh, or fish)", name)
	}

	return completions.Script(shell, root)
}
