package cli

import (
	"github.com/taskcmd/taskcmd/internal/actions"
	"github.com/taskcmd/taskcmd/internal/dispatchers"
)

// ProgramName is the root task name and the first word of every usage line.
const ProgramName = "taskcmd"

// BuildTree assembles the command tree. Every task gets a Help hook
// rendered from its own metadata, and every command checks its options.
func BuildTree(deps actions.Deps) *dispatchers.Task {
	root := dispatchers.Root(
		ProgramName,
		"Dispatch commands through a tree of tasks",
		"taskcmd <command> [args] [flags]",
	)
	describe(root, []string{ProgramName}, RootFlags)

	version := dispatchers.Command(dispatchers.CommandSpec{
		Name:     "version",
		Parent:   root,
		Summary:  "Show taskcmd version",
		Usage:    "taskcmd version",
		Category: dispatchers.CategoryInfo,
		Execute:  actions.ShowVersion(deps),
	})
	describe(version, []string{ProgramName, "version"}, nil)

	buildConfig(root, deps)
	buildEnv(root, deps)

	sum := dispatchers.Command(dispatchers.CommandSpec{
		Name:         "sum",
		Parent:       root,
		Summary:      "Add numbers from arguments and --num options",
		Usage:        "taskcmd sum [<n>...] [--num=<n>...]",
		Category:     dispatchers.CategoryUtility,
		Pre:          actions.SumPre,
		Check:        actions.SumCheck,
		Execute:      actions.Sum,
		AfterExecute: actions.SumRound,
		Format:       actions.SumFormat,
	})
	describe(sum, []string{ProgramName, "sum"}, SumFlags)

	completions := dispatchers.Command(dispatchers.CommandSpec{
		Name:     "completions",
		Parent:   root,
		Summary:  "Print a shell completion script",
		Usage:    "taskcmd completions [bash|zsh|fish]",
		Category: dispatchers.CategoryUtility,
		Execute:  actions.Completions(root, deps),
	})
	describe(completions, []string{ProgramName, "completions"}, nil)

	return root
}

func buildConfig(root *dispatchers.Task, deps actions.Deps) {
	config := dispatchers.Group(dispatchers.GroupSpec{
		Name:     "config",
		Parent:   root,
		Summary:  "Manage configuration",
		Usage:    "taskcmd config <command>",
		Category: dispatchers.CategoryConfig,
	})
	describe(config, []string{ProgramName, "config"}, nil)

	get := dispatchers.Command(dispatchers.CommandSpec{
		Name:     "get",
		Parent:   config,
		Summary:  "Get a config value",
		Usage:    "taskcmd config get <key>",
		Category: dispatchers.CategoryConfig,
		Execute:  actions.ConfigGet(deps),
	})
	describe(get, []string{ProgramName, "config", "get"}, ConfigKeyFlags)

	set := dispatchers.Command(dispatchers.CommandSpec{
		Name:     "set",
		Parent:   config,
		Summary:  "Set a config value",
		Usage:    "taskcmd config set <key> <value>",
		Category: dispatchers.CategoryConfig,
		Execute:  actions.ConfigSet(deps),
	})
	describe(set, []string{ProgramName, "config", "set"}, ConfigSetFlags)

	unset := dispatchers.Command(dispatchers.CommandSpec{
		Name:     "unset",
		Parent:   config,
		Summary:  "Restore a config value to its default",
		Usage:    "taskcmd config unset <key>",
		Category: dispatchers.CategoryConfig,
		Execute:  actions.ConfigUnset(deps),
	})
	describe(unset, []string{ProgramName, "config", "unset"}, ConfigKeyFlags)

	list := dispatchers.Command(dispatchers.CommandSpec{
		Name:     "list",
		Parent:   config,
		Summary:  "List config values",
		Usage:    "taskcmd config list",
		Category: dispatchers.CategoryConfig,
		Execute:  actions.ConfigList(deps),
		Format:   actions.FormatEntries,
	})
	describe(list, []string{ProgramName, "config", "list"}, nil)
}

// buildEnv adds "env", whose children are resolved on demand: any set
// environment variable name matches.
func buildEnv(root *dispatchers.Task, deps actions.Deps) {
	env := dispatchers.Command(dispatchers.CommandSpec{
		Name:     "env",
		Parent:   root,
		Summary:  "List environment variables or print one",
		Usage:    "taskcmd env [<name>]",
		Category: dispatchers.CategoryEnvironment,
		Execute:  actions.EnvList(deps),
	})
	describe(env, []string{ProgramName, "env"}, nil)

	env.Resolve = func(_ *dispatchers.Parsed, arg string) *dispatchers.Task {
		if _, ok := deps.LookupEnv(arg); !ok {
			return nil
		}

		child := &dispatchers.Task{
			Name:     arg,
			Summary:  "Print the value of $" + arg,
			Usage:    "taskcmd env " + arg,
			Category: dispatchers.CategoryEnvironment,
			Execute:  actions.EnvValue(deps, arg),
		}
		describe(child, []string{ProgramName, "env", arg}, nil)
		return child
	}
}

// describe attaches help to t and, when t runs, the check that its
// options are among flags.
func describe(t *dispatchers.Task, path []string, flags []Flag) {
	t.Help = helpFor(t, path, flags)
	if t.Executable() {
		t.Pre = rejectUndeclared(t.Pre, flags)
	}
}
