package dispatchers

import "context"

// ExecuteFunc runs a task. Its presence marks a task as executable.
type ExecuteFunc func(ctx context.Context, parsed *Parsed) (any, error)

// HelpFunc produces help output. Its presence marks a task as help-capable.
type HelpFunc func(parsed *Parsed) (any, error)

// PreFunc transforms the parsed arguments before anything else runs.
// Returning a nil *Parsed keeps the input unchanged.
type PreFunc func(parsed *Parsed) (*Parsed, error)

// CheckFunc validates the parsed arguments. false aborts with InvalidArguments.
type CheckFunc func(parsed *Parsed) (bool, error)

// BeforeExecuteFunc runs just before Execute. It may mutate parsed in place.
type BeforeExecuteFunc func(parsed *Parsed) error

// AfterExecuteFunc post-processes the raw execute result.
type AfterExecuteFunc func(parsed *Parsed, result any) (any, error)

// FormatFunc turns a result into display output. Only called for truthy results.
type FormatFunc func(parsed *Parsed, result any) (any, error)

// ResolveFunc looks up a child dynamically, e.g. for wildcard subcommands.
// A nil return means arg did not match.
type ResolveFunc func(parsed *Parsed, arg string) *Task

// Task is a node in the dispatch tree. Every hook is optional.
//
// Children come from Resolve when set, otherwise from Tasks.
type Task struct {
	Name     string
	Summary  string
	Usage    string
	Category CommandCategory

	Tasks   map[string]*Task
	Resolve ResolveFunc

	Execute       ExecuteFunc
	Help          HelpFunc
	Pre           PreFunc
	Check         CheckFunc
	BeforeExecute BeforeExecuteFunc
	AfterExecute  AfterExecuteFunc
	Format        FormatFunc

	// Set on the effective task during resolution.
	Root bool
	Arg  string
}

// Source produces the root task for an invocation.
type Source func(parsed *Parsed) *Task

// Static returns a Source that always yields root.
func Static(root *Task) Source {
	return func(*Parsed) *Task {
		return root
	}
}

// Executable reports whether the task has an Execute hook.
func (t *Task) Executable() bool {
	return t != nil && t.Execute != nil
}

// HasHelp reports whether the task has a Help hook.
func (t *Task) HasHelp() bool {
	return t != nil && t.Help != nil
}

// child looks up the child matching arg, or nil.
func (t *Task) child(parsed *Parsed, arg string) *Task {
	if t == nil {
		return nil
	}
	if t.Resolve != nil {
		return t.Resolve(parsed, arg)
	}
	return t.Tasks[arg]
}

// Result is what Eval, Run and Help return on success.
// Result is only set on the run path.
type Result struct {
	Task   *Task
	Parsed *Parsed
	Result any
	Output any
}
