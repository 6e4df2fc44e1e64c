package dispatchers

// GroupSpec describes a task that only holds children.
type GroupSpec struct {
	Name     string
	Parent   *Task
	Summary  string
	Usage    string
	Category CommandCategory
}

// CommandSpec describes an executable task.
type CommandSpec struct {
	Name          string
	Parent        *Task
	Summary       string
	Usage         string
	Category      CommandCategory
	Execute       ExecuteFunc
	Pre           PreFunc
	Check         CheckFunc
	BeforeExecute BeforeExecuteFunc
	AfterExecute  AfterExecuteFunc
	Format        FormatFunc
}

// NewTask creates a task and, when parent is non-nil, registers it as a
// static child of parent under name.
func NewTask(name string, parent *Task, summary string, usage string) *Task {
	t := &Task{
		Name:    name,
		Summary: summary,
		Usage:   usage,
		Tasks:   make(map[string]*Task),
	}

	if parent != nil {
		if parent.Tasks == nil {
			parent.Tasks = make(map[string]*Task)
		}
		parent.Tasks[name] = t
	}

	return t
}

// Root creates a root task.
func Root(name, summary, usage string) *Task {
	t := NewTask(name, nil, summary, usage)
	t.Root = true
	return t
}

// Group creates a task that only holds children.
func Group(spec GroupSpec) *Task {
	t := NewTask(spec.Name, spec.Parent, spec.Summary, spec.Usage)
	t.Category = spec.Category
	return t
}

// Command creates an executable task.
func Command(spec CommandSpec) *Task {
	t := NewTask(spec.Name, spec.Parent, spec.Summary, spec.Usage)

	t.Category = spec.Category
	t.Execute = spec.Execute
	t.Pre = spec.Pre
	t.Check = spec.Check
	t.BeforeExecute = spec.BeforeExecute
	t.AfterExecute = spec.AfterExecute
	t.Format = spec.Format
	return t
}

// Walk calls fn for t and every static descendant, depth-first pre-order.
// Children are visited in no particular order.
func Walk(t *Task, fn func(*Task)) {
	if t == nil {
		return
	}
	fn(t)
	for _, child := range t.Tasks {
		Walk(child, fn)
	}
}
