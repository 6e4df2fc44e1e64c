package dispatchers

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/taskcmd/taskcmd/internal/log"
	"github.com/taskcmd/taskcmd/internal/usage"
)

// HelpToken switches Eval into help mode wherever it appears.
const HelpToken = "help"

const defaultSuggestionsCount = 3

var nextID atomic.Int64

// Dispatcher resolves parsed arguments against a task tree and runs the
// matched task through its lifecycle hooks.
//
// It is safe for concurrent use. Overlapping calls are independent; the
// running count is the only state they share.
type Dispatcher struct {
	id      int64
	logger  log.Sink
	running atomic.Int64

	mu        sync.RWMutex
	source    Source
	destroyed bool
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the diagnostic sink. The default is log.Default() at construction.
func WithLogger(sink log.Sink) Option {
	return func(d *Dispatcher) {
		if sink != nil {
			d.logger = sink
		}
	}
}

// New creates a dispatcher over src. src is not validated.
func New(src Source, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		id:     nextID.Add(1),
		source: src,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NewStatic creates a dispatcher over a fixed tree.
func NewStatic(root *Task, opts ...Option) *Dispatcher {
	return New(Static(root), opts...)
}

// ID returns the process-unique identifier assigned at construction.
func (d *Dispatcher) ID() int64 {
	return d.id
}

// Destroy makes the dispatcher unusable and drops its task source.
// Calls already past their destroyed check finish normally.
func (d *Dispatcher) Destroy() {
	d.logger.Log("Dispatcher(%d)#destroy", d.id)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.destroyed = true
	d.source = nil
}

// Destroyed reports whether Destroy has been called.
func (d *Dispatcher) Destroyed() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.destroyed
}

// IsRunning reports whether at least one Run is in flight.
func (d *Dispatcher) IsRunning() bool {
	return d.running.Load() > 0
}

// EvalArgs is Eval for a raw token list.
func (d *Dispatcher) EvalArgs(ctx context.Context, tokens []string) (*Result, error) {
	return d.Eval(ctx, &Parsed{Positional: tokens})
}

// Eval resolves parsed against the task tree, then runs the effective task
// or returns its help. A nil parsed is treated as no arguments.
//
// Every positional token is tried as a child of the last matched task.
// Tokens that match nothing are skipped; a "help" token anywhere switches
// to help mode for whatever ends up matched.
func (d *Dispatcher) Eval(ctx context.Context, parsed *Parsed) (*Result, error) {
	if parsed == nil {
		parsed = &Parsed{}
	}

	label := fmt.Sprintf("Dispatcher(%d)#eval %s", d.id, uuid.NewString())
	d.logger.Time(label)
	defer d.logger.TimeEnd(label)

	d.logger.Log("Dispatcher(%d)#eval::input %v", d.id, parsed.Positional)

	d.mu.RLock()
	src, destroyed := d.source, d.destroyed
	d.mu.RUnlock()
	if destroyed {
		return nil, usage.Destroyed()
	}

	var root *Task
	if src != nil {
		root = src(parsed)
	}
	path := []*Task{rootOf(root)}
	callHelp := false

	for _, arg := range parsed.Positional {
		if arg == HelpToken {
			callHelp = true
			d.logger.Log("Dispatcher(%d)#eval::callHelp", d.id)
			continue
		}

		sub := path[len(path)-1].child(parsed, arg)
		if sub == nil {
			continue
		}

		d.logger.Log("Dispatcher(%d)#eval:match::arg %s", d.id, arg)
		path = append(path, matched(sub, arg))
	}

	task := Merge(path...)

	// The root consumes no token, so executing strips one fewer than the path length.
	consumed := len(path) - 1
	if callHelp {
		consumed = len(path)
	}
	parsed2 := parsed.Clone()
	parsed2.Sliced = sliceFrom(parsed.Positional, consumed)

	if !callHelp && task.Executable() {
		return d.Run(ctx, task, parsed2)
	}
	if task.HasHelp() {
		return d.Help(task, parsed2)
	}

	d.logger.Error("Dispatcher(%d)#eval:invalid", d.id)

	first := parsed.First()
	return nil, usage.UnknownCommand(first, FindSimilarCommands(first, path[0], defaultSuggestionsCount)...)
}

// Help returns task's help output for parsed.
func (d *Dispatcher) Help(task *Task, parsed *Parsed) (*Result, error) {
	d.logger.Log("Dispatcher(%d)#help::arg %q", d.id, argOf(task))

	if d.Destroyed() {
		return nil, usage.Destroyed()
	}
	if !task.HasHelp() {
		return nil, usage.UnknownCommand(argOf(task))
	}

	output, err := task.Help(parsed)
	if err != nil {
		return nil, err
	}

	return &Result{
		Task:   task,
		Parsed: parsed,
		Output: output,
	}, nil
}

// Run executes task with parsed through its hooks:
// pre, check, beforeExecute, execute, afterExecute, format.
// The first failing stage aborts the rest and its error is returned as is.
func (d *Dispatcher) Run(ctx context.Context, task *Task, parsed *Parsed) (*Result, error) {
	d.logger.Log("Dispatcher(%d)#run::arg %q", d.id, argOf(task))

	if d.Destroyed() {
		return nil, usage.Destroyed()
	}
	if !task.Executable() {
		return nil, usage.UnknownCommand(argOf(task))
	}

	d.running.Add(1)
	defer d.running.Add(-1)

	if task.Pre != nil {
		next, err := task.Pre(parsed)
		if err != nil {
			return nil, err
		}
		if next != nil {
			parsed = next
		}
	}

	if task.Check != nil {
		ok, err := task.Check(parsed)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, usage.InvalidArguments()
		}
	}

	if task.BeforeExecute != nil {
		if err := task.BeforeExecute(parsed); err != nil {
			return nil, err
		}
	}

	result, err := task.Execute(ctx, parsed)
	if err != nil {
		return nil, err
	}

	if task.AfterExecute != nil {
		result, err = task.AfterExecute(parsed, result)
		if err != nil {
			return nil, err
		}
	}

	output := result
	if Truthy(result) && task.Format != nil {
		output, err = task.Format(parsed, result)
		if err != nil {
			return nil, err
		}
	}

	return &Result{
		Task:   task,
		Parsed: parsed,
		Result: result,
		Output: output,
	}, nil
}

func argOf(task *Task) string {
	if task == nil {
		return ""
	}
	return task.Arg
}

func sliceFrom(tokens []string, n int) []string {
	if n >= len(tokens) {
		return []string{}
	}
	return append([]string{}, tokens[n:]...)
}
