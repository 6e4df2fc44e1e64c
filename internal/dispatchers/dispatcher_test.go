package dispatchers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taskcmd/taskcmd/internal/usage"
)

// recordingSink captures diagnostic calls for assertions.
type recordingSink struct {
	mu      sync.Mutex
	entries []string
}

func (s *recordingSink) add(kind, format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, kind+" "+fmt.Sprintf(format, args...))
}

func (s *recordingSink) Error(format string, args ...any) { s.add("error", format, args...) }
func (s *recordingSink) Log(format string, args ...any)   { s.add("log", format, args...) }
func (s *recordingSink) Warn(format string, args ...any)  { s.add("warn", format, args...) }
func (s *recordingSink) Time(label string)                { s.add("time", "%s", label) }
func (s *recordingSink) TimeEnd(label string)             { s.add("timeEnd", "%s", label) }

func constExec(v any) ExecuteFunc {
	return func(context.Context, *Parsed) (any, error) { return v, nil }
}

func constHelp(v any) HelpFunc {
	return func(*Parsed) (any, error) { return v, nil }
}

var errNotANumber = errors.New("Not a number")

// createTestTree mirrors the root -> a -> ab tree used throughout these tests.
func createTestTree() *Task {
	ab := &Task{
		Pre: func(p *Parsed) (*Parsed, error) {
			next := p.Clone()
			next.Set("extra", "extra")
			return next, nil
		},
		Check: func(p *Parsed) (bool, error) {
			if _, ok := p.Number("num"); !ok {
				return false, errNotANumber
			}
			return true, nil
		},
		BeforeExecute: func(p *Parsed) error {
			p.Set("extra", "extra2")
			return nil
		},
		Execute: constExec("Execute_AB"),
		AfterExecute: func(_ *Parsed, res any) (any, error) {
			return fmt.Sprintf("%v_X", res), nil
		},
		Format: func(_ *Parsed, res any) (any, error) {
			return fmt.Sprintf("%v_Y", res), nil
		},
		Help: constHelp("Help_AB"),
	}

	return &Task{
		Execute: constExec("Execute_Root"),
		Help:    constHelp("Help_Root"),
		Tasks: map[string]*Task{
			"a": {
				Execute: constExec("Execute_A"),
				Help:    constHelp("Help_A"),
				Tasks:   map[string]*Task{"ab": ab},
			},
		},
	}
}

func newTestDispatcher() *Dispatcher {
	return NewStatic(createTestTree())
}

func TestEval_Help(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []string
		wantArg  string
		wantRoot bool
		want     string
	}{
		{name: "help", tokens: []string{"help"}, wantRoot: true, want: "Help_Root"},
		{name: "help a", tokens: []string{"help", "a"}, wantArg: "a", want: "Help_A"},
		{name: "help a ab", tokens: []string{"help", "a", "ab"}, wantArg: "ab", want: "Help_AB"},
		{name: "a help ab", tokens: []string{"a", "help", "ab"}, wantArg: "ab", want: "Help_AB"},
		{name: "a ab help", tokens: []string{"a", "ab", "help"}, wantArg: "ab", want: "Help_AB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDispatcher()

			res, err := d.EvalArgs(context.Background(), tt.tokens)
			require.NoError(t, err)
			require.Equal(t, tt.want, res.Output)
			require.Nil(t, res.Result)
			require.Equal(t, tt.wantArg, res.Task.Arg)
			require.Equal(t, tt.wantRoot, res.Task.Root)
			require.False(t, d.IsRunning())
		})
	}
}

func TestEval_HelpNeverExecutes(t *testing.T) {
	executed := false
	root := &Task{
		Execute: func(context.Context, *Parsed) (any, error) {
			executed = true
			return "x", nil
		},
		Help: constHelp("help"),
	}

	res, err := NewStatic(root).EvalArgs(context.Background(), []string{"help"})
	require.NoError(t, err)
	require.Equal(t, "help", res.Output)
	require.False(t, executed)
}

func TestEval_RunRoot(t *testing.T) {
	d := newTestDispatcher()

	res, err := d.Eval(context.Background(), nil)
	require.NoError(t, err)
	require.True(t, res.Task.Root)
	require.Equal(t, "Execute_Root", res.Result)
	require.Equal(t, "Execute_Root", res.Output)
}

func TestEval_RunRootWithOptions(t *testing.T) {
	d := newTestDispatcher()

	res, err := d.Eval(context.Background(), NewParsed([]string{}, map[string]any{"opt": "opt"}))
	require.NoError(t, err)
	require.True(t, res.Task.Root)
	require.Equal(t, "opt", res.Parsed.String("opt", ""))
	require.Equal(t, "Execute_Root", res.Result)
}

func TestEval_RunChild(t *testing.T) {
	d := newTestDispatcher()

	res, err := d.Eval(context.Background(), Args("a"))
	require.NoError(t, err)
	require.Equal(t, "a", res.Task.Arg)
	require.False(t, res.Task.Root)
	require.Equal(t, "Execute_A", res.Result)
	require.Equal(t, "Execute_A", res.Output)
}

func TestEval_RunFullLifecycle(t *testing.T) {
	d := newTestDispatcher()
	input := NewParsed([]string{"a", "ab"}, map[string]any{"num": 12})

	res, err := d.Eval(context.Background(), input)
	require.NoError(t, err)
	require.Equal(t, "ab", res.Task.Arg)
	require.Equal(t, "extra2", res.Parsed.String("extra", ""))
	require.Equal(t, "Execute_AB_X", res.Result)
	require.Equal(t, "Execute_AB_X_Y", res.Output)

	// The caller's input is never modified
	_, hasExtra := input.Get("extra")
	require.False(t, hasExtra)
	require.Nil(t, input.Sliced)
	require.False(t, d.IsRunning())
}

func TestEval_CheckErrorPropagates(t *testing.T) {
	d := newTestDispatcher()

	res, err := d.Eval(context.Background(), NewParsed([]string{"a", "ab"}, map[string]any{"num": "num"}))
	require.Nil(t, res)
	require.ErrorIs(t, err, errNotANumber)
	require.Equal(t, "Not a number", err.Error())
	require.False(t, d.IsRunning())
}

func TestEval_CheckFalseIsInvalidArguments(t *testing.T) {
	root := &Task{
		Check:   func(p *Parsed) (bool, error) { _, ok := p.Number("num"); return ok, nil },
		Execute: constExec("never"),
	}
	d := NewStatic(root)

	res, err := d.Eval(context.Background(), NewParsed(nil, map[string]any{"num": "x"}))
	require.Nil(t, res)
	require.EqualError(t, err, "Invalid arguments")
	require.ErrorIs(t, err, usage.InvalidArguments())
	require.Equal(t, usage.ErrInvalidArguments, usage.KindOf(err))
	require.False(t, d.IsRunning())
}

func TestEval_UnmatchedTokensAreIgnored(t *testing.T) {
	d := newTestDispatcher()

	// "bogus" stops nothing; "ab" is still looked up under "a"
	res, err := d.Eval(context.Background(), NewParsed([]string{"a", "bogus", "ab"}, map[string]any{"num": 1}))
	require.NoError(t, err)
	require.Equal(t, "ab", res.Task.Arg)
	require.Equal(t, "Execute_AB_X_Y", res.Output)

	// "ab" is not a root child, so it is ignored and the root runs
	res, err = d.EvalArgs(context.Background(), []string{"ab"})
	require.NoError(t, err)
	require.True(t, res.Task.Root)
	require.Equal(t, "Execute_Root", res.Output)
}

func TestEval_Sliced(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   []string
	}{
		{name: "root no args", tokens: nil, want: []string{}},
		{name: "root with extra args", tokens: []string{"x", "y"}, want: []string{"x", "y"}},
		{name: "child strips one", tokens: []string{"a", "x"}, want: []string{"x"}},
		{name: "help root strips one", tokens: []string{"help", "x"}, want: []string{"x"}},
		{name: "help child strips two", tokens: []string{"a", "help", "x"}, want: []string{"x"}},
		{name: "help consumes all", tokens: []string{"a", "ab", "help"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen []string
			leaf := &Task{
				Execute: func(_ context.Context, p *Parsed) (any, error) { return "ok", nil },
				Help:    func(p *Parsed) (any, error) { seen = p.Sliced; return "help", nil },
			}
			root := &Task{
				Execute: func(_ context.Context, p *Parsed) (any, error) { seen = p.Sliced; return "ok", nil },
				Help:    func(p *Parsed) (any, error) { seen = p.Sliced; return "help", nil },
				Tasks: map[string]*Task{
					"a": {
						Execute: func(_ context.Context, p *Parsed) (any, error) { seen = p.Sliced; return "ok", nil },
						Tasks:   map[string]*Task{"ab": leaf},
					},
				},
			}

			res, err := NewStatic(root).EvalArgs(context.Background(), tt.tokens)
			require.NoError(t, err)
			require.Equal(t, tt.want, seen)
			require.Equal(t, tt.want, res.Parsed.Sliced)
		})
	}
}

func TestEval_DynamicChildren(t *testing.T) {
	var calls []string
	root := &Task{
		Help: constHelp("root"),
		Resolve: func(p *Parsed, arg string) *Task {
			calls = append(calls, arg)
			if arg == "skip" {
				return nil
			}
			return &Task{
				Execute: func(_ context.Context, p *Parsed) (any, error) {
					return "run " + arg, nil
				},
			}
		},
	}

	res, err := NewStatic(root).EvalArgs(context.Background(), []string{"skip", "deploy"})
	require.NoError(t, err)
	require.Equal(t, "run deploy", res.Output)
	require.Equal(t, "deploy", res.Task.Arg)
	require.Equal(t, []string{"skip", "deploy"}, calls, "resolver must be called once per candidate token")
}

func TestEval_ResolveWinsOverTasks(t *testing.T) {
	root := &Task{
		Tasks:   map[string]*Task{"a": {Execute: constExec("static")}},
		Resolve: func(*Parsed, string) *Task { return &Task{Execute: constExec("dynamic")} },
	}

	res, err := NewStatic(root).EvalArgs(context.Background(), []string{"a"})
	require.NoError(t, err)
	require.Equal(t, "dynamic", res.Output)
}

func TestEval_SourceFunctionReceivesInput(t *testing.T) {
	var got *Parsed
	src := func(p *Parsed) *Task {
		got = p
		if p.Has("admin") {
			return &Task{Execute: constExec("admin")}
		}
		return &Task{Execute: constExec("user")}
	}
	d := New(src)

	input := NewParsed(nil, map[string]any{"admin": true})
	res, err := d.Eval(context.Background(), input)
	require.NoError(t, err)
	require.Same(t, input, got)
	require.Equal(t, "admin", res.Output)

	res, err = d.EvalArgs(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, "user", res.Output)
}

func TestEval_UnknownCommand(t *testing.T) {
	root := &Task{Tasks: map[string]*Task{"deploy": {Execute: constExec("x")}}}
	d := NewStatic(root)

	res, err := d.EvalArgs(context.Background(), []string{"dploy"})
	require.Nil(t, res)
	require.EqualError(t, err, "Not a recognized command: 'dploy'")

	var ue *usage.Error
	require.ErrorAs(t, err, &ue)
	require.Equal(t, usage.ErrUnknownCommand, ue.Kind)
	require.Equal(t, []string{"deploy"}, ue.Suggestions)
}

func TestEval_NilSource(t *testing.T) {
	d := New(nil)

	_, err := d.EvalArgs(context.Background(), []string{"x"})
	require.EqualError(t, err, "Not a recognized command: 'x'")

	d = New(func(*Parsed) *Task { return nil })
	_, err = d.EvalArgs(context.Background(), nil)
	require.EqualError(t, err, "Not a recognized command: ''")
}

func TestEval_NodesAreNotMutated(t *testing.T) {
	tree := createTestTree()
	a := tree.Tasks["a"]
	d := NewStatic(tree)

	_, err := d.EvalArgs(context.Background(), []string{"a", "help"})
	require.NoError(t, err)

	require.False(t, tree.Root)
	require.Equal(t, "", a.Arg)
	require.Len(t, a.Tasks, 1)
}

func TestRun_StageOrderAndErrors(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name      string
		failAt    string
		wantStage []string
	}{
		{name: "success", failAt: "", wantStage: []string{"pre", "check", "before", "execute", "after", "format"}},
		{name: "pre fails", failAt: "pre", wantStage: []string{"pre"}},
		{name: "check fails", failAt: "check", wantStage: []string{"pre", "check"}},
		{name: "before fails", failAt: "before", wantStage: []string{"pre", "check", "before"}},
		{name: "execute fails", failAt: "execute", wantStage: []string{"pre", "check", "before", "execute"}},
		{name: "after fails", failAt: "after", wantStage: []string{"pre", "check", "before", "execute", "after"}},
		{name: "format fails", failAt: "format", wantStage: []string{"pre", "check", "before", "execute", "after", "format"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stages []string
			step := func(name string) error {
				stages = append(stages, name)
				if name == tt.failAt {
					return boom
				}
				return nil
			}

			task := &Task{
				Pre:           func(p *Parsed) (*Parsed, error) { return nil, step("pre") },
				Check:         func(*Parsed) (bool, error) { return true, step("check") },
				BeforeExecute: func(*Parsed) error { return step("before") },
				Execute:       func(context.Context, *Parsed) (any, error) { return "r", step("execute") },
				AfterExecute:  func(_ *Parsed, r any) (any, error) { return r, step("after") },
				Format:        func(_ *Parsed, r any) (any, error) { return r, step("format") },
			}

			d := NewStatic(task)
			res, err := d.Run(context.Background(), task, Args())

			require.Equal(t, tt.wantStage, stages)
			require.False(t, d.IsRunning())
			if tt.failAt == "" {
				require.NoError(t, err)
				require.Equal(t, "r", res.Output)
				return
			}
			require.Nil(t, res)
			require.Same(t, boom, err, "errors must not be wrapped")
		})
	}
}

func TestRun_PreReplacesParsed(t *testing.T) {
	replacement := Args("replaced")
	var seen *Parsed
	task := &Task{
		Pre:     func(*Parsed) (*Parsed, error) { return replacement, nil },
		Execute: func(_ context.Context, p *Parsed) (any, error) { seen = p; return 1, nil },
	}

	res, err := NewStatic(task).Run(context.Background(), task, Args("orig"))
	require.NoError(t, err)
	require.Same(t, replacement, seen)
	require.Same(t, replacement, res.Parsed)
}

func TestRun_FormatSkippedForFalsyResult(t *testing.T) {
	formatted := false
	task := &Task{
		Execute: constExec(""),
		Format: func(*Parsed, any) (any, error) {
			formatted = true
			return "formatted", nil
		},
	}

	res, err := NewStatic(task).Run(context.Background(), task, Args())
	require.NoError(t, err)
	require.False(t, formatted)
	require.Equal(t, "", res.Result)
	require.Equal(t, "", res.Output)
}

func TestRun_ContextReachesExecute(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")
	task := &Task{
		Execute: func(ctx context.Context, _ *Parsed) (any, error) { return ctx.Value(key{}), nil },
	}

	res, err := NewStatic(task).Run(ctx, task, Args())
	require.NoError(t, err)
	require.Equal(t, "v", res.Output)
}

func TestRun_PanicStillDecrements(t *testing.T) {
	task := &Task{Execute: func(context.Context, *Parsed) (any, error) { panic("boom") }}
	d := NewStatic(task)

	require.Panics(t, func() {
		_, _ = d.Run(context.Background(), task, Args())
	})
	require.False(t, d.IsRunning())
}

func TestRun_NotExecutable(t *testing.T) {
	d := NewStatic(&Task{})

	_, err := d.Run(context.Background(), &Task{Arg: "x"}, Args())
	require.Equal(t, usage.ErrUnknownCommand, usage.KindOf(err))

	_, err = d.Help(&Task{Arg: "x"}, Args())
	require.Equal(t, usage.ErrUnknownCommand, usage.KindOf(err))
}

func TestHelp_ErrorPropagates(t *testing.T) {
	boom := errors.New("no help today")
	task := &Task{Help: func(*Parsed) (any, error) { return nil, boom }}

	res, err := NewStatic(task).Help(task, Args())
	require.Nil(t, res)
	require.Same(t, boom, err)
}

func TestIsRunning_TracksOverlappingRuns(t *testing.T) {
	started := make(chan struct{}, 2)
	release := make(chan struct{})

	task := &Task{
		Execute: func(context.Context, *Parsed) (any, error) {
			started <- struct{}{}
			<-release
			return "done", nil
		},
	}
	d := NewStatic(task)
	require.False(t, d.IsRunning())

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := d.EvalArgs(context.Background(), nil); err != nil {
				t.Error(err)
			}
		}()
	}

	<-started
	<-started
	require.True(t, d.IsRunning())
	require.EqualValues(t, 2, d.running.Load())

	close(release)
	wg.Wait()
	require.False(t, d.IsRunning())
}

func TestDestroy(t *testing.T) {
	d := newTestDispatcher()
	task := Merge(createTestTree())

	d.Destroy()
	d.Destroy() // idempotent

	require.True(t, d.Destroyed())

	_, err := d.EvalArgs(context.Background(), []string{"a"})
	require.EqualError(t, err, "Command destroyed")
	require.ErrorIs(t, err, usage.Destroyed())

	_, err = d.Run(context.Background(), task, Args())
	require.ErrorIs(t, err, usage.Destroyed())

	_, err = d.Help(task, Args())
	require.ErrorIs(t, err, usage.Destroyed())

	require.False(t, d.IsRunning())
}

func TestDestroy_InFlightRunFinishes(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	task := &Task{
		Execute: func(context.Context, *Parsed) (any, error) {
			close(started)
			<-release
			return "finished", nil
		},
	}
	d := NewStatic(task)

	type outcome struct {
		res *Result
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := d.EvalArgs(context.Background(), nil)
		done <- outcome{res, err}
	}()

	<-started
	d.Destroy()
	close(release)

	got := <-done
	require.NoError(t, got.err)
	require.Equal(t, "finished", got.res.Output)
	require.False(t, d.IsRunning())
}

func TestNew_AssignsIncreasingIDs(t *testing.T) {
	a := New(nil)
	b := New(nil)

	require.Greater(t, b.ID(), a.ID())
}

func TestWithLogger(t *testing.T) {
	sink := &recordingSink{}
	d := NewStatic(createTestTree(), WithLogger(sink))

	_, err := d.EvalArgs(context.Background(), []string{"a", "help"})
	require.NoError(t, err)

	_, err = NewStatic(&Task{}, WithLogger(sink)).EvalArgs(context.Background(), []string{"nope"})
	require.Error(t, err)

	d.Destroy()

	sink.mu.Lock()
	defer sink.mu.Unlock()

	joined := fmt.Sprint(sink.entries)
	require.Contains(t, joined, "#eval:match::arg a")
	require.Contains(t, joined, "#eval::callHelp")
	require.Contains(t, joined, "error Dispatcher(")
	require.Contains(t, joined, "#destroy")
	require.Equal(t, "time", sink.entries[0][:4])
}
