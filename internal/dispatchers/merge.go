package dispatchers

import (
	"math"
	"reflect"
)

// Merge builds the effective task from a resolution path, root first.
// Each later task overrides the fields it sets. Tasks and Resolve are
// resolution-only and are left empty on the result. The inputs are not modified.
func Merge(path ...*Task) *Task {
	out := &Task{}

	for _, t := range path {
		if t == nil {
			continue
		}

		if t.Name != "" {
			out.Name = t.Name
		}
		if t.Summary != "" {
			out.Summary = t.Summary
		}
		if t.Usage != "" {
			out.Usage = t.Usage
		}
		if t.Category != CategoryUncategorized {
			out.Category = t.Category
		}

		if t.Execute != nil {
			out.Execute = t.Execute
		}
		if t.Help != nil {
			out.Help = t.Help
		}
		if t.Pre != nil {
			out.Pre = t.Pre
		}
		if t.Check != nil {
			out.Check = t.Check
		}
		if t.BeforeExecute != nil {
			out.BeforeExecute = t.BeforeExecute
		}
		if t.AfterExecute != nil {
			out.AfterExecute = t.AfterExecute
		}
		if t.Format != nil {
			out.Format = t.Format
		}

		// Bookkeeping is always present on matched nodes
		out.Root = t.Root
		out.Arg = t.Arg
	}

	return out
}

// matched returns a copy of t carrying the bookkeeping for a matched arg.
func matched(t *Task, arg string) *Task {
	c := *t
	c.Arg = arg
	c.Root = false
	return &c
}

// rootOf returns a copy of t marked as the root.
func rootOf(t *Task) *Task {
	if t == nil {
		return &Task{Root: true}
	}
	c := *t
	c.Root = true
	c.Arg = ""
	return &c
}

// Truthy reports whether v counts as a present result: nil, false, "",
// numeric zero (and NaN) and nil pointers, slices, maps, funcs and chans do not.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return !rv.IsZero()
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}
