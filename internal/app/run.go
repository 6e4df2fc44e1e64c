package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/taskcmd/taskcmd/internal/dispatchers"
	"github.com/taskcmd/taskcmd/internal/ui/style"
	"github.com/taskcmd/taskcmd/internal/usage"
)

// Run evaluates parsed, prints the output and returns the exit code.
// --help and -h behave like a trailing help token.
func (a *Application) Run(ctx context.Context, parsed *dispatchers.Parsed, stderr io.Writer) int {
	if parsed.Has("help") || parsed.Has("h") {
		parsed.Positional = append(parsed.Positional, dispatchers.HelpToken)
	}

	res, err := a.Dispatcher.Eval(ctx, parsed)
	if err != nil {
		return reportError(stderr, err)
	}

	text := OutputText(res.Output)
	if text == "" {
		return 0
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	a.Output.Pager(text)
	return 0
}

// OutputText renders a command's output for the terminal.
// Nil and empty collections print nothing.
func OutputText(output any) string {
	if output == nil {
		return ""
	}

	switch v := output.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	}

	rv := reflect.ValueOf(output)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map:
		if rv.Len() == 0 {
			return ""
		}
	case reflect.Pointer:
		if rv.IsNil() {
			return ""
		}
	}
	return fmt.Sprint(output)
}

func reportError(w io.Writer, err error) int {
	fmt.Fprintln(w, style.Error(err.Error()))

	var ue *usage.Error
	if !errors.As(err, &ue) {
		return 1
	}

	switch len(ue.Suggestions) {
	case 0:
	case 1:
		fmt.Fprintf(w, "\nThe most similar command is\n   %s\n", style.Info(ue.Suggestions[0]))
	default:
		fmt.Fprintln(w, "\nThe most similar commands are")
		for _, s := range ue.Suggestions {
			fmt.Fprintf(w, "   %s\n", style.Info(s))
		}
	}

	return ue.GetExitCode()
}
