package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/taskcmd/taskcmd/internal/app"
	"github.com/taskcmd/taskcmd/internal/cli"
	"golang.org/x/term"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	parsed := cli.ParseArgs(argv)
	opts := app.DefaultOptions()

	// Enable styling if stdout is a terminal and --no-color is not set
	switch {
	case parsed.Has("no-color"):
		opts.StyleEnabled = false
	case opts.StyleConfig["color"] == "always":
		opts.StyleEnabled = true
	default:
		opts.StyleEnabled = opts.StyleEnabled && term.IsTerminal(int(os.Stdout.Fd()))
	}

	opts.PagerDisabled = parsed.Has("no-pager")
	if pager, ok := parsed.Text("pager"); ok {
		opts.PagerOverride = pager
	}

	a := app.New(opts)
	defer func() { _ = app.Close(a) }()

	return a.Run(ctx, parsed, os.Stderr)
}
