package app

import (
	"io"

	"github.com/taskcmd/taskcmd/internal/actions"
	"github.com/taskcmd/taskcmd/internal/cli"
	"github.com/taskcmd/taskcmd/internal/config"
	"github.com/taskcmd/taskcmd/internal/dispatchers"
	"github.com/taskcmd/taskcmd/internal/log"
	"github.com/taskcmd/taskcmd/internal/paths"
	"github.com/taskcmd/taskcmd/internal/ui"
	"github.com/taskcmd/taskcmd/internal/ui/style"
)

// Version is set at build time.
var Version = "dev"

// Application is everything one invocation needs.
type Application struct {
	Dispatcher *dispatchers.Dispatcher
	Output     *ui.Writer
	Logger     *log.Logger // nil when logging is disabled
}

// Options configures the application factory.
type Options struct {
	// Pager options
	PagerDisabled bool
	PagerOverride string

	// Log options
	LogEnabled bool
	LogLevel   log.Level
	LogPath    string

	// Style options
	StyleEnabled bool
	StyleConfig  map[string]string
}

// DefaultOptions returns the options stored in the config file.
func DefaultOptions() Options {
	cfg, _ := config.GetAll()

	logPath := cfg["log_path"]
	if logPath == "" {
		logPath = paths.LogFilePath()
	}

	return Options{
		LogEnabled:   cfg["enable_log"] == "true",
		LogLevel:     log.ParseLevel(cfg["log_level"]),
		LogPath:      logPath,
		StyleEnabled: cfg["color"] != "never",
		StyleConfig:  cfg,
	}
}

// New creates a new Application with all dependencies wired up.
// The dispatcher reports to the log file when logging is enabled; a log
// file that cannot be opened disables logging.
func New(opts Options) *Application {
	var logger *log.Logger
	if opts.LogEnabled {
		l, err := log.New(opts.LogPath, opts.LogLevel)
		if err == nil {
			logger = l
			log.Configure(log.Options{Sink: logger})
		}
	}
	if logger == nil {
		log.Configure(log.Options{Disabled: true})
	}

	style.Init(opts.StyleEnabled, opts.StyleConfig)

	var writerOpts []ui.WriterOption
	if opts.PagerDisabled {
		writerOpts = append(writerOpts, ui.WithPagerDisabled())
	}
	if opts.PagerOverride != "" {
		writerOpts = append(writerOpts, ui.WithPagerOverride(opts.PagerOverride))
	}
	writerOpts = append(writerOpts, ui.WithConfigGetter(config.Get))

	root := cli.BuildTree(actions.DefaultDeps(Version))

	return &Application{
		Dispatcher: dispatchers.NewStatic(root),
		Output:     ui.NewWriter(writerOpts...),
		Logger:     logger,
	}
}

// NewForTesting creates an Application over deps that writes to out.
// No logging, no styling and no pager.
func NewForTesting(deps actions.Deps, out io.Writer) *Application {
	return &Application{
		Dispatcher: dispatchers.NewStatic(cli.BuildTree(deps), dispatchers.WithLogger(log.NopSink{})),
		Output:     ui.NewWriterTo(out, ui.WithPagerDisabled()),
	}
}

// Close cleans up application resources.
func Close(app *Application) error {
	if app.Dispatcher != nil {
		app.Dispatcher.Destroy()
	}
	if app.Logger != nil {
		_ = app.Logger.Close()
	}
	return nil
}
