package log

import "sync"

// Sink is the diagnostic interface dispatchers report to.
// It carries no functional contract; every method may be a no-op.
type Sink interface {
	Error(format string, args ...any)
	Log(format string, args ...any)
	Time(label string)
	TimeEnd(label string)
	Warn(format string, args ...any)
}

// NopSink discards everything. It is the default.
type NopSink struct{}

func (NopSink) Error(_ string, _ ...any) {}
func (NopSink) Log(_ string, _ ...any)   {}
func (NopSink) Time(_ string)            {}
func (NopSink) TimeEnd(_ string)         {}
func (NopSink) Warn(_ string, _ ...any)  {}

// Options configures the process default sink.
type Options struct {
	// Sink replaces the default. Nil keeps the current one unless Disabled is set.
	Sink Sink
	// Disabled installs NopSink, ignoring Sink.
	Disabled bool
}

var (
	defaultSink   Sink = NopSink{}
	defaultSinkMu sync.RWMutex
)

// Configure installs the process default sink. Call it once at startup,
// before any dispatcher is created; dispatchers capture the default at
// construction time.
func Configure(opts Options) {
	defaultSinkMu.Lock()
	defer defaultSinkMu.Unlock()

	switch {
	case opts.Disabled:
		defaultSink = NopSink{}
	case opts.Sink != nil:
		defaultSink = opts.Sink
	}
}

// Default returns the process default sink.
func Default() Sink {
	defaultSinkMu.RLock()
	defer defaultSinkMu.RUnlock()
	return defaultSink
}

var _ Sink = NopSink{}
