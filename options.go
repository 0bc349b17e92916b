package cellgrid

import (
	"fmt"
	"log/slog"
)

var discardLogger = slog.New(slog.DiscardHandler)

// Options holds configuration shared by Project, Memo and Grid.
type Options struct {
	policy HeaderPolicy
	store  RowStore
	layout Layout
	logger *slog.Logger
}

func defaultOptions() *Options {
	return &Options{
		layout: DefaultLayout(),
		logger: discardLogger,
	}
}

func buildOptions(opts []Option) *Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Option configures a Grid or a projection pass.
type Option func(*Options)

// WithHeaderPolicy sets the header policy a Grid starts with.
func WithHeaderPolicy(p HeaderPolicy) Option {
	return func(o *Options) { o.policy = p }
}

// WithRowStore makes a Grid read and write rows through store instead of
// an internal MemoryStore. The initial rows passed to New are then ignored.
func WithRowStore(store RowStore) Option {
	return func(o *Options) { o.store = store }
}

// WithLayout sets the layout options passed through to the renderer.
func WithLayout(l Layout) Option {
	return func(o *Options) { o.layout = l }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
