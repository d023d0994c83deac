package builder

import (
	"io"
	"log/slog"

	"github.com/goliatone/go-ionform/pkg/ion"
)

// Option configures a FormBuilder.
type Option func(*options)

type options struct {
	meta    *ion.Link
	logger  *slog.Logger
	tagKey  string
	sources []AttributeSource
	strict  bool
}

func defaultOptions() options {
	return options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		tagKey: DefaultTagKey,
	}
}

// WithMeta sets the link describing where and how the built form is
// submitted.
func WithMeta(meta *ion.Link) Option {
	return func(opts *options) {
		opts.meta = meta
	}
}

// WithLogger routes builder diagnostics (skipped selectors, malformed tags)
// to logger. Nil keeps the discard logger.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *options) {
		if logger != nil {
			opts.logger = logger
		}
	}
}

// WithTagKey changes the struct tag holding field attributes.
func WithTagKey(key string) Option {
	return func(opts *options) {
		if key != "" {
			opts.tagKey = key
		}
	}
}

// WithAttributeSource adds an attribute source consulted after the struct
// tag. Members set by later sources win.
func WithAttributeSource(src AttributeSource) Option {
	return func(opts *options) {
		if src != nil {
			opts.sources = append(opts.sources, src)
		}
	}
}

// WithStrictSelectors makes AddField panic on a selector that does not
// resolve to a field, like AddOptions always does.
func WithStrictSelectors() Option {
	return func(opts *options) {
		opts.strict = true
	}
}
