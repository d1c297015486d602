package engine

import "log/slog"

// Option customizes an Engine.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used when logging is enabled in the
// configuration. A nil logger selects slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}
