package script

import (
	"io"

	"github.com/hupe1980/bitvec"
)

type options struct {
	logger *bitvec.Logger
	out    io.Writer
}

// Option configures a Runner.
type Option func(*options)

// WithLogger sets the logger used to report every executed command.
//
// If nil is passed, logging is disabled.
func WithLogger(l *bitvec.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = bitvec.NoopLogger()
		}
		o.logger = l
	}
}

// WithOutput sets the writer receiving query results. Defaults to io.Discard.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w == nil {
			w = io.Discard
		}
		o.out = w
	}
}
