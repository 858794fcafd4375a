package amr

import (
	"log/slog"

	"github.com/jamesainslie/go-amr/format"
	"github.com/jamesainslie/go-amr/resolve"
	"github.com/jamesainslie/go-amr/tokenizer"
)

// Option configures a Converter.
type Option func(*config)

type config struct {
	filter        string
	keepVariables bool
	scope         resolve.Scope
	format        format.Options
	tokenizer     tokenizer.Tokenizer
	nfc           bool
	logger        *slog.Logger
}

func defaultConfig() config {
	return config{
		scope:  resolve.ScopeBlock,
		logger: slog.Default(),
	}
}

// WithFilter keeps only blocks declared with "::snt-type tag"
// (default: keep every block).
func WithFilter(tag string) Option {
	return func(c *config) {
		c.filter = tag
	}
}

// WithVariables disables variable removal when keep is true; graphs are
// only linearized (default: false).
func WithVariables(keep bool) Option {
	return func(c *config) {
		c.keepVariables = keep
	}
}

// WithLegacyScope keeps a single binding table for a whole input instead of
// clearing it at every blank line. Use it to reproduce output of tools that
// let bindings leak from one graph into the next.
func WithLegacyScope() Option {
	return func(c *config) {
		c.scope = resolve.ScopeFile
	}
}

// WithFormat sets the post-formatting rewrites (default: none).
func WithFormat(o format.Options) Option {
	return func(c *config) {
		c.format = o
	}
}

// WithTokenizer tokenizes every sentence and joins the tokens with single
// spaces (default: sentences are written as found).
func WithTokenizer(t tokenizer.Tokenizer) Option {
	return func(c *config) {
		c.tokenizer = t
	}
}

// WithNFC normalizes sentences to Unicode NFC before tokenization
// (default: false).
func WithNFC(enabled bool) Option {
	return func(c *config) {
		c.nfc = enabled
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
