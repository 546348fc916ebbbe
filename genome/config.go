package genome

import "github.com/katalvlaran/topogenome/rational"

// Config carries every tunable of a Genome run. There is no global
// mutable state: a Config travels explicitly through the API, built from
// functional options.
type Config struct {
	// Minimize, when true, runs translate.Minimize on the input net
	// before candidate search. Disable only when the caller already
	// knows net is primitive.
	Minimize bool

	// SeqDepth overrides the coordination-sequence shell depth used by
	// partition.ByCoordinationSequence (10 by default; 0 means "leave
	// the package default alone").
	SeqDepth int

	// Limits bounds the bit width of the numerators and denominators of
	// the input net's positions: Genome rejects a net that exceeds it
	// with ErrInvalidInput. Values computed later in the run are not
	// checked against it.
	Limits rational.Limits
}

// Option configures a Config.
type Option func(*Config)

// WithMinimize toggles the minimize step.
func WithMinimize(enabled bool) Option {
	return func(c *Config) { c.Minimize = enabled }
}

// WithSeqDepth overrides the coordination-sequence shell depth. depth <=
// 0 leaves the package default in place.
func WithSeqDepth(depth int) Option {
	return func(c *Config) { c.SeqDepth = depth }
}

// WithLimits overrides the default rational/integer width limits.
func WithLimits(l rational.Limits) Option {
	return func(c *Config) { c.Limits = l }
}

// NewConfig builds a Config from defaults (minimize enabled, package
// default sequence depth, default width limits) plus any options.
func NewConfig(opts ...Option) Config {
	c := Config{Minimize: true, Limits: rational.DefaultLimits()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
