package spritetext

// MissingPolicy decides what happens to characters without an atlas cell.
type MissingPolicy int

const (
	// SkipMissing draws nothing for the character but still advances the pen
	// one cell, so the remaining glyphs keep their columns.
	SkipMissing MissingPolicy = iota
	// SubstituteMissing draws the fallback glyph in its place.
	SubstituteMissing
)

// String returns the policy name.
func (p MissingPolicy) String() string {
	switch p {
	case SkipMissing:
		return "skip"
	case SubstituteMissing:
		return "substitute"
	default:
		return "unknown"
	}
}

// valid reports whether p is one of the defined policies.
func (p MissingPolicy) valid() bool {
	return p == SkipMissing || p == SubstituteMissing
}

// DefaultFallback is the substitute glyph used by SubstituteMissing.
const DefaultFallback = '?'

// config holds layout and renderer configuration.
type config struct {
	metrics  FontAtlasMetrics
	index    *GlyphIndex
	spacing  float32
	policy   MissingPolicy
	fallback rune
}

func defaultConfig() config {
	return config{
		metrics:  MonogramMetrics(),
		index:    DefaultGlyphIndex(),
		policy:   SkipMissing,
		fallback: DefaultFallback,
	}
}

// Option configures a Layout or Renderer.
type Option func(*config)

// WithMetrics sets the atlas metrics. Default: MonogramMetrics.
func WithMetrics(m FontAtlasMetrics) Option {
	return func(c *config) { c.metrics = m }
}

// WithGlyphIndex sets the glyph table. Default: DefaultGlyphIndex.
func WithGlyphIndex(idx *GlyphIndex) Option {
	return func(c *config) { c.index = idx }
}

// WithSpacing adds extra pixels between glyphs. The pen advance is
// cell width plus spacing.
func WithSpacing(px float32) Option {
	return func(c *config) { c.spacing = px }
}

// WithMissingPolicy sets how characters without a cell are handled.
func WithMissingPolicy(p MissingPolicy) Option {
	return func(c *config) { c.policy = p }
}

// WithFallback sets the substitute glyph and selects SubstituteMissing.
func WithFallback(r rune) Option {
	return func(c *config) {
		c.fallback = r
		c.policy = SubstituteMissing
	}
}
