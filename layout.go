package spritetext

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"
)

// Layout turns text into glyph quads for a fixed-grid monospace atlas.
// It holds no per-call state; every call recomputes geometry from scratch.
type Layout struct {
	cfg      config
	fallback GlyphCell
}

// NewLayout creates a layout from options.
func NewLayout(opts ...Option) (*Layout, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newLayout(cfg)
}

func newLayout(cfg config) (*Layout, error) {
	if err := cfg.metrics.Validate(); err != nil {
		return nil, err
	}
	if !cfg.policy.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPolicy, int(cfg.policy))
	}
	if cfg.index == nil {
		return nil, fmt.Errorf("%w: nil glyph index", ErrInvalidGlyph)
	}
	for _, r := range cfg.index.Runes() {
		cell, _ := cfg.index.Lookup(r)
		if !cfg.metrics.Contains(cell) {
			return nil, fmt.Errorf("%w: rune %q cell (%d,%d) outside %dx%d grid",
				ErrInvalidGlyph, r, cell.Column, cell.Row, cfg.metrics.Columns(), cfg.metrics.Rows())
		}
	}

	l := &Layout{cfg: cfg, fallback: NotFound}
	if cfg.policy == SubstituteMissing {
		cell, ok := cfg.index.Lookup(cfg.fallback)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFallback, cfg.fallback)
		}
		l.fallback = cell
	}
	return l, nil
}

// Metrics returns the atlas metrics.
func (l *Layout) Metrics() FontAtlasMetrics { return l.cfg.metrics }

// Index returns the glyph table.
func (l *Layout) Index() *GlyphIndex { return l.cfg.index }

// Policy returns the missing-glyph policy.
func (l *Layout) Policy() MissingPolicy { return l.cfg.policy }

// Advance returns the pen step for the given on-screen cell width.
func (l *Layout) Advance(cellWidth float32) float32 {
	return cellWidth + l.cfg.spacing
}

// resolve applies the missing-glyph policy to r.
func (l *Layout) resolve(r rune) (GlyphCell, bool) {
	if cell, ok := l.cfg.index.Lookup(r); ok {
		return cell, true
	}
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		logger.Debug("glyph miss", "rune", string(r), "policy", l.cfg.policy.String())
	}
	if l.cfg.policy == SubstituteMissing {
		return l.fallback, true
	}
	return NotFound, false
}

// Quad builds the quad for cell with its left edge at penX and its bottom
// edge on baselineY. cell must come from the layout's index (Lookup) and lie
// inside the atlas grid; any other cell, NotFound included, yields the zero
// Quad, which covers no pixels.
func (l *Layout) Quad(cell GlyphCell, penX, baselineY, w, h float32) Quad {
	if !l.cfg.metrics.Contains(cell) {
		return Quad{}
	}
	uv := l.cfg.metrics.UV(cell)
	x0, x1 := penX, penX+w
	y0, y1 := baselineY-h, baselineY
	return Quad{
		{Pos: [3]float32{x0, y0, 0}, TexCoord: [2]float32{uv.UMin, uv.VMin}},
		{Pos: [3]float32{x1, y0, 0}, TexCoord: [2]float32{uv.UMax, uv.VMin}},
		{Pos: [3]float32{x1, y1, 0}, TexCoord: [2]float32{uv.UMax, uv.VMax}},
		{Pos: [3]float32{x0, y1, 0}, TexCoord: [2]float32{uv.UMin, uv.VMax}},
	}
}

// AppendQuads appends one quad per drawable rune of req.Text to dst.
// Glyph i (counting runes, not bytes) is placed at req.X + i*advance.
func (l *Layout) AppendQuads(dst []Quad, req TextDrawRequest) []Quad {
	l.each(req, func(q Quad) { dst = append(dst, q) })
	return dst
}

// each calls fn with the quad of every drawable rune in order.
func (l *Layout) each(req TextDrawRequest, fn func(Quad)) {
	advance := l.Advance(req.CellWidth)
	i := 0
	for _, r := range req.Text {
		cell, ok := l.resolve(r)
		if ok {
			fn(l.Quad(cell, req.X+float32(i)*advance, req.Y, req.CellWidth, req.CellHeight))
		}
		i++
	}
}

// MeasureText returns the on-screen size of text. Trailing spacing after
// the last glyph is not counted.
func (l *Layout) MeasureText(text string, cellWidth, cellHeight float32) Vec2 {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return Vec2{}
	}
	return Vec2{
		X: float32(n)*l.Advance(cellWidth) - l.cfg.spacing,
		Y: cellHeight,
	}
}
