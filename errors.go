package spritetext

import "errors"

var (
	// ErrAtlasLoad is returned when the atlas image is missing or cannot be decoded.
	ErrAtlasLoad = errors.New("spritetext: atlas load failed")

	// ErrAtlasMismatch is returned when the atlas image size disagrees with its metrics.
	// Rendering still works but glyphs will be sampled from the wrong pixels.
	ErrAtlasMismatch = errors.New("spritetext: atlas size does not match metrics")

	// ErrInvalidMetrics is returned for non-positive or oversized cell metrics.
	ErrInvalidMetrics = errors.New("spritetext: invalid atlas metrics")

	// ErrInvalidGlyph is returned when a glyph table entry is out of range.
	ErrInvalidGlyph = errors.New("spritetext: invalid glyph entry")

	// ErrInvalidPolicy is returned for a MissingPolicy other than SkipMissing or SubstituteMissing.
	ErrInvalidPolicy = errors.New("spritetext: invalid missing-glyph policy")

	// ErrInvalidFallback is returned when the substitute rune has no cell.
	ErrInvalidFallback = errors.New("spritetext: fallback glyph not in index")
)
