package spritetext

import "fmt"

// GlyphCell is a glyph's location in the atlas, in grid units.
type GlyphCell struct {
	Column int
	Row    int
}

// NotFound is returned by Lookup for characters without a cell.
// It is distinct from the valid cell (0, 0).
var NotFound = GlyphCell{Column: -1, Row: -1}

// Valid reports whether c names a real cell.
func (c GlyphCell) Valid() bool {
	return c.Column >= 0 && c.Row >= 0
}

// glyphIndexSize covers character codes 0-127.
const glyphIndexSize = 128

type glyphEntry struct {
	cell    GlyphCell
	present bool
}

// GlyphIndex maps ASCII character codes to atlas cells.
// It is immutable once built and safe for concurrent reads.
type GlyphIndex struct {
	entries [glyphIndexSize]glyphEntry
	count   int
}

// NewGlyphIndex builds an index from a rune-to-cell table.
// Runes outside 0-127 and negative cells are rejected.
func NewGlyphIndex(cells map[rune]GlyphCell) (*GlyphIndex, error) {
	idx := &GlyphIndex{}
	for r, c := range cells {
		if r < 0 || r >= glyphIndexSize {
			return nil, fmt.Errorf("%w: rune %q outside ASCII", ErrInvalidGlyph, r)
		}
		if !c.Valid() {
			return nil, fmt.Errorf("%w: rune %q has cell (%d,%d)", ErrInvalidGlyph, r, c.Column, c.Row)
		}
		idx.entries[r] = glyphEntry{cell: c, present: true}
		idx.count++
	}
	return idx, nil
}

// Lookup returns the cell for r, or NotFound and false.
func (idx *GlyphIndex) Lookup(r rune) (GlyphCell, bool) {
	if r < 0 || r >= glyphIndexSize {
		return NotFound, false
	}
	e := idx.entries[r]
	if !e.present {
		return NotFound, false
	}
	return e.cell, true
}

// Supported returns true if r has a cell.
func (idx *GlyphIndex) Supported(r rune) bool {
	_, ok := idx.Lookup(r)
	return ok
}

// Len returns the number of mapped characters.
func (idx *GlyphIndex) Len() int {
	return idx.count
}

// Runes returns the mapped characters in ascending order.
func (idx *GlyphIndex) Runes() []rune {
	runes := make([]rune, 0, idx.count)
	for r := range idx.entries {
		if idx.entries[r].present {
			runes = append(runes, rune(r))
		}
	}
	return runes
}

// monogramRows lists the characters of the monogram 6x10 sheet, one string
// per atlas row, left to right.
// Not in the sheet: ; ^ _ ` | ~ \
var monogramRows = [...]string{
	"ABCDEFGHIJKLM",
	"NOPQRSTUVWXYZ",
	"abcdefghijklm",
	"nopqrstuvwxyz",
	"0123456789+-=",
	"()[]{}<>/*:#%",
	"!?.,'\"@&$ ",
}

var defaultGlyphIndex = buildMonogramIndex()

func buildMonogramIndex() *GlyphIndex {
	cells := make(map[rune]GlyphCell, 96)
	for row, chars := range monogramRows {
		for col, r := range chars {
			cells[r] = GlyphCell{Column: col, Row: row}
		}
	}
	idx, err := NewGlyphIndex(cells)
	if err != nil {
		panic(err)
	}
	return idx
}

// DefaultGlyphIndex returns the built-in index for the monogram sheet
// (see MonogramMetrics).
func DefaultGlyphIndex() *GlyphIndex {
	return defaultGlyphIndex
}
