package spritetext_test

import (
	"errors"
	"testing"

	"github.com/go-theft-auto/spritetext"
)

const supportedChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	"+-=()[]{}<>/*:#%!?.,'\"@&$ "

func TestDefaultGlyphIndexSupportedSet(t *testing.T) {
	idx := spritetext.DefaultGlyphIndex()
	m := spritetext.MonogramMetrics()

	for _, r := range supportedChars {
		cell, ok := idx.Lookup(r)
		if !ok {
			t.Errorf("Lookup(%q) not found", r)
			continue
		}
		if !m.Contains(cell) {
			t.Errorf("Lookup(%q) = %+v, outside %dx%d grid", r, cell, m.Columns(), m.Rows())
		}
	}

	if got, want := idx.Len(), len(supportedChars); got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
}

func TestDefaultGlyphIndexPrintableASCII(t *testing.T) {
	idx := spritetext.DefaultGlyphIndex()

	supported := 0
	for r := rune(32); r < 127; r++ {
		if idx.Supported(r) {
			supported++
		}
	}
	// 95 printable characters minus ; ^ _ ` | ~ and backslash
	if supported != 88 {
		t.Errorf("supported printable characters = %d, want 88", supported)
	}
}

func TestDefaultGlyphIndexCellsAreDistinct(t *testing.T) {
	idx := spritetext.DefaultGlyphIndex()

	seen := make(map[spritetext.GlyphCell]rune)
	for _, r := range idx.Runes() {
		cell, _ := idx.Lookup(r)
		if prev, dup := seen[cell]; dup {
			t.Errorf("%q and %q share cell %+v", prev, r, cell)
		}
		seen[cell] = r
	}

	v, _ := idx.Lookup('V')
	w, _ := idx.Lookup('W')
	if v == w {
		t.Errorf("V and W map to the same cell %+v", v)
	}
	if want := (spritetext.GlyphCell{Column: 9, Row: 1}); w != want {
		t.Errorf("Lookup('W') = %+v, want %+v", w, want)
	}
}

func TestDefaultGlyphIndexKnownCells(t *testing.T) {
	idx := spritetext.DefaultGlyphIndex()

	tests := []struct {
		r    rune
		want spritetext.GlyphCell
	}{
		{'A', spritetext.GlyphCell{Column: 0, Row: 0}},
		{'M', spritetext.GlyphCell{Column: 12, Row: 0}},
		{'Z', spritetext.GlyphCell{Column: 12, Row: 1}},
		{'a', spritetext.GlyphCell{Column: 0, Row: 2}},
		{'0', spritetext.GlyphCell{Column: 0, Row: 4}},
		{'=', spritetext.GlyphCell{Column: 12, Row: 4}},
		{'%', spritetext.GlyphCell{Column: 12, Row: 5}},
		{'"', spritetext.GlyphCell{Column: 5, Row: 6}},
		{' ', spritetext.GlyphCell{Column: 9, Row: 6}},
	}

	for _, tt := range tests {
		got, ok := idx.Lookup(tt.r)
		if !ok || got != tt.want {
			t.Errorf("Lookup(%q) = %+v, %v; want %+v, true", tt.r, got, ok, tt.want)
		}
	}
}

func TestLookupUnsupported(t *testing.T) {
	idx := spritetext.DefaultGlyphIndex()

	for _, r := range []rune{';', '^', '_', '`', '|', '~', '\\', 0, '\n', 127, 128, 'é', '世', -1} {
		for i := 0; i < 3; i++ {
			cell, ok := idx.Lookup(r)
			if ok {
				t.Errorf("Lookup(%q) found %+v, want NotFound", r, cell)
			}
			if cell != spritetext.NotFound {
				t.Errorf("Lookup(%q) = %+v, want NotFound", r, cell)
			}
		}
	}
}

func TestNotFoundDistinctFromOrigin(t *testing.T) {
	origin := spritetext.GlyphCell{}
	if spritetext.NotFound == origin {
		t.Fatal("NotFound equals cell (0,0)")
	}
	if spritetext.NotFound.Valid() {
		t.Error("NotFound.Valid() = true")
	}
	if !origin.Valid() {
		t.Error("(0,0).Valid() = false")
	}
}

func TestNewGlyphIndex(t *testing.T) {
	tests := []struct {
		name    string
		cells   map[rune]spritetext.GlyphCell
		wantErr bool
	}{
		{"empty", map[rune]spritetext.GlyphCell{}, false},
		{"ascii", map[rune]spritetext.GlyphCell{'x': {Column: 1, Row: 2}}, false},
		{"non-ascii rune", map[rune]spritetext.GlyphCell{'é': {Column: 0, Row: 0}}, true},
		{"negative rune", map[rune]spritetext.GlyphCell{-5: {Column: 0, Row: 0}}, true},
		{"negative cell", map[rune]spritetext.GlyphCell{'x': {Column: -1, Row: 0}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, err := spritetext.NewGlyphIndex(tt.cells)
			if tt.wantErr {
				if !errors.Is(err, spritetext.ErrInvalidGlyph) {
					t.Fatalf("err = %v, want ErrInvalidGlyph", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if idx.Len() != len(tt.cells) {
				t.Errorf("Len() = %d, want %d", idx.Len(), len(tt.cells))
			}
		})
	}
}

func TestGlyphIndexRunesSorted(t *testing.T) {
	runes := spritetext.DefaultGlyphIndex().Runes()
	for i := 1; i < len(runes); i++ {
		if runes[i-1] >= runes[i] {
			t.Fatalf("Runes() not ascending at %d: %q, %q", i, runes[i-1], runes[i])
		}
	}
}
