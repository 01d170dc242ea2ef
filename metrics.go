package spritetext

import (
	"fmt"
	"math"
)

// FontAtlasMetrics describes the pixel layout of a regular-grid atlas.
type FontAtlasMetrics struct {
	SheetWidth  float32
	SheetHeight float32
	CellWidth   float32
	CellHeight  float32
}

// GridMetrics derives cell sizes for a sheet split into columns x rows cells.
func GridMetrics(sheetWidth, sheetHeight, columns, rows int) FontAtlasMetrics {
	m := FontAtlasMetrics{
		SheetWidth:  float32(sheetWidth),
		SheetHeight: float32(sheetHeight),
	}
	if columns > 0 {
		m.CellWidth = m.SheetWidth / float32(columns)
	}
	if rows > 0 {
		m.CellHeight = m.SheetHeight / float32(rows)
	}
	return m
}

// MonogramMetrics returns the metrics of the 70x78 monogram sheet
// (13 columns, 7 rows).
func MonogramMetrics() FontAtlasMetrics {
	return GridMetrics(70, 78, 13, 7)
}

// Validate checks that the metrics describe a usable grid.
func (m FontAtlasMetrics) Validate() error {
	switch {
	case m.SheetWidth <= 0 || m.SheetHeight <= 0:
		return fmt.Errorf("%w: sheet %vx%v", ErrInvalidMetrics, m.SheetWidth, m.SheetHeight)
	case m.CellWidth <= 0 || m.CellHeight <= 0:
		return fmt.Errorf("%w: cell %vx%v", ErrInvalidMetrics, m.CellWidth, m.CellHeight)
	case m.CellWidth > m.SheetWidth || m.CellHeight > m.SheetHeight:
		return fmt.Errorf("%w: cell %vx%v larger than sheet %vx%v",
			ErrInvalidMetrics, m.CellWidth, m.CellHeight, m.SheetWidth, m.SheetHeight)
	}
	return nil
}

// gridEpsilon absorbs float error in sheet/cell divisions such as 70/(70/13).
const gridEpsilon = 1e-3

// Columns returns the number of whole cells per row.
func (m FontAtlasMetrics) Columns() int {
	if m.CellWidth <= 0 {
		return 0
	}
	return int(math.Floor(float64(m.SheetWidth/m.CellWidth) + gridEpsilon))
}

// Rows returns the number of whole cell rows.
func (m FontAtlasMetrics) Rows() int {
	if m.CellHeight <= 0 {
		return 0
	}
	return int(math.Floor(float64(m.SheetHeight/m.CellHeight) + gridEpsilon))
}

// Contains reports whether c lies inside the grid.
func (m FontAtlasMetrics) Contains(c GlyphCell) bool {
	return c.Valid() && c.Column < m.Columns() && c.Row < m.Rows()
}

// UV returns the texture rectangle of cell c.
// v = 0 is the top row of the image (the atlas is uploaded without flipping).
func (m FontAtlasMetrics) UV(c GlyphCell) UVRect {
	du := m.CellWidth / m.SheetWidth
	dv := m.CellHeight / m.SheetHeight
	u := float32(c.Column) * m.CellWidth / m.SheetWidth
	v := float32(c.Row) * m.CellHeight / m.SheetHeight
	return UVRect{UMin: u, VMin: v, UMax: u + du, VMax: v + dv}
}
