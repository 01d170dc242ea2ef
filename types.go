// Package spritetext renders monospace bitmap-font text from a fixed grid atlas.
// The core is GL-free: layout, UV computation and batching live here, and the
// GPU side is reached through the Device interface (see backend/opengl).
package spritetext

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Vertex is one corner of a glyph quad.
// Memory layout matches the shader's vertex attributes: position at
// location 0 (z is always 0), texture coordinates at location 1.
type Vertex struct {
	Pos      [3]float32
	TexCoord [2]float32
}

// Quad holds the four corners of one glyph, in order top-left, top-right,
// bottom-right, bottom-left.
type Quad [4]Vertex

// QuadIndices is the fixed winding used for every quad (two triangles).
var QuadIndices = [6]uint16{0, 1, 2, 2, 3, 0}

// UVRect is a normalized texture-space rectangle.
type UVRect struct {
	UMin, VMin float32
	UMax, VMax float32
}

// Width returns the normalized width of the rectangle.
func (r UVRect) Width() float32 { return r.UMax - r.UMin }

// Height returns the normalized height of the rectangle.
func (r UVRect) Height() float32 { return r.VMax - r.VMin }

// TextDrawRequest describes one text draw.
// (X, Y) is the baseline anchor of the first glyph in a top-left origin,
// y-down pixel space; each glyph sits above the baseline.
type TextDrawRequest struct {
	X, Y       float32
	CellWidth  float32 // On-screen quad width
	CellHeight float32 // On-screen quad height
	Text       string
}

// X0 returns the left edge of the quad.
func (q Quad) X0() float32 { return q[0].Pos[0] }

// Y0 returns the top edge of the quad.
func (q Quad) Y0() float32 { return q[0].Pos[1] }

// UV returns the texture rectangle the quad samples.
func (q Quad) UV() UVRect {
	return UVRect{
		UMin: q[0].TexCoord[0], VMin: q[0].TexCoord[1],
		UMax: q[2].TexCoord[0], VMax: q[2].TexCoord[1],
	}
}
