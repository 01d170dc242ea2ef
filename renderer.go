package spritetext

// Device is the GPU side of the text renderer.
// The opengl backend implements it; tests use a recording mock.
type Device interface {
	// Bind activates the shader program, the atlas texture on unit 0 and
	// the vertex array used for glyph quads.
	Bind()

	// UploadVertices overwrites the shared dynamic vertex buffer.
	UploadVertices(verts []Vertex)

	// DrawQuads issues one indexed draw of quads*6 indices from the
	// shared index buffer.
	DrawQuads(quads int)
}

// RenderStats counts work submitted by a Renderer.
type RenderStats struct {
	Glyphs    int // Quads drawn
	DrawCalls int
	Uploads   int
}

// Renderer draws text through a Device.
// It is not safe for concurrent use: a call needs exclusive use of the
// device's bound vertex array and buffers until it returns.
type Renderer struct {
	device Device
	layout *Layout
	quads  []Quad // Scratch, reused across calls
	stats  RenderStats
}

// NewRenderer creates a renderer for dev.
func NewRenderer(dev Device, opts ...Option) (*Renderer, error) {
	l, err := NewLayout(opts...)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		device: dev,
		layout: l,
		quads:  make([]Quad, 0, 64),
	}, nil
}

// Layout returns the renderer's layout.
func (r *Renderer) Layout() *Layout {
	return r.layout
}

// DrawText draws text with its first glyph's baseline anchor at (x, y).
// Each glyph is a cellWidth x cellHeight quad; glyph i starts at
// x + i*advance. Every quad is uploaded on its own and drawn with its own
// draw call. Empty text touches the device not at all.
func (r *Renderer) DrawText(x, y, cellWidth, cellHeight float32, text string) {
	r.Draw(TextDrawRequest{X: x, Y: y, CellWidth: cellWidth, CellHeight: cellHeight, Text: text})
}

// Draw is DrawText taking a request value.
func (r *Renderer) Draw(req TextDrawRequest) {
	if req.Text == "" {
		return
	}

	r.quads = r.layout.AppendQuads(r.quads[:0], req)
	if len(r.quads) == 0 {
		return
	}

	r.device.Bind()
	for i := range r.quads {
		r.device.UploadVertices(r.quads[i][:])
		r.device.DrawQuads(1)
		r.stats.Uploads++
		r.stats.DrawCalls++
	}
	r.stats.Glyphs += len(r.quads)
}

// DrawTextBatched lays out text like DrawText but uploads all quads at
// once and draws them with a single call (one per MaxBatchQuads quads).
func (r *Renderer) DrawTextBatched(x, y, cellWidth, cellHeight float32, text string) {
	if text == "" {
		return
	}

	b := AcquireBatch()
	defer ReleaseBatch(b)

	r.layout.each(TextDrawRequest{X: x, Y: y, CellWidth: cellWidth, CellHeight: cellHeight, Text: text}, b.AddQuad)
	r.Submit(b)
}

// Submit uploads and draws a prepared batch.
func (r *Renderer) Submit(b *Batch) {
	chunks := b.Chunks()
	if len(chunks) == 0 {
		return
	}

	r.device.Bind()
	for _, verts := range chunks {
		r.device.UploadVertices(verts)
		r.device.DrawQuads(len(verts) / 4)
		r.stats.Uploads++
		r.stats.DrawCalls++
	}
	r.stats.Glyphs += b.QuadCount()
}

// DrawLines draws each line on its own baseline, starting at y and moving
// down by cellHeight+lineGap per line.
func (r *Renderer) DrawLines(x, y, cellWidth, cellHeight, lineGap float32, lines []string) {
	for i, line := range lines {
		r.DrawText(x, y+float32(i)*(cellHeight+lineGap), cellWidth, cellHeight, line)
	}
}

// Stats returns the counters accumulated since the last ResetStats.
func (r *Renderer) Stats() RenderStats {
	return r.stats
}

// ResetStats zeroes the counters. Call once per frame for per-frame numbers.
func (r *Renderer) ResetStats() {
	r.stats = RenderStats{}
}
