package spritetext

import "sync"

// MaxBatchQuads is the largest number of quads one draw can cover.
// 16384 quads use 65536 vertices, so every index fits in uint16.
const MaxBatchQuads = 16384

// batchPool provides reuse of Batch buffers across frames.
var batchPool = sync.Pool{
	New: func() any {
		return &Batch{
			VtxBuffer: make([]Vertex, 0, 256),
		}
	},
}

// AcquireBatch gets a cleared Batch from the pool.
// Call ReleaseBatch when done to return it.
func AcquireBatch() *Batch {
	b := batchPool.Get().(*Batch)
	b.Clear()
	return b
}

// ReleaseBatch returns a Batch to the pool for reuse.
func ReleaseBatch(b *Batch) {
	if b != nil {
		batchPool.Put(b)
	}
}

// Batch accumulates glyph quads so a whole string can be drawn with a
// single upload and a single indexed draw.
// Indices are not stored per batch: quad k always uses vertices 4k..4k+3,
// so the shared index buffer from IndexBuffer serves every batch.
type Batch struct {
	VtxBuffer []Vertex
}

// Clear resets the batch, retaining allocated capacity.
func (b *Batch) Clear() {
	b.VtxBuffer = b.VtxBuffer[:0]
}

// AddQuad appends one quad.
func (b *Batch) AddQuad(q Quad) {
	b.VtxBuffer = append(b.VtxBuffer, q[:]...)
}

// QuadCount returns the number of quads in the batch.
func (b *Batch) QuadCount() int {
	return len(b.VtxBuffer) / 4
}

// Chunks splits the batch into vertex runs of at most MaxBatchQuads quads.
func (b *Batch) Chunks() [][]Vertex {
	if len(b.VtxBuffer) == 0 {
		return nil
	}
	const maxVerts = MaxBatchQuads * 4
	chunks := make([][]Vertex, 0, len(b.VtxBuffer)/maxVerts+1)
	for start := 0; start < len(b.VtxBuffer); start += maxVerts {
		end := min(start+maxVerts, len(b.VtxBuffer))
		chunks = append(chunks, b.VtxBuffer[start:end])
	}
	return chunks
}

// IndexBuffer builds the shared index buffer for quads quads using the
// QuadIndices winding offset by 4 per quad. quads is clamped to MaxBatchQuads.
func IndexBuffer(quads int) []uint16 {
	quads = max(0, min(quads, MaxBatchQuads))
	idx := make([]uint16, 0, quads*6)
	for q := 0; q < quads; q++ {
		base := uint16(q * 4)
		for _, i := range QuadIndices {
			idx = append(idx, base+i)
		}
	}
	return idx
}
