package spritetext_test

import (
	"testing"

	"github.com/go-theft-auto/spritetext"
)

func TestIndexBuffer(t *testing.T) {
	idx := spritetext.IndexBuffer(3)

	want := []uint16{
		0, 1, 2, 2, 3, 0,
		4, 5, 6, 6, 7, 4,
		8, 9, 10, 10, 11, 8,
	}
	if len(idx) != len(want) {
		t.Fatalf("len = %d, want %d", len(idx), len(want))
	}
	for i := range want {
		if idx[i] != want[i] {
			t.Errorf("idx[%d] = %d, want %d", i, idx[i], want[i])
		}
	}
}

func TestIndexBufferClamped(t *testing.T) {
	if n := len(spritetext.IndexBuffer(-1)); n != 0 {
		t.Errorf("IndexBuffer(-1) len = %d, want 0", n)
	}

	idx := spritetext.IndexBuffer(spritetext.MaxBatchQuads + 10)
	if len(idx) != spritetext.MaxBatchQuads*6 {
		t.Fatalf("len = %d, want %d", len(idx), spritetext.MaxBatchQuads*6)
	}
	if last := idx[len(idx)-2]; last != 65535 {
		t.Errorf("highest index = %d, want 65535", last)
	}
}

func TestBatchAddQuadAndChunks(t *testing.T) {
	b := spritetext.AcquireBatch()
	defer spritetext.ReleaseBatch(b)

	if b.QuadCount() != 0 || b.Chunks() != nil {
		t.Fatal("acquired batch is not empty")
	}

	total := spritetext.MaxBatchQuads + 5
	for i := 0; i < total; i++ {
		var q spritetext.Quad
		q[0].Pos[0] = float32(i)
		b.AddQuad(q)
	}
	if b.QuadCount() != total {
		t.Fatalf("QuadCount() = %d, want %d", b.QuadCount(), total)
	}

	chunks := b.Chunks()
	if len(chunks) != 2 {
		t.Fatalf("chunks = %d, want 2", len(chunks))
	}
	if len(chunks[0]) != spritetext.MaxBatchQuads*4 || len(chunks[1]) != 5*4 {
		t.Errorf("chunk sizes = %d, %d", len(chunks[0]), len(chunks[1]))
	}
	if x := chunks[1][0].Pos[0]; x != float32(spritetext.MaxBatchQuads) {
		t.Errorf("second chunk starts at quad %v, want %d", x, spritetext.MaxBatchQuads)
	}

	b.Clear()
	if b.QuadCount() != 0 {
		t.Errorf("QuadCount() after Clear = %d", b.QuadCount())
	}
}

func TestSubmitChunksLargeBatch(t *testing.T) {
	r, dev := newTestRenderer(t)

	b := spritetext.AcquireBatch()
	defer spritetext.ReleaseBatch(b)
	for i := 0; i < spritetext.MaxBatchQuads*2+1; i++ {
		b.AddQuad(spritetext.Quad{})
	}
	r.Submit(b)

	if len(dev.draws) != 3 {
		t.Fatalf("draws = %d, want 3", len(dev.draws))
	}
	want := []int{spritetext.MaxBatchQuads, spritetext.MaxBatchQuads, 1}
	for i := range want {
		if dev.draws[i] != want[i] {
			t.Errorf("draw %d = %d quads, want %d", i, dev.draws[i], want[i])
		}
	}
	if dev.binds != 1 {
		t.Errorf("binds = %d, want 1", dev.binds)
	}
}
