package grid

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultResolution(t *testing.T) {
	g := NewGrid()
	assert.Equal(t, DefaultResolution, g.Resolution())
	assert.Len(t, g.Vertices(), 6+12*DefaultResolution)
}

func TestVertexAndIndexCounts(t *testing.T) {
	for _, res := range []int{1, 2, 8, 16, 64} {
		g := NewGrid(WithResolution(res))
		want := 6 + 12*res
		assert.Len(t, g.Vertices(), want, "resolution %d", res)
		assert.Len(t, g.Indices(), want, "resolution %d", res)
		assert.Equal(t, want, g.IndexCount(), "resolution %d", res)
	}
}

func TestResolutionClamped(t *testing.T) {
	assert.Equal(t, DefaultResolution, NewGrid(WithResolution(0)).Resolution())
	assert.Equal(t, DefaultResolution, NewGrid(WithResolution(-3)).Resolution())
	assert.Equal(t, MaxResolution, NewGrid(WithResolution(100000)).Resolution())
}

func TestAxesComeFirstWithCanonicalColors(t *testing.T) {
	g := NewGrid(WithResolution(4))
	verts := g.Vertices()
	require.GreaterOrEqual(t, len(verts), 6)

	origin := [4]float32{0, 0, 0, 1}

	// X axis: origin -> (1,0,0), red
	assert.Equal(t, origin, verts[0].Position)
	assert.Equal(t, [4]float32{1, 0, 0, 1}, verts[1].Position)
	assert.Equal(t, colorRed, verts[0].Color)
	assert.Equal(t, colorRed, verts[1].Color)

	// Y axis: origin -> (0,1,0), green
	assert.Equal(t, origin, verts[2].Position)
	assert.Equal(t, [4]float32{0, 1, 0, 1}, verts[3].Position)
	assert.Equal(t, colorGreen, verts[2].Color)
	assert.Equal(t, colorGreen, verts[3].Color)

	// Z axis: origin -> (0,0,1), blue
	assert.Equal(t, origin, verts[4].Position)
	assert.Equal(t, [4]float32{0, 0, 1, 1}, verts[5].Position)
	assert.Equal(t, colorBlue, verts[4].Color)
	assert.Equal(t, colorBlue, verts[5].Color)
}

func TestGridLinesAreWhiteAndInsideUnitCube(t *testing.T) {
	g := NewGrid(WithResolution(8))
	for _, v := range g.Vertices()[6:] {
		assert.Equal(t, colorWhite, v.Color)
		for axis := range 3 {
			assert.GreaterOrEqual(t, v.Position[axis], float32(0))
			assert.LessOrEqual(t, v.Position[axis], float32(1))
		}
		assert.Equal(t, float32(1), v.Position[3])
	}
}

func TestGridLinesLieOnOriginPlanes(t *testing.T) {
	g := NewGrid(WithResolution(4))
	for i, v := range g.Vertices()[6:] {
		onPlane := v.Position[0] == 0 || v.Position[1] == 0 || v.Position[2] == 0
		assert.True(t, onPlane, "vertex %d is off all three origin planes", i+6)
	}
}

func TestIndicesAreSequentialPairs(t *testing.T) {
	g := NewGrid(WithResolution(2))
	idx := g.Indices()
	require.Zero(t, len(idx)%2)
	for i, v := range idx {
		assert.Equal(t, uint32(i), v)
	}
}

func TestVertexBytesLayout(t *testing.T) {
	g := NewGrid(WithResolution(1))
	buf := g.VertexBytes()
	require.Len(t, buf, len(g.Vertices())*32)

	// Second vertex is the X axis endpoint (1,0,0,1) in red.
	x := binary.LittleEndian.Uint32(buf[32:36])
	assert.Equal(t, uint32(0x3f800000), x)
	r := binary.LittleEndian.Uint32(buf[48:52])
	assert.Equal(t, uint32(0x3f800000), r)
}

func TestIndexBytesLittleEndian(t *testing.T) {
	g := NewGrid(WithResolution(1))
	buf := g.IndexBytes()
	require.Len(t, buf, g.IndexCount()*4)
	assert.Equal(t, uint32(5), binary.LittleEndian.Uint32(buf[20:24]))
}

func TestGPUVertexSize(t *testing.T) {
	var v GPUVertex
	assert.Equal(t, 32, v.Size())
	assert.Len(t, v.Marshal(), 32)
}
