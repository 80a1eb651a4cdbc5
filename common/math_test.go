package common

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-5

func mulPoint(m []float32, x, y, z, w float32) [4]float32 {
	return [4]float32{
		m[0]*x + m[4]*y + m[8]*z + m[12]*w,
		m[1]*x + m[5]*y + m[9]*z + m[13]*w,
		m[2]*x + m[6]*y + m[10]*z + m[14]*w,
		m[3]*x + m[7]*y + m[11]*z + m[15]*w,
	}
}

func TestIdentity(t *testing.T) {
	m := make([]float32, 16)
	for i := range m {
		m[i] = float32(i)
	}
	Identity(m)

	p := mulPoint(m, 3, -7, 2, 1)
	assert.Equal(t, [4]float32{3, -7, 2, 1}, p)
}

func TestMul4AgainstIdentity(t *testing.T) {
	id := make([]float32, 16)
	Identity(id)

	a := []float32{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}

	out := make([]float32, 16)
	Mul4(out, id, a)
	assert.Equal(t, a, out)
	Mul4(out, a, id)
	assert.Equal(t, a, out)

	// out may alias an input
	Mul4(a, a, id)
	assert.Equal(t, out, a)
}

func TestMul4Composition(t *testing.T) {
	// Translation by (1, 2, 3), column-major.
	trans := make([]float32, 16)
	Identity(trans)
	trans[12], trans[13], trans[14] = 1, 2, 3

	// Uniform scale by 2.
	scale := make([]float32, 16)
	Identity(scale)
	scale[0], scale[5], scale[10] = 2, 2, 2

	// trans * scale applies the scale first: (1,1,1) -> (2,2,2) -> (3,4,5)
	out := make([]float32, 16)
	Mul4(out, trans, scale)
	p := mulPoint(out, 1, 1, 1, 1)
	assert.InDelta(t, 3, p[0], tol)
	assert.InDelta(t, 4, p[1], tol)
	assert.InDelta(t, 5, p[2], tol)
}

func TestLookAtMapsEyeAndCenter(t *testing.T) {
	view := make([]float32, 16)
	LookAt(view, 0, 0, 5, 0, 0, 0, 0, 1, 0)

	// The eye maps to the view-space origin.
	eye := mulPoint(view, 0, 0, 5, 1)
	for i := range 3 {
		assert.InDelta(t, 0, eye[i], tol)
	}

	// The center lies straight down -Z at distance 5.
	center := mulPoint(view, 0, 0, 0, 1)
	assert.InDelta(t, 0, center[0], tol)
	assert.InDelta(t, 0, center[1], tol)
	assert.InDelta(t, -5, center[2], tol)

	// World +Y maps to view +Y when looking down -Z with up (0, 1, 0).
	up := mulPoint(view, 0, 1, 5, 1)
	assert.InDelta(t, 1, up[1], tol)
}

func TestLookAtReorthogonalizesUp(t *testing.T) {
	// A deliberately skewed up vector still yields an orthonormal basis.
	view := make([]float32, 16)
	LookAt(view, 3, 4, 5, 0, 0, 0, 0.3, 0.8, 0.2)

	// Rows of the rotation block must be unit length and mutually orthogonal.
	rows := [3][3]float32{
		{view[0], view[4], view[8]},
		{view[1], view[5], view[9]},
		{view[2], view[6], view[10]},
	}
	for i := range 3 {
		lenSq := rows[i][0]*rows[i][0] + rows[i][1]*rows[i][1] + rows[i][2]*rows[i][2]
		assert.InDelta(t, 1, lenSq, tol, "row %d must be unit length", i)
		for j := i + 1; j < 3; j++ {
			dot := rows[i][0]*rows[j][0] + rows[i][1]*rows[j][1] + rows[i][2]*rows[j][2]
			assert.InDelta(t, 0, dot, tol, "rows %d and %d must be orthogonal", i, j)
		}
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	proj := make([]float32, 16)
	Perspective(proj, math32.Pi/4, 1.0, 0.1, 100.0)

	// A point on the near plane maps to depth 0 after the perspective divide.
	near := mulPoint(proj, 0, 0, -0.1, 1)
	assert.InDelta(t, 0, near[2]/near[3], tol)

	// A point on the far plane maps to depth 1.
	far := mulPoint(proj, 0, 0, -100.0, 1)
	assert.InDelta(t, 1, far[2]/far[3], 1e-4)

	assert.NotZero(t, Det4(proj))
}

func TestInvert4RoundTrip(t *testing.T) {
	view := make([]float32, 16)
	LookAt(view, 2, 3, 4, 0, 1, 0, 0, 1, 0)

	inv := make([]float32, 16)
	require.True(t, Invert4(inv, view))

	out := make([]float32, 16)
	Mul4(out, view, inv)

	id := make([]float32, 16)
	Identity(id)
	for i := range 16 {
		assert.InDelta(t, id[i], out[i], tol)
	}
}

func TestInvert4Singular(t *testing.T) {
	singular := make([]float32, 16) // all zeros
	out := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	before := append([]float32(nil), out...)

	assert.False(t, Invert4(out, singular))
	assert.Equal(t, before, out, "output must be untouched for singular input")
	assert.Zero(t, Det4(singular))
}

func TestSliceToBytes(t *testing.T) {
	assert.Nil(t, SliceToBytes[float32](nil))

	data := []float32{1.0, 2.0}
	buf := SliceToBytes(data)
	assert.Len(t, buf, 8)

	type vertex struct {
		Position [3]float32
		Color    [4]float32
	}
	verts := []vertex{{}, {}}
	assert.Len(t, SliceToBytes(verts), 56)
}

func TestStructToBytes(t *testing.T) {
	v := struct{ A, B float32 }{1, 2}
	buf := StructToBytes(&v)
	assert.Len(t, buf, 8)
}
