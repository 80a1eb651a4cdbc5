package camera

import (
	"testing"

	"github.com/Carmen-Shannon/gridline-go/common"
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-5

// transformPoint applies a column-major 4x4 matrix to the point (x, y, z, 1).
func transformPoint(m [16]float32, x, y, z float32) (float32, float32, float32, float32) {
	return m[0]*x + m[4]*y + m[8]*z + m[12],
		m[1]*x + m[5]*y + m[9]*z + m[13],
		m[2]*x + m[6]*y + m[10]*z + m[14],
		m[3]*x + m[7]*y + m[11]*z + m[15]
}

func TestMVPMatrixFiniteAndInvertible(t *testing.T) {
	cases := []struct {
		name    string
		options []CameraBuilderOption
		aspect  float32
	}{
		{"defaults", nil, 16.0 / 9.0},
		{"square viewport", nil, 1.0},
		{"extreme portrait", nil, 0.2},
		{"near minimum distance", []CameraBuilderOption{WithDistance(0.5)}, 1.0},
		{"far distance", []CameraBuilderOption{WithDistance(100)}, 1.0},
		{"near pitch clamp", []CameraBuilderOption{WithPitch(math32.Pi/2 - 0.05)}, 1.0},
		{"below horizon", []CameraBuilderOption{WithPitch(-1.2)}, 1.0},
		{"offset target", []CameraBuilderOption{WithTarget(3, -2, 7), WithYaw(2.5)}, 1.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cam := NewCamera(tc.options...)
			mvp := cam.MVPMatrix(tc.aspect)
			for i, v := range mvp {
				assert.False(t, math32.IsNaN(v) || math32.IsInf(v, 0), "element %d is not finite: %v", i, v)
			}
			assert.NotZero(t, common.Det4(mvp[:]), "matrix must be invertible")
		})
	}
}

func TestMVPMatrixIdempotent(t *testing.T) {
	cam := NewCamera()
	cam.Update(PointerPressed{X: 10, Y: 20})
	cam.Update(PointerMoved{X: 42, Y: 13})
	cam.Update(Scroll{Delta: 2})

	first := cam.MVPMatrix(1.5)
	second := cam.MVPMatrix(1.5)
	assert.Equal(t, first, second, "a pure function must return bit-identical results")
}

func TestEyePositionMatchesSphericalFormula(t *testing.T) {
	cam := NewCamera(
		WithDistance(5),
		WithYaw(0),
		WithPitch(0),
		WithTarget(0, 0, 0),
	)

	// yaw=0, pitch=0 points down +Z: eye = (0, 0, 5), radius 5 from the target.
	x, y, z := cam.Eye()
	assert.InDelta(t, 0, x, tol)
	assert.InDelta(t, 0, y, tol)
	assert.InDelta(t, 5, z, tol)

	// The view matrix must map the eye to the view-space origin and the target
	// to (0, 0, -distance) straight down the view axis.
	view := cam.ViewMatrix()
	vx, vy, vz, vw := transformPoint(view, x, y, z)
	assert.InDelta(t, 0, vx, tol)
	assert.InDelta(t, 0, vy, tol)
	assert.InDelta(t, 0, vz, tol)
	assert.InDelta(t, 1, vw, tol)

	tx, ty, tz, _ := transformPoint(view, 0, 0, 0)
	assert.InDelta(t, 0, tx, tol)
	assert.InDelta(t, 0, ty, tol)
	assert.InDelta(t, -5, tz, tol)
}

func TestEyeStaysOnSphereWhileOrbiting(t *testing.T) {
	cam := NewCamera(WithDistance(5), WithTarget(0, 0, 0))

	cam.Update(PointerPressed{X: 0, Y: 0})
	for i := 1; i <= 50; i++ {
		cam.Update(PointerMoved{X: float32(i * 7), Y: float32(i * 3)})

		x, y, z := cam.Eye()
		radius := math32.Sqrt(x*x + y*y + z*z)
		assert.InDelta(t, 5, radius, tol)
	}
}

func TestHorizontalDragChangesOnlyYaw(t *testing.T) {
	cam := NewCamera(WithYaw(0), WithPitch(0))

	cam.Update(PointerPressed{X: 100, Y: 100})
	cam.Update(PointerMoved{X: 110, Y: 100})

	assert.InDelta(t, 10*DefaultOrbitSensitivity, cam.Yaw(), tol)
	assert.InDelta(t, 0, cam.Pitch(), tol)
}

func TestPitchClampedAtBounds(t *testing.T) {
	cam := NewCamera()

	// Drag far enough upward to exceed the clamp interval many times over.
	cam.Update(PointerPressed{X: 0, Y: 0})
	cam.Update(PointerMoved{X: 0, Y: -1e6})
	assert.Equal(t, DefaultPitchLimit, cam.Pitch(), "pitch must stop exactly at the upper bound")

	// And far enough downward.
	cam.Update(PointerMoved{X: 0, Y: 2e6})
	assert.Equal(t, -DefaultPitchLimit, cam.Pitch(), "pitch must stop exactly at the lower bound")
}

func TestZoomFactorAndDistanceClamp(t *testing.T) {
	cam := NewCamera(WithDistance(5))

	// One zoom-in step multiplies distance by the zoom factor: 5 * 0.9 = 4.5.
	cam.Update(Scroll{Delta: -1})
	assert.InDelta(t, 4.5, cam.Distance(), tol)

	// Zooming in forever leaves distance exactly at the minimum, never below.
	for range 200 {
		cam.Update(Scroll{Delta: -1})
	}
	require.Equal(t, float32(DefaultMinDistance), cam.Distance())

	cam.Update(Scroll{Delta: -1})
	assert.Equal(t, float32(DefaultMinDistance), cam.Distance(), "at the minimum, further zoom-in is a no-op")

	// The opposite direction saturates at the maximum.
	for range 2000 {
		cam.Update(Scroll{Delta: 1})
	}
	assert.Equal(t, float32(DefaultMaxDistance), cam.Distance())
}

func TestMoveWithoutPressIsIgnored(t *testing.T) {
	cam := NewCamera()
	yaw, pitch := cam.Yaw(), cam.Pitch()
	px, py, pz := cam.PanOffset()

	cam.Update(PointerMoved{X: 500, Y: 500})
	cam.Update(PointerMoved{X: 600, Y: 400, Pan: true})

	assert.Equal(t, yaw, cam.Yaw())
	assert.Equal(t, pitch, cam.Pitch())
	nx, ny, nz := cam.PanOffset()
	assert.Equal(t, [3]float32{px, py, pz}, [3]float32{nx, ny, nz})
	assert.False(t, cam.Dragging())
}

func TestReleaseEndsDrag(t *testing.T) {
	cam := NewCamera()

	cam.Update(PointerPressed{X: 10, Y: 10})
	assert.True(t, cam.Dragging())

	cam.Update(PointerReleased{})
	assert.False(t, cam.Dragging())

	// After release, deltas are no longer meaningful and must be dropped.
	yaw := cam.Yaw()
	cam.Update(PointerMoved{X: 200, Y: 200})
	assert.Equal(t, yaw, cam.Yaw())
}

func TestPanScalesWithDistance(t *testing.T) {
	near := NewCamera(WithDistance(2), WithYaw(0), WithPitch(0))
	far := NewCamera(WithDistance(20), WithYaw(0), WithPitch(0))

	for _, cam := range []Camera{near, far} {
		cam.Update(PointerPressed{X: 0, Y: 0})
		cam.Update(PointerMoved{X: 10, Y: 0, Pan: true})
	}

	nx, _, _ := near.PanOffset()
	fx, _, _ := far.PanOffset()
	require.NotZero(t, nx)
	assert.InDelta(t, 10.0, fx/nx, tol, "pan offset must scale linearly with distance")
}

func TestPanDoesNotChangeOrbitAngles(t *testing.T) {
	cam := NewCamera()
	yaw, pitch, dist := cam.Yaw(), cam.Pitch(), cam.Distance()

	cam.Update(PointerPressed{X: 0, Y: 0})
	cam.Update(PointerMoved{X: 40, Y: -25, Pan: true})

	assert.Equal(t, yaw, cam.Yaw())
	assert.Equal(t, pitch, cam.Pitch())
	assert.Equal(t, dist, cam.Distance())

	px, py, pz := cam.PanOffset()
	assert.NotEqual(t, [3]float32{}, [3]float32{px, py, pz})
}

func TestArrowKeysOrbit(t *testing.T) {
	cam := NewCamera(WithYaw(0), WithPitch(0))

	cam.Update(KeyPressed{Code: common.KeyRight})
	assert.InDelta(t, DefaultOrbitStep, cam.Yaw(), tol)

	cam.Update(KeyPressed{Code: common.KeyLeft})
	cam.Update(KeyPressed{Code: common.KeyLeft})
	assert.InDelta(t, -DefaultOrbitStep, cam.Yaw(), tol)

	cam.Update(KeyPressed{Code: common.KeyUp})
	assert.InDelta(t, DefaultOrbitStep, cam.Pitch(), tol)

	// Key orbit honors the pitch clamp too.
	for range 100 {
		cam.Update(KeyPressed{Code: common.KeyUp})
	}
	assert.Equal(t, DefaultPitchLimit, cam.Pitch())
}

func TestResetRestoresConstructionState(t *testing.T) {
	cam := NewCamera(WithDistance(8), WithYaw(1), WithPitch(0.4), WithTarget(1, 2, 3))

	cam.Update(PointerPressed{X: 0, Y: 0})
	cam.Update(PointerMoved{X: 120, Y: -60})
	cam.Update(PointerMoved{X: 150, Y: -60, Pan: true})
	cam.Update(Scroll{Delta: -3})

	cam.Update(KeyPressed{Code: common.KeyR})

	assert.Equal(t, float32(8), cam.Distance())
	assert.Equal(t, float32(1), cam.Yaw())
	assert.Equal(t, float32(0.4), cam.Pitch())
	px, py, pz := cam.PanOffset()
	assert.Equal(t, [3]float32{}, [3]float32{px, py, pz})
	tx, ty, tz := cam.Target()
	assert.Equal(t, [3]float32{1, 2, 3}, [3]float32{tx, ty, tz})
	assert.False(t, cam.Dragging(), "reset ends any drag in progress")
}

type unrelatedEvent struct{}

func (unrelatedEvent) isInputEvent() {}

func TestUnrecognizedEventsIgnored(t *testing.T) {
	cam := NewCamera()
	before := cam.MVPMatrix(1)

	cam.Update(unrelatedEvent{})
	cam.Update(KeyPressed{Code: 0xFFFF})

	assert.Equal(t, before, cam.MVPMatrix(1))
}

func TestNonFiniteInputRejected(t *testing.T) {
	nan := math32.NaN()
	inf := math32.Inf(1)

	cam := NewCamera()
	before := cam.MVPMatrix(1)

	cam.Update(PointerPressed{X: nan, Y: 0})
	assert.False(t, cam.Dragging(), "a non-finite press must not start a drag")

	cam.Update(PointerPressed{X: 5, Y: 5})
	cam.Update(PointerMoved{X: nan, Y: 10})
	cam.Update(PointerMoved{X: 10, Y: inf})
	cam.Update(Scroll{Delta: nan})
	cam.Update(PointerReleased{})

	assert.Equal(t, before, cam.MVPMatrix(1), "non-finite deltas must never reach the matrix")
}

func TestInvalidAspectPanics(t *testing.T) {
	cam := NewCamera()

	for _, aspect := range []float32{0, -1, math32.NaN(), math32.Inf(1)} {
		assert.Panics(t, func() { cam.MVPMatrix(aspect) }, "aspect %v must violate the precondition", aspect)
		assert.Panics(t, func() { cam.ProjectionMatrix(aspect) })
	}
}

func TestGPUCameraUniformLayout(t *testing.T) {
	u := GPUCameraUniform{}
	require.Equal(t, 64, u.Size())

	cam := NewCamera()
	u.MVP = cam.MVPMatrix(1)
	buf := u.Marshal()
	assert.Len(t, buf, 64)
	assert.NotEmpty(t, GPUCameraUniformSource)
}
