// Package camera implements the orbit/pan/zoom camera that turns a stream of
// raw input events into the model-view-projection matrix uploaded to the GPU
// each frame.
//
// The camera orbits a focus point (target + accumulated pan offset) at a given
// distance, oriented by yaw (rotation about the world Y axis) and pitch
// (elevation above the horizontal plane). All matrices are flat [16]float32 in
// column-major order targeting the WebGPU clip space (depth [0, 1]); see
// package common for the layout contract.
package camera

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/gridline-go/common"
	"github.com/chewxy/math32"
)

// Default orbit tunables. All of them can be overridden with builder options;
// they are fixed values, not inferred from input.
const (
	// DefaultDistance is the initial distance from the focus point to the eye.
	DefaultDistance float32 = 5.0

	// DefaultYaw is the initial rotation about the world Y axis in radians.
	DefaultYaw float32 = math32.Pi / 4

	// DefaultPitch is the initial elevation in radians, looking slightly down.
	DefaultPitch float32 = math32.Pi / 6

	// DefaultMinDistance is the closest the eye may approach the focus point.
	// Must stay strictly positive so the view matrix never degenerates.
	DefaultMinDistance float32 = 0.5

	// DefaultMaxDistance is the farthest the eye may retreat from the focus point.
	DefaultMaxDistance float32 = 100.0

	// DefaultPitchLimit bounds pitch to ±(π/2 − 0.05): an open interval strictly
	// inside ±90° so the view direction never becomes parallel to the world up
	// axis (gimbal flip at the poles).
	DefaultPitchLimit float32 = math32.Pi/2 - 0.05

	// DefaultOrbitSensitivity converts drag pixels to radians.
	DefaultOrbitSensitivity float32 = 0.005

	// DefaultPanSensitivity converts drag pixels to world units per unit of
	// distance. Pan speed scales with distance so apparent screen-space
	// sensitivity stays constant across zoom levels.
	DefaultPanSensitivity float32 = 0.0015

	// DefaultZoomFactor is the multiplicative distance change per scroll unit:
	// one zoom-in step multiplies distance by this factor, one zoom-out step
	// divides by it.
	DefaultZoomFactor float32 = 0.9

	// DefaultOrbitStep is the keyboard orbit step in radians (arrow keys).
	DefaultOrbitStep float32 = 0.05

	// DefaultFov is the vertical field of view in radians (45°).
	DefaultFov float32 = 45.0 * math32.Pi / 180.0

	// DefaultNear is the near clipping plane distance.
	DefaultNear float32 = 0.1

	// DefaultFar is the far clipping plane distance.
	DefaultFar float32 = 100.0
)

// pose is the orbit state restored by a reset (R key).
type pose struct {
	target   [3]float32
	distance float32
	yaw      float32
	pitch    float32
}

// cameraImpl is the single implementation of Camera. It owns the accumulated
// orbit state and is mutated only by Update; matrix requests never mutate.
type cameraImpl struct {
	mu *sync.Mutex

	// Orbit state
	target    [3]float32
	panOffset [3]float32
	distance  float32
	yaw       float32 // rotation about the world Y axis
	pitch     float32 // elevation above the horizontal plane

	// lastCursor is the most recent pointer position seen while a drag is in
	// progress, nil when no drag is active. Doubles as the drag-active flag.
	lastCursor *[2]float32

	// Constraints
	minDistance float32
	maxDistance float32
	minPitch    float32
	maxPitch    float32

	// Input tunables
	orbitSensitivity float32
	panSensitivity   float32
	zoomFactor       float32
	orbitStep        float32

	// Projection parameters, fixed for the camera's lifetime. The aspect ratio
	// is deliberately not stored: it is supplied at matrix-request time so
	// window resizes require no camera mutation.
	fov  float32
	near float32
	far  float32

	home pose
}

// Camera translates a stream of raw pointer/keyboard/scroll events into an
// orbit-style view transform and combines it with a perspective projection to
// yield the matrix the renderer uploads each frame.
//
// Update and the matrix methods are safe to call from different goroutines
// (input arrives on the window message loop while matrices are read on the
// render goroutine); events are applied strictly in the order Update is called.
type Camera interface {
	// Update applies a single input event to the camera state. Unrecognized
	// events and events carrying non-finite coordinates are ignored.
	//
	// Parameters:
	//   - ev: the input event to apply
	Update(ev Event)

	// MVPMatrix computes projection × view for the current camera state.
	// It is a pure function of the camera state and the aspect ratio: no side
	// effects, bit-identical results for identical inputs.
	//
	// The aspect ratio must be a positive finite number; anything else is a
	// caller contract violation and panics rather than producing a silently
	// singular matrix.
	//
	// Parameters:
	//   - aspect: current viewport aspect ratio (width / height)
	//
	// Returns:
	//   - [16]float32: the combined matrix, column-major, WebGPU depth [0, 1]
	MVPMatrix(aspect float32) [16]float32

	// ViewMatrix computes the current look-at view matrix.
	//
	// Returns:
	//   - [16]float32: the view matrix, column-major
	ViewMatrix() [16]float32

	// ProjectionMatrix computes the perspective projection matrix for the given
	// aspect ratio. Same aspect-ratio contract as MVPMatrix.
	//
	// Parameters:
	//   - aspect: current viewport aspect ratio (width / height)
	//
	// Returns:
	//   - [16]float32: the projection matrix, column-major
	ProjectionMatrix(aspect float32) [16]float32

	// Eye returns the camera's world-space position, derived from the orbit
	// state by spherical-to-Cartesian conversion.
	//
	// Returns:
	//   - x, y, z: world-space eye position
	Eye() (x, y, z float32)

	// Target returns the orbit target (excluding the pan offset).
	//
	// Returns:
	//   - x, y, z: world-space target position
	Target() (x, y, z float32)

	// PanOffset returns the accumulated pan translation applied to the target.
	//
	// Returns:
	//   - x, y, z: world-space pan offset
	PanOffset() (x, y, z float32)

	// Distance returns the current distance from the focus point to the eye.
	//
	// Returns:
	//   - float32: the orbit distance, always > 0
	Distance() float32

	// Yaw returns the current rotation about the world Y axis.
	//
	// Returns:
	//   - float32: yaw in radians
	Yaw() float32

	// Pitch returns the current elevation angle.
	//
	// Returns:
	//   - float32: pitch in radians, always inside the clamp interval
	Pitch() float32

	// Dragging reports whether a pointer drag is in progress.
	//
	// Returns:
	//   - bool: true between PointerPressed and PointerReleased
	Dragging() bool

	// Fov returns the fixed vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Near returns the fixed near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the fixed far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with the default orbit state: distance 5,
// yaw 45°, pitch 30° looking down at the origin, 45° field of view.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:       &sync.Mutex{},
		distance: DefaultDistance,
		yaw:      DefaultYaw,
		pitch:    DefaultPitch,

		minDistance: DefaultMinDistance,
		maxDistance: DefaultMaxDistance,
		minPitch:    -DefaultPitchLimit,
		maxPitch:    DefaultPitchLimit,

		orbitSensitivity: DefaultOrbitSensitivity,
		panSensitivity:   DefaultPanSensitivity,
		zoomFactor:       DefaultZoomFactor,
		orbitStep:        DefaultOrbitStep,

		fov:  DefaultFov,
		near: DefaultNear,
		far:  DefaultFar,
	}
	for _, option := range options {
		option(c)
	}

	c.distance = clamp(c.distance, c.minDistance, c.maxDistance)
	c.pitch = clamp(c.pitch, c.minPitch, c.maxPitch)
	c.home = pose{
		target:   c.target,
		distance: c.distance,
		yaw:      c.yaw,
		pitch:    c.pitch,
	}
	return c
}

func (c *cameraImpl) Update(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch e := ev.(type) {
	case PointerPressed:
		if !finite(e.X) || !finite(e.Y) {
			return
		}
		c.lastCursor = &[2]float32{e.X, e.Y}

	case PointerReleased:
		c.lastCursor = nil

	case PointerMoved:
		if c.lastCursor == nil {
			// No drag in progress — a delta needs a captured start position.
			return
		}
		if !finite(e.X) || !finite(e.Y) {
			return
		}
		dx := e.X - c.lastCursor[0]
		dy := e.Y - c.lastCursor[1]
		if e.Pan {
			c.pan(dx, dy)
		} else {
			c.orbit(dx, dy)
		}
		c.lastCursor[0], c.lastCursor[1] = e.X, e.Y

	case Scroll:
		if !finite(e.Delta) {
			return
		}
		c.zoom(e.Delta)

	case KeyPressed:
		switch e.Code {
		case common.KeyLeft:
			c.yaw -= c.orbitStep
		case common.KeyRight:
			c.yaw += c.orbitStep
		case common.KeyUp:
			c.pitch = clamp(c.pitch+c.orbitStep, c.minPitch, c.maxPitch)
		case common.KeyDown:
			c.pitch = clamp(c.pitch-c.orbitStep, c.minPitch, c.maxPitch)
		case common.KeyR:
			c.reset()
		}
	}
}

func (c *cameraImpl) MVPMatrix(aspect float32) [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var view, proj, mvp [16]float32
	c.viewMatrix(view[:])
	c.projectionMatrix(proj[:], aspect)
	common.Mul4(mvp[:], proj[:], view[:])
	return mvp
}

func (c *cameraImpl) ViewMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var view [16]float32
	c.viewMatrix(view[:])
	return view
}

func (c *cameraImpl) ProjectionMatrix(aspect float32) [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var proj [16]float32
	c.projectionMatrix(proj[:], aspect)
	return proj
}

func (c *cameraImpl) Eye() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	eye := c.eye()
	return eye[0], eye[1], eye[2]
}

func (c *cameraImpl) Target() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target[0], c.target[1], c.target[2]
}

func (c *cameraImpl) PanOffset() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.panOffset[0], c.panOffset[1], c.panOffset[2]
}

func (c *cameraImpl) Distance() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.distance
}

func (c *cameraImpl) Yaw() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.yaw
}

func (c *cameraImpl) Pitch() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pitch
}

func (c *cameraImpl) Dragging() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastCursor != nil
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

// --- internal helpers (caller must hold the mutex) ---

// orbit applies a drag delta in pixels to yaw and pitch, keeping pitch inside
// the clamp interval. Dragging right increases yaw, dragging up increases pitch.
func (c *cameraImpl) orbit(dx, dy float32) {
	c.yaw += dx * c.orbitSensitivity
	c.pitch = clamp(c.pitch-dy*c.orbitSensitivity, c.minPitch, c.maxPitch)
}

// pan translates the focus point along the camera's local right and up axes so
// the scene follows the cursor. The offset is scaled by the current distance,
// keeping apparent screen-space pan speed constant across zoom levels.
func (c *cameraImpl) pan(dx, dy float32) {
	// backward = direction from focus to eye, matching LookAt's z-axis
	bx, by, bz := direction(c.yaw, c.pitch)

	// right = normalize(cross(worldUp, backward)) with worldUp = (0, 1, 0);
	// its y component is always zero.
	rx := bz
	rz := -bx
	rLen := math32.Sqrt(rx*rx + rz*rz)
	if rLen < 1e-8 {
		// Looking straight along the up axis; prevented by the pitch clamp.
		return
	}
	rx /= rLen
	rz /= rLen

	// up = cross(backward, right), matching LookAt's y-axis
	ux := by * rz
	uy := bz*rx - bx*rz
	uz := -by * rx

	k := c.distance * c.panSensitivity
	c.panOffset[0] += (-dx*rx + dy*ux) * k
	c.panOffset[1] += dy * uy * k
	c.panOffset[2] += (-dx*rz + dy*uz) * k
}

// zoom applies a scroll delta as a multiplicative distance change, clamped to
// the configured bounds. Negative delta zooms in: one unit multiplies distance
// by the zoom factor.
func (c *cameraImpl) zoom(delta float32) {
	c.distance = clamp(c.distance*math32.Pow(c.zoomFactor, -delta), c.minDistance, c.maxDistance)
}

// reset restores the construction-time orbit state, clears the pan offset, and
// ends any drag in progress.
func (c *cameraImpl) reset() {
	c.target = c.home.target
	c.distance = c.home.distance
	c.yaw = c.home.yaw
	c.pitch = c.home.pitch
	c.panOffset = [3]float32{}
	c.lastCursor = nil
}

// eye computes the world-space eye position:
// target + panOffset + distance * direction(yaw, pitch).
func (c *cameraImpl) eye() [3]float32 {
	dx, dy, dz := direction(c.yaw, c.pitch)
	return [3]float32{
		c.target[0] + c.panOffset[0] + c.distance*dx,
		c.target[1] + c.panOffset[1] + c.distance*dy,
		c.target[2] + c.panOffset[2] + c.distance*dz,
	}
}

func (c *cameraImpl) viewMatrix(out []float32) {
	eye := c.eye()
	common.LookAt(out,
		eye[0], eye[1], eye[2],
		c.target[0]+c.panOffset[0], c.target[1]+c.panOffset[1], c.target[2]+c.panOffset[2],
		0, 1, 0,
	)
}

func (c *cameraImpl) projectionMatrix(out []float32, aspect float32) {
	if !(aspect > 0) || math32.IsInf(aspect, 0) {
		panic(fmt.Sprintf("camera: aspect ratio must be a positive finite number, got %v", aspect))
	}
	common.Perspective(out, c.fov, aspect, c.near, c.far)
}

// direction is the unit vector from the focus point toward the eye for the
// given yaw and pitch, using standard spherical-to-Cartesian conversion with
// the world up axis (0, 1, 0). Yaw 0, pitch 0 points down +Z.
func direction(yaw, pitch float32) (x, y, z float32) {
	cosPitch := math32.Cos(pitch)
	return cosPitch * math32.Sin(yaw), math32.Sin(pitch), cosPitch * math32.Cos(yaw)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func finite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}
