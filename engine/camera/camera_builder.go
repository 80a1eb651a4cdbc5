package camera

// CameraBuilderOption is a functional option for configuring a Camera during
// construction. Options are applied in order; the resulting distance and pitch
// are clamped to their configured bounds before the camera is returned.
type CameraBuilderOption func(*cameraImpl)

// WithTarget sets the orbit target (the point the camera orbits around).
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - CameraBuilderOption: functional option to set the target
func WithTarget(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.target = [3]float32{x, y, z}
	}
}

// WithDistance sets the initial distance from the focus point to the eye.
//
// Parameters:
//   - distance: initial orbit distance in world units
//
// Returns:
//   - CameraBuilderOption: functional option to set the distance
func WithDistance(distance float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.distance = distance
	}
}

// WithYaw sets the initial rotation about the world Y axis.
//
// Parameters:
//   - yaw: horizontal angle in radians (0 = +Z axis)
//
// Returns:
//   - CameraBuilderOption: functional option to set the yaw
func WithYaw(yaw float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.yaw = yaw
	}
}

// WithPitch sets the initial elevation above the horizontal plane.
//
// Parameters:
//   - pitch: vertical angle in radians (0 = horizontal)
//
// Returns:
//   - CameraBuilderOption: functional option to set the pitch
func WithPitch(pitch float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.pitch = pitch
	}
}

// WithDistanceBounds sets the minimum and maximum orbit distance. The minimum
// must stay strictly positive to preserve a non-degenerate view matrix.
//
// Parameters:
//   - min: minimum zoom distance
//   - max: maximum zoom distance
//
// Returns:
//   - CameraBuilderOption: functional option to set distance bounds
func WithDistanceBounds(min, max float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.minDistance = min
		c.maxDistance = max
	}
}

// WithPitchBounds sets the minimum and maximum pitch angles. Both must lie
// strictly inside ±π/2 to avoid gimbal flip at the poles.
//
// Parameters:
//   - min: minimum vertical angle in radians
//   - max: maximum vertical angle in radians
//
// Returns:
//   - CameraBuilderOption: functional option to set pitch bounds
func WithPitchBounds(min, max float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.minPitch = min
		c.maxPitch = max
	}
}

// WithOrbitSensitivity sets the drag-to-radians multiplier for orbiting.
//
// Parameters:
//   - sensitivity: radians per pixel of drag
//
// Returns:
//   - CameraBuilderOption: functional option to set orbit sensitivity
func WithOrbitSensitivity(sensitivity float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.orbitSensitivity = sensitivity
	}
}

// WithPanSensitivity sets the drag-to-world-units multiplier for panning.
// The effective pan step is this value times the current orbit distance.
//
// Parameters:
//   - sensitivity: world units per pixel per unit of distance
//
// Returns:
//   - CameraBuilderOption: functional option to set pan sensitivity
func WithPanSensitivity(sensitivity float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.panSensitivity = sensitivity
	}
}

// WithZoomFactor sets the multiplicative distance change per scroll unit.
// Values in (0, 1); smaller values zoom faster.
//
// Parameters:
//   - factor: distance multiplier per zoom-in step
//
// Returns:
//   - CameraBuilderOption: functional option to set the zoom factor
func WithZoomFactor(factor float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.zoomFactor = factor
	}
}

// WithOrbitStep sets the keyboard orbit step used by the arrow keys.
//
// Parameters:
//   - step: radians per key press
//
// Returns:
//   - CameraBuilderOption: functional option to set the keyboard orbit step
func WithOrbitStep(step float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.orbitStep = step
	}
}

// WithFov sets the vertical field of view.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - CameraBuilderOption: functional option to set the field of view
func WithFov(fov float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fov = fov
	}
}

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance (must be > 0)
//
// Returns:
//   - CameraBuilderOption: functional option to set the near plane
func WithNear(near float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance (must be > near)
//
// Returns:
//   - CameraBuilderOption: functional option to set the far plane
func WithFar(far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.far = far
	}
}
