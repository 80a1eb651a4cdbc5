package scene

import (
	"github.com/Carmen-Shannon/gridline-go/engine/camera"
	"github.com/Carmen-Shannon/gridline-go/engine/renderer"
	"github.com/Carmen-Shannon/gridline-go/engine/window"
)

// SceneBuilderOption is a functional option for configuring a Scene during construction.
type SceneBuilderOption func(*scene)

// WithCamera sets the camera the scene drives. Required.
//
// Parameters:
//   - cam: the camera instance
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCamera(cam camera.Camera) SceneBuilderOption {
	return func(s *scene) {
		s.cam = cam
	}
}

// WithRenderer sets the renderer the scene draws with. Required.
//
// Parameters:
//   - r: the renderer instance
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) SceneBuilderOption {
	return func(s *scene) {
		s.r = r
	}
}

// WithWindow sets the window whose input callbacks feed the camera.
// Optional: a scene without a window renders but receives no input, which is
// what headless tests want.
//
// Parameters:
//   - w: the window instance
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithWindow(w window.Window) SceneBuilderOption {
	return func(s *scene) {
		s.win = w
	}
}

// WithResolution sets the initial grid resolution. Values are clamped the same
// way grid.NewGrid clamps them.
//
// Parameters:
//   - resolution: the number of grid lines per unit axis
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithResolution(resolution int) SceneBuilderOption {
	return func(s *scene) {
		s.resolution = resolution
	}
}

// WithActive sets whether the scene starts active in the render loop.
// Scenes default to active.
//
// Parameters:
//   - active: whether the scene should be rendered
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithMeshWorkers sets the number of workers in the mesh rebuild pool.
// Defaults to NumCPU-1 with a floor of one worker.
//
// Parameters:
//   - n: the number of workers (values < 1 are clamped to 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithMeshWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		if n < 1 {
			n = 1
		}
		s.meshWorkers = n
	}
}
