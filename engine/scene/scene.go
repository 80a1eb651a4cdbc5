// Package scene implements the frame driver: it owns the camera, the renderer,
// and the grid model, translates window input callbacks into camera events, and
// executes the per-frame lifecycle of uniform upload followed by a single
// indexed line-list draw call.
//
// Grid resolution changes requested at runtime (number keys 1 through 9)
// regenerate the mesh on a background worker pool so the render loop never
// blocks on mesh generation; the finished mesh is staged and swapped in at the
// next frame boundary.
package scene

import (
	_ "embed"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/gridline-go/common"
	"github.com/Carmen-Shannon/gridline-go/engine/camera"
	"github.com/Carmen-Shannon/gridline-go/engine/grid"
	"github.com/Carmen-Shannon/gridline-go/engine/model"
	"github.com/Carmen-Shannon/gridline-go/engine/renderer"
	"github.com/Carmen-Shannon/gridline-go/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/gridline-go/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/gridline-go/engine/renderer/shader"
	"github.com/Carmen-Shannon/gridline-go/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
)

// lineShaderBody holds the entry points of the line shader. The CameraUniform
// and VertexInput struct definitions are prepended from their owning packages
// so the WGSL layout and the Go-side Marshal layout come from a single source.
//
//go:embed assets/line.wgsl
var lineShaderBody string

const (
	// PipelineKeyLines identifies the cached line-list render pipeline.
	PipelineKeyLines = "lines"

	// cameraGroup and cameraBinding locate the camera uniform in the line shader.
	cameraGroup   = 0
	cameraBinding = 0

	// resolutionKeyStep is the grid resolution granted per number key:
	// key N selects resolution N*resolutionKeyStep, so key 2 restores the
	// default resolution of 16.
	resolutionKeyStep = 8
)

// stagedMesh is a regenerated grid mesh waiting to be uploaded at the next
// frame boundary.
type stagedMesh struct {
	resolution int
	vertexData []byte
	indexData  []byte
	indexCount int
}

// scene is the implementation of the Scene interface.
type scene struct {
	mu     *sync.RWMutex
	active bool

	cam camera.Camera
	r   renderer.Renderer
	win window.Window

	gridModel      model.Model
	cameraProvider bind_group_provider.BindGroupProvider

	resolution int
	aspect     float32

	meshWorkers int
	meshPool    worker.DynamicWorkerPool
	nextTaskID  int

	pendingMesh *stagedMesh

	// Pre-allocated per-frame slices to avoid per-frame heap allocations.
	writes         []bind_group_provider.BufferWrite
	drawBindGroups []bind_group_provider.BindGroupProvider
}

// Scene drives a single frame's worth of work for the grid viewer.
// The engine render loop calls PrepareFrame then DrawCalls between the
// renderer's BeginFrame and EndFrame.
type Scene interface {
	// Active reports whether this scene participates in the render loop.
	//
	// Returns:
	//   - bool: true if the scene is active
	Active() bool

	// SetActive enables or disables this scene in the render loop.
	//
	// Parameters:
	//   - active: whether the scene should be rendered
	SetActive(active bool)

	// Camera returns the scene's camera.
	//
	// Returns:
	//   - camera.Camera: the camera instance
	Camera() camera.Camera

	// Renderer returns the scene's renderer.
	//
	// Returns:
	//   - renderer.Renderer: the renderer instance
	Renderer() renderer.Renderer

	// Model returns the grid model currently being drawn.
	//
	// Returns:
	//   - model.Model: the grid model
	Model() model.Model

	// Resolution returns the grid resolution most recently requested.
	// The visible mesh may lag by a frame while a rebuild is in flight.
	//
	// Returns:
	//   - int: the requested grid resolution
	Resolution() int

	// SetResolution requests a new grid resolution. The mesh is regenerated on
	// a background worker and swapped in at the next frame boundary; values are
	// clamped the same way grid.NewGrid clamps them.
	//
	// Parameters:
	//   - resolution: the number of grid lines per unit axis
	SetResolution(resolution int)

	// Aspect returns the aspect ratio the camera matrices are computed with.
	//
	// Returns:
	//   - float32: width / height of the current surface
	Aspect() float32

	// Resize updates the aspect ratio and reconfigures the render surface.
	// Zero or negative dimensions (minimized window) are ignored.
	//
	// Parameters:
	//   - width: new surface width in pixels
	//   - height: new surface height in pixels
	Resize(width, height int)

	// PrepareFrame uploads the camera uniform for the current camera state and
	// applies any staged grid mesh. Must be called before BeginFrame each frame.
	//
	// Parameters:
	//   - deltaTime: seconds since the previous frame
	//
	// Returns:
	//   - error: an error if a staged mesh upload fails
	PrepareFrame(deltaTime float32) error

	// DrawCalls encodes the scene's draw commands into the current render pass.
	// Must be called between the renderer's BeginFrame and EndFrame.
	//
	// Returns:
	//   - error: an error if the scene has no renderer or the pipeline is missing
	DrawCalls() error
}

var _ Scene = &scene{}

// NewScene creates a new Scene, registers the line render pipeline, uploads the
// initial grid mesh, and wires window input callbacks to the camera when a
// window is provided. A camera and a renderer are required; their absence is a
// programming error and panics.
//
// Parameters:
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:          &sync.RWMutex{},
		active:      true,
		resolution:  grid.DefaultResolution,
		aspect:      1.0,
		meshWorkers: max(runtime.NumCPU()-1, 1),
	}
	for _, opt := range options {
		opt(s)
	}

	if s.cam == nil {
		panic("scene: a camera is required, use WithCamera")
	}
	if s.r == nil {
		panic("scene: a renderer is required, use WithRenderer")
	}

	// The mesh pool is created after options so WithMeshWorkers can override
	// the default worker count. Queue size of 256 covers any realistic burst of
	// resolution-change requests; idle workers exit after one second.
	s.meshPool = worker.NewDynamicWorkerPool(s.meshWorkers, 256, 1*time.Second)

	if s.win != nil {
		s.aspect = float32(s.win.Width()) / float32(s.win.Height())
	}

	lineShader := newLineShader()
	linePipeline := pipeline.NewPipeline(PipelineKeyLines,
		pipeline.WithShader(lineShader),
		pipeline.WithTopology(wgpu.PrimitiveTopologyLineList),
	)
	if err := s.r.RegisterPipelines(linePipeline); err != nil {
		panic(fmt.Sprintf("scene: failed to register line pipeline: %v", err))
	}

	s.cameraProvider = bind_group_provider.NewBindGroupProvider("camera")
	if err := s.r.InitBindGroup(s.cameraProvider, lineShader.BindGroupLayoutDescriptor(cameraGroup), nil); err != nil {
		panic(fmt.Sprintf("scene: failed to create camera bind group: %v", err))
	}

	g := grid.NewGrid(grid.WithResolution(s.resolution))
	s.resolution = g.Resolution()
	meshProvider := bind_group_provider.NewBindGroupProvider("grid mesh")
	if err := s.r.InitMeshBuffers(meshProvider, g.VertexBytes(), g.IndexBytes(), g.IndexCount()); err != nil {
		panic(fmt.Sprintf("scene: failed to upload grid mesh: %v", err))
	}
	s.gridModel = model.NewModel(
		model.WithName("grid"),
		model.WithPipelineKey(PipelineKeyLines),
		model.WithMeshProvider(meshProvider),
		model.WithMeshData(g.VertexBytes(), g.IndexBytes(), g.IndexCount()),
	)

	s.writes = []bind_group_provider.BufferWrite{{
		Provider: s.cameraProvider,
		Binding:  cameraBinding,
	}}
	s.drawBindGroups = []bind_group_provider.BindGroupProvider{s.cameraProvider}

	if s.win != nil {
		s.wireInput()
	}

	return s
}

// newLineShader assembles the line shader from the struct definitions owned by
// the camera and grid packages plus the embedded entry points, and declares the
// bind-group and vertex layouts the WGSL expects.
func newLineShader() shader.Shader {
	source := camera.GPUCameraUniformSource + "\n" + grid.GPUVertexSource + "\n" + lineShaderBody

	var uniform camera.GPUCameraUniform
	var vertex grid.GPUVertex

	return shader.NewShader(PipelineKeyLines, source,
		shader.WithBindGroupLayoutDescriptor(cameraGroup, wgpu.BindGroupLayoutDescriptor{
			Label: "camera bind group layout",
			Entries: []wgpu.BindGroupLayoutEntry{{
				Binding:    cameraBinding,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: uint64(uniform.Size()),
				},
			}},
		}),
		shader.WithVertexLayouts(wgpu.VertexBufferLayout{
			ArrayStride: uint64(vertex.Size()),
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{Format: wgpu.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 0},
				{Format: wgpu.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 1},
			},
		}),
	)
}

// wireInput routes window callbacks into camera events. Scroll deltas are
// negated: the platform reports wheel-up as positive, while the camera treats
// negative deltas as zoom-in.
func (s *scene) wireInput() {
	s.win.SetMouseDownCallback(func(x, y float32) {
		s.cam.Update(camera.PointerPressed{X: x, Y: y})
	})
	s.win.SetMouseUpCallback(func(_, _ float32) {
		s.cam.Update(camera.PointerReleased{})
	})
	s.win.SetMouseMoveCallback(func(x, y float32, panModifier bool) {
		s.cam.Update(camera.PointerMoved{X: x, Y: y, Pan: panModifier})
	})
	s.win.SetScrollCallback(func(delta float32) {
		s.cam.Update(camera.Scroll{Delta: -delta})
	})
	s.win.SetKeyDownCallback(func(keyCode uint32) {
		if keyCode >= common.Key1 && keyCode <= common.Key9 {
			s.SetResolution(int(keyCode-common.Key0) * resolutionKeyStep)
			return
		}
		s.cam.Update(camera.KeyPressed{Code: keyCode})
	})
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Camera() camera.Camera {
	return s.cam
}

func (s *scene) Renderer() renderer.Renderer {
	return s.r
}

func (s *scene) Model() model.Model {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gridModel
}

func (s *scene) Resolution() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolution
}

func (s *scene) SetResolution(resolution int) {
	// Mirror the grid package clamp so stale-result detection below compares
	// like with like.
	if resolution < 1 {
		resolution = grid.DefaultResolution
	}
	if resolution > grid.MaxResolution {
		resolution = grid.MaxResolution
	}

	s.mu.Lock()
	if resolution == s.resolution {
		s.mu.Unlock()
		return
	}
	s.resolution = resolution
	id := s.nextTaskID
	s.nextTaskID++
	s.mu.Unlock()

	s.meshPool.SubmitTask(worker.Task{
		ID: id,
		Do: func() (any, error) {
			g := grid.NewGrid(grid.WithResolution(resolution))
			staged := &stagedMesh{
				resolution: g.Resolution(),
				vertexData: g.VertexBytes(),
				indexData:  g.IndexBytes(),
				indexCount: g.IndexCount(),
			}

			s.mu.Lock()
			// A newer request may have superseded this one while the mesh was
			// generating; only the latest resolution wins.
			if staged.resolution == s.resolution {
				s.pendingMesh = staged
			}
			s.mu.Unlock()
			return nil, nil
		},
	})
}

func (s *scene) Aspect() float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.aspect
}

func (s *scene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.mu.Lock()
	s.aspect = float32(width) / float32(height)
	s.mu.Unlock()
	s.r.Resize(width, height)
}

func (s *scene) PrepareFrame(_ float32) error {
	s.mu.Lock()
	staged := s.pendingMesh
	s.pendingMesh = nil
	aspect := s.aspect
	s.mu.Unlock()

	if staged != nil {
		if err := s.applyStagedMesh(staged); err != nil {
			return err
		}
	}

	uniform := camera.GPUCameraUniform{MVP: s.cam.MVPMatrix(aspect)}
	s.writes[0].Data = uniform.Marshal()
	s.r.WriteBuffers(s.writes)
	return nil
}

// applyStagedMesh uploads a regenerated grid mesh into fresh GPU buffers and
// swaps it into the model. Runs before BeginFrame, so the previous frame's
// command buffer has already been submitted when the old buffers are released.
func (s *scene) applyStagedMesh(staged *stagedMesh) error {
	provider := bind_group_provider.NewBindGroupProvider("grid mesh")
	if err := s.r.InitMeshBuffers(provider, staged.vertexData, staged.indexData, staged.indexCount); err != nil {
		return fmt.Errorf("applying staged grid mesh: %w", err)
	}

	s.mu.Lock()
	old := s.gridModel.MeshProvider()
	s.gridModel.SetMeshProvider(provider)
	s.gridModel.SetVertexData(staged.vertexData)
	s.gridModel.SetIndexData(staged.indexData)
	s.gridModel.SetIndexCount(staged.indexCount)
	s.mu.Unlock()

	if old != nil {
		old.Release()
	}
	return nil
}

func (s *scene) DrawCalls() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.gridModel == nil {
		return fmt.Errorf("scene has no grid model")
	}
	return s.r.DrawCall(s.gridModel.PipelineKey(), s.gridModel.MeshProvider(), 1, s.drawBindGroups)
}
