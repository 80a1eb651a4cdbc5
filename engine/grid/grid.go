// Package grid builds the reference line mesh rendered by the viewer: the three
// world axes colored red (X), green (Y) and blue (Z), plus evenly spaced white
// grid lines across the three origin planes of the unit cube.
package grid

// DefaultResolution is the number of grid subdivisions per axis when none is requested.
const DefaultResolution = 16

// MaxResolution caps grid subdivisions so a mesh rebuild can never allocate unbounded memory.
const MaxResolution = 256

var (
	colorRed   = [4]float32{1.0, 0.0, 0.0, 1.0}
	colorGreen = [4]float32{0.0, 1.0, 0.0, 1.0}
	colorBlue  = [4]float32{0.0, 0.0, 1.0, 1.0}
	colorWhite = [4]float32{1.0, 1.0, 1.0, 1.0}
)

// Grid is a generated line mesh ready for GPU upload. The mesh is immutable after
// construction; to change the resolution, build a new Grid.
type Grid interface {
	// Resolution returns the number of subdivisions per axis used to generate the mesh.
	//
	// Returns:
	//   - int: the subdivision count.
	Resolution() int

	// Vertices returns the generated vertex data. The returned slice is owned by the
	// Grid and must not be modified.
	//
	// Returns:
	//   - []GPUVertex: the line vertices (axes first, then grid lines).
	Vertices() []GPUVertex

	// Indices returns the line-list index data. Each consecutive pair of indices
	// forms one line segment.
	//
	// Returns:
	//   - []uint32: the line-list indices.
	Indices() []uint32

	// IndexCount returns the number of indices in the mesh.
	//
	// Returns:
	//   - int: the index count (always even for a line list).
	IndexCount() int

	// VertexBytes serializes the vertex data into a buffer suitable for GPU upload.
	//
	// Returns:
	//   - []byte: vertex buffer contents (32 bytes per vertex, little-endian).
	VertexBytes() []byte

	// IndexBytes serializes the index data into a buffer suitable for GPU upload.
	//
	// Returns:
	//   - []byte: index buffer contents (uint32 little-endian).
	IndexBytes() []byte
}

var _ Grid = &gridImpl{}

type gridImpl struct {
	resolution int
	vertices   []GPUVertex
	indices    []uint32
}

// NewGrid generates an axes-and-grid line mesh.
//
// The mesh always starts with the three unit axes from the origin (X red, Y green,
// Z blue). After the axes, each subdivision step adds four white line segments,
// two per origin plane pair, spanning the XY, YZ and XZ planes of the unit cube.
// A resolution of n yields 6 + 12*n vertices with one index per vertex.
//
// Parameters:
//   - options: optional builder options (see grid_builder.go).
//
// Returns:
//   - Grid: the generated mesh.
func NewGrid(options ...GridBuilderOption) Grid {
	g := &gridImpl{
		resolution: DefaultResolution,
	}
	for _, opt := range options {
		opt(g)
	}
	if g.resolution < 1 {
		g.resolution = DefaultResolution
	}
	if g.resolution > MaxResolution {
		g.resolution = MaxResolution
	}
	g.generate()
	return g
}

func (g *gridImpl) Resolution() int {
	return g.resolution
}

func (g *gridImpl) Vertices() []GPUVertex {
	return g.vertices
}

func (g *gridImpl) Indices() []uint32 {
	return g.indices
}

func (g *gridImpl) IndexCount() int {
	return len(g.indices)
}

func (g *gridImpl) VertexBytes() []byte {
	buf := make([]byte, 0, len(g.vertices)*32)
	for i := range g.vertices {
		buf = append(buf, g.vertices[i].Marshal()...)
	}
	return buf
}

func (g *gridImpl) IndexBytes() []byte {
	buf := make([]byte, 0, len(g.indices)*4)
	for _, idx := range g.indices {
		buf = append(buf, byte(idx), byte(idx>>8), byte(idx>>16), byte(idx>>24))
	}
	return buf
}

// generate fills the vertex and index slices. Indices are sequential because
// every segment gets its own vertex pair; sharing endpoints would tint the
// origin where differently colored axes meet.
func (g *gridImpl) generate() {
	vertexCount := 6 + 12*g.resolution
	g.vertices = make([]GPUVertex, 0, vertexCount)
	g.indices = make([]uint32, 0, vertexCount)

	g.segment([3]float32{0, 0, 0}, [3]float32{1, 0, 0}, colorRed)
	g.segment([3]float32{0, 0, 0}, [3]float32{0, 1, 0}, colorGreen)
	g.segment([3]float32{0, 0, 0}, [3]float32{0, 0, 1}, colorBlue)

	step := 1.0 / float32(g.resolution)
	for i := 1; i <= g.resolution; i++ {
		t := float32(i) * step

		// XY plane (z = 0)
		g.segment([3]float32{0, t, 0}, [3]float32{1, t, 0}, colorWhite)
		g.segment([3]float32{t, 0, 0}, [3]float32{t, 1, 0}, colorWhite)

		// YZ plane (x = 0)
		g.segment([3]float32{0, t, 0}, [3]float32{0, t, 1}, colorWhite)
		g.segment([3]float32{0, 0, t}, [3]float32{0, 1, t}, colorWhite)

		// XZ plane (y = 0)
		g.segment([3]float32{t, 0, 0}, [3]float32{t, 0, 1}, colorWhite)
		g.segment([3]float32{0, 0, t}, [3]float32{1, 0, t}, colorWhite)
	}
}

func (g *gridImpl) segment(from, to [3]float32, col [4]float32) {
	g.vertices = append(g.vertices,
		GPUVertex{Position: [4]float32{from[0], from[1], from[2], 1.0}, Color: col},
		GPUVertex{Position: [4]float32{to[0], to[1], to[2], 1.0}, Color: col},
	)
	g.indices = append(g.indices, uint32(len(g.vertices)-2), uint32(len(g.vertices)-1))
}
