package grid

// GridBuilderOption is a functional option for configuring a Grid during construction.
type GridBuilderOption func(*gridImpl)

// WithResolution sets the number of grid subdivisions per axis.
// Values below 1 fall back to DefaultResolution and values above MaxResolution
// are clamped.
//
// Parameters:
//   - resolution: subdivisions per axis.
//
// Returns:
//   - GridBuilderOption: the option to pass to NewGrid.
func WithResolution(resolution int) GridBuilderOption {
	return func(g *gridImpl) {
		g.resolution = resolution
	}
}
