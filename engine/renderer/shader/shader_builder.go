package shader

import "github.com/cogentcore/webgpu/wgpu"

// ShaderBuilderOption is a functional option used to configure a Shader during construction.
type ShaderBuilderOption func(*shader)

// WithEntryPoints sets the vertex and fragment stage entry point names.
// When not provided, "vs_main" and "fs_main" are used.
//
// Parameters:
//   - vertex: the vertex stage entry point name
//   - fragment: the fragment stage entry point name
//
// Returns:
//   - ShaderBuilderOption: a function that sets the entry points for this shader
func WithEntryPoints(vertex, fragment string) ShaderBuilderOption {
	return func(s *shader) {
		s.vertexEntryPoint = vertex
		s.fragmentEntryPoint = fragment
	}
}

// WithBindGroupLayoutDescriptor declares the bind group layout for a specific group index.
// The entries must match the @group/@binding declarations in the WGSL source.
//
// Parameters:
//   - group: the bind group index
//   - desc: the layout descriptor for the group
//
// Returns:
//   - ShaderBuilderOption: a function that registers the descriptor for this shader
func WithBindGroupLayoutDescriptor(group int, desc wgpu.BindGroupLayoutDescriptor) ShaderBuilderOption {
	return func(s *shader) {
		s.bindGroupLayoutDescriptors[group] = desc
	}
}

// WithVertexLayouts declares the vertex buffer layouts consumed by the vertex stage.
// The attribute formats and offsets must match the VertexInput struct in the WGSL source.
//
// Parameters:
//   - layouts: the vertex buffer layouts, one per vertex buffer slot
//
// Returns:
//   - ShaderBuilderOption: a function that sets the vertex layouts for this shader
func WithVertexLayouts(layouts ...wgpu.VertexBufferLayout) ShaderBuilderOption {
	return func(s *shader) {
		s.vertexLayouts = layouts
	}
}
