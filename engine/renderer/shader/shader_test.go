package shader

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSource = `@vertex fn vs_main() -> @builtin(position) vec4<f32> { return vec4<f32>(0.0); }`

func TestNewShaderDefaults(t *testing.T) {
	s := NewShader("test", testSource)

	assert.Equal(t, "test", s.Key())
	assert.Equal(t, testSource, s.Source())
	assert.Equal(t, "vs_main", s.VertexEntryPoint())
	assert.Equal(t, "fs_main", s.FragmentEntryPoint())
	assert.Nil(t, s.VertexLayouts())
	assert.Empty(t, s.BindGroupLayoutDescriptors())

	require.NotNil(t, s.Module())
	assert.Equal(t, "test", s.Module().Label)
	require.NotNil(t, s.Module().WGSLDescriptor)
	assert.Equal(t, testSource, s.Module().WGSLDescriptor.Code)
}

func TestNewShaderPanicsOnEmptySource(t *testing.T) {
	assert.Panics(t, func() {
		NewShader("empty", "")
	})
}

func TestWithEntryPoints(t *testing.T) {
	s := NewShader("test", testSource, WithEntryPoints("vertex_main", "fragment_main"))

	assert.Equal(t, "vertex_main", s.VertexEntryPoint())
	assert.Equal(t, "fragment_main", s.FragmentEntryPoint())
}

func TestWithBindGroupLayoutDescriptor(t *testing.T) {
	desc := wgpu.BindGroupLayoutDescriptor{
		Label: "uniforms",
		Entries: []wgpu.BindGroupLayoutEntry{{
			Binding:    0,
			Visibility: wgpu.ShaderStageVertex,
			Buffer: wgpu.BufferBindingLayout{
				Type:           wgpu.BufferBindingTypeUniform,
				MinBindingSize: 64,
			},
		}},
	}
	s := NewShader("test", testSource, WithBindGroupLayoutDescriptor(0, desc))

	got := s.BindGroupLayoutDescriptor(0)
	assert.Equal(t, "uniforms", got.Label)
	require.Len(t, got.Entries, 1)
	assert.Equal(t, uint64(64), got.Entries[0].Buffer.MinBindingSize)

	// Unset groups come back as zero-value descriptors.
	assert.Empty(t, s.BindGroupLayoutDescriptor(3).Entries)
}

func TestWithVertexLayouts(t *testing.T) {
	layout := wgpu.VertexBufferLayout{
		ArrayStride: 32,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 1},
		},
	}
	s := NewShader("test", testSource, WithVertexLayouts(layout))

	require.Len(t, s.VertexLayouts(), 1)
	assert.Equal(t, uint64(32), s.VertexLayouts()[0].ArrayStride)
	assert.Len(t, s.VertexLayouts()[0].Attributes, 2)
}
