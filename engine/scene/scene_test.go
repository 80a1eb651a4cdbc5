package scene

import (
	"strings"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineShaderSourceAssembly(t *testing.T) {
	s := newLineShader()

	src := s.Source()
	assert.True(t, strings.Contains(src, "struct CameraUniform"), "camera uniform struct missing")
	assert.True(t, strings.Contains(src, "struct VertexInput"), "vertex input struct missing")
	assert.True(t, strings.Contains(src, "fn vs_main"), "vertex entry point missing")
	assert.True(t, strings.Contains(src, "fn fs_main"), "fragment entry point missing")
	assert.Equal(t, "vs_main", s.VertexEntryPoint())
	assert.Equal(t, "fs_main", s.FragmentEntryPoint())
}

func TestLineShaderCameraLayout(t *testing.T) {
	s := newLineShader()

	desc := s.BindGroupLayoutDescriptor(cameraGroup)
	require.Len(t, desc.Entries, 1)

	entry := desc.Entries[0]
	assert.Equal(t, uint32(cameraBinding), entry.Binding)
	assert.Equal(t, wgpu.ShaderStageVertex, entry.Visibility)
	assert.Equal(t, wgpu.BufferBindingTypeUniform, entry.Buffer.Type)
	assert.Equal(t, uint64(64), entry.Buffer.MinBindingSize)
}

func TestLineShaderVertexLayout(t *testing.T) {
	s := newLineShader()

	layouts := s.VertexLayouts()
	require.Len(t, layouts, 1)
	assert.Equal(t, uint64(32), layouts[0].ArrayStride)

	require.Len(t, layouts[0].Attributes, 2)
	assert.Equal(t, wgpu.VertexFormatFloat32x4, layouts[0].Attributes[0].Format)
	assert.Equal(t, uint64(0), layouts[0].Attributes[0].Offset)
	assert.Equal(t, uint32(0), layouts[0].Attributes[0].ShaderLocation)
	assert.Equal(t, wgpu.VertexFormatFloat32x4, layouts[0].Attributes[1].Format)
	assert.Equal(t, uint64(16), layouts[0].Attributes[1].Offset)
	assert.Equal(t, uint32(1), layouts[0].Attributes[1].ShaderLocation)
}
