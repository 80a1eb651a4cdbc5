package pipeline

import (
	"testing"

	"github.com/Carmen-Shannon/gridline-go/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPipelineDefaults(t *testing.T) {
	p := NewPipeline("test")

	assert.Equal(t, "test", p.PipelineKey())
	assert.Nil(t, p.Pipeline())
	assert.Nil(t, p.Shader())
	assert.True(t, p.DepthTestEnabled())
	assert.True(t, p.DepthWriteEnabled())
	assert.False(t, p.BlendEnabled())
	assert.Equal(t, wgpu.CullModeNone, p.CullMode())
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, p.Topology())
	assert.Equal(t, wgpu.FrontFaceCCW, p.FrontFace())
	assert.Equal(t, wgpu.ColorWriteMaskAll, p.WriteMask())

	require.NotNil(t, p.BlendState())
	assert.Equal(t, wgpu.BlendFactorSrcAlpha, p.BlendState().Color.SrcFactor)
}

func TestPipelineOptions(t *testing.T) {
	src := `@vertex fn vs_main() -> @builtin(position) vec4<f32> { return vec4<f32>(0.0); }`
	s := shader.NewShader("lines", src)

	p := NewPipeline("lines",
		WithShader(s),
		WithTopology(wgpu.PrimitiveTopologyLineList),
		WithDepthWriteEnabled(false),
		WithCullMode(wgpu.CullModeBack),
		WithDepthBias(2, 0.5),
	)

	assert.Same(t, s, p.Shader())
	assert.Equal(t, wgpu.PrimitiveTopologyLineList, p.Topology())
	assert.False(t, p.DepthWriteEnabled())
	assert.True(t, p.DepthTestEnabled())
	assert.Equal(t, wgpu.CullModeBack, p.CullMode())
	assert.Equal(t, int32(2), p.DepthBias())
	assert.Equal(t, float32(0.5), p.DepthBiasSlopeScale())
}
