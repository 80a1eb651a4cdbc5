package model

import (
	"testing"

	"github.com/Carmen-Shannon/gridline-go/engine/renderer/bind_group_provider"
	"github.com/stretchr/testify/assert"
)

func TestNewModelDefaults(t *testing.T) {
	m := NewModel()

	assert.Empty(t, m.Name())
	assert.Empty(t, m.PipelineKey())
	assert.Nil(t, m.MeshProvider())
	assert.Nil(t, m.VertexData())
	assert.Nil(t, m.IndexData())
	assert.Zero(t, m.IndexCount())
}

func TestNewModelWithOptions(t *testing.T) {
	vertexData := []byte{1, 2, 3, 4}
	indexData := []byte{0, 0, 0, 0}

	m := NewModel(
		WithName("grid"),
		WithPipelineKey("lines"),
		WithMeshData(vertexData, indexData, 1),
	)

	assert.Equal(t, "grid", m.Name())
	assert.Equal(t, "lines", m.PipelineKey())
	assert.Equal(t, vertexData, m.VertexData())
	assert.Equal(t, indexData, m.IndexData())
	assert.Equal(t, 1, m.IndexCount())
}

func TestModelMeshSwap(t *testing.T) {
	m := NewModel(WithMeshData([]byte{1}, []byte{2}, 1))

	provider := bind_group_provider.NewBindGroupProvider("swap")
	m.SetMeshProvider(provider)
	m.SetVertexData([]byte{3, 4})
	m.SetIndexData([]byte{5, 6})
	m.SetIndexCount(2)

	assert.Same(t, provider, m.MeshProvider())
	assert.Equal(t, []byte{3, 4}, m.VertexData())
	assert.Equal(t, []byte{5, 6}, m.IndexData())
	assert.Equal(t, 2, m.IndexCount())
}
