package model

import (
	"github.com/Carmen-Shannon/gridline-go/engine/renderer/bind_group_provider"
)

// ModelBuilderOption is a functional option used to configure a Model during construction.
type ModelBuilderOption func(*model)

// WithName sets the model identifier.
//
// Parameters:
//   - name: the model name
//
// Returns:
//   - ModelBuilderOption: a function that sets the name for this model
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithPipelineKey sets the key of the cached render pipeline that draws this model.
//
// Parameters:
//   - key: the pipeline key
//
// Returns:
//   - ModelBuilderOption: a function that sets the pipeline key for this model
func WithPipelineKey(key string) ModelBuilderOption {
	return func(m *model) {
		m.pipelineKey = key
	}
}

// WithMeshProvider sets the BindGroupProvider that owns this model's GPU buffers.
//
// Parameters:
//   - provider: the mesh bind group provider
//
// Returns:
//   - ModelBuilderOption: a function that sets the mesh provider for this model
func WithMeshProvider(provider bind_group_provider.BindGroupProvider) ModelBuilderOption {
	return func(m *model) {
		m.meshProvider = provider
	}
}

// WithMeshData sets the raw vertex and index bytes for this model's mesh along with
// the index count used for draw calls.
//
// Parameters:
//   - vertexData: the raw vertex data bytes
//   - indexData: the raw index data bytes
//   - indexCount: the number of indices
//
// Returns:
//   - ModelBuilderOption: a function that sets the mesh data for this model
func WithMeshData(vertexData, indexData []byte, indexCount int) ModelBuilderOption {
	return func(m *model) {
		m.vertexData = vertexData
		m.indexData = indexData
		m.indexCount = indexCount
	}
}
