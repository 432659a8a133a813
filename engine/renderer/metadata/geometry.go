package metadata

import (
	"fmt"

	"github.com/google/uuid"
)

// VertexAttribute describes one interleaved float32 attribute in a vertex
// buffer, in shader location order.
type VertexAttribute struct {
	Name string
	// Number of float32 components (3 for a position or normal, and so on).
	Size int32
}

/**
 * @brief Describes the CPU-side data of a piece of geometry to be uploaded
 * once and rendered many times. Vertices are interleaved float32 values
 * matching the attribute list. Indices may be empty for non-indexed geometry.
 */
type GeometryConfig struct {
	Name       string
	Attributes []VertexAttribute
	Vertices   []float32
	Indices    []uint32
}

// Stride returns the number of float32 values per vertex.
func (gc *GeometryConfig) Stride() int32 {
	var stride int32
	for _, a := range gc.Attributes {
		stride += a.Size
	}
	return stride
}

// VertexCount returns how many vertices the interleaved buffer holds.
func (gc *GeometryConfig) VertexCount() uint32 {
	stride := gc.Stride()
	if stride == 0 {
		return 0
	}
	return uint32(len(gc.Vertices)) / uint32(stride)
}

// Validate checks that the vertex data is an exact multiple of the stride
// and that every index references an existing vertex.
func (gc *GeometryConfig) Validate() error {
	stride := gc.Stride()
	if stride == 0 {
		return fmt.Errorf("geometry %q has no vertex attributes", gc.Name)
	}
	if int32(len(gc.Vertices))%stride != 0 {
		return fmt.Errorf("geometry %q vertex data length %d is not a multiple of stride %d", gc.Name, len(gc.Vertices), stride)
	}
	vertexCount := gc.VertexCount()
	for i, idx := range gc.Indices {
		if idx >= vertexCount {
			return fmt.Errorf("geometry %q index %d references vertex %d of %d", gc.Name, i, idx, vertexCount)
		}
	}
	return nil
}

/**
 * @brief GPU-resident geometry created by the renderer backend. InternalID
 * is the backend's handle (a vertex array object for the OpenGL backend).
 */
type Geometry struct {
	ID          uuid.UUID
	Name        string
	VertexCount uint32
	IndexCount  uint32
	InternalID  uint32
}
