package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/google/uuid"

	"github.com/spaghettifunk/lumen/engine/core"
	"github.com/spaghettifunk/lumen/engine/renderer/metadata"
)

// glGeometry pairs the vertex array with the buffers it references, so the
// backend can release everything when the geometry is destroyed.
type glGeometry struct {
	vao uint32
	vbo uint32
	ebo uint32
}

/**
 * @brief The OpenGL renderer backend. Owns all GL object handles; the
 * frontend only sees opaque metadata.Geometry values and ShaderProgram
 * pointers. Every method must run on the thread that owns the GL context.
 */
type Backend struct {
	geometries  map[uint32]*glGeometry
	clearColor  [4]float32
	polygonMode metadata.PolygonMode
}

func NewBackend() *Backend {
	return &Backend{
		geometries: make(map[uint32]*glGeometry),
	}
}

// Initialize loads the GL function pointers from the current context and
// sets the fixed pipeline state the demo relies on.
func (b *Backend) Initialize(width, height uint32) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to load OpenGL functions: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	core.LogInfo("OpenGL version %s", version)

	gl.Enable(gl.DEPTH_TEST)
	gl.Viewport(0, 0, int32(width), int32(height))

	return nil
}

// Shutdown releases every geometry still alive.
func (b *Backend) Shutdown() {
	for id := range b.geometries {
		b.destroyGeometryInternal(id)
	}
}

// Resized updates the viewport to the new framebuffer size.
func (b *Backend) Resized(width, height uint32) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// SetClearColor stores the color used to clear the framebuffer each frame.
func (b *Backend) SetClearColor(r, g, bl, a float32) {
	b.clearColor = [4]float32{r, g, bl, a}
}

// SetPolygonMode switches between filled and wireframe rasterization for
// all subsequent draws.
func (b *Backend) SetPolygonMode(mode metadata.PolygonMode) {
	b.polygonMode = mode
	switch mode {
	case metadata.PolygonModeLine:
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	default:
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// BeginFrame clears the color and depth buffers.
func (b *Backend) BeginFrame(deltaTime float64) error {
	gl.ClearColor(b.clearColor[0], b.clearColor[1], b.clearColor[2], b.clearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	return nil
}

// EndFrame completes the frame. Buffer swapping belongs to the platform
// layer, which owns the window.
func (b *Backend) EndFrame(deltaTime float64) error {
	return nil
}

// CreateGeometry uploads the interleaved vertex data (and indices, when
// present) into GL buffers and records the attribute layout in a vertex
// array object. The VAO name doubles as the geometry's internal id.
func (b *Backend) CreateGeometry(config *metadata.GeometryConfig) (*metadata.Geometry, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	g := &glGeometry{}
	gl.GenVertexArrays(1, &g.vao)
	gl.GenBuffers(1, &g.vbo)
	gl.BindVertexArray(g.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(config.Vertices)*4, gl.Ptr(config.Vertices), gl.STATIC_DRAW)

	if len(config.Indices) > 0 {
		gl.GenBuffers(1, &g.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(config.Indices)*4, gl.Ptr(config.Indices), gl.STATIC_DRAW)
	}

	stride := config.Stride() * 4
	var offset int32
	for i, attribute := range config.Attributes {
		gl.VertexAttribPointerWithOffset(uint32(i), attribute.Size, gl.FLOAT, false, stride, uintptr(offset*4))
		gl.EnableVertexAttribArray(uint32(i))
		offset += attribute.Size
	}

	gl.BindVertexArray(0)

	b.geometries[g.vao] = g

	return &metadata.Geometry{
		ID:          uuid.New(),
		Name:        config.Name,
		VertexCount: config.VertexCount(),
		IndexCount:  uint32(len(config.Indices)),
		InternalID:  g.vao,
	}, nil
}

// DestroyGeometry releases the GL objects behind a geometry.
func (b *Backend) DestroyGeometry(geometry *metadata.Geometry) {
	b.destroyGeometryInternal(geometry.InternalID)
}

func (b *Backend) destroyGeometryInternal(id uint32) {
	g, ok := b.geometries[id]
	if !ok {
		return
	}
	if g.ebo != 0 {
		gl.DeleteBuffers(1, &g.ebo)
	}
	gl.DeleteBuffers(1, &g.vbo)
	gl.DeleteVertexArrays(1, &g.vao)
	delete(b.geometries, id)
}

// DrawGeometry issues the draw call for a previously created geometry,
// indexed or not. The caller is responsible for binding a program and
// setting its uniforms first.
func (b *Backend) DrawGeometry(geometry *metadata.Geometry) {
	gl.BindVertexArray(geometry.InternalID)
	if geometry.IndexCount > 0 {
		gl.DrawElementsWithOffset(gl.TRIANGLES, int32(geometry.IndexCount), gl.UNSIGNED_INT, 0)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, int32(geometry.VertexCount))
	}
	gl.BindVertexArray(0)
}
