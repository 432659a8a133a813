package renderer

import (
	"fmt"

	"github.com/spaghettifunk/lumen/engine/assets"
	"github.com/spaghettifunk/lumen/engine/core"
	"github.com/spaghettifunk/lumen/engine/math"
	"github.com/spaghettifunk/lumen/engine/renderer/metadata"
	"github.com/spaghettifunk/lumen/engine/renderer/opengl"
)

// DrawCall pairs a geometry with the program and per-object uniforms used
// to render it.
type DrawCall struct {
	ProgramName string
	Geometry    *metadata.Geometry
	Model       math.Mat4
	// ObjectColor feeds programs with an objectColor uniform. Nil for
	// programs that color from vertex attributes or a constant.
	ObjectColor *math.Vec3
}

// RenderPacket is everything the frontend needs to draw one frame.
type RenderPacket struct {
	DeltaTime float64
	Global    metadata.GlobalState
	Draws     []DrawCall
}

type program struct {
	config metadata.ProgramConfig
	shader *opengl.ShaderProgram
}

/**
 * @brief The renderer frontend. Owns the OpenGL backend, the geometry and
 * program registries, and the shader hot-reload path. Gameplay code talks
 * to this type only; GL handles never leave the renderer package.
 */
type Renderer struct {
	backend    *opengl.Backend
	assetsRoot string
	programs   map[string]*program
	geometries map[string]*metadata.Geometry
}

// New creates the frontend around a fresh OpenGL backend.
func New(assetsRoot string) *Renderer {
	return &Renderer{
		backend:    opengl.NewBackend(),
		assetsRoot: assetsRoot,
		programs:   make(map[string]*program),
		geometries: make(map[string]*metadata.Geometry),
	}
}

// Initialize brings up the backend and subscribes to asset-written events
// for shader hot reload.
func (r *Renderer) Initialize(width, height uint32) error {
	if err := r.backend.Initialize(width, height); err != nil {
		return err
	}
	core.EventRegister(core.EVENT_CODE_ASSET_WRITTEN, r.onAssetWritten)
	return nil
}

// Shutdown destroys every program and geometry and tears down the backend.
func (r *Renderer) Shutdown() {
	for _, p := range r.programs {
		p.shader.Destroy()
	}
	r.programs = make(map[string]*program)
	r.geometries = make(map[string]*metadata.Geometry)
	r.backend.Shutdown()
}

// OnResize forwards the new framebuffer size to the backend.
func (r *Renderer) OnResize(width, height uint32) {
	r.backend.Resized(width, height)
}

// SetClearColor sets the per-frame clear color.
func (r *Renderer) SetClearColor(red, green, blue, alpha float32) {
	r.backend.SetClearColor(red, green, blue, alpha)
}

// SetPolygonMode switches between filled and wireframe rendering.
func (r *Renderer) SetPolygonMode(mode metadata.PolygonMode) {
	r.backend.SetPolygonMode(mode)
}

// CreateGeometry validates and uploads a geometry config and registers the
// result under its name.
func (r *Renderer) CreateGeometry(config *metadata.GeometryConfig) (*metadata.Geometry, error) {
	if _, exists := r.geometries[config.Name]; exists {
		return nil, fmt.Errorf("geometry %q already exists", config.Name)
	}
	geometry, err := r.backend.CreateGeometry(config)
	if err != nil {
		return nil, err
	}
	r.geometries[config.Name] = geometry
	core.LogDebug("created geometry %s (%d vertices, %d indices)", geometry.Name, geometry.VertexCount, geometry.IndexCount)
	return geometry, nil
}

// GetGeometry returns a previously created geometry by name.
func (r *Renderer) GetGeometry(name string) (*metadata.Geometry, error) {
	g, ok := r.geometries[name]
	if !ok {
		return nil, fmt.Errorf("unknown geometry %q", name)
	}
	return g, nil
}

// DestroyGeometry releases a geometry's GPU resources and unregisters it.
func (r *Renderer) DestroyGeometry(name string) {
	if g, ok := r.geometries[name]; ok {
		r.backend.DestroyGeometry(g)
		delete(r.geometries, name)
	}
}

// CreateProgram loads, compiles and links a program from its GLSL sources.
// A failure here is fatal to startup; the caller decides that.
func (r *Renderer) CreateProgram(config metadata.ProgramConfig) error {
	if _, exists := r.programs[config.Name]; exists {
		return fmt.Errorf("program %q already exists", config.Name)
	}
	shader, err := r.buildProgram(config)
	if err != nil {
		return err
	}
	r.programs[config.Name] = &program{config: config, shader: shader}
	core.LogDebug("created program %s", config.Name)
	return nil
}

func (r *Renderer) buildProgram(config metadata.ProgramConfig) (*opengl.ShaderProgram, error) {
	vertexSource, err := assets.LoadShaderSource(r.assetsRoot, config.VertexPath)
	if err != nil {
		return nil, err
	}
	fragmentSource, err := assets.LoadShaderSource(r.assetsRoot, config.FragmentPath)
	if err != nil {
		return nil, err
	}
	return opengl.NewShaderProgram(config.Name, vertexSource, fragmentSource)
}

// onAssetWritten rebuilds every program that uses the changed source file.
// Listeners run from the main loop's event dispatch, on the thread that
// owns the GL context, so the compile calls here are safe. A rebuild
// failure keeps the previous program running, so a bad edit can never
// take the demo down.
func (r *Renderer) onAssetWritten(context core.EventContext) {
	event, ok := context.Data.(core.AssetEvent)
	if !ok {
		return
	}
	for _, p := range r.programs {
		if p.config.VertexPath != event.Path && p.config.FragmentPath != event.Path {
			continue
		}
		shader, err := r.buildProgram(p.config)
		if err != nil {
			core.LogError("hot reload of program %s failed, keeping previous build: %v", p.config.Name, err)
			continue
		}
		p.shader.Destroy()
		p.shader = shader
		core.LogInfo("hot reloaded program %s", p.config.Name)
	}
}

// DrawFrame renders one frame: clear, then for each draw call bind the
// program, upload the shared and per-object uniforms and issue the draw.
func (r *Renderer) DrawFrame(packet *RenderPacket) error {
	if err := r.backend.BeginFrame(packet.DeltaTime); err != nil {
		return err
	}

	for _, draw := range packet.Draws {
		p, ok := r.programs[draw.ProgramName]
		if !ok {
			return fmt.Errorf("draw call references unknown program %q", draw.ProgramName)
		}
		p.shader.Use()
		p.shader.SetMat4("projection", packet.Global.Projection)
		p.shader.SetMat4("view", packet.Global.View)
		p.shader.SetMat4("model", draw.Model)
		p.shader.SetVec3("lightPos", packet.Global.LightPos)
		p.shader.SetVec3("lightColor", packet.Global.LightColor)
		p.shader.SetVec3("viewPos", packet.Global.ViewPos)
		if draw.ObjectColor != nil {
			p.shader.SetVec3("objectColor", *draw.ObjectColor)
		}
		r.backend.DrawGeometry(draw.Geometry)
	}

	return r.backend.EndFrame(packet.DeltaTime)
}
