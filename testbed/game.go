package testbed

import (
	"github.com/spaghettifunk/lumen/engine"
	"github.com/spaghettifunk/lumen/engine/core"
	"github.com/spaghettifunk/lumen/engine/math"
	"github.com/spaghettifunk/lumen/engine/renderer"
	"github.com/spaghettifunk/lumen/engine/renderer/components"
	"github.com/spaghettifunk/lumen/engine/renderer/metadata"
)

const (
	sphereSegments uint32 = 70

	programPulse       = "pulse"
	programVertexColor = "vertex_color"
	programLightCube   = "light_cube"
)

type gameState struct {
	camera *components.Camera
	light  *components.OrbitLight

	sphere  *metadata.Geometry
	crystal *metadata.Geometry
	cube    *metadata.Geometry

	polygonMode metadata.PolygonMode
	elapsed     float64
}

// New builds the demo game: a pulsing sphere and a hand-authored crystal
// lit by a point light orbiting the scene, with a small cube marking the
// light's position.
func New(config engine.ApplicationConfig) *engine.Game {
	return &engine.Game{
		ApplicationConfig: config,
		FnInitialize:      initialize,
		FnUpdate:          update,
		FnRender:          render,
		FnOnResize:        onResize,
		FnShutdown:        shutdown,
		State:             &gameState{},
	}
}

func initialize(e *engine.Engine) error {
	state := stateOf(e)
	gs := e.GeometrySystem()
	r := e.Renderer()

	var err error
	if state.sphere, err = r.CreateGeometry(gs.GenerateSphereConfig(sphereSegments, sphereSegments, "sphere")); err != nil {
		return err
	}
	if state.crystal, err = r.CreateGeometry(gs.CrystalConfig("crystal")); err != nil {
		return err
	}
	if state.cube, err = r.CreateGeometry(gs.GenerateCubeConfig(1, 1, 1, "light_cube")); err != nil {
		return err
	}

	programs := []metadata.ProgramConfig{
		{Name: programPulse, VertexPath: "shaders/pulse.vert", FragmentPath: "shaders/pulse.frag"},
		{Name: programVertexColor, VertexPath: "shaders/vertex_color.vert", FragmentPath: "shaders/vertex_color.frag"},
		{Name: programLightCube, VertexPath: "shaders/light_cube.vert", FragmentPath: "shaders/light_cube.frag"},
	}
	for _, pc := range programs {
		if err := r.CreateProgram(pc); err != nil {
			return err
		}
	}

	state.camera = e.CameraSystem().GetDefault()
	state.light = components.NewOrbitLight()
	state.polygonMode = metadata.PolygonModeFill

	core.LogInfo("controls: W/A/S/D move, mouse looks, scroll zooms")
	core.LogInfo("          K wireframe, L fill mode, P reset camera, Esc quits")
	return nil
}

func update(e *engine.Engine, deltaTime float64) error {
	state := stateOf(e)
	state.elapsed += deltaTime
	dt := float32(deltaTime)

	if core.InputKeyPressedThisFrame(core.KEY_ESCAPE) {
		core.EventFire(core.EventContext{Type: core.EVENT_CODE_APPLICATION_QUIT})
	}
	if core.InputKeyPressedThisFrame(core.KEY_K) && state.polygonMode != metadata.PolygonModeLine {
		state.polygonMode = metadata.PolygonModeLine
		e.Renderer().SetPolygonMode(state.polygonMode)
	}
	if core.InputKeyPressedThisFrame(core.KEY_L) && state.polygonMode != metadata.PolygonModeFill {
		state.polygonMode = metadata.PolygonModeFill
		e.Renderer().SetPolygonMode(state.polygonMode)
	}
	if core.InputKeyPressedThisFrame(core.KEY_P) {
		state.camera.Reset(math.NewVec3(0, 0, 5))
	}

	if core.InputIsKeyDown(core.KEY_W) {
		state.camera.Move(components.CameraForward, dt)
	}
	if core.InputIsKeyDown(core.KEY_S) {
		state.camera.Move(components.CameraBackward, dt)
	}
	if core.InputIsKeyDown(core.KEY_A) {
		state.camera.Move(components.CameraLeft, dt)
	}
	if core.InputIsKeyDown(core.KEY_D) {
		state.camera.Move(components.CameraRight, dt)
	}

	if core.InputCursorSeen() {
		x, y := core.InputGetMousePosition()
		px, py := core.InputGetPreviousMousePosition()
		// Screen y grows downward; flip it so that moving the mouse up
		// pitches the camera up.
		state.camera.Look(x-px, py-y, true)
	}

	if wheel := core.InputGetMouseWheelDelta(); wheel != 0 {
		state.camera.Zoom(wheel)
	}

	state.light.Update(state.elapsed)
	return nil
}

func render(e *engine.Engine, packet *renderer.RenderPacket, deltaTime float64) error {
	state := stateOf(e)
	width, height := e.Size()
	aspect := float32(width) / float32(height)

	// The background complements the light color.
	e.Renderer().SetClearColor(
		1.0-state.light.Color.X,
		1.0-state.light.Color.Y,
		1.0-state.light.Color.Z,
		1.0,
	)

	packet.Global = metadata.GlobalState{
		Projection: math.NewMat4Perspective(math.DegToRad(state.camera.Fov), aspect, 0.1, 100.0),
		View:       state.camera.ViewMatrix(),
		ViewPos:    state.camera.Position,
		LightPos:   state.light.Position,
		LightColor: state.light.Color,
	}

	sphereColor := components.PulseColor(state.elapsed)
	lightModel := math.NewMat4Translation(state.light.Position).
		Mul(math.NewMat4Scale(math.NewVec3(0.2, 0.2, 0.2)))

	packet.Draws = []renderer.DrawCall{
		{
			ProgramName: programPulse,
			Geometry:    state.sphere,
			Model:       math.NewMat4Identity(),
			ObjectColor: &sphereColor,
		},
		{
			ProgramName: programVertexColor,
			Geometry:    state.crystal,
			Model:       math.NewMat4EulerY(math.DegToRad(45.0)),
		},
		{
			ProgramName: programLightCube,
			Geometry:    state.cube,
			Model:       lightModel,
		},
	}
	return nil
}

func onResize(e *engine.Engine, width, height uint32) {
	core.LogDebug("framebuffer resized to %dx%d", width, height)
}

func shutdown(e *engine.Engine) error {
	fps, frameTime := core.MetricsFrame()
	core.LogInfo("last frame average: %.1f fps, %.2f ms", fps, frameTime)
	return nil
}

func stateOf(e *engine.Engine) *gameState {
	// The engine hands back the same *Game it was built with, so the
	// assertion cannot fail outside of programmer error.
	return e.Game().State.(*gameState)
}
