package engine

import (
	"github.com/spaghettifunk/lumen/engine/renderer"
)

/**
 * @brief A Game is the host application the engine runs. The engine owns
 * the window, input, events and the renderer; the game fills in behavior
 * through the function hooks. All hooks run on the main thread.
 */
type Game struct {
	ApplicationConfig ApplicationConfig

	// FnInitialize runs once the renderer is up, before the main loop.
	// Create geometries and programs here.
	FnInitialize func(engine *Engine) error
	// FnUpdate runs once per frame before rendering.
	FnUpdate func(engine *Engine, deltaTime float64) error
	// FnRender builds the frame's render packet.
	FnRender func(engine *Engine, packet *renderer.RenderPacket, deltaTime float64) error
	// FnOnResize is told about framebuffer size changes, after the
	// renderer has already adjusted its viewport.
	FnOnResize func(engine *Engine, width, height uint32)
	// FnShutdown runs after the main loop exits, before teardown.
	FnShutdown func(engine *Engine) error

	// State is for the game's own data; the engine never touches it.
	State interface{}
}
