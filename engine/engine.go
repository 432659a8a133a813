package engine

import (
	"fmt"

	"github.com/spaghettifunk/lumen/engine/assets"
	"github.com/spaghettifunk/lumen/engine/core"
	"github.com/spaghettifunk/lumen/engine/platform"
	"github.com/spaghettifunk/lumen/engine/renderer"
	"github.com/spaghettifunk/lumen/engine/systems"
)

/**
 * @brief The engine ties the subsystems together and drives the main loop.
 * Stage order matters: events and input exist before the window so that
 * the window callbacks always have somewhere to deliver.
 */
type Engine struct {
	currentGame *Game

	platform      *platform.Platform
	renderer      *renderer.Renderer
	watcher       *assets.Watcher
	geometrySys   *systems.GeometrySystem
	cameraSys     *systems.CameraSystem
	clock         *core.Clock
	lastTime      float64
	width         uint32
	height        uint32
	isRunning     bool
	isSuspended   bool
	isInitialized bool
}

// New wires an engine around the given game. Initialize must be called
// before Run.
func New(g *Game) (*Engine, error) {
	if g == nil {
		return nil, fmt.Errorf("engine requires a game")
	}
	return &Engine{
		currentGame: g,
		platform:    platform.New(),
		clock:       core.NewClock(),
		width:       g.ApplicationConfig.StartWidth,
		height:      g.ApplicationConfig.StartHeight,
	}, nil
}

// Initialize brings up every subsystem in dependency order and then runs
// the game's own initialization hook.
func (e *Engine) Initialize() error {
	if e.isInitialized {
		return fmt.Errorf("engine already initialized")
	}

	config := e.currentGame.ApplicationConfig
	core.SetLogLevel(config.Level())

	if !core.EventSystemInitialize() {
		return fmt.Errorf("event system failed to initialize")
	}

	if err := core.InputInitialize(); err != nil {
		return err
	}
	if err := core.MetricsInitialize(); err != nil {
		return err
	}

	core.EventRegister(core.EVENT_CODE_APPLICATION_QUIT, e.onQuit)
	core.EventRegister(core.EVENT_CODE_RESIZED, e.onResized)

	if err := e.platform.Startup(config.Name, config.StartWidth, config.StartHeight); err != nil {
		return err
	}

	e.renderer = renderer.New(config.AssetsRoot)
	fbWidth, fbHeight := e.platform.FramebufferSize()
	if err := e.renderer.Initialize(fbWidth, fbHeight); err != nil {
		return fmt.Errorf("renderer failed to initialize: %w", err)
	}

	if config.WatchAssets {
		watcher, err := assets.NewWatcher(config.AssetsRoot)
		if err != nil {
			core.LogWarn("asset watching disabled: %v", err)
		} else {
			e.watcher = watcher
		}
	}

	e.geometrySys = systems.NewGeometrySystem()
	e.cameraSys = systems.NewCameraSystem(systems.CameraSystemConfig{MaxCameraCount: 16})

	if e.currentGame.FnInitialize != nil {
		if err := e.currentGame.FnInitialize(e); err != nil {
			return fmt.Errorf("game failed to initialize: %w", err)
		}
	}

	e.isRunning = true
	e.isInitialized = true
	return nil
}

// Run drives the main loop until the window closes or the game asks to
// quit. Queued events are dispatched at the top of every frame, so all
// listeners run here on the context-owning thread. Input state is rolled
// at the end of the frame so that "pressed this frame" queries work
// during update.
func (e *Engine) Run() error {
	if !e.isInitialized {
		return fmt.Errorf("engine is not initialized")
	}

	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed()

	for e.isRunning && e.platform.PumpMessages() {
		core.EventsDispatch()
		if !e.isRunning {
			break
		}
		if e.isSuspended {
			// Nothing to draw; sleep until the window has news.
			e.platform.WaitMessages()
			continue
		}

		e.clock.Update()
		currentTime := e.clock.Elapsed()
		deltaTime := currentTime - e.lastTime
		frameStartTime := e.platform.GetAbsoluteTime()

		if e.currentGame.FnUpdate != nil {
			if err := e.currentGame.FnUpdate(e, deltaTime); err != nil {
				core.LogError("game update failed: %v", err)
				e.isRunning = false
				break
			}
		}

		packet := &renderer.RenderPacket{DeltaTime: deltaTime}
		if e.currentGame.FnRender != nil {
			if err := e.currentGame.FnRender(e, packet, deltaTime); err != nil {
				core.LogError("game render failed: %v", err)
				e.isRunning = false
				break
			}
		}

		if err := e.renderer.DrawFrame(packet); err != nil {
			core.LogError("frame draw failed: %v", err)
			e.isRunning = false
			break
		}
		e.platform.SwapBuffers()

		frameElapsedTime := e.platform.GetAbsoluteTime() - frameStartTime
		core.MetricsUpdate(frameElapsedTime)

		core.InputUpdate(deltaTime)
		e.lastTime = currentTime
	}

	return e.shutdown()
}

// Quit asks the main loop to exit after the current frame. Safe to call
// from any goroutine: the request travels through the event queue and is
// honored by the loop's own dispatch.
func (e *Engine) Quit() {
	core.EventFire(core.EventContext{Type: core.EVENT_CODE_APPLICATION_QUIT})
	e.platform.WakeUp()
}

func (e *Engine) shutdown() error {
	if e.currentGame.FnShutdown != nil {
		if err := e.currentGame.FnShutdown(e); err != nil {
			core.LogError("game shutdown failed: %v", err)
		}
	}

	if e.watcher != nil {
		e.watcher.Close()
	}
	e.renderer.Shutdown()
	core.InputShutdown()
	if err := core.EventSystemShutdown(); err != nil {
		core.LogError("event system shutdown failed: %v", err)
	}
	e.platform.Shutdown()

	e.isInitialized = false
	core.LogInfo("engine shut down cleanly")
	return nil
}

func (e *Engine) onQuit(context core.EventContext) {
	core.LogInfo("quit requested")
	e.isRunning = false
}

// onResized suspends the loop while the window is minimized and forwards
// real size changes to the renderer and the game.
func (e *Engine) onResized(context core.EventContext) {
	event, ok := context.Data.(core.SystemEvent)
	if !ok {
		return
	}
	if event.WindowWidth == 0 || event.WindowHeight == 0 {
		core.LogInfo("window minimized, suspending")
		e.isSuspended = true
		return
	}
	if e.isSuspended {
		core.LogInfo("window restored, resuming")
		e.isSuspended = false
		// Rebase the frame delta so the minimized stretch does not land
		// on the first frame back as one giant time step.
		e.clock.Update()
		e.lastTime = e.clock.Elapsed()
	}
	e.width = event.WindowWidth
	e.height = event.WindowHeight
	if e.renderer != nil {
		e.renderer.OnResize(event.WindowWidth, event.WindowHeight)
	}
	if e.currentGame.FnOnResize != nil {
		e.currentGame.FnOnResize(e, event.WindowWidth, event.WindowHeight)
	}
}

// Game returns the game the engine is running.
func (e *Engine) Game() *Game {
	return e.currentGame
}

// Renderer exposes the renderer frontend to the game.
func (e *Engine) Renderer() *renderer.Renderer {
	return e.renderer
}

// GeometrySystem exposes the geometry generators to the game.
func (e *Engine) GeometrySystem() *systems.GeometrySystem {
	return e.geometrySys
}

// CameraSystem exposes the camera registry to the game.
func (e *Engine) CameraSystem() *systems.CameraSystem {
	return e.cameraSys
}

// Size returns the current framebuffer size.
func (e *Engine) Size() (uint32, uint32) {
	return e.width, e.height
}
