package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/spaghettifunk/lumen/engine/core"
)

func init() {
	// GLFW and the GL context are bound to the thread they were created on.
	runtime.LockOSThread()
}

/**
 * @brief The platform layer. Owns the GLFW window and translates its
 * callbacks into the engine's input state and event system. Everything
 * here must run on the main thread.
 */
type Platform struct {
	window *glfw.Window
}

func New() *Platform {
	return &Platform{}
}

// Startup initializes GLFW, opens the window with a core-profile context
// and installs the input callbacks. The cursor is captured for mouse look.
func (p *Platform) Startup(applicationName string, width, height uint32) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err := glfw.CreateWindow(int(width), int(height), applicationName, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("failed to create window: %w", err)
	}
	p.window = window

	window.MakeContextCurrent()
	glfw.SwapInterval(1)
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	window.SetKeyCallback(p.onKey)
	window.SetMouseButtonCallback(p.onMouseButton)
	window.SetCursorPosCallback(p.onCursorPos)
	window.SetScrollCallback(p.onScroll)
	window.SetFramebufferSizeCallback(p.onFramebufferSize)

	return nil
}

// Shutdown destroys the window and terminates GLFW.
func (p *Platform) Shutdown() {
	if p.window != nil {
		p.window.Destroy()
		p.window = nil
	}
	glfw.Terminate()
}

// PumpMessages processes pending window events. It returns false once the
// window has been asked to close.
func (p *Platform) PumpMessages() bool {
	glfw.PollEvents()
	return !p.window.ShouldClose()
}

// RequestClose flags the window for closing; the main loop exits on the
// next PumpMessages.
func (p *Platform) RequestClose() {
	p.window.SetShouldClose(true)
}

// WaitMessages blocks until at least one window event arrives, then
// processes it. Used instead of PumpMessages while minimized so the loop
// does not spin.
func (p *Platform) WaitMessages() {
	glfw.WaitEvents()
}

// WakeUp unblocks a WaitMessages call from another goroutine.
func (p *Platform) WakeUp() {
	glfw.PostEmptyEvent()
}

// SwapBuffers presents the frame.
func (p *Platform) SwapBuffers() {
	p.window.SwapBuffers()
}

// FramebufferSize returns the drawable size in pixels, which differs from
// the window size on high-DPI displays.
func (p *Platform) FramebufferSize() (uint32, uint32) {
	w, h := p.window.GetFramebufferSize()
	return uint32(w), uint32(h)
}

// GetAbsoluteTime returns seconds since GLFW was initialized.
func (p *Platform) GetAbsoluteTime() float64 {
	return glfw.GetTime()
}

func (p *Platform) onKey(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Repeat {
		return
	}
	code, ok := translateKey(key)
	if !ok {
		return
	}
	core.InputProcessKey(code, action == glfw.Press)
}

func (p *Platform) onMouseButton(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	var b core.Button
	switch button {
	case glfw.MouseButtonLeft:
		b = core.BUTTON_LEFT
	case glfw.MouseButtonRight:
		b = core.BUTTON_RIGHT
	case glfw.MouseButtonMiddle:
		b = core.BUTTON_MIDDLE
	default:
		return
	}
	core.InputProcessButton(b, action == glfw.Press)
}

func (p *Platform) onCursorPos(w *glfw.Window, xpos, ypos float64) {
	core.InputProcessMouseMove(float32(xpos), float32(ypos))
}

func (p *Platform) onScroll(w *glfw.Window, xoff, yoff float64) {
	core.InputProcessMouseWheel(float32(yoff))
}

func (p *Platform) onFramebufferSize(w *glfw.Window, width, height int) {
	core.EventFire(core.EventContext{
		Type: core.EVENT_CODE_RESIZED,
		Data: core.SystemEvent{
			WindowWidth:  uint32(width),
			WindowHeight: uint32(height),
		},
	})
}

// translateKey maps a GLFW key to the engine's key code. Letters and
// digits share their ASCII values; everything else goes through the
// switch. Unmapped keys are dropped.
func translateKey(key glfw.Key) (core.KeyCode, bool) {
	if key >= glfw.KeyA && key <= glfw.KeyZ {
		return core.KeyCode(key-glfw.KeyA) + core.KEY_A, true
	}
	if key >= glfw.Key0 && key <= glfw.Key9 {
		return core.KeyCode(key-glfw.Key0) + core.KEY_0, true
	}
	switch key {
	case glfw.KeyEscape:
		return core.KEY_ESCAPE, true
	case glfw.KeySpace:
		return core.KEY_SPACE, true
	case glfw.KeyEnter:
		return core.KEY_ENTER, true
	case glfw.KeyTab:
		return core.KEY_TAB, true
	case glfw.KeyBackspace:
		return core.KEY_BACKSPACE, true
	case glfw.KeyLeft:
		return core.KEY_LEFT, true
	case glfw.KeyRight:
		return core.KEY_RIGHT, true
	case glfw.KeyUp:
		return core.KEY_UP, true
	case glfw.KeyDown:
		return core.KEY_DOWN, true
	case glfw.KeyLeftShift:
		return core.KEY_LSHIFT, true
	case glfw.KeyRightShift:
		return core.KEY_RSHIFT, true
	case glfw.KeyLeftControl:
		return core.KEY_LCONTROL, true
	case glfw.KeyRightControl:
		return core.KEY_RCONTROL, true
	}
	return 0, false
}
