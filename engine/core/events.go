package core

import (
	"sync"
)

// System internal event codes. Application should use codes beyond 255.
type EventCode uint16

const (
	// Shuts the application down on the next frame.
	EVENT_CODE_APPLICATION_QUIT EventCode = 0x01
	// Keyboard key pressed. Data is KeyEvent.
	EVENT_CODE_KEY_PRESSED EventCode = 0x02
	// Keyboard key released. Data is KeyEvent.
	EVENT_CODE_KEY_RELEASED EventCode = 0x03
	// Mouse button pressed. Data is MouseEvent.
	EVENT_CODE_BUTTON_PRESSED EventCode = 0x04
	// Mouse button released. Data is MouseEvent.
	EVENT_CODE_BUTTON_RELEASED EventCode = 0x05
	// Mouse moved. Data is MouseEvent with PosX/PosY set.
	EVENT_CODE_MOUSE_MOVED EventCode = 0x06
	// Mouse wheel scrolled. Data is MouseEvent with WheelDelta set.
	EVENT_CODE_MOUSE_WHEEL EventCode = 0x07
	// Resized/resolution changed from the OS. Data is SystemEvent.
	EVENT_CODE_RESIZED EventCode = 0x08
	// A watched asset file was created or rewritten on disk. Data is AssetEvent.
	EVENT_CODE_ASSET_WRITTEN EventCode = 0x09

	MAX_EVENT_CODE EventCode = 0xFF
)

type EventContext struct {
	Type EventCode
	Data interface{}
}

type KeyEvent struct {
	KeyCode KeyCode
}

type MouseEvent struct {
	Button     Button
	PosX       float32
	PosY       float32
	WheelDelta float32
}

type SystemEvent struct {
	WindowWidth  uint32
	WindowHeight uint32
}

type AssetEvent struct {
	Path string
}

type FnOnEvent func(context EventContext)

// Queue depth before EventFire starts dropping. Input events are tiny and
// consumed every frame, so this never fills in practice.
const maxQueuedEvents = 512

type eventSystemState struct {
	mutex      sync.RWMutex
	registered map[EventCode][]FnOnEvent
	queue      chan EventContext
}

var onceEvent sync.Once
var eventState *eventSystemState

func EventSystemInitialize() bool {
	onceEvent.Do(func() {
		eventState = &eventSystemState{
			registered: make(map[EventCode][]FnOnEvent),
			queue:      make(chan EventContext, maxQueuedEvents),
		}
	})
	return eventState != nil
}

func EventSystemShutdown() error {
	if eventState == nil {
		return ErrEventSystemNotRunning
	}
	// Deliver anything still queued so shutdown listeners get their say.
	EventsDispatch()
	return nil
}

// EventRegister subscribes a callback for the given code. The same callback
// may be registered for multiple codes.
func EventRegister(code EventCode, onEvent FnOnEvent) bool {
	if eventState == nil {
		return false
	}
	eventState.mutex.Lock()
	defer eventState.mutex.Unlock()
	eventState.registered[code] = append(eventState.registered[code], onEvent)
	return true
}

// EventFire queues an event for dispatch to all listeners of its code.
// Never blocks; events are dropped with a warning if the queue is full.
func EventFire(context EventContext) bool {
	if eventState == nil {
		return false
	}
	select {
	case eventState.queue <- context:
		return true
	default:
		LogWarn("event queue full, dropping event code %d", context.Type)
		return false
	}
}

// EventsDispatch delivers every queued event to its listeners and returns.
// Listeners run on the calling goroutine. The main loop calls this once per
// frame, so listeners that touch the GL context always run on the thread
// that owns it; any goroutine may EventFire, only the main loop dispatches.
func EventsDispatch() {
	if eventState == nil {
		return
	}
	for {
		select {
		case context := <-eventState.queue:
			eventState.mutex.RLock()
			listeners := eventState.registered[context.Type]
			eventState.mutex.RUnlock()
			for _, onEvent := range listeners {
				onEvent(context)
			}
		default:
			return
		}
	}
}
