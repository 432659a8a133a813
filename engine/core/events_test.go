package core

import (
	"runtime"
	"testing"
)

// Application-range code, clear of the reserved system codes.
const testEventCode EventCode = 0x101

func TestEventRegisterAndFire(t *testing.T) {
	if !EventSystemInitialize() {
		t.Fatal("event system failed to initialize")
	}

	var received []EventContext
	if !EventRegister(testEventCode, func(context EventContext) {
		received = append(received, context)
	}) {
		t.Fatal("failed to register listener")
	}

	if !EventFire(EventContext{Type: testEventCode, Data: "payload"}) {
		t.Fatal("failed to fire event")
	}

	EventsDispatch()
	if len(received) != 1 {
		t.Fatalf("listener ran %d times, expected 1", len(received))
	}
	if received[0].Data != "payload" {
		t.Errorf("data = %v, expected payload", received[0].Data)
	}
}

func TestEventMultipleListeners(t *testing.T) {
	EventSystemInitialize()

	const code EventCode = 0x102
	first := 0
	second := 0
	EventRegister(code, func(EventContext) { first++ })
	EventRegister(code, func(EventContext) { second++ })

	EventFire(EventContext{Type: code})
	EventsDispatch()

	if first != 1 || second != 1 {
		t.Fatalf("listeners ran %d/%d times, expected 1/1", first, second)
	}
}

// Firing an event must never run listeners on the firing goroutine:
// delivery happens only inside EventsDispatch, on whichever goroutine
// calls it. The GL backend depends on this to keep context work on the
// main thread.
func TestEventsDeliveredOnDispatchingGoroutine(t *testing.T) {
	EventSystemInitialize()

	const code EventCode = 0x104
	calls := 0
	EventRegister(code, func(EventContext) { calls++ })

	fired := make(chan struct{})
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		EventFire(EventContext{Type: code})
		close(fired)
	}()
	<-fired

	if calls != 0 {
		t.Fatal("listener ran before dispatch, on the firing goroutine")
	}
	EventsDispatch()
	if calls != 1 {
		t.Fatalf("listener ran %d times after dispatch, expected 1", calls)
	}
}

func TestEventFireNeverBlocks(t *testing.T) {
	EventSystemInitialize()

	// No listener consumes these; the queue must absorb or drop them
	// without ever stalling the caller.
	for i := 0; i < maxQueuedEvents*2; i++ {
		EventFire(EventContext{Type: 0x103})
	}
	EventsDispatch()
}
