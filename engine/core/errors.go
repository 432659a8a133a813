package core

import (
	"errors"
)

var (
	ErrEventSystemNotRunning = errors.New("event system is not initialized")
	ErrInputNotRunning       = errors.New("input system is not initialized")
)
