package systems

import (
	"github.com/spaghettifunk/lumen/engine/core"
	"github.com/spaghettifunk/lumen/engine/math"
	"github.com/spaghettifunk/lumen/engine/renderer/components"
)

const (
	// DefaultCameraName is the name of the default camera.
	DefaultCameraName string = "default"
)

// CameraSystemConfig holds the camera system configuration.
type CameraSystemConfig struct {
	MaxCameraCount uint16
}

// CameraSystem keeps named cameras so gameplay code can look them up
// without holding references. One default camera always exists.
type CameraSystem struct {
	Config        CameraSystemConfig
	Cameras       map[string]*components.Camera
	DefaultCamera *components.Camera
}

func NewCameraSystem(config CameraSystemConfig) *CameraSystem {
	if config.MaxCameraCount == 0 {
		core.LogWarn("MaxCameraCount must be a positive number. Defaulting to one.")
		config.MaxCameraCount = 1
	}
	return &CameraSystem{
		Config:        config,
		Cameras:       make(map[string]*components.Camera),
		DefaultCamera: components.NewCamera(math.NewVec3(0, 0, 5)),
	}
}

// Acquire returns the camera registered under name, creating it at the
// given position on first use. The default camera name always resolves
// to the default camera regardless of position.
func (cs *CameraSystem) Acquire(name string, position math.Vec3) *components.Camera {
	if name == DefaultCameraName {
		return cs.DefaultCamera
	}
	if c, ok := cs.Cameras[name]; ok {
		return c
	}
	if len(cs.Cameras) >= int(cs.Config.MaxCameraCount) {
		core.LogError("camera system is full, cannot create camera %s", name)
		return cs.DefaultCamera
	}
	c := components.NewCamera(position)
	cs.Cameras[name] = c
	return c
}

// Release removes a named camera. The default camera cannot be released.
func (cs *CameraSystem) Release(name string) {
	if name == DefaultCameraName {
		core.LogWarn("cannot release the default camera")
		return
	}
	delete(cs.Cameras, name)
}

// GetDefault returns the default camera.
func (cs *CameraSystem) GetDefault() *components.Camera {
	return cs.DefaultCamera
}
