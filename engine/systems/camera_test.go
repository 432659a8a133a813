package systems

import (
	"testing"

	"github.com/spaghettifunk/lumen/engine/math"
)

func TestCameraSystemDefault(t *testing.T) {
	cs := NewCameraSystem(CameraSystemConfig{MaxCameraCount: 2})

	if cs.GetDefault() == nil {
		t.Fatal("default camera must exist")
	}
	if !cs.GetDefault().Position.Compare(math.NewVec3(0, 0, 5), 0) {
		t.Errorf("default camera position = %+v, expected (0,0,5)", cs.GetDefault().Position)
	}
	if got := cs.Acquire(DefaultCameraName, math.NewVec3(9, 9, 9)); got != cs.GetDefault() {
		t.Error("acquiring the default name must return the default camera")
	}
}

func TestCameraSystemAcquireRelease(t *testing.T) {
	cs := NewCameraSystem(CameraSystemConfig{MaxCameraCount: 1})

	first := cs.Acquire("orbit", math.NewVec3(1, 2, 3))
	if !first.Position.Compare(math.NewVec3(1, 2, 3), 0) {
		t.Errorf("camera position = %+v, expected (1,2,3)", first.Position)
	}
	if again := cs.Acquire("orbit", math.NewVec3Zero()); again != first {
		t.Error("reacquiring a name must return the same camera")
	}

	// The registry is full, so an unknown name falls back to the default.
	if got := cs.Acquire("overflow", math.NewVec3Zero()); got != cs.GetDefault() {
		t.Error("a full system must hand back the default camera")
	}

	cs.Release("orbit")
	if fresh := cs.Acquire("orbit", math.NewVec3Zero()); fresh == first {
		t.Error("release must drop the stored camera")
	}
}

func TestCameraSystemConfigDefaults(t *testing.T) {
	cs := NewCameraSystem(CameraSystemConfig{})
	if cs.Config.MaxCameraCount != 1 {
		t.Errorf("MaxCameraCount = %d, expected defaulted 1", cs.Config.MaxCameraCount)
	}
}
