package components

import (
	"testing"

	"github.com/spaghettifunk/lumen/engine/math"
)

const tolerance = 1e-5

func TestCameraBasisOrthonormal(t *testing.T) {
	c := NewCamera(math.NewVec3Zero())

	for yaw := float32(-179); yaw <= 180; yaw += 13 {
		for pitch := float32(-89); pitch <= 89; pitch += 11 {
			c.Yaw = yaw
			c.Pitch = pitch
			c.updateVectors()

			if d := abs(c.Front.Length() - 1); d > tolerance {
				t.Fatalf("yaw=%f pitch=%f: |front| = %f", yaw, pitch, c.Front.Length())
			}
			if d := abs(c.Right.Length() - 1); d > tolerance {
				t.Fatalf("yaw=%f pitch=%f: |right| = %f", yaw, pitch, c.Right.Length())
			}
			if d := abs(c.Up.Length() - 1); d > tolerance {
				t.Fatalf("yaw=%f pitch=%f: |up| = %f", yaw, pitch, c.Up.Length())
			}
			if d := abs(c.Front.Dot(c.Right)); d > tolerance {
				t.Fatalf("yaw=%f pitch=%f: front.right = %f", yaw, pitch, d)
			}
			if d := abs(c.Front.Dot(c.Up)); d > tolerance {
				t.Fatalf("yaw=%f pitch=%f: front.up = %f", yaw, pitch, d)
			}
			if d := abs(c.Right.Dot(c.Up)); d > tolerance {
				t.Fatalf("yaw=%f pitch=%f: right.up = %f", yaw, pitch, d)
			}
		}
	}
}

func TestCameraBasisHandedness(t *testing.T) {
	c := NewCamera(math.NewVec3Zero())
	// Default orientation: front -z, so right must be +x and up +y.
	if !c.Right.Compare(math.NewVec3(1, 0, 0), tolerance) {
		t.Errorf("right = %+v, expected +x", c.Right)
	}
	if !c.Up.Compare(math.NewVec3(0, 1, 0), tolerance) {
		t.Errorf("up = %+v, expected +y", c.Up)
	}
}

func TestCameraPitchConstraint(t *testing.T) {
	c := NewCamera(math.NewVec3Zero())
	offsets := []float32{10000, -30000, 500, 89.5 / c.MouseSensitivity, -1e6}
	for _, dy := range offsets {
		c.Look(0, dy, true)
		if c.Pitch > 89.0 || c.Pitch < -89.0 {
			t.Fatalf("pitch escaped constraint after offset %f: %f", dy, c.Pitch)
		}
	}
}

func TestCameraPitchUnconstrained(t *testing.T) {
	c := NewCamera(math.NewVec3Zero())
	c.Look(0, 120/c.MouseSensitivity, false)
	if c.Pitch <= 89.0 {
		t.Errorf("unconstrained pitch = %f, expected beyond 89", c.Pitch)
	}
}

func TestCameraZoomClamp(t *testing.T) {
	c := NewCamera(math.NewVec3Zero())
	for _, dy := range []float32{100, 5, -300, 44, 1, -2, 1e6} {
		c.Zoom(dy)
		if c.Fov < 1.0 || c.Fov > 45.0 {
			t.Fatalf("fov escaped [1,45] after offset %f: %f", dy, c.Fov)
		}
	}
}

func TestCameraReset(t *testing.T) {
	c := NewCamera(math.NewVec3(0, 0, 5))
	c.Look(321, -123, true)
	c.Move(CameraForward, 3)

	home := math.NewVec3(0, 0, 5)
	c.Reset(home)

	if !c.Position.Compare(home, tolerance) {
		t.Errorf("position = %+v, expected %+v", c.Position, home)
	}
	if c.Yaw != DefaultYaw || c.Pitch != DefaultPitch {
		t.Errorf("yaw/pitch = %f/%f, expected %f/%f", c.Yaw, c.Pitch, DefaultYaw, DefaultPitch)
	}
	if !c.Front.Compare(math.NewVec3(0, 0, -1), tolerance) {
		t.Errorf("front = %+v, expected (0,0,-1)", c.Front)
	}
}

func TestCameraMove(t *testing.T) {
	tests := []struct {
		name      string
		direction CameraMovement
		expected  math.Vec3
	}{
		{"forward", CameraForward, math.NewVec3(0, 0, -2.5)},
		{"backward", CameraBackward, math.NewVec3(0, 0, 2.5)},
		{"left", CameraLeft, math.NewVec3(-2.5, 0, 0)},
		{"right", CameraRight, math.NewVec3(2.5, 0, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCamera(math.NewVec3Zero())
			c.Move(tc.direction, 1.0)
			if !c.Position.Compare(tc.expected, tolerance) {
				t.Errorf("position = %+v, expected %+v", c.Position, tc.expected)
			}
		})
	}
}

func TestCameraViewMatrix(t *testing.T) {
	c := NewCamera(math.NewVec3(0, 0, 5))
	view := c.ViewMatrix()
	// With the default orientation the world origin sits 5 units ahead of
	// the camera, on the view-space -z axis.
	p := view.MulVec4(math.NewVec4(0, 0, 0, 1)).ToVec3()
	if !p.Compare(math.NewVec3(0, 0, -5), tolerance) {
		t.Errorf("view-space origin = %+v, expected (0,0,-5)", p)
	}
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
