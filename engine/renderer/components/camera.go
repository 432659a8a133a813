package components

import (
	"github.com/spaghettifunk/lumen/engine/math"
)

// CameraMovement abstracts movement input away from any windowing system.
type CameraMovement int

const (
	CameraForward CameraMovement = iota
	CameraBackward
	CameraLeft
	CameraRight
)

// Default camera values
const (
	DefaultYaw         float32 = -90.0
	DefaultPitch       float32 = 0.0
	DefaultSpeed       float32 = 2.5
	DefaultSensitivity float32 = 0.1
	DefaultFov         float32 = 45.0

	pitchLimit float32 = 89.0
	fovMin     float32 = 1.0
	fovMax     float32 = 45.0
)

/**
 * @brief A free-fly camera. Orientation is held as yaw/pitch Euler angles in
 * degrees; the front/right/up basis is derived from them and recomputed
 * whenever either angle changes, never incrementally adjusted, so the basis
 * cannot drift out of orthonormality.
 */
type Camera struct {
	Position math.Vec3
	Front    math.Vec3
	Up       math.Vec3
	Right    math.Vec3
	WorldUp  math.Vec3
	// Euler angles, degrees.
	Yaw   float32
	Pitch float32
	// Tunables.
	MovementSpeed    float32
	MouseSensitivity float32
	// Field of view in degrees, reduced by scroll "zoom".
	Fov float32
}

// NewCamera creates a camera at the given position with the default
// orientation: yaw -90 so that front points down the negative z axis.
func NewCamera(position math.Vec3) *Camera {
	c := &Camera{
		Position:         position,
		WorldUp:          math.NewVec3Up(),
		Yaw:              DefaultYaw,
		Pitch:            DefaultPitch,
		MovementSpeed:    DefaultSpeed,
		MouseSensitivity: DefaultSensitivity,
		Fov:              DefaultFov,
	}
	c.updateVectors()
	return c
}

// Move translates the camera along its front or right axis. Position is
// unconstrained in world space.
func (c *Camera) Move(direction CameraMovement, deltaTime float32) {
	velocity := c.MovementSpeed * deltaTime
	switch direction {
	case CameraForward:
		c.Position = c.Position.Add(c.Front.MulScalar(velocity))
	case CameraBackward:
		c.Position = c.Position.Sub(c.Front.MulScalar(velocity))
	case CameraLeft:
		c.Position = c.Position.Sub(c.Right.MulScalar(velocity))
	case CameraRight:
		c.Position = c.Position.Add(c.Right.MulScalar(velocity))
	}
}

// Look applies a mouse movement offset to yaw and pitch. When constrainPitch
// is set, pitch is clamped short of the poles so the view cannot flip.
func (c *Camera) Look(xOffset, yOffset float32, constrainPitch bool) {
	c.Yaw += xOffset * c.MouseSensitivity
	c.Pitch += yOffset * c.MouseSensitivity

	if constrainPitch {
		c.Pitch = math.Clamp(c.Pitch, -pitchLimit, pitchLimit)
	}

	c.updateVectors()
}

// Zoom narrows or widens the field of view from scroll-wheel input.
func (c *Camera) Zoom(yOffset float32) {
	c.Fov = math.Clamp(c.Fov-yOffset, fovMin, fovMax)
}

// Reset places the camera at the given position with the default
// orientation, front pointing down the negative z axis.
func (c *Camera) Reset(position math.Vec3) {
	c.Position = position
	c.Yaw = DefaultYaw
	c.Pitch = DefaultPitch
	c.updateVectors()
}

// ViewMatrix returns the look-at matrix for the camera's current position
// and orientation. Recomputed on demand; it is cheap and read once a frame.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.NewMat4LookAt(c.Position, c.Position.Add(c.Front), c.Up)
}

// updateVectors rebuilds the orthonormal basis from the current yaw and
// pitch. Crossing front with world up (in that order) fixes the handedness;
// the other order would swap the camera's left/right sense.
func (c *Camera) updateVectors() {
	yaw := math.DegToRad(c.Yaw)
	pitch := math.DegToRad(c.Pitch)

	front := math.NewVec3(
		math.Cos(yaw)*math.Cos(pitch),
		math.Sin(pitch),
		math.Sin(yaw)*math.Cos(pitch),
	)
	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}
