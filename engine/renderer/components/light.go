package components

import (
	"github.com/spaghettifunk/lumen/engine/math"
)

/**
 * @brief A point light orbiting the origin on an elliptical path
 * parameterized by elapsed time. The orbit is circular in the xz plane
 * with an independent y amplitude.
 */
type OrbitLight struct {
	Radius     float32
	YAmplitude float32
	Color      math.Vec3
	Position   math.Vec3
}

// NewOrbitLight creates the demo's light: radius 5, y amplitude 2, warm
// near-white color.
func NewOrbitLight() *OrbitLight {
	l := &OrbitLight{
		Radius:     5.0,
		YAmplitude: 2.0,
		Color:      math.NewVec3(1.0, 0.98039, 0.88392157),
	}
	l.Update(0)
	return l
}

// PositionAt returns the orbit position for the given elapsed seconds.
func (l *OrbitLight) PositionAt(t float64) math.Vec3 {
	ft := float32(t)
	return math.NewVec3(
		l.Radius*math.Cos(ft),
		l.YAmplitude*math.Cos(ft),
		l.Radius*math.Sin(ft),
	)
}

// Update advances the light along its orbit to the given elapsed seconds.
func (l *OrbitLight) Update(t float64) {
	l.Position = l.PositionAt(t)
}

// PulseColor derives an object base color from elapsed seconds: three
// sine waves with phases fed by each other's output, each mapped to [0,1].
func PulseColor(t float64) math.Vec3 {
	ft := float32(t)
	r := math.Sin(ft*2)/2.0 + 0.5
	g := math.Sin(ft+math.Cos(r))/2.0 + 0.5
	b := math.Sin(ft*4+math.Cos(2*g))/2.0 + 0.5
	return math.NewVec3(r, g, b)
}
