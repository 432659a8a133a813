package components

import (
	m "math"
	"testing"

	"github.com/spaghettifunk/lumen/engine/math"
)

func TestOrbitLightPosition(t *testing.T) {
	light := NewOrbitLight()

	tests := []struct {
		name     string
		t        float64
		expected math.Vec3
	}{
		{"start", 0, math.NewVec3(5, 2, 0)},
		{"quarter orbit", m.Pi / 2, math.NewVec3(0, 0, 5)},
		{"half orbit", m.Pi, math.NewVec3(-5, -2, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := light.PositionAt(tc.t)
			if !got.Compare(tc.expected, 1e-4) {
				t.Errorf("position at t=%f = %+v, expected %+v", tc.t, got, tc.expected)
			}
		})
	}
}

func TestOrbitLightUpdate(t *testing.T) {
	light := NewOrbitLight()
	light.Update(m.Pi / 2)
	if !light.Position.Compare(light.PositionAt(m.Pi/2), 0) {
		t.Errorf("Update did not store PositionAt result: %+v", light.Position)
	}
}

func TestPulseColorRange(t *testing.T) {
	for ti := 0.0; ti < 20.0; ti += 0.37 {
		c := PulseColor(ti)
		for i, v := range []float32{c.X, c.Y, c.Z} {
			if v < 0 || v > 1 {
				t.Fatalf("component %d at t=%f out of [0,1]: %f", i, ti, v)
			}
		}
	}
}
