package math

import (
	"testing"
)

const tolerance = 1e-5

func TestVec3Cross(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected Vec3
	}{
		{"x cross y", NewVec3(1, 0, 0), NewVec3(0, 1, 0), NewVec3(0, 0, 1)},
		{"y cross z", NewVec3(0, 1, 0), NewVec3(0, 0, 1), NewVec3(1, 0, 0)},
		{"z cross x", NewVec3(0, 0, 1), NewVec3(1, 0, 0), NewVec3(0, 1, 0)},
		{"anti-commutes", NewVec3(0, 1, 0), NewVec3(1, 0, 0), NewVec3(0, 0, -1)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.a.Cross(tc.b)
			if !got.Compare(tc.expected, tolerance) {
				t.Errorf("cross = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 4, 12).Normalize()
	if kabs(v.Length()-1.0) > tolerance {
		t.Errorf("normalized length = %f, expected 1", v.Length())
	}
}

func TestVec3DotOrthogonal(t *testing.T) {
	if d := NewVec3(1, 0, 0).Dot(NewVec3(0, 1, 0)); d != 0 {
		t.Errorf("dot of orthogonal vectors = %f, expected 0", d)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name         string
		v, low, high float32
		expected     float32
	}{
		{"below", -10, 1, 45, 1},
		{"above", 90, 1, 45, 45},
		{"inside", 30, 1, 45, 30},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clamp(tc.v, tc.low, tc.high); got != tc.expected {
				t.Errorf("Clamp(%f) = %f, expected %f", tc.v, got, tc.expected)
			}
		})
	}
}

func TestDegRadRoundTrip(t *testing.T) {
	if got := RadToDeg(DegToRad(90)); kabs(got-90) > 1e-4 {
		t.Errorf("round trip of 90 degrees = %f", got)
	}
	if got := DegToRad(180); kabs(got-K_PI) > tolerance {
		t.Errorf("DegToRad(180) = %f, expected pi", got)
	}
}

func TestMat4MulIdentity(t *testing.T) {
	translate := NewMat4Translation(NewVec3(1, 2, 3))
	got := translate.Mul(NewMat4Identity())
	for i := range got.Data {
		if kabs(got.Data[i]-translate.Data[i]) > tolerance {
			t.Fatalf("element %d = %f, expected %f", i, got.Data[i], translate.Data[i])
		}
	}
}

func TestMat4TranslateScaleOrder(t *testing.T) {
	// T * S applied to the origin lands on the translation, with scale
	// affecting only the offset from it.
	model := NewMat4Translation(NewVec3(5, 2, 0)).Mul(NewMat4Scale(NewVec3(0.2, 0.2, 0.2)))
	p := model.MulVec4(NewVec4(1, 0, 0, 1))
	expected := NewVec3(5.2, 2, 0)
	if !p.ToVec3().Compare(expected, tolerance) {
		t.Errorf("transformed point = %+v, expected %+v", p.ToVec3(), expected)
	}
}

func TestMat4LookAt(t *testing.T) {
	// Camera at +5 on z looking at the origin: the origin maps to -5 on
	// the view-space z axis.
	view := NewMat4LookAt(NewVec3(0, 0, 5), NewVec3Zero(), NewVec3Up())
	p := view.MulVec4(NewVec4(0, 0, 0, 1))
	expected := NewVec3(0, 0, -5)
	if !p.ToVec3().Compare(expected, tolerance) {
		t.Errorf("view-space origin = %+v, expected %+v", p.ToVec3(), expected)
	}

	// The camera's own position maps to the view-space origin.
	p = view.MulVec4(NewVec4(0, 0, 5, 1))
	if !p.ToVec3().Compare(NewVec3Zero(), tolerance) {
		t.Errorf("view-space camera position = %+v, expected origin", p.ToVec3())
	}
}

func TestMat4Perspective(t *testing.T) {
	proj := NewMat4Perspective(DegToRad(45), 1.0, 0.1, 100.0)
	// Clip-space w must equal -z for a perspective projection.
	p := proj.MulVec4(NewVec4(0, 0, -10, 1))
	if kabs(p.W-10) > 1e-4 {
		t.Errorf("clip w = %f, expected 10", p.W)
	}
	// A point on the near plane maps to depth -1 after the divide.
	p = proj.MulVec4(NewVec4(0, 0, -0.1, 1))
	if kabs(p.Z/p.W+1) > 1e-3 {
		t.Errorf("near-plane depth = %f, expected -1", p.Z/p.W)
	}
}

func TestMat4Inverse(t *testing.T) {
	mt := NewMat4Translation(NewVec3(1, -2, 3)).Mul(NewMat4EulerY(DegToRad(30)))
	identity := mt.Mul(mt.Inverse())
	expected := NewMat4Identity()
	for i := range identity.Data {
		if kabs(identity.Data[i]-expected.Data[i]) > 1e-4 {
			t.Fatalf("element %d = %f, expected %f", i, identity.Data[i], expected.Data[i])
		}
	}
}

func TestMat4TransposedTwice(t *testing.T) {
	mt := NewMat4LookAt(NewVec3(1, 2, 3), NewVec3Zero(), NewVec3Up())
	back := mt.Transposed().Transposed()
	for i := range back.Data {
		if back.Data[i] != mt.Data[i] {
			t.Fatalf("element %d = %f, expected %f", i, back.Data[i], mt.Data[i])
		}
	}
}
