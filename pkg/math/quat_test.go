package math

import (
	"math"
	"testing"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	n := Quat{X: 1, Y: 2, Z: 3, W: 4}.Normalize()

	if math.Abs(math.Sqrt(n.Dot(n))-1) > 1e-12 {
		t.Errorf("Normalized quaternion length should be 1, got %v", math.Sqrt(n.Dot(n)))
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	// 90 degrees around Y axis
	q := QuatFromAxisAngle(UnitY, math.Pi/2)

	if math.Abs(q.W-math.Cos(math.Pi/4)) > 1e-12 {
		t.Errorf("QuatFromAxisAngle W: expected %v, got %v", math.Cos(math.Pi/4), q.W)
	}
	if math.Abs(q.Y-math.Sin(math.Pi/4)) > 1e-12 {
		t.Errorf("QuatFromAxisAngle Y: expected %v, got %v", math.Sin(math.Pi/4), q.Y)
	}
}

func TestQuatRotate(t *testing.T) {
	// 90 degrees about Z takes X onto Y.
	got := QuatFromAxisAngle(UnitZ, math.Pi/2).Rotate(UnitX)
	if got.Distance(UnitY) > 1e-12 {
		t.Errorf("Rotate: got %v, want %v", got, UnitY)
	}
}

func TestQuatMulOrder(t *testing.T) {
	a := QuatFromAxisAngle(UnitZ, math.Pi/2)
	b := QuatFromAxisAngle(UnitX, math.Pi/2)

	// a.Mul(b) applies b first: Y -> Z under b, Z stays under a.
	got := a.Mul(b).Rotate(UnitY)
	if got.Distance(UnitZ) > 1e-12 {
		t.Errorf("Mul order: got %v, want %v", got, UnitZ)
	}
}

func TestQuatFromUnitVectors(t *testing.T) {
	tests := []struct {
		name     string
		from, to Vec3
	}{
		{"same", UnitY, UnitY},
		{"perpendicular", UnitY, UnitZ},
		{"diagonal", UnitY, Vec3{0, 1, 1}.Normalize()},
		{"opposite", UnitY, Vec3{0, -1, 0}},
		{"opposite x", UnitX, Vec3{-1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := QuatFromUnitVectors(tt.from, tt.to)
			if math.Abs(math.Sqrt(q.Dot(q))-1) > 1e-12 {
				t.Errorf("rotation is not unit length: %v", q)
			}
			got := q.Rotate(tt.from)
			if got.Distance(tt.to) > 1e-9 {
				t.Errorf("rotated %v = %v, want %v", tt.from, got, tt.to)
			}
		})
	}
}

func TestQuatConjugateUndoesRotation(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{1, 2, 3}.Normalize(), 1.1)
	p := Vec3{4, -5, 6}

	got := q.Conjugate().Rotate(q.Rotate(p))
	if got.Distance(p) > 1e-9 {
		t.Errorf("conjugate round trip: got %v, want %v", got, p)
	}
}
