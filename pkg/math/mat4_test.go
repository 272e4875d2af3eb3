package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(Vec3{1, 2, 3})
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(Vec3{5, 10, 15})

	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTransformVec3(t *testing.T) {
	got := Translate(Vec3{10, 20, 30}).TransformVec3(Vec3{1, 2, 3})
	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("TransformVec3: got %v, want %v", got, want)
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	got := Translate(Vec3{10, 20, 30}).TransformDirection(Vec3{0, 1, 0})
	if got != (Vec3{0, 1, 0}) {
		t.Errorf("TransformDirection: got %v, want (0, 1, 0)", got)
	}
}

func TestComposeOrder(t *testing.T) {
	// Scale first, then rotate 90 degrees about Y, then translate.
	q := QuatFromAxisAngle(UnitY, math.Pi/2)
	m := Compose(Vec3{0, 5, 0}, q, Vec3{2, 1, 1})

	got := m.TransformVec3(Vec3{1, 0, 0})
	want := Vec3{0, 5, -2}
	if got.Distance(want) > 1e-9 {
		t.Errorf("Compose: got %v, want %v", got, want)
	}
}

func TestScaleMatchesQuatRotate(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{1, 1, 0}.Normalize(), 0.7)
	p := Vec3{0.3, -1.2, 2}

	viaMatrix := q.ToMat4().TransformVec3(p)
	viaQuat := q.Rotate(p)
	if viaMatrix.Distance(viaQuat) > 1e-9 {
		t.Errorf("matrix %v and quaternion %v rotations disagree", viaMatrix, viaQuat)
	}
}
