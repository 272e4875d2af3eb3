package curves

import (
	"errors"
	stdmath "math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/Faultbox/bladeforge/pkg/math"
)

var approx = cmpopts.EquateApprox(0, 1e-12)

func diff(t *testing.T, want, got any) {
	t.Helper()
	if d := cmp.Diff(want, got, approx); d != "" {
		t.Error(d)
	}
}

func TestLine(t *testing.T) {
	c := Line(math.Vec2{}, math.Vec2{X: 2, Y: 2})

	diff(t, math.Vec2{X: 1, Y: 1}, c.Point(0.5))
	diff(t, math.Vec2{X: stdmath.Sqrt2 / 2, Y: stdmath.Sqrt2 / 2}, c.Tangent(0.3))
}

func TestLineExtrapolates(t *testing.T) {
	c := Line(math.Vec2{}, math.Vec2{X: 0, Y: 1})
	diff(t, math.Vec2{X: 0, Y: 1.5}, c.Point(1.5))
}

func TestQuadEndpoints(t *testing.T) {
	c := Quad(math.Vec2{X: 1, Y: 0}, math.Vec2{X: 0.7, Y: 0.2}, math.Vec2{X: 0, Y: 1})

	diff(t, math.Vec2{X: 1, Y: 0}, c.Point(0))
	diff(t, math.Vec2{X: 0, Y: 1}, c.Point(1))
	// B(0.5) = 0.25*P0 + 0.5*P1 + 0.25*P2
	diff(t, math.Vec2{X: 0.6, Y: 0.35}, c.Point(0.5))
}

func TestQuadTangent(t *testing.T) {
	c := Quad(math.Vec2{}, math.Vec2{X: 1, Y: 0}, math.Vec2{X: 1, Y: 1})

	diff(t, math.Vec2{X: 1, Y: 0}, c.Tangent(0))
	diff(t, math.Vec2{X: 0, Y: 1}, c.Tangent(1))

	if l := c.Tangent(0.37).Length(); stdmath.Abs(l-1) > 1e-12 {
		t.Errorf("tangent length = %v, want 1", l)
	}
}

func TestCubicTangentDegenerateEndpoint(t *testing.T) {
	// P0 == P1 makes the derivative vanish at t=0.
	c := Cubic(math.Vec2{}, math.Vec2{}, math.Vec2{X: 0, Y: 1}, math.Vec2{X: 0, Y: 3})

	diff(t, math.Vec2{X: 0, Y: 1}, c.Tangent(0))
	diff(t, math.Vec2{X: 0, Y: 3}, c.Point(1))
}

func TestClamp(t *testing.T) {
	c := Clamp(Line(math.Vec2{}, math.Vec2{X: 0, Y: 1}))

	diff(t, math.Vec2{X: 0, Y: 1}, c.Point(1.5))
	diff(t, math.Vec2{X: 0, Y: 0}, c.Point(-2))

	if Clamp(c) != c {
		t.Error("Clamp should not wrap an already clamped curve")
	}
}

func TestSpecBuild(t *testing.T) {
	tests := []struct {
		name    string
		spec    Spec
		at      float64
		want    math.Vec2
		wantErr error
	}{
		{
			name: "line",
			spec: Spec{Kind: "line", Points: [][2]float64{{0, 0}, {0, 1}}},
			at:   0.25,
			want: math.Vec2{X: 0, Y: 0.25},
		},
		{
			name: "quad upper case",
			spec: Spec{Kind: "QUAD", Points: [][2]float64{{0, 0}, {1, 0.5}, {0, 1}}},
			at:   0.5,
			want: math.Vec2{X: 0.5, Y: 0.5},
		},
		{
			name: "cubic clamped",
			spec: Spec{Kind: "cubic", Points: [][2]float64{{0, 0}, {0, 1}, {0, 2}, {0, 3}}, Clamp: true},
			at:   2,
			want: math.Vec2{X: 0, Y: 3},
		},
		{
			name:    "unknown kind",
			spec:    Spec{Kind: "spiral"},
			wantErr: ErrUnknownCurveKind,
		},
		{
			name:    "point count",
			spec:    Spec{Kind: "quad", Points: [][2]float64{{0, 0}, {0, 1}}},
			wantErr: ErrCurvePointCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := tt.spec.Build()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Build() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			diff(t, tt.want, c.Point(tt.at))
		})
	}
}
