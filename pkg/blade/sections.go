package blade

import (
	"errors"
	"fmt"
	gomath "math"
	"sort"
	"strings"

	"github.com/Faultbox/bladeforge/pkg/math"
	"github.com/Faultbox/bladeforge/pkg/mesh"
)

// ErrUnknownPreset is returned by Preset for an unknown cross-section name.
var ErrUnknownPreset = errors.New("unknown cross section preset")

// Section is a cross-section outline with the indices of its cutting-edge
// vertices.
type Section struct {
	Outline      []math.Vec2
	EdgeVertices []int
}

// CrossSection builds a fresh cross-section from the outline.
func (s Section) CrossSection() *mesh.CrossSection {
	return mesh.NewCrossSection(s.Outline)
}

type presetFunc func(w, t float64) Section

var presets = map[string]presetFunc{
	"diamond":    diamondSection,
	"hexagonal":  hexagonalSection,
	"lenticular": lenticularSection,
	"fuller":     fullerSection,
}

// PresetNames returns the known preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Preset returns the named cross-section for a blade of the given width and
// thickness. The two cutting-edge points sit at x = ±width/2.
func Preset(name string, width, thickness float64) (Section, error) {
	fn, ok := presets[strings.ToLower(name)]
	if !ok {
		return Section{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return fn(width/2, thickness/2), nil
}

func diamondSection(w, t float64) Section {
	return Section{
		Outline:      []math.Vec2{{X: w, Y: 0}, {X: 0, Y: t}, {X: -w, Y: 0}, {X: 0, Y: -t}},
		EdgeVertices: []int{0, 2},
	}
}

func hexagonalSection(w, t float64) Section {
	f := 0.6 * w
	return Section{
		Outline: []math.Vec2{
			{X: w, Y: 0}, {X: f, Y: t}, {X: -f, Y: t},
			{X: -w, Y: 0}, {X: -f, Y: -t}, {X: f, Y: -t},
		},
		EdgeVertices: []int{0, 3},
	}
}

// lenticularSection approximates a lens with twelve points on an ellipse.
func lenticularSection(w, t float64) Section {
	const n = 12
	out := make([]math.Vec2, n)
	for i := range out {
		a := 2 * gomath.Pi * float64(i) / n
		out[i] = math.Vec2{X: w * gomath.Cos(a), Y: t * gomath.Sin(a)}
	}
	return Section{Outline: out, EdgeVertices: []int{0, n / 2}}
}

// fullerSection is a hexagonal section with a groove down each face.
func fullerSection(w, t float64) Section {
	f, g := 0.6*w, 0.2*w
	return Section{
		Outline: []math.Vec2{
			{X: w, Y: 0}, {X: f, Y: t}, {X: g, Y: t}, {X: 0, Y: t / 2}, {X: -g, Y: t}, {X: -f, Y: t},
			{X: -w, Y: 0}, {X: -f, Y: -t}, {X: -g, Y: -t}, {X: 0, Y: -t / 2}, {X: g, Y: -t}, {X: f, Y: -t},
		},
		EdgeVertices: []int{0, 6},
	}
}
