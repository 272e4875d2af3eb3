package blade

import (
	"errors"
	"fmt"
	gomath "math"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/bladeforge/pkg/curves"
	"github.com/Faultbox/bladeforge/pkg/math"
)

// ErrUnknownTipStyle is returned by ParseTipStyle.
var ErrUnknownTipStyle = errors.New("unknown tip style")

// DefaultTipSubdivisions is used by CreateTip when n is not positive.
const DefaultTipSubdivisions = 5

// TipStyle selects the closing profile of a blade.
type TipStyle int

// Tip styles.
const (
	TipStandard TipStyle = iota // collapse to a point
	TipRounded                  // collapse along a bezier profile
	TipSquare                   // flatten one axis
	TipClip                     // rotate then flatten, an angled cut
)

var tipNames = [...]string{"standard", "rounded", "square", "clip"}

// String returns the style name.
func (s TipStyle) String() string {
	if s >= 0 && int(s) < len(tipNames) {
		return tipNames[s]
	}
	return fmt.Sprintf("TipStyle(%d)", int(s))
}

// TipStyles returns every known style.
func TipStyles() []TipStyle {
	return []TipStyle{TipStandard, TipRounded, TipSquare, TipClip}
}

// ParseTipStyle parses a style name, case-insensitively.
func ParseTipStyle(name string) (TipStyle, error) {
	for i, n := range tipNames {
		if strings.EqualFold(name, n) {
			return TipStyle(i), nil
		}
	}
	return TipStandard, fmt.Errorf("%w: %q", ErrUnknownTipStyle, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s TipStyle) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *TipStyle) UnmarshalText(text []byte) error {
	v, err := ParseTipStyle(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// roundedProfile gives the section scale along a rounded tip. It does not
// reach zero at t=1, so the last step collapses explicitly.
var roundedProfile = curves.Quad(
	math.Vec2{X: 1, Y: 0},
	math.Vec2{X: 0.7, Y: 0.2},
	math.Vec2{X: 0, Y: 1},
)

// clipAngle is the rotation of the clip cut about world X.
const clipAngle = gomath.Pi / 3

// CreateTip consumes length of sweep to close the blade with style. n is the
// number of steps of the rounded tip. Unknown styles fall back to
// TipStandard.
//
// CreateTip is terminal: calling it again keeps extruding the collapsed
// section.
func (b *Blade) CreateTip(style TipStyle, length float64, n int) error {
	if b.geom.CrossSection() == nil {
		return ErrNoActiveCrossSection
	}
	if n <= 0 {
		n = DefaultTipSubdivisions
	}

	switch style {
	case TipStandard:
		return b.standardTip(length)

	case TipRounded:
		step := length / float64(n)
		for i := 0; i < n; i++ {
			if err := b.Advance(step); err != nil {
				return err
			}
			if i == n-1 {
				return b.geom.Scale(0)
			}
			if err := b.geom.Scale(roundedProfile.Point(float64(i+1) / float64(n)).X); err != nil {
				return err
			}
		}
		return nil

	case TipSquare:
		if err := b.Advance(length); err != nil {
			return err
		}
		return b.geom.ScaleAxes(math.Vec2{X: 0, Y: 1})

	case TipClip:
		if err := b.Advance(length); err != nil {
			return err
		}
		if err := b.geom.Rotate(math.QuatFromAxisAngle(math.UnitX, clipAngle)); err != nil {
			return err
		}
		return b.geom.ScaleAxes(math.Vec2{X: 0, Y: 1})

	default:
		b.log.Warn("unknown tip style, using standard", zap.Stringer("style", style))
		return b.standardTip(length)
	}
}

func (b *Blade) standardTip(length float64) error {
	if err := b.Advance(length); err != nil {
		return err
	}
	return b.geom.Scale(0)
}
