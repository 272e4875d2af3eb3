package config

import (
	"errors"
	"fmt"
	gomath "math"
)

// ErrInvalidRecipe is wrapped by every validation failure.
var ErrInvalidRecipe = errors.New("invalid blade recipe")

// lengthSlack is the relative tolerance when comparing swept length
// against the blade length.
const lengthSlack = 1e-9

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidRecipe, fmt.Sprintf(format, args...))
}

// Validate checks that the recipe can be swept.
func (c *Config) Validate() error {
	return c.Blade.Validate()
}

// Validate checks the blade recipe. It reports the first problem found.
func (b BladeConfig) Validate() error {
	if !(b.Length > 0) {
		return invalid("length must be positive, got %g", b.Length)
	}
	if _, err := b.MeshColor(); err != nil {
		return invalid("color: %v", err)
	}
	if _, err := b.ExtrusionCurve(); err != nil {
		return invalid("%v", err)
	}

	s, err := b.CrossSection.Section()
	if err != nil {
		return invalid("cross section: %v", err)
	}
	if len(s.Outline) < 3 {
		return invalid("cross section needs at least 3 points, got %d", len(s.Outline))
	}
	for _, idx := range s.EdgeVertices {
		if idx < 0 || idx >= len(s.Outline) {
			return invalid("edge vertex %d out of range [0,%d)", idx, len(s.Outline))
		}
	}

	swept := 0.0
	for i, sec := range b.Sections {
		if !(sec.Length > 0) {
			return invalid("section %d: length must be positive, got %g", i, sec.Length)
		}
		if sec.Subdivisions <= 0 {
			return invalid("section %d: subdivisions must be positive, got %d", i, sec.Subdivisions)
		}
		if _, err := sec.EdgeCurve.Build(); err != nil {
			return invalid("section %d: edge curve: %v", i, err)
		}
		if err := sec.Taper.validate(sec.Subdivisions); err != nil {
			return invalid("section %d: %v", i, err)
		}
		swept += sec.Length
	}

	if b.Tip != nil {
		if _, err := b.Tip.TipStyle(); err != nil {
			return invalid("tip: %v", err)
		}
		if b.Tip.Length < 0 {
			return invalid("tip: length must not be negative, got %g", b.Tip.Length)
		}
		swept += b.Tip.Length
	}

	if swept > b.Length*(1+lengthSlack) {
		return invalid("sections and tip sweep %g, blade length is %g", swept, b.Length)
	}
	return nil
}

// validate checks that every per-step scale factor stays positive.
func (t *TaperConfig) validate(n int) error {
	if _, err := t.BladeTaper(); err != nil {
		return err
	}
	if t == nil {
		return nil
	}
	rates := []float64{}
	if t.Uniform != nil {
		rates = append(rates, *t.Uniform)
	}
	if t.Axes != nil {
		rates = append(rates, t.Axes[0], t.Axes[1])
	}
	for _, k := range rates {
		if gomath.IsNaN(k) || k < 0 || k >= float64(n) {
			return fmt.Errorf("taper %g must be in [0,%d)", k, n)
		}
	}
	return nil
}
