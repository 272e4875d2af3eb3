// Package forge sweeps a blade mesh from a recipe.
package forge

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/bladeforge/internal/config"
	"github.com/Faultbox/bladeforge/pkg/blade"
	"github.com/Faultbox/bladeforge/pkg/mesh"
)

// Build validates recipe and sweeps it: cross-section, every section in
// order, then the tip if one is configured. A nil log discards output.
func Build(recipe config.BladeConfig, log *zap.Logger) (*mesh.Geometry, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := recipe.Validate(); err != nil {
		return nil, err
	}

	extrusion, err := recipe.ExtrusionCurve()
	if err != nil {
		return nil, err
	}
	color, err := recipe.MeshColor()
	if err != nil {
		return nil, err
	}
	section, err := recipe.CrossSection.Section()
	if err != nil {
		return nil, fmt.Errorf("cross section: %w", err)
	}

	b := blade.New(recipe.Length, extrusion, blade.WithLogger(log.Named("blade")))
	if err := b.SetCrossSection(section.CrossSection(), section.EdgeVertices, color); err != nil {
		return nil, fmt.Errorf("cross section: %w", err)
	}
	log.Debug("cross section set",
		zap.Int("vertices", len(section.Outline)),
		zap.Ints("edge_vertices", section.EdgeVertices),
	)

	for i, sec := range recipe.Sections {
		edge, err := sec.EdgeCurve.Build()
		if err != nil {
			return nil, fmt.Errorf("section %d: edge curve: %w", i, err)
		}
		taper, err := sec.Taper.BladeTaper()
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", i, err)
		}
		if err := b.ExtrudeSection(edge, sec.Subdivisions, sec.Length, taper); err != nil {
			return nil, fmt.Errorf("section %d: %w", i, err)
		}
		log.Info("section swept",
			zap.Int("section", i),
			zap.Float64("length", sec.Length),
			zap.Int("subdivisions", sec.Subdivisions),
			zap.Float64("swept", b.CurrentLength()),
		)
	}

	if recipe.Tip != nil {
		style, err := recipe.Tip.TipStyle()
		if err != nil {
			return nil, fmt.Errorf("tip: %w", err)
		}
		if err := b.CreateTip(style, recipe.Tip.Length, recipe.Tip.Subdivisions); err != nil {
			return nil, fmt.Errorf("tip: %w", err)
		}
		log.Info("tip created", zap.Stringer("style", style), zap.Float64("length", recipe.Tip.Length))
	}

	g := b.Geometry()
	log.Info("blade built", zap.Object("stats", Stats(g)))
	return g, nil
}
