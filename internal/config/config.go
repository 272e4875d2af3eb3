// Package config handles blade recipe loading, validation and saving.
package config

import "github.com/Faultbox/bladeforge/pkg/curves"

// Config holds a blade recipe plus output and logging settings.
type Config struct {
	Blade   BladeConfig   `yaml:"blade"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// BladeConfig describes how a blade is swept.
type BladeConfig struct {
	Length       float64            `yaml:"length"`          // total blade length
	Color        string             `yaml:"color,omitempty"` // #rrggbb or #rrggbbaa
	Extrusion    *curves.Spec       `yaml:"extrusion_curve,omitempty"`
	CrossSection CrossSectionConfig `yaml:"cross_section"`
	Sections     []SectionConfig    `yaml:"sections"`
	Tip          *TipConfig         `yaml:"tip,omitempty"`
}

// CrossSectionConfig selects a preset outline or gives an explicit one.
// An explicit outline wins over the preset.
type CrossSectionConfig struct {
	Preset       string       `yaml:"preset,omitempty"`
	Width        float64      `yaml:"width,omitempty"`
	Thickness    float64      `yaml:"thickness,omitempty"`
	Outline      [][2]float64 `yaml:"outline,omitempty"`
	EdgeVertices []int        `yaml:"edge_vertices,omitempty"`
}

// SectionConfig is one subdivided extrusion along the blade.
type SectionConfig struct {
	Length       float64      `yaml:"length"`
	Subdivisions int          `yaml:"subdivisions"`
	EdgeCurve    curves.Spec  `yaml:"edge_curve"`
	Taper        *TaperConfig `yaml:"taper,omitempty"`
}

// TaperConfig sets either a uniform taper or per-axis scale factors.
type TaperConfig struct {
	Uniform *float64    `yaml:"uniform,omitempty"`
	Axes    *[2]float64 `yaml:"axes,omitempty"`
}

// TipConfig closes the blade.
type TipConfig struct {
	Style        string  `yaml:"style"`
	Length       float64 `yaml:"length"`
	Subdivisions int     `yaml:"subdivisions,omitempty"`
}

// OutputConfig holds export settings.
type OutputConfig struct {
	Path string `yaml:"path"` // .stl or .obj
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config describing a plain longsword.
func Default() *Config {
	taper := 0.3
	return &Config{
		Blade: BladeConfig{
			Length: 10,
			Color:  "#c8ccd0",
			Extrusion: &curves.Spec{
				Kind:   "quad",
				Points: [][2]float64{{0, 0}, {0.02, 0.5}, {0, 1}},
			},
			CrossSection: CrossSectionConfig{
				Preset:    "diamond",
				Width:     0.8,
				Thickness: 0.12,
			},
			Sections: []SectionConfig{
				{
					Length:       8,
					Subdivisions: 16,
					EdgeCurve: curves.Spec{
						Kind:   "quad",
						Points: [][2]float64{{0, 0}, {0.01, 0.5}, {-0.01, 1}},
					},
					Taper: &TaperConfig{Uniform: &taper},
				},
			},
			Tip: &TipConfig{
				Style:        "rounded",
				Length:       2,
				Subdivisions: 5,
			},
		},
		Output: OutputConfig{
			Path: "blade.stl",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
