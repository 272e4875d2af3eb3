package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
// The file is f.Config when set, otherwise the first recipe found by
// FindConfigFile. A nil f applies no overrides.
func Load(f *Flags) (*Config, error) {
	cfg := Default()

	path := ""
	if f != nil {
		path = f.Config
	}
	if path == "" {
		path = FindConfigFile()
	}

	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading recipe from %s: %w", path, err)
		}
	}

	f.apply(cfg)

	return cfg, nil
}

// FindConfigFile looks for a recipe in standard locations.
func FindConfigFile() string {
	candidates := []string{
		"./blade.yaml",
		filepath.Join(ConfigDir(), "blade.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Bladeforge")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Bladeforge")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "bladeforge")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "bladeforge")
	}
}

// loadFromFile loads a recipe from a YAML file. Blade fields present in the
// file replace the defaults wholesale so a recipe never inherits default
// sections or tip.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var probe struct {
		Blade *yaml.Node `yaml:"blade"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return err
	}
	if probe.Blade != nil {
		cfg.Blade = BladeConfig{}
	}
	return yaml.Unmarshal(data, cfg)
}
