package config

import "flag"

// Flags holds command-line overrides registered on a FlagSet.
type Flags struct {
	Config  string
	Output  string
	Tip     string
	LogFile string
	Debug   bool
}

// RegisterFlags registers the recipe override flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Config, "config", "", "Path to recipe file")
	fs.StringVar(&f.Output, "o", "", "Output mesh path (.stl or .obj)")
	fs.StringVar(&f.Tip, "tip", "", "Tip style override (standard, rounded, square, clip)")
	fs.StringVar(&f.LogFile, "log", "", "Also write logs to this file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	return f
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f == nil {
		return
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.LogFile != "" {
		cfg.Logging.LogFile = f.LogFile
	}
	if f.Output != "" {
		cfg.Output.Path = f.Output
	}
	if f.Tip != "" {
		if cfg.Blade.Tip == nil {
			cfg.Blade.Tip = &TipConfig{}
		}
		cfg.Blade.Tip.Style = f.Tip
	}
}
