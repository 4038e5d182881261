package config

import "flag"

// Flags holds the command-line overrides. Zero values mean "not set".
type Flags struct {
	ConfigPath string
	Debug      bool
	SkinPath   string
	Model      string
	Width      int
	Height     int
	FPSLimit   int
	NoOverlay  bool
}

// RegisterFlags binds the config flags to fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.ConfigPath, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.SkinPath, "skin", "", "Path to a skin PNG")
	fs.StringVar(&f.Model, "model", "", "Arm model: auto, classic or slim")
	fs.IntVar(&f.Width, "width", 0, "Window width")
	fs.IntVar(&f.Height, "height", 0, "Window height")
	fs.IntVar(&f.FPSLimit, "fps", 0, "Frame rate cap")
	fs.BoolVar(&f.NoOverlay, "no-overlay", false, "Hide the outer skin layer")
	return f
}

// Apply applies flag overrides to the config.
func (f *Flags) Apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.SkinPath != "" {
		cfg.Skin.Path = f.SkinPath
	}
	if f.Model != "" {
		cfg.Skin.Model = f.Model
	}
	if f.Width > 0 {
		cfg.Window.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Window.Height = f.Height
	}
	if f.FPSLimit > 0 {
		cfg.Window.FPSLimit = f.FPSLimit
	}
	if f.NoOverlay {
		cfg.View.Overlay = false
	}
}
