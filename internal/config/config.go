// Package config handles viewer configuration loading and runtime view settings.
package config

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	View    ViewConfig    `yaml:"view"`
	Skin    SkinConfig    `yaml:"skin"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Title    string `yaml:"title"`
	VSync    bool   `yaml:"vsync"`
	FPSLimit int    `yaml:"fps_limit"` // 0 = unlimited
}

// ViewConfig holds the initial camera and model presentation.
type ViewConfig struct {
	Distance    float32    `yaml:"distance"`     // camera distance in skin pixels
	Pitch       float32    `yaml:"pitch"`        // degrees
	RotateSpeed float32    `yaml:"rotate_speed"` // degrees per second, 0 = still
	Overlay     bool       `yaml:"overlay"`      // draw the outer skin layer
	Animate     bool       `yaml:"animate"`      // idle arm sway
	Background  [3]float32 `yaml:"background"`
}

// SkinConfig selects the skin to show.
type SkinConfig struct {
	Path  string `yaml:"path"`
	Model string `yaml:"model"` // auto, classic or slim
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:    900,
			Height:   600,
			Title:    "skinview",
			VSync:    true,
			FPSLimit: 60,
		},
		View: ViewConfig{
			Distance:    60,
			Pitch:       10,
			RotateSpeed: 30,
			Overlay:     true,
			Animate:     true,
			Background:  [3]float32{0.18, 0.2, 0.24},
		},
		Skin: SkinConfig{
			Path:  "",
			Model: "auto",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
