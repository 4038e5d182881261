package config

import "sync"

const (
	MinDistance = 20
	MaxDistance = 200

	MaxRotateSpeed = 360

	MinFPSLimit = 10
	MaxFPSLimit = 500
)

// ViewSettings holds the settings that change while the viewer runs.
// Input callbacks write them, the render loop reads them.
type ViewSettings struct {
	mu          sync.RWMutex
	fpsLimit    int
	distance    float32
	rotateSpeed float32
	overlay     bool
	animate     bool
}

var globalViewSettings = &ViewSettings{
	fpsLimit:    60,
	distance:    60,
	rotateSpeed: 30,
	overlay:     true,
	animate:     true,
}

// ApplyView seeds the runtime settings from a loaded config
func ApplyView(cfg *Config) {
	SetFPSLimit(cfg.Window.FPSLimit)
	SetDistance(cfg.View.Distance)
	SetRotateSpeed(cfg.View.RotateSpeed)
	SetOverlay(cfg.View.Overlay)
	SetAnimate(cfg.View.Animate)
}

// GetFPSLimit returns the frame cap, 0 meaning unlimited
func GetFPSLimit() int {
	globalViewSettings.mu.RLock()
	defer globalViewSettings.mu.RUnlock()
	return globalViewSettings.fpsLimit
}

// SetFPSLimit sets the frame cap. Values <= 0 disable the cap.
func SetFPSLimit(limit int) {
	globalViewSettings.mu.Lock()
	defer globalViewSettings.mu.Unlock()

	if limit <= 0 {
		limit = 0
	} else if limit < MinFPSLimit {
		limit = MinFPSLimit
	} else if limit > MaxFPSLimit {
		limit = MaxFPSLimit
	}

	globalViewSettings.fpsLimit = limit
}

// GetDistance returns the camera distance
func GetDistance() float32 {
	globalViewSettings.mu.RLock()
	defer globalViewSettings.mu.RUnlock()
	return globalViewSettings.distance
}

// SetDistance sets the camera distance
func SetDistance(d float32) {
	globalViewSettings.mu.Lock()
	defer globalViewSettings.mu.Unlock()
	globalViewSettings.distance = clamp(d, MinDistance, MaxDistance)
}

// Zoom moves the camera by delta and returns the new distance
func Zoom(delta float32) float32 {
	globalViewSettings.mu.Lock()
	defer globalViewSettings.mu.Unlock()
	globalViewSettings.distance = clamp(globalViewSettings.distance+delta, MinDistance, MaxDistance)
	return globalViewSettings.distance
}

// GetRotateSpeed returns the automatic yaw speed in degrees per second
func GetRotateSpeed() float32 {
	globalViewSettings.mu.RLock()
	defer globalViewSettings.mu.RUnlock()
	return globalViewSettings.rotateSpeed
}

// SetRotateSpeed sets the automatic yaw speed
func SetRotateSpeed(speed float32) {
	globalViewSettings.mu.Lock()
	defer globalViewSettings.mu.Unlock()
	globalViewSettings.rotateSpeed = clamp(speed, -MaxRotateSpeed, MaxRotateSpeed)
}

// GetOverlay returns whether the outer skin layer is drawn
func GetOverlay() bool {
	globalViewSettings.mu.RLock()
	defer globalViewSettings.mu.RUnlock()
	return globalViewSettings.overlay
}

// SetOverlay sets whether the outer skin layer is drawn
func SetOverlay(enabled bool) {
	globalViewSettings.mu.Lock()
	defer globalViewSettings.mu.Unlock()
	globalViewSettings.overlay = enabled
}

// ToggleOverlay flips the overlay setting and returns the new value
func ToggleOverlay() bool {
	globalViewSettings.mu.Lock()
	defer globalViewSettings.mu.Unlock()
	globalViewSettings.overlay = !globalViewSettings.overlay
	return globalViewSettings.overlay
}

// GetAnimate returns whether the idle animation runs
func GetAnimate() bool {
	globalViewSettings.mu.RLock()
	defer globalViewSettings.mu.RUnlock()
	return globalViewSettings.animate
}

// SetAnimate enables or disables the idle animation
func SetAnimate(enabled bool) {
	globalViewSettings.mu.Lock()
	defer globalViewSettings.mu.Unlock()
	globalViewSettings.animate = enabled
}

// ToggleAnimate flips the idle animation and returns the new value
func ToggleAnimate() bool {
	globalViewSettings.mu.Lock()
	defer globalViewSettings.mu.Unlock()
	globalViewSettings.animate = !globalViewSettings.animate
	return globalViewSettings.animate
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
