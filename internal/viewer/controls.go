package viewer

import (
	"math"

	"mc-skinview/internal/config"
)

const (
	// DragSensitivity is degrees of orbit per pixel of mouse travel
	DragSensitivity = 0.4
	// ZoomStep is camera distance per scroll notch
	ZoomStep = 4
)

// Controls turns raw window input into camera motion. It holds no GL or window
// state so the window layer only forwards events.
type Controls struct {
	dragging     bool
	lastX, lastY float64

	yaw, pitch float32
}

// MouseButton starts or ends an orbit drag at the cursor position
func (c *Controls) MouseButton(pressed bool, x, y float64) {
	c.dragging = pressed
	c.lastX, c.lastY = x, y
}

// CursorMoved accumulates orbit motion while dragging
func (c *Controls) CursorMoved(x, y float64) {
	if !c.dragging {
		return
	}
	c.yaw -= float32(x-c.lastX) * DragSensitivity
	c.pitch += float32(y-c.lastY) * DragSensitivity
	c.lastX, c.lastY = x, y
}

// Dragging reports whether an orbit drag is in progress
func (c *Controls) Dragging() bool { return c.dragging }

// Scroll zooms the camera and returns the new distance
func (c *Controls) Scroll(dy float64) float32 {
	return config.Zoom(-float32(dy) * ZoomStep)
}

// TakeOrbit returns and clears the accumulated yaw/pitch in degrees
func (c *Controls) TakeOrbit() (yaw, pitch float32) {
	yaw, pitch = c.yaw, c.pitch
	c.yaw, c.pitch = 0, 0
	return yaw, pitch
}

// Timeline tracks the model turntable angle and the animation clock
type Timeline struct {
	// Yaw of the model in degrees, [0, 360)
	Yaw float32
	// AnimTime is the idle animation clock in seconds; it stops while
	// animation is disabled
	AnimTime float64
}

// Advance moves the timeline by dt seconds. Auto-rotation pauses while the
// user drags.
func (t *Timeline) Advance(dt float64, dragging bool) {
	if !dragging {
		t.Yaw = float32(math.Mod(float64(t.Yaw)+float64(config.GetRotateSpeed())*dt, 360))
		if t.Yaw < 0 {
			t.Yaw += 360
		}
	}
	if config.GetAnimate() {
		t.AnimTime += dt
	}
}

// Idle reports whether nothing on screen changes between frames
func (t *Timeline) Idle(dragging bool) bool {
	return !dragging && config.GetRotateSpeed() == 0 && !config.GetAnimate()
}
