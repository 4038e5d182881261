package viewer

import (
	"testing"

	"mc-skinview/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestControlsDrag(t *testing.T) {
	var c Controls

	c.CursorMoved(100, 100)
	yaw, pitch := c.TakeOrbit()
	assert.Zero(t, yaw, "no motion without a drag")
	assert.Zero(t, pitch)

	c.MouseButton(true, 100, 100)
	assert.True(t, c.Dragging())
	c.CursorMoved(110, 95)
	c.CursorMoved(120, 90)

	yaw, pitch = c.TakeOrbit()
	assert.InDelta(t, -20*DragSensitivity, yaw, 1e-5)
	assert.InDelta(t, -10*DragSensitivity, pitch, 1e-5)

	yaw, pitch = c.TakeOrbit()
	assert.Zero(t, yaw, "orbit is cleared once taken")
	assert.Zero(t, pitch)

	c.MouseButton(false, 120, 90)
	c.CursorMoved(200, 200)
	yaw, _ = c.TakeOrbit()
	assert.Zero(t, yaw)
}

func TestControlsScroll(t *testing.T) {
	t.Cleanup(func() { config.ApplyView(config.Default()) })
	config.SetDistance(60)

	var c Controls
	assert.Equal(t, float32(60-ZoomStep), c.Scroll(1))
	assert.Equal(t, float32(60), c.Scroll(-1))
	assert.Equal(t, float32(config.MaxDistance), c.Scroll(-1000))
}

func TestTimelineAdvance(t *testing.T) {
	t.Cleanup(func() { config.ApplyView(config.Default()) })
	config.SetRotateSpeed(90)
	config.SetAnimate(true)

	var tl Timeline
	tl.Advance(1, false)
	assert.InDelta(t, 90, tl.Yaw, 1e-4)
	assert.InDelta(t, 1, tl.AnimTime, 1e-9)

	tl.Advance(3, false)
	assert.InDelta(t, 0, tl.Yaw, 1e-4, "wraps at 360")

	tl.Advance(1, true)
	assert.InDelta(t, 0, tl.Yaw, 1e-4, "dragging pauses the turntable")
	assert.InDelta(t, 5, tl.AnimTime, 1e-9)

	config.SetRotateSpeed(-90)
	tl.Advance(1, false)
	assert.InDelta(t, 270, tl.Yaw, 1e-4)
	assert.InDelta(t, 6, tl.AnimTime, 1e-9)

	config.SetAnimate(false)
	tl.Advance(1, false)
	assert.InDelta(t, 6, tl.AnimTime, 1e-9, "animation clock stops")
}

func TestTimelineIdle(t *testing.T) {
	t.Cleanup(func() { config.ApplyView(config.Default()) })

	var tl Timeline
	config.SetRotateSpeed(0)
	config.SetAnimate(false)
	assert.True(t, tl.Idle(false))
	assert.False(t, tl.Idle(true))

	config.SetAnimate(true)
	assert.False(t, tl.Idle(false))
}
