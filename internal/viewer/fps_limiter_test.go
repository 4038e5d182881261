package viewer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedLimit(n int) *FPSLimiter {
	return &FPSLimiter{limit: func() int { return n }}
}

func TestFrameTarget(t *testing.T) {
	assert.Equal(t, time.Second/60, fixedLimit(60).frameTarget(false))
	assert.Equal(t, time.Duration(0), fixedLimit(0).frameTarget(false))
	assert.Equal(t, time.Second/30, fixedLimit(0).frameTarget(true), "idle caps an unlimited loop")
	assert.Equal(t, time.Second/30, fixedLimit(144).frameTarget(true))
	assert.Equal(t, time.Second/20, fixedLimit(20).frameTarget(true), "idle never raises a lower cap")
}

func TestWaitUnlimitedReturnsImmediately(t *testing.T) {
	f := fixedLimit(0)
	start := time.Now()
	for i := 0; i < 100; i++ {
		f.Wait(false)
	}
	assert.Less(t, time.Since(start), 50*time.Millisecond)
	assert.True(t, f.next.IsZero())
}

func TestWaitPacesFrames(t *testing.T) {
	f := fixedLimit(100)
	start := time.Now()
	for i := 0; i < 10; i++ {
		f.Wait(false)
	}
	// 10 frames at 100 FPS
	assert.GreaterOrEqual(t, time.Since(start), 95*time.Millisecond)
}
