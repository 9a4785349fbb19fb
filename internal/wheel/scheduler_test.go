package wheel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVirtualClock_TimersFireInDeadlineOrder(t *testing.T) {
	c := NewVirtualClock(10 * time.Millisecond)
	var order []string

	c.AfterFunc(30*time.Millisecond, func() { order = append(order, "c") })
	c.AfterFunc(10*time.Millisecond, func() { order = append(order, "a") })
	c.AfterFunc(10*time.Millisecond, func() { order = append(order, "b") })

	c.Advance(50 * time.Millisecond)

	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.True(t, c.Idle())
}

func TestVirtualClock_Stop(t *testing.T) {
	c := NewVirtualClock(10 * time.Millisecond)
	fired := false
	timer := c.AfterFunc(10*time.Millisecond, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	c.Step()
	assert.False(t, fired)
}

func TestVirtualClock_StopAfterFire(t *testing.T) {
	c := NewVirtualClock(10 * time.Millisecond)
	timer := c.AfterFunc(0, func() {})

	c.Step()

	assert.False(t, timer.Stop())
}

func TestVirtualClock_TimerScheduledFromCallback(t *testing.T) {
	c := NewVirtualClock(10 * time.Millisecond)
	count := 0
	var tick func()
	tick = func() {
		count++
		if count < 3 {
			c.AfterFunc(10*time.Millisecond, tick)
		}
	}
	c.AfterFunc(10*time.Millisecond, tick)

	c.Advance(15 * time.Millisecond)
	assert.Equal(t, 1, count)

	c.Advance(100 * time.Millisecond)
	assert.Equal(t, 3, count)
}

func TestVirtualClock_Frames(t *testing.T) {
	c := NewVirtualClock(0)
	frames := 0
	var loop func()
	loop = func() {
		frames++
		if frames < 5 {
			c.RequestFrame(loop)
		}
	}
	c.RequestFrame(loop)

	steps := c.RunUntil(func() bool { return !c.FramePending() }, 100)

	assert.Equal(t, 5, steps)
	assert.Equal(t, 5, frames)
	assert.Equal(t, 5, c.Frames())
	assert.Equal(t, 5*DefaultFrameInterval, c.Now())
}

func TestVirtualClock_RunUntilLimit(t *testing.T) {
	c := NewVirtualClock(time.Millisecond)

	steps := c.RunUntil(func() bool { return false }, 7)

	assert.Equal(t, 7, steps)
	assert.Equal(t, 7*time.Millisecond, c.Now())
}

func TestVirtualClock_ChainedTimersKeepTheirCadence(t *testing.T) {
	c := NewVirtualClock(15 * time.Millisecond)
	var at []time.Duration
	var tick func()
	tick = func() {
		at = append(at, c.Now())
		if len(at) < 4 {
			c.AfterFunc(10*time.Millisecond, tick)
		}
	}
	c.AfterFunc(10*time.Millisecond, tick)

	c.Step()
	c.Step()
	c.Step()

	assert.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond, 30 * time.Millisecond, 40 * time.Millisecond}, at)
	assert.Equal(t, 45*time.Millisecond, c.Now(), "the clock ends at the step boundary")
}
