package tui

import (
	"testing"
	"time"

	"github.com/rileyhilliard/spinwheel/internal/wheel"
	"github.com/stretchr/testify/assert"
)

func TestTeaHost_DefaultInterval(t *testing.T) {
	h := newTeaHost(0)
	assert.Equal(t, wheel.DefaultFrameInterval, h.frameInterval)
}

func TestTeaHost_TimerDelivery(t *testing.T) {
	h := newTeaHost(time.Millisecond)
	fired := 0

	h.AfterFunc(time.Second, func() { fired++ })
	assert.NotNil(t, h.drain())
	assert.Nil(t, h.drain(), "drain empties the queue")

	h.deliverTimer(1)
	h.deliverTimer(1)

	assert.Equal(t, 1, fired)
	assert.Equal(t, 0, h.activeTimers())
}

func TestTeaHost_StoppedTimerIgnored(t *testing.T) {
	h := newTeaHost(time.Millisecond)
	fired := false

	timer := h.AfterFunc(time.Second, func() { fired = true })
	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	h.deliverTimer(1)

	assert.False(t, fired)
}

func TestTeaHost_SingleFrameInFlight(t *testing.T) {
	h := newTeaHost(time.Millisecond)
	var got []string

	h.RequestFrame(func() { got = append(got, "a") })
	h.RequestFrame(func() { got = append(got, "b") })

	assert.Len(t, h.pending, 1)

	h.deliverFrame()
	h.deliverFrame()

	assert.Equal(t, []string{"b"}, got)
	assert.False(t, h.frameInFlight)
}

func TestTeaHost_FrameRequestedFromFrame(t *testing.T) {
	h := newTeaHost(time.Millisecond)
	count := 0
	var loop func()
	loop = func() {
		count++
		if count < 3 {
			h.RequestFrame(loop)
		}
	}

	h.RequestFrame(loop)
	for i := 0; i < 5; i++ {
		h.deliverFrame()
	}

	assert.Equal(t, 3, count)
	assert.Len(t, h.pending, 3)
}
