package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFakeClockAdvanceFiresInOrder(t *testing.T) {
	c := NewFakeClock(time.Unix(0, 0))

	var fired []string

	c.AfterFunc(2*time.Second, func() { fired = append(fired, "b") })
	c.AfterFunc(time.Second, func() { fired = append(fired, "a") })
	c.AfterFunc(5*time.Second, func() { fired = append(fired, "c") })

	c.Advance(3 * time.Second)

	assert.Equal(t, []string{"a", "b"}, fired)
	assert.Equal(t, time.Unix(3, 0), c.Now())
	assert.Equal(t, 1, c.Pending())
}

func TestFakeClockCallbackSeesDeadline(t *testing.T) {
	c := NewFakeClock(time.Unix(0, 0))

	var at time.Time

	c.AfterFunc(time.Second, func() { at = c.Now() })

	c.Advance(10 * time.Second)

	assert.Equal(t, time.Unix(1, 0), at)
}

func TestFakeClockNestedTimers(t *testing.T) {
	c := NewFakeClock(time.Unix(0, 0))

	var count int

	var tick func()
	tick = func() {
		count++
		c.AfterFunc(time.Second, tick)
	}

	c.AfterFunc(time.Second, tick)
	c.Advance(5 * time.Second)

	assert.Equal(t, 5, count)
}

func TestFakeClockStop(t *testing.T) {
	c := NewFakeClock(time.Unix(0, 0))

	var fired bool

	timer := c.AfterFunc(time.Second, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	c.Advance(2 * time.Second)

	assert.False(t, fired)
	assert.Zero(t, c.Pending())
}

func TestFakeClockZeroDelay(t *testing.T) {
	c := NewFakeClock(time.Unix(0, 0))

	var fired bool

	c.AfterFunc(-time.Second, func() { fired = true })

	assert.False(t, fired)

	c.Advance(0)

	assert.True(t, fired)
}
