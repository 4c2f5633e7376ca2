package game

import (
	"math"
	"time"
)

const ticksPerSecond = 60

// Timer counts update ticks toward a target duration.
type Timer struct {
	currentTicks int
	targetTicks  int
}

func NewTimer(target time.Duration) *Timer {
	return &Timer{
		currentTicks: 0,
		targetTicks:  int(math.Round(target.Seconds() * ticksPerSecond)),
	}
}

func (t *Timer) Update() {
	t.currentTicks++
}

func (t *Timer) IsReady() bool {
	return t.targetTicks > 0 && t.currentTicks >= t.targetTicks
}

func (t *Timer) Reset() {
	t.currentTicks = 0
}

// Tick advances the timer by one update and reports whether it fired, restarting it if so.
func (t *Timer) Tick() bool {
	t.Update()
	if !t.IsReady() {
		return false
	}
	t.Reset()
	return true
}
