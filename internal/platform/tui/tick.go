// Package tui provides the Bubble Tea front end for the snake game.
// It polls input every frame, paces simulation ticks to the level speed,
// and draws the game through the render package.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/coder/quartz"
)

// FrameMsg is sent once per frame to poll the pacer.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at the given rate.
func frameCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(max(1, fps))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// Pacer lets the simulation advance no faster than the current level delay,
// however often it is polled.
type Pacer struct {
	clock quartz.Clock
	last  time.Time
}

// NewPacer creates a pacer. A nil clock means the real clock.
func NewPacer(clock quartz.Clock) *Pacer {
	if clock == nil {
		clock = quartz.NewReal()
	}
	p := &Pacer{clock: clock}
	p.Reset()
	return p
}

// Reset restarts the wait, e.g. after a pause, so the next tick is a full delay away.
func (p *Pacer) Reset() {
	p.last = p.clock.Now()
}

// Ready reports whether delay has passed since the last tick and, if so,
// starts the next wait.
func (p *Pacer) Ready(delay time.Duration) bool {
	now := p.clock.Now()
	if now.Sub(p.last) < delay {
		return false
	}
	p.last = now
	return true
}
