// Package renderloop drives the per-frame work until the window closes.
package renderloop

import (
	"sync/atomic"

	"github.com/learnopengl/learnopengl/lib/kbdctl"
	"github.com/learnopengl/learnopengl/lib/log"
	"github.com/learnopengl/learnopengl/lib/metrics"
	"github.com/learnopengl/learnopengl/lib/rendering"
	"github.com/learnopengl/learnopengl/lib/stats"
	"github.com/learnopengl/learnopengl/lib/utils"
)

// Surface is the window the loop presents to.
type Surface interface {
	kbdctl.Keyboard
	ShouldClose() bool
	SwapBuffers()
	PollEvents()
}

// Loop moves from Running to ClosingRequested once the surface wants to
// close, and to Terminated when Run returns. Everything except
// RequestShutdown and State must run on the GL thread.
type Loop struct {
	surface Surface
	api     rendering.API
	vars    *rendering.GLVars
	stats   *stats.Stats

	state             atomic.Int32
	shutdownRequested atomic.Bool
	deltaTimer        utils.DeltaTimer
}

func New(surface Surface, api rendering.API, vars *rendering.GLVars, st *stats.Stats) *Loop {
	if st == nil {
		st = stats.New()
	}
	l := &Loop{
		surface: surface,
		api:     api,
		vars:    vars,
		stats:   st,
	}
	l.setState(Running)
	return l
}

func (l *Loop) State() State {
	return State(l.state.Load())
}

func (l *Loop) setState(s State) {
	if old := State(l.state.Swap(int32(s))); old != s {
		log.Module("renderloop").Debug("state changed", "from", old.String(), "to", s.String())
	}
	l.stats.SetState(s.String())
}

// RequestShutdown asks the loop to close the window after the current
// frame. It is safe to call from any goroutine.
func (l *Loop) RequestShutdown() {
	l.shutdownRequested.Store(true)
}

// Step renders a single frame. It does nothing once the loop has left
// Running.
func (l *Loop) Step() {
	if l.State() != Running {
		return
	}

	if l.shutdownRequested.Load() {
		l.surface.SetShouldClose(true)
	}
	kbdctl.ProcessInput(l.surface)

	l.vars.StartFrame()
	l.vars.Draw()

	l.surface.SwapBuffers()
	l.surface.PollEvents()

	if dt := l.deltaTimer.Next(); dt > 0 {
		metrics.FrameSeconds.Observe(dt.Seconds())
	}
	metrics.FramesRendered.Inc()
	l.stats.Update(l.State().String())

	l.checkClose()
}

func (l *Loop) checkClose() {
	if l.State() == Running && l.surface.ShouldClose() {
		l.setState(ClosingRequested)
	}
}

// Run steps until the surface wants to close and then marks the loop as
// Terminated. Releasing the GL objects and the window is up to the caller.
func (l *Loop) Run() {
	logger := log.Module("renderloop")
	logger.Info("entering frame loop")

	l.checkClose()
	for l.State() == Running {
		l.Step()
	}

	l.setState(Terminated)
	logger.Info("frame loop finished", "frames", l.stats.Snapshot().Frames)
}

// Resize is the framebuffer size callback. It only moves the viewport.
func (l *Loop) Resize(width, height int) {
	rendering.Viewport(l.api, width, height)
	metrics.ResizeEvents.Inc()
	l.stats.SetViewport(width, height)
	log.Module("renderloop").Debug("framebuffer resized", "width", width, "height", height)
}
