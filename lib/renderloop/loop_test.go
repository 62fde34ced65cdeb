package renderloop

import (
	"slices"
	"testing"

	"github.com/learnopengl/learnopengl/lib/kbdctl"
	"github.com/learnopengl/learnopengl/lib/rendering"
	"github.com/learnopengl/learnopengl/lib/rendering/renderingtest"
	"github.com/learnopengl/learnopengl/lib/stats"
	"github.com/learnopengl/learnopengl/lib/utils"
)

type surface struct {
	api *renderingtest.Recorder

	shouldClose bool
	escape      bool
	swaps       int
	polls       int

	// onPoll simulates events delivered by PollEvents
	onPoll func(polls int)
}

func (s *surface) KeyDown(key kbdctl.Key) bool {
	return key == kbdctl.KeyEscape && s.escape
}

func (s *surface) SetShouldClose(value bool) {
	s.shouldClose = value
}

func (s *surface) ShouldClose() bool {
	return s.shouldClose
}

func (s *surface) SwapBuffers() {
	s.swaps++
	s.api.Calls = append(s.api.Calls, renderingtest.Call{Name: "SwapBuffers"})
}

func (s *surface) PollEvents() {
	s.polls++
	s.api.Calls = append(s.api.Calls, renderingtest.Call{Name: "PollEvents"})
	if s.onPoll != nil {
		s.onPoll(s.polls)
	}
}

func newLoop(t *testing.T) (*Loop, *surface, *renderingtest.Recorder) {
	t.Helper()
	api := renderingtest.New()
	mesh := rendering.UploadQuad(api)
	vars := rendering.NewGLVars(api, 99, mesh, utils.Colour{R: 0.2, G: 0.3, B: 0.3, A: 1})
	api.Reset()

	s := &surface{api: api}
	return New(s, api, vars, stats.New()), s, api
}

func TestStepOrder(t *testing.T) {
	l, _, api := newLoop(t)
	l.Step()

	want := []string{"ClearColor", "Clear", "BindVertexArray", "UseProgram", "DrawElements", "SwapBuffers", "PollEvents"}
	if got := api.Names(); !slices.Equal(got, want) {
		t.Fatalf("unexpected frame:\n got %v\nwant %v", got, want)
	}
	draw := api.Find("DrawElements")[0]
	if !slices.Equal(draw.Args, []any{rendering.Triangles, int32(6), uintptr(0)}) {
		t.Errorf("unexpected draw call %s", draw)
	}
	if l.State() != Running {
		t.Errorf("expected running, got %s", l.State())
	}
}

func TestEscapeClosesWithinOneFrame(t *testing.T) {
	l, s, _ := newLoop(t)
	l.Step()
	s.escape = true
	l.Step()

	if !s.shouldClose {
		t.Error("escape should set the close flag")
	}
	if l.State() != ClosingRequested {
		t.Errorf("expected closing-requested, got %s", l.State())
	}
}

func TestWindowCloseButton(t *testing.T) {
	l, s, _ := newLoop(t)
	s.onPoll = func(polls int) {
		if polls == 3 {
			s.shouldClose = true
		}
	}
	l.Run()

	if s.swaps != 3 {
		t.Errorf("expected 3 frames, got %d", s.swaps)
	}
	if l.State() != Terminated {
		t.Errorf("expected terminated, got %s", l.State())
	}
}

func TestStepAfterCloseIsNoop(t *testing.T) {
	l, s, api := newLoop(t)
	s.shouldClose = true
	l.Run()

	if s.swaps != 0 || len(api.Calls) != 0 {
		t.Errorf("no frame should be drawn when the window starts closed: %v", api.Names())
	}
	l.Step()
	if len(api.Calls) != 0 {
		t.Errorf("step after termination should do nothing: %v", api.Names())
	}
}

func TestRequestShutdown(t *testing.T) {
	l, s, _ := newLoop(t)
	l.RequestShutdown()
	l.Step()

	if !s.shouldClose {
		t.Error("shutdown request should set the close flag")
	}
	if l.State() != ClosingRequested {
		t.Errorf("expected closing-requested, got %s", l.State())
	}
}

func TestResizeOnlyMovesViewport(t *testing.T) {
	l, s, api := newLoop(t)
	s.onPoll = func(polls int) {
		if polls == 1 {
			l.Resize(1280, 720)
		}
		if polls == 2 {
			s.shouldClose = true
		}
	}
	l.Run()

	viewports := api.Find("Viewport")
	if len(viewports) != 1 {
		t.Fatalf("expected exactly one viewport call, got %d", len(viewports))
	}
	if want := []any{int32(0), int32(0), int32(1280), int32(720)}; !slices.Equal(viewports[0].Args, want) {
		t.Errorf("unexpected viewport %s", viewports[0])
	}
	for _, name := range []string{"GenBuffer", "BufferData", "GenVertexArray", "VertexAttribPointer", "CreateShader"} {
		if n := api.Count(name); n != 0 {
			t.Errorf("resize should not touch geometry, saw %d %s calls", n, name)
		}
	}
	snap := l.stats.Snapshot()
	if snap.Width != 1280 || snap.Height != 720 {
		t.Errorf("stats not updated: %+v", snap)
	}
}

func TestStatsTrackFrames(t *testing.T) {
	l, s, _ := newLoop(t)
	s.onPoll = func(polls int) {
		if polls == 5 {
			s.shouldClose = true
		}
	}
	l.Run()

	snap := l.stats.Snapshot()
	if snap.Frames != 5 {
		t.Errorf("expected 5 frames, got %d", snap.Frames)
	}
	if snap.State != "terminated" {
		t.Errorf("unexpected state %q", snap.State)
	}
}

func TestStateString(t *testing.T) {
	cases := map[State]string{
		Running:          "running",
		ClosingRequested: "closing-requested",
		Terminated:       "terminated",
		State(17):        "unknown",
	}
	for s, want := range cases {
		if s.String() != want {
			t.Errorf("got %q, want %q", s.String(), want)
		}
	}
}
