// Package window owns the GLFW window and its OpenGL context.
package window

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/learnopengl/learnopengl/lib/config"
	"github.com/learnopengl/learnopengl/lib/kbdctl"
	"github.com/learnopengl/learnopengl/lib/log"
)

// ErrCreateWindow is returned by New when GLFW could not create the window.
// GLFW has been terminated by the time it is returned.
var ErrCreateWindow = errors.New("failed to create window")

// Init initialises GLFW. It must be called from the main thread, which
// must be locked to its OS thread.
func Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	return nil
}

// Context is a window together with its OpenGL context. Every method must
// be called from the thread that called Init.
type Context struct {
	Window *glfw.Window

	onResize func(width, height int)
}

// New creates the window described by cfg and makes its context current.
func New(cfg *config.Config) (*Context, error) {
	logger := log.Module("window")
	logger.Debug("initializing window", "width", cfg.Window.Width, "height", cfg.Window.Height)

	glfw.WindowHint(glfw.Resizable, boolHint(cfg.Window.Resizable))
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GL.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GL.Minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: %w", ErrCreateWindow, err)
	}

	window.MakeContextCurrent()

	c := &Context{Window: window}
	window.SetFramebufferSizeCallback(c.framebufferSizeCallback)

	logger.Info("window created", "title", cfg.Window.Title, "gl", fmt.Sprintf("%d.%d core", cfg.GL.Major, cfg.GL.Minor))
	return c, nil
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

func (c *Context) framebufferSizeCallback(_ *glfw.Window, width int, height int) {
	if c.onResize != nil {
		c.onResize(width, height)
	}
}

// OnResize installs f as the framebuffer resize handler. f runs on the
// main thread from inside PollEvents.
func (c *Context) OnResize(f func(width, height int)) {
	c.onResize = f
}

// ProcAddress resolves GL entry points for the current context.
func (c *Context) ProcAddress(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

func (c *Context) ShouldClose() bool {
	return c.Window.ShouldClose()
}

func (c *Context) SetShouldClose(value bool) {
	c.Window.SetShouldClose(value)
}

func (c *Context) KeyDown(key kbdctl.Key) bool {
	return c.Window.GetKey(glfw.Key(key)) == glfw.Press
}

func (c *Context) FramebufferSize() (int, int) {
	return c.Window.GetFramebufferSize()
}

func (c *Context) SwapBuffers() {
	c.Window.SwapBuffers()
}

func (c *Context) PollEvents() {
	glfw.PollEvents()
}

// Close destroys the window and terminates GLFW.
func (c *Context) Close() {
	c.Window.Destroy()
	glfw.Terminate()
	log.Module("window").Debug("window destroyed")
}
