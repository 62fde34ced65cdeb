// Package app wires the window, GL loader, geometry, shaders and frame
// loop together in the order OpenGL requires.
package app

import (
	"context"
	"os"
	"time"
	"unsafe"

	"github.com/learnopengl/learnopengl/lib/api"
	"github.com/learnopengl/learnopengl/lib/config"
	"github.com/learnopengl/learnopengl/lib/log"
	"github.com/learnopengl/learnopengl/lib/rendering"
	"github.com/learnopengl/learnopengl/lib/rendering/glcore"
	"github.com/learnopengl/learnopengl/lib/rendering/shaders"
	"github.com/learnopengl/learnopengl/lib/renderloop"
	"github.com/learnopengl/learnopengl/lib/stats"
	"github.com/learnopengl/learnopengl/lib/window"
)

const (
	ExitOK = 0
	// ExitInitFailure is used when GLFW itself cannot start.
	ExitInitFailure = 1
	// ExitSetupFailure is used when the window, the GL loader or, with
	// the fail policy, the shaders could not be set up.
	ExitSetupFailure = -1
)

// ShaderPolicy maps the configured policy onto the shaders package.
func ShaderPolicy(p config.ShaderErrorPolicy) shaders.ErrorPolicy {
	if p == config.ShaderErrorFail {
		return shaders.FailOnError
	}
	return shaders.LogErrors
}

// Window is the window and context the program renders into.
type Window interface {
	renderloop.Surface
	OnResize(f func(width, height int))
	FramebufferSize() (int, int)
	ProcAddress(name string) unsafe.Pointer
	Close()
}

// Runner holds the platform hooks Run goes through.
type Runner struct {
	Init      func() error
	NewWindow func(cfg *config.Config) (Window, error)
	LoadGL    func(procAddr func(name string) unsafe.Pointer) (rendering.API, error)
	// Exit must not return for a real process.
	Exit func(code int)
}

// GLFW returns a Runner backed by GLFW and the OpenGL core bindings.
func GLFW() *Runner {
	return &Runner{
		Init: window.Init,
		NewWindow: func(cfg *config.Config) (Window, error) {
			win, err := window.New(cfg)
			if err != nil {
				return nil, err
			}
			return win, nil
		},
		LoadGL: func(procAddr func(name string) unsafe.Pointer) (rendering.API, error) {
			loaded, err := glcore.Load(procAddr)
			if err != nil {
				return nil, err
			}
			return loaded, nil
		},
		Exit: os.Exit,
	}
}

// Run opens the window and renders until it is closed. It must be called
// on the main thread, locked to its OS thread. A GLFW init failure exits
// the process directly; everything else is reported as an exit code.
func Run(cfg *config.Config) int {
	return GLFW().Run(cfg)
}

func (r *Runner) Run(cfg *config.Config) int {
	logger := log.Module("app")

	err := r.Init()
	if err != nil {
		logger.Error("could not initialise windowing", "err", err)
		r.Exit(ExitInitFailure)
		return ExitInitFailure
	}

	win, err := r.NewWindow(cfg)
	if err != nil {
		logger.Error("could not create window", "err", err)
		return ExitSetupFailure
	}
	defer win.Close()

	glAPI, err := r.LoadGL(win.ProcAddress)
	if err != nil {
		logger.Error("could not load OpenGL", "err", err)
		return ExitSetupFailure
	}

	st := stats.New()
	width, height := win.FramebufferSize()
	rendering.Viewport(glAPI, width, height)
	st.SetViewport(width, height)

	mesh := rendering.UploadQuad(glAPI)

	shaderData := shaders.DefaultShaderData(cfg.GL.Major, cfg.GL.Minor)
	program, err := shaders.BuildGLProgram(glAPI, shaderData, ShaderPolicy(cfg.Shaders.OnCompileError))
	if err != nil {
		logger.Error("could not build shader program", "err", err)
		mesh.Delete(glAPI)
		return ExitSetupFailure
	}
	if !program.OK() {
		logger.Warn("continuing with a broken shader program, the quad may not be drawn", "failures", len(program.Diagnostics))
	}

	glvars := rendering.NewGLVars(glAPI, program.ID, mesh, cfg.ClearColour.Colour())
	defer glvars.Delete()

	loop := renderloop.New(win, glAPI, glvars, st)
	win.OnResize(loop.Resize)

	theApi := api.ServeInBackground(cfg.Api, loop, st)
	if theApi != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := theApi.Shutdown(ctx); err != nil {
				logger.Warn("could not stop web server", "err", err)
			}
		}()
	}

	if cfg.Watch {
		watcher, err := config.Watch(cfg.Path, func(newCfg *config.Config) {
			glvars.SetBGColour(newCfg.ClearColour.Colour())
			logger.Info("clear colour updated", "colour", newCfg.ClearColour.Colour().String())
		})
		if err != nil {
			logger.Warn("not watching config", "err", err)
		} else {
			defer watcher.Close()
		}
	}

	loop.Run()
	return ExitOK
}
