package shaders

import (
	"errors"
	"fmt"

	"github.com/learnopengl/learnopengl/lib/log"
	"github.com/learnopengl/learnopengl/lib/metrics"
	"github.com/learnopengl/learnopengl/lib/rendering"
)

// ErrorPolicy decides what happens when a stage fails to compile or the
// program fails to link.
type ErrorPolicy int

const (
	// LogErrors logs the driver's info log and carries on with the
	// program as linked, which may draw nothing.
	LogErrors ErrorPolicy = iota
	// FailOnError releases everything created so far and returns an error.
	FailOnError
)

// Diagnostic is a compile or link failure reported by the driver.
type Diagnostic struct {
	Stage string
	Log   string
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s", d.Stage, d.Log)
}

// Program is a linked shader program. Diagnostics is only non-empty when
// the program was built with LogErrors and something went wrong.
type Program struct {
	ID          uint32
	Diagnostics []Diagnostic
}

func (p Program) OK() bool {
	return len(p.Diagnostics) == 0
}

// BuildGLProgram renders the embedded quad shaders with shaderData, links
// them and makes the result the current program.
func BuildGLProgram(api rendering.API, shaderData *ShaderData, policy ErrorPolicy) (Program, error) {
	shaderer, err := NewShaderer()
	if err != nil {
		return Program{}, fmt.Errorf("could not get shaders: %w", err)
	}

	vertexShader, err := shaderer.GetShaderSource(VertexTemplate, shaderData)
	if err != nil {
		return Program{}, fmt.Errorf("could not get vertex shader: %w", err)
	}

	fragmentShader, err := shaderer.GetShaderSource(FragmentTemplate, shaderData)
	if err != nil {
		return Program{}, fmt.Errorf("could not get fragment shader: %w", err)
	}

	logger := log.Module("shaders")
	logger.Debug("vertex shader source\n" + vertexShader)
	logger.Debug("fragment shader source\n" + fragmentShader)

	program, err := NewProgram(api, vertexShader, fragmentShader, policy)
	if err != nil {
		return Program{}, fmt.Errorf("could not init shader: %w", err)
	}

	return program, nil
}

// NewProgram compiles both stages, links them, uses the program and
// deletes the stage objects.
func NewProgram(api rendering.API, vertexShaderSource, fragmentShaderSource string, policy ErrorPolicy) (Program, error) {
	var p Program

	vertexShader, diag := compileShader(api, vertexShaderSource, rendering.VertexShader)
	if diag != nil {
		if policy == FailOnError {
			api.DeleteShader(vertexShader)
			return Program{}, *diag
		}
		p.Diagnostics = append(p.Diagnostics, *diag)
	}

	fragmentShader, diag := compileShader(api, fragmentShaderSource, rendering.FragmentShader)
	if diag != nil {
		if policy == FailOnError {
			api.DeleteShader(vertexShader)
			api.DeleteShader(fragmentShader)
			return Program{}, *diag
		}
		p.Diagnostics = append(p.Diagnostics, *diag)
	}

	p.ID = api.CreateProgram()

	api.AttachShader(p.ID, vertexShader)
	api.AttachShader(p.ID, fragmentShader)
	api.LinkProgram(p.ID)

	if !api.ProgramLinked(p.ID) {
		diag := &Diagnostic{Stage: "link", Log: api.ProgramInfoLog(p.ID)}
		report(diag)
		if policy == FailOnError {
			api.DeleteShader(vertexShader)
			api.DeleteShader(fragmentShader)
			api.DeleteProgram(p.ID)
			return Program{}, *diag
		}
		p.Diagnostics = append(p.Diagnostics, *diag)
	}

	api.UseProgram(p.ID)

	// the program keeps the compiled code
	api.DeleteShader(vertexShader)
	api.DeleteShader(fragmentShader)

	return p, nil
}

func compileShader(api rendering.API, source string, stage rendering.ShaderStage) (uint32, *Diagnostic) {
	shader := api.CreateShader(stage)
	api.ShaderSource(shader, source)
	api.CompileShader(shader)

	if !api.ShaderCompiled(shader) {
		diag := &Diagnostic{Stage: stage.String(), Log: api.ShaderInfoLog(shader)}
		report(diag)
		return shader, diag
	}

	return shader, nil
}

func report(diag *Diagnostic) {
	metrics.ShaderCompileFailures.WithLabelValues(diag.Stage).Inc()
	log.Module("shaders").Error("shader failed", "stage", diag.Stage, "log", diag.Log)
}

// IsDiagnostic reports whether err carries a driver compile or link log.
func IsDiagnostic(err error) bool {
	var d Diagnostic
	return errors.As(err, &d)
}
