// Package glcore implements rendering.API on top of the OpenGL 3.3 core
// profile bindings.
package glcore

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/learnopengl/learnopengl/lib/log"
	"github.com/learnopengl/learnopengl/lib/rendering"
)

const f32 = 4

// GL is only valid on the thread whose context was current during Load.
type GL struct{}

// Load resolves the GL entry points through procAddr, which must belong to
// the current context. No other GL call may be made if it fails.
func Load(procAddr func(name string) unsafe.Pointer) (*GL, error) {
	err := gl.InitWithProcAddrFunc(procAddr)
	if err != nil {
		return nil, fmt.Errorf("could not initialise OpenGL context: %w", err)
	}

	vendor := gl.GoStr(gl.GetString(gl.VENDOR))
	renderer := gl.GoStr(gl.GetString(gl.RENDERER))
	version := gl.GoStr(gl.GetString(gl.VERSION))
	log.Module("gl").Info("OpenGL loaded", "vendor", vendor, "renderer", renderer, "version", version)

	return &GL{}, nil
}

func (*GL) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (*GL) BindBuffer(target rendering.BufferTarget, id uint32) {
	gl.BindBuffer(uint32(target), id)
}

func (*GL) BufferData(target rendering.BufferTarget, data any) {
	switch d := data.(type) {
	case []float32:
		gl.BufferData(uint32(target), len(d)*f32, gl.Ptr(d), gl.STATIC_DRAW)
	case []uint32:
		gl.BufferData(uint32(target), len(d)*4, gl.Ptr(d), gl.STATIC_DRAW)
	default:
		panic(fmt.Sprintf("unsupported buffer data %T", data))
	}
}

func (*GL) DeleteBuffer(id uint32) {
	gl.DeleteBuffers(1, &id)
}

func (*GL) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (*GL) BindVertexArray(id uint32) {
	gl.BindVertexArray(id)
}

func (*GL) VertexAttribPointer(index uint32, size int32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, gl.FLOAT, normalized, stride, offset)
}

func (*GL) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (*GL) DeleteVertexArray(id uint32) {
	gl.DeleteVertexArrays(1, &id)
}

func (*GL) CreateShader(stage rendering.ShaderStage) uint32 {
	return gl.CreateShader(uint32(stage))
}

func (*GL) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source)
	size := int32(len(source))
	gl.ShaderSource(shader, 1, csources, &size)
	free()
}

func (*GL) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (*GL) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (*GL) ShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

	clog := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(clog))
	return strings.TrimRight(clog, "\x00\n")
}

func (*GL) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (*GL) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (*GL) AttachShader(program uint32, shader uint32) {
	gl.AttachShader(program, shader)
}

func (*GL) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (*GL) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (*GL) ProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

	logmsg := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logmsg))
	return strings.TrimRight(logmsg, "\x00\n")
}

func (*GL) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (*GL) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (*GL) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (*GL) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (*GL) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (*GL) DrawElements(mode rendering.Primitive, count int32, offset uintptr) {
	gl.DrawElementsWithOffset(uint32(mode), count, gl.UNSIGNED_INT, offset)
}

var _ rendering.API = (*GL)(nil)
