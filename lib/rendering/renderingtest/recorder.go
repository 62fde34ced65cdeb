// Package renderingtest provides a rendering.API that records calls
// instead of talking to a GPU.
package renderingtest

import (
	"fmt"
	"strings"

	"github.com/learnopengl/learnopengl/lib/rendering"
)

type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = fmt.Sprint(a)
	}
	return fmt.Sprintf("%s(%s)", c.Name, strings.Join(args, ", "))
}

// Recorder hands out increasing object names and records every call.
// Shaders whose source contains BrokenMarker fail to compile, and
// programs fail to link when any attached shader failed.
type Recorder struct {
	Calls []Call

	// Buffers maps buffer names to the last data uploaded to them.
	Buffers map[uint32]any

	nextName uint32
	bound    map[rendering.BufferTarget]uint32
	sources  map[uint32]string
	compiled map[uint32]bool
	attached map[uint32][]uint32
}

const BrokenMarker = "#error"

func New() *Recorder {
	return &Recorder{
		Buffers:  make(map[uint32]any),
		bound:    make(map[rendering.BufferTarget]uint32),
		sources:  make(map[uint32]string),
		compiled: make(map[uint32]bool),
		attached: make(map[uint32][]uint32),
	}
}

func (r *Recorder) record(name string, args ...any) {
	r.Calls = append(r.Calls, Call{Name: name, Args: args})
}

func (r *Recorder) name() uint32 {
	r.nextName++
	return r.nextName
}

// Names returns the recorded call names in order.
func (r *Recorder) Names() []string {
	names := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		names[i] = c.Name
	}
	return names
}

// Count returns how often the named call was made.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Find returns the recorded calls with the given name.
func (r *Recorder) Find(name string) []Call {
	var calls []Call
	for _, c := range r.Calls {
		if c.Name == name {
			calls = append(calls, c)
		}
	}
	return calls
}

func (r *Recorder) Reset() {
	r.Calls = nil
}

func (r *Recorder) GenBuffer() uint32 {
	id := r.name()
	r.record("GenBuffer", id)
	return id
}

func (r *Recorder) BindBuffer(target rendering.BufferTarget, id uint32) {
	r.bound[target] = id
	r.record("BindBuffer", target, id)
}

func (r *Recorder) BufferData(target rendering.BufferTarget, data any) {
	r.Buffers[r.bound[target]] = data
	r.record("BufferData", target, data)
}

func (r *Recorder) DeleteBuffer(id uint32) {
	r.record("DeleteBuffer", id)
}

func (r *Recorder) GenVertexArray() uint32 {
	id := r.name()
	r.record("GenVertexArray", id)
	return id
}

func (r *Recorder) BindVertexArray(id uint32) {
	r.record("BindVertexArray", id)
}

func (r *Recorder) VertexAttribPointer(index uint32, size int32, normalized bool, stride int32, offset uintptr) {
	r.record("VertexAttribPointer", index, size, normalized, stride, offset)
}

func (r *Recorder) EnableVertexAttribArray(index uint32) {
	r.record("EnableVertexAttribArray", index)
}

func (r *Recorder) DeleteVertexArray(id uint32) {
	r.record("DeleteVertexArray", id)
}

func (r *Recorder) CreateShader(stage rendering.ShaderStage) uint32 {
	id := r.name()
	r.record("CreateShader", stage, id)
	return id
}

func (r *Recorder) ShaderSource(shader uint32, source string) {
	r.sources[shader] = source
	r.record("ShaderSource", shader)
}

func (r *Recorder) CompileShader(shader uint32) {
	r.compiled[shader] = !strings.Contains(r.sources[shader], BrokenMarker)
	r.record("CompileShader", shader)
}

func (r *Recorder) ShaderCompiled(shader uint32) bool {
	return r.compiled[shader]
}

func (r *Recorder) ShaderInfoLog(shader uint32) string {
	if r.compiled[shader] {
		return ""
	}
	return fmt.Sprintf("0:1(1): error: shader %d is broken", shader)
}

func (r *Recorder) DeleteShader(shader uint32) {
	r.record("DeleteShader", shader)
}

func (r *Recorder) CreateProgram() uint32 {
	id := r.name()
	r.record("CreateProgram", id)
	return id
}

func (r *Recorder) AttachShader(program uint32, shader uint32) {
	r.attached[program] = append(r.attached[program], shader)
	r.record("AttachShader", program, shader)
}

func (r *Recorder) LinkProgram(program uint32) {
	r.record("LinkProgram", program)
}

func (r *Recorder) ProgramLinked(program uint32) bool {
	for _, s := range r.attached[program] {
		if !r.compiled[s] {
			return false
		}
	}
	return true
}

func (r *Recorder) ProgramInfoLog(program uint32) string {
	if r.ProgramLinked(program) {
		return ""
	}
	return "error: linking with uncompiled shader"
}

func (r *Recorder) UseProgram(program uint32) {
	r.record("UseProgram", program)
}

func (r *Recorder) DeleteProgram(program uint32) {
	r.record("DeleteProgram", program)
}

func (r *Recorder) Viewport(x, y, width, height int32) {
	r.record("Viewport", x, y, width, height)
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.record("ClearColor", red, green, blue, alpha)
}

func (r *Recorder) Clear() {
	r.record("Clear")
}

func (r *Recorder) DrawElements(mode rendering.Primitive, count int32, offset uintptr) {
	r.record("DrawElements", mode, count, offset)
}

var _ rendering.API = (*Recorder)(nil)
