package rendering

// BufferTarget, ShaderStage and Primitive carry the OpenGL enum values so
// that implementations can pass them straight through.
type BufferTarget uint32

const (
	ArrayBuffer        BufferTarget = 0x8892
	ElementArrayBuffer BufferTarget = 0x8893
)

type ShaderStage uint32

const (
	FragmentShader ShaderStage = 0x8B30
	VertexShader   ShaderStage = 0x8B31
)

func (s ShaderStage) String() string {
	switch s {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	default:
		return "unknown"
	}
}

type Primitive uint32

const (
	Triangles Primitive = 0x0004
)

// API is the part of OpenGL this program talks to. All calls act on the
// context that is current on the calling thread.
type API interface {
	GenBuffer() uint32
	BindBuffer(target BufferTarget, id uint32)
	// BufferData uploads a []float32 or []uint32 with a static usage hint.
	BufferData(target BufferTarget, data any)
	DeleteBuffer(id uint32)

	GenVertexArray() uint32
	BindVertexArray(id uint32)
	VertexAttribPointer(index uint32, size int32, normalized bool, stride int32, offset uintptr)
	EnableVertexAttribArray(index uint32)
	DeleteVertexArray(id uint32)

	CreateShader(stage ShaderStage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program uint32, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	// Clear clears the colour buffer only.
	Clear()
	// DrawElements draws count uint32 indices from the bound element buffer.
	DrawElements(mode Primitive, count int32, offset uintptr)
}

// Viewport maps the whole framebuffer of the given size.
func Viewport(api API, width, height int) {
	api.Viewport(0, 0, int32(width), int32(height))
}
