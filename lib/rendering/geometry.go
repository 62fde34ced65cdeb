package rendering

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	f32 = 4

	// FloatsPerVertex is the size of the position attribute.
	FloatsPerVertex = 3
	// PositionAttrib matches layout(location = 0) in the vertex shader.
	PositionAttrib = 0
)

// QuadVertices is a unit square centred on the origin, counter-clockwise
// from the bottom left corner.
var QuadVertices = [4]mgl32.Vec3{
	{-0.5, -0.5, 0.0},
	{0.5, -0.5, 0.0},
	{0.5, 0.5, 0.0},
	{-0.5, 0.5, 0.0},
}

// QuadIndices splits the quad along the bottom-left to top-right diagonal.
var QuadIndices = [6]uint32{
	0, 1, 2,
	2, 3, 0,
}

// Flatten lays vertices out as tightly packed float32 triples.
func Flatten(vertices []mgl32.Vec3) []float32 {
	out := make([]float32, 0, len(vertices)*FloatsPerVertex)
	for _, v := range vertices {
		out = append(out, v[:]...)
	}
	return out
}

// Mesh holds the GL names of an uploaded indexed mesh.
type Mesh struct {
	VAO uint32
	VBO uint32
	EBO uint32

	IndexCount int32
}

// UploadQuad uploads QuadVertices and QuadIndices and describes the
// position attribute. The element buffer is bound while the vertex array
// is bound so that the binding is recorded in the vertex array.
func UploadQuad(api API) Mesh {
	return UploadMesh(api, QuadVertices[:], QuadIndices[:])
}

func UploadMesh(api API, vertices []mgl32.Vec3, indices []uint32) Mesh {
	m := Mesh{IndexCount: int32(len(indices))}

	m.VBO = api.GenBuffer()
	api.BindBuffer(ArrayBuffer, m.VBO)
	api.BufferData(ArrayBuffer, Flatten(vertices))

	m.VAO = api.GenVertexArray()
	api.BindVertexArray(m.VAO)

	m.EBO = api.GenBuffer()
	api.BindBuffer(ElementArrayBuffer, m.EBO)
	api.BufferData(ElementArrayBuffer, indices)

	api.VertexAttribPointer(PositionAttrib, FloatsPerVertex, false, FloatsPerVertex*f32, 0)
	api.EnableVertexAttribArray(PositionAttrib)

	return m
}

func (m Mesh) Delete(api API) {
	api.DeleteVertexArray(m.VAO)
	api.DeleteBuffer(m.VBO)
	api.DeleteBuffer(m.EBO)
}
