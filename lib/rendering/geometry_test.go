package rendering_test

import (
	"slices"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/learnopengl/learnopengl/lib/rendering"
	"github.com/learnopengl/learnopengl/lib/rendering/renderingtest"
)

func TestQuadShape(t *testing.T) {
	flat := rendering.Flatten(rendering.QuadVertices[:])
	if len(flat) != 4*3 {
		t.Fatalf("expected 12 floats, got %d", len(flat))
	}
	if len(rendering.QuadIndices) != 6 {
		t.Fatalf("expected 6 indices, got %d", len(rendering.QuadIndices))
	}
	for i, idx := range rendering.QuadIndices {
		if idx > 3 {
			t.Errorf("index %d is %d, outside [0,3]", i, idx)
		}
	}
	for _, v := range rendering.QuadVertices {
		if v.Len() == 0 || v.Z() != 0 {
			t.Errorf("unexpected vertex %v", v)
		}
	}
}

func TestQuadDiagonal(t *testing.T) {
	// the two triangles share exactly the bottom-left/top-right edge
	first := rendering.QuadIndices[:3]
	second := rendering.QuadIndices[3:]
	var shared []mgl32.Vec3
	for _, i := range first {
		if slices.Contains(second, i) {
			shared = append(shared, rendering.QuadVertices[i])
		}
	}
	if len(shared) != 2 {
		t.Fatalf("triangles should share 2 vertices, share %d", len(shared))
	}
	bottomLeft := mgl32.Vec3{-0.5, -0.5, 0}
	topRight := mgl32.Vec3{0.5, 0.5, 0}
	if !slices.Contains(shared, bottomLeft) || !slices.Contains(shared, topRight) {
		t.Errorf("unexpected shared edge %v", shared)
	}
}

func TestQuadWinding(t *testing.T) {
	for tri := 0; tri < 2; tri++ {
		a := rendering.QuadVertices[rendering.QuadIndices[tri*3]]
		b := rendering.QuadVertices[rendering.QuadIndices[tri*3+1]]
		c := rendering.QuadVertices[rendering.QuadIndices[tri*3+2]]
		if n := b.Sub(a).Cross(c.Sub(a)); n.Z() <= 0 {
			t.Errorf("triangle %d is not counter-clockwise", tri)
		}
	}
}

func TestFlatten(t *testing.T) {
	got := rendering.Flatten([]mgl32.Vec3{{1, 2, 3}, {4, 5, 6}})
	want := []float32{1, 2, 3, 4, 5, 6}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestUploadQuadOrdering(t *testing.T) {
	api := renderingtest.New()
	mesh := rendering.UploadQuad(api)

	want := []string{
		"GenBuffer", "BindBuffer", "BufferData",
		"GenVertexArray", "BindVertexArray",
		"GenBuffer", "BindBuffer", "BufferData",
		"VertexAttribPointer", "EnableVertexAttribArray",
	}
	if got := api.Names(); !slices.Equal(got, want) {
		t.Fatalf("unexpected call order:\n got %v\nwant %v", got, want)
	}

	if mesh.VBO == 0 || mesh.VAO == 0 || mesh.EBO == 0 {
		t.Fatalf("mesh has unset names: %+v", mesh)
	}
	if mesh.VBO == mesh.EBO {
		t.Errorf("vertex and element buffers must differ")
	}
	if mesh.IndexCount != 6 {
		t.Errorf("expected 6 indices, got %d", mesh.IndexCount)
	}

	binds := api.Find("BindBuffer")
	if binds[0].Args[0] != rendering.ArrayBuffer || binds[0].Args[1] != mesh.VBO {
		t.Errorf("first bind should be the vertex buffer: %s", binds[0])
	}
	if binds[1].Args[0] != rendering.ElementArrayBuffer || binds[1].Args[1] != mesh.EBO {
		t.Errorf("second bind should be the element buffer: %s", binds[1])
	}

	vertices, ok := api.Buffers[mesh.VBO].([]float32)
	if !ok || len(vertices) != 12 {
		t.Errorf("unexpected vertex upload %#v", api.Buffers[mesh.VBO])
	}
	indices, ok := api.Buffers[mesh.EBO].([]uint32)
	if !ok || !slices.Equal(indices, rendering.QuadIndices[:]) {
		t.Errorf("unexpected index upload %#v", api.Buffers[mesh.EBO])
	}

	attrib := api.Find("VertexAttribPointer")[0]
	wantArgs := []any{uint32(0), int32(3), false, int32(12), uintptr(0)}
	if !slices.Equal(attrib.Args, wantArgs) {
		t.Errorf("unexpected attribute layout %s", attrib)
	}
}

func TestViewport(t *testing.T) {
	api := renderingtest.New()
	rendering.Viewport(api, 1024, 768)

	calls := api.Find("Viewport")
	if len(calls) != 1 {
		t.Fatalf("expected one viewport call, got %d", len(calls))
	}
	want := []any{int32(0), int32(0), int32(1024), int32(768)}
	if !slices.Equal(calls[0].Args, want) {
		t.Errorf("unexpected viewport %s", calls[0])
	}
}
