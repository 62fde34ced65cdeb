package rendering_test

import (
	"slices"
	"sync"
	"testing"

	"github.com/learnopengl/learnopengl/lib/rendering"
	"github.com/learnopengl/learnopengl/lib/rendering/renderingtest"
	"github.com/learnopengl/learnopengl/lib/utils"
)

func TestGLVarsFrame(t *testing.T) {
	api := renderingtest.New()
	mesh := rendering.Mesh{VAO: 7, VBO: 8, EBO: 9, IndexCount: 6}
	g := rendering.NewGLVars(api, 42, mesh, utils.Colour{R: 0.2, G: 0.3, B: 0.3, A: 1})

	g.StartFrame()
	g.Draw()

	want := []string{"ClearColor", "Clear", "BindVertexArray", "UseProgram", "DrawElements"}
	if got := api.Names(); !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	cc := api.Find("ClearColor")[0]
	if !slices.Equal(cc.Args, []any{float32(0.2), float32(0.3), float32(0.3), float32(1)}) {
		t.Errorf("unexpected clear colour %s", cc)
	}
	draw := api.Find("DrawElements")[0]
	if !slices.Equal(draw.Args, []any{rendering.Triangles, int32(6), uintptr(0)}) {
		t.Errorf("unexpected draw %s", draw)
	}
	if api.Find("BindVertexArray")[0].Args[0] != uint32(7) || api.Find("UseProgram")[0].Args[0] != uint32(42) {
		t.Error("wrong objects bound")
	}
}

func TestGLVarsBGColourConcurrent(t *testing.T) {
	g := rendering.NewGLVars(renderingtest.New(), 1, rendering.Mesh{}, utils.Colour{})

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g.SetBGColour(utils.Colour{R: float32(i) / 10, A: 1})
		}()
	}
	wg.Wait()

	if g.BGColour().A != 1 {
		t.Errorf("colour was not applied: %s", g.BGColour())
	}
}

func TestGLVarsDelete(t *testing.T) {
	api := renderingtest.New()
	g := rendering.NewGLVars(api, 3, rendering.Mesh{VAO: 1, VBO: 2, EBO: 4}, utils.Colour{})
	g.Delete()

	if api.Count("DeleteBuffer") != 2 || api.Count("DeleteVertexArray") != 1 || api.Count("DeleteProgram") != 1 {
		t.Errorf("unexpected cleanup calls %v", api.Names())
	}
}
