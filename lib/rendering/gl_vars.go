package rendering

import (
	"sync"

	"github.com/learnopengl/learnopengl/lib/utils"
)

// GLVars is everything a frame needs: the uploaded quad, the linked
// program and the background colour.
type GLVars struct {
	api API

	Program uint32
	Mesh    Mesh

	bgColour utils.Colour
	bgMutex  sync.Mutex
}

func NewGLVars(api API, program uint32, mesh Mesh, bgColour utils.Colour) *GLVars {
	return &GLVars{
		api:      api,
		Program:  program,
		Mesh:     mesh,
		bgColour: bgColour,
	}
}

// SetBGColour may be called from any goroutine; the colour is picked up by
// the next StartFrame.
func (g *GLVars) SetBGColour(c utils.Colour) {
	g.bgMutex.Lock()
	defer g.bgMutex.Unlock()
	g.bgColour = c
}

func (g *GLVars) BGColour() utils.Colour {
	g.bgMutex.Lock()
	defer g.bgMutex.Unlock()
	return g.bgColour
}

func (g *GLVars) StartFrame() {
	c := g.BGColour()
	g.api.ClearColor(c.R, c.G, c.B, c.A)
	g.api.Clear()
}

// Draw rebinds the vertex array and program every frame, there is no
// state tracking.
func (g *GLVars) Draw() {
	g.api.BindVertexArray(g.Mesh.VAO)
	g.api.UseProgram(g.Program)
	g.api.DrawElements(Triangles, g.Mesh.IndexCount, 0)
}

func (g *GLVars) Delete() {
	g.Mesh.Delete(g.api)
	g.api.DeleteProgram(g.Program)
}
