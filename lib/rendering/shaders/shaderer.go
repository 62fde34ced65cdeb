package shaders

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/learnopengl/learnopengl/lib/utils"
)

//go:embed *.frag *.vert
var templateDir embed.FS

const (
	VertexTemplate   = "quad.vert"
	FragmentTemplate = "quad.frag"
)

type Shaderer struct {
	templates *template.Template
}

func NewShaderer() (*Shaderer, error) {
	s := &Shaderer{}

	var err error

	s.templates, err = template.ParseFS(templateDir, "*.frag", "*.vert")

	return s, err
}

// ShaderData contains stuff that gets passed to the shader
type ShaderData struct {
	GLSLVersion int
	Colour      utils.Colour
}

// DefaultShaderData targets the given context version and fills the quad
// with orange.
func DefaultShaderData(major, minor int) *ShaderData {
	return &ShaderData{
		GLSLVersion: GLSLVersion(major, minor),
		Colour:      utils.Colour{R: 1.0, G: 0.5, B: 0.2, A: 1.0},
	}
}

// GLSLVersion maps an OpenGL version to the matching #version number,
// which is only defined like this from 3.3 onwards.
func GLSLVersion(major, minor int) int {
	return major*100 + minor*10
}

func (s *Shaderer) GetShaderSource(name string, data *ShaderData) (string, error) {
	var b bytes.Buffer
	err := s.templates.ExecuteTemplate(&b, name, data)
	if err != nil {
		return "", fmt.Errorf("error while rendering template: %w", err)
	}

	return b.String(), nil
}

func (s *Shaderer) TemplateNames() []string {
	var names []string
	for _, t := range s.templates.Templates() {
		names = append(names, t.Name())
	}
	return names
}
