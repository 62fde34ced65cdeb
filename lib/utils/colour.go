package utils

import (
	"fmt"
	"regexp"

	"github.com/go-gl/mathgl/mgl32"
)

var hexColour = regexp.MustCompile(`^#[0-9A-Fa-f]{8}$`)

// Colour is a normalised RGBA colour as GL expects it for glClearColor.
type Colour struct {
	R, G, B, A float32
}

func ColourValidate(c string) bool {
	return hexColour.MatchString(c)
}

// ColourParse parses #rrggbbaa into a normalised colour.
func ColourParse(s string) (Colour, error) {
	if !ColourValidate(s) {
		return Colour{}, fmt.Errorf("%s is not a valid RGBA hex colour", s)
	}
	var r, g, b, a uint8
	_, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &r, &g, &b, &a)
	if err != nil {
		return Colour{}, fmt.Errorf("could not parse %s: %w", s, err)
	}
	return Colour{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}, nil
}

func ColourFromVec4(v mgl32.Vec4) Colour {
	return Colour{R: v.X(), G: v.Y(), B: v.Z(), A: v.W()}
}

func (c Colour) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{c.R, c.G, c.B, c.A}
}

// InRange reports whether every channel lies in [0,1].
func (c Colour) InRange() bool {
	for _, v := range c.Vec4() {
		if v < 0 || v > 1 {
			return false
		}
	}
	return true
}

func (c Colour) String() string {
	return fmt.Sprintf("(%.3g, %.3g, %.3g, %.3g)", c.R, c.G, c.B, c.A)
}
