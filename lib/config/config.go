package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	yaml "github.com/goccy/go-yaml"
	"github.com/learnopengl/learnopengl/lib/log"
	"github.com/learnopengl/learnopengl/lib/utils"
)

type Config struct {
	Window      WindowCfg
	GL          GLCfg     `yaml:"gl"`
	ClearColour CfgColour `yaml:"clear_colour"`
	Shaders     ShadersCfg
	Log         LogCfg
	Api         *ApiCfg

	// Watch reapplies clear_colour whenever the config file is rewritten
	Watch bool

	// Path is the file this config was read from, empty for Default()
	Path string `yaml:"-"`
}

type WindowCfg struct {
	Width     int
	Height    int
	Title     string
	Resizable bool
}

type GLCfg struct {
	Major int
	Minor int
}

// Valid reports whether this is a released OpenGL version with vertex
// array objects and a core profile: 3.3 or 4.0 to 4.6.
func (g GLCfg) Valid() bool {
	switch g.Major {
	case 3:
		return g.Minor == 3
	case 4:
		return g.Minor >= 0 && g.Minor <= 6
	default:
		return false
	}
}

type ShaderErrorPolicy string

const (
	// ShaderErrorLog logs compile and link failures and keeps running with
	// whatever program the driver produced.
	ShaderErrorLog ShaderErrorPolicy = "log"
	// ShaderErrorFail aborts startup on the first compile or link failure.
	ShaderErrorFail ShaderErrorPolicy = "fail"
)

type ShadersCfg struct {
	OnCompileError ShaderErrorPolicy `yaml:"on_compile_error"`
}

type LogCfg struct {
	Level string
}

type ApiCfg struct {
	Bind string
}

func Default() *Config {
	return &Config{
		Window: WindowCfg{
			Width:     800,
			Height:    800,
			Title:     "Graphics Engine",
			Resizable: true,
		},
		GL: GLCfg{
			Major: 3,
			Minor: 3,
		},
		ClearColour: CfgColour{R: 0.2, G: 0.3, B: 0.3, A: 1.0},
		Shaders: ShadersCfg{
			OnCompileError: ShaderErrorLog,
		},
		Log: LogCfg{
			Level: "info",
		},
	}
}

// Parse reads filename on top of Default() and validates the result.
func Parse(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", filename, err)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	cfg := Default()
	m := yaml.NewDecoder(f)
	err = m.Decode(cfg)
	// an empty or comment-only file keeps every default
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("could not parse %s: %w", filename, err)
	}
	cfg.Path = filename

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if !c.GL.Valid() {
		return fmt.Errorf("OpenGL %d.%d is not a supported core profile version, use 3.3 or 4.0 to 4.6", c.GL.Major, c.GL.Minor)
	}
	if !c.ClearColour.Colour().InRange() {
		return fmt.Errorf("clear_colour %s has channels outside [0, 1]", c.ClearColour.Colour())
	}
	switch c.Shaders.OnCompileError {
	case ShaderErrorLog, ShaderErrorFail:
	default:
		return fmt.Errorf("shaders.on_compile_error must be %q or %q, got %q", ShaderErrorLog, ShaderErrorFail, c.Shaders.OnCompileError)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log config: %w", err)
	}
	if c.Api != nil && c.Api.Bind == "" {
		return fmt.Errorf("api.bind must be set when the api section is present")
	}
	if c.Watch && c.Path == "" {
		return fmt.Errorf("watch needs a config file")
	}
	return nil
}

func (c *Config) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Window: %dx%d %q (resizable: %t)\n", c.Window.Width, c.Window.Height, c.Window.Title, c.Window.Resizable)
	fmt.Fprintf(&b, "OpenGL: %d.%d core\n", c.GL.Major, c.GL.Minor)
	fmt.Fprintf(&b, "Clear colour: %s\n", c.ClearColour.Colour())
	fmt.Fprintf(&b, "Shader errors: %s\n", c.Shaders.OnCompileError)
	fmt.Fprintf(&b, "Log level: %s\n", c.Log.Level)
	if c.Api != nil {
		fmt.Fprintf(&b, "API: %s\n", c.Api.Bind)
	}
	if c.Watch {
		b.WriteString("Watching config for clear colour changes\n")
	}

	return b.String()
}

// CfgColour is either a list of four floats or a quoted "#rrggbbaa" string.
type CfgColour utils.Colour

func (c *CfgColour) UnmarshalYAML(b []byte) error {
	var channels []float32
	if err := yaml.Unmarshal(b, &channels); err == nil {
		if len(channels) != 4 {
			return fmt.Errorf("colour needs 4 channels, got %d", len(channels))
		}
		*c = CfgColour{R: channels[0], G: channels[1], B: channels[2], A: channels[3]}
		return nil
	}

	var s string
	if err := yaml.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("colour must be a list of floats or a hex string: %w", err)
	}
	parsed, err := utils.ColourParse(s)
	if err != nil {
		return err
	}
	*c = CfgColour(parsed)
	return nil
}

func (c CfgColour) Colour() utils.Colour {
	return utils.Colour(c)
}
