package scene

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/cpuraster"
)

// file mirrors the TOML layout of a scene file.
type file struct {
	Background string         `toml:"background"`
	Line       []fileLine     `toml:"line,omitempty"`
	Triangle   []fileTriangle `toml:"triangle,omitempty"`
	Textured   []fileTextured `toml:"textured,omitempty"`
}

type fileLine struct {
	From  []any  `toml:"from"`
	To    []any  `toml:"to"`
	Color string `toml:"color"`
}

type fileTriangle struct {
	Vertices [][]any  `toml:"vertices"`
	Colors   []string `toml:"colors,omitempty"`
	Color    string   `toml:"color,omitempty"`
}

type fileTextured struct {
	Vertices [][]any `toml:"vertices"`
	UV       [][]any `toml:"uv,omitempty"`
}

// Load reads a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("scene: read file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, err
	}
	cpuraster.Logger().Info("scene: loaded", "path", path, "primitives", s.Len())
	return s, nil
}

// Parse decodes a scene from TOML. Unknown keys are rejected.
func Parse(data []byte) (*Scene, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads a scene in TOML from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Scene, error) {
	var f file
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("%w: line %d, column %d: %v", ErrInvalidScene, row, col, derr)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}
	return f.scene()
}

func (f *file) scene() (*Scene, error) {
	s := &Scene{Background: color.NRGBA{A: 255}}

	if f.Background != "" {
		c, err := ParseColor(f.Background)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		s.Background = c
	}

	for i, l := range f.Line {
		line, err := l.line()
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		s.Lines = append(s.Lines, line)
	}
	for i, t := range f.Triangle {
		tri, err := t.triangle()
		if err != nil {
			return nil, fmt.Errorf("triangle %d: %w", i, err)
		}
		s.Triangles = append(s.Triangles, tri)
	}
	for i, t := range f.Textured {
		tri, err := t.textured()
		if err != nil {
			return nil, fmt.Errorf("textured %d: %w", i, err)
		}
		s.Textured = append(s.Textured, tri)
	}
	return s, nil
}

func (l fileLine) line() (Line, error) {
	from, err := parsePos(l.From)
	if err != nil {
		return Line{}, fmt.Errorf("%w: from: %v", ErrInvalidScene, err)
	}
	to, err := parsePos(l.To)
	if err != nil {
		return Line{}, fmt.Errorf("%w: to: %v", ErrInvalidScene, err)
	}
	c, err := ParseColor(l.Color)
	if err != nil {
		return Line{}, err
	}
	return Line{From: from, To: to, Color: c}, nil
}

func (t fileTriangle) triangle() (Triangle, error) {
	v, err := parseVertices(t.Vertices)
	if err != nil {
		return Triangle{}, err
	}

	switch {
	case t.Color != "" && len(t.Colors) > 0:
		return Triangle{}, fmt.Errorf("%w: both color and colors given", ErrInvalidScene)
	case t.Color != "":
		c, err := ParseColor(t.Color)
		if err != nil {
			return Triangle{}, err
		}
		return Triangle{Vertices: v, Colors: [3]color.NRGBA{c, c, c}, Flat: true}, nil
	case len(t.Colors) != 3:
		return Triangle{}, fmt.Errorf("%w: want 3 colors, got %d", ErrInvalidScene, len(t.Colors))
	}

	tri := Triangle{Vertices: v}
	for i, cs := range t.Colors {
		c, err := ParseColor(cs)
		if err != nil {
			return Triangle{}, err
		}
		tri.Colors[i] = c
	}
	return tri, nil
}

func (t fileTextured) textured() (TexturedTriangle, error) {
	v, err := parseVertices(t.Vertices)
	if err != nil {
		return TexturedTriangle{}, err
	}
	tri := TexturedTriangle{Vertices: v}
	if t.UV == nil {
		return tri, nil
	}

	if len(t.UV) != 3 {
		return TexturedTriangle{}, fmt.Errorf("%w: want 3 texture coordinates, got %d", ErrInvalidScene, len(t.UV))
	}
	var uv [3]mgl32.Vec2
	for i, pair := range t.UV {
		if len(pair) != 2 {
			return TexturedTriangle{}, fmt.Errorf("%w: uv %d: want 2 components, got %d", ErrInvalidScene, i, len(pair))
		}
		for j, c := range pair {
			n, err := number(c)
			if err != nil {
				return TexturedTriangle{}, fmt.Errorf("%w: uv %d: %v", ErrInvalidScene, i, err)
			}
			uv[i][j] = n
		}
	}
	tri.UV = &uv
	return tri, nil
}

func parseVertices(raw [][]any) ([3]Pos, error) {
	var v [3]Pos
	if len(raw) != 3 {
		return v, fmt.Errorf("%w: want 3 vertices, got %d", ErrInvalidScene, len(raw))
	}
	for i, r := range raw {
		p, err := parsePos(r)
		if err != nil {
			return v, fmt.Errorf("%w: vertex %d: %v", ErrInvalidScene, i, err)
		}
		v[i] = p
	}
	return v, nil
}

func number(v any) (float32, error) {
	switch v := v.(type) {
	case int64:
		return float32(v), nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%v is not finite", v)
		}
		return float32(v), nil
	default:
		return 0, fmt.Errorf("%v is not a number", v)
	}
}
