package scene

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
)

// Encode writes s to w in the format Parse reads.
func (s *Scene) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(s.file()); err != nil {
		return fmt.Errorf("scene: encode: %w", err)
	}
	return nil
}

// TOML returns s in the format Parse reads.
func (s *Scene) TOML() ([]byte, error) {
	data, err := toml.Marshal(s.file())
	if err != nil {
		return nil, fmt.Errorf("scene: encode: %w", err)
	}
	return data, nil
}

func (s *Scene) file() *file {
	f := &file{Background: FormatColor(s.Background)}
	for _, l := range s.Lines {
		f.Line = append(f.Line, fileLine{
			From:  l.From.value(),
			To:    l.To.value(),
			Color: FormatColor(l.Color),
		})
	}
	for _, t := range s.Triangles {
		ft := fileTriangle{Vertices: vertexValues(t.Vertices)}
		if t.Flat {
			ft.Color = FormatColor(t.Colors[0])
		} else {
			for _, c := range t.Colors {
				ft.Colors = append(ft.Colors, FormatColor(c))
			}
		}
		f.Triangle = append(f.Triangle, ft)
	}
	for _, t := range s.Textured {
		ft := fileTextured{Vertices: vertexValues(t.Vertices)}
		if t.UV != nil {
			for _, uv := range t.UV {
				ft.UV = append(ft.UV, []any{float64(uv.X()), float64(uv.Y())})
			}
		}
		f.Textured = append(f.Textured, ft)
	}
	return f
}

func vertexValues(v [3]Pos) [][]any {
	return [][]any{v[0].value(), v[1].value(), v[2].value()}
}
