package scene

import (
	"bytes"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDemo(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "demo.toml"))
	require.NoError(t, err)

	assert.Equal(t, dodgerBlue, s.Background)
	require.Len(t, s.Lines, 7)
	require.Len(t, s.Triangles, 2)
	require.Len(t, s.Textured, 2)

	assert.Equal(t, Line{From: XY(0, 0), To: Pos{X: W(0), Y: H(0)}, Color: red}, s.Lines[2])
	assert.Equal(t, green, s.Lines[6].Color)

	assert.False(t, s.Triangles[0].Flat)
	assert.Equal(t, [3]color.NRGBA{red, green, blue}, s.Triangles[0].Colors)
	assert.True(t, s.Triangles[1].Flat)
	assert.Equal(t, Pos{X: W(-120), Y: Abs(300)}, s.Triangles[1].Vertices[0])

	assert.Nil(t, s.Textured[0].UV)
	require.NotNil(t, s.Textured[1].UV)
	assert.Equal(t, [3]mgl32.Vec2{{0, 0}, {1, 0}, {0, 1}}, *s.Textured[1].UV)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestParseDefaults(t *testing.T) {
	s, err := Parse([]byte(""))
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{A: 255}, s.Background)
	assert.True(t, s.IsEmpty())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"malformed", `background = `, ErrInvalidScene},
		{"unknown key", `foreground = "#fff"`, ErrInvalidScene},
		{"bad background", `background = "#zzz"`, ErrInvalidColor},
		{"bad line color", "[[line]]\nfrom = [0, 0]\nto = [1, 1]\ncolor = \"nope\"", ErrInvalidColor},
		{"short position", "[[line]]\nfrom = [0]\nto = [1, 1]\ncolor = \"#fff\"", ErrInvalidScene},
		{"bad coordinate", "[[line]]\nfrom = [0, \"x+1\"]\nto = [1, 1]\ncolor = \"#fff\"", ErrInvalidScene},
		{"two vertices", "[[triangle]]\nvertices = [[0, 0], [1, 1]]\ncolor = \"#fff\"", ErrInvalidScene},
		{"two colors", "[[triangle]]\nvertices = [[0, 0], [9, 0], [0, 9]]\ncolors = [\"#fff\", \"#000\"]", ErrInvalidScene},
		{"no colors", "[[triangle]]\nvertices = [[0, 0], [9, 0], [0, 9]]", ErrInvalidScene},
		{"color and colors", "[[triangle]]\nvertices = [[0, 0], [9, 0], [0, 9]]\ncolor = \"#fff\"\ncolors = [\"#fff\", \"#000\", \"#f00\"]", ErrInvalidScene},
		{"short uv list", "[[textured]]\nvertices = [[0, 0], [9, 0], [0, 9]]\nuv = [[0, 0], [1, 0]]", ErrInvalidScene},
		{"short uv", "[[textured]]\nvertices = [[0, 0], [9, 0], [0, 9]]\nuv = [[0, 0], [1], [0, 1]]", ErrInvalidScene},
		{"uv string", "[[textured]]\nvertices = [[0, 0], [9, 0], [0, 9]]\nuv = [[0, 0], [1, \"a\"], [0, 1]]", ErrInvalidScene},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	for _, s := range []*Scene{Default(), mustLoad(t, "demo.toml")} {
		var buf bytes.Buffer
		require.NoError(t, s.Encode(&buf))

		back, err := Parse(buf.Bytes())
		require.NoError(t, err, "encoded scene:\n%s", buf.String())
		assert.Equal(t, s, back)

		data, err := s.TOML()
		require.NoError(t, err)
		assert.Equal(t, buf.String(), string(data))
	}
}

func mustLoad(t *testing.T, name string) *Scene {
	t.Helper()
	s, err := Load(filepath.Join("testdata", name))
	require.NoError(t, err)
	return s
}
