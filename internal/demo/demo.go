// Package demo loads the inputs of the rasterdemo command and renders
// frames from them, independent of any window system.
package demo

import (
	"errors"
	"fmt"
	"image"
	"io"
	"sync"

	"github.com/anthonynsimon/bild/transform"

	"github.com/gogpu/cpuraster"
	"github.com/gogpu/cpuraster/scene"
	"github.com/gogpu/cpuraster/surface"
)

// ErrInvalidConfig is returned for unusable command line settings.
var ErrInvalidConfig = errors.New("demo: invalid config")

// Config holds the settings of a demo run.
type Config struct {
	Width, Height int

	// ScenePath is a scene file; the built-in demo scene is used when empty.
	ScenePath string

	// TexturePath is an image sampled by textured triangles; optional.
	TexturePath   string
	TextureFormat surface.Format

	// TextureWidth and TextureHeight resample the texture after loading.
	// Zero keeps the image size.
	TextureWidth, TextureHeight int

	// Format is the pixel format frames are rendered in.
	Format surface.Format

	// Scale enlarges saved frames by an integer factor.
	Scale int

	OmitLastPixel bool
}

// DefaultConfig returns the settings used when no flags are given.
func DefaultConfig() Config {
	return Config{
		Width:         800,
		Height:        600,
		TextureFormat: surface.FormatARGB8888,
		Format:        surface.FormatARGB8888,
		Scale:         1,
	}
}

// Validate checks the config for values no frame can be rendered with.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.Scale <= 0:
		return fmt.Errorf("%w: scale %d", ErrInvalidConfig, c.Scale)
	case !c.Format.IsValid():
		return fmt.Errorf("%w: format %v", ErrInvalidConfig, c.Format)
	case !c.TextureFormat.IsValid():
		return fmt.Errorf("%w: texture format %v", ErrInvalidConfig, c.TextureFormat)
	case c.TextureWidth < 0 || c.TextureHeight < 0 || (c.TextureWidth == 0) != (c.TextureHeight == 0):
		return fmt.Errorf("%w: texture size %dx%d", ErrInvalidConfig, c.TextureWidth, c.TextureHeight)
	}
	return nil
}

// Renderer draws the configured scene.
// Reload may run concurrently with rendering.
type Renderer struct {
	cfg    Config
	raster *cpuraster.Rasterizer

	mu      sync.RWMutex
	scene   *scene.Scene
	texture *surface.Surface
}

// NewRenderer loads the scene and texture named by cfg.
func NewRenderer(cfg Config) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var opts []cpuraster.Option
	if cfg.OmitLastPixel {
		opts = append(opts, cpuraster.WithOmitLastPixel())
	}

	r := &Renderer{
		cfg:    cfg,
		raster: cpuraster.New(opts...),
	}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload reads the scene and texture files again. On error the previous
// inputs stay in use.
func (r *Renderer) Reload() error {
	s := scene.Default()
	if r.cfg.ScenePath != "" {
		var err error
		if s, err = scene.Load(r.cfg.ScenePath); err != nil {
			return err
		}
	}

	tex, err := r.loadTexture()
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.scene = s
	r.texture = tex
	r.mu.Unlock()
	return nil
}

func (r *Renderer) loadTexture() (*surface.Surface, error) {
	if r.cfg.TexturePath == "" {
		return nil, nil
	}
	tex, err := surface.Load(r.cfg.TexturePath, r.cfg.TextureFormat)
	if err != nil {
		return nil, fmt.Errorf("demo: texture: %w", err)
	}
	if w, h := r.cfg.TextureWidth, r.cfg.TextureHeight; w > 0 && (w != tex.Width() || h != tex.Height()) {
		resized := transform.Resize(tex, w, h, transform.NearestNeighbor)
		if tex, err = surface.FromImage(resized, r.cfg.TextureFormat); err != nil {
			return nil, fmt.Errorf("demo: texture: %w", err)
		}
	}
	cpuraster.Logger().Info("demo: texture loaded",
		"path", r.cfg.TexturePath, "width", tex.Width(), "height", tex.Height(), "format", tex.Format())
	return tex, nil
}

// Scene returns the scene being rendered.
func (r *Renderer) Scene() *scene.Scene {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.scene
}

// Texture returns the loaded texture, or nil.
func (r *Renderer) Texture() *surface.Surface {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.texture
}

// NewSurface allocates a frame buffer of the configured format.
func (r *Renderer) NewSurface(frame scene.Frame) (*surface.Surface, error) {
	return surface.New(frame.Width, frame.Height, r.cfg.Format)
}

// Render draws the scene into dst at the given frame size.
func (r *Renderer) Render(dst *surface.Surface, frame scene.Frame) {
	r.mu.RLock()
	s, t := r.scene, r.texture
	r.mu.RUnlock()

	var tex cpuraster.Texture
	if t != nil {
		tex = t
	}
	s.Render(dst, r.raster, frame, tex)
}

// Frame renders one frame at the configured size and returns it enlarged
// by the configured scale.
func (r *Renderer) Frame() (image.Image, error) {
	frame := scene.Frame{Width: r.cfg.Width, Height: r.cfg.Height}
	dst, err := r.NewSurface(frame)
	if err != nil {
		return nil, err
	}
	r.Render(dst, frame)
	return dst.Scaled(r.cfg.Scale)
}

// WritePNG renders one frame and encodes it as PNG.
func (r *Renderer) WritePNG(w io.Writer) error {
	img, err := r.Frame()
	if err != nil {
		return err
	}
	return surface.EncodePNG(w, img)
}

// SavePNG renders one frame into a PNG file.
func (r *Renderer) SavePNG(path string) error {
	img, err := r.Frame()
	if err != nil {
		return err
	}
	if err := surface.SavePNG(path, img); err != nil {
		return err
	}
	cpuraster.Logger().Info("demo: frame saved", "path", path,
		"width", r.cfg.Width*r.cfg.Scale, "height", r.cfg.Height*r.cfg.Scale)
	return nil
}
