package main

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/cpuraster"
	"github.com/gogpu/cpuraster/internal/demo"
	"github.com/gogpu/cpuraster/scene"
	"github.com/gogpu/cpuraster/surface"
)

// runWindow presents the rendered scene in a resizable window until it is
// closed or Escape is pressed. S saves the current frame to output.
func runWindow(r *demo.Renderer, cfg demo.Config, output string) error {
	g := &game{
		renderer: r,
		output:   output,
		next:     scene.Frame{Width: cfg.Width, Height: cfg.Height},
	}

	ebiten.SetWindowTitle("CPU Raster")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

type game struct {
	renderer *demo.Renderer
	output   string

	// next is the frame size reported by the last Layout call; frame is
	// the size the buffers were allocated for.
	next  scene.Frame
	frame scene.Frame

	surface *surface.Surface
	rgba    *image.RGBA
	buffer  *ebiten.Image

	frametime time.Duration
	status    string
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) && g.surface != nil {
		if err := g.surface.SavePNG(g.output); err != nil {
			g.status = "save failed: " + err.Error()
		} else {
			g.status = "saved " + g.output
		}
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	defer func(t time.Time) {
		ft := time.Since(t)
		if g.frametime == 0 {
			g.frametime = ft
		} else {
			g.frametime += (ft - g.frametime) / 2
		}
	}(time.Now())

	if err := g.resize(); err != nil {
		ebitenutil.DebugPrint(screen, err.Error())
		return
	}

	g.renderer.Render(g.surface, g.frame)

	// The frame buffer may be in any format; convert to the premultiplied
	// RGBA layout ebiten uploads.
	xdraw.Draw(g.rgba, g.rgba.Bounds(), g.surface, image.Point{}, xdraw.Src)
	g.buffer.WritePixels(g.rgba.Pix)
	screen.DrawImage(g.buffer, nil)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.0f  Ft: %v", ebiten.ActualFPS(), g.frametime), 0, 0)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%dx%d %v", g.frame.Width, g.frame.Height, g.surface.Format()), 0, 14)
	if g.status != "" {
		ebitenutil.DebugPrintAt(screen, g.status, 0, 28)
	}
}

// resize reallocates the buffers when Layout reported a new size. It runs
// between frames, so a frame is always rendered at one size.
func (g *game) resize() error {
	if g.surface != nil && g.next == g.frame {
		return nil
	}
	s, err := g.renderer.NewSurface(g.next)
	if err != nil {
		return err
	}
	if g.buffer != nil {
		g.buffer.Deallocate()
	}
	cpuraster.Logger().Info("rasterdemo: frame resized",
		"width", g.next.Width, "height", g.next.Height)

	g.frame = g.next
	g.surface = s
	g.rgba = image.NewRGBA(image.Rect(0, 0, g.frame.Width, g.frame.Height))
	g.buffer = ebiten.NewImage(g.frame.Width, g.frame.Height)
	return nil
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.next = scene.Frame{Width: outsideWidth, Height: outsideHeight}
	}
	return g.next.Width, g.next.Height
}
