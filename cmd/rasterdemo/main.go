// Command rasterdemo renders a scene with the cpuraster software
// rasterizer, either into a window or, with -headless, into a PNG file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/cpuraster"
	"github.com/gogpu/cpuraster/internal/demo"
	"github.com/gogpu/cpuraster/surface"
)

func main() {
	cfg := demo.DefaultConfig()
	var (
		format    = flag.String("format", cfg.Format.String(), "pixel format of the frame buffer")
		texFormat = flag.String("texture-format", cfg.TextureFormat.String(), "pixel format the texture is converted to")
		output    = flag.String("output", "raster.png", "output file in headless mode")
		headless  = flag.Bool("headless", false, "render one frame to -output instead of opening a window")
		dump      = flag.Bool("dump", false, "print the scene as TOML and exit")
		verbose   = flag.Bool("v", false, "log debug output to stderr")
		watch     = flag.Bool("watch", false, "reload the scene and texture when their files change")
		texSize   = flag.String("texture-size", "", "resample the texture to WxH after loading")
	)
	flag.IntVar(&cfg.Width, "width", cfg.Width, "frame width")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "frame height")
	flag.StringVar(&cfg.ScenePath, "scene", "", "scene file (default: built-in demo scene)")
	flag.StringVar(&cfg.TexturePath, "texture", "", "texture image (PNG, JPEG or BMP)")
	flag.IntVar(&cfg.Scale, "scale", cfg.Scale, "integer upscale factor for saved frames")
	flag.BoolVar(&cfg.OmitLastPixel, "omit-last-pixel", false, "draw lines as half-open spans")
	flag.Parse()

	if *verbose {
		cpuraster.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var ok bool
	if cfg.Format, ok = surface.ParseFormat(*format); !ok {
		log.Fatalf("Unknown pixel format %q", *format)
	}
	if cfg.TextureFormat, ok = surface.ParseFormat(*texFormat); !ok {
		log.Fatalf("Unknown texture format %q", *texFormat)
	}
	if *texSize != "" {
		if _, err := fmt.Sscanf(*texSize, "%dx%d", &cfg.TextureWidth, &cfg.TextureHeight); err != nil {
			log.Fatalf("Invalid texture size %q: want WxH", *texSize)
		}
	}

	r, err := demo.NewRenderer(cfg)
	if err != nil {
		log.Fatalf("Failed to set up: %v", err)
	}

	switch {
	case *dump:
		if err := r.Scene().Encode(os.Stdout); err != nil {
			log.Fatalf("Failed to encode scene: %v", err)
		}
	case *headless:
		if err := r.SavePNG(*output); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		fmt.Printf("Frame saved to %s (%dx%d, %v)\n", *output, cfg.Width*cfg.Scale, cfg.Height*cfg.Scale, cfg.Format)
	default:
		if *watch {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			go func() {
				if err := r.Watch(ctx, nil); err != nil {
					cpuraster.Logger().Warn("rasterdemo: watch disabled", "error", err)
				}
			}()
		}
		if err := runWindow(r, cfg, *output); err != nil {
			log.Fatalf("Window: %v", err)
		}
	}
}
