// Command videotextdemo renders text filled with a synthetic video clip.
//
// It writes the rasterized mask as a PNG and the composited, looping clip as
// an animated GIF.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"log"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/gogpu/videotext"
	"github.com/gogpu/videotext/access"
	"github.com/gogpu/videotext/geom"
	"github.com/gogpu/videotext/text"
	"github.com/gogpu/videotext/video"
)

func main() {
	var (
		width    = flag.Float64("width", 320, "view width in units")
		height   = flag.Float64("height", 96, "view height in units")
		scale    = flag.Float64("scale", 2, "device pixels per unit")
		str      = flag.String("text", "Hello World!", "text to render")
		align    = flag.String("align", "center", "alignment: natural, left, center, right, justify")
		category = flag.String("category", "large", "text-size category, e.g. extra-small, accessibility-large")
		fontPath = flag.String("font", "", "TrueType/OpenType font file (default Go Bold)")
		frames   = flag.Int("frames", 24, "frames in the synthetic clip")
		loops    = flag.Int("loops", 2, "times the clip is played into the GIF")
		maskOut  = flag.String("mask", "mask.png", "mask output file")
		output   = flag.String("output", "videotext.gif", "animated output file")
		verbose  = flag.Bool("v", false, "log pipeline events to stderr")
	)
	flag.Parse()

	if *verbose {
		videotext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	a, ok := text.ParseAlignment(*align)
	if !ok {
		log.Fatalf("Unknown alignment %q", *align)
	}
	cat, ok := access.ParseSizeCategory(*category)
	if !ok {
		log.Fatalf("Unknown size category %q", *category)
	}

	var font text.Font
	if *fontPath != "" {
		src, err := text.NewFontSourceFromFile(*fontPath)
		if err != nil {
			log.Fatalf("Failed to load font: %v", err)
		}
		font = text.Font{Source: src, Size: text.LargeTitleSize}
	}

	clip := video.NewClip(time.Second/12, gradientFrames(*frames)...)
	comp := video.NewCompositor(clip, video.WithScale(*scale))

	v := videotext.NewView(
		videotext.WithScale(*scale),
		videotext.WithPreferences(access.Fixed(cat)),
		videotext.WithLayer(comp),
		videotext.WithBridge(access.BridgeFunc(func(e access.Element) {
			log.Printf("Accessibility: %s %q at %.1fx%.1f+%.1f+%.1f",
				e.Role, e.Label, e.Frame.W, e.Frame.H, e.Frame.X, e.Frame.Y)
		})),
	)
	defer v.Close()

	v.SetText(*str)
	v.SetFont(font)
	v.SetAlignment(a)
	v.SetBounds(geom.Sz(*width, *height))
	if !v.Layout() {
		log.Fatalf("Nothing to render for %q in %vx%v", *str, *width, *height)
	}

	if err := savePNG(*maskOut, v.Mask()); err != nil {
		log.Fatalf("Failed to save mask: %v", err)
	}

	v.Attach(clip, clip)
	if err := clip.Play(); err != nil {
		log.Fatalf("Failed to play: %v", err)
	}

	w, h := geom.Sz(*width, *height).Mul(*scale).Ceil()
	anim := &gif.GIF{}
	total := *frames * *loops
	for i := 0; i < total; i++ {
		canvas := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)
		if err := comp.Composite(canvas); err != nil {
			log.Fatalf("Failed to composite frame %d: %v", i, err)
		}

		pal := image.NewPaletted(canvas.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pal, pal.Bounds(), canvas, image.Point{})
		anim.Image = append(anim.Image, pal)
		anim.Delay = append(anim.Delay, 100/12)
		clip.Step()
	}

	if err := saveGIF(*output, anim); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Mask saved to %s, animation saved to %s (%dx%d, %d frames)\n",
		*maskOut, *output, w, h, len(anim.Image))
}

// gradientFrames returns n frames of a hue-cycling diagonal gradient.
func gradientFrames(n int) []image.Image {
	const size = 64
	out := make([]image.Image, 0, n)
	for i := 0; i < n; i++ {
		phase := float64(i) / float64(max(n, 1))
		img := image.NewRGBA(image.Rect(0, 0, size, size))
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				t := float64(x+y) / (2 * size)
				img.SetRGBA(x, y, hue(math.Mod(phase+t, 1)))
			}
		}
		out = append(out, img)
	}
	return out
}

// hue maps h in [0,1) to a fully saturated color.
func hue(h float64) color.RGBA {
	channel := func(offset float64) uint8 {
		v := math.Abs(math.Mod(h*6+offset, 6)-3) - 1
		return uint8(math.Max(0, math.Min(1, v)) * 0xff)
	}
	return color.RGBA{R: channel(0), G: channel(4), B: channel(2), A: 0xff}
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func saveGIF(path string, g *gif.GIF) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(f, g); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
