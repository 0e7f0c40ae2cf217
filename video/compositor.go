package video

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"scary-story-pipeline/config"
	"scary-story-pipeline/types"
)

// fallbackBackground is deliberately not pure black so fallback frames
// are visually distinguishable from letterboxed ones.
var fallbackBackground = color.RGBA{R: 20, G: 20, B: 20, A: 255}

// Compositor turns arbitrary stills or raw segment text into frames of
// one fixed output resolution.
type Compositor struct {
	width    int
	height   int
	fontSize float64

	face         font.Face
	fallbackFont bool
}

// NewCompositor builds a Compositor from the video config, resolving
// the font face once up front.
func NewCompositor(cfg config.VideoConfig) *Compositor {
	face, usedFallback := resolveFace(cfg.FontFile, cfg.FontSize)
	return &Compositor{
		width:        cfg.Width,
		height:       cfg.Height,
		fontSize:     cfg.FontSize,
		face:         face,
		fallbackFont: usedFallback,
	}
}

// UsingFallbackFont reports whether the configured font could not be
// loaded and a built-in face was substituted.
func (c *Compositor) UsingFallbackFont() bool {
	return c.fallbackFont
}

// NormalizeImage loads a source image and fits it into the output
// frame: uniform scale preserving aspect ratio, centered on an opaque
// black background of exactly (width, height). Decode failures wrap
// types.ErrImageDecode so the caller can fall back to a text frame.
func (c *Compositor) NormalizeImage(srcPath string) (*image.RGBA, error) {
	f, err := os.Open(srcPath)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", types.ErrImageDecode, srcPath, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", types.ErrImageDecode, srcPath, err)
	}

	srcW := src.Bounds().Dx()
	srcH := src.Bounds().Dy()
	if srcW <= 0 || srcH <= 0 {
		return nil, fmt.Errorf("%w: %s: empty image", types.ErrImageDecode, srcPath)
	}

	scale := math.Min(float64(c.width)/float64(srcW), float64(c.height)/float64(srcH))
	newW := int(float64(srcW) * scale)
	newH := int(float64(srcH) * scale)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	frame := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	draw.Draw(frame, frame.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	x0 := (c.width - newW) / 2
	y0 := (c.height - newH) / 2
	dst := image.Rect(x0, y0, x0+newW, y0+newH)
	xdraw.CatmullRom.Scale(frame, dst, src, src.Bounds(), xdraw.Over, nil)

	return frame, nil
}

// RenderTextFrame draws the segment text onto a dark background frame
// of exactly (width, height). It never fails: with no usable vector
// face it degrades to a truncated single line in a bitmap font.
func (c *Compositor) RenderTextFrame(text string) *image.RGBA {
	frame := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	draw.Draw(frame, frame.Bounds(), image.NewUniform(fallbackBackground), image.Point{}, draw.Src)

	if c.face == nil {
		c.drawDegradedLine(frame, text)
		return frame
	}

	lines := c.wrapText(text)
	lineHeight := int(c.fontSize) + 10
	startY := (c.height - len(lines)*lineHeight) / 2
	ascent := c.face.Metrics().Ascent.Ceil()

	for i, line := range lines {
		lineWidth := font.MeasureString(c.face, line).Ceil()
		x := (c.width - lineWidth) / 2
		baseline := startY + i*lineHeight + ascent

		// Shadow pass first, then the main pass, for legibility.
		c.drawString(frame, line, x+2, baseline+2, color.Black)
		c.drawString(frame, line, x, baseline, color.White)
	}

	return frame
}

// wrapText greedily packs words into lines whose rendered width stays
// within the frame minus a 50px margin on each side. Deterministic for
// a given text, face and width.
func (c *Compositor) wrapText(text string) []string {
	maxWidth := c.width - 100

	var lines []string
	var current []string
	for _, word := range strings.Fields(text) {
		candidate := strings.Join(append(current, word), " ")
		if font.MeasureString(c.face, candidate).Ceil() <= maxWidth {
			current = append(current, word)
			continue
		}
		if len(current) > 0 {
			lines = append(lines, strings.Join(current, " "))
		}
		current = []string{word}
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return lines
}

func (c *Compositor) drawString(dst draw.Image, s string, x, y int, col color.Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: c.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// drawDegradedLine is the last-resort path: a single truncated line in
// the guaranteed-present bitmap face at a fixed position.
func (c *Compositor) drawDegradedLine(dst draw.Image, text string) {
	if len(text) > 100 {
		text = text[:100] + "..."
	}
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(50, c.height/2),
	}
	d.DrawString(text)
}
