// Package gui runs the game in a desktop window using Ebitengine.
package gui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/holewall/internal/core"
)

// colorOf resolves a CSS color name. Unknown names fall back to magenta so
// they stand out.
func colorOf(name string) color.RGBA {
	if c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c
	}
	return colornames.Magenta
}

// imageCanvas paints world-space shapes onto an ebiten image. World units
// map one to one onto pixels.
type imageCanvas struct {
	dst *ebiten.Image
	buf *ebiten.Image // white polygon mask, tinted on composite
}

func newImageCanvas(w, h int) *imageCanvas {
	return &imageCanvas{buf: ebiten.NewImage(w, h)}
}

// target points the canvas at the image being drawn this frame.
func (c *imageCanvas) target(dst *ebiten.Image) {
	c.dst = dst
}

func (c *imageCanvas) Clear(name string) {
	c.dst.Fill(colorOf(name))
}

func (c *imageCanvas) FillRect(x, y, w, h float64, name string) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.FillRect(c.dst, float32(x), float32(y), float32(w), float32(h), colorOf(name), false)
}

// FillPolygon fills the mask with white and composites it with the color.
func (c *imageCanvas) FillPolygon(vertices []core.Point, name string) {
	if len(vertices) < 3 {
		return
	}
	c.buf.Clear()

	var path vector.Path
	path.MoveTo(float32(vertices[0].X), float32(vertices[0].Y))
	for _, v := range vertices[1:] {
		path.LineTo(float32(v.X), float32(v.Y))
	}
	path.Close()
	vector.FillPath(c.buf, &path, &vector.FillOptions{}, &vector.DrawPathOptions{AntiAlias: true})

	opts := &ebiten.DrawImageOptions{}
	opts.ColorScale.ScaleWithColor(colorOf(name))
	c.dst.DrawImage(c.buf, opts)
}
