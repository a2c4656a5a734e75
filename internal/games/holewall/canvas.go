package holewall

import (
	"math"

	"github.com/vovakirdan/holewall/internal/core"
)

// ScreenCanvas rasterizes world-space drawing onto a character screen.
// A cell is painted when its center falls inside the shape.
type ScreenCanvas struct {
	dst    *core.Screen
	worldW float64
	worldH float64
}

// NewScreenCanvas maps a worldW x worldH world onto dst.
func NewScreenCanvas(dst *core.Screen, worldW, worldH float64) *ScreenCanvas {
	return &ScreenCanvas{dst: dst, worldW: worldW, worldH: worldH}
}

// glyph picks the rune used for a color. Black reads as empty space.
func glyph(color string) (rune, core.Color) {
	c := core.ColorByName(color)
	if c == core.ColorBlack {
		return ' ', core.ColorDefault
	}
	return '█', c
}

func (c *ScreenCanvas) cellSize() (float64, float64) {
	return c.worldW / float64(max(1, c.dst.Width())), c.worldH / float64(max(1, c.dst.Height()))
}

// cellCenter returns the world position of the center of cell (cx, cy).
func (c *ScreenCanvas) cellCenter(cx, cy int) core.Point {
	cw, ch := c.cellSize()
	return core.Point{X: (float64(cx) + 0.5) * cw, Y: (float64(cy) + 0.5) * ch}
}

// cellSpan returns the clamped cell range covering world box [lo, hi].
func (c *ScreenCanvas) cellSpan(lo, hi core.Point) (x0, y0, x1, y1 int) {
	cw, ch := c.cellSize()
	x0 = core.Clamp(int(math.Floor(lo.X/cw)), 0, c.dst.Width()-1)
	y0 = core.Clamp(int(math.Floor(lo.Y/ch)), 0, c.dst.Height()-1)
	x1 = core.Clamp(int(math.Ceil(hi.X/cw)), 0, c.dst.Width()-1)
	y1 = core.Clamp(int(math.Ceil(hi.Y/ch)), 0, c.dst.Height()-1)
	return x0, y0, x1, y1
}

// Clear fills the whole screen with the background color.
func (c *ScreenCanvas) Clear(color string) {
	r, col := glyph(color)
	c.dst.Fill(r, col)
}

// FillRect paints every cell whose center lies in [x, x+w) x [y, y+h).
func (c *ScreenCanvas) FillRect(x, y, w, h float64, color string) {
	if w <= 0 || h <= 0 || c.dst.Width() == 0 || c.dst.Height() == 0 {
		return
	}
	r, col := glyph(color)
	x0, y0, x1, y1 := c.cellSpan(core.Point{X: x, Y: y}, core.Point{X: x + w, Y: y + h})
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			p := c.cellCenter(cx, cy)
			if p.X >= x && p.X < x+w && p.Y >= y && p.Y < y+h {
				c.dst.SetCell(cx, cy, r, col)
			}
		}
	}
}

// FillPolygon paints every cell whose center passes the containment test.
func (c *ScreenCanvas) FillPolygon(vertices []core.Point, color string) {
	if len(vertices) < 3 || c.dst.Width() == 0 || c.dst.Height() == 0 {
		return
	}
	r, col := glyph(color)
	lo, hi := core.Bounds(vertices)
	x0, y0, x1, y1 := c.cellSpan(lo, hi)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			if core.PointInPolygon(c.cellCenter(cx, cy), vertices) {
				c.dst.SetCell(cx, cy, r, col)
			}
		}
	}
}
