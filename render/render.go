// Package render implements the optional diagnostic renderer (RN): a 2D
// raster of a solved (or partially solved) layout.
//
// No vector/raster drawing library appears anywhere in the retrieved
// reference corpus, so this package draws directly with the standard
// library's image and image/color packages and encodes with
// image/png, like every other non-test package in this repository,
// which uses no third-party dependency; see DESIGN.md.
package render

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"

	"breadboardpnr/board"
	"breadboardpnr/core"
)

// Config controls the pixel geometry of the render.
type Config struct {
	PixelsPerHole int
	Margin        int
	HoleRadius    int
}

// DefaultConfig returns a modest 20px-per-hole render with a 40px margin
// and a 5px hole dot radius.
func DefaultConfig() Config {
	return Config{PixelsPerHole: 20, Margin: 40, HoleRadius: 5}
}

// Result carries the rendered PNG both raw and base64-encoded, per the
// source spec's "encoded as base64 for downstream consumption".
type Result struct {
	PNG    []byte
	Base64 string
}

var (
	colorHole      = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	colorTrough    = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	colorGap       = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	colorRailVPlus = color.RGBA{R: 200, G: 40, B: 40, A: 255}
	colorRailGND   = color.RGBA{R: 40, G: 40, B: 200, A: 255}
	colorComponent = color.RGBA{R: 90, G: 160, B: 90, A: 140}
	colorWire      = color.RGBA{R: 230, G: 150, B: 20, A: 255}
)

// Render draws every real hole, the trough and gap columns, rail
// columns, every placed component's body, and every committed wire.
func Render(b *board.Breadboard, components []*core.Passive, nets map[string]*core.Net, cfg Config) (*Result, error) {
	minCol, maxCol, minRow, maxRow := bounds(b)
	width := (maxCol-minCol+1)*cfg.PixelsPerHole + 2*cfg.Margin
	height := (maxRow-minRow+1)*cfg.PixelsPerHole + 2*cfg.Margin

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	fillBackground(img, color.White)

	toPx := func(h core.Hole) (int, int) {
		x := cfg.Margin + (h.Col-minCol)*cfg.PixelsPerHole
		y := cfg.Margin + (h.Row-minRow)*cfg.PixelsPerHole
		return x, y
	}

	troughLo, troughHi := b.TroughCols()
	for col := minCol; col <= maxCol; col++ {
		switch {
		case col >= troughLo && col <= troughHi:
			drawColumnBand(img, col, minCol, minRow, maxRow, cfg, colorTrough)
		case b.IsGapCol(col):
			drawColumnBand(img, col, minCol, minRow, maxRow, cfg, colorGap)
		}
	}

	for _, h := range b.AllHoles() {
		x, y := toPx(h)
		if pol, ok := b.RailOf(h); ok {
			c := colorRailVPlus
			if pol == core.GND {
				c = colorRailGND
			}
			drawDisc(img, x, y, cfg.HoleRadius, c)
			continue
		}
		drawDisc(img, x, y, cfg.HoleRadius, colorHole)
	}

	for _, comp := range components {
		if !comp.Placed {
			continue
		}
		for _, h := range comp.Body {
			x, y := toPx(h)
			drawDisc(img, x, y, cfg.HoleRadius+2, colorComponent)
		}
	}

	for _, net := range nets {
		for _, seg := range net.SegPaths {
			if len(seg) < 2 {
				continue
			}
			x0, y0 := toPx(seg[0])
			x1, y1 := toPx(seg[len(seg)-1])
			drawLine(img, x0, y0, x1, y1, colorWire)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return &Result{PNG: buf.Bytes(), Base64: base64.StdEncoding.EncodeToString(buf.Bytes())}, nil
}

func bounds(b *board.Breadboard) (minCol, maxCol, minRow, maxRow int) {
	holes := b.AllHoles()
	if len(holes) == 0 {
		return 0, 0, 0, 0
	}
	minCol, maxCol = holes[0].Col, holes[0].Col
	minRow, maxRow = holes[0].Row, holes[0].Row
	for _, h := range holes {
		if h.Col < minCol {
			minCol = h.Col
		}
		if h.Col > maxCol {
			maxCol = h.Col
		}
		if h.Row < minRow {
			minRow = h.Row
		}
		if h.Row > maxRow {
			maxRow = h.Row
		}
	}
	return minCol, maxCol, minRow, maxRow
}

func fillBackground(img *image.RGBA, c color.Color) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}

func drawColumnBand(img *image.RGBA, col, minCol, minRow, maxRow int, cfg Config, c color.Color) {
	x0 := cfg.Margin + (col-minCol)*cfg.PixelsPerHole - cfg.PixelsPerHole/2
	x1 := x0 + cfg.PixelsPerHole
	y0 := cfg.Margin - cfg.PixelsPerHole/2
	y1 := cfg.Margin + (maxRow-minRow)*cfg.PixelsPerHole + cfg.PixelsPerHole/2
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.Set(x, y, c)
		}
	}
}

func drawDisc(img *image.RGBA, cx, cy, radius int, c color.Color) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				img.Set(cx+dx, cy+dy, c)
			}
		}
	}
}

// drawLine draws a simple Bresenham line; wires on this board are always
// axis-aligned, so this never needs anti-aliasing.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		img.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
