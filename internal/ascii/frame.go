package ascii

import (
	"fmt"
	"html"
	"image/color"
	"strings"

	fcolor "github.com/fatih/color"
	"github.com/koki-develop/glyphart/internal/sampler"
)

const (
	htmlHeader = "<!DOCTYPE html>\n<html>\n<head>\n<style>\n" +
		"body { background-color: #000; margin: 0; padding: 10px; }\n" +
		"pre { font-family: monospace; font-size: 10px; line-height: 0.9; }\n" +
		"</style>\n</head>\n<body>\n<pre>\n"
	htmlFooter = "</pre>\n</body>\n</html>"
)

// Cell is one output glyph. Color is set only for colored frames.
type Cell struct {
	Glyph   string
	Color   color.RGBA
	Colored bool
}

// Frame is the glyph grid of one conversion, stored row-major.
type Frame struct {
	Width  int
	Height int
	Cells  []Cell
}

func newFrame(grid *sampler.Grid, cell func(sampler.Aggregate) Cell) *Frame {
	f := &Frame{
		Width:  grid.Width,
		Height: grid.Height,
		Cells:  make([]Cell, len(grid.Cells)),
	}
	for i, a := range grid.Cells {
		f.Cells[i] = cell(a)
	}
	return f
}

func (f *Frame) At(x, y int) Cell {
	return f.Cells[y*f.Width+x]
}

func (f *Frame) Rows() [][]Cell {
	rows := make([][]Cell, 0, f.Height)
	for y := 0; y < f.Height; y++ {
		rows = append(rows, f.Cells[y*f.Width:(y+1)*f.Width])
	}
	return rows
}

// Text joins the glyphs row by row, each row terminated by a newline.
func (f *Frame) Text() string {
	b := new(strings.Builder)
	b.Grow((f.Width + 1) * f.Height)
	for _, row := range f.Rows() {
		for _, c := range row {
			b.WriteString(c.Glyph)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// HTML wraps every glyph in a span carrying its color and the grid in a
// small dark-background document.
func (f *Frame) HTML() string {
	b := new(strings.Builder)
	b.Grow(len(htmlHeader) + len(htmlFooter) + f.Width*f.Height*48)
	b.WriteString(htmlHeader)
	for _, row := range f.Rows() {
		for _, c := range row {
			fmt.Fprintf(b, "<span style=\"color:rgb(%d,%d,%d)\">%s</span>", c.Color.R, c.Color.G, c.Color.B, html.EscapeString(c.Glyph))
		}
		b.WriteString("<br/>\n")
	}
	b.WriteString(htmlFooter)
	return b.String()
}

// ANSI renders the frame for a terminal. Colored cells use 24-bit escape
// sequences, subject to fatih/color's NoColor detection.
func (f *Frame) ANSI() string {
	b := new(strings.Builder)
	for _, row := range f.Rows() {
		for _, c := range row {
			if !c.Colored {
				b.WriteString(c.Glyph)
				continue
			}
			b.WriteString(fcolor.RGB(int(c.Color.R), int(c.Color.G), int(c.Color.B)).Sprint(c.Glyph))
		}
		b.WriteString("\n")
	}
	return b.String()
}
