// Package sampler reduces an image into a grid of per-cell averages.
package sampler

import (
	"image"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Aggregate holds the averaged channels and brightness of one cell, all in
// [0,1].
type Aggregate struct {
	R, G, B    float64
	Brightness float64
}

// Grid is a row-major Width x Height array of aggregates.
type Grid struct {
	Width  int
	Height int
	Cells  []Aggregate
}

func newGrid(width, height int) *Grid {
	width, height = max(width, 0), max(height, 0)
	return &Grid{
		Width:  width,
		Height: height,
		Cells:  make([]Aggregate, width*height),
	}
}

func (g *Grid) At(x, y int) Aggregate {
	return g.Cells[y*g.Width+x]
}

func (g *Grid) row(y int) []Aggregate {
	return g.Cells[y*g.Width : (y+1)*g.Width]
}

// Block returns the source rectangle of cell (x, y) clipped to bounds. The
// result is empty when the cell covers no pixels.
func Block(x, y int, scale float64, bounds image.Rectangle) image.Rectangle {
	r := image.Rectangle{
		Min: image.Pt(edge(x, scale), edge(y, scale)),
		Max: image.Pt(edge(x+1, scale), edge(y+1, scale)),
	}.Add(bounds.Min)
	return r.Intersect(bounds)
}

func edge(i int, scale float64) int {
	v := math.Floor(float64(i) * scale)
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(v)
}

// Gray averages single-channel luminance. Invert is applied to every pixel
// before averaging.
func Gray(img *image.Gray, width, height int, scale float64, invert bool) *Grid {
	g := newGrid(width, height)
	bounds := img.Bounds()
	fill(g, func(x, y int) Aggregate {
		block := Block(x, y, scale, bounds)
		if block.Empty() {
			return Aggregate{}
		}

		var total float64
		for py := block.Min.Y; py < block.Max.Y; py++ {
			row := img.Pix[img.PixOffset(block.Min.X, py):img.PixOffset(block.Max.X, py)]
			for _, p := range row {
				v := float64(p) / 255
				if invert {
					v = 1 - v
				}
				total += v
			}
		}

		avg := total / float64(block.Dx()*block.Dy())
		return Aggregate{R: avg, G: avg, B: avg, Brightness: avg}
	})
	return g
}

// Color averages R, G and B, derives brightness from the averaged channels
// with 0.3R + 0.59G + 0.11B and only then applies invert. This ordering
// differs from Gray and is kept as is: existing output depends on it.
func Color(img *image.NRGBA, width, height int, scale float64, invert bool) *Grid {
	g := newGrid(width, height)
	bounds := img.Bounds()
	fill(g, func(x, y int) Aggregate {
		block := Block(x, y, scale, bounds)
		if block.Empty() {
			return Aggregate{}
		}

		var r, gr, b float64
		for py := block.Min.Y; py < block.Max.Y; py++ {
			row := img.Pix[img.PixOffset(block.Min.X, py):img.PixOffset(block.Max.X, py)]
			for i := 0; i+3 < len(row); i += 4 {
				r += float64(row[i+0])
				gr += float64(row[i+1])
				b += float64(row[i+2])
			}
		}

		n := float64(block.Dx()*block.Dy()) * 255
		a := Aggregate{R: r / n, G: gr / n, B: b / n}
		a.Brightness = Luma(a.R, a.G, a.B)
		if invert {
			a.Brightness = 1 - a.Brightness
		}
		return a
	})
	return g
}

// Luminance converts img to a single channel with Rec.709 weights
// (0.2126R + 0.7152G + 0.0722B, rounded). It reads the straight RGB bytes,
// so alpha has no effect on the result.
func Luminance(img *image.NRGBA) *image.Gray {
	b := img.Bounds()
	gray := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		src := img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X, y)]
		dst := gray.Pix[gray.PixOffset(b.Min.X, y):gray.PixOffset(b.Max.X, y)]
		for i := range dst {
			p := src[i*4 : i*4+3]
			dst[i] = uint8((2126*uint32(p[0]) + 7152*uint32(p[1]) + 722*uint32(p[2]) + 5000) / 10000)
		}
	}
	return gray
}

// Luma is the perceptual brightness 0.3R + 0.59G + 0.11B of normalized
// channels. Summing integer weights first keeps white at exactly 1.
func Luma(r, g, b float64) float64 {
	return (30*r + 59*g + 11*b) / 100
}

// fill computes every cell of g. Rows are independent and written to their
// own slice of g.Cells, so they are spread across goroutines.
func fill(g *Grid, cell func(x, y int) Aggregate) {
	if g.Width == 0 || g.Height == 0 {
		return
	}

	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for y := 0; y < g.Height; y++ {
		y := y
		eg.Go(func() error {
			row := g.row(y)
			for x := range row {
				row[x] = cell(x, y)
			}
			return nil
		})
	}
	_ = eg.Wait()
}
