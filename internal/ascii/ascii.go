package ascii

import (
	"image"
	"image/draw"
	"io"

	"github.com/koki-develop/glyphart/internal/config"
	"github.com/koki-develop/glyphart/internal/decode"
	"github.com/koki-develop/glyphart/internal/glyph"
	"github.com/koki-develop/glyphart/internal/resize"
	"github.com/koki-develop/glyphart/internal/sampler"
	"github.com/koki-develop/glyphart/internal/tone"
)

type Converter struct {
	config  config.Config
	resizer *resize.Resizer
}

func NewConverter(cfg config.Config) *Converter {
	return &Converter{
		config:  cfg,
		resizer: resize.NewResizer(),
	}
}

func (c *Converter) Config() config.Config {
	return c.config
}

// ConvertFile decodes the image at path and converts it.
func (c *Converter) ConvertFile(path string) (string, error) {
	img, err := decode.File(path)
	if err != nil {
		return "", &DecodeError{Source: path, Err: err}
	}
	return c.ConvertImage(img), nil
}

func (c *Converter) ConvertBytes(b []byte) (string, error) {
	img, err := decode.Bytes(b)
	if err != nil {
		return "", &DecodeError{Source: "bytes", Err: err}
	}
	return c.ConvertImage(img), nil
}

func (c *Converter) ConvertReader(r io.Reader) (string, error) {
	img, err := decode.Reader(r)
	if err != nil {
		return "", &DecodeError{Source: "reader", Err: err}
	}
	return c.ConvertImage(img), nil
}

// ConvertImage renders img as plain text, or as an HTML document when the
// color mode is on. It never fails.
func (c *Converter) ConvertImage(img image.Image) string {
	f := c.Render(img)
	if c.config.Color {
		return f.HTML()
	}
	return f.Text()
}

// Render runs resize, tone adjustment, block sampling and glyph selection
// and returns the resulting glyph grid.
func (c *Converter) Render(img image.Image) *Frame {
	w, h := c.config.TargetSize()
	scale := c.config.EffectiveScale()
	resized := toNRGBA(c.resizer.Exact(toNRGBA(img), w, h))
	adjusted := tone.Adjust(resized, c.config.Contrast, c.config.Brightness)

	alphabet := glyph.For(c.config.Alphabet)
	if c.config.Color {
		grid := sampler.Color(adjusted, c.config.Width, c.config.Height, scale, c.config.Invert)
		return newFrame(grid, func(a sampler.Aggregate) Cell {
			return Cell{
				Glyph:   alphabet.Glyph(a.Brightness),
				Color:   glyph.Blend(a.R, a.G, a.B, c.config.Saturation),
				Colored: true,
			}
		})
	}

	grid := sampler.Gray(sampler.Luminance(adjusted), c.config.Width, c.config.Height, scale, c.config.Invert)
	return newFrame(grid, func(a sampler.Aggregate) Cell {
		return Cell{Glyph: alphabet.Glyph(a.Brightness)}
	})
}

// toNRGBA returns img as *image.NRGBA, copying only when it has another
// pixel layout.
func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	b := img.Bounds()
	n := image.NewNRGBA(b)
	draw.Draw(n, b, img, b.Min, draw.Src)
	return n
}
