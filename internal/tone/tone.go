package tone

import (
	"image"
	"math"
)

// Channel remaps one 8-bit channel: contrast around the midpoint, then a
// brightness multiplier, each clamped to [0,1].
func Channel(v uint8, contrast, brightness float64) uint8 {
	f := float64(v) / 255
	f = clamp01((f-0.5)*contrast + 0.5)
	f = clamp01(f * brightness)
	return uint8(math.Round(f * 255))
}

// Adjust returns a copy of img with Channel applied to R, G and B. Alpha is
// copied unchanged and img itself is left untouched.
func Adjust(img *image.NRGBA, contrast, brightness float64) *image.NRGBA {
	out := image.NewNRGBA(img.Bounds())
	if contrast == 1 && brightness == 1 {
		copyPixels(out, img)
		return out
	}

	var lut [256]uint8
	for i := range lut {
		lut[i] = Channel(uint8(i), contrast, brightness)
	}

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		src := img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X, y)]
		dst := out.Pix[out.PixOffset(b.Min.X, y):out.PixOffset(b.Max.X, y)]
		for i := 0; i+3 < len(src); i += 4 {
			dst[i+0] = lut[src[i+0]]
			dst[i+1] = lut[src[i+1]]
			dst[i+2] = lut[src[i+2]]
			dst[i+3] = src[i+3]
		}
	}
	return out
}

func copyPixels(dst, src *image.NRGBA) {
	b := src.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		copy(dst.Pix[dst.PixOffset(b.Min.X, y):dst.PixOffset(b.Max.X, y)],
			src.Pix[src.PixOffset(b.Min.X, y):src.PixOffset(b.Max.X, y)])
	}
}

func clamp01(v float64) float64 {
	// NaN compares false on both sides and ends up at 0.
	if v > 1 {
		return 1
	}
	if v >= 0 {
		return v
	}
	return 0
}
