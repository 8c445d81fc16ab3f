package resize

import (
	"image"

	"github.com/nfnt/resize"
	"github.com/qeesung/image2ascii/convert"
)

type Resizer struct {
	resizeHandler *convert.ImageResizeHandler
}

func NewResizer() *Resizer {
	return &Resizer{
		resizeHandler: convert.NewResizeHandler().(*convert.ImageResizeHandler),
	}
}

// Exact resamples img to exactly w x h with Lanczos3, ignoring the source
// aspect ratio. A non-positive dimension yields an empty image.
func (r *Resizer) Exact(img image.Image, w, h int) image.Image {
	if w <= 0 || h <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}
	if b := img.Bounds(); b.Dx() == w && b.Dy() == h {
		return img
	}
	return resize.Resize(uint(w), uint(h), img, resize.Lanczos3)
}

// Fit shrinks the w x h box so that it keeps the aspect ratio of an
// imgW x imgH image.
func (r *Resizer) Fit(w, h, imgW, imgH int) (int, int) {
	if imgW <= 0 || imgH <= 0 {
		return w, h
	}
	return r.resizeHandler.CalcFitSize(float64(w), float64(h), float64(imgW), float64(imgH))
}
