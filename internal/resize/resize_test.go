package resize

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExact(t *testing.T) {
	t.Parallel()

	img := image.NewNRGBA(image.Rect(0, 0, 10, 7))
	r := NewResizer()

	tests := []struct {
		name string
		w, h int
	}{
		{"shrink", 3, 4},
		{"grow", 25, 2},
		{"same", 10, 7},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := r.Exact(img, tt.w, tt.h).Bounds()
			assert.Equal(t, tt.w, b.Dx())
			assert.Equal(t, tt.h, b.Dy())
		})
	}
}

func TestExactDegenerate(t *testing.T) {
	t.Parallel()

	img := image.NewNRGBA(image.Rect(0, 0, 10, 7))
	r := NewResizer()
	assert.True(t, r.Exact(img, 0, 5).Bounds().Empty())
	assert.True(t, r.Exact(img, 5, 0).Bounds().Empty())
	assert.True(t, r.Exact(img, -1, -1).Bounds().Empty())
}

func TestExactKeepsUniformColor(t *testing.T) {
	t.Parallel()

	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = 255, 255, 255, 255
	}

	out := NewResizer().Exact(img, 3, 5)
	c := color.NRGBAModel.Convert(out.At(1, 2)).(color.NRGBA)
	assert.InDelta(t, 255, c.R, 1)
	assert.InDelta(t, 255, c.G, 1)
	assert.InDelta(t, 255, c.B, 1)
	assert.InDelta(t, 255, c.A, 1)
}

func TestFitWithoutImageSize(t *testing.T) {
	t.Parallel()

	w, h := NewResizer().Fit(80, 40, 0, 10)
	assert.Equal(t, 80, w)
	assert.Equal(t, 40, h)
}

func TestFitWideImage(t *testing.T) {
	t.Parallel()

	w, h := NewResizer().Fit(100, 50, 400, 100)
	assert.Equal(t, 100, w)
	assert.Greater(t, h, 0)
	assert.Less(t, h, 50)
}

func TestFitTallImage(t *testing.T) {
	t.Parallel()

	w, h := NewResizer().Fit(100, 50, 100, 400)
	assert.Less(t, w, 100)
	assert.Greater(t, w, 0)
	assert.LessOrEqual(t, h, 50)
}
