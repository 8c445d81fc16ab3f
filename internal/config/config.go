package config

import (
	"math"

	"github.com/koki-develop/glyphart/internal/glyph"
)

const (
	DefaultWidth      = 100
	DefaultHeight     = 50
	DefaultSaturation = 0.7

	// MaxTargetPixels bounds the oversampled image. Scales above 1 are
	// lowered until Width*Height*scale^2 fits, but never below 1.
	MaxTargetPixels = 1 << 22
)

// Config describes one conversion. It is a plain value: copies are
// independent and nothing in the pipeline writes to it.
//
// No cross-field validation happens here. Degenerate values such as a zero
// width or a scale below one are handled by the pipeline.
type Config struct {
	// Width and Height are the output grid size in glyphs.
	Width  int
	Height int
	// Scale oversamples the resized image before block averaging.
	Scale      float64
	Alphabet   glyph.Kind
	Color      bool
	Saturation float64
	Invert     bool
	Contrast   float64
	Brightness float64
}

type Option func(*Config)

// Default returns the configuration with every field at its default.
func Default() Config {
	return Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Scale:      1.0,
		Alphabet:   glyph.Basic,
		Saturation: DefaultSaturation,
		Contrast:   1.0,
		Brightness: 1.0,
	}
}

// New fills defaults and applies opts in order.
func New(opts ...Option) Config {
	c := Default()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// With returns a copy of c with opts applied.
func (c Config) With(opts ...Option) Config {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// EffectiveScale is Scale, lowered when the oversampled image would exceed
// MaxTargetPixels. A NaN scale becomes 0.
func (c Config) EffectiveScale() float64 {
	s := c.Scale
	if math.IsNaN(s) {
		return 0
	}
	cells := float64(c.Width) * float64(c.Height)
	if s > 1 && cells > 0 && s*s*cells > MaxTargetPixels {
		s = max(1, math.Sqrt(MaxTargetPixels/cells))
	}
	return s
}

// TargetSize is the resize target: the grid size multiplied by
// EffectiveScale, truncated.
func (c Config) TargetSize() (int, int) {
	s := c.EffectiveScale()
	return int(float64(c.Width) * s), int(float64(c.Height) * s)
}

func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

func WithScale(scale float64) Option {
	return func(c *Config) {
		c.Scale = scale
	}
}

func WithAlphabet(kind glyph.Kind) Option {
	return func(c *Config) {
		c.Alphabet = kind
	}
}

// WithDetailed selects the detailed alphabet unless the high-density one is
// already chosen.
func WithDetailed(detailed bool) Option {
	return func(c *Config) {
		if detailed && c.Alphabet != glyph.HighDensity {
			c.Alphabet = glyph.Detailed
		}
	}
}

// WithHighDensity selects the Unicode alphabet. It takes precedence over
// WithDetailed regardless of order.
func WithHighDensity(highDensity bool) Option {
	return func(c *Config) {
		if highDensity {
			c.Alphabet = glyph.HighDensity
		}
	}
}

func WithColor(color bool) Option {
	return func(c *Config) {
		c.Color = color
	}
}

func WithSaturation(saturation float64) Option {
	return func(c *Config) {
		c.Saturation = saturation
	}
}

func WithInvert(invert bool) Option {
	return func(c *Config) {
		c.Invert = invert
	}
}

func WithContrast(contrast float64) Option {
	return func(c *Config) {
		c.Contrast = contrast
	}
}

func WithBrightness(brightness float64) Option {
	return func(c *Config) {
		c.Brightness = brightness
	}
}
