package glyph

import (
	"image/color"
	"math"
)

// Kind selects one of the fixed alphabets.
type Kind int

const (
	Basic Kind = iota
	Detailed
	HighDensity
)

func (k Kind) String() string {
	switch k {
	case Detailed:
		return "detailed"
	case HighDensity:
		return "high-density"
	}
	return "basic"
}

// Alphabet is a glyph sequence ordered from darkest to lightest.
type Alphabet []string

var (
	basic       = split("@%#*+=-:. ")
	detailed    = split("$@B%8&WM#*oahkbdpqwmZO0QLCJUYXzcvunxrjft/\\|()1{}[]?-_+~<>i!lI;:,\"^`'. ")
	highDensity = Alphabet{
		"█", "▓", "▒", "░", "▄", "■", "▪", "●", "◆", "◉",
		"◍", "◎", "○", "☉", "◌", "◊", "♦", "♢", "•", ".",
		" ",
	}
)

func split(s string) Alphabet {
	a := make(Alphabet, 0, len(s))
	for _, r := range s {
		a = append(a, string(r))
	}
	return a
}

// For returns the alphabet for kind. Unknown kinds fall back to Basic.
func For(kind Kind) Alphabet {
	switch kind {
	case Detailed:
		return detailed
	case HighDensity:
		return highDensity
	}
	return basic
}

// Index maps a brightness in [0,1] to floor(v*(n-1)), clamped to the
// alphabet. Brightness 1 selects the last glyph.
func (a Alphabet) Index(v float64) int {
	n := len(a)
	if n == 0 || math.IsNaN(v) {
		return 0
	}
	i := int(math.Floor(v * float64(n-1)))
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}

func (a Alphabet) Glyph(v float64) string {
	if len(a) == 0 {
		return ""
	}
	return a[a.Index(v)]
}

// Blend mixes the averaged channels with neutral gray by saturation and
// scales the result to 8 bits.
func Blend(r, g, b, saturation float64) color.RGBA {
	return color.RGBA{
		R: blendChannel(r, saturation),
		G: blendChannel(g, saturation),
		B: blendChannel(b, saturation),
		A: 0xff,
	}
}

func blendChannel(c, saturation float64) uint8 {
	v := c*saturation + (1-saturation)*0.5
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 0xff
	}
	return uint8(v * 255)
}
