package cmd

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/koki-develop/glyphart/internal/ascii"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string, c color.Color) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, c)
		}
	}
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRoot(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "black.png")
	writePNG(t, in, color.Black)

	out, err := run(t, "--width", "2", "--height", "1", "--scale", "2", in)
	require.NoError(t, err)
	assert.Equal(t, "@@\n", out)

	dst := filepath.Join(dir, "out.html")
	out, err = run(t, "--color", "--saturation", "1", "-o", dst, in)
	require.NoError(t, err)
	assert.Empty(t, out)
	b, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Contains(t, string(b), `<span style="color:rgb(0,0,0)">@</span>`)

	_, err = run(t, "--color=false", "-o", "", filepath.Join(dir, "missing.png"))
	var decodeErr *ascii.DecodeError
	assert.ErrorAs(t, err, &decodeErr)

	_, err = run(t, "-o", filepath.Join(dir, "nope", "out.txt"), in)
	var writeErr *ascii.WriteError
	assert.ErrorAs(t, err, &writeErr)

	out, err = run(t, "-o", "", "--fit", "--width", "8", "--height", "8", "--scale", "1", in)
	require.NoError(t, err)
	assert.Equal(t, "@@@@@@@@\n@@@@@@@@\n", out)

	_, err = run(t, "--preview", "-")
	assert.Error(t, err)
}
