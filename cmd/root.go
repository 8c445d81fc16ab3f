package cmd

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"time"

	"github.com/koki-develop/glyphart/internal/ascii"
	"github.com/koki-develop/glyphart/internal/config"
	"github.com/koki-develop/glyphart/internal/decode"
	"github.com/koki-develop/glyphart/internal/resize"
	"github.com/koki-develop/glyphart/internal/ui"
	"github.com/spf13/cobra"
)

var (
	flagWidth       int
	flagHeight      int
	flagScale       float64
	flagDetailed    bool
	flagHighDensity bool
	flagColor       bool
	flagSaturation  float64
	flagInvert      bool
	flagContrast    float64
	flagBrightness  float64
	flagOutput      string
	flagFit         bool
	flagPreview     bool
	flagVerbose     bool
)

var rootCmd = &cobra.Command{
	Use:          "glyphart [flags] <image|->",
	Short:        "Convert an image into glyph art",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(flagVerbose)
		cfg := config.New(
			config.WithSize(flagWidth, flagHeight),
			config.WithScale(flagScale),
			config.WithDetailed(flagDetailed),
			config.WithHighDensity(flagHighDensity),
			config.WithColor(flagColor),
			config.WithSaturation(flagSaturation),
			config.WithInvert(flagInvert),
			config.WithContrast(flagContrast),
			config.WithBrightness(flagBrightness),
		)

		if flagPreview {
			if args[0] == "-" {
				return errors.New("preview needs an image path, not stdin")
			}
			return ui.Start(&ui.Option{Path: args[0], Config: cfg})
		}

		start := time.Now()
		img, err := load(args[0])
		if err != nil {
			return err
		}
		logger.Debug("decoded", "source", args[0], "width", img.Bounds().Dx(), "height", img.Bounds().Dy(), "elapsed", time.Since(start))

		if flagFit {
			w, h := resize.NewResizer().Fit(cfg.Width, cfg.Height, img.Bounds().Dx(), img.Bounds().Dy())
			cfg = cfg.With(config.WithSize(w, h))
			logger.Debug("fitted grid", "width", w, "height", h)
		}

		start = time.Now()
		out := ascii.NewConverter(cfg).ConvertImage(img)
		logger.Debug("converted", "alphabet", cfg.Alphabet, "color", cfg.Color, "bytes", len(out), "elapsed", time.Since(start))

		if flagOutput == "" {
			_, err := fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		}
		if err := ascii.Save(out, flagOutput); err != nil {
			return err
		}
		logger.Debug("saved", "path", flagOutput)
		return nil
	},
}

func load(src string) (image.Image, error) {
	if src == "-" {
		img, err := decode.Reader(os.Stdin)
		if err != nil {
			return nil, &ascii.DecodeError{Source: "stdin", Err: err}
		}
		return img, nil
	}
	img, err := decode.File(src)
	if err != nil {
		return nil, &ascii.DecodeError{Source: src, Err: err}
	}
	return img, nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func init() {
	d := config.Default()
	f := rootCmd.Flags()
	f.IntVarP(&flagWidth, "width", "W", d.Width, "output width in glyphs")
	f.IntVarP(&flagHeight, "height", "H", d.Height, "output height in lines")
	f.Float64Var(&flagScale, "scale", d.Scale, "oversampling factor applied before block averaging")
	f.BoolVar(&flagDetailed, "detailed", false, "use the detailed ASCII alphabet")
	f.BoolVar(&flagHighDensity, "high-density", false, "use the Unicode block alphabet")
	f.BoolVar(&flagColor, "color", false, "emit an HTML document with colored glyphs")
	f.Float64Var(&flagSaturation, "saturation", d.Saturation, "color saturation between 0 and 1")
	f.BoolVar(&flagInvert, "invert", false, "invert brightness")
	f.Float64Var(&flagContrast, "contrast", d.Contrast, "contrast multiplier")
	f.Float64Var(&flagBrightness, "brightness", d.Brightness, "brightness multiplier")
	f.StringVarP(&flagOutput, "output", "o", "", "write the result to this file instead of stdout")
	f.BoolVar(&flagFit, "fit", false, "shrink the grid to keep the image aspect ratio")
	f.BoolVar(&flagPreview, "preview", false, "open an interactive terminal preview")
	f.BoolVarP(&flagVerbose, "verbose", "v", false, "log pipeline stages to stderr")
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
