// Command stencil converts images into black/transparent dithered stencils.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"

	"github.com/gogpu/stencil"
	"github.com/gogpu/stencil/internal/imageio"
)

func main() {
	var (
		threshold = flag.Float64("threshold", stencil.DefaultThreshold, "luminance threshold (0-255)")
		output    = flag.String("o", "", "output file (single input only; default <input>.stencil.png)")
		workers   = flag.Int("workers", 0, "images processed concurrently (0 = GOMAXPROCS)")
		verbose   = flag.Bool("v", false, "enable debug logging")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] input.png [input2.jpg ...]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level}))
	stencil.SetLogger(logger)

	inputs := flag.Args()
	if len(inputs) == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if *output != "" && len(inputs) > 1 {
		logger.Error("-o is only valid with a single input")
		os.Exit(2)
	}

	pms := make([]*stencil.Pixmap, len(inputs))
	for i, path := range inputs {
		img, err := imageio.Load(path)
		if err != nil {
			logger.Error("load failed", "path", path, "error", err)
			os.Exit(1)
		}
		pms[i] = stencil.FromImage(img)
	}

	eng := stencil.New(stencil.WithThreshold(*threshold))

	start := time.Now()
	if err := eng.DitherAll(pms, *workers); err != nil {
		logger.Error("dither failed", "error", err)
		os.Exit(1)
	}
	logger.Debug("dither pass done", "images", len(pms), "elapsed", time.Since(start))

	for i, path := range inputs {
		out := *output
		if out == "" {
			out = outputPath(path)
		}
		if err := imageio.SavePNG(out, pms[i].ToImage()); err != nil {
			logger.Error("save failed", "path", out, "error", err)
			os.Exit(1)
		}
		logger.Info("stencil written",
			"input", path, "output", out,
			"size", fmt.Sprintf("%dx%d", pms[i].Width(), pms[i].Height()))
	}
}

// outputPath derives the default output name: photo.jpg -> photo.stencil.png.
func outputPath(in string) string {
	return strings.TrimSuffix(in, filepath.Ext(in)) + ".stencil.png"
}
