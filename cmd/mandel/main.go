// seehuhn.de/go/fractal - escape-time fractal rendering
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command mandel renders the Mandelbrot set with smooth coloring and writes
// the result to an image file.
//
// The time spent computing and coloring (excluding the file write) is
// printed to standard output in milliseconds.
package main

import (
	"flag"
	"fmt"
	"log"
	"maps"
	"os"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/pkg/errors"

	"seehuhn.de/go/fractal"
	"seehuhn.de/go/fractal/imgfile"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("mandel: ")

	cfg, pdfPath, verbose, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if verbose {
		log.Printf("size %d, depth %d, escape2 %g, viewport %v, workers %d",
			cfg.Size, cfg.Depth, cfg.Escape2, cfg.Viewport, cfg.Workers)
	}

	f, err := fractal.Render(cfg)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("elapsed: %.3f ms\n", float64(f.Elapsed)/float64(time.Millisecond))
	if verbose {
		log.Printf("divergence range [%g, %g]", f.Range.Min, f.Range.Max)
	}

	if err := imgfile.Save(cfg.Output, f); err != nil {
		log.Fatal(err)
	}
	if pdfPath != "" {
		if err := imgfile.WritePDF(pdfPath, f); err != nil {
			log.Fatal(err)
		}
	}
}

func parseFlags(args []string) (cfg *fractal.Config, pdfPath string, verbose bool, err error) {
	cfg = fractal.DefaultConfig()

	fs := flag.NewFlagSet("mandel", flag.ContinueOnError)
	fs.IntVar(&cfg.Size, "n", cfg.Size, "grid size (the image is n×n pixels)")
	fs.IntVar(&cfg.Depth, "depth", cfg.Depth, "maximum number of iterations")
	fs.Float64Var(&cfg.Escape2, "escape2", cfg.Escape2, "escape radius squared")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "number of workers (0 = one per CPU)")
	fs.StringVar(&cfg.Output, "o", cfg.Output, "output file (.ppm, .png, .tif, .bmp)")
	fs.StringVar(&pdfPath, "pdf", "", "also write a grayscale PDF proof to this file")
	fs.BoolVar(&verbose, "v", false, "log configuration and value range")
	region := fs.String("region", "full",
		"named viewport: "+strings.Join(slices.Sorted(maps.Keys(fractal.Regions)), ", "))
	re0 := fs.Float64("re0", 0, "lower end of the real range (overrides -region)")
	re1 := fs.Float64("re1", 0, "upper end of the real range")
	im0 := fs.Float64("im0", 0, "lower end of the imaginary range")
	im1 := fs.Float64("im1", 0, "upper end of the imaginary range")
	palette := fs.String("palette", "", "comma-separated #rrggbb gradient stops")
	if err := fs.Parse(args); err != nil {
		return nil, "", false, err
	}

	vp, ok := fractal.Regions[*region]
	if !ok {
		return nil, "", false, errors.Errorf("unknown region %q", *region)
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "re0":
			vp.LLx = *re0
		case "re1":
			vp.URx = *re1
		case "im0":
			vp.LLy = *im0
		case "im1":
			vp.URy = *im1
		}
	})
	cfg.Viewport = vp

	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}

	if *palette != "" {
		cfg.Gradient, err = fractal.ParseGradient(*palette)
		if err != nil {
			return nil, "", false, err
		}
	}

	return cfg, pdfPath, verbose, cfg.Validate()
}
