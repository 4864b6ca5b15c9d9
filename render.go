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

// Package fractal renders escape-time images of the Mandelbrot set with
// smooth coloring.
//
// A render runs in two data-parallel phases.  Phase 1 computes a smoothed
// escape value for every pixel.  After all workers have joined, the global
// minimum and maximum of these values are determined.  Phase 2 then maps
// every value to a color of a fixed gradient, normalized by this range.
package fractal

//go:generate go run ./testcases/export
//go:generate python3 tools/generate_references.py

import (
	"image"
	"image/color"
	"time"

	"github.com/pkg/errors"
)

// Frame holds the buffers of one render.
type Frame struct {
	// Size is the side length N of the square image.
	Size int

	// Divergence holds the smoothed escape value of every pixel, in
	// row-major order.
	Divergence []float64

	// Color holds the packed 0xAARRGGBB color of every pixel, in row-major
	// order.
	Color []uint32

	// Range is the minimum and maximum of Divergence.
	Range Range

	// Elapsed is the wall-clock time spent in both phases, including the
	// range computation.
	Elapsed time.Duration
}

// Render computes the image described by cfg.
// If any worker fails, no frame is returned.
func Render(cfg *Config) (*Frame, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	n := cfg.Size
	f := &Frame{
		Size:       n,
		Divergence: make([]float64, n*n),
		Color:      make([]uint32, n*n),
	}

	start := time.Now()

	// phase 1
	m := NewMapper(n, cfg.Viewport)
	depth, escape2 := cfg.Depth, cfg.Escape2
	err := ForEach(n*n, cfg.Workers, func(s Span) error {
		out := f.Divergence[s.Lo:s.Hi:s.Hi]
		for j := range out {
			out[j] = Escape(m.At(s.Lo+j), depth, escape2)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "escape phase")
	}

	f.Range, err = ComputeRange(f.Divergence, cfg.Workers)
	if err != nil {
		return nil, errors.Wrap(err, "range")
	}

	// phase 2
	g, r := cfg.gradient(), f.Range
	err = ForEach(n*n, cfg.Workers, func(s Span) error {
		in := f.Divergence[s.Lo:s.Hi]
		out := f.Color[s.Lo:s.Hi:s.Hi]
		for j, x := range in {
			out[j] = g.ARGB(x, r)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "color phase")
	}

	f.Elapsed = time.Since(start)
	return f, nil
}

// ColorModel implements the [image.Image] interface.
func (f *Frame) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements the [image.Image] interface.
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.Size, f.Size)
}

// At implements the [image.Image] interface.
func (f *Frame) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= f.Size || y >= f.Size {
		return color.NRGBA{}
	}
	return Unpack(f.Color[y*f.Size+x])
}

// Unpack converts a packed 0xAARRGGBB color.
func Unpack(argb uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(argb >> 16),
		G: uint8(argb >> 8),
		B: uint8(argb),
		A: uint8(argb >> 24),
	}
}
