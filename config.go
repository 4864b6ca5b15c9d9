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

package fractal

import (
	"math"
	"slices"

	"github.com/pkg/errors"
	"seehuhn.de/go/geom/rect"
)

// Default values for the fields of [Config].
const (
	DefaultSize    = 1000
	DefaultDepth   = 200
	DefaultEscape2 = 400.0
	DefaultWorkers = 1
	DefaultOutput  = "out.ppm"
)

// MaxSize is the largest grid size accepted by [Config.Validate].
// It keeps Size*Size within the range of int on all platforms.
const MaxSize = 1 << 15

// DefaultViewport covers the whole Mandelbrot set: real part in [-2, 1],
// imaginary part in [-1.5, 1.5].
var DefaultViewport = rect.Rect{LLx: -2.0, LLy: -1.5, URx: 1.0, URy: 1.5}

// Config holds all parameters of a single render.
type Config struct {
	// Size is the side length N of the square pixel grid.
	Size int

	// Depth is the maximum number of iterations per pixel.
	Depth int

	// Escape2 is the square of the escape radius.
	Escape2 float64

	// Viewport is the rectangle in the complex plane which is mapped onto
	// the pixel grid.  LLx and URx give the real range, LLy and URy the
	// imaginary range.
	Viewport rect.Rect

	// Workers is the number of concurrent tasks used for each phase.
	Workers int

	// Gradient maps normalized divergence values to colors.
	// Nil means DefaultGradient.  DefaultConfig sets a copy of
	// DefaultGradient, which may be modified freely.
	Gradient Gradient

	// Output is the path of the image file.  The library does not use this
	// field; it is carried for the command-line front end.
	Output string
}

// DefaultConfig returns the configuration of the standard 1000×1000 overview
// render.
func DefaultConfig() *Config {
	return &Config{
		Size:     DefaultSize,
		Depth:    DefaultDepth,
		Escape2:  DefaultEscape2,
		Viewport: DefaultViewport,
		Workers:  DefaultWorkers,
		Gradient: slices.Clone(DefaultGradient),
		Output:   DefaultOutput,
	}
}

// Validate checks that the configuration describes a renderable image.
func (c *Config) Validate() error {
	if c.Size < 1 || c.Size > MaxSize {
		return errors.Errorf("invalid grid size %d", c.Size)
	}
	if c.Depth < 1 {
		return errors.Errorf("invalid iteration depth %d", c.Depth)
	}
	if !(c.Escape2 > 0) || math.IsInf(c.Escape2, 0) {
		return errors.Errorf("invalid escape radius squared %g", c.Escape2)
	}
	vp := c.Viewport
	for _, v := range []float64{vp.LLx, vp.LLy, vp.URx, vp.URy} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Errorf("non-finite viewport %v", vp)
		}
	}
	if vp.URx == vp.LLx || vp.URy == vp.LLy {
		return errors.Errorf("empty viewport %v", vp)
	}
	if c.Workers < 1 {
		return errors.Errorf("invalid worker count %d", c.Workers)
	}
	if c.Gradient != nil && len(c.Gradient) < 2 {
		return errors.Errorf("gradient needs at least 2 stops, got %d", len(c.Gradient))
	}
	return nil
}

func (c *Config) gradient() Gradient {
	if c.Gradient == nil {
		return DefaultGradient
	}
	return c.Gradient
}
