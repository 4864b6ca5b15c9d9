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

// Package testcases lists small render scenes used for regression tests
// and reference images.
package testcases

import (
	"seehuhn.de/go/geom/rect"
)

// Scene defines a single render test.
type Scene struct {
	Name     string    // lowercase a-z, 0-9 and _ only
	Size     int       // grid size N
	Depth    int       // maximum number of iterations
	Escape2  float64   // escape radius squared
	Viewport rect.Rect // region of the complex plane
}

// full is the default viewport, real part [-2, 1], imaginary part [-1.5, 1.5].
var full = rect.Rect{LLx: -2.0, LLy: -1.5, URx: 1.0, URy: 1.5}

// square returns the viewport with the given center and half-width.
func square(re, im, r float64) rect.Rect {
	return rect.Rect{LLx: re - r, LLy: im - r, URx: re + r, URy: im + r}
}
