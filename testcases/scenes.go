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

package testcases

import "seehuhn.de/go/geom/rect"

var overviewScenes = []Scene{
	{
		Name:     "tiny",
		Size:     4,
		Depth:    50,
		Escape2:  4.0,
		Viewport: full,
	},
	{
		Name:     "small",
		Size:     37, // not divisible by common worker counts
		Depth:    200,
		Escape2:  400.0,
		Viewport: full,
	},
	{
		Name:     "medium",
		Size:     128,
		Depth:    200,
		Escape2:  400.0,
		Viewport: full,
	},
}

var detailScenes = []Scene{
	{
		Name:     "seahorse",
		Size:     64,
		Depth:    500,
		Escape2:  400.0,
		Viewport: rect.Rect{LLx: -0.8, LLy: 0.05, URx: -0.7, URy: 0.15},
	},
	{
		Name:     "spiral",
		Size:     64,
		Depth:    1000,
		Escape2:  400.0,
		Viewport: square(-0.74275, 0.13175, 0.00075),
	},
	{
		Name:     "needle",
		Size:     48,
		Depth:    300,
		Escape2:  400.0,
		Viewport: square(-1.8, 0, 0.05),
	},
}

// escapeScenes vary the escape radius, including radii below 1 where the
// smoothing logarithm needs clamping.
var escapeScenes = []Scene{
	{
		Name:     "radius_2",
		Size:     32,
		Depth:    100,
		Escape2:  4.0,
		Viewport: full,
	},
	{
		Name:     "radius_1",
		Size:     32,
		Depth:    100,
		Escape2:  1.0,
		Viewport: full,
	},
	{
		Name:     "radius_half",
		Size:     32,
		Depth:    100,
		Escape2:  0.25,
		Viewport: full,
	},
	{
		Name:     "radius_huge",
		Size:     32,
		Depth:    2000,
		Escape2:  1e300,
		Viewport: full,
	},
}

// degenerateScenes contain no escaping points, so that all divergence
// values coincide.
var degenerateScenes = []Scene{
	{
		Name:     "cardioid",
		Size:     16,
		Depth:    100,
		Escape2:  400.0,
		Viewport: square(-0.15, 0, 0.05),
	},
	{
		Name:     "single_pixel",
		Size:     1,
		Depth:    10,
		Escape2:  4.0,
		Viewport: full,
	},
}
