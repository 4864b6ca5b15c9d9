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
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Background is the packed color used for points outside the gradient:
// opaque black.
const Background uint32 = 0xff000000

// Gradient is a list of color stops.  A gradient with S+1 stops has S
// segments; colors inside a segment are linearly interpolated.
type Gradient []colorful.Color

// DefaultGradient runs from dark blue through cyan, yellow and red to dark
// red, and back again, ending in black.
var DefaultGradient = Gradient{
	{R: 0.0, G: 0.0, B: 0.5},
	{R: 0.0, G: 0.0, B: 1.0},
	{R: 0.0, G: 0.5, B: 1.0},
	{R: 0.0, G: 1.0, B: 1.0},
	{R: 0.5, G: 1.0, B: 0.5},
	{R: 1.0, G: 1.0, B: 0.0},
	{R: 1.0, G: 0.5, B: 0.0},
	{R: 1.0, G: 0.0, B: 0.0},
	{R: 0.5, G: 0.0, B: 0.0},
	{R: 0.5, G: 0.0, B: 0.0},
	{R: 1.0, G: 0.0, B: 0.0},
	{R: 1.0, G: 0.5, B: 0.0},
	{R: 1.0, G: 1.0, B: 0.0},
	{R: 0.5, G: 1.0, B: 0.5},
	{R: 0.0, G: 1.0, B: 1.0},
	{R: 0.0, G: 0.5, B: 1.0},
	{R: 0.0, G: 0.0, B: 1.0},
	{R: 0.0, G: 0.0, B: 0.5},
	{R: 0.0, G: 0.0, B: 0.0},
}

// NewGradient returns a gradient with the given stops.
func NewGradient(stops ...colorful.Color) (Gradient, error) {
	if len(stops) < 2 {
		return nil, errors.Errorf("gradient needs at least 2 stops, got %d", len(stops))
	}
	g := make(Gradient, len(stops))
	copy(g, stops)
	return g, nil
}

// ParseGradient reads a comma-separated list of "#rrggbb" colors.
func ParseGradient(s string) (Gradient, error) {
	var stops []colorful.Color
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		c, err := colorful.Hex(field)
		if err != nil {
			return nil, errors.Wrapf(err, "gradient stop %q", field)
		}
		stops = append(stops, c)
	}
	return NewGradient(stops...)
}

// Stops returns the number of segments S of the gradient.
func (g Gradient) Stops() int {
	return len(g) - 1
}

// ARGB maps the divergence value x to a packed 0xAARRGGBB color, using r to
// normalize x to the range [0, S].
//
// Values at or above r.Max, values below r.Min, NaN and a degenerate range
// all give Background.
func (g Gradient) ARGB(x float64, r Range) uint32 {
	if r.Degenerate() {
		return Background
	}

	S := g.Stops()
	t := (x - r.Min) / (r.Max - r.Min) * float64(S)
	if !(t >= 0) || t >= float64(S) {
		return Background
	}
	bin := int(math.Floor(t)) // 0 <= bin < S, so g[bin+1] exists
	d := t - float64(bin)

	c := g[bin].BlendRgb(g[bin+1], d)
	return Background | channel(c.R)<<16 | channel(c.G)<<8 | channel(c.B)
}

func channel(v float64) uint32 {
	return uint32(max(0, min(255, math.Round(v*255))))
}
