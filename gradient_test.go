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
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestDefaultGradientShape(t *testing.T) {
	if len(DefaultGradient) != 19 || DefaultGradient.Stops() != 18 {
		t.Fatalf("default gradient has %d stops", len(DefaultGradient))
	}
	for i, c := range DefaultGradient {
		for _, v := range []float64{c.R, c.G, c.B} {
			if v < 0 || v > 1 {
				t.Errorf("stop %d out of range: %v", i, c)
			}
		}
	}
}

func TestARGB(t *testing.T) {
	r := Range{Min: 0, Max: 18}
	cases := []struct {
		x    float64
		want uint32
	}{
		{0, 0xff000080},     // table[0] = (0, 0, 0.5)
		{0.5, 0xff0000bf},   // halfway to (0, 0, 1): round(191.25)
		{1, 0xff0000ff},     // table[1]
		{3.25, 0xff20ffdf},  // (0,1,1) -> (0.5,1,0.5), d = 1/4
		{8.5, 0xff800000},   // two equal stops
		{18, Background},    // x == max
		{100, Background},   // x > max
		{-0.01, Background}, // below min
		{math.NaN(), Background},
		{math.Inf(1), Background},
		{math.Inf(-1), Background},
	}
	for _, tc := range cases {
		if got := DefaultGradient.ARGB(tc.x, r); got != tc.want {
			t.Errorf("ARGB(%g) = %08x, want %08x", tc.x, got, tc.want)
		}
	}
}

func TestARGBMinimum(t *testing.T) {
	ranges := []Range{{-3.7, 12.1}, {0.81926984864918, 2.5}, {-1e10, 1e10}}
	for _, r := range ranges {
		c := DefaultGradient[0]
		want := Background | channel(c.R)<<16 | channel(c.G)<<8 | channel(c.B)
		if got := DefaultGradient.ARGB(r.Min, r); got != want {
			t.Errorf("%v: ARGB(min) = %08x, want %08x", r, got, want)
		}
	}
}

func TestARGBJustBelowMax(t *testing.T) {
	red := colorful.Color{R: 1}
	green := colorful.Color{G: 1}
	blue := colorful.Color{B: 1}
	g, err := NewGradient(red, green, blue)
	if err != nil {
		t.Fatal(err)
	}

	r := Range{Min: 1, Max: 2}
	x := math.Nextafter(r.Max, 0)
	// bin = S-1 = 1, d close to 1: the last stop, not the background.
	if got := g.ARGB(x, r); got != 0xff0000ff {
		t.Errorf("ARGB(just below max) = %08x, want ff0000ff", got)
	}
	if got := g.ARGB(r.Max, r); got != Background {
		t.Errorf("ARGB(max) = %08x, want background", got)
	}
}

func TestARGBDegenerate(t *testing.T) {
	r := Range{Min: 2.5, Max: 2.5}
	for _, x := range []float64{2.5, 0, 3, math.NaN()} {
		if got := DefaultGradient.ARGB(x, r); got != Background {
			t.Errorf("ARGB(%g) = %08x, want background", x, got)
		}
	}
}

// TestARGBNeverOutOfBounds sweeps inputs across and beyond the range.
// Indexing past the table would panic.
func TestARGBNeverOutOfBounds(t *testing.T) {
	ranges := []Range{
		{0, 1}, {-1, 1}, {1, 1 + 1e-15}, {-1e300, 1e300},
		{0, math.MaxFloat64}, {math.Inf(-1), math.Inf(1)},
	}
	short, _ := NewGradient(colorful.Color{}, colorful.Color{R: 1, G: 1, B: 1})
	for _, g := range []Gradient{DefaultGradient, short} {
		for _, r := range ranges {
			for i := -100; i <= 1100; i++ {
				x := r.Min + (r.Max-r.Min)*float64(i)/1000
				if c := g.ARGB(x, r); c>>24 != 0xff {
					t.Fatalf("ARGB(%g, %v) = %08x not opaque", x, r, c)
				}
				g.ARGB(math.Nextafter(x, math.Inf(1)), r)
				g.ARGB(math.Nextafter(x, math.Inf(-1)), r)
			}
		}
	}
}

func TestChannelClamp(t *testing.T) {
	cases := []struct {
		v    float64
		want uint32
	}{
		{-0.5, 0},
		{0, 0},
		{0.5, 128},
		{1, 255},
		{1.7, 255},
	}
	for _, tc := range cases {
		if got := channel(tc.v); got != tc.want {
			t.Errorf("channel(%g) = %d, want %d", tc.v, got, tc.want)
		}
	}
}

func TestParseGradient(t *testing.T) {
	g, err := ParseGradient("#000000, #ff8000,#ffffff")
	if err != nil {
		t.Fatal(err)
	}
	if g.Stops() != 2 {
		t.Fatalf("got %d stops", g.Stops())
	}
	r := Range{Min: 0, Max: 2}
	if got := g.ARGB(1, r); got != 0xffff8000 {
		t.Errorf("ARGB(1) = %08x, want ffff8000", got)
	}

	for _, bad := range []string{"", "#000000", "#000000,#zzzzzz", "black,white"} {
		if _, err := ParseGradient(bad); err == nil {
			t.Errorf("ParseGradient(%q) succeeded", bad)
		}
	}
}
