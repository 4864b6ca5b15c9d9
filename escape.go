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

import "math"

// minMagnitude is the smallest value of |z|² used inside the smoothing
// logarithms.  It keeps ln(v) strictly positive.
var minMagnitude = math.Nextafter(1, 2)

// Escape iterates z ← z² + c, starting from z = 0, and returns the smoothed
// escape value of c.
//
// The iteration stops at the first 0-based step k where |z|² ≥ escape2.
// If this never happens within depth steps, k is depth-1 and the last
// computed |z|² is used.  The result is finite for all inputs.
func Escape(c complex128, depth int, escape2 float64) float64 {
	k, magz2 := iterate(c, depth, escape2)
	return Smooth(k, magz2, escape2)
}

// iterate returns the escape step k and the squared magnitude of z after
// that step.  A NaN magnitude (z overflowed) counts as escaped.
func iterate(c complex128, depth int, escape2 float64) (int, float64) {
	var z complex128
	var magz2 float64
	k := 0
	for ; k < depth; k++ {
		z = z*z + c
		re, im := real(z), imag(z)
		magz2 = re*re + im*im
		if !(magz2 < escape2) {
			return k, magz2
		}
	}
	return depth - 1, magz2
}

// Smooth turns the integer escape step k into a continuous value:
//
//	ln(k+2) - ln(ln(v)/2) / ln(2),  v = max(magz2, escape2)
//
// v is clamped to [nextafter(1, +Inf), MaxFloat64] first, NaN maps to the
// upper end.
func Smooth(k int, magz2, escape2 float64) float64 {
	v := escape2
	if magz2 > v || math.IsNaN(magz2) {
		v = magz2
	}
	switch {
	case math.IsNaN(v) || v > math.MaxFloat64:
		v = math.MaxFloat64
	case v < minMagnitude:
		v = minMagnitude
	}
	return math.Log(float64(k)+2) - math.Log(math.Log(v)/2)/math.Ln2
}
