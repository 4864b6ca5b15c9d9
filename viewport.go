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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Mapper converts pixel coordinates of an N×N grid into points of the
// complex plane.
//
// Pixel (x, y) is first normalized to (x/N, y/N) and then mapped by the
// affine transformation M onto the viewport.  Pixel (0, 0) maps to the
// lower-left corner (LLx, LLy) of the viewport; rows grow towards URy.
type Mapper struct {
	N int
	M matrix.Matrix
}

// NewMapper returns the mapper for an n×n grid covering vp.
func NewMapper(n int, vp rect.Rect) Mapper {
	return Mapper{
		N: n,
		M: matrix.Matrix{
			vp.URx - vp.LLx, 0,
			0, vp.URy - vp.LLy,
			vp.LLx, vp.LLy,
		},
	}
}

// Apply maps normalized grid coordinates to the complex plane.
func (m Mapper) Apply(u vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m.M[0]*u.X + m.M[2]*u.Y + m.M[4],
		Y: m.M[1]*u.X + m.M[3]*u.Y + m.M[5],
	}
}

// Point returns the complex number for pixel (x, y).
func (m Mapper) Point(x, y int) complex128 {
	n := float64(m.N)
	p := m.Apply(vec.Vec2{X: float64(x) / n, Y: float64(y) / n})
	return complex(p.X, p.Y)
}

// At returns the complex number for the pixel with linear index i = y*N + x.
func (m Mapper) At(i int) complex128 {
	return m.Point(i%m.N, i/m.N)
}

// Regions lists named viewports which are worth looking at.
var Regions = map[string]rect.Rect{
	"full":     DefaultViewport,
	"seahorse": {LLx: -0.8, LLy: 0.05, URx: -0.7, URy: 0.15},
	"elephant": {LLx: 0.25, LLy: -0.05, URx: 0.35, URy: 0.05},
	"spiral":   {LLx: -0.7435, LLy: 0.1310, URx: -0.7420, URy: 0.1325},
	"dragon":   {LLx: -0.7400, LLy: 0.1800, URx: -0.7350, URy: 0.1850},
	"needle":   {LLx: -1.85, LLy: -0.05, URx: -1.75, URy: 0.05},
	"cardioid": {LLx: -0.2, LLy: -0.05, URx: -0.1, URy: 0.05},
}
