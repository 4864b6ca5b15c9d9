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

package imgfile

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/fractal"
)

// WritePDF writes a grayscale proof of f to a single-page PDF file.
// Every pixel becomes a 1×1 point square whose gray level is the CIE L*
// lightness of the pixel color.  Horizontal runs of equal gray are merged.
func WritePDF(path string, f *fractal.Frame) error {
	n := float64(f.Size)
	paper := &pdf.Rectangle{URx: n, URy: n}

	page, err := document.CreateSinglePage(path, paper, pdf.V1_7, nil)
	if err != nil {
		return errors.Wrap(err, "create PDF")
	}

	// PDF origin is bottom-left; row 0 of the frame is at the top.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, n})

	row := make([]uint8, f.Size)
	for y := range f.Size {
		for x := range f.Size {
			row[x] = Lightness(f.Color[y*f.Size+x])
		}
		for x := 0; x < f.Size; {
			end := x + 1
			for end < f.Size && row[end] == row[x] {
				end++
			}
			page.SetFillColor(pdfcolor.DeviceGray(float64(row[x]) / 255))
			page.Rectangle(float64(x), float64(y), float64(end-x), 1)
			page.Fill()
			x = end
		}
	}

	return errors.Wrapf(page.Close(), "write %s", path)
}

// Lightness returns the CIE L* lightness of a packed 0xAARRGGBB color,
// scaled to 0-255.
func Lightness(argb uint32) uint8 {
	c := colorful.Color{
		R: float64(uint8(argb>>16)) / 255,
		G: float64(uint8(argb>>8)) / 255,
		B: float64(uint8(argb)) / 255,
	}
	l, _, _ := c.Lab()
	return uint8(math.Round(max(0, min(1, l)) * 255))
}
