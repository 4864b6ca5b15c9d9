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

// Package imgfile writes rendered frames to image files.
package imgfile

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"seehuhn.de/go/fractal"
)

// WritePPM writes f as a binary PPM (P6) image: the header
// "P6\n{N} {N}\n255\n" followed by the red, green and blue bytes of every
// pixel in row-major order.  The alpha channel is dropped.
func WritePPM(w io.Writer, f *fractal.Frame) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", f.Size, f.Size); err != nil {
		return errors.Wrap(err, "PPM header")
	}

	var rgb [3]byte
	for _, argb := range f.Color {
		rgb[0] = byte(argb >> 16)
		rgb[1] = byte(argb >> 8)
		rgb[2] = byte(argb)
		if _, err := bw.Write(rgb[:]); err != nil {
			return errors.Wrap(err, "PPM pixel data")
		}
	}
	return errors.Wrap(bw.Flush(), "PPM pixel data")
}
