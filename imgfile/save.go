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
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"seehuhn.de/go/fractal"
)

// Format is an output file format.
type Format int

// These are the supported raster formats.
const (
	PPM Format = iota
	PNG
	TIFF
	BMP
)

func (f Format) String() string {
	switch f {
	case PPM:
		return "ppm"
	case PNG:
		return "png"
	case TIFF:
		return "tiff"
	case BMP:
		return "bmp"
	default:
		return "unknown"
	}
}

// FormatFor selects the output format from the file name extension.
// A missing extension means PPM.
func FormatFor(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case "", ".ppm":
		return PPM, nil
	case ".png":
		return PNG, nil
	case ".tif", ".tiff":
		return TIFF, nil
	case ".bmp":
		return BMP, nil
	default:
		return 0, errors.Errorf("unsupported image format %q", ext)
	}
}

// Encode writes f to w in the given format.
func Encode(w io.Writer, f *fractal.Frame, format Format) error {
	switch format {
	case PPM:
		return WritePPM(w, f)
	case PNG:
		return errors.Wrap(png.Encode(w, f), "PNG")
	case TIFF:
		opt := &tiff.Options{Compression: tiff.Deflate, Predictor: true}
		return errors.Wrap(tiff.Encode(w, f, opt), "TIFF")
	case BMP:
		return errors.Wrap(bmp.Encode(w, f), "BMP")
	default:
		return errors.Errorf("unsupported image format %d", format)
	}
}

// Save writes f to the named file, choosing the format by file name
// extension.  There are no retries; a partially written file is removed.
func Save(path string, f *fractal.Frame) (err error) {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	defer func() {
		cerr := out.Close()
		if err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	if err := Encode(out, f, format); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}
