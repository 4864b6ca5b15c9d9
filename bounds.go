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
	"cmp"
	"math"

	"github.com/pkg/errors"
)

var (
	// ErrNotANumber is returned by ComputeRange if the buffer contains NaN.
	ErrNotANumber = errors.New("divergence value is NaN")

	// ErrEmpty is returned by ComputeRange for an empty buffer.
	ErrEmpty = errors.New("empty divergence buffer")
)

// Range is the global minimum and maximum of the divergence buffer.
type Range struct {
	Min, Max float64
}

// Contains reports whether Min <= x <= Max.
func (r Range) Contains(x float64) bool {
	return totalCompare(r.Min, x) <= 0 && totalCompare(x, r.Max) <= 0
}

// Degenerate reports whether all values of the buffer were equal.
func (r Range) Degenerate() bool {
	return r.Min == r.Max
}

// ComputeRange returns the minimum and maximum of values.  The buffer is
// split into the same spans as the render phases and reduced in parallel.
//
// Values are ordered by the IEEE 754 total order restricted to numbers,
// so that -0 < +0 and the infinities are ordinary values.  NaN is rejected:
// the returned error wraps ErrNotANumber.
func ComputeRange(values []float64, workers int) (Range, error) {
	if len(values) == 0 {
		return Range{}, ErrEmpty
	}

	spans := Partition(len(values), workers)
	partial := make([]Range, len(spans))
	found := make([]bool, len(spans))
	err := ForEach(len(values), workers, func(s Span) error {
		if s.Len() == 0 {
			return nil
		}
		r, err := scanRange(values[s.Lo:s.Hi], s.Lo)
		if err != nil {
			return err
		}
		partial[s.Index] = r
		found[s.Index] = true
		return nil
	})
	if err != nil {
		return Range{}, err
	}

	var res Range
	first := true
	for i, r := range partial {
		if !found[i] {
			continue
		}
		if first {
			res = r
			first = false
			continue
		}
		if totalCompare(r.Min, res.Min) < 0 {
			res.Min = r.Min
		}
		if totalCompare(r.Max, res.Max) > 0 {
			res.Max = r.Max
		}
	}
	return res, nil
}

// scanRange reduces a non-empty slice.  offset is the buffer index of
// values[0], used in error messages.
func scanRange(values []float64, offset int) (Range, error) {
	r := Range{Min: values[0], Max: values[0]}
	for i, x := range values {
		if math.IsNaN(x) {
			return Range{}, errors.Wrapf(ErrNotANumber, "index %d", offset+i)
		}
		if totalCompare(x, r.Min) < 0 {
			r.Min = x
		}
		if totalCompare(x, r.Max) > 0 {
			r.Max = x
		}
	}
	return r, nil
}

// totalCompare orders float64 values by their sign-magnitude bit pattern:
// -NaN < -Inf < ... < -0 < +0 < ... < +Inf < +NaN.
func totalCompare(a, b float64) int {
	return cmp.Compare(totalKey(a), totalKey(b))
}

func totalKey(x float64) int64 {
	k := int64(math.Float64bits(x))
	return k ^ int64(uint64(k>>63)>>1)
}
