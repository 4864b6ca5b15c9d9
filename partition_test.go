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
	"errors"
	"strings"
	"sync/atomic"
	"testing"
)

func TestPartition(t *testing.T) {
	for n := 0; n <= 60; n++ {
		for p := 1; p <= 13; p++ {
			spans := Partition(n, p)
			if len(spans) != p {
				t.Fatalf("n=%d p=%d: %d spans", n, p, len(spans))
			}

			next := 0
			minLen, maxLen := n, 0
			for i, s := range spans {
				if s.Index != i {
					t.Errorf("n=%d p=%d: span %d has index %d", n, p, i, s.Index)
				}
				if s.Lo != next || s.Hi < s.Lo {
					t.Fatalf("n=%d p=%d: span %d = [%d, %d), expected start %d",
						n, p, i, s.Lo, s.Hi, next)
				}
				next = s.Hi
				minLen = min(minLen, s.Len())
				maxLen = max(maxLen, s.Len())
			}
			if next != n {
				t.Errorf("n=%d p=%d: spans end at %d", n, p, next)
			}
			if maxLen-minLen > 1 {
				t.Errorf("n=%d p=%d: span sizes between %d and %d", n, p, minLen, maxLen)
			}
		}
	}
}

func TestPartitionNonPositive(t *testing.T) {
	for _, p := range []int{0, -4} {
		spans := Partition(10, p)
		if len(spans) != 1 || spans[0] != (Span{Index: 0, Lo: 0, Hi: 10}) {
			t.Errorf("Partition(10, %d) = %v", p, spans)
		}
	}
}

func TestForEachCoversOnce(t *testing.T) {
	for _, n := range []int{0, 1, 7, 1000, 1001} {
		for _, p := range []int{1, 2, 3, 8, 17} {
			counts := make([]atomic.Int32, n)
			err := ForEach(n, p, func(s Span) error {
				for i := s.Lo; i < s.Hi; i++ {
					counts[i].Add(1)
				}
				return nil
			})
			if err != nil {
				t.Fatal(err)
			}
			for i := range counts {
				if c := counts[i].Load(); c != 1 {
					t.Fatalf("n=%d p=%d: index %d processed %d times", n, p, i, c)
				}
			}
		}
	}
}

func TestForEachError(t *testing.T) {
	errBroken := errors.New("broken")
	for failing := range 4 {
		var done atomic.Int32
		err := ForEach(100, 4, func(s Span) error {
			defer done.Add(1)
			if s.Index == failing {
				return errBroken
			}
			return nil
		})
		if !errors.Is(err, errBroken) {
			t.Errorf("span %d failing: got error %v", failing, err)
		}
		if d := done.Load(); d != 4 {
			t.Errorf("span %d failing: ForEach returned after %d of 4 spans", failing, d)
		}
	}
}

func TestForEachPanic(t *testing.T) {
	for failing := range 3 {
		err := ForEach(30, 3, func(s Span) error {
			if s.Index == failing {
				var buf []float64
				buf[s.Hi] = 1 // index out of range
			}
			return nil
		})
		if err == nil || !strings.Contains(err.Error(), "panic") {
			t.Errorf("span %d panicking: got error %v", failing, err)
		}
	}
}
