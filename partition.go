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
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Span is a contiguous range [Lo, Hi) of pixel indices assigned to one
// worker.  Index is the position of the span within its partition.
type Span struct {
	Index  int
	Lo, Hi int
}

// Len returns the number of indices in the span.
func (s Span) Len() int {
	return s.Hi - s.Lo
}

// Partition splits [0, n) into p contiguous, non-overlapping spans, in
// order.  Span sizes differ by at most one; if p > n, some spans are empty.
func Partition(n, p int) []Span {
	if p < 1 {
		p = 1
	}
	spans := make([]Span, p)
	for i := range spans {
		spans[i] = Span{
			Index: i,
			Lo:    i * n / p,
			Hi:    (i + 1) * n / p,
		}
	}
	return spans
}

// ForEach calls fn once for every span of Partition(n, p).  The first p-1
// spans run on background goroutines, the last one on the calling
// goroutine.  ForEach returns only after all calls have finished.
//
// If any call returns an error or panics, ForEach returns an error and the
// results of the whole pass must be discarded.
func ForEach(n, p int, fn func(Span) error) error {
	spans := Partition(n, p)
	last := len(spans) - 1

	var g errgroup.Group
	for _, s := range spans[:last] {
		g.Go(func() error {
			return runSpan(fn, s)
		})
	}
	errLast := runSpan(fn, spans[last])

	if err := g.Wait(); err != nil {
		return err
	}
	return errLast
}

func runSpan(fn func(Span) error, s Span) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("span %d [%d, %d): panic: %v", s.Index, s.Lo, s.Hi, r)
		}
	}()
	return fn(s)
}
