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

// Command genpdf writes a grayscale PDF proof sheet for every scene, next to
// the PPM reference images made by tools/generate_references.py.
// The proofs are for visual inspection; the tests do not read them.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/fractal"
	"seehuhn.de/go/fractal/imgfile"
	"seehuhn.de/go/fractal/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			name := category + "_" + sc.Name

			f, err := fractal.Render(sceneConfig(sc))
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			pdfPath := filepath.Join(refDir, name+".pdf")
			if err := imgfile.WritePDF(pdfPath, f); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

// sceneConfig returns the single-worker render configuration for a scene.
func sceneConfig(sc testcases.Scene) *fractal.Config {
	cfg := fractal.DefaultConfig()
	cfg.Size = sc.Size
	cfg.Depth = sc.Depth
	cfg.Escape2 = sc.Escape2
	cfg.Viewport = sc.Viewport
	return cfg
}
