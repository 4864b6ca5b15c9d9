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

package main

import (
	"strings"
	"testing"

	"seehuhn.de/go/fractal"
)

func TestParseFlagsDefaults(t *testing.T) {
	cfg, pdfPath, verbose, err := parseFlags(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Size != 1000 || cfg.Depth != 200 || cfg.Escape2 != 400 || cfg.Workers != 1 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Output != "out.ppm" {
		t.Errorf("output = %q, want out.ppm", cfg.Output)
	}
	if cfg.Viewport != fractal.DefaultViewport {
		t.Errorf("viewport = %v, want %v", cfg.Viewport, fractal.DefaultViewport)
	}
	if pdfPath != "" || verbose {
		t.Errorf("unexpected pdf=%q verbose=%t", pdfPath, verbose)
	}
}

func TestParseFlagsViewport(t *testing.T) {
	cfg, _, _, err := parseFlags([]string{"-region", "seahorse", "-re1", "-0.6"})
	if err != nil {
		t.Fatal(err)
	}
	want := fractal.Regions["seahorse"]
	want.URx = -0.6
	if cfg.Viewport != want {
		t.Errorf("viewport = %v, want %v", cfg.Viewport, want)
	}
}

func TestParseFlagsErrors(t *testing.T) {
	cases := [][]string{
		{"-region", "nowhere"},
		{"-n", "0"},
		{"-workers", "-3"},
		{"-escape2", "-1"},
		{"-palette", "#ff0000"},
		{"-palette", "#ff0000,red"},
		{"-re0", "1", "-re1", "1"},
	}
	for _, args := range cases {
		if _, _, _, err := parseFlags(args); err == nil {
			t.Errorf("%v: expected an error", args)
		}
	}
}

func TestParseFlagsWorkersPerCPU(t *testing.T) {
	cfg, _, _, err := parseFlags([]string{"-workers", "0"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Workers < 1 {
		t.Errorf("workers = %d", cfg.Workers)
	}
}

func TestParseFlagsUnknownRegion(t *testing.T) {
	_, _, _, err := parseFlags([]string{"-region", "atlantis"})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), `unknown region "atlantis"`) {
		t.Errorf("unexpected error %q", err)
	}
}
