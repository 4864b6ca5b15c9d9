// Command export writes scene definitions to JSON for the Python reference
// generator in tools/generate_references.py.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/fractal/testcases"
)

func main() {
	var out struct {
		Scenes []jsonScene `json:"scenes"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			out.Scenes = append(out.Scenes, toJSON(category, sc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/scenes.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonScene struct {
	Name    string     `json:"name"`
	Size    int        `json:"size"`
	Depth   int        `json:"depth"`
	Escape2 float64    `json:"escape2"`
	Real    [2]float64 `json:"real"`
	Imag    [2]float64 `json:"imag"`
}

func toJSON(category string, sc testcases.Scene) jsonScene {
	return jsonScene{
		Name:    category + "_" + sc.Name,
		Size:    sc.Size,
		Depth:   sc.Depth,
		Escape2: sc.Escape2,
		Real:    [2]float64{sc.Viewport.LLx, sc.Viewport.URx},
		Imag:    [2]float64{sc.Viewport.LLy, sc.Viewport.URy},
	}
}
