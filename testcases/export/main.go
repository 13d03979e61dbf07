// Command export writes the test case genomes to JSON.
// Run from the eartist module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"github.com/PkuCuipy/eartist"
	"github.com/PkuCuipy/eartist/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0o755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
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

type jsonTestCase struct {
	Name     string                `json:"name"`
	Genome   *eartist.GenomeRecord `json:"genome"`
	Fitness  float64               `json:"fitness_vs_background"`
	Coverage int                   `json:"changed_pixels"`
}

// toJSON stores the genome of a test case together with two numbers
// which summarise its rendering: the distance to the plain background
// and the number of pixels which differ from it.
func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	g := tc.Genome()
	bg := eartist.NewCanvas(tc.Height, tc.Width, tc.Background)
	if err := g.Evaluate(bg); err != nil {
		return jsonTestCase{}, err
	}
	rec, err := g.Record()
	if err != nil {
		return jsonTestCase{}, err
	}

	img := g.Render()
	changed := 0
	for i, p := range img.Pix {
		if p != bg.Pix[i] {
			changed++
		}
	}

	return jsonTestCase{
		Name:     category + "_" + tc.Name,
		Genome:   rec,
		Fitness:  *rec.Fitness,
		Coverage: changed,
	}, nil
}
