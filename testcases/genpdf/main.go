// eartist - approximating images with evolved vector shapes
// Copyright (C) 2026  The eartist authors
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

// Command genpdf writes every test case as a vector PDF, together with
// the PNG produced by the scanline rasteriser, for visual comparison.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/PkuCuipy/eartist/imageio"
	"github.com/PkuCuipy/eartist/pdfout"
	"github.com/PkuCuipy/eartist/testcases"
)

const refDir = "testdata/preview"

func main() {
	// Create output directory
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	// Process all test cases
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			g := tc.Genome()
			if err := pdfout.WriteGenome(pdfPath, g); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := imageio.Save(pngPath, g.Render()); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}
