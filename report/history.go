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

// Package report records the progress of an evolutionary run, as a
// fitness chart and as Prometheus metrics.
package report

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/PkuCuipy/eartist"
)

// History stores the fitness statistics of every generation of a run.
type History struct {
	Gen   []float64 // generation index
	Best  []float64 // best fitness per generation
	Mean  []float64 // mean fitness per generation
	Worst []float64 // worst fitness per generation
}

// Add appends the statistics of one generation.
func (h *History) Add(st eartist.Stats) {
	h.Gen = append(h.Gen, float64(st.Generation))
	h.Best = append(h.Best, st.Best)
	h.Mean = append(h.Mean, st.Mean)
	h.Worst = append(h.Worst, st.Worst)
}

// Len returns the number of recorded generations.
func (h *History) Len() int {
	return len(h.Gen)
}

// Plot draws best and mean fitness against the generation index and
// saves the chart. The format is chosen by the file name extension, e.g.
// ".png", ".svg" or ".pdf".
func (h *History) Plot(title, outPath string) error {
	if h.Len() == 0 {
		return errors.New("report: empty history")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Fitness (RMS distance)"

	bestPts := make(plotter.XYs, h.Len())
	meanPts := make(plotter.XYs, h.Len())
	for i := range h.Gen {
		bestPts[i].X = h.Gen[i]
		bestPts[i].Y = h.Best[i]
		meanPts[i].X = h.Gen[i]
		meanPts[i].Y = h.Mean[i]
	}

	bestLine, err := plotter.NewLine(bestPts)
	if err != nil {
		return fmt.Errorf("best fitness: %w", err)
	}
	bestLine.LineStyle.Color = color.RGBA{R: 200, A: 255}
	meanLine, err := plotter.NewLine(meanPts)
	if err != nil {
		return fmt.Errorf("mean fitness: %w", err)
	}
	meanLine.LineStyle.Color = color.RGBA{B: 200, A: 255}
	meanLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(plotter.NewGrid(), bestLine, meanLine)
	p.Legend.Add("best", bestLine)
	p.Legend.Add("mean", meanLine)
	p.Legend.Top = true

	return p.Save(6*vg.Inch, 4*vg.Inch, outPath)
}
