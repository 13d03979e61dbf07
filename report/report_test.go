package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/PkuCuipy/eartist"
)

func sampleStats() []eartist.Stats {
	return []eartist.Stats{
		{Generation: 1, Best: 90, Mean: 110, Worst: 130, Evaluated: 20, Shapes: 1},
		{Generation: 2, Best: 80, Mean: 100, Worst: 120, Evaluated: 18, Shapes: 2},
		{Generation: 3, Best: 75, Mean: 85, Worst: 95, Evaluated: 19, Shapes: 2},
	}
}

func TestHistory(t *testing.T) {
	h := &History{}
	for _, st := range sampleStats() {
		h.Add(st)
	}
	if h.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", h.Len())
	}
	if h.Best[2] != 75 || h.Mean[1] != 100 || h.Worst[0] != 130 || h.Gen[2] != 3 {
		t.Errorf("unexpected history %+v", h)
	}

	out := filepath.Join(t.TempDir(), "fitness.png")
	if err := h.Plot("test run", out); err != nil {
		t.Fatal(err)
	}
	fi, err := os.Stat(out)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() == 0 {
		t.Error("plot file is empty")
	}
}

func TestEmptyHistory(t *testing.T) {
	h := &History{}
	if err := h.Plot("empty", filepath.Join(t.TempDir(), "x.png")); err == nil {
		t.Error("plotting an empty history succeeded")
	}
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	if err != nil {
		t.Fatal(err)
	}
	for _, st := range sampleStats() {
		m.Observe(st)
	}

	checks := []struct {
		name string
		c    prometheus.Collector
		want float64
	}{
		{"generation", m.Generation, 3},
		{"best", m.BestFitness, 75},
		{"mean", m.MeanFitness, 85},
		{"shapes", m.Shapes, 2},
		{"evaluations", m.Evaluations, 57},
	}
	for _, c := range checks {
		if got := testutil.ToFloat64(c.c); got != c.want {
			t.Errorf("%s = %g, want %g", c.name, got, c.want)
		}
	}

	if _, err := NewMetrics(reg); err == nil {
		t.Error("registering the metrics twice succeeded")
	}
}
