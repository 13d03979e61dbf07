// Command eartist evolves a set of translucent shapes which approximates
// a target image.
//
// Usage:
//
//	eartist -target photo.jpg [-out dir] [-generations n] [-config file.json]
//
// The best genome is saved on a schedule which becomes sparser as the run
// progresses, as an image, as JSON and optionally as PDF. A chart of the
// fitness over time is written when the run ends.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/PkuCuipy/eartist"
	"github.com/PkuCuipy/eartist/imageio"
	"github.com/PkuCuipy/eartist/pdfout"
	"github.com/PkuCuipy/eartist/report"
)

var (
	targetPath  = flag.String("target", "", "target image (PNG, JPEG, GIF, BMP, TIFF or WebP)")
	outDir      = flag.String("out", "out", "output directory")
	generations = flag.Int("generations", 1000, "number of generations (0 = run until interrupted)")
	seed        = flag.Uint64("seed", 0, "random seed (0 = use the current time)")
	configPath  = flag.String("config", "", "JSON file with evolution parameters")
	maxSize     = flag.Int("max-size", 200, "scale the target down to at most this many pixels per side (0 = never)")
	initPath    = flag.String("init", "", "genome JSON file to start from")
	format      = flag.String("format", ".png", "image format for snapshots (.png, .jpg, .bmp, .tiff)")
	writePDF    = flag.Bool("pdf", false, "also save snapshots as PDF")
	metricsAddr = flag.String("metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9090")
	logLevel    = flag.String("log-level", "info", "log level (debug, info, warn, error)")

	popSize   = flag.Int("population", 0, "population size")
	offspring = flag.Int("offspring", 0, "children per parent")
	elite     = flag.Int("elite", 0, "number of elite genomes")
	addProb   = flag.Float64("add-prob", 0, "probability of adding a shape to a child")
	ratio     = flag.Float64("mutate-ratio", 0, "maximum fraction of shapes mutated per child")
	amplitude = flag.Float64("amplitude", 0, "mutation amplitude")
	workers   = flag.Int("workers", 0, "goroutines used for fitness evaluation")
)

func main() {
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q\n", *logLevel)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	if *targetPath == "" {
		return errors.New("missing -target")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	target, err := imageio.Load(*targetPath, *maxSize)
	if err != nil {
		return err
	}
	logger.Info("loaded target", "path", *targetPath,
		"height", target.Height, "width", target.Width)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return err
	}

	s := *seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	logger.Debug("random seed", "seed", s)
	rng := rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))

	evo, err := eartist.NewEvolver(cfg, target, target.Mean(), rng)
	if err != nil {
		return err
	}
	if *initPath != "" {
		g, err := loadGenome(*initPath)
		if err != nil {
			return err
		}
		if err := evo.Seed(g); err != nil {
			return fmt.Errorf("%s: %w", *initPath, err)
		}
		logger.Info("starting from saved genome", "path", *initPath, "shapes", g.Len())
	}

	var metrics *report.Metrics
	if *metricsAddr != "" {
		reg := prometheus.NewRegistry()
		metrics, err = report.NewMetrics(reg)
		if err != nil {
			return err
		}
		srv := &http.Server{
			Addr:              *metricsAddr,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server", "error", err)
			}
		}()
		defer srv.Close()
		logger.Info("serving metrics", "addr", *metricsAddr)
	}

	history := &report.History{}
	start := time.Now()
	runErr := evo.Run(ctx, *generations, func(st eartist.Stats) error {
		history.Add(st)
		if metrics != nil {
			metrics.Observe(st)
		}
		if !eartist.Checkpoint(st.Generation) {
			return nil
		}
		logger.Info("generation",
			"generation", st.Generation,
			"best", st.Best,
			"mean", st.Mean,
			"shapes", st.Shapes,
			"evaluated", st.Evaluated,
			"elapsed", time.Since(start).Round(time.Millisecond))
		return snapshot(evo.Best(), fmt.Sprintf("gen-%06d", st.Generation))
	})
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	if errors.Is(runErr, context.Canceled) {
		logger.Warn("interrupted", "generation", evo.Generation)
	}

	if evo.Generation > 0 {
		if err := snapshot(evo.Best(), "best"); err != nil {
			return err
		}
		plotPath := filepath.Join(*outDir, "fitness.png")
		if err := history.Plot(filepath.Base(*targetPath), plotPath); err != nil {
			return err
		}
		best, _ := evo.Best().Fitness()
		logger.Info("done", "generations", evo.Generation, "best", best,
			"shapes", evo.Best().Len(), "out", *outDir)
	}
	return nil
}

// loadConfig combines the defaults, the optional config file and the
// flags which were given explicitly, in this order.
func loadConfig() (eartist.Config, error) {
	cfg := eartist.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = eartist.LoadConfig(*configPath)
		if err != nil {
			return cfg, err
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "population":
			cfg.PopulationSize = *popSize
		case "offspring":
			cfg.OffspringPerParent = *offspring
		case "elite":
			cfg.EliteCount = *elite
		case "add-prob":
			cfg.AddShapeProbability = *addProb
		case "mutate-ratio":
			cfg.MutateRatio = *ratio
		case "amplitude":
			cfg.Amplitude = *amplitude
		case "workers":
			cfg.Workers = *workers
		}
	})
	return cfg, cfg.Validate()
}

func loadGenome(path string) (*eartist.Genome, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	g := &eartist.Genome{}
	if err := json.Unmarshal(data, g); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// snapshot saves the rendering and the state of g under the given name.
func snapshot(g *eartist.Genome, name string) error {
	base := filepath.Join(*outDir, name)
	if err := imageio.Save(base+*format, g.Render()); err != nil {
		return err
	}

	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(base+".json", data, 0o644); err != nil {
		return err
	}

	if *writePDF {
		return pdfout.WriteGenome(base+".pdf", g)
	}
	return nil
}
