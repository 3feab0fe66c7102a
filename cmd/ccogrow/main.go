// Command ccogrow grows a vascular tree toward a set of terminal points and
// writes the resulting vessels as CSV.
//
// Terminals come either from a CSV file (first row the root inlet, second
// row the root outlet, then one terminal per row) or from -sample, which
// draws points inside a ball of -radius with the root inlet at (radius,0,0).
//
// Usage: ccogrow [-config cco.yaml] (-terminals terms.csv | -sample N) [-generations G] [-out vessels.csv]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/cco/config"
	"github.com/katalvlaran/cco/growth"
	"github.com/katalvlaran/cco/terminals"
)

var (
	flagConfig    = flag.String("config", "", "YAML or TOML configuration file")
	flagTerminals = flag.String("terminals", "", "CSV file with the root inlet followed by terminal points")
	flagSample    = flag.Int("sample", 0, "Sample N terminals inside a ball instead of reading -terminals")
	flagRadius    = flag.Float64("radius", 10, "Ball radius for -sample")
	flagSeed      = flag.Int64("seed", 1, "Random seed for -sample")
	flagSaveTerms = flag.String("save-terminals", "", "Also write the terminals used to this CSV file")
	flagOut       = flag.String("out", "", "Vessel CSV output file (default stdout)")
	flagMaxGen    = flag.Int("generations", 0, "Write only the first N generations of vessels (0 = all)")
)

var errUsage = errors.New("either -terminals or -sample is required")

func main() {
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "ccogrow:", err)
		if errors.Is(err, errUsage) {
			flag.Usage()
		}
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// 1) Configuration and logger
	cfg := config.Default()
	if *flagConfig != "" {
		var err error
		if cfg, err = config.Load(*flagConfig); err != nil {
			return err
		}
	}
	logger, err := cfg.Logger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	// 2) Terminals
	pts, err := loadTerminals()
	if err != nil {
		return err
	}
	if len(pts) < 2 {
		return fmt.Errorf("need a root inlet and at least one terminal, got %d points", len(pts))
	}
	if *flagSaveTerms != "" {
		if err = writeFile(*flagSaveTerms, func(w io.Writer) error { return terminals.WriteCSV(w, pts) }); err != nil {
			return err
		}
	}
	logger.Info("terminals loaded", zap.Int("count", len(pts)-1))

	// 3) Growth
	opts, err := cfg.GrowthOptions(logger)
	if err != nil {
		return err
	}
	g, err := growth.Build(ctx, pts[0], pts[1:], cfg.Params, opts...)
	if err != nil {
		return err
	}
	st, err := g.Stats()
	if err != nil {
		return err
	}
	logger.Info("tree grown",
		zap.Int("vessels", st.Vessels),
		zap.Int("terminals", st.Terminals),
		zap.Int("generations", st.Generations),
		zap.Float64("volume", st.Volume),
		zap.Float64("root_radius", st.RootRadius),
	)

	// 4) Output
	if *flagOut == "" {
		return writeVessels(ctx, os.Stdout, g.Network(), *flagMaxGen)
	}

	return writeFile(*flagOut, func(w io.Writer) error { return writeVessels(ctx, w, g.Network(), *flagMaxGen) })
}

func loadTerminals() ([]r3.Vec, error) {
	switch {
	case *flagTerminals != "":
		f, err := os.Open(*flagTerminals)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		return terminals.ReadCSV(f)
	case *flagSample > 0:
		rng := rand.New(rand.NewSource(*flagSeed))
		pts, err := terminals.SampleBall(rng, *flagRadius, *flagSample)
		if err != nil {
			return nil, err
		}

		return append([]r3.Vec{{X: *flagRadius}}, pts...), nil
	default:
		return nil, errUsage
	}
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = write(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
