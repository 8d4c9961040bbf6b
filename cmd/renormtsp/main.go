// Command renormtsp finds a short tour through a TSPLIB EUC_2D instance by
// annealing the rotation of a renormalization grid.
//
// Usage:
//
//	renormtsp -f berlin52.tsp -i 2000 -svg tour.svg -tour berlin52.tour
//
// Settings come from an optional YAML file (-config), then from MQTT_*
// environment variables, then from flags.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/renormtsp/anneal"
	"github.com/katalvlaran/renormtsp/config"
	"github.com/katalvlaran/renormtsp/mqttdiag"
	"github.com/katalvlaran/renormtsp/render"
	"github.com/katalvlaran/renormtsp/renorm"
	"github.com/katalvlaran/renormtsp/tsplib"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// errUsage reports bad command-line input.
var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "renormtsp: %v\n", err)
		}
		if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("renormtsp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath  = fs.String("config", "", "Path to YAML configuration file")
		inputPath   = fs.String("f", "", "TSPLIB problem file (overrides input.path)")
		iterations  = fs.Int("i", 0, "Maximum annealing iterations, 0 for no cap (overrides anneal.max_iterations)")
		seed        = fs.Int64("seed", 0, "Random seed (overrides anneal.seed)")
		logPath     = fs.String("log", "", "Per-iteration diagnostic log file")
		svgPath     = fs.String("svg", "", "Write the best tour as SVG")
		pngPath     = fs.String("png", "", "Write the best tour as PNG")
		tourPath    = fs.String("tour", "", "Write the best tour as a TSPLIB tour file")
		drawGrid    = fs.Bool("grid", false, "Draw the terminal grid in SVG and PNG output")
		metricsAddr = fs.String("metrics-addr", "", "Serve Prometheus metrics on this address")
		verbose     = fs.Bool("v", false, "Log every iteration")
		version     = fs.Bool("version", false, "Print version and exit")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *version {
		fmt.Fprintf(stdout, "renormtsp version: %s\n", Version)
		return nil
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	} else {
		cfg.ApplyEnv()
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "f":
			cfg.Input.Path = *inputPath
		case "i":
			cfg.Anneal.MaxIterations = *iterations
		case "seed":
			cfg.Anneal.Seed = *seed
		case "log":
			cfg.Output.Log = *logPath
		case "svg":
			cfg.Output.SVG = *svgPath
		case "png":
			cfg.Output.PNG = *pngPath
		case "tour":
			cfg.Output.Tour = *tourPath
		case "grid":
			cfg.Output.Grid = *drawGrid
		case "metrics-addr":
			cfg.Metrics.Listen = *metricsAddr
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Input.Path == "" {
		fs.Usage()
		return fmt.Errorf("%w: no input file (-f or input.path)", errUsage)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	runID := uuid.New().String()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With(slog.String("run", runID))

	return solve(ctx, cfg, runID, logger, stdout)
}

func solve(ctx context.Context, cfg *config.Config, runID string, logger *slog.Logger, stdout io.Writer) error {
	inst, err := readInstance(cfg.Input.Path)
	if err != nil {
		return err
	}
	logger.Info("instance loaded", slog.String("name", inst.Name), slog.Int("points", len(inst.Points)))

	rc, err := renorm.NewContext(inst.Points, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Input.Path, err)
	}
	builder, err := renorm.NewBuilder(cfg.RenormOptions())
	if err != nil {
		return err
	}
	opts := []anneal.Option{anneal.WithBuilder(builder), anneal.WithLogger(logger)}

	if cfg.Output.Log != "" {
		f, err := os.Create(cfg.Output.Log)
		if err != nil {
			return fmt.Errorf("creating diagnostic log: %w", err)
		}
		defer f.Close()
		tl := anneal.NewTextLog(f)
		defer func() {
			if err := tl.Err(); err != nil {
				logger.Warn("diagnostic log incomplete", slog.Any("error", err))
			}
		}()
		opts = append(opts, anneal.WithObserver(tl))
	}

	if cfg.Metrics.Listen != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		opts = append(opts, anneal.WithObserver(anneal.NewMetrics(reg)))
		shutdown, err := serveMetrics(cfg.Metrics.Listen, reg, logger)
		if err != nil {
			return err
		}
		defer shutdown()
	}

	if cfg.MQTT.Broker != "" {
		client, err := mqttdiag.Dial(cfg.MQTTSettings())
		if err != nil {
			logger.Warn("mqtt diagnostics disabled", slog.Any("error", err))
		} else {
			defer client.Disconnect(250)
			pubOpts := append(cfg.PublisherOptions(), mqttdiag.WithRunID(runID), mqttdiag.WithLogger(logger))
			pub := mqttdiag.NewPublisher(client, pubOpts...)
			logger.Info("mqtt diagnostics enabled", slog.String("topic", pub.IterationTopic()))
			opts = append(opts, anneal.WithObserver(pub))
		}
	}

	res, runErr := anneal.Run(ctx, rc, cfg.AnnealParams(), opts...)
	if runErr != nil && (!errors.Is(runErr, context.Canceled) || res.BestTour == nil) {
		return runErr
	}
	if runErr != nil {
		logger.Warn("interrupted, writing best tour so far")
	}

	fmt.Fprintf(stdout, "length %.6f rotation %.6f iterations %d accepted %d stop %s\n",
		res.BestLength, res.BestRotation, res.Iterations, res.Accepted, res.Stop)

	if err := writeOutputs(context.WithoutCancel(ctx), cfg, inst, rc, builder, res); err != nil {
		return err
	}

	return nil
}

func readInstance(path string) (*tsplib.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening problem: %w", err)
	}
	defer f.Close()
	inst, err := tsplib.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return inst, nil
}

func writeOutputs(ctx context.Context, cfg *config.Config, inst *tsplib.Instance, rc *renorm.Context, b *renorm.Builder, res anneal.Result) error {
	out := cfg.Output
	if out.Tour != "" {
		if err := writeFile(out.Tour, func(w io.Writer) error {
			return tsplib.WriteTour(w, inst.Name, res.BestTour, res.BestLength)
		}); err != nil {
			return err
		}
	}
	if out.SVG == "" && out.PNG == "" {
		return nil
	}

	d := render.Drawing{Points: inst.Points, Tour: res.BestTour, Rotation: res.BestRotation}
	if out.Grid {
		rc.Rotation = res.BestRotation
		h, err := b.Build(ctx, rc)
		if err != nil {
			return fmt.Errorf("rebuilding best grid: %w", err)
		}
		d.Grid = h.Terminal()
	}
	r := render.NewRenderer()
	if out.SVG != "" {
		if err := writeFile(out.SVG, func(w io.Writer) error { return r.RenderSVG(w, d) }); err != nil {
			return err
		}
	}
	if out.PNG != "" {
		if err := writeFile(out.PNG, func(w io.Writer) error { return r.RenderPNG(w, d) }); err != nil {
			return err
		}
	}

	return nil
}

func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// serveMetrics exposes reg on addr/metrics and returns a shutdown func.
func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listener: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", slog.Any("error", err))
		}
	}()
	logger.Info("serving metrics", slog.String("addr", ln.Addr().String()))

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
