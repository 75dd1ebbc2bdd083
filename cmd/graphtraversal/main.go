// Command graphtraversal generates a random connected digraph and prints it,
// the shortest path between two random nodes, and the graph's eccentricity,
// radius and diameter.
//
// Usage:
//
//	graphtraversal -N <nodes> -S <edges> [--seed n] [--config file.yaml]
package main

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphtraversal/builder"
	"github.com/katalvlaran/graphtraversal/core"
	"github.com/katalvlaran/graphtraversal/dijkstra"
	"github.com/katalvlaran/graphtraversal/internal/config"
	"github.com/katalvlaran/graphtraversal/internal/observability"
	"github.com/katalvlaran/graphtraversal/internal/report"
	"github.com/katalvlaran/graphtraversal/metrics"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:          "graphtraversal",
		Short:        "Generate a random connected digraph and report paths and metrics",
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return err
			}
			if err = cfg.Validate(); err != nil {
				return err
			}
			logger := observability.NewLogger(errOut, cfg.Log.Level, cfg.Log.Format).
				With(slog.String("run_id", uuid.NewString()))
			slog.SetDefault(logger)

			return run(cmd.Context(), cfg, out, logger)
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	f := cmd.Flags()
	f.IntP("nodes", "N", 0, "Number of nodes")
	f.IntP("edges", "S", 0, "Number of edges (at least nodes-1)")
	f.Int64("seed", 0, "Random seed, 0 picks one from the clock")
	f.Int64("min-weight", builder.DefaultMinWeight, "Smallest edge weight")
	f.Int64("max-weight", builder.DefaultMaxWeight, "Largest edge weight")
	f.String("log-level", "info", "Log level: debug, info, warn, error")
	f.String("log-format", "text", "Log format: text or json")
	f.String("otlp-endpoint", "", "OTLP gRPC endpoint for traces, empty disables export")
	f.StringVar(&configPath, "config", "", "Config file path")

	return cmd
}

// run generates the graph and writes the report to out.
func run(ctx context.Context, cfg *config.Config, out io.Writer, log *slog.Logger) (err error) {
	tp, err := observability.InitTracing(ctx, &observability.TracingConfig{
		ServiceName:    cfg.Tracing.ServiceName,
		ServiceVersion: version,
		OTLPEndpoint:   cfg.Tracing.Endpoint,
		SampleRate:     cfg.Tracing.SampleRate,
	})
	if err != nil {
		return err
	}
	defer func() {
		if sErr := tp.Shutdown(context.WithoutCancel(ctx)); sErr != nil && err == nil {
			err = sErr
		}
	}()

	n, s := cfg.Graph.Nodes, cfg.Graph.Edges
	seed := cfg.Graph.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	// one stream for the graph and the random picks, so a seed replays the whole run
	rng := rand.New(rand.NewSource(seed))
	log.Info("run started", slog.Int("nodes", n), slog.Int("edges", s), slog.Int64("seed", seed))

	_, span := observability.StartGenerateSpan(ctx, n, s, seed)
	g, err := builder.Generate(n, s,
		builder.WithRand(rng),
		builder.WithUniformWeight(cfg.Graph.MinWeight, cfg.Graph.MaxWeight),
		builder.WithLogger(log),
	)
	observability.RecordError(span, err)
	span.End()
	if err != nil {
		return err
	}
	if err = report.WriteGraph(out, g); err != nil {
		return err
	}

	if n >= 2 {
		from, to := randomPair(rng, n)
		if err = shortestPath(ctx, out, g, from, to); err != nil {
			return err
		}
	}

	v := core.NodeID(rng.Intn(n) + 1)
	_, span = observability.StartMetricsSpan(ctx, n)
	summary, err := metrics.Summarize(g)
	observability.RecordError(span, err)
	if err == nil {
		observability.RecordMetrics(span, summary.Radius, summary.Diameter)
	}
	span.End()
	if err != nil {
		return err
	}
	log.Info("graph metrics",
		slog.Int64("radius", summary.Radius),
		slog.Int64("diameter", summary.Diameter),
		slog.Any("center", summary.Center))

	return report.WriteProperties(out, v, summary)
}

// shortestPath prints the shortest path between from and to.
func shortestPath(ctx context.Context, out io.Writer, g *core.Graph, from, to core.NodeID) error {
	_, span := observability.StartShortestPathSpan(ctx, int(from), int(to))
	defer span.End()

	res, err := dijkstra.Dijkstra(g, from)
	if err != nil {
		observability.RecordError(span, err)
		return err
	}
	path := res.PathTo(to)
	d := res.DistanceTo(to)
	length, reachable := d.Value()
	observability.RecordPath(span, max(len(path)-1, 0), length, reachable)

	return report.WritePath(out, from, to, path, d)
}

// randomPair draws two distinct nodes from 1..n, n >= 2.
func randomPair(rng *rand.Rand, n int) (core.NodeID, core.NodeID) {
	from := rng.Intn(n) + 1
	to := rng.Intn(n-1) + 1
	if to >= from {
		to++
	}

	return core.NodeID(from), core.NodeID(to)
}
