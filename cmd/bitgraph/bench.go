package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/hupe1980/bitgraph"
	"github.com/hupe1980/bitgraph/adjacency"
	"github.com/hupe1980/bitgraph/bench"
	"github.com/hupe1980/bitgraph/dimacs"
	"github.com/hupe1980/bitgraph/internal/fs"
	"github.com/hupe1980/bitgraph/metrics/prometheus"
	"github.com/hupe1980/bitgraph/traverse"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

const (
	iterationsUsage      = "Timed runs per kernel and representation."
	benchReprUsage       = "Representations to measure (repeatable). Defaults to all."
	outDirUsage          = "Directory for output_<kernel>_<repr>.txt files."
	summaryUsage         = "Write a result summary to this file."
	metricsTextfileUsage = "Write Prometheus metrics in text format to this file."
)

// BenchCmd returns the bench command.
func BenchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench <graph>...",
		Short: "Time BFS and DFS over every representation",
		Long:  `Builds each graph in every selected representation, times both kernels and renders a table of mean, min and max run times.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBench(cmd, args)
		},
	}

	cmd.Flags().Int(iterationsF, bench.DefaultIterations, iterationsUsage)
	cmd.Flags().StringSlice(reprF, nil, benchReprUsage)
	cmd.Flags().Int(sourceF, 0, sourceUsage)
	cmd.Flags().String(pushF, traverse.PushAll.String(), pushUsage)
	cmd.Flags().String(outDirF, "", outDirUsage)
	cmd.Flags().String(summaryF, "", summaryUsage)
	cmd.Flags().String(metricsTextfileF, "", metricsTextfileUsage)
	return cmd
}

func (a *app) runBench(cmd *cobra.Command, paths []string) error {
	var kinds []adjacency.Kind
	for _, s := range a.v.GetStringSlice(reprF) {
		k, err := adjacency.ParseKind(s)
		if err != nil {
			return err
		}
		kinds = append(kinds, k)
	}
	push, err := traverse.ParsePushPolicy(a.v.GetString(pushF))
	if err != nil {
		return err
	}

	var metrics bitgraph.MetricsCollector = bitgraph.NoopMetricsCollector{}
	textfile := a.v.GetString(metricsTextfileF)
	var collector *prometheus.Collector
	if textfile != "" {
		collector = prometheus.New()
		metrics = collector
	}

	outDir := a.v.GetString(outDirF)

	runner := bench.New(
		bench.WithIterations(a.v.GetInt(iterationsF)),
		bench.WithSource(a.v.GetInt(sourceF)),
		bench.WithKinds(kinds...),
		bench.WithPushPolicy(push),
		bench.WithOutputDir(outDir),
		bench.WithLogger(a.logger),
		bench.WithMetrics(metrics),
	)

	var all []bench.Measurement
	for _, path := range paths {
		f, err := dimacs.ReadFile(path)
		if err != nil {
			return err
		}
		ms, err := runner.Run(cmd.Context(), graphName(path), f)
		if err != nil {
			return err
		}
		all = append(all, ms...)
	}

	renderMeasurements(cmd, all)

	if summary := a.v.GetString(summaryF); summary != "" {
		if err := writeSummary(summary, all); err != nil {
			return err
		}
	}
	if collector != nil {
		if err := collector.WriteTextfile(textfile); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}

func renderMeasurements(cmd *cobra.Command, ms []bench.Measurement) {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Graph", "Kernel", "Repr", "Vertices", "Edges", "Build", "Mean", "Min", "Max", "Reached", "Peak"})
	for _, m := range ms {
		table.Append([]string{
			m.Graph,
			string(m.Kernel),
			m.Kind.String(),
			strconv.Itoa(m.Vertices),
			strconv.Itoa(m.Edges),
			m.Build.String(),
			m.Mean.String(),
			m.Min.String(),
			m.Max.String(),
			strconv.Itoa(m.Reached),
			strconv.Itoa(m.PeakFrontier),
		})
	}
	table.Render()
}

func writeSummary(path string, ms []bench.Measurement) error {
	_, err := fs.WriteFileAtomic(fs.Default, path, func(w io.Writer) error {
		return bench.WriteSummary(w, ms)
	})
	return err
}
