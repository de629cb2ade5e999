package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/hupe1980/bitgraph"
	"github.com/hupe1980/bitgraph/adjacency"
	"github.com/hupe1980/bitgraph/dimacs"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix = "BITGRAPH"

	configF          = "config"
	logLevelF        = "log-level"
	logFormatF       = "log-format"
	reprF            = "repr"
	sourceF          = "source"
	pushF            = "push"
	iterationsF      = "iterations"
	outDirF          = "out-dir"
	summaryF         = "summary"
	metricsTextfileF = "metrics-textfile"
	compressionF     = "compression"
	kF               = "k"

	defaultLogLevel  = "info"
	defaultLogFormat = "text"
	defaultRepr      = "bitset"

	configFlagUsage    = "YAML config file. Keys match flag names."
	logLevelFlagUsage  = "Log level: debug, info, warn or error."
	logFormatFlagUsage = "Log format: text or json."
	reprUsage          = "Adjacency representation: bitset, list or roaring."
	sourceUsage        = "Source vertex (0-based)."
)

// app carries per-invocation state set up by the root command.
type app struct {
	v      *viper.Viper
	logger *bitgraph.Logger
}

// NewCmd returns the root command.
func NewCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "bitgraph",
		Short:         "Bit-packed graph traversal toolkit.",
		Long:          `bitgraph runs BFS and DFS over DIMACS graphs stored as packed adjacency matrices, lists or roaring bitmaps.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().String(configF, "", configFlagUsage)
	rootCmd.PersistentFlags().String(logLevelF, defaultLogLevel, logLevelFlagUsage)
	rootCmd.PersistentFlags().String(logFormatF, defaultLogFormat, logFormatFlagUsage)

	rootCmd.AddCommand(
		TraverseCmd(a, "bfs"),
		TraverseCmd(a, "dfs"),
		BenchCmd(a),
		ConvertCmd(a),
		ColorCheckCmd(a),
		InfoCmd(a),
	)
	return rootCmd
}

// init builds the viper instance for the executing command. Precedence is
// flag, environment, config file, flag default.
func (a *app) init(cmd *cobra.Command) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	if cfgFile := v.GetString(configF); cfgFile != "" {
		v.SetConfigType("yaml")
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return err
		}
	}

	logger, err := newLogger(cmd.ErrOrStderr(), v.GetString(logLevelF), v.GetString(logFormatF))
	if err != nil {
		return err
	}

	a.v = v
	a.logger = logger
	return nil
}

func newLogger(w io.Writer, level, format string) (*bitgraph.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", logLevelF, level, err)
	}
	switch strings.ToLower(format) {
	case "text":
		return bitgraph.NewTextLoggerTo(w, lvl), nil
	case "json":
		return bitgraph.NewJSONLoggerTo(w, lvl), nil
	default:
		return nil, fmt.Errorf("invalid %s %q: want text or json", logFormatF, format)
	}
}

// loadGraph reads a DIMACS file or a bitset snapshot, detected by its magic.
func loadGraph(path string, kind adjacency.Kind) (adjacency.Graph, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	br := bufio.NewReader(fh)
	if magic, err := br.Peek(len(adjacency.SnapshotMagic)); err == nil && string(magic) == adjacency.SnapshotMagic {
		if kind != adjacency.KindBitset {
			return nil, fmt.Errorf("%s: snapshots load only as %s, not %s: %w", path, adjacency.KindBitset, kind, bitgraph.ErrInvalidArgument)
		}
		g, err := adjacency.ReadSnapshot(br)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return g, nil
	}

	f, err := dimacs.Read(br)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f.Build(kind)
}

// graphName derives a short label from a graph path: "graphs/graph50.txt"
// becomes "50".
func graphName(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if trimmed := strings.TrimPrefix(name, "graph"); trimmed != "" {
		return trimmed
	}
	return name
}
