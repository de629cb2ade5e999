package main

import (
	"fmt"
	"io"
	"time"

	"github.com/hupe1980/bitgraph/adjacency"
	"github.com/hupe1980/bitgraph/dimacs"
	"github.com/hupe1980/bitgraph/internal/fs"
	"github.com/spf13/cobra"
)

const compressionUsage = "Snapshot payload compression: none, lz4 or zstd."

// ConvertCmd returns the convert command.
func ConvertCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <graph> <snapshot>",
		Short: "Write a DIMACS graph as a bitset snapshot",
		Long:  `Builds the packed adjacency matrix of a DIMACS graph and writes it as a binary snapshot that bfs, dfs and color-check load directly.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConvert(cmd, args[0], args[1])
		},
	}
	cmd.Flags().String(compressionF, "zstd", compressionUsage)
	return cmd
}

func (a *app) runConvert(cmd *cobra.Command, src, dst string) error {
	compression, err := adjacency.ParseCompression(a.v.GetString(compressionF))
	if err != nil {
		return err
	}

	f, err := dimacs.ReadFile(src)
	if err != nil {
		return err
	}
	start := time.Now()
	g, err := f.Build(adjacency.KindBitset)
	a.logger.LogBuild(cmd.Context(), adjacency.KindBitset.String(), f.Vertices, len(f.Edges), time.Since(start), err)
	if err != nil {
		return err
	}

	bs := g.(*adjacency.Bitset)
	n, err := fs.WriteFileAtomic(fs.Default, dst, func(w io.Writer) error {
		_, err := bs.WriteSnapshot(w, compression)
		return err
	})
	a.logger.LogSnapshot(cmd.Context(), dst, n, err)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %d vertices, %d bytes\n", dst, f.Vertices, n)
	return err
}
