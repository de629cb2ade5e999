package main

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/hupe1980/bitgraph/adjacency"
	"github.com/hupe1980/bitgraph/traverse"
	"github.com/spf13/cobra"
)

const pushUsage = "DFS push policy: all pushes every unvisited neighbor, unique pushes each vertex once."

// TraverseCmd returns the bfs or dfs command.
func TraverseCmd(a *app, kernel string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   kernel + " <graph>",
		Short: fmt.Sprintf("Run %s from a source vertex", strings.ToUpper(kernel)),
		Long: fmt.Sprintf(`Runs %s over a DIMACS graph or bitset snapshot and prints one "<vertex> <value>" line per vertex.
Values are hop distances for bfs and 1-based discovery ranks for dfs; -1 marks unreached vertices.`, strings.ToUpper(kernel)),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTraverse(cmd, traverse.Kernel(kernel), args[0])
		},
	}

	cmd.Flags().String(reprF, defaultRepr, reprUsage)
	cmd.Flags().Int(sourceF, 0, sourceUsage)
	if kernel == string(traverse.KernelDFS) {
		cmd.Flags().String(pushF, traverse.PushAll.String(), pushUsage)
	}
	return cmd
}

func (a *app) runTraverse(cmd *cobra.Command, kernel traverse.Kernel, path string) error {
	kind, err := adjacency.ParseKind(a.v.GetString(reprF))
	if err != nil {
		return err
	}
	push, err := traverse.ParsePushPolicy(a.v.GetString(pushF))
	if err != nil {
		return err
	}
	source := a.v.GetInt(sourceF)

	start := time.Now()
	g, err := loadGraph(path, kind)
	a.logger.LogBuild(cmd.Context(), kind.String(), vertexCount(g), edgeCount(g), time.Since(start), err)
	if err != nil {
		return err
	}

	start = time.Now()
	res, err := traverse.New(traverse.WithPushPolicy(push)).Run(kernel, g, source)
	if err != nil {
		a.logger.LogTraversal(cmd.Context(), string(kernel), kind.String(), source, 0, time.Since(start), err)
		return err
	}
	a.logger.LogTraversal(cmd.Context(), string(kernel), kind.String(), source, res.Reached, time.Since(start), nil)

	w := bufio.NewWriter(cmd.OutOrStdout())
	for v, val := range res.Values {
		fmt.Fprintf(w, "%d %d\n", v, val)
	}
	return w.Flush()
}

func vertexCount(g adjacency.Graph) int {
	if g == nil {
		return 0
	}
	return g.VertexCount()
}

func edgeCount(g adjacency.Graph) int {
	if g == nil {
		return 0
	}
	return g.EdgeCount()
}
