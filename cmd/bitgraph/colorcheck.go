package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/hupe1980/bitgraph/adjacency"
	"github.com/hupe1980/bitgraph/coloring"
	"github.com/hupe1980/bitgraph/dimacs"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

const kUsage = "Expected number of colors; 0 accepts any."

var errInvalidColoring = errors.New("coloring is not valid")

// ColorCheckCmd returns the color-check command.
func ColorCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "color-check <graph> <colors>",
		Short: "Verify an equitable graph coloring",
		Long: `Checks that no edge joins two vertices of the same color, that color class sizes differ by at most one and, with --k, that exactly k colors are used.
The colors file holds one whitespace-separated integer per vertex. Colors are stored packed at the vertex id width, so each must lie in [0, n) for a graph of n vertices; relabel larger colors before checking.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runColorCheck(cmd, args[0], args[1])
		},
	}
	cmd.Flags().Int(kF, 0, kUsage)
	cmd.Flags().String(reprF, defaultRepr, reprUsage)
	return cmd
}

func (a *app) runColorCheck(cmd *cobra.Command, graphPath, colorsPath string) error {
	kind, err := adjacency.ParseKind(a.v.GetString(reprF))
	if err != nil {
		return err
	}
	g, err := loadGraph(graphPath, kind)
	if err != nil {
		return err
	}

	plain, err := dimacs.ReadColorsFile(colorsPath)
	if err != nil {
		return err
	}
	if len(plain) > g.VertexCount() {
		a.logger.Warn("extra colors ignored", "colors", len(plain), "vertices", g.VertexCount())
		plain = plain[:g.VertexCount()]
	}
	colors, err := coloring.FromInts(plain)
	if err != nil {
		return err
	}

	rep, err := coloring.Validate(g, colors)
	if err != nil {
		return err
	}

	k := a.v.GetInt(kF)
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Check", "Result"})
	table.AppendBulk([][]string{
		{"Proper", strconv.FormatBool(rep.Proper)},
		{"Conflicts", strconv.Itoa(rep.ConflictCount)},
		{"Equitable", strconv.FormatBool(rep.Equitable)},
		{"Colors used", strconv.Itoa(rep.ColorsUsed)},
		{"Class sizes", fmt.Sprintf("%d..%d", rep.MinClass, rep.MaxClass)},
	})
	if k > 0 {
		table.Append([]string{"Expected colors", strconv.Itoa(k)})
	}
	table.Render()

	for _, c := range rep.Conflicts {
		// 1-based ids, as in the graph file.
		fmt.Fprintf(cmd.OutOrStdout(), "conflict: %d-%d color %d\n", c.U+1, c.V+1, c.Color)
	}

	if !rep.Valid(k) {
		return errInvalidColoring
	}
	return nil
}
