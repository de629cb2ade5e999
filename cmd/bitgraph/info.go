package main

import (
	"runtime"
	"strconv"

	"github.com/hupe1980/bitgraph/internal/cpu"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// InfoCmd returns the info command.
func InfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show bit-scan hardware support",
		Long:  `Reports which instruction backs the trailing-zero count used for neighbor enumeration and whether popcount runs in hardware.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.logger.DebugContext(cmd.Context(), "cpu capabilities", "summary", cpu.Describe())

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Feature", "Value"})
			table.AppendBulk([][]string{
				{"arch", runtime.GOARCH},
				{"bitscan", cpu.ActiveBitScan().String()},
				{"bitscan_hw", strconv.FormatBool(cpu.HardwareBitScan())},
				{"popcount_hw", strconv.FormatBool(cpu.HardwarePopcount())},
			})
			table.Render()
			return nil
		},
	}
}
