package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"omibyte.io/cordic/targets"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List the supported chips",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SERIES\tCPU\tARCH\tFLOAT\tFEATURES\tCLOCK\tCORDIC\tRCC\tCHIPS")
		for _, t := range targets.All() {
			cordicBase, _ := t.Base("cordic")
			rccBase, _ := t.Base("rcc")
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%dMHz\t%#x\t%#x\t%s\n",
				t.Series, t.Cpu, t.Architecture, t.Float, t.FormatFeatureString(),
				t.Clock/1_000_000, cordicBase, rccBase, strings.Join(t.Chips, ","))
		}
		return w.Flush()
	},
}
