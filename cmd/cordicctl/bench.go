package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.brendoncarroll.net/stdctx/logctx"

	"omibyte.io/cordic/bench"
	"omibyte.io/cordic/peripheral/cordic"
)

var (
	benchOpts = struct {
		functions []string
		samples   int
		output    string
		q15       bool
		precision uint8
	}{}

	benchCmd = &cobra.Command{
		Use:   "bench",
		Short: "Compare the co-processor against the math package",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			config := bench.Config{
				Samples:   benchOpts.samples,
				Half:      benchOpts.q15,
				Precision: benchOpts.precision,
			}
			for _, name := range benchOpts.functions {
				fn, err := cordic.ParseFunction(name)
				if err != nil {
					return err
				}
				config.Functions = append(config.Functions, fn)
			}

			bus, _, err := device()
			if err != nil {
				return err
			}
			config.Bus = bus

			report, err := bench.Run(ctx, config)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FUNCTION\tMAX\tMEAN\tSTDDEV\tP99\tCORDIC\tMATH")
			for _, r := range report.Results {
				fmt.Fprintf(w, "%v\t%.3g\t%.3g\t%.3g\t%.3g\t%v\t%v\n",
					r.Function, r.MaxError, r.MeanError, r.StdDev, r.P99Error, r.Elapsed, r.Reference)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if benchOpts.output == "" {
				return nil
			}
			f, err := os.Create(benchOpts.output)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := bench.WriteCSV(f, report); err != nil {
				return err
			}
			logctx.Infof(ctx, "wrote %s", benchOpts.output)
			return f.Close()
		},
	}
)

func init() {
	benchCmd.Flags().StringSliceVarP(&benchOpts.functions, "func", "f", nil, "functions to measure, all if empty")
	benchCmd.Flags().IntVarP(&benchOpts.samples, "samples", "n", 256, "samples per function")
	benchCmd.Flags().StringVarP(&benchOpts.output, "out", "o", "", "write the samples to a CSV file")
	benchCmd.Flags().BoolVar(&benchOpts.q15, "q15", false, "use q1.15 instead of q1.31")
	benchCmd.Flags().Uint8VarP(&benchOpts.precision, "precision", "p", cordic.PrecisionNormal, "iterations divided by four")
}
