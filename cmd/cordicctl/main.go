package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"

	"omibyte.io/cordic/mmio"
	"omibyte.io/cordic/sim"
	"omibyte.io/cordic/targets"
)

var (
	rootOpts = struct {
		verbose bool
		chip    string
	}{}

	logger = zap.NewNop()

	rootCmd = &cobra.Command{
		Use:          "cordicctl",
		Short:        "Exercise the STM32G4 CORDIC driver",
		Long:         "Run calculations, accuracy benchmarks and register decoding against a simulated STM32G4 CORDIC.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if rootOpts.verbose {
				logger, err = zap.NewDevelopment()
			} else {
				logger, err = zap.NewProduction()
			}
			if err != nil {
				return err
			}
			cmd.SetContext(logctx.NewContext(cmd.Context(), logger))
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootOpts.verbose, "verbose", "v", false, "development logging")
	rootCmd.PersistentFlags().StringVar(&rootOpts.chip, "chip", "stm32g474", "chip whose peripheral addresses are used")

	rootCmd.AddCommand(calcCmd, benchCmd, decodeCmd, targetsCmd)
}

// device creates a simulator with the peripherals at the addresses of the
// selected chip.
func device() (mmio.Bus, targets.TargetInfo, error) {
	target, err := targets.All().FindByChip(rootOpts.chip)
	if err != nil {
		return nil, target, err
	}
	cordicBase, err := target.Base("cordic")
	if err != nil {
		return nil, target, err
	}
	rccBase, err := target.Base("rcc")
	if err != nil {
		return nil, target, err
	}
	return sim.NewAt(logger, cordicBase, rccBase), target, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Sync()
}
