package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"omibyte.io/cordic/chip/stm32g4"
	"omibyte.io/cordic/peripheral/cordic"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <csr>",
	Short: "Decode a control register value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		word, err := strconv.ParseUint(args[0], 0, 32)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		layout := stm32g4.CORDIC_CSR_REG_Layout
		fmt.Fprintf(out, "%s 0x%08x\n", layout.Name(), word)
		printFields(out, layout.Decode(uint32(word)))

		fn, _ := layout.Get(uint32(word), "FUNC")
		if desc, err := cordic.Lookup(cordic.Function(fn)); err == nil {
			fmt.Fprintf(out, "function %v, %d argument(s), %d result(s)\n", desc.Function, desc.Args, desc.Results)
		}
		return nil
	},
}
