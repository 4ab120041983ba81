package main

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"omibyte.io/cordic/fixed"
	"omibyte.io/cordic/mmio"
	"omibyte.io/cordic/peripheral"
	"omibyte.io/cordic/peripheral/cordic"
	"omibyte.io/cordic/register"
	"omibyte.io/cordic/targets"
)

var (
	calcOpts = struct {
		q15       bool
		degrees   bool
		precision uint8
	}{}

	calcCmd = &cobra.Command{
		Use:   "calc <function> <arg1> [arg2]",
		Short: "Run a single calculation",
		Long: `Run a single calculation and print the decoded results and the control register.

Cosine and sine take an angle and an optional modulus, phase and modulus take the
x and y coordinate of a vector, all other functions take a single value.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, err := cordic.ParseFunction(args[0])
			if err != nil {
				return err
			}

			values := make([]float64, len(args)-1)
			for i, arg := range args[1:] {
				if values[i], err = strconv.ParseFloat(arg, 64); err != nil {
					return fmt.Errorf("argument %d: %w", i+1, err)
				}
			}

			bus, target, err := device()
			if err != nil {
				return err
			}

			if calcOpts.q15 {
				return calc[int16](cmd.OutOrStdout(), bus, target, fn, values)
			}
			return calc[int32](cmd.OutOrStdout(), bus, target, fn, values)
		},
	}
)

func init() {
	calcCmd.Flags().BoolVar(&calcOpts.q15, "q15", false, "use q1.15 instead of q1.31")
	calcCmd.Flags().BoolVarP(&calcOpts.degrees, "degrees", "d", false, "angles are given in degrees")
	calcCmd.Flags().Uint8VarP(&calcOpts.precision, "precision", "p", cordic.PrecisionNormal, "iterations divided by four")
}

func calc[T cordic.Word](out io.Writer, bus mmio.Bus, target targets.TargetInfo, fn cordic.Function, values []float64) error {
	cordicBase, _ := target.Base("cordic")
	rccBase, _ := target.Base("rcc")

	c := cordic.NewAt[T](bus, cordicBase, rccBase)
	c.EnableClock()
	if err := c.Configure(cordic.Config{Precision: calcOpts.precision}); err != nil {
		return err
	}

	op, err := operation[T](fn, values)
	if err != nil {
		return err
	}

	res, err := c.Calculate(op)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%v (%v)\n", fn, op.Arg1().Format())
	fmt.Fprintf(out, "  scale:     %d\n", op.Scale())
	fmt.Fprintf(out, "  result:    %.9g (raw 0x%08x)\n", res.Float(), res.Result().Word())
	if q, ok := res.SecondaryResult(); ok {
		fmt.Fprintf(out, "  secondary: %.9g (raw 0x%08x)\n", q.Float(), q.Word())
	}

	csr := register.New(c.Registers().CSR.Layout(), c.Registers().CSR.Register32)
	fmt.Fprintf(out, "  csr:       0x%08x\n", c.Registers().CSR.Get())
	printFields(out, csr.Decode())
	return nil
}

func operation[T cordic.Word](fn cordic.Function, values []float64) (*cordic.Operation[T], error) {
	op, err := cordic.NewOperation[T](fn)
	if err != nil {
		return nil, err
	}

	switch op.Descriptor().Kind {
	case cordic.KindAngle:
		angle := values[0]
		if calcOpts.degrees {
			angle *= math.Pi / 180
		}
		if err := op.SetAngle(fixed.NewAngle[T](angle)); err != nil {
			return nil, err
		}
		if len(values) > 1 {
			err = op.SetModulus(fixed.NewModulus[T](values[1]))
		}
	case cordic.KindVector:
		if len(values) < 2 {
			return nil, fmt.Errorf("%v needs x and y: %w", fn, peripheral.ErrInvalidArgument)
		}
		err = op.SetVector(fixed.NewVec2[T](values[0], values[1]))
	default:
		if len(values) > 1 {
			return nil, fmt.Errorf("%v takes a single argument: %w", fn, peripheral.ErrInvalidArgument)
		}
		err = op.SetValue(values[0])
	}
	return op, err
}

func printFields(out io.Writer, values []register.FieldValue) {
	for _, v := range values {
		fmt.Fprintf(out, "    %-14v %#x\n", v.Field, v.Value)
	}
}
