// Package bench compares the co-processor against the math package over the
// input domain of each function.
package bench

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"omibyte.io/cordic/fixed"
	"omibyte.io/cordic/mmio"
	"omibyte.io/cordic/peripheral"
	"omibyte.io/cordic/peripheral/cordic"
	"omibyte.io/cordic/sim"
)

// vectorLength is the length of the vectors fed to phase and modulus.
const vectorLength = 0.8

type Config struct {
	// Functions to measure, all of them if empty.
	Functions []cordic.Function
	// Samples per function.
	Samples int
	// Half selects q1.15 instead of q1.31.
	Half bool
	// Precision is passed on to the driver.
	Precision uint8
	// Bus the co-processor is reached through. If nil every function runs
	// concurrently on a simulator of its own.
	Bus mmio.Bus
}

type Sample struct {
	Input     float64
	Reference float64
	Value     float64
	Error     float64
}

type Result struct {
	Function cordic.Function
	Samples  []Sample

	MaxError  float64
	MeanError float64
	StdDev    float64
	P99Error  float64

	// Elapsed is the time spent in the driver, Reference the time spent in
	// the math package.
	Elapsed   time.Duration
	Reference time.Duration
}

type Report struct {
	Half    bool
	Results []Result
}

func Run(ctx context.Context, config Config) (Report, error) {
	if config.Samples <= 0 {
		return Report{}, fmt.Errorf("samples must be positive: %w", peripheral.ErrInvalidConfig)
	}
	if len(config.Functions) == 0 {
		config.Functions = cordic.Functions()
	}

	if config.Half {
		return run[int16](ctx, config)
	}
	return run[int32](ctx, config)
}

func run[T cordic.Word](ctx context.Context, config Config) (Report, error) {
	report := Report{Half: config.Half, Results: make([]Result, len(config.Functions))}

	// A shared bus is measured function by function, otherwise every function
	// gets a simulator of its own.
	eg, ctx := errgroup.WithContext(ctx)
	if config.Bus != nil {
		eg.SetLimit(1)
	}

	for i, fn := range config.Functions {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			bus := config.Bus
			if bus == nil {
				bus = sim.New(nil)
			}
			c := cordic.New[T](bus)
			c.EnableClock()
			if err := c.Configure(cordic.Config{Precision: config.Precision}); err != nil {
				return err
			}

			result, err := measure(c, fn, config.Samples)
			if err != nil {
				return fmt.Errorf("%v: %w", fn, err)
			}
			logctx.Info(ctx, "measured",
				zap.Stringer("func", fn),
				zap.Int("samples", len(result.Samples)),
				zap.Float64("max_error", result.MaxError),
				zap.Float64("mean_error", result.MeanError),
				zap.Duration("elapsed", result.Elapsed))
			report.Results[i] = result
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return Report{}, err
	}
	return report, nil
}

func measure[T cordic.Word](c *cordic.CORDIC[T], fn cordic.Function, n int) (Result, error) {
	desc, err := cordic.Lookup(fn)
	if err != nil {
		return Result{}, err
	}
	op, err := cordic.NewOperation[T](fn)
	if err != nil {
		return Result{}, err
	}
	res := op.NewResult()

	lo, hi := desc.Domain.Lower, desc.Domain.Upper
	if desc.Kind != cordic.KindValue {
		lo, hi = -math.Pi, math.Pi
	}

	result := Result{Function: fn, Samples: make([]Sample, n)}
	errs := make([]float64, n)
	for i := range result.Samples {
		// Sample centres keep clear of the edges of the domain
		x := lo + (hi-lo)*(float64(i)+0.5)/float64(n)

		switch desc.Kind {
		case cordic.KindAngle:
			err = op.SetAngle(fixed.NewAngle[T](x))
		case cordic.KindVector:
			err = op.SetVector(fixed.NewVec2[T](vectorLength*math.Cos(x), vectorLength*math.Sin(x)))
		default:
			err = op.SetValue(x)
		}
		if err != nil {
			return result, err
		}

		start := time.Now()
		if err := c.CalculateInto(op, res); err != nil {
			return result, err
		}
		result.Elapsed += time.Since(start)

		start = time.Now()
		ref := Reference(fn, x)
		result.Reference += time.Since(start)

		s := Sample{Input: x, Reference: ref, Value: res.Float()}
		s.Error = math.Abs(s.Value - s.Reference)
		result.Samples[i] = s
		errs[i] = s.Error
	}

	result.MaxError = floats.Max(errs)
	result.MeanError = stat.Mean(errs, nil)
	if n > 1 {
		result.StdDev = stat.StdDev(errs, nil)
	}
	slices.Sort(errs)
	result.P99Error = stat.Quantile(0.99, stat.Empirical, errs, nil)
	return result, nil
}

// Reference computes the primary result of fn in floating point. Phase and
// modulus take the angle of a vector of length 0.8.
func Reference(fn cordic.Function, x float64) float64 {
	switch fn {
	case cordic.Cosine:
		return math.Cos(x)
	case cordic.Sine:
		return math.Sin(x)
	case cordic.Phase:
		return x
	case cordic.Modulus:
		return vectorLength
	case cordic.Arctangent:
		return math.Atan(x)
	case cordic.HyperbolicCosine:
		return math.Cosh(x)
	case cordic.HyperbolicSine:
		return math.Sinh(x)
	case cordic.Arctanh:
		return math.Atanh(x)
	case cordic.NaturalLogarithm:
		return math.Log(x)
	case cordic.SquareRoot:
		return math.Sqrt(x)
	}
	return math.NaN()
}

// WriteCSV writes one row per sample.
func WriteCSV(w io.Writer, report Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"SUBJ", "INPUT", "REFERENCE", "CORDIC", "ERROR"}); err != nil {
		return err
	}

	for _, r := range report.Results {
		for _, s := range r.Samples {
			row := []string{
				r.Function.String(),
				formatFloat(s.Input),
				formatFloat(s.Reference),
				formatFloat(s.Value),
				formatFloat(s.Error),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
