package bench

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omibyte.io/cordic/internal/testutil"
	"omibyte.io/cordic/peripheral"
	"omibyte.io/cordic/peripheral/cordic"
)

func TestRunAll(t *testing.T) {
	ctx := testutil.Context(t)
	report, err := Run(ctx, Config{Samples: 64})
	require.NoError(t, err)
	require.Len(t, report.Results, len(cordic.Functions()))

	for _, r := range report.Results {
		assert.Len(t, r.Samples, 64)
		assert.Less(t, r.MaxError, 1e-5, "%v", r.Function)
		assert.LessOrEqual(t, r.MeanError, r.MaxError)
		assert.LessOrEqual(t, r.P99Error, r.MaxError)
	}
}

func TestRunHalf(t *testing.T) {
	ctx := testutil.Context(t)
	report, err := Run(ctx, Config{
		Functions: []cordic.Function{cordic.Sine, cordic.SquareRoot},
		Samples:   32,
		Half:      true,
		Bus:       testutil.NewDevice(t),
	})
	require.NoError(t, err)
	require.Len(t, report.Results, 2)
	for _, r := range report.Results {
		assert.Less(t, r.MaxError, 2e-3, "%v", r.Function)
	}
}

func TestRunInvalid(t *testing.T) {
	ctx := testutil.Context(t)
	_, err := Run(ctx, Config{})
	assert.ErrorIs(t, err, peripheral.ErrInvalidConfig)

	_, err = Run(ctx, Config{Samples: 4, Precision: 20})
	assert.ErrorIs(t, err, peripheral.ErrInvalidConfig)
}

func TestWriteCSV(t *testing.T) {
	ctx := testutil.Context(t)
	report, err := Run(ctx, Config{Functions: []cordic.Function{cordic.Arctangent}, Samples: 3})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, report))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"SUBJ", "INPUT", "REFERENCE", "CORDIC", "ERROR"}, rows[0])
	assert.Equal(t, "arctangent", rows[1][0])
}
