package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestCalc(t *testing.T) {
	out, err := execute(t, "calc", "cos", "90", "--degrees")
	require.NoError(t, err)
	assert.Contains(t, out, "cosine (Q1.31)")
	assert.Contains(t, out, "result:")
	assert.Contains(t, out, "secondary:")
	assert.Contains(t, out, "NARGS[20]")
}

func TestCalcQ15(t *testing.T) {
	out, err := execute(t, "calc", "sqrt", "1.5", "--q15")
	require.NoError(t, err)
	assert.Contains(t, out, "square-root (Q1.15)")
	assert.Contains(t, out, "scale:     1")
	assert.NotContains(t, out, "secondary:")
}

func TestCalcErrors(t *testing.T) {
	_, err := execute(t, "calc", "tan", "1")
	assert.Error(t, err)

	_, err = execute(t, "calc", "phase", "1")
	assert.Error(t, err)

	_, err = execute(t, "calc", "ln", "x")
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	out, err := execute(t, "decode", "0x00180069")
	require.NoError(t, err)
	assert.Contains(t, out, "CSR 0x00180069")
	assert.Contains(t, out, "PRECISION[7:4]")
	assert.Contains(t, out, "function square-root, 1 argument(s), 1 result(s)")
}

func TestTargets(t *testing.T) {
	out, err := execute(t, "targets")
	require.NoError(t, err)
	assert.Contains(t, out, "stm32g4")
	assert.Contains(t, out, "170MHz")
	assert.Contains(t, out, "armv7em")
	assert.Contains(t, out, "+dsp,+vfp4d16sp,+thumb-mode")
	assert.Contains(t, out, "0x40020c00")
}

func TestBenchCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "performance.csv")
	out, err := execute(t, "bench", "-f", "sqrt", "-f", "atan", "-n", "8", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "square-root")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 17)
}
