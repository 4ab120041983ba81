package svd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omibyte.io/cordic/cmd/csp-gen/types"
)

func TestDecode(t *testing.T) {
	f, err := os.Open(filepath.Join("..", "testdata", "STM32G4_CORDIC.svd"))
	require.NoError(t, err)
	defer f.Close()

	device, err := Decode(f)
	require.NoError(t, err)

	assert.Equal(t, "STM32G4", device.Series)
	assert.Equal(t, "1.2", device.Version)
	assert.Equal(t, "CM4", device.CPU.Name)
	assert.Equal(t, types.Integer(0x20), device.RegisterSize)

	require.Len(t, device.Peripherals.Elements, 2)
	cordic := device.Peripherals.Elements[0]
	assert.Equal(t, "CORDIC", cordic.Name)
	assert.Equal(t, types.Integer(0x40020C00), cordic.BaseAddress)
	assert.NotEmpty(t, cordic.Registers.RegisterElements)
	assert.Equal(t, types.Integer(0x40021000), device.Peripherals.Elements[1].BaseAddress)
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode(strings.NewReader("<device><name>x</name>"))
	assert.Error(t, err)
}
