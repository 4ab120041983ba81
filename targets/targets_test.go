package targets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omibyte.io/cordic/chip/stm32g4"
)

func TestFindByChip(t *testing.T) {
	target, err := All().FindByChip("STM32G474")
	require.NoError(t, err)
	assert.Equal(t, "stm32g4", target.Series)
	assert.Equal(t, "cortex-m4", target.Cpu)
	assert.Equal(t, "armv7em", target.Architecture)
	assert.Equal(t, "hard", target.Float)
	assert.Equal(t, uint32(170_000_000), target.Clock)
	assert.Equal(t, "+dsp,+vfp4d16sp,+thumb-mode", target.FormatFeatureString())

	_, err = All().FindByChip("stm32f103")
	assert.ErrorIs(t, err, ErrChipNotFound)
}

func TestBaseAddresses(t *testing.T) {
	target, err := All().FindBySeries("STM32G4")
	require.NoError(t, err)

	base, err := target.Base("CORDIC")
	require.NoError(t, err)
	assert.Equal(t, uintptr(stm32g4.CORDIC_BASE), base)

	base, err = target.Base("rcc")
	require.NoError(t, err)
	assert.Equal(t, uintptr(stm32g4.RCC_BASE), base)

	_, err = target.Base("fmac")
	assert.ErrorIs(t, err, ErrPeripheralNotFound)

	_, err = All().FindBySeries("sam")
	assert.ErrorIs(t, err, ErrSeriesNotFound)
}

func TestParseErrors(t *testing.T) {
	_, err := parse([]byte("targets:\n  - cpu: cortex-m0\n"))
	assert.Error(t, err)

	_, err = parse([]byte("targets: ["))
	assert.Error(t, err)
}
