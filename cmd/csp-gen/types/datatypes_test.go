package types

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInteger(t *testing.T) {
	tests := map[string]int64{
		"42":          42,
		" 0x40020C00": 0x40020C00,
		"0X1f":        0x1F,
		"#101":        5,
		"#1x1":        5 &^ 2,
		"0b11":        3,
		"-3":          -3,
	}
	for in, want := range tests {
		got, err := ParseInteger(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseInteger("0xZZ")
	assert.Error(t, err)
}

func TestIntegerXML(t *testing.T) {
	var v struct {
		Offset Integer `xml:"offset"`
		Size   Integer `xml:"size,attr"`
	}
	require.NoError(t, xml.Unmarshal([]byte(`<reg size="0x20"><offset>8</offset></reg>`), &v))
	assert.Equal(t, Integer(8), v.Offset)
	assert.Equal(t, Integer(32), v.Size)
}
