package svd

import (
	"encoding/xml"
	"fmt"
	"io"

	"omibyte.io/cordic/cmd/csp-gen/types"
)

// DeviceElement is the subset of a CMSIS-SVD device description the register
// bindings are generated from.
type DeviceElement struct {
	Name          string             `xml:"name"`
	Series        string             `xml:"series"`
	Version       string             `xml:"version"`
	CPU           CPUElement         `xml:"cpu"`
	RegisterSize  types.Integer      `xml:"size"`
	DefaultAccess string             `xml:"access"`
	Peripherals   PeripheralsElement `xml:"peripherals"`
}

// Decode reads a device description.
func Decode(r io.Reader) (*DeviceElement, error) {
	var device DeviceElement
	if err := xml.NewDecoder(r).Decode(&device); err != nil {
		return nil, fmt.Errorf("xml decode error: %w", err)
	}
	return &device, nil
}

type CPUElement struct {
	Name     string `xml:"name"`
	Revision string `xml:"revision"`
}

type PeripheralsElement struct {
	Elements []PeripheralElement `xml:"peripheral"`
}

type PeripheralElement struct {
	Name        string           `xml:"name"`
	Description string           `xml:"description"`
	BaseAddress types.Integer    `xml:"baseAddress"`
	Registers   RegistersElement `xml:"registers"`
	DerivedFrom string           `xml:"derivedFrom,attr"`
}

type RegistersElement struct {
	RegisterElements []RegisterElement `xml:"register"`
}

type RegisterElement struct {
	Name          string        `xml:"name"`
	Description   string        `xml:"description"`
	AddressOffset types.Integer `xml:"addressOffset"`
	Size          types.Integer `xml:"size"`
	Access        string        `xml:"access"`
	Fields        FieldElements `xml:"fields"`
}

type FieldElements struct {
	Elements []FieldElement `xml:"field"`
}

type FieldElement struct {
	Name             string                  `xml:"name"`
	Description      string                  `xml:"description"`
	BitOffset        types.Integer           `xml:"bitOffset"`
	BitWidth         types.Integer           `xml:"bitWidth"`
	Access           string                  `xml:"access"`
	EnumeratedValues EnumeratedValuesElement `xml:"enumeratedValues"`
}

type EnumeratedValuesElement struct {
	Elements []EnumeratedValueElement `xml:"enumeratedValue"`
}

type EnumeratedValueElement struct {
	Name        string        `xml:"name"`
	Description string        `xml:"description"`
	Value       types.Integer `xml:"value"`
}
