package types

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// Integer is an SVD scaledNonNegativeInteger. Decimal, 0x hexadecimal and #
// binary notations are accepted.
type Integer int64

func (i *Integer) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var v string
	if err := d.DecodeElement(&v, &start); err != nil {
		return err
	}
	return i.parse(v)
}

func (i *Integer) UnmarshalXMLAttr(attr xml.Attr) error {
	return i.parse(attr.Value)
}

func (i *Integer) parse(s string) error {
	value, err := ParseInteger(s)
	if err != nil {
		return err
	}
	*i = Integer(value)
	return nil
}

func ParseInteger(s string) (int64, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)

	switch {
	case strings.HasPrefix(lower, "0x"):
		v, err := strconv.ParseUint(lower[2:], 16, 64)
		return int64(v), err
	case strings.HasPrefix(lower, "#"):
		// Don't care bits are treated as zero
		v, err := strconv.ParseUint(strings.ReplaceAll(lower[1:], "x", "0"), 2, 64)
		return int64(v), err
	case strings.HasPrefix(lower, "0b"):
		v, err := strconv.ParseUint(lower[2:], 2, 64)
		return int64(v), err
	}
	return strconv.ParseInt(s, 10, 64)
}
