// Package register describes registers as named bit fields with access modes.
// Layouts are validated once when they are declared and then used to pack and
// unpack register words at runtime.
package register

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"omibyte.io/cordic/mmio"
)

type Access uint8

const (
	ReadWrite Access = iota
	ReadOnly
	WriteOnly
	NoAccess
)

func (a Access) String() string {
	switch a {
	case ReadWrite:
		return "read-write"
	case ReadOnly:
		return "read-only"
	case WriteOnly:
		return "write-only"
	case NoAccess:
		return "no-access"
	default:
		return fmt.Sprintf("Access(%d)", a)
	}
}

// ParseAccess understands the access spellings used in SVD files.
func ParseAccess(s string) (Access, error) {
	switch s {
	case "read-write", "":
		return ReadWrite, nil
	case "read-only":
		return ReadOnly, nil
	case "write-only", "writeOnce":
		return WriteOnly, nil
	case "no-access":
		return NoAccess, nil
	}
	return NoAccess, fmt.Errorf("unknown access mode %q", s)
}

func (a Access) Readable() bool {
	return a == ReadWrite || a == ReadOnly
}

func (a Access) Writable() bool {
	return a == ReadWrite || a == WriteOnly
}

// Field is a contiguous range of bits in a register.
type Field struct {
	Name   string
	Offset uint8
	Width  uint8
	Access Access
}

func (f Field) Mask() uint32 {
	if f.Width >= 32 {
		return 0xFFFFFFFF << f.Offset
	}
	return (uint32(1)<<f.Width - 1) << f.Offset
}

// Insert returns word with the field replaced by v. Bits of v wider than the
// field are dropped.
func (f Field) Insert(word uint32, v uint32) uint32 {
	return word&^f.Mask() | (v<<f.Offset)&f.Mask()
}

func (f Field) Extract(word uint32) uint32 {
	return (word & f.Mask()) >> f.Offset
}

func (f Field) String() string {
	if f.Width == 1 {
		return fmt.Sprintf("%s[%d]", f.Name, f.Offset)
	}
	return fmt.Sprintf("%s[%d:%d]", f.Name, f.Offset+f.Width-1, f.Offset)
}

// FieldValue is a decoded field.
type FieldValue struct {
	Field Field
	Value uint32
}

// Layout is the validated set of fields of one register.
type Layout struct {
	name   string
	width  uint8
	fields []Field
}

// NewLayout validates the fields of a register. When complete is set the
// fields must cover every bit of the register.
func NewLayout(name string, width uint8, complete bool, fields ...Field) (*Layout, error) {
	if width == 0 || width > 32 {
		return nil, fmt.Errorf("%s: invalid width %d: %w", name, width, ErrFieldRange)
	}

	sorted := slices.Clone(fields)
	slices.SortFunc(sorted, func(a, b Field) int {
		return int(a.Offset) - int(b.Offset)
	})

	var errs []error
	var used uint32
	names := map[string]bool{}
	for _, f := range sorted {
		if f.Name == "" {
			errs = append(errs, fmt.Errorf("%s: field at bit %d has no name", name, f.Offset))
			continue
		}
		if names[f.Name] {
			errs = append(errs, fmt.Errorf("%s.%s: %w", name, f.Name, ErrDuplicateField))
		}
		names[f.Name] = true

		if f.Width == 0 || int(f.Offset)+int(f.Width) > int(width) {
			errs = append(errs, fmt.Errorf("%s.%s: %w", name, f, ErrFieldRange))
			continue
		}
		if used&f.Mask() != 0 {
			errs = append(errs, fmt.Errorf("%s.%s: %w", name, f, ErrFieldOverlap))
		}
		used |= f.Mask()
	}

	if complete && len(errs) == 0 {
		all := Field{Width: width}.Mask()
		if used != all {
			errs = append(errs, fmt.Errorf("%s: bits %#x unassigned: %w", name, all&^used, ErrIncomplete))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return &Layout{
		name:   name,
		width:  width,
		fields: sorted,
	}, nil
}

// MustNewLayout is like NewLayout but panics on invalid layouts. It is meant
// for package level register declarations.
func MustNewLayout(name string, width uint8, complete bool, fields ...Field) *Layout {
	l, err := NewLayout(name, width, complete, fields...)
	if err != nil {
		panic(err)
	}
	return l
}

func (l *Layout) Name() string {
	return l.name
}

func (l *Layout) Width() uint8 {
	return l.width
}

// Fields returns the fields sorted by offset.
func (l *Layout) Fields() []Field {
	return slices.Clone(l.fields)
}

func (l *Layout) Field(name string) (Field, bool) {
	i := slices.IndexFunc(l.fields, func(f Field) bool {
		return f.Name == name
	})
	if i < 0 {
		return Field{}, false
	}
	return l.fields[i], true
}

func (l *Layout) lookup(name string) (Field, error) {
	f, ok := l.Field(name)
	if !ok {
		return Field{}, fmt.Errorf("%s.%s: %w", l.name, name, ErrUnknownField)
	}
	return f, nil
}

// Set returns word with field name set to v.
func (l *Layout) Set(word uint32, name string, v uint32) (uint32, error) {
	f, err := l.lookup(name)
	if err != nil {
		return word, err
	}
	if !f.Access.Writable() {
		return word, fmt.Errorf("%s.%s is %v: %w", l.name, name, f.Access, ErrAccess)
	}
	return f.Insert(word, v), nil
}

// Get extracts field name from word.
func (l *Layout) Get(word uint32, name string) (uint32, error) {
	f, err := l.lookup(name)
	if err != nil {
		return 0, err
	}
	if !f.Access.Readable() {
		return 0, fmt.Errorf("%s.%s is %v: %w", l.name, name, f.Access, ErrAccess)
	}
	return f.Extract(word), nil
}

// Decode splits word into the values of all readable fields.
func (l *Layout) Decode(word uint32) []FieldValue {
	var values []FieldValue
	for _, f := range l.fields {
		if f.Access.Readable() {
			values = append(values, FieldValue{Field: f, Value: f.Extract(word)})
		}
	}
	return values
}

// Register binds a layout to a register on a bus.
type Register struct {
	layout *Layout
	reg    mmio.Register32
}

func New(layout *Layout, reg mmio.Register32) Register {
	return Register{layout: layout, reg: reg}
}

func (r Register) Layout() *Layout {
	return r.layout
}

func (r Register) Address() uintptr {
	return r.reg.Address()
}

// SetValue performs a read-modify-write of a single field.
func (r Register) SetValue(name string, v uint32) error {
	word, err := r.layout.Set(r.reg.Get(), name, v)
	if err != nil {
		return err
	}
	r.reg.Set(word)
	return nil
}

func (r Register) GetValue(name string) (uint32, error) {
	return r.layout.Get(r.reg.Get(), name)
}

// Decode reads the register and splits it into its readable fields.
func (r Register) Decode() []FieldValue {
	return r.layout.Decode(r.reg.Get())
}
