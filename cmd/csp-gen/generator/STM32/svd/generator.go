package svd

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/exp/slices"
	"golang.org/x/tools/imports"

	"omibyte.io/cordic/cmd/csp-gen/generator"
	"omibyte.io/cordic/cmd/csp-gen/svd"
	"omibyte.io/cordic/cmd/csp-gen/types"
	"omibyte.io/cordic/register"
)

var _ generator.Generator = (*Generator)(nil)

// Generator emits register types for STM32 SVD descriptions.
type Generator struct {
	device  *svd.DeviceElement
	module  string
	methods map[string][]string
}

// NewGenerator returns a generator producing bus based register types. The
// generated code imports the mmio and register packages below module.
func NewGenerator(device *svd.DeviceElement, module string) *Generator {
	return &Generator{
		device:  device,
		module:  module,
		methods: map[string][]string{},
	}
}

func (s *Generator) pkg() string {
	return strings.ToLower(s.device.Series)
}

func (s *Generator) Generate(out string) error {
	// Create the output directory for the chip
	outputDir := filepath.Join(out, "chip", s.pkg())
	if err := os.MkdirAll(outputDir, 0750); err != nil {
		return err
	}

	src, err := s.Source()
	if err != nil {
		return err
	}

	// Write the contents to the file
	return os.WriteFile(filepath.Join(outputDir, s.pkg()+".go"), src, 0640)
}

// Source returns the formatted source of the chip package.
func (s *Generator) Source() ([]byte, error) {
	var w strings.Builder

	// Write the preamble to the file
	if err := s.writePreamble(&w); err != nil {
		return nil, err
	}

	// Write required imports
	fmt.Fprintln(&w, "import (")
	fmt.Fprintf(&w, "%q\n", path.Join(s.module, "mmio"))
	fmt.Fprintf(&w, "%q\n", path.Join(s.module, "register"))
	fmt.Fprintln(&w, ")")
	fmt.Fprintln(&w)

	peripherals := slices.Clone(s.device.Peripherals.Elements)
	slices.SortStableFunc(peripherals, func(a, b svd.PeripheralElement) int {
		return int(a.BaseAddress - b.BaseAddress)
	})

	// Base addresses
	fmt.Fprintln(&w, "const (")
	for _, periph := range peripherals {
		fmt.Fprintf(&w, "%s_BASE = %#x\n", cleanIdentifier(periph.Name), periph.BaseAddress)
	}
	fmt.Fprintln(&w, ")")
	fmt.Fprintln(&w)

	// Generate all peripherals
	for _, periph := range peripherals {
		if err := s.generatePeripheral(periph, &w); err != nil {
			return nil, err
		}
	}

	// Format the final output
	fname := s.pkg() + ".go"
	buf, err := imports.Process(fname, []byte(w.String()), nil)
	if err != nil {
		return nil, fmt.Errorf("error formatting %s: %v", fname, err)
	}
	return buf, nil
}

func (s *Generator) writePreamble(w io.Writer) error {
	fmt.Fprintln(w, "// Code generated by csp-gen. DO NOT EDIT.")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "// Package %s contains the register definitions of the %s series.\n", s.pkg(), s.device.Series)
	fmt.Fprintln(w, "package", s.pkg())
	fmt.Fprintln(w)
	return nil
}

func (s *Generator) generatePeripheral(periph svd.PeripheralElement, w *strings.Builder) error {
	// Derived peripherals share the register types of their base
	if len(periph.DerivedFrom) > 0 {
		return nil
	}

	name := cleanIdentifier(periph.Name)
	typename := name + "_TYPE"

	// Sort the registers
	registers := slices.Clone(periph.Registers.RegisterElements)
	slices.SortStableFunc(registers, func(a, b svd.RegisterElement) int {
		return int(a.AddressOffset - b.AddressOffset)
	})

	fmt.Fprintf(w, "// %s %s\n", typename, cleanDescription(periph.Description))
	fmt.Fprintf(w, "type %s struct {\n", typename)
	for _, reg := range registers {
		fmt.Fprintf(w, "%s %s\n", cleanIdentifier(reg.Name), registerTypeName(name, reg))
	}
	fmt.Fprintf(w, "}\n\n")

	// Constructors
	fmt.Fprintf(w, "func New%s(bus mmio.Bus) *%s {\n", name, typename)
	fmt.Fprintf(w, "return New%sAt(bus, %s_BASE)\n", name, name)
	fmt.Fprintf(w, "}\n\n")

	fmt.Fprintf(w, "func New%sAt(bus mmio.Bus, base uintptr) *%s {\n", name, typename)
	fmt.Fprintf(w, "return &%s{\n", typename)
	for _, reg := range registers {
		fmt.Fprintf(w, "%s: %s{mmio.NewRegister32(bus, base+%#x)},\n", cleanIdentifier(reg.Name), registerTypeName(name, reg), reg.AddressOffset)
	}
	fmt.Fprintf(w, "}\n")
	fmt.Fprintf(w, "}\n\n")

	// Write each register implementation
	for _, reg := range registers {
		if err := s.generateRegisterType(name, reg, w); err != nil {
			return err
		}
	}

	return nil
}

func (s *Generator) generateRegisterType(prefix string, reg svd.RegisterElement, w *strings.Builder) error {
	typename := registerTypeName(prefix, reg)
	size := reg.Size
	if size == 0 {
		size = s.device.RegisterSize
	}
	if size != 32 {
		return fmt.Errorf("%s: unsupported register size %d", typename, size)
	}

	// Declare the type
	fmt.Fprintf(w, "// %s %s\n", typename, cleanDescription(reg.Description))
	fmt.Fprintf(w, "type %s struct {\n", typename)
	fmt.Fprintf(w, "mmio.Register32\n")
	fmt.Fprintf(w, "}\n\n")

	// Resolve the access mode of each field first so the layout is validated
	// exactly as the accessors are generated.
	access := make([]register.Access, len(reg.Fields.Elements))
	for i, field := range reg.Fields.Elements {
		mode := reg.Access
		if len(field.Access) > 0 {
			// Override the access level of the register if explicitly set on the field
			mode = field.Access
		} else if len(mode) == 0 {
			// Use the default access level of the device if none set
			mode = s.device.DefaultAccess
		}

		a, err := register.ParseAccess(mode)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", typename, field.Name, err)
		}
		access[i] = a
	}

	// Describe the layout
	var fields []register.Field
	fmt.Fprintf(w, "var %s_Layout = register.MustNewLayout(%q, %d, false,\n", typename, cleanIdentifier(reg.Name), size)
	for i, field := range reg.Fields.Elements {
		f := register.Field{
			Name:   cleanIdentifier(field.Name),
			Offset: uint8(field.BitOffset),
			Width:  uint8(field.BitWidth),
			Access: access[i],
		}
		fields = append(fields, f)
		fmt.Fprintf(w, "register.Field{Name: %q, Offset: %d, Width: %d, Access: register.%s},\n", f.Name, f.Offset, f.Width, accessIdent(f.Access))
	}
	fmt.Fprintf(w, ")\n\n")

	// Refuse to emit a layout that would panic at init time
	if _, err := register.NewLayout(reg.Name, uint8(size), false, fields...); err != nil {
		return fmt.Errorf("%s: %w", typename, err)
	}

	fmt.Fprintf(w, "func (reg %s) Layout() *register.Layout {\n", typename)
	fmt.Fprintf(w, "return %s_Layout\n", typename)
	fmt.Fprintf(w, "}\n\n")

	// Create enumerated types
	evMap := map[string]string{}
	for _, field := range reg.Fields.Elements {
		if len(field.EnumeratedValues.Elements) > 0 {
			fieldName := cleanIdentifier(field.Name)
			evMap[fieldName] = s.generateEnumeratedValuesType(typename+"_"+fieldName, field.EnumeratedValues, w)
		}
	}

	// Create a setter/getter method for each field
	for i, field := range fields {
		enumeratedType, hasEv := evMap[field.Name]
		mask := field.Mask()

		if field.Access.Readable() && s.addMethod(typename, "Get"+field.Name) {
			fmt.Fprintf(w, "// Get%s %s\n", field.Name, cleanDescription(reg.Fields.Elements[i].Description))
			switch {
			case field.Width == 32:
				fmt.Fprintf(w, "func (reg %s) Get%s() uint32 {\n", typename, field.Name)
				fmt.Fprintf(w, "return reg.Get()\n")
			case hasEv:
				fmt.Fprintf(w, "func (reg %s) Get%s() %s {\n", typename, field.Name, enumeratedType)
				fmt.Fprintf(w, "v := reg.Get()\n")
				fmt.Fprintf(w, "return %s((v & %#x) >> %d)\n", enumeratedType, mask, field.Offset)
			case field.Width == 1:
				fmt.Fprintf(w, "func (reg %s) Get%s() bool {\n", typename, field.Name)
				fmt.Fprintf(w, "v := reg.Get()\n")
				fmt.Fprintf(w, "return v&(1<<%d) != 0\n", field.Offset)
			default:
				fieldType := typeForBitWidth(types.Integer(field.Width))
				fmt.Fprintf(w, "func (reg %s) Get%s() %s {\n", typename, field.Name, fieldType)
				fmt.Fprintf(w, "v := reg.Get()\n")
				fmt.Fprintf(w, "return %s((v & %#x) >> %d)\n", fieldType, mask, field.Offset)
			}
			fmt.Fprintf(w, "}\n\n")
		}

		if field.Access.Writable() && s.addMethod(typename, "Set"+field.Name) {
			fmt.Fprintf(w, "// Set%s %s\n", field.Name, cleanDescription(reg.Fields.Elements[i].Description))
			switch {
			case field.Width == 32:
				// Full width writes never read the register back
				fmt.Fprintf(w, "func (reg %s) Set%s(value uint32) {\n", typename, field.Name)
				fmt.Fprintf(w, "reg.Set(value)\n")
			case field.Width == 1 && !hasEv:
				fmt.Fprintf(w, "func (reg %s) Set%s(enable bool) {\n", typename, field.Name)
				fmt.Fprintf(w, "v := reg.Get()\n")
				fmt.Fprintf(w, "if enable {\n")
				fmt.Fprintf(w, "v |= 1 << %d\n", field.Offset)
				fmt.Fprintf(w, "} else {\n")
				fmt.Fprintf(w, "v &^= 1 << %d\n", field.Offset)
				fmt.Fprintf(w, "}\n")
				fmt.Fprintf(w, "reg.Set(v)\n")
			default:
				paramType := typeForBitWidth(types.Integer(field.Width))
				if hasEv {
					paramType = enumeratedType
				}
				fmt.Fprintf(w, "func (reg %s) Set%s(value %s) {\n", typename, field.Name, paramType)
				fmt.Fprintf(w, "v := reg.Get()\n")
				fmt.Fprintf(w, "v &^= %#x\n", mask)                                      // Unset the respective bits.
				fmt.Fprintf(w, "v |= (uint32(value) << %d) & %#x\n", field.Offset, mask) // Set the respective bits to the specified value.
				fmt.Fprintf(w, "reg.Set(v)\n")
			}
			fmt.Fprintf(w, "}\n\n")
		}
	}

	return nil
}

func (s *Generator) generateEnumeratedValuesType(typename string, ev svd.EnumeratedValuesElement, w *strings.Builder) string {
	// Declare the type
	fmt.Fprintf(w, "type %s uint32\n\n", typename)
	fmt.Fprintln(w, "const (")
	// Create the constant values
	for _, value := range ev.Elements {
		valueName := strings.ToUpper(cleanIdentifier(value.Name))
		fmt.Fprintf(w, "%s_%s %s = %#x", typename, valueName, typename, value.Value)
		if len(value.Description) > 0 {
			fmt.Fprintf(w, " // %s", cleanDescription(value.Description))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, ")")
	fmt.Fprintln(w)

	return typename
}

// addMethod records a method and reports whether it was not declared before.
func (s *Generator) addMethod(typename, method string) bool {
	if slices.Contains(s.methods[typename], method) {
		return false
	}
	s.methods[typename] = append(s.methods[typename], method)
	return true
}

func registerTypeName(prefix string, reg svd.RegisterElement) string {
	return fmt.Sprintf("%s_%s_REG", prefix, cleanIdentifier(reg.Name))
}

func accessIdent(a register.Access) string {
	switch a {
	case register.ReadOnly:
		return "ReadOnly"
	case register.WriteOnly:
		return "WriteOnly"
	case register.NoAccess:
		return "NoAccess"
	default:
		return "ReadWrite"
	}
}

func typeForBitWidth(width types.Integer) string {
	if width > 16 {
		return "uint32"
	} else if width > 8 {
		return "uint16"
	} else if width > 1 {
		return "uint8"
	} else {
		return "bool"
	}
}

var identRegexp = regexp.MustCompile(`([a-zA-Z0-9]$|[a-zA-Z0-9][_a-zA-Z0-9]*[a-zA-Z0-9])`)

func cleanIdentifier(ident string) string {
	cleanStr := identRegexp.FindStringSubmatch(ident)
	if cleanStr == nil {
		return ident
	}
	return cleanStr[0]
}

func cleanDescription(desc string) string {
	return strings.Join(strings.Fields(desc), " ")
}
