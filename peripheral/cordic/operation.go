package cordic

import (
	"fmt"

	"omibyte.io/cordic/fixed"
	"omibyte.io/cordic/peripheral"
)

// Word is the raw type of the arguments and results: int16 for q1.15 and
// int32 for q1.31.
type Word interface {
	~int16 | ~int32
}

// Operation is a single calculation request. The argument values are encoded
// when they are set; the driver only transfers the raw words.
type Operation[T Word] struct {
	desc *Descriptor
	arg1 fixed.Q[T]
	arg2 fixed.Q[T]
}

// NewOperation creates a zeroed operation for fn. The modulus of cosine and
// sine is preset to 1.
func NewOperation[T Word](fn Function) (*Operation[T], error) {
	desc, err := Lookup(fn)
	if err != nil {
		return nil, err
	}

	f := desc.Format(fixed.Bits[T]())
	op := &Operation[T]{
		desc: desc,
		arg1: fixed.New[T](f, 0),
		arg2: fixed.New[T](f, 0),
	}
	if desc.Kind == KindAngle {
		op.arg2.Set(1)
	}
	return op, nil
}

func mustOperation[T Word](fn Function) *Operation[T] {
	op, err := NewOperation[T](fn)
	if err != nil {
		panic(err)
	}
	return op
}

// Cos computes m·cos(a) and m·sin(a) where m is the modulus, 1 unless set.
func Cos[T Word](a fixed.Angle[T]) *Operation[T] {
	op := mustOperation[T](Cosine)
	op.arg1 = a.Q()
	return op
}

// Sin computes m·sin(a) and m·cos(a).
func Sin[T Word](a fixed.Angle[T]) *Operation[T] {
	op := mustOperation[T](Sine)
	op.arg1 = a.Q()
	return op
}

// Atan2 computes the phase atan2(y, x) and the modulus of v.
func Atan2[T Word](v fixed.Vec2[T]) *Operation[T] {
	op := mustOperation[T](Phase)
	op.arg1, op.arg2 = v.X(), v.Y()
	return op
}

// Mod computes the modulus and atan2(y, x) of v.
func Mod[T Word](v fixed.Vec2[T]) *Operation[T] {
	op := mustOperation[T](Modulus)
	op.arg1, op.arg2 = v.X(), v.Y()
	return op
}

func Atan[T Word](x float64) *Operation[T] {
	return valueOperation[T](Arctangent, x)
}

// Cosh computes cosh(x) and sinh(x).
func Cosh[T Word](x float64) *Operation[T] {
	return valueOperation[T](HyperbolicCosine, x)
}

// Sinh computes sinh(x) and cosh(x).
func Sinh[T Word](x float64) *Operation[T] {
	return valueOperation[T](HyperbolicSine, x)
}

func Atanh[T Word](x float64) *Operation[T] {
	return valueOperation[T](Arctanh, x)
}

func Ln[T Word](x float64) *Operation[T] {
	return valueOperation[T](NaturalLogarithm, x)
}

func Sqrt[T Word](x float64) *Operation[T] {
	return valueOperation[T](SquareRoot, x)
}

func valueOperation[T Word](fn Function, x float64) *Operation[T] {
	op := mustOperation[T](fn)
	op.arg1.Set(x)
	return op
}

func (o *Operation[T]) kind(k Kind, what string) error {
	if o.desc.Kind != k {
		return fmt.Errorf("%v does not take %s: %w", o.desc.Function, what, peripheral.ErrInvalidArgument)
	}
	return nil
}

// SetArg1 stores a pre-encoded first argument.
func (o *Operation[T]) SetArg1(q fixed.Q[T]) {
	o.arg1 = q
}

// SetArg2 stores a pre-encoded second argument.
func (o *Operation[T]) SetArg2(q fixed.Q[T]) error {
	if o.desc.Args != Two {
		return fmt.Errorf("%v takes a single argument: %w", o.desc.Function, peripheral.ErrInvalidArgument)
	}
	o.arg2 = q
	return nil
}

func (o *Operation[T]) SetAngle(a fixed.Angle[T]) error {
	if err := o.kind(KindAngle, "an angle"); err != nil {
		return err
	}
	o.arg1 = a.Q()
	return nil
}

func (o *Operation[T]) SetModulus(m fixed.Modulus[T]) error {
	if err := o.kind(KindAngle, "a modulus"); err != nil {
		return err
	}
	o.arg2 = m.Q()
	return nil
}

func (o *Operation[T]) SetVector(v fixed.Vec2[T]) error {
	if err := o.kind(KindVector, "a vector"); err != nil {
		return err
	}
	o.arg1, o.arg2 = v.X(), v.Y()
	return nil
}

// SetValue encodes x using the scale table of the function.
func (o *Operation[T]) SetValue(x float64) error {
	if err := o.kind(KindValue, "a value"); err != nil {
		return err
	}
	o.arg1.Set(x)
	return nil
}

func (o *Operation[T]) Function() Function {
	return o.desc.Function
}

func (o *Operation[T]) Descriptor() *Descriptor {
	return o.desc
}

func (o *Operation[T]) Arg1() fixed.Q[T] {
	return o.arg1
}

func (o *Operation[T]) Arg2() fixed.Q[T] {
	return o.arg2
}

// Scale is the scale chosen while encoding the first argument. The hardware
// applies it to the arguments and the results alike.
func (o *Operation[T]) Scale() uint8 {
	return o.arg1.Scale()
}

func (o *Operation[T]) NumArgs() Count {
	return o.desc.Args
}

func (o *Operation[T]) NumResults() Count {
	return o.desc.Results
}

// NewResult returns an empty result matching the operation.
func (o *Operation[T]) NewResult() *Result[T] {
	return &Result[T]{desc: o.desc}
}

// magnitude is the soft scale of the argument carrying the magnitude.
func (o *Operation[T]) magnitude() float64 {
	switch o.desc.Kind {
	case KindAngle:
		return o.arg2.SoftScale()
	case KindVector:
		return o.arg1.SoftScale()
	}
	return 1
}

// decode turns the i-th raw result word into a number.
func (o *Operation[T]) decode(i int, raw T) fixed.Q[T] {
	q := fixed.FromRaw[T](fixed.DefaultFormat[T](), raw, o.Scale())
	if o.desc.Inherit[i] {
		q = q.WithSoftScale(o.magnitude())
	}
	return q
}
