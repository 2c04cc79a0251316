package softfloat

import (
	"errors"
	"fmt"
	"math/big"
)

// Value is a dynamic-format facade: a bit pattern paired with the
// FloatProperties it is encoded under, so a caller can hold values of
// differing or runtime-selected formats in one slice without threading
// FloatProperties alongside every bit pattern by hand. Mismatched
// formats at a binary op are a caller error, not a flag-raising
// condition, so they surface as a returned error rather than a status
// flag.
type Value struct {
	format FloatProperties
	bits   *big.Int
}

// ErrFormatMismatch is returned when two Values participating in a
// binary or ternary operation differ in exponent width, mantissa
// width, leading-bit convention, or sign-bit presence. Their
// PlatformProperties are not compared; the receiver's format is used.
var ErrFormatMismatch = errors.New("softfloat: operand format mismatch")

// NewValue wraps bits, encoded under format, as a Value. It performs
// no validation beyond what Classify/Unpack already tolerate: any bit
// pattern of the right width is accepted.
func NewValue(format FloatProperties, bits *big.Int) Value {
	return Value{format: format, bits: new(big.Int).Set(bits)}
}

func (v Value) Format() FloatProperties { return v.format }
func (v Value) Bits() *big.Int          { return new(big.Int).Set(v.bits) }
func (v Value) Class() FloatClass       { return Classify(v.bits, v.format) }

func (v Value) String() string {
	return fmt.Sprintf("%s(0x%X)", v.Class(), v.bits)
}

func sameFormat(a, b FloatProperties) bool {
	return a.ExponentWidth() == b.ExponentWidth() &&
		a.MantissaWidth() == b.MantissaWidth() &&
		a.HasImplicitLeadingBit() == b.HasImplicitLeadingBit() &&
		a.HasSignBit() == b.HasSignBit()
}

func (v Value) checkFormat(other Value, op string) error {
	if !sameFormat(v.format, other.format) {
		return fmt.Errorf("%w: %s operands have differing formats", ErrFormatMismatch, op)
	}
	return nil
}

func (v Value) Add(other Value, state FPState) (Value, FPState, error) {
	if err := v.checkFormat(other, "add"); err != nil {
		return Value{}, state, err
	}
	bits, newState := Add(v.bits, other.bits, v.format, state)
	return Value{format: v.format, bits: bits}, newState, nil
}

func (v Value) Subtract(other Value, state FPState) (Value, FPState, error) {
	if err := v.checkFormat(other, "subtract"); err != nil {
		return Value{}, state, err
	}
	bits, newState := Subtract(v.bits, other.bits, v.format, state)
	return Value{format: v.format, bits: bits}, newState, nil
}

func (v Value) Multiply(other Value, state FPState) (Value, FPState, error) {
	if err := v.checkFormat(other, "multiply"); err != nil {
		return Value{}, state, err
	}
	bits, newState := Multiply(v.bits, other.bits, v.format, state)
	return Value{format: v.format, bits: bits}, newState, nil
}

func (v Value) Divide(other Value, state FPState) (Value, FPState, error) {
	if err := v.checkFormat(other, "divide"); err != nil {
		return Value{}, state, err
	}
	bits, newState := Divide(v.bits, other.bits, v.format, state)
	return Value{format: v.format, bits: bits}, newState, nil
}

func (v Value) FusedMultiplyAdd(b, c Value, state FPState) (Value, FPState, error) {
	if err := v.checkFormat(b, "fusedMultiplyAdd"); err != nil {
		return Value{}, state, err
	}
	if err := v.checkFormat(c, "fusedMultiplyAdd"); err != nil {
		return Value{}, state, err
	}
	bits, newState := FusedMultiplyAdd(v.bits, b.bits, c.bits, v.format, state)
	return Value{format: v.format, bits: bits}, newState, nil
}

func (v Value) Sqrt(state FPState) (Value, FPState) {
	bits, newState := Sqrt(v.bits, v.format, state)
	return Value{format: v.format, bits: bits}, newState
}

func (v Value) Rsqrt(state FPState) (Value, FPState) {
	bits, newState := Rsqrt(v.bits, v.format, state)
	return Value{format: v.format, bits: bits}, newState
}

func (v Value) Reciprocal(state FPState) (Value, FPState) {
	bits, newState := Reciprocal(v.bits, v.format, state)
	return Value{format: v.format, bits: bits}, newState
}

func (v Value) RoundToIntegral(exact bool, state FPState) (Value, FPState) {
	bits, newState := RoundToIntegral(v.bits, v.format, exact, state)
	return Value{format: v.format, bits: bits}, newState
}

func (v Value) NextUp(state FPState) (Value, FPState) {
	bits, newState := NextUp(v.bits, v.format, state)
	return Value{format: v.format, bits: bits}, newState
}

func (v Value) NextDown(state FPState) (Value, FPState) {
	bits, newState := NextDown(v.bits, v.format, state)
	return Value{format: v.format, bits: bits}, newState
}

func (v Value) ScaleB(scale int, state FPState) (Value, FPState) {
	bits, newState := ScaleB(v.bits, scale, v.format, state)
	return Value{format: v.format, bits: bits}, newState
}

func (v Value) LogB(state FPState) (*big.Int, LogBResult, FPState) {
	return LogB(v.bits, v.format, state)
}

func (v Value) Negate() Value {
	return Value{format: v.format, bits: Negate(v.bits, v.format)}
}

func (v Value) Abs() Value {
	return Value{format: v.format, bits: Abs(v.bits, v.format)}
}

func (v Value) CopySign(signSource Value) (Value, error) {
	if err := v.checkFormat(signSource, "copySign"); err != nil {
		return Value{}, err
	}
	return Value{format: v.format, bits: CopySign(v.bits, signSource.bits, v.format)}, nil
}

func (v Value) CompareQuiet(other Value, state FPState) (CompareResult, FPState, error) {
	if err := v.checkFormat(other, "compareQuiet"); err != nil {
		return Unordered, state, err
	}
	result, newState := CompareQuiet(v.bits, other.bits, v.format, state)
	return result, newState, nil
}

func (v Value) CompareSignaling(other Value, state FPState) (CompareResult, FPState, error) {
	if err := v.checkFormat(other, "compareSignaling"); err != nil {
		return Unordered, state, err
	}
	result, newState := CompareSignaling(v.bits, other.bits, v.format, state)
	return result, newState, nil
}

func (v Value) Min(other Value, state FPState) (Value, FPState, error) {
	if err := v.checkFormat(other, "min"); err != nil {
		return Value{}, state, err
	}
	bits, newState := Min(v.bits, other.bits, v.format, state)
	return Value{format: v.format, bits: bits}, newState, nil
}

func (v Value) Max(other Value, state FPState) (Value, FPState, error) {
	if err := v.checkFormat(other, "max"); err != nil {
		return Value{}, state, err
	}
	bits, newState := Max(v.bits, other.bits, v.format, state)
	return Value{format: v.format, bits: bits}, newState, nil
}

func (v Value) MinNum(other Value, state FPState) (Value, FPState, error) {
	if err := v.checkFormat(other, "minNum"); err != nil {
		return Value{}, state, err
	}
	bits, newState := MinNum(v.bits, other.bits, v.format, state)
	return Value{format: v.format, bits: bits}, newState, nil
}

func (v Value) MaxNum(other Value, state FPState) (Value, FPState, error) {
	if err := v.checkFormat(other, "maxNum"); err != nil {
		return Value{}, state, err
	}
	bits, newState := MaxNum(v.bits, other.bits, v.format, state)
	return Value{format: v.format, bits: bits}, newState, nil
}

// ToFormat converts v into destFormat, the dynamic-facade equivalent
// of FloatToFloat.
func (v Value) ToFormat(destFormat FloatProperties, state FPState) (Value, FPState) {
	bits, newState := FloatToFloat(v.bits, v.format, destFormat, state)
	return Value{format: destFormat, bits: bits}, newState
}

// ToInt converts v to a width-bit integer, the dynamic-facade
// equivalent of FloatToInt.
func (v Value) ToInt(width uint, signed bool, state FPState) (*big.Int, bool, FPState) {
	return FloatToInt(v.bits, v.format, width, signed, state)
}

// ValueFromInt constructs a Value in format from an arbitrary-
// precision signed integer, the dynamic-facade equivalent of
// IntToFloat.
func ValueFromInt(value *big.Int, format FloatProperties, state FPState) (Value, FPState) {
	bits, newState := IntToFloat(value, format, state)
	return Value{format: format, bits: bits}, newState
}
