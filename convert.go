package softfloat

import "math/big"

// Conversions: float<->float, float<->integer, scaleB, logB.

// FloatToFloat converts src (encoded in srcFmt) to dstFmt.
func FloatToFloat(src *big.Int, srcFmt, dstFmt FloatProperties, state FPState) (*big.Int, FPState) {
	class := Classify(src, srcFmt)
	if class.IsNaN() {
		if class.IsSignalingNaN() {
			state.StatusFlags = state.StatusFlags.withInvalidOperation()
		}
		switch dstFmt.Platform().FloatToFloatConversionNaNMode {
		case FloatToFloatRetainMostSignificantBits:
			_, _, srcMantissa := Unpack(src, srcFmt)
			retained := minUint(srcFmt.FractionWidth(), dstFmt.FractionWidth())
			mantissa := new(big.Int).Rsh(srcMantissa, srcFmt.FractionWidth()-retained)
			mantissa.Lsh(mantissa, dstFmt.FractionWidth()-retained)
			bits := Pack(dstFmt.Platform().CanonicalNaNSign, dstFmt.ExponentInfNaN(), mantissa, dstFmt)
			return quietenNaN(bits, dstFmt), state
		default:
			return CanonicalNaN(dstFmt), state
		}
	}
	if class.IsInfinity() {
		return Pack(class.Sign(), dstFmt.ExponentInfNaN(), new(big.Int), dstFmt), state
	}
	if class.IsZero() {
		return Pack(class.Sign(), new(big.Int), new(big.Int), dstFmt), state
	}
	sign, magnitude := toExactRat(src, srcFmt)
	return roundRealToFloat(sign, magnitude, dstFmt, state)
}

func minUint(a, b uint) uint {
	if a < b {
		return a
	}
	return b
}

func intRange(width uint, signed bool) (minVal, maxVal *big.Int) {
	if signed {
		maxVal = new(big.Int).Sub(pow2(width-1), bigOne)
		minVal = new(big.Int).Neg(pow2(width - 1))
		return
	}
	return new(big.Int), new(big.Int).Sub(pow2(width), bigOne)
}

// FloatToInt converts x to a width-bit integer (signed or unsigned)
// under state's rounding mode. ok is false only when
// PlatformProperties.InvalidIntConversion is IntConversionSentinel and
// the input was NaN, infinite, or out of range; otherwise an invalid
// input yields ok true with the saturated endpoint matching its sign
// (an infinite or out-of-range input) or zero (a NaN input).
//
// INEXACT is raised whenever rounding discards nonzero bits: this
// kernel always raises it on non-integral input (the distinction
// between convertToInteger and convertToIntegerExact does not affect
// flag behaviour here; see DESIGN.md).
func FloatToInt(x *big.Int, fmt FloatProperties, width uint, signed bool, state FPState) (result *big.Int, ok bool, newState FPState) {
	minVal, maxVal := intRange(width, signed)
	class := Classify(x, fmt)

	invalid := func(sign Sign) (*big.Int, bool, FPState) {
		state.StatusFlags = state.StatusFlags.withInvalidOperation()
		if fmt.Platform().InvalidIntConversion == IntConversionSentinel {
			return nil, false, state
		}
		if class.IsNaN() {
			return new(big.Int), true, state
		}
		if sign == Negative {
			return new(big.Int).Set(minVal), true, state
		}
		return new(big.Int).Set(maxVal), true, state
	}

	if class.IsNaN() {
		return invalid(Positive)
	}
	if class.IsInfinity() {
		return invalid(class.Sign())
	}

	sign, magnitude := toExactRat(x, fmt)
	intMagnitude, inexact := roundMagnitudeToInteger(magnitude, state.RoundingMode, sign)
	signedValue := intMagnitude
	if sign == Negative {
		signedValue = new(big.Int).Neg(intMagnitude)
	}
	if signedValue.Cmp(minVal) < 0 || signedValue.Cmp(maxVal) > 0 {
		return invalid(sign)
	}
	if inexact {
		state.StatusFlags = state.StatusFlags.withInexact()
	}
	return signedValue, true, state
}

// IntToFloat constructs the correctly rounded encoding of value (an
// arbitrary-width signed integer) in fmt.
func IntToFloat(value *big.Int, fmt FloatProperties, state FPState) (*big.Int, FPState) {
	if value.Sign() == 0 {
		return Pack(Positive, new(big.Int), new(big.Int), fmt), state
	}
	sign := Positive
	magnitude := value
	if value.Sign() < 0 {
		sign = Negative
		magnitude = new(big.Int).Neg(value)
	}
	return roundRealToFloat(sign, new(big.Rat).SetInt(magnitude), fmt, state)
}

// ScaleB computes x * 2^scale.
func ScaleB(x *big.Int, scale int, fmt FloatProperties, state FPState) (*big.Int, FPState) {
	class := Classify(x, fmt)
	if class.IsNaN() {
		return unaryNaNResponse(x, class, fmt.Platform().ScaleBNaNPropagationMode, fmt, state)
	}
	if class.IsInfinity() {
		return Pack(class.Sign(), fmt.ExponentInfNaN(), new(big.Int), fmt), state
	}
	if class.IsZero() {
		return Pack(class.Sign(), new(big.Int), new(big.Int), fmt), state
	}
	sign, magnitude := toExactRat(x, fmt)
	scaled := new(big.Rat).Mul(magnitude, pow2Rat(scale))
	return roundRealToFloat(sign, scaled, fmt, state)
}

// LogBResult distinguishes LogB's four possible result shapes, since
// unlike an ordinary integer-valued op it may also yield ±infinity or
// NaN.
type LogBResult uint8

const (
	LogBFinite LogBResult = iota
	LogBNegativeInfinity
	LogBPositiveInfinity
	LogBNaN
)

// LogB returns the floor of log2 of the absolute value of x: the
// format's unbiased exponent of the normalised significand.
func LogB(x *big.Int, fmt FloatProperties, state FPState) (exponent *big.Int, kind LogBResult, newState FPState) {
	class := Classify(x, fmt)
	if class.IsNaN() {
		if class.IsSignalingNaN() {
			state.StatusFlags = state.StatusFlags.withInvalidOperation()
		}
		return nil, LogBNaN, state
	}
	if class.IsInfinity() {
		return nil, LogBPositiveInfinity, state
	}
	if class.IsZero() {
		state.StatusFlags = state.StatusFlags.withDivisionByZero()
		return nil, LogBNegativeInfinity, state
	}
	_, magnitude := toExactRat(x, fmt)
	return big.NewInt(int64(ratFloorLog2(magnitude))), LogBFinite, state
}
