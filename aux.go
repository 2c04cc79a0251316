package softfloat

import "math/big"

// Comparison, round-to-integral, nextUp/nextDown, sign manipulation,
// and min/max.

// roundMagnitudeToInteger rounds a nonnegative exact magnitude to the
// nearest integer under mode, reusing the same tie-breaking rule as
// the float rounding engine (round.go's decideRoundUp). inexact
// reports whether magnitude was not itself an integer.
func roundMagnitudeToInteger(magnitude *big.Rat, mode RoundingMode, sign Sign) (result *big.Int, inexact bool) {
	lower := ratFloor(magnitude)
	remainder := new(big.Rat).Sub(magnitude, new(big.Rat).SetInt(lower))
	if remainder.Sign() == 0 {
		return lower, false
	}
	decision := classifyRemainder(remainder)
	if decideRoundUp(mode, sign, lower, decision) {
		return new(big.Int).Add(lower, bigOne), true
	}
	return lower, true
}

// RoundToIntegral rounds x to the nearest representable integral
// value of the same format. When exact is true, a non-integral input
// additionally raises INEXACT (the convertToIntegralExact variant);
// when false it does not.
func RoundToIntegral(x *big.Int, fmt FloatProperties, exact bool, state FPState) (*big.Int, FPState) {
	class := Classify(x, fmt)
	if class.IsNaN() {
		return unaryNaNResponse(x, class, fmt.Platform().RoundToIntegralNaNPropagationMode, fmt, state)
	}
	if class.IsInfinity() {
		return Pack(class.Sign(), fmt.ExponentInfNaN(), new(big.Int), fmt), state
	}
	if class.IsZero() {
		return Pack(class.Sign(), new(big.Int), new(big.Int), fmt), state
	}
	sign, magnitude := toExactRat(x, fmt)
	intMagnitude, inexact := roundMagnitudeToInteger(magnitude, state.RoundingMode, sign)
	if inexact && exact {
		state.StatusFlags = state.StatusFlags.withInexact()
	}
	if intMagnitude.Sign() == 0 {
		return Pack(sign, new(big.Int), new(big.Int), fmt), state
	}
	return roundRealToFloat(sign, new(big.Rat).SetInt(intMagnitude), fmt, state)
}

// UpOrDown selects nextUp versus nextDown for NextUpOrDown.
type UpOrDown uint8

const (
	Up UpOrDown = iota
	Down
)

// NextUpOrDown returns the least representable value strictly greater
// (Up) or the greatest strictly less (Down) than x.
func NextUpOrDown(x *big.Int, dir UpOrDown, fmt FloatProperties, state FPState) (*big.Int, FPState) {
	class := Classify(x, fmt)
	if class.IsNaN() {
		return unaryNaNResponse(x, class, fmt.Platform().NextUpOrDownNaNPropagationMode, fmt, state)
	}
	if (class == NegativeInfinity && dir == Up) || (class == PositiveInfinity && dir == Down) {
		sign := Negative
		if class == PositiveInfinity {
			sign = Positive
		}
		return Pack(sign, fmt.ExponentMaxNormal(), fmt.MantissaMask(), fmt), state
	}
	if (class == NegativeInfinity && dir == Down) || (class == PositiveInfinity && dir == Up) {
		return new(big.Int).Set(x), state
	}
	if class.IsZero() {
		resultSign := Positive
		if dir == Down {
			resultSign = Negative
		}
		return Pack(resultSign, new(big.Int), bigOne, fmt), state
	}

	sign, exponentField, mantissaField := Unpack(x, fmt)
	growingMagnitude := (dir == Up && sign == Positive) || (dir == Down && sign == Negative)
	if growingMagnitude {
		if mantissaField.Cmp(fmt.MantissaMask()) == 0 {
			if exponentField.Cmp(fmt.ExponentMaxNormal()) == 0 {
				return Pack(sign, fmt.ExponentInfNaN(), new(big.Int), fmt), state
			}
			return Pack(sign, new(big.Int).Add(exponentField, bigOne), new(big.Int), fmt), state
		}
		return Pack(sign, exponentField, new(big.Int).Add(mantissaField, bigOne), fmt), state
	}
	if mantissaField.Sign() == 0 {
		return Pack(sign, new(big.Int).Sub(exponentField, bigOne), fmt.MantissaMask(), fmt), state
	}
	return Pack(sign, exponentField, new(big.Int).Sub(mantissaField, bigOne), fmt), state
}

func NextUp(x *big.Int, fmt FloatProperties, state FPState) (*big.Int, FPState) {
	return NextUpOrDown(x, Up, fmt, state)
}

func NextDown(x *big.Int, fmt FloatProperties, state FPState) (*big.Int, FPState) {
	return NextUpOrDown(x, Down, fmt, state)
}

// CopySign returns x with the sign of signSource.
func CopySign(x, signSource *big.Int, fmt FloatProperties) *big.Int {
	sign, _, _ := Unpack(signSource, fmt)
	_, exponentField, mantissaField := Unpack(x, fmt)
	return Pack(sign, exponentField, mantissaField, fmt)
}

// Negate flips x's sign bit, leaving every other field (including a
// NaN's payload) intact.
func Negate(x *big.Int, fmt FloatProperties) *big.Int {
	return negateBits(x, fmt)
}

// Abs clears x's sign bit.
func Abs(x *big.Int, fmt FloatProperties) *big.Int {
	_, exponentField, mantissaField := Unpack(x, fmt)
	return Pack(Positive, exponentField, mantissaField, fmt)
}

// CompareResult is the outcome of comparing two floats: the
// four-valued IEEE 754 total order including Unordered for NaN
// operands.
type CompareResult uint8

const (
	Less CompareResult = iota
	Equal
	Greater
	Unordered
)

func (r CompareResult) String() string {
	switch r {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return "unordered"
	}
}

func compare(a, b *big.Int, signaling bool, fmt FloatProperties, state FPState) (CompareResult, FPState) {
	aClass := Classify(a, fmt)
	bClass := Classify(b, fmt)
	if aClass.IsNaN() || bClass.IsNaN() {
		if signaling || aClass.IsSignalingNaN() || bClass.IsSignalingNaN() {
			state.StatusFlags = state.StatusFlags.withInvalidOperation()
		}
		return Unordered, state
	}
	if aClass.IsInfinity() || bClass.IsInfinity() {
		if aClass == bClass {
			return Equal, state
		}
		if aClass.IsPositiveInfinity() || bClass.IsNegativeInfinity() {
			return Greater, state
		}
		return Less, state
	}
	signA, magA := toExactRat(a, fmt)
	signB, magB := toExactRat(b, fmt)
	switch signedRat(signA, magA).Cmp(signedRat(signB, magB)) {
	case -1:
		return Less, state
	case 0:
		return Equal, state
	default:
		return Greater, state
	}
}

// CompareQuiet compares a and b without raising INVALID_OPERATION for
// an unordered (quiet-NaN) result; a signaling NaN still raises it.
func CompareQuiet(a, b *big.Int, fmt FloatProperties, state FPState) (CompareResult, FPState) {
	return compare(a, b, false, fmt, state)
}

// CompareSignaling compares a and b, raising INVALID_OPERATION
// whenever the result is unordered, per IEEE 754's signaling compare.
func CompareSignaling(a, b *big.Int, fmt FloatProperties, state FPState) (CompareResult, FPState) {
	return compare(a, b, true, fmt, state)
}

func selectMinMax(a, b *big.Int, fmt FloatProperties, state FPState, wantMin, numberPreferring bool) (*big.Int, FPState) {
	aClass := Classify(a, fmt)
	bClass := Classify(b, fmt)
	if aClass.IsSignalingNaN() || bClass.IsSignalingNaN() {
		state.StatusFlags = state.StatusFlags.withInvalidOperation()
	}
	if aClass.IsNaN() && bClass.IsNaN() {
		return CanonicalNaN(fmt), state
	}
	if numberPreferring {
		if aClass.IsNaN() {
			return new(big.Int).Set(b), state
		}
		if bClass.IsNaN() {
			return new(big.Int).Set(a), state
		}
	} else if aClass.IsNaN() || bClass.IsNaN() {
		return CanonicalNaN(fmt), state
	}

	signA, magA := toExactRat(a, fmt)
	signB, magB := toExactRat(b, fmt)
	valA := signedRat(signA, magA)
	valB := signedRat(signB, magB)
	switch cmp := valA.Cmp(valB); {
	case cmp < 0:
		if wantMin {
			return new(big.Int).Set(a), state
		}
		return new(big.Int).Set(b), state
	case cmp > 0:
		if wantMin {
			return new(big.Int).Set(b), state
		}
		return new(big.Int).Set(a), state
	default:
		// Equal magnitude: for a ±0 pair pick the signed encoding the
		// operation asks for, since +0 and -0 compare equal but are
		// distinct encodings.
		if aClass.IsZero() && bClass.IsZero() {
			wantSign := Positive
			if wantMin {
				wantSign = Negative
			}
			if signA == wantSign {
				return new(big.Int).Set(a), state
			}
			if signB == wantSign {
				return new(big.Int).Set(b), state
			}
		}
		return new(big.Int).Set(a), state
	}
}

func Min(a, b *big.Int, fmt FloatProperties, state FPState) (*big.Int, FPState) {
	return selectMinMax(a, b, fmt, state, true, false)
}

func Max(a, b *big.Int, fmt FloatProperties, state FPState) (*big.Int, FPState) {
	return selectMinMax(a, b, fmt, state, false, false)
}

func MinNum(a, b *big.Int, fmt FloatProperties, state FPState) (*big.Int, FPState) {
	return selectMinMax(a, b, fmt, state, true, true)
}

func MaxNum(a, b *big.Int, fmt FloatProperties, state FPState) (*big.Int, FPState) {
	return selectMinMax(a, b, fmt, state, false, true)
}
