package softfloat

import "math/big"

// NaN propagation modes and their calculated results. The modes
// enumerate every NaN-priority policy observed on real hardware as a
// closed set, rather than as an open-ended hook.

type UnaryNaNPropagationMode uint8

const (
	UnaryNaNAlwaysCanonical UnaryNaNPropagationMode = iota
	UnaryNaNFirst
)

type UnaryNaNPropagationResult uint8

const (
	UnaryNaNResultCanonical UnaryNaNPropagationResult = iota
	UnaryNaNResultFirst
)

// Calculate picks Canonical or First for a unary op's single NaN
// operand class; the caller has already established that class is NaN.
func (m UnaryNaNPropagationMode) Calculate(class FloatClass) UnaryNaNPropagationResult {
	if m == UnaryNaNFirst {
		return UnaryNaNResultFirst
	}
	return UnaryNaNResultCanonical
}

type BinaryNaNPropagationMode uint8

const (
	BinaryNaNAlwaysCanonical BinaryNaNPropagationMode = iota
	BinaryNaNFirstSecond
	BinaryNaNSecondFirst
	BinaryNaNFirstSecondPreferringSNaN
	BinaryNaNSecondFirstPreferringSNaN
)

type BinaryNaNPropagationResult uint8

const (
	BinaryNaNResultCanonical BinaryNaNPropagationResult = iota
	BinaryNaNResultFirst
	BinaryNaNResultSecond
)

// Calculate scans first/second (or second/first) in priority order for
// a NaN operand, optionally first for a signaling NaN specifically,
// falling back to Canonical if neither operand is a NaN.
func (m BinaryNaNPropagationMode) Calculate(first, second FloatClass) BinaryNaNPropagationResult {
	if m == BinaryNaNAlwaysCanonical {
		return BinaryNaNResultCanonical
	}
	order := [2]BinaryNaNPropagationResult{BinaryNaNResultFirst, BinaryNaNResultSecond}
	classes := [2]FloatClass{first, second}
	if m == BinaryNaNSecondFirst || m == BinaryNaNSecondFirstPreferringSNaN {
		order[0], order[1] = order[1], order[0]
		classes[0], classes[1] = classes[1], classes[0]
	}
	preferSNaN := m == BinaryNaNFirstSecondPreferringSNaN || m == BinaryNaNSecondFirstPreferringSNaN
	if preferSNaN {
		for i, c := range classes {
			if c.IsSignalingNaN() {
				return order[i]
			}
		}
	}
	for i, c := range classes {
		if c.IsNaN() {
			return order[i]
		}
	}
	return BinaryNaNResultCanonical
}

type TernaryNaNPropagationMode uint8

const (
	TernaryNaNAlwaysCanonical TernaryNaNPropagationMode = iota
	TernaryNaNFirstSecondThird
	TernaryNaNFirstThirdSecond
	TernaryNaNSecondFirstThird
	TernaryNaNSecondThirdFirst
	TernaryNaNThirdFirstSecond
	TernaryNaNThirdSecondFirst
	TernaryNaNFirstSecondThirdPreferringSNaN
	TernaryNaNFirstThirdSecondPreferringSNaN
	TernaryNaNSecondFirstThirdPreferringSNaN
	TernaryNaNSecondThirdFirstPreferringSNaN
	TernaryNaNThirdFirstSecondPreferringSNaN
	TernaryNaNThirdSecondFirstPreferringSNaN
)

type TernaryNaNPropagationResult uint8

const (
	TernaryNaNResultCanonical TernaryNaNPropagationResult = iota
	TernaryNaNResultFirst
	TernaryNaNResultSecond
	TernaryNaNResultThird
)

// ternaryOrders maps each ordered (non-PreferringSNaN) mode to the
// priority order of operand results it scans.
var ternaryOrders = map[TernaryNaNPropagationMode][3]TernaryNaNPropagationResult{
	TernaryNaNFirstSecondThird: {TernaryNaNResultFirst, TernaryNaNResultSecond, TernaryNaNResultThird},
	TernaryNaNFirstThirdSecond: {TernaryNaNResultFirst, TernaryNaNResultThird, TernaryNaNResultSecond},
	TernaryNaNSecondFirstThird: {TernaryNaNResultSecond, TernaryNaNResultFirst, TernaryNaNResultThird},
	TernaryNaNSecondThirdFirst: {TernaryNaNResultSecond, TernaryNaNResultThird, TernaryNaNResultFirst},
	TernaryNaNThirdFirstSecond: {TernaryNaNResultThird, TernaryNaNResultFirst, TernaryNaNResultSecond},
	TernaryNaNThirdSecondFirst: {TernaryNaNResultThird, TernaryNaNResultSecond, TernaryNaNResultFirst},
}

// baseTernaryMode strips a PreferringSNaN suffix, returning the
// unsuffixed ordering mode and whether the suffix was present.
func baseTernaryMode(m TernaryNaNPropagationMode) (TernaryNaNPropagationMode, bool) {
	switch m {
	case TernaryNaNFirstSecondThirdPreferringSNaN:
		return TernaryNaNFirstSecondThird, true
	case TernaryNaNFirstThirdSecondPreferringSNaN:
		return TernaryNaNFirstThirdSecond, true
	case TernaryNaNSecondFirstThirdPreferringSNaN:
		return TernaryNaNSecondFirstThird, true
	case TernaryNaNSecondThirdFirstPreferringSNaN:
		return TernaryNaNSecondThirdFirst, true
	case TernaryNaNThirdFirstSecondPreferringSNaN:
		return TernaryNaNThirdFirstSecond, true
	case TernaryNaNThirdSecondFirstPreferringSNaN:
		return TernaryNaNThirdSecondFirst, true
	default:
		return m, false
	}
}

// Calculate scans the three operand classes in the mode's priority
// order for a NaN (preferring a signaling NaN first, for the
// PreferringSNaN variants), falling back to Canonical.
func (m TernaryNaNPropagationMode) Calculate(first, second, third FloatClass) TernaryNaNPropagationResult {
	if m == TernaryNaNAlwaysCanonical {
		return TernaryNaNResultCanonical
	}
	base, preferSNaN := baseTernaryMode(m)
	order, ok := ternaryOrders[base]
	if !ok {
		return TernaryNaNResultCanonical
	}
	classOf := func(r TernaryNaNPropagationResult) FloatClass {
		switch r {
		case TernaryNaNResultFirst:
			return first
		case TernaryNaNResultSecond:
			return second
		default:
			return third
		}
	}
	if preferSNaN {
		for _, r := range order {
			if classOf(r).IsSignalingNaN() {
				return r
			}
		}
	}
	for _, r := range order {
		if classOf(r).IsNaN() {
			return r
		}
	}
	return TernaryNaNResultCanonical
}

// FloatToFloatConversionNaNPropagationMode selects how a float-to-float
// conversion derives the destination NaN payload.
type FloatToFloatConversionNaNPropagationMode uint8

const (
	FloatToFloatAlwaysCanonical FloatToFloatConversionNaNPropagationMode = iota
	FloatToFloatRetainMostSignificantBits
)

// FMAInfZeroQNaNResult selects fused-multiply-add's behaviour when the
// product is an invalid 0*Inf and the addend is a quiet NaN.
type FMAInfZeroQNaNResult uint8

const (
	FMAFollowNaNPropagationMode FMAInfZeroQNaNResult = iota
	FMACanonicalAndGenerateInvalid
	FMAPropagateAndGenerateInvalid
)

// isNaNQuiet reports whether a mantissa field with its MSB set as
// given is, under fmt's platform convention, a quiet NaN.
func isNaNQuiet(fmt FloatProperties, mantissaMSBSet bool) bool {
	return mantissaMSBSet == fmt.Platform().CanonicalNaNMantissaMSB
}

// canonicalNaNMantissaField builds the mantissa field of fmt's
// canonical quiet NaN.
func canonicalNaNMantissaField(fmt FloatProperties) *big.Int {
	fw := fmt.FractionWidth()
	var field *big.Int
	if fmt.Platform().CanonicalNaNMantissaMSB {
		field = pow2(fw - 1)
	} else {
		field = pow2(fw - 2)
	}
	if !fmt.HasImplicitLeadingBit() {
		field = new(big.Int).Or(field, pow2(fmt.MantissaWidth()-1))
	}
	return field
}

// CanonicalNaN returns the bit pattern of fmt's canonical quiet NaN.
func CanonicalNaN(fmt FloatProperties) *big.Int {
	return Pack(fmt.Platform().CanonicalNaNSign, fmt.ExponentInfNaN(), canonicalNaNMantissaField(fmt), fmt)
}

// quietenNaN returns bits (known to encode a NaN in fmt) with the
// mantissa MSB forced to the quiet value of fmt's convention, keeping
// the remaining payload bits untouched.
func quietenNaN(bits *big.Int, fmt FloatProperties) *big.Int {
	sign, exp, mant := Unpack(bits, fmt)
	mant = new(big.Int).Set(mant)
	msbIndex := int(fmt.FractionWidth() - 1)
	if fmt.Platform().CanonicalNaNMantissaMSB {
		mant.SetBit(mant, msbIndex, 1)
	} else {
		mant.SetBit(mant, msbIndex, 0)
	}
	return Pack(sign, exp, mant, fmt)
}
