package softfloat

import "math/big"

// FloatClass is the total classification of an encoded value: exactly
// one of these ten kinds for every bit pattern in every well-formed
// format.
type FloatClass uint8

const (
	NegativeInfinity FloatClass = iota
	NegativeNormal
	NegativeSubnormal
	NegativeZero
	PositiveZero
	PositiveSubnormal
	PositiveNormal
	PositiveInfinity
	QuietNaN
	SignalingNaN
)

func (c FloatClass) String() string {
	switch c {
	case NegativeInfinity:
		return "NegativeInfinity"
	case NegativeNormal:
		return "NegativeNormal"
	case NegativeSubnormal:
		return "NegativeSubnormal"
	case NegativeZero:
		return "NegativeZero"
	case PositiveZero:
		return "PositiveZero"
	case PositiveSubnormal:
		return "PositiveSubnormal"
	case PositiveNormal:
		return "PositiveNormal"
	case PositiveInfinity:
		return "PositiveInfinity"
	case QuietNaN:
		return "QuietNaN"
	case SignalingNaN:
		return "SignalingNaN"
	default:
		return "FloatClass(?)"
	}
}

func (c FloatClass) IsNaN() bool          { return c == QuietNaN || c == SignalingNaN }
func (c FloatClass) IsQuietNaN() bool     { return c == QuietNaN }
func (c FloatClass) IsSignalingNaN() bool { return c == SignalingNaN }
func (c FloatClass) IsInfinity() bool {
	return c == NegativeInfinity || c == PositiveInfinity
}
func (c FloatClass) IsPositiveInfinity() bool { return c == PositiveInfinity }
func (c FloatClass) IsNegativeInfinity() bool { return c == NegativeInfinity }
func (c FloatClass) IsZero() bool {
	return c == NegativeZero || c == PositiveZero
}
func (c FloatClass) IsSubnormal() bool {
	return c == NegativeSubnormal || c == PositiveSubnormal
}
func (c FloatClass) IsNormal() bool {
	return c == NegativeNormal || c == PositiveNormal
}

// IsFinite reports whether c is zero, subnormal, or normal.
func (c FloatClass) IsFinite() bool {
	return !c.IsNaN() && !c.IsInfinity()
}

// Sign returns the sign carried by classes that have one; NaN classes
// return Positive since sign is not meaningful for them.
func (c FloatClass) Sign() Sign {
	switch c {
	case NegativeInfinity, NegativeNormal, NegativeSubnormal, NegativeZero:
		return Negative
	default:
		return Positive
	}
}

// Unpack splits bits into its sign, biased exponent field, and
// mantissa field according to fmt. Unpack and Pack are mutual inverses
// for in-range fields.
func Unpack(bits *big.Int, fmt FloatProperties) (sign Sign, biasedExponent *big.Int, mantissaField *big.Int) {
	mantissaField = new(big.Int).And(bits, fmt.MantissaMask())
	exponentShifted := new(big.Int).Rsh(bits, fmt.MantissaWidth())
	biasedExponent = new(big.Int).And(exponentShifted, fmt.ExponentMask())
	sign = Positive
	if fmt.HasSignBit() {
		signShift := fmt.ExponentWidth() + fmt.MantissaWidth()
		if bitAt(bits, signShift) {
			sign = Negative
		}
	}
	return sign, biasedExponent, mantissaField
}

// Pack combines a sign, biased exponent field, and mantissa field into
// a bit pattern, masking each field to its width.
func Pack(sign Sign, biasedExponent *big.Int, mantissaField *big.Int, fmt FloatProperties) *big.Int {
	exp := new(big.Int).And(biasedExponent, fmt.ExponentMask())
	mant := new(big.Int).And(mantissaField, fmt.MantissaMask())
	result := new(big.Int).Lsh(exp, fmt.MantissaWidth())
	result.Or(result, mant)
	if fmt.HasSignBit() && sign == Negative {
		result.SetBit(result, int(fmt.ExponentWidth()+fmt.MantissaWidth()), 1)
	}
	return result
}

// Classify returns the class of bits under fmt. Classification is a
// total function of (bits, fmt): every combination falls into exactly
// one of the ten FloatClass values.
func Classify(bits *big.Int, fmt FloatProperties) FloatClass {
	sign, exponent, mantissa := Unpack(bits, fmt)
	switch {
	case exponent.Sign() == 0:
		if mantissa.Sign() == 0 {
			if sign == Negative {
				return NegativeZero
			}
			return PositiveZero
		}
		if sign == Negative {
			return NegativeSubnormal
		}
		return PositiveSubnormal
	case exponent.Cmp(fmt.ExponentInfNaN()) == 0:
		if mantissa.Sign() == 0 {
			if sign == Negative {
				return NegativeInfinity
			}
			return PositiveInfinity
		}
		msbSet := bitAt(mantissa, fmt.FractionWidth()-1)
		if isNaNQuiet(fmt, msbSet) {
			return QuietNaN
		}
		return SignalingNaN
	default:
		if sign == Negative {
			return NegativeNormal
		}
		return PositiveNormal
	}
}
