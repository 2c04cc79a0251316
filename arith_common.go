package softfloat

import "math/big"

// Helpers shared by add.go, muldiv.go, sqrt.go, and convert.go for
// turning a known-finite operand into its exact real value, and for
// manufacturing the canonical-NaN / invalid-operation responses common
// to every operation's NaN branch.

// toExactRat returns the exact nonnegative magnitude of a known-finite
// (non-NaN, non-infinite) operand, alongside its sign.
func toExactRat(bits *big.Int, fmt FloatProperties) (sign Sign, magnitude *big.Rat) {
	sign, exponentField, mantissaField := Unpack(bits, fmt)
	fw := int(fmt.FractionWidth())
	var significand *big.Int
	var trueExp int
	if exponentField.Sign() == 0 {
		significand = mantissaField
		trueExp = minNormalTrueExponent(fmt)
	} else {
		trueExp = int(exponentField.Int64()) - exponentBiasInt(fmt)
		if fmt.HasImplicitLeadingBit() {
			significand = new(big.Int).Or(mantissaField, pow2(uint(fw)))
		} else {
			significand = mantissaField
		}
	}
	magnitude = new(big.Rat).SetInt(significand)
	magnitude.Mul(magnitude, pow2Rat(trueExp-fw))
	return sign, magnitude
}

// invalidQuietNaN raises INVALID_OPERATION and returns the canonical
// quiet NaN: the response every op manufactures for a condition that
// is invalid but involves no propagated NaN operand.
func invalidQuietNaN(fmt FloatProperties, state FPState) (*big.Int, FPState) {
	state.StatusFlags = state.StatusFlags.withInvalidOperation()
	return CanonicalNaN(fmt), state
}

// binaryNaNResponse resolves the two-operand NaN-propagation branch
// shared by add/sub/mul/div/compare-adjacent ops: it raises
// INVALID_OPERATION if either operand is a signaling NaN, then returns
// a (possibly quietened) operand NaN or the canonical NaN per fmt's
// BinaryNaNPropagationMode.
func binaryNaNResponse(firstBits *big.Int, firstClass FloatClass, secondBits *big.Int, secondClass FloatClass, fmt FloatProperties, state FPState) (*big.Int, FPState) {
	if firstClass.IsSignalingNaN() || secondClass.IsSignalingNaN() {
		state.StatusFlags = state.StatusFlags.withInvalidOperation()
	}
	switch fmt.Platform().ArithmeticNaNPropagationMode.Calculate(firstClass, secondClass) {
	case BinaryNaNResultFirst:
		return quietenNaN(firstBits, fmt), state
	case BinaryNaNResultSecond:
		return quietenNaN(secondBits, fmt), state
	default:
		return CanonicalNaN(fmt), state
	}
}

// unaryNaNResponse resolves the single-operand NaN-propagation branch
// shared by sqrt/rsqrt/roundToIntegral/nextUp-nextDown/scaleB.
func unaryNaNResponse(bits *big.Int, class FloatClass, mode UnaryNaNPropagationMode, fmt FloatProperties, state FPState) (*big.Int, FPState) {
	if class.IsSignalingNaN() {
		state.StatusFlags = state.StatusFlags.withInvalidOperation()
	}
	if mode.Calculate(class) == UnaryNaNResultFirst {
		return quietenNaN(bits, fmt), state
	}
	return CanonicalNaN(fmt), state
}
