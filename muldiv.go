package softfloat

import "math/big"

// Multiply, Divide, and fused multiply-add.

// Multiply computes a*b in fmt under state's rounding mode.
func Multiply(a, b *big.Int, fmt FloatProperties, state FPState) (*big.Int, FPState) {
	aClass := Classify(a, fmt)
	bClass := Classify(b, fmt)
	if aClass.IsNaN() || bClass.IsNaN() {
		return binaryNaNResponse(a, aClass, b, bClass, fmt, state)
	}
	productSign := aClass.Sign().Mul(bClass.Sign())
	if (aClass.IsInfinity() && bClass.IsZero()) || (aClass.IsZero() && bClass.IsInfinity()) {
		return invalidQuietNaN(fmt, state)
	}
	if aClass.IsInfinity() || bClass.IsInfinity() {
		return Pack(productSign, fmt.ExponentInfNaN(), new(big.Int), fmt), state
	}
	if aClass.IsZero() || bClass.IsZero() {
		return Pack(productSign, new(big.Int), new(big.Int), fmt), state
	}
	_, magA := toExactRat(a, fmt)
	_, magB := toExactRat(b, fmt)
	product := new(big.Rat).Mul(magA, magB)
	return roundRealToFloat(productSign, product, fmt, state)
}

// Divide computes a/b in fmt under state's rounding mode.
func Divide(a, b *big.Int, fmt FloatProperties, state FPState) (*big.Int, FPState) {
	aClass := Classify(a, fmt)
	bClass := Classify(b, fmt)
	if aClass.IsNaN() || bClass.IsNaN() {
		return binaryNaNResponse(a, aClass, b, bClass, fmt, state)
	}
	quotientSign := aClass.Sign().Mul(bClass.Sign())
	if aClass.IsZero() && bClass.IsZero() {
		return invalidQuietNaN(fmt, state)
	}
	if aClass.IsInfinity() && bClass.IsInfinity() {
		return invalidQuietNaN(fmt, state)
	}
	if aClass.IsInfinity() {
		return Pack(quotientSign, fmt.ExponentInfNaN(), new(big.Int), fmt), state
	}
	if bClass.IsInfinity() {
		return Pack(quotientSign, new(big.Int), new(big.Int), fmt), state
	}
	if bClass.IsZero() {
		state.StatusFlags = state.StatusFlags.withDivisionByZero()
		return Pack(quotientSign, fmt.ExponentInfNaN(), new(big.Int), fmt), state
	}
	if aClass.IsZero() {
		return Pack(quotientSign, new(big.Int), new(big.Int), fmt), state
	}
	_, magA := toExactRat(a, fmt)
	_, magB := toExactRat(b, fmt)
	quotient := new(big.Rat).Quo(magA, magB)
	return roundRealToFloat(quotientSign, quotient, fmt, state)
}

// FusedMultiplyAdd computes a*b+c with a single rounding step, never
// rounding the intermediate product.
func FusedMultiplyAdd(a, b, c *big.Int, fmt FloatProperties, state FPState) (*big.Int, FPState) {
	aClass := Classify(a, fmt)
	bClass := Classify(b, fmt)
	cClass := Classify(c, fmt)
	productSign := aClass.Sign().Mul(bClass.Sign())
	isInfZero := (aClass.IsInfinity() && bClass.IsZero()) || (aClass.IsZero() && bClass.IsInfinity())

	if aClass.IsNaN() || bClass.IsNaN() || cClass.IsNaN() {
		if aClass.IsSignalingNaN() || bClass.IsSignalingNaN() || cClass.IsSignalingNaN() {
			state.StatusFlags = state.StatusFlags.withInvalidOperation()
		}
		if isInfZero && cClass.IsQuietNaN() {
			switch fmt.Platform().FMAInfZeroQNaNResult {
			case FMACanonicalAndGenerateInvalid:
				state.StatusFlags = state.StatusFlags.withInvalidOperation()
				return CanonicalNaN(fmt), state
			case FMAPropagateAndGenerateInvalid:
				state.StatusFlags = state.StatusFlags.withInvalidOperation()
				return quietenNaN(c, fmt), state
			case FMAFollowNaNPropagationMode:
				// fall through to the generic ternary propagation below
			}
		}
		switch fmt.Platform().FMANaNPropagationMode.Calculate(aClass, bClass, cClass) {
		case TernaryNaNResultFirst:
			return quietenNaN(a, fmt), state
		case TernaryNaNResultSecond:
			return quietenNaN(b, fmt), state
		case TernaryNaNResultThird:
			return quietenNaN(c, fmt), state
		default:
			return CanonicalNaN(fmt), state
		}
	}

	if isInfZero || ((aClass.IsInfinity() || bClass.IsInfinity()) && cClass.IsInfinity() && productSign != cClass.Sign()) {
		return invalidQuietNaN(fmt, state)
	}
	if (aClass.IsZero() || bClass.IsZero()) && cClass.IsZero() && productSign == cClass.Sign() {
		return Pack(productSign, new(big.Int), new(big.Int), fmt), state
	}
	if cClass.IsInfinity() {
		return Pack(cClass.Sign(), fmt.ExponentInfNaN(), new(big.Int), fmt), state
	}
	if aClass.IsInfinity() || bClass.IsInfinity() {
		return Pack(productSign, fmt.ExponentInfNaN(), new(big.Int), fmt), state
	}

	sA, magA := toExactRat(a, fmt)
	sB, magB := toExactRat(b, fmt)
	sC, magC := toExactRat(c, fmt)
	product := new(big.Rat).Mul(signedRat(sA, magA), signedRat(sB, magB))
	sum := new(big.Rat).Add(product, signedRat(sC, magC))

	resultSign := Positive
	if sum.Sign() < 0 {
		resultSign = Negative
	}
	magnitude := new(big.Rat).Abs(sum)
	return roundRealToFloat(resultSign, magnitude, fmt, state)
}
