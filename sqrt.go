package softfloat

import "math/big"

// Square root and reciprocal square root. Sqrt's result is generally
// irrational and cannot be carried as a big.Rat; instead we compute
// the floor of the scaled radicand's integer square root
// (big.Int.Sqrt) and determine the rounding boundary by comparing the
// exact scaled radicand against the candidate's and its neighbour's
// exact squares -- a comparison that, unlike the radical itself, is
// always exactly representable as a big.Rat.

// Reciprocal computes 1/x in fmt under state's rounding mode. It is
// not a distinct primitive; it falls directly out of Divide(1, x),
// which already implements every special case reciprocal needs
// (divide-by-zero raises DIVISION_BY_ZERO, and so on).
func Reciprocal(x *big.Int, fmt FloatProperties, state FPState) (*big.Int, FPState) {
	return Divide(oneBits(fmt), x, fmt, state)
}

func oneBits(fmt FloatProperties) *big.Int {
	return Pack(Positive, fmt.ExponentBias(), new(big.Int), fmt)
}

// floorDivBy2 is floor(a/2) for any integer a, including negative a
// (Go's native / truncates toward zero, which is wrong for negative a).
func floorDivBy2(a int) int {
	if a >= 0 || a%2 == 0 {
		return a / 2
	}
	return a/2 - 1
}

// sqrtRoundToFloat rounds sqrt(magnitude) (magnitude > 0) into fmt.
func sqrtRoundToFloat(sign Sign, magnitude *big.Rat, fmt FloatProperties, state FPState) (*big.Int, FPState) {
	e0 := ratFloorLog2(magnitude)
	minTrueExp := minNormalTrueExponent(fmt)
	candidateExp := floorDivBy2(e0)
	eUsed := candidateExp
	if eUsed < minTrueExp {
		eUsed = minTrueExp
	}
	fw := int(fmt.FractionWidth())
	scaleExp := 2 * (fw - eUsed)
	scaledRat := new(big.Rat).Mul(magnitude, pow2Rat(scaleExp))

	num, den := scaledRat.Num(), scaledRat.Denom()
	product := new(big.Int).Mul(num, den)
	sqrtProduct := new(big.Int).Sqrt(product)
	// floor(floor(sqrt(P))/den) == floor(sqrt(P)/den) == floor(sqrt(num/den))
	// for any positive integer den (nested-floor identity).
	n := new(big.Int).Div(sqrtProduct, den)

	nSquared := new(big.Rat).SetInt(new(big.Int).Mul(n, n))
	var decision roundingDecision
	if scaledRat.Cmp(nSquared) == 0 {
		decision = roundingDecision{exact: true}
	} else {
		twoNPlus1 := new(big.Int).Add(new(big.Int).Lsh(n, 1), bigOne)
		quarterSquared := new(big.Rat).SetFrac(new(big.Int).Mul(twoNPlus1, twoNPlus1), big.NewInt(4))
		cmp := scaledRat.Cmp(quarterSquared)
		decision = roundingDecision{tie: cmp == 0, above: cmp > 0}
	}

	tinyBefore := candidateExp < minTrueExp
	return finishRounding(sign, eUsed, n, decision, tinyBefore, fmt, state)
}

// Sqrt computes the correctly-rounded square root of x.
func Sqrt(x *big.Int, fmt FloatProperties, state FPState) (*big.Int, FPState) {
	class := Classify(x, fmt)
	if class.IsNaN() {
		return unaryNaNResponse(x, class, fmt.Platform().SqrtNaNPropagationMode, fmt, state)
	}
	if class.IsZero() {
		sign, _, _ := Unpack(x, fmt)
		resultSign := sign
		if sign == Negative {
			resultSign = fmt.Platform().NegativeZeroSqrtSign
		}
		return Pack(resultSign, new(big.Int), new(big.Int), fmt), state
	}
	if class.IsPositiveInfinity() {
		return Pack(Positive, fmt.ExponentInfNaN(), new(big.Int), fmt), state
	}
	if class.Sign() == Negative {
		return invalidQuietNaN(fmt, state)
	}
	_, magnitude := toExactRat(x, fmt)
	return sqrtRoundToFloat(Positive, magnitude, fmt, state)
}

// Rsqrt computes 1/sqrt(x).
func Rsqrt(x *big.Int, fmt FloatProperties, state FPState) (*big.Int, FPState) {
	class := Classify(x, fmt)
	if class.IsNaN() {
		return unaryNaNResponse(x, class, fmt.Platform().RsqrtNaNPropagationMode, fmt, state)
	}
	if class.IsZero() {
		sign, _, _ := Unpack(x, fmt)
		state.StatusFlags = state.StatusFlags.withDivisionByZero()
		return Pack(sign, fmt.ExponentInfNaN(), new(big.Int), fmt), state
	}
	if class.IsPositiveInfinity() {
		return Pack(Positive, new(big.Int), new(big.Int), fmt), state
	}
	if class.Sign() == Negative {
		return invalidQuietNaN(fmt, state)
	}
	_, magnitude := toExactRat(x, fmt)
	reciprocal := new(big.Rat).Inv(magnitude)
	return sqrtRoundToFloat(Positive, reciprocal, fmt, state)
}
