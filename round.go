package softfloat

import "math/big"

// The rounding engine: given a sign and an exact nonnegative magnitude
// (or, for square roots, an exact magnitude known only up to a
// comparison against candidate rounding boundaries), produces the
// correctly rounded bounded result plus updated status flags. This is
// also where the sign-of-exact-cancellation rule for zero results
// lives, centralized in one place rather than duplicated per op.

// roundingDecision summarises where an exact value sits relative to the
// midpoint between two candidate integer mantissas ("lower" and
// "lower+1"), without needing to represent the (possibly irrational,
// for square roots) remainder itself.
type roundingDecision struct {
	exact bool // remainder is exactly zero: lower is already correct
	tie   bool // remainder is exactly one half ulp
	above bool // remainder is strictly more than one half ulp
}

func classifyRemainder(remainder *big.Rat) roundingDecision {
	if remainder.Sign() == 0 {
		return roundingDecision{exact: true}
	}
	cmp := remainder.Cmp(big.NewRat(1, 2))
	return roundingDecision{tie: cmp == 0, above: cmp > 0}
}

// pow2Rat returns 2^n as a big.Rat, for any (possibly negative) n.
func pow2Rat(n int) *big.Rat {
	r := new(big.Rat)
	if n >= 0 {
		r.SetInt(pow2(uint(n)))
	} else {
		r.SetFrac(bigOne, pow2(uint(-n)))
	}
	return r
}

// ratFloorLog2 returns floor(log2(r)) for r > 0.
func ratFloorLog2(r *big.Rat) int {
	num, den := r.Num(), r.Denom()
	e := num.BitLen() - den.BitLen()
	for compareRatToPow2(num, den, e) < 0 {
		e--
	}
	for compareRatToPow2(num, den, e+1) >= 0 {
		e++
	}
	return e
}

func compareRatToPow2(num, den *big.Int, e int) int {
	lhs, rhs := new(big.Int).Set(num), new(big.Int).Set(den)
	if e >= 0 {
		rhs.Lsh(rhs, uint(e))
	} else {
		lhs.Lsh(lhs, uint(-e))
	}
	return lhs.Cmp(rhs)
}

// ratFloor returns floor(r) for r >= 0.
func ratFloor(r *big.Rat) *big.Int {
	return new(big.Int).Div(r.Num(), r.Denom())
}

func exponentBiasInt(fmt FloatProperties) int {
	return int(fmt.ExponentBias().Int64())
}

// minNormalTrueExponent, maxNormalTrueExponent are the smallest and
// largest unbiased exponents a normal number may carry in fmt.
func minNormalTrueExponent(fmt FloatProperties) int { return 1 - exponentBiasInt(fmt) }
func maxNormalTrueExponent(fmt FloatProperties) int { return exponentBiasInt(fmt) }

// cancellationZeroSign is IEEE 754 §6.3's rule for the sign of a zero
// produced by an exact result with no operand sign of its own to
// inherit: positive under every rounding mode except TowardNegative.
func cancellationZeroSign(mode RoundingMode) Sign {
	if mode == TowardNegative {
		return Negative
	}
	return Positive
}

// decideRoundUp reports whether the rounding engine should choose the
// upper candidate (lower+1) instead of the lower one, given the
// rounding mode, the result's sign, and where the exact value falls
// relative to the midpoint.
func decideRoundUp(mode RoundingMode, sign Sign, lower *big.Int, decision roundingDecision) bool {
	if decision.exact {
		return false
	}
	switch mode {
	case TowardZero:
		return false
	case TowardPositive:
		return sign == Positive
	case TowardNegative:
		return sign == Negative
	case TiesToAway:
		if decision.tie {
			return true
		}
		return decision.above
	default: // TiesToEven
		if decision.tie {
			return lower.Bit(0) == 1
		}
		return decision.above
	}
}

// finishRounding applies the carry-out, overflow, and underflow/inexact
// logic common to every rounding front-end, given the candidate
// unbounded exponent eUsed, the floor mantissa lower at that exponent's
// ulp, and where the exact value sits relative to lower/lower+1.
func finishRounding(sign Sign, eUsed int, lower *big.Int, decision roundingDecision, tinyBeforeRounding bool, fmt FloatProperties, state FPState) (*big.Int, FPState) {
	fw := int(fmt.FractionWidth())
	flags := state.StatusFlags
	inexact := !decision.exact

	chosen := new(big.Int).Set(lower)
	if decideRoundUp(state.RoundingMode, sign, lower, decision) {
		chosen.Add(lower, bigOne)
	}

	// Carry-out: rounding pushed the significand one bit past the
	// normal range (e.g. 0x7FF -> 0x800 for an 11-bit significand);
	// renormalise by bumping the exponent and halving the mantissa.
	if chosen.BitLen() == fw+2 {
		eUsed++
		chosen = new(big.Int).Rsh(chosen, 1)
	}

	maxTrueExp := maxNormalTrueExponent(fmt)
	minTrueExp := minNormalTrueExponent(fmt)

	if eUsed > maxTrueExp {
		flags = flags.withOverflow().withInexact()
		yieldsLargestFinite := state.RoundingMode == TowardZero ||
			(state.RoundingMode == TowardNegative && sign == Positive) ||
			(state.RoundingMode == TowardPositive && sign == Negative)
		newState := FPState{RoundingMode: state.RoundingMode, StatusFlags: flags, ExceptionHandlingMode: state.ExceptionHandlingMode}
		if yieldsLargestFinite {
			return Pack(sign, fmt.ExponentMaxNormal(), fmt.MantissaMask(), fmt), newState
		}
		return Pack(sign, fmt.ExponentInfNaN(), new(big.Int), fmt), newState
	}

	var biasedExponent *big.Int
	var mantissaField *big.Int
	pow2fw := pow2(uint(fw))
	if chosen.Cmp(pow2fw) >= 0 {
		mantissaField = new(big.Int).Sub(chosen, pow2fw)
		biasedExponent = big.NewInt(int64(eUsed) + int64(exponentBiasInt(fmt)))
	} else {
		// Subnormal (or exact zero): eUsed must be minTrueExp here,
		// since any larger candidate exponent always carries a set
		// top bit at this precision.
		mantissaField = chosen
		biasedExponent = new(big.Int)
	}
	_ = minTrueExp

	if inexact {
		flags = flags.withInexact()
	}
	tinyAfterRounding := biasedExponent.Sign() == 0
	var tiny bool
	if fmt.Platform().DefaultTininessMode == BeforeRounding {
		tiny = tinyBeforeRounding
	} else {
		tiny = tinyAfterRounding
	}
	if tiny {
		if inexact {
			flags = flags.withUnderflow()
		} else if state.ExceptionHandlingMode == SignalExactUnderflow {
			flags = flags.withUnderflow()
		}
	}

	newState := FPState{RoundingMode: state.RoundingMode, StatusFlags: flags, ExceptionHandlingMode: state.ExceptionHandlingMode}
	return Pack(sign, biasedExponent, mantissaField, fmt), newState
}

// roundRealToFloat rounds an exact signed real value, given as a sign
// and a nonnegative magnitude, into fmt using state's rounding mode,
// and returns the result bits and updated flags. A magnitude of
// exactly zero is the exact-cancellation case: its sign follows
// cancellationZeroSign rather than the sign argument.
func roundRealToFloat(sign Sign, magnitude *big.Rat, fmt FloatProperties, state FPState) (*big.Int, FPState) {
	if magnitude.Sign() == 0 {
		zeroSign := cancellationZeroSign(state.RoundingMode)
		return Pack(zeroSign, new(big.Int), new(big.Int), fmt), state
	}

	e0 := ratFloorLog2(magnitude)
	minTrueExp := minNormalTrueExponent(fmt)
	eUsed := e0
	if eUsed < minTrueExp {
		eUsed = minTrueExp
	}
	fw := int(fmt.FractionWidth())
	ulpExp := eUsed - fw
	valueInUlps := new(big.Rat).Mul(magnitude, pow2Rat(-ulpExp))
	lower := ratFloor(valueInUlps)
	remainder := new(big.Rat).Sub(valueInUlps, new(big.Rat).SetInt(lower))
	decision := classifyRemainder(remainder)
	tinyBefore := e0 < minTrueExp

	return finishRounding(sign, eUsed, lower, decision, tinyBefore, fmt, state)
}
