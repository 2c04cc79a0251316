package softfloat

import "math/big"

// PlatformProperties captures the handful of IEEE 754 implementation-
// defined policy choices as a closed enumerated record, rather than as
// open-ended callback hooks, so that behaviour stays a total function
// of inputs.
type PlatformProperties struct {
	// CanonicalNaNSign is the sign bit of a manufactured canonical NaN.
	CanonicalNaNSign Sign
	// CanonicalNaNMantissaMSB is both the mantissa-field MSB of a
	// manufactured canonical NaN and, by construction, the convention
	// for "is this NaN quiet": true means MSB-set signals quiet
	// (the Standard convention); false means MSB-set signals
	// signaling (the MIPS-legacy convention). It is intentionally not
	// a separate stored field: the quiet-NaN convention and the
	// canonical payload's MSB are the same bit in every real platform.
	CanonicalNaNMantissaMSB bool

	DefaultTininessMode          TininessDetectionMode
	DefaultExceptionHandlingMode ExceptionHandlingMode

	ArithmeticNaNPropagationMode      BinaryNaNPropagationMode
	FMANaNPropagationMode             TernaryNaNPropagationMode
	RoundToIntegralNaNPropagationMode UnaryNaNPropagationMode
	NextUpOrDownNaNPropagationMode    UnaryNaNPropagationMode
	ScaleBNaNPropagationMode          UnaryNaNPropagationMode
	SqrtNaNPropagationMode            UnaryNaNPropagationMode
	RsqrtNaNPropagationMode           UnaryNaNPropagationMode
	FloatToFloatConversionNaNMode     FloatToFloatConversionNaNPropagationMode

	FMAInfZeroQNaNResult FMAInfZeroQNaNResult

	// NegativeZeroSqrtSign is the sign of sqrt(-0); IEEE 754 leaves
	// this a platform choice, though every real platform chooses -0.
	NegativeZeroSqrtSign Sign

	// InvalidIntConversion selects what a float-to-integer conversion
	// returns on a NaN, infinite, or out-of-range input.
	InvalidIntConversion IntConversionPolicy
}

// IntConversionPolicy selects the result of an invalid (NaN, infinite,
// or out-of-range) float-to-integer conversion.
type IntConversionPolicy uint8

const (
	// IntConversionSaturate clamps to the nearest representable
	// endpoint of the destination width (matching, e.g., x86
	// CVTTSS2SI's "integer indefinite" adapted to saturation, and
	// ARM's documented saturating behaviour). A NaN input yields zero.
	IntConversionSaturate IntConversionPolicy = iota
	// IntConversionSentinel returns no value at all (ok=false);
	// callers distinguish "no result" from any representable integer.
	IntConversionSentinel
)

// newSimplePlatformProperties builds a PlatformProperties from a
// reduced parameter set, applying one unary NaN-propagation mode
// uniformly to round-to-integral/nextUp-nextDown/scaleB/sqrt/rsqrt.
func newSimplePlatformProperties(
	canonicalNaNSign Sign,
	canonicalNaNMantissaMSB bool,
	arithmeticMode BinaryNaNPropagationMode,
	fmaMode TernaryNaNPropagationMode,
	unaryMode UnaryNaNPropagationMode,
	floatToFloatMode FloatToFloatConversionNaNPropagationMode,
	fmaInfZeroQNaN FMAInfZeroQNaNResult,
) PlatformProperties {
	return PlatformProperties{
		CanonicalNaNSign:                  canonicalNaNSign,
		CanonicalNaNMantissaMSB:           canonicalNaNMantissaMSB,
		DefaultTininessMode:               AfterRounding,
		DefaultExceptionHandlingMode:      IgnoreExactUnderflow,
		ArithmeticNaNPropagationMode:      arithmeticMode,
		FMANaNPropagationMode:             fmaMode,
		RoundToIntegralNaNPropagationMode: unaryMode,
		NextUpOrDownNaNPropagationMode:    unaryMode,
		ScaleBNaNPropagationMode:          unaryMode,
		SqrtNaNPropagationMode:            unaryMode,
		RsqrtNaNPropagationMode:           unaryMode,
		FloatToFloatConversionNaNMode:     floatToFloatMode,
		FMAInfZeroQNaNResult:              fmaInfZeroQNaN,
		NegativeZeroSqrtSign:              Negative,
		InvalidIntConversion:              IntConversionSaturate,
	}
}

// Real hardware platform presets, reflecting each architecture's
// documented NaN-handling conventions. RISCV is the default used by
// the standard-format constructors below.

func RISCVPlatformProperties() PlatformProperties {
	return newSimplePlatformProperties(
		Positive, true,
		BinaryNaNAlwaysCanonical,
		TernaryNaNAlwaysCanonical,
		UnaryNaNAlwaysCanonical,
		FloatToFloatAlwaysCanonical,
		FMACanonicalAndGenerateInvalid,
	)
}

func ARMPlatformProperties() PlatformProperties {
	return newSimplePlatformProperties(
		Positive, true,
		BinaryNaNFirstSecond,
		TernaryNaNFirstSecondThird,
		UnaryNaNFirst,
		FloatToFloatRetainMostSignificantBits,
		FMAFollowNaNPropagationMode,
	)
}

func PowerPlatformProperties() PlatformProperties {
	return newSimplePlatformProperties(
		Positive, true,
		BinaryNaNFirstSecond,
		TernaryNaNFirstSecondThird,
		UnaryNaNFirst,
		FloatToFloatRetainMostSignificantBits,
		FMAFollowNaNPropagationMode,
	)
}

func MIPS2008PlatformProperties() PlatformProperties {
	return newSimplePlatformProperties(
		Positive, true,
		BinaryNaNFirstSecond,
		TernaryNaNFirstSecondThird,
		UnaryNaNFirst,
		FloatToFloatRetainMostSignificantBits,
		FMAFollowNaNPropagationMode,
	)
}

func X86SSEPlatformProperties() PlatformProperties {
	return newSimplePlatformProperties(
		Negative, true,
		BinaryNaNFirstSecondPreferringSNaN,
		TernaryNaNFirstSecondThirdPreferringSNaN,
		UnaryNaNFirst,
		FloatToFloatRetainMostSignificantBits,
		FMAFollowNaNPropagationMode,
	)
}

func SPARCPlatformProperties() PlatformProperties {
	return newSimplePlatformProperties(
		Positive, true,
		BinaryNaNFirstSecond,
		TernaryNaNFirstSecondThird,
		UnaryNaNFirst,
		FloatToFloatRetainMostSignificantBits,
		FMAFollowNaNPropagationMode,
	)
}

func HPPAPlatformProperties() PlatformProperties {
	return newSimplePlatformProperties(
		Positive, true,
		BinaryNaNSecondFirst,
		TernaryNaNSecondFirstThird,
		UnaryNaNFirst,
		FloatToFloatRetainMostSignificantBits,
		FMAFollowNaNPropagationMode,
	)
}

func MIPSLegacyPlatformProperties() PlatformProperties {
	return newSimplePlatformProperties(
		Positive, false,
		BinaryNaNFirstSecond,
		TernaryNaNFirstSecondThird,
		UnaryNaNFirst,
		FloatToFloatRetainMostSignificantBits,
		FMAFollowNaNPropagationMode,
	)
}

// FloatProperties is the immutable format descriptor: exponent width,
// mantissa width, leading-bit/sign-bit conventions, and the platform
// policy knobs. Construct with NewFloatProperties; the zero value is
// not a valid format.
type FloatProperties struct {
	exponentWidth         uint
	mantissaWidth         uint
	hasImplicitLeadingBit bool
	hasSignBit            bool
	platform              PlatformProperties

	// derived, computed once in NewFloatProperties
	bias             *big.Int
	exponentInfNaN   *big.Int
	exponentMaxNorm  *big.Int
	mantissaMask     *big.Int
	exponentMask     *big.Int
	fractionWidthVal uint
}

// NewFloatProperties validates and builds a FloatProperties. It panics
// if exponentWidth < 2 or mantissaWidth < 1: these are caller-contract
// violations (an invalid format descriptor), not IEEE exceptional
// conditions.
func NewFloatProperties(exponentWidth, mantissaWidth uint, hasImplicitLeadingBit, hasSignBit bool, platform PlatformProperties) FloatProperties {
	if exponentWidth < 2 {
		panic("softfloat: exponent width must be at least 2")
	}
	if mantissaWidth < 1 {
		panic("softfloat: mantissa width must be at least 1")
	}
	fp := FloatProperties{
		exponentWidth:         exponentWidth,
		mantissaWidth:         mantissaWidth,
		hasImplicitLeadingBit: hasImplicitLeadingBit,
		hasSignBit:            hasSignBit,
		platform:              platform,
	}
	fp.bias = new(big.Int).Sub(pow2(exponentWidth-1), bigOne)
	fp.exponentInfNaN = new(big.Int).Sub(pow2(exponentWidth), bigOne)
	fp.exponentMaxNorm = new(big.Int).Sub(fp.exponentInfNaN, bigOne)
	fp.mantissaMask = maskBits(mantissaWidth)
	fp.exponentMask = maskBits(exponentWidth)
	if hasImplicitLeadingBit {
		fp.fractionWidthVal = mantissaWidth
	} else {
		fp.fractionWidthVal = mantissaWidth - 1
	}
	return fp
}

func (fp FloatProperties) ExponentWidth() uint         { return fp.exponentWidth }
func (fp FloatProperties) MantissaWidth() uint         { return fp.mantissaWidth }
func (fp FloatProperties) HasImplicitLeadingBit() bool { return fp.hasImplicitLeadingBit }
func (fp FloatProperties) HasSignBit() bool            { return fp.hasSignBit }
func (fp FloatProperties) Platform() PlatformProperties { return fp.platform }

// FractionWidth is the number of mantissa bits actually stored for the
// fractional part: MantissaWidth when the leading bit is implicit,
// one less when it is stored explicitly.
func (fp FloatProperties) FractionWidth() uint { return fp.fractionWidthVal }

// Width is the total bit width of an encoded value.
func (fp FloatProperties) Width() uint {
	w := fp.exponentWidth + fp.mantissaWidth
	if fp.hasSignBit {
		w++
	}
	return w
}

func (fp FloatProperties) ExponentBias() *big.Int           { return new(big.Int).Set(fp.bias) }
func (fp FloatProperties) ExponentInfNaN() *big.Int         { return new(big.Int).Set(fp.exponentInfNaN) }
func (fp FloatProperties) ExponentZeroSubnormal() *big.Int  { return new(big.Int) }
func (fp FloatProperties) ExponentMaxNormal() *big.Int      { return new(big.Int).Set(fp.exponentMaxNorm) }
func (fp FloatProperties) ExponentMinNormal() *big.Int      { return bigOne }
func (fp FloatProperties) MantissaMask() *big.Int           { return new(big.Int).Set(fp.mantissaMask) }
func (fp FloatProperties) ExponentMask() *big.Int           { return new(big.Int).Set(fp.exponentMask) }
func (fp FloatProperties) MantissaFieldMax() *big.Int       { return new(big.Int).Set(fp.mantissaMask) }

// MantissaFieldNormalMin is the smallest mantissa-field value at which
// an encoding with a nonzero biased exponent is a normal number with
// the implicit leading bit accounted for: zero, since the mantissa
// field itself carries only the fraction.
func (fp FloatProperties) MantissaFieldNormalMin() *big.Int { return new(big.Int) }

// Binary16Properties, Binary32Properties, Binary64Properties and
// Binary128Properties return the FloatProperties for the four standard
// IEEE binary interchange formats, using RISCVPlatformProperties as the
// default platform policy. Named wrapper types ("Half", "Single", ...)
// are out of scope; only the descriptor values such wrappers would
// carry are provided here.
func Binary16Properties() FloatProperties {
	return NewFloatProperties(5, 10, true, true, RISCVPlatformProperties())
}

func Binary32Properties() FloatProperties {
	return NewFloatProperties(8, 23, true, true, RISCVPlatformProperties())
}

func Binary64Properties() FloatProperties {
	return NewFloatProperties(11, 52, true, true, RISCVPlatformProperties())
}

func Binary128Properties() FloatProperties {
	return NewFloatProperties(15, 112, true, true, RISCVPlatformProperties())
}
