// Package softfloat is a pure-software implementation of IEEE 754-2008
// binary floating-point arithmetic, parameterised by format (exponent
// width, mantissa width, and a small set of platform-policy knobs that
// IEEE 754 leaves implementation-defined).
//
// The package has no fixed notion of "float32" or "float64": every
// operation takes a FloatProperties describing the format to operate
// in, plus an FPState carrying the rounding mode and sticky status
// flags, and returns a result bit pattern (as a *big.Int) alongside an
// updated FPState. There is no hidden state, no I/O, and no logging:
// every function is a pure, reentrant function of its arguments, which
// makes the package suitable as a bit-exact oracle for instruction-set
// simulators and differential-testing harnesses that check a hardware
// FPU against a trusted reference.
//
// All exact arithmetic is carried out over arbitrary-precision integers
// and rationals (math/big) before a single rounding step, so the
// package never performs an intermediate rounding that a correctly
// rounded hardware implementation would not perform.
//
// The dynamic-format facade, [Value], bundles a FloatProperties with a
// bit pattern for callers that need to carry many formats around at
// runtime without threading a FloatProperties through every call site.
package softfloat
