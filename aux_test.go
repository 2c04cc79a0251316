package softfloat

import (
	"math/big"
	"testing"
)

func TestCompareQuietUnorderedNoFlag(t *testing.T) {
	fmtProps := Binary16Properties()
	result, state := CompareQuiet(big.NewInt(0x7E00), big.NewInt(0x0000), fmtProps, DefaultFPState())
	if result != Unordered {
		t.Fatalf("ERR compare_quiet(qNaN,0) = %v, want Unordered", result)
	}
	if state.StatusFlags != 0 {
		t.Fatalf("ERR compare_quiet(qNaN,0) raised flags %v", state.StatusFlags)
	}
}

func TestCompareSignalingUnorderedRaisesInvalid(t *testing.T) {
	fmtProps := Binary16Properties()
	result, state := CompareSignaling(big.NewInt(0x7D00), big.NewInt(0x0000), fmtProps, DefaultFPState())
	if result != Unordered {
		t.Fatalf("ERR compare_signaling(sNaN,0) = %v, want Unordered", result)
	}
	if !state.StatusFlags.Has(FlagInvalidOperation) {
		t.Fatal("ERR compare_signaling(sNaN,0) did not raise INVALID_OPERATION")
	}
}

func TestComparePositiveAndNegativeZeroAreEqual(t *testing.T) {
	fmtProps := Binary16Properties()
	result, _ := CompareQuiet(big.NewInt(0x0000), big.NewInt(0x8000), fmtProps, DefaultFPState())
	if result != Equal {
		t.Fatalf("ERR compare_quiet(+0,-0) = %v, want Equal", result)
	}
}

func TestCompareOrdering(t *testing.T) {
	fmtProps := Binary16Properties()
	result, _ := CompareQuiet(big.NewInt(0x3C00), big.NewInt(0x4000), fmtProps, DefaultFPState()) // 1.0 vs 2.0
	if result != Less {
		t.Fatalf("ERR compare_quiet(1.0,2.0) = %v, want Less", result)
	}
	result, _ = CompareQuiet(big.NewInt(0xBC00), big.NewInt(0x3C00), fmtProps, DefaultFPState()) // -1.0 vs 1.0
	if result != Less {
		t.Fatalf("ERR compare_quiet(-1.0,1.0) = %v, want Less", result)
	}
}

func TestRoundToIntegralExactVsInexactFlag(t *testing.T) {
	fmtProps := Binary16Properties()
	half := big.NewInt(0x3800) // 0.5
	_, state := RoundToIntegral(half, fmtProps, false, DefaultFPState())
	if state.StatusFlags.Has(FlagInexact) {
		t.Fatal("ERR round_to_integral (non-exact variant) raised INEXACT")
	}
	_, state = RoundToIntegral(half, fmtProps, true, DefaultFPState())
	if !state.StatusFlags.Has(FlagInexact) {
		t.Fatal("ERR round_to_integral_exact did not raise INEXACT on a non-integral input")
	}
}

func TestRoundToIntegralTiesToEven(t *testing.T) {
	fmtProps := Binary16Properties()
	bits, _ := RoundToIntegral(big.NewInt(0x3800), fmtProps, false, DefaultFPState()) // 0.5 -> 0
	if bits.Sign() != 0 {
		t.Fatalf("ERR round_to_integral(0.5) = 0x%04X, want +0", bits)
	}
	bits, _ = RoundToIntegral(big.NewInt(0x3E00), fmtProps, false, DefaultFPState()) // 1.5 -> 2
	if bits.Int64() != 0x4000 {
		t.Fatalf("ERR round_to_integral(1.5) = 0x%04X, want 2.0 (0x4000)", bits)
	}
}

func TestNextUpNextDownDuality(t *testing.T) {
	fmtProps := Binary16Properties()
	one := big.NewInt(0x3C00)
	up, _ := NextUp(one, fmtProps, DefaultFPState())
	back, _ := NextDown(up, fmtProps, DefaultFPState())
	if back.Cmp(one) != 0 {
		t.Fatalf("ERR NextDown(NextUp(1.0)) = 0x%04X, want 0x3C00", back)
	}
	down, _ := NextDown(one, fmtProps, DefaultFPState())
	back, _ = NextUp(down, fmtProps, DefaultFPState())
	if back.Cmp(one) != 0 {
		t.Fatalf("ERR NextUp(NextDown(1.0)) = 0x%04X, want 0x3C00", back)
	}
}

func TestNextUpOfMaxFiniteIsInfinity(t *testing.T) {
	fmtProps := Binary16Properties()
	up, _ := NextUp(big.NewInt(0x7BFF), fmtProps, DefaultFPState())
	if up.Int64() != 0x7C00 {
		t.Fatalf("ERR NextUp(max finite) = 0x%04X, want +Inf", up)
	}
}

func TestNextUpOfZeroIsMinPositiveSubnormal(t *testing.T) {
	fmtProps := Binary16Properties()
	up, _ := NextUp(big.NewInt(0x0000), fmtProps, DefaultFPState())
	if up.Int64() != 0x0001 {
		t.Fatalf("ERR NextUp(+0) = 0x%04X, want 0x0001", up)
	}
	down, _ := NextDown(big.NewInt(0x0000), fmtProps, DefaultFPState())
	if down.Int64() != 0x8001 {
		t.Fatalf("ERR NextDown(+0) = 0x%04X, want 0x8001", down)
	}
}

func TestCopySignNegateAbs(t *testing.T) {
	fmtProps := Binary16Properties()
	one := big.NewInt(0x3C00)
	negOne := big.NewInt(0xBC00)
	if CopySign(one, negOne, fmtProps).Cmp(negOne) != 0 {
		t.Fatal("ERR CopySign(1.0,-1.0) != -1.0")
	}
	if Negate(one, fmtProps).Cmp(negOne) != 0 {
		t.Fatal("ERR Negate(1.0) != -1.0")
	}
	if Abs(negOne, fmtProps).Cmp(one) != 0 {
		t.Fatal("ERR Abs(-1.0) != 1.0")
	}
}

func TestMinMaxOrdinary(t *testing.T) {
	fmtProps := Binary16Properties()
	one, two := big.NewInt(0x3C00), big.NewInt(0x4000)
	min, _ := Min(one, two, fmtProps, DefaultFPState())
	max, _ := Max(one, two, fmtProps, DefaultFPState())
	if min.Cmp(one) != 0 || max.Cmp(two) != 0 {
		t.Fatalf("ERR Min/Max(1.0,2.0) = %v,%v", min, max)
	}
}

func TestMinMaxNaNHandling(t *testing.T) {
	fmtProps := Binary16Properties()
	one := big.NewInt(0x3C00)
	nan := big.NewInt(0x7E00)
	minNum, state := MinNum(one, nan, fmtProps, DefaultFPState())
	if minNum.Cmp(one) != 0 {
		t.Fatalf("ERR MinNum(1.0,NaN) = 0x%X, want 1.0", minNum)
	}
	if state.StatusFlags != 0 {
		t.Fatalf("ERR MinNum(1.0,quietNaN) raised flags %v", state.StatusFlags)
	}
	minOrdinary, _ := Min(one, nan, fmtProps, DefaultFPState())
	if Classify(minOrdinary, fmtProps) != QuietNaN {
		t.Fatal("ERR Min(1.0,NaN) should propagate NaN")
	}
}
