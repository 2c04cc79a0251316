package softfloat

import (
	"errors"
	"math/big"
	"testing"
)

func TestValueAddHappyPath(t *testing.T) {
	fmtProps := Binary16Properties()
	a := NewValue(fmtProps, big.NewInt(0x3C00))
	b := NewValue(fmtProps, big.NewInt(0x3C00))
	result, state, err := a.Add(b, DefaultFPState())
	if err != nil {
		t.Fatalf("ERR Value.Add returned error: %v", err)
	}
	if result.Bits().Int64() != 0x4000 {
		t.Fatalf("ERR Value.Add(1.0,1.0) = 0x%04X, want 0x4000", result.Bits())
	}
	if state.StatusFlags != 0 {
		t.Fatalf("ERR Value.Add(1.0,1.0) raised flags %v", state.StatusFlags)
	}
}

func TestValueFormatMismatchIsAnError(t *testing.T) {
	a := NewValue(Binary16Properties(), big.NewInt(0x3C00))
	b := NewValue(Binary32Properties(), big.NewInt(0x3F800000))
	_, _, err := a.Add(b, DefaultFPState())
	if err == nil {
		t.Fatal("ERR Value.Add across formats did not return an error")
	}
	if !errors.Is(err, ErrFormatMismatch) {
		t.Fatalf("ERR Value.Add across formats returned %v, not wrapping ErrFormatMismatch", err)
	}
}

func TestValueToFormatAndBack(t *testing.T) {
	half := Binary16Properties()
	single := Binary32Properties()
	v := NewValue(half, big.NewInt(0x3C00))
	widened, state := v.ToFormat(single, DefaultFPState())
	if widened.Bits().Int64() != 0x3F800000 {
		t.Fatalf("ERR Value.ToFormat widen = 0x%08X, want 0x3F800000", widened.Bits())
	}
	if state.StatusFlags != 0 {
		t.Fatalf("ERR Value.ToFormat widen raised flags %v", state.StatusFlags)
	}
	narrowed, state := widened.ToFormat(half, state)
	if narrowed.Bits().Int64() != 0x3C00 {
		t.Fatalf("ERR Value.ToFormat narrow back = 0x%04X, want 0x3C00", narrowed.Bits())
	}
	if state.StatusFlags != 0 {
		t.Fatalf("ERR Value.ToFormat narrow back raised flags %v", state.StatusFlags)
	}
}

func TestValueClassAndString(t *testing.T) {
	v := NewValue(Binary16Properties(), big.NewInt(0x7C00))
	if v.Class() != PositiveInfinity {
		t.Fatalf("ERR Value.Class() = %v, want PositiveInfinity", v.Class())
	}
	if v.String() == "" {
		t.Fatal("ERR Value.String() returned empty string")
	}
}

func TestValueFromIntAndToInt(t *testing.T) {
	fmtProps := Binary32Properties()
	v, state := ValueFromInt(big.NewInt(42), fmtProps, DefaultFPState())
	if state.StatusFlags != 0 {
		t.Fatalf("ERR ValueFromInt(42) raised flags %v", state.StatusFlags)
	}
	result, ok, state := v.ToInt(32, true, state)
	if !ok || result.Int64() != 42 {
		t.Fatalf("ERR Value.ToInt round-trip = %v,%v, want 42,true", result, ok)
	}
}

func TestValueCopySignFormatMismatch(t *testing.T) {
	a := NewValue(Binary16Properties(), big.NewInt(0x3C00))
	b := NewValue(Binary32Properties(), big.NewInt(0xBF800000))
	_, err := a.CopySign(b)
	if !errors.Is(err, ErrFormatMismatch) {
		t.Fatalf("ERR Value.CopySign across formats returned %v", err)
	}
}
