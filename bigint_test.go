package softfloat

import (
	"math/big"
	"testing"
)

func TestPow2(t *testing.T) {
	for n := uint(0); n < 64; n++ {
		got := pow2(n)
		want := new(big.Int).Exp(big.NewInt(2), big.NewInt(int64(n)), nil)
		if got.Cmp(want) != 0 {
			t.Fatalf("ERR pow2(%d) = %s, want %s", n, got, want)
		}
	}
}

func TestCeilLog2(t *testing.T) {
	cases := []struct {
		x    int64
		want uint
	}{
		{1, 0}, {2, 1}, {3, 2}, {4, 2}, {5, 3}, {8, 3}, {9, 4}, {1024, 10}, {1025, 11},
	}
	for _, c := range cases {
		got := ceilLog2(big.NewInt(c.x))
		if got != c.want {
			t.Fatalf("ERR ceilLog2(%d) = %d, want %d", c.x, got, c.want)
		}
	}
}

func TestCeilLog2PanicsOnNonPositive(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("ERR ceilLog2(0) did not panic")
		}
	}()
	ceilLog2(big.NewInt(0))
}

func TestIsPowerOfTwo(t *testing.T) {
	for i := int64(1); i <= 1024; i++ {
		got := isPowerOfTwo(big.NewInt(i))
		want := i&(i-1) == 0
		if got != want {
			t.Fatalf("ERR isPowerOfTwo(%d) = %v, want %v", i, got, want)
		}
	}
	if isPowerOfTwo(big.NewInt(0)) {
		t.Fatal("ERR isPowerOfTwo(0) = true")
	}
}

func TestStickyRshift(t *testing.T) {
	x := big.NewInt(0b10110101)
	q, sticky := stickyRshift(x, 4)
	if q.Int64() != 0b1011 || !sticky {
		t.Fatalf("ERR stickyRshift(0b10110101,4) = %v,%v", q, sticky)
	}
	q, sticky = stickyRshift(x, 0)
	if q.Int64() != 0b10110101 || sticky {
		t.Fatalf("ERR stickyRshift(x,0) = %v,%v", q, sticky)
	}
	y := big.NewInt(0b10110000)
	q, sticky = stickyRshift(y, 4)
	if q.Int64() != 0b1011 || sticky {
		t.Fatalf("ERR stickyRshift(0b10110000,4) = %v,%v", q, sticky)
	}
}

func TestBitAt(t *testing.T) {
	x := big.NewInt(0b1010)
	if bitAt(x, 0) || !bitAt(x, 1) || bitAt(x, 2) || !bitAt(x, 3) {
		t.Fatal("ERR bitAt mismatch")
	}
}

func TestMaskBits(t *testing.T) {
	if maskBits(0).Sign() != 0 {
		t.Fatal("ERR maskBits(0) != 0")
	}
	if maskBits(4).Int64() != 0xF {
		t.Fatalf("ERR maskBits(4) = %v, want 0xF", maskBits(4))
	}
}
