package softfloat

import (
	"bufio"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"

	sha3 "golang.org/x/crypto/sha3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test-vector corpus runner. Each non-comment, non-blank line of a
// testdata/*.txt file has one of these shapes:
//
//	add|sub|mul|div format mode a b -> result flags
//	sqrt format mode a -> result flags
//	compare_quiet|compare_signaling format a b -> less|equal|greater|unordered flags
//	u64_to_f32 mode integer -> result flags
//
// format is one of binary16/binary32/binary64; mode is a RoundingMode
// name; operands and results are hex bit patterns, except the
// u64_to_f32 integer operand, which may be written in any base prefix
// big.Int.SetString accepts; flags is a pipe-separated StatusFlags
// list or "(empty)". For the add/sub/mul/div/sqrt ops the
// canonical-NaN rewrite rule is applied to both the expected and
// actual result before comparison, since a NaN result's payload is a
// free platform choice, not a value the corpus should pin down.

// corpusFingerprint is the SHA3-256 digest of testdata/*.txt's contents,
// concatenated in filepath.Glob's sorted order. Recomputed whenever the
// corpus is deliberately extended.
const corpusFingerprint = "8d00e9131f6f7c2613711bdb2af30e33f4d095980b69936fc3e34ffeee7095e9"

func formatByName(name string) (FloatProperties, error) {
	switch name {
	case "binary16":
		return Binary16Properties(), nil
	case "binary32":
		return Binary32Properties(), nil
	case "binary64":
		return Binary64Properties(), nil
	default:
		return FloatProperties{}, fmt.Errorf("unknown format %q", name)
	}
}

func parseHexBits(s string) (*big.Int, bool) {
	s = strings.TrimPrefix(s, "0x")
	n, ok := new(big.Int).SetString(s, 16)
	return n, ok
}

// rewriteCanonicalNaN applies the canonical-NaN rewrite rule: any NaN
// result collapses to the format's canonical quiet NaN before
// comparison, since a freely-chosen platform policy may legitimately
// pick a different payload than literally what a vector author typed.
func rewriteCanonicalNaN(bits *big.Int, fmtProps FloatProperties) *big.Int {
	if Classify(bits, fmtProps).IsNaN() {
		return CanonicalNaN(fmtProps)
	}
	return bits
}

func runVectorLine(t *testing.T, line string) {
	fields := strings.Fields(line)
	require.NotEmpty(t, fields, "empty vector line after whitespace split")
	op := fields[0]

	switch op {
	case "add", "sub", "mul", "div":
		require.Len(t, fields, 8, "line: %s", line)
		fmtProps, err := formatByName(fields[1])
		require.NoError(t, err)
		mode, err := ParseRoundingMode(fields[2])
		require.NoError(t, err)
		a, ok := parseHexBits(fields[3])
		require.True(t, ok, "operand a: %s", fields[3])
		b, ok := parseHexBits(fields[4])
		require.True(t, ok, "operand b: %s", fields[4])
		require.Equal(t, "->", fields[5])
		wantBits, ok := parseHexBits(fields[6])
		require.True(t, ok, "result: %s", fields[6])
		wantFlags, err := ParseStatusFlags(fields[7])
		require.NoError(t, err)

		state := FPState{RoundingMode: mode}
		var gotBits *big.Int
		var gotState FPState
		switch op {
		case "add":
			gotBits, gotState = Add(a, b, fmtProps, state)
		case "sub":
			gotBits, gotState = Subtract(a, b, fmtProps, state)
		case "mul":
			gotBits, gotState = Multiply(a, b, fmtProps, state)
		case "div":
			gotBits, gotState = Divide(a, b, fmtProps, state)
		}
		assert.Equal(t, 0, rewriteCanonicalNaN(wantBits, fmtProps).Cmp(rewriteCanonicalNaN(gotBits, fmtProps)),
			"%s: got 0x%X, want 0x%X", line, gotBits, wantBits)
		assert.Equal(t, wantFlags, gotState.StatusFlags, "%s: flags", line)

	case "sqrt":
		require.Len(t, fields, 7, "line: %s", line)
		fmtProps, err := formatByName(fields[1])
		require.NoError(t, err)
		mode, err := ParseRoundingMode(fields[2])
		require.NoError(t, err)
		a, ok := parseHexBits(fields[3])
		require.True(t, ok, "operand a: %s", fields[3])
		require.Equal(t, "->", fields[4])
		wantBits, ok := parseHexBits(fields[5])
		require.True(t, ok, "result: %s", fields[5])
		wantFlags, err := ParseStatusFlags(fields[6])
		require.NoError(t, err)

		gotBits, gotState := Sqrt(a, fmtProps, FPState{RoundingMode: mode})
		assert.Equal(t, 0, rewriteCanonicalNaN(wantBits, fmtProps).Cmp(rewriteCanonicalNaN(gotBits, fmtProps)),
			"%s: got 0x%X, want 0x%X", line, gotBits, wantBits)
		assert.Equal(t, wantFlags, gotState.StatusFlags, "%s: flags", line)

	case "compare_quiet", "compare_signaling":
		require.Len(t, fields, 7, "line: %s", line)
		fmtProps, err := formatByName(fields[1])
		require.NoError(t, err)
		a, ok := parseHexBits(fields[2])
		require.True(t, ok, "operand a: %s", fields[2])
		b, ok := parseHexBits(fields[3])
		require.True(t, ok, "operand b: %s", fields[3])
		require.Equal(t, "->", fields[4])
		var want CompareResult
		switch fields[5] {
		case "less":
			want = Less
		case "equal":
			want = Equal
		case "greater":
			want = Greater
		case "unordered":
			want = Unordered
		default:
			t.Fatalf("unknown compare result %q in line: %s", fields[5], line)
		}
		wantFlags, err := ParseStatusFlags(fields[6])
		require.NoError(t, err)

		var got CompareResult
		var gotState FPState
		if op == "compare_quiet" {
			got, gotState = CompareQuiet(a, b, fmtProps, DefaultFPState())
		} else {
			got, gotState = CompareSignaling(a, b, fmtProps, DefaultFPState())
		}
		assert.Equal(t, want, got, "%s", line)
		assert.Equal(t, wantFlags, gotState.StatusFlags, "%s: flags", line)

	case "u64_to_f32":
		require.Len(t, fields, 6, "line: %s", line)
		mode, err := ParseRoundingMode(fields[1])
		require.NoError(t, err)
		value, ok := new(big.Int).SetString(fields[2], 0)
		require.True(t, ok, "integer operand: %s", fields[2])
		require.Equal(t, "->", fields[3])
		wantBits, ok := parseHexBits(fields[4])
		require.True(t, ok, "result: %s", fields[4])
		wantFlags, err := ParseStatusFlags(fields[5])
		require.NoError(t, err)

		fmtProps := Binary32Properties()
		gotBits, gotState := IntToFloat(value, fmtProps, FPState{RoundingMode: mode})
		assert.Equal(t, 0, wantBits.Cmp(gotBits), "%s: got 0x%X, want 0x%X", line, gotBits, wantBits)
		assert.Equal(t, wantFlags, gotState.StatusFlags, "%s: flags", line)

	default:
		t.Fatalf("unknown vector opcode %q in line: %s", op, line)
	}
}

func runVectorFile(t *testing.T, path string) {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		t.Run(fmt.Sprintf("%s:%d", filepath.Base(path), lineNo), func(t *testing.T) {
			runVectorLine(t, line)
		})
	}
	require.NoError(t, scanner.Err())
}

func TestVectorCorpus(t *testing.T) {
	files, err := filepath.Glob("testdata/*.txt")
	require.NoError(t, err)
	require.NotEmpty(t, files, "no corpus files found under testdata/")
	for _, path := range files {
		runVectorFile(t, path)
	}
}

// TestVectorCorpusFingerprint guards against silent corpus drift: if a
// testdata file changes without the recorded digest being updated
// alongside it, this fails loudly rather than letting a weakened
// corpus pass unnoticed.
func TestVectorCorpusFingerprint(t *testing.T) {
	files, err := filepath.Glob("testdata/*.txt")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	h := sha3.New256()
	for _, path := range files {
		contents, err := os.ReadFile(path)
		require.NoError(t, err)
		h.Write(contents)
	}
	digest := fmt.Sprintf("%x", h.Sum(nil))
	if digest != corpusFingerprint {
		t.Fatalf("testdata/*.txt fingerprint changed: got %s, want %s (update corpusFingerprint if this corpus change is intentional)", digest, corpusFingerprint)
	}
}
