// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastfloat

import (
	"math"
	"strconv"
	"testing"
)

// TestEiselLemireAgainstStrconv cross-checks eiselLemire against
// strconv.ParseFloat (Go's own correctly-rounded converter) across a sample
// of significand/exponent pairs chosen to avoid the fast path, so this
// actually exercises the 128-bit multiplication rather than re-testing
// clingerFastPath.
func TestEiselLemireAgainstStrconv(t *testing.T) {
	cases := []struct {
		mant uint64
		exp  int
	}{
		{9007199254740993, 0},   // 2^53+1, not exactly representable
		{9007199254740993, 23},  // exponent outside Clinger's exact range
		{1, 23},
		{1, -23},
		{12345678901234567, 30},
		{12345678901234567, -30},
		{1, 300},
		{1, -300},
		{18446744073709551615, 0}, // max uint64 significand
	}
	for _, c := range cases {
		got, ok := eiselLemire(false, c.mant, c.exp, false)
		if !ok {
			t.Logf("eiselLemire(%d, %d) abstained (acceptable, conservative tie handling)", c.mant, c.exp)
			continue
		}
		s := strconv.FormatUint(c.mant, 10) + "e" + strconv.Itoa(c.exp)
		want, err := strconv.ParseFloat(s, 64)
		if err != nil {
			t.Fatalf("strconv.ParseFloat(%q): %v", s, err)
		}
		if got != want {
			t.Errorf("eiselLemire(%d, %d) = %v (%#x), want %v (%#x)",
				c.mant, c.exp, got, math.Float64bits(got), want, math.Float64bits(want))
		}
	}
}

// TestEiselLemireExactTieRoundsToEven directly targets the tie-rounding
// defect this algorithm must avoid: a decimal value that is an exact
// halfway point between two binary64 values must round to the candidate
// with an even mantissa, not unconditionally up. strconv.FormatFloat's
// shortest round-trip form (used elsewhere in this test suite) never
// produces an exact-halfway string by construction, so this case has to be
// constructed directly: "<53-bit-integer>.5" is exactly representable in
// decimal and sits exactly halfway between two adjacent integers, both of
// which binary64 can represent exactly, while the value itself needs 54
// bits. The last two cases lie past 2^53, where n.5 is not a tie; they are
// plain strconv cross-checks.
func TestEiselLemireExactTieRoundsToEven(t *testing.T) {
	cases := []string{
		"6305718000484660.5", // even candidate (...660) must round down
		"6305718000484661.5", // odd candidate (...661) must round up
		"4503599627370496.5", // 2^52, even
		"4503599627370497.5",
		"9007199254740993.5",
		"9007199254740995.5",
	}
	for _, s := range cases {
		got, err := ParseFloat(s)
		if err != nil {
			t.Fatalf("ParseFloat(%q) error: %v", s, err)
		}
		want, err := strconv.ParseFloat(s, 64)
		if err != nil {
			t.Fatalf("strconv.ParseFloat(%q) error: %v", s, err)
		}
		if math.Float64bits(got) != math.Float64bits(want) {
			t.Errorf("ParseFloat(%q) = %v (%#x), want %v (%#x) [round-to-even tie]",
				s, got, math.Float64bits(got), want, math.Float64bits(want))
		}
	}
}

func TestEiselLemireAbstainsOnTruncated(t *testing.T) {
	if _, ok := eiselLemire(false, 123, 0, true); ok {
		t.Error("eiselLemire with truncated=true should always abstain")
	}
}

func TestEiselLemireAbstainsOnSubnormal(t *testing.T) {
	// 49e-325 is the smallest positive subnormal; rounding decisions below
	// the normal range sit deeper in the 128-bit product than the error
	// bound pins down, so the algorithm must defer them to the fallback.
	if _, ok := eiselLemire(false, 49, -325, false); ok {
		t.Error("eiselLemire should abstain for subnormal results")
	}
}

func TestEiselLemireAbstainsOutsideTable(t *testing.T) {
	if _, ok := eiselLemire(false, 1, pow10MinExp-1, false); ok {
		t.Error("eiselLemire should abstain below pow10MinExp")
	}
	if _, ok := eiselLemire(false, 1, pow10MaxExp+1, false); ok {
		t.Error("eiselLemire should abstain above pow10MaxExp")
	}
}
