package kzg

import "testing"

func TestReverseBitsLimited(t *testing.T) {
	cases := []struct {
		n, i, want uint32
	}{
		{8, 0, 0},
		{8, 1, 4},
		{8, 2, 2},
		{8, 3, 6},
		{8, 7, 7},
		{4, 1, 2},
		{4, 3, 3},
	}
	for _, c := range cases {
		got := ReverseBitsLimited(c.n, c.i)
		if got != c.want {
			t.Errorf("ReverseBitsLimited(%d, %d) = %d, want %d", c.n, c.i, got, c.want)
		}
	}
}

func TestReverseBitOrderFrIsInvolution(t *testing.T) {
	buf := make([]Fr, 16)
	for i := range buf {
		buf[i] = FrFromU64(uint64(i + 1))
	}
	original := make([]Fr, len(buf))
	copy(original, buf)

	if err := ReverseBitOrderFr(buf); err != nil {
		t.Fatalf("first reverse: %v", err)
	}
	if err := ReverseBitOrderFr(buf); err != nil {
		t.Fatalf("second reverse: %v", err)
	}

	for i := range buf {
		if !buf[i].Equal(original[i]) {
			t.Errorf("index %d: got %s, want %s", i, buf[i].ToBig(), original[i].ToBig())
		}
	}
}

func TestReverseBitOrderFrRejectsNonPowerOfTwo(t *testing.T) {
	buf := make([]Fr, 6)
	if err := ReverseBitOrderFr(buf); err == nil {
		t.Fatal("expected an error for non-power-of-two length")
	}
}

func TestReverseBitOrderG1IsInvolution(t *testing.T) {
	buf := make([]G1, 8)
	g := G1Generator()
	for i := range buf {
		buf[i] = g.Mul(FrFromU64(uint64(i + 1)))
	}
	original := make([]G1, len(buf))
	copy(original, buf)

	if err := ReverseBitOrderG1(buf); err != nil {
		t.Fatalf("first reverse: %v", err)
	}
	if err := ReverseBitOrderG1(buf); err != nil {
		t.Fatalf("second reverse: %v", err)
	}

	for i := range buf {
		if !buf[i].Equal(original[i]) {
			t.Errorf("index %d: points differ after double reverse", i)
		}
	}
}
