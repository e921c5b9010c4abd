package kzg

import "testing"

func TestFFTFrRoundTrip(t *testing.T) {
	fs := NewFFTSettings(3) // width 8
	vals := make([]Fr, 8)
	for i := range vals {
		vals[i] = FrFromU64(uint64(i * 7 + 3))
	}

	freq, err := fs.FFTFr(vals, false)
	if err != nil {
		t.Fatalf("forward fft: %v", err)
	}
	back, err := fs.FFTFr(freq, true)
	if err != nil {
		t.Fatalf("inverse fft: %v", err)
	}

	for i := range vals {
		if !back[i].Equal(vals[i]) {
			t.Errorf("index %d: got %s, want %s", i, back[i].ToBig(), vals[i].ToBig())
		}
	}
}

func TestFFTFrRejectsIncompatibleLength(t *testing.T) {
	fs := NewFFTSettings(3) // width 8
	if _, err := fs.FFTFr(make([]Fr, 3), false); err == nil {
		t.Fatal("expected an error for a length not dividing the domain width")
	}
}

func TestFFTFrRejectsEmptyInput(t *testing.T) {
	fs := NewFFTSettings(3)
	if _, err := fs.FFTFr(nil, false); err == nil {
		t.Fatal("expected an error for empty input")
	}
}

func TestCosetFFTRoundTrip(t *testing.T) {
	fs := NewFFTSettings(3)
	vals := make([]Fr, 8)
	for i := range vals {
		vals[i] = FrFromU64(uint64(i*i + 1))
	}

	evals, err := fs.cosetFFT(vals)
	if err != nil {
		t.Fatalf("coset fft: %v", err)
	}
	back, err := fs.cosetIFFT(evals)
	if err != nil {
		t.Fatalf("coset ifft: %v", err)
	}

	for i := range vals {
		if !back[i].Equal(vals[i]) {
			t.Errorf("index %d: got %s, want %s", i, back[i].ToBig(), vals[i].ToBig())
		}
	}
}

func TestFFTG1RoundTrip(t *testing.T) {
	fs := NewFFTSettings(2) // width 4
	g := G1Generator()
	vals := []G1{
		g.Mul(FrFromU64(1)),
		g.Mul(FrFromU64(2)),
		g.Mul(FrFromU64(3)),
		g.Mul(FrFromU64(4)),
	}

	freq, err := fs.FFTG1(vals, false)
	if err != nil {
		t.Fatalf("forward fft: %v", err)
	}
	back, err := fs.FFTG1(freq, true)
	if err != nil {
		t.Fatalf("inverse fft: %v", err)
	}

	for i := range vals {
		if !back[i].Equal(vals[i]) {
			t.Errorf("index %d: points differ after round trip", i)
		}
	}
}
