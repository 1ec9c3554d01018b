package spectrum

import (
	"math"
	"testing"
)

func TestMagnitudeAndPowerFromParts(t *testing.T) {
	bins := []complex128{3 + 4i, -1 - 1i, 0}
	re := make([]float64, len(bins))
	im := make([]float64, len(bins))

	if n := SplitParts(re, im, bins); n != len(bins) {
		t.Fatalf("SplitParts copied %d bins, want %d", n, len(bins))
	}

	mag := make([]float64, len(bins))
	MagnitudeFromParts(mag, re, im)

	if math.Abs(mag[0]-5) > 1e-12 {
		t.Fatalf("magnitude[0]=%f want=5", mag[0])
	}

	if math.Abs(mag[1]-math.Sqrt2) > 1e-12 {
		t.Fatalf("magnitude[1]=%f want=sqrt(2)", mag[1])
	}

	pow := make([]float64, len(bins))
	PowerFromParts(pow, re, im)

	if math.Abs(pow[0]-25) > 1e-12 || math.Abs(pow[1]-2) > 1e-12 || pow[2] != 0 {
		t.Fatalf("unexpected power: %v", pow)
	}
}

func TestSplitPartsShortDestination(t *testing.T) {
	bins := []complex128{1 + 2i, 3 + 4i, 5 + 6i}
	re := make([]float64, 2)
	im := make([]float64, 3)

	if n := SplitParts(re, im, bins); n != 2 {
		t.Fatalf("SplitParts copied %d bins, want 2", n)
	}

	if re[1] != 3 || im[1] != 4 || im[2] != 0 {
		t.Fatalf("unexpected split: re=%v im=%v", re, im)
	}
}

func TestFrequencyBin(t *testing.T) {
	tests := []struct {
		freq float64
		size int
		sr   float64
		want int
	}{
		{0, 256, 8000, 0},
		{4000, 256, 8000, 128},
		{300, 256, 8000, 10},
		{31.25, 256, 8000, 1},
		{-50, 256, 8000, 0},
		{9000, 256, 8000, 128},
		{1000, 0, 8000, 0},
	}

	for _, tt := range tests {
		if got := FrequencyBin(tt.freq, tt.size, tt.sr); got != tt.want {
			t.Fatalf("FrequencyBin(%v, %d, %v)=%d, want %d", tt.freq, tt.size, tt.sr, got, tt.want)
		}
	}
}

func TestBinFrequencyRoundTrip(t *testing.T) {
	const (
		size = 512
		sr   = 16000.0
	)

	for k := 0; k <= size/2; k++ {
		if got := FrequencyBin(BinFrequency(k, size, sr), size, sr); got != k {
			t.Fatalf("bin %d round-tripped to %d", k, got)
		}
	}

	if HalfSize(size) != size/2+1 || HalfSize(0) != 0 {
		t.Fatalf("unexpected HalfSize")
	}
}
