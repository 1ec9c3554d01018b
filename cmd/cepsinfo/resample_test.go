package main

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-ceps/internal/testutil"
)

func TestResampleKeepsSignalLength(t *testing.T) {
	tests := []struct {
		from, to float64
		n        int
	}{
		{8000, 16000, 8000},
		{44100, 16000, 8000},
		{16000, 8000, 16000},
	}

	for _, tt := range tests {
		in := testutil.DeterministicSine(300, tt.from, 10000, tt.n)
		out, err := resample(in, tt.from, tt.to)
		if err != nil {
			t.Fatalf("resample %g -> %g: %v", tt.from, tt.to, err)
		}

		want := float64(tt.n) * tt.to / tt.from
		if math.Abs(float64(len(out))-want) > want/50 {
			t.Fatalf("resample %g -> %g: %d samples, want about %.0f", tt.from, tt.to, len(out), want)
		}
		testutil.RequireFinite(t, out)
	}
}
