package ceps

import (
	"math"
	"testing"
)

func TestMelRoundTrip(t *testing.T) {
	for _, f := range []float64{0, 100, 700, 1000, 4000, 8000, 22050} {
		if got := melInv(mel(f)); math.Abs(got-f) > 1e-9*math.Max(1, f) {
			t.Fatalf("melInv(mel(%g)) = %g", f, got)
		}
	}
	if got := mel(1000); math.Abs(got-1000) > 0.1 {
		t.Fatalf("mel(1000) = %g, want ~1000", got)
	}
}

func TestTriangleWeights(t *testing.T) {
	f := triangle(2, 4, 8)
	if f.Start != 2 || f.End() != 8 {
		t.Fatalf("support = [%d,%d], want [2,8]", f.Start, f.End())
	}
	want := []float64{1.0 / 3, 2.0 / 3, 1, 1 - 1.0/5, 1 - 2.0/5, 1 - 3.0/5, 1 - 4.0/5}
	for i, w := range want {
		if math.Abs(f.Weights[i]-w) > 1e-15 {
			t.Fatalf("weight[%d] = %g, want %g", i, f.Weights[i], w)
		}
	}
}

func TestTriangleDegenerateKeepsWeight(t *testing.T) {
	f := triangle(5, 5, 5)
	if len(f.Weights) != 1 || f.Weights[0] != 1 {
		t.Fatalf("degenerate triangle = %+v, want single unit weight", f)
	}
}

func TestFilterBankWithinHalfSpectrum(t *testing.T) {
	configs := []params{
		{sf: 8000, winLengthMs: 20, winShiftMs: 10, nFilters: 24, nCeps: 12, fMax: 4000},
		{sf: 16000, winLengthMs: 25, winShiftMs: 10, nFilters: 40, nCeps: 13, fMin: 100, fMax: 7600},
		{sf: 44100, winLengthMs: 30, winShiftMs: 15, nFilters: 64, nCeps: 20, fMax: 22050, fbLinear: true},
		{sf: 8000, winLengthMs: 10, winShiftMs: 5, nFilters: 60, nCeps: 20, fMax: 4000},
	}

	for _, p := range configs {
		f := buildFraming(p)
		bank := buildFilterBank(p, f)
		if len(bank.filters) != p.nFilters || len(bank.pIndex) != p.nFilters+2 {
			t.Fatalf("sf=%g: %d filters, %d points", p.sf, len(bank.filters), len(bank.pIndex))
		}
		for i, flt := range bank.filters {
			if flt.Start < 0 || flt.End() > f.winSize/2 {
				t.Fatalf("sf=%g filter %d: support [%d,%d] outside [0,%d]", p.sf, i, flt.Start, flt.End(), f.winSize/2)
			}
			for j, w := range flt.Weights {
				if !(w > 0 && w <= 1) {
					t.Fatalf("sf=%g filter %d weight %d = %g, want (0,1]", p.sf, i, j, w)
				}
			}
		}
		for i := 1; i < len(bank.pIndex); i++ {
			if bank.pIndex[i] < bank.pIndex[i-1] {
				t.Fatalf("sf=%g: pIndex not monotonic at %d: %v", p.sf, i, bank.pIndex)
			}
		}
	}
}

func TestLinearFilterBankEquallySpaced(t *testing.T) {
	// 4096-point FFT at 8 kHz puts bins ~1.95 Hz apart; 400 Hz spacing maps
	// to exactly 204.8 bins, so rounded steps are 204 or 205.
	p := params{sf: 8000, winLengthMs: 512, winShiftMs: 10, nFilters: 9, nCeps: 4, fMax: 4000, fbLinear: true}
	f := buildFraming(p)
	if f.winSize != 4096 {
		t.Fatalf("winSize = %d, want 4096", f.winSize)
	}
	bank := buildFilterBank(p, f)
	for i := 1; i < len(bank.pIndex); i++ {
		step := bank.pIndex[i] - bank.pIndex[i-1]
		if step != 204 && step != 205 {
			t.Fatalf("step %d = %d, want 204 or 205 (pIndex %v)", i, step, bank.pIndex)
		}
	}
	if bank.pIndex[0] != 0 || bank.pIndex[len(bank.pIndex)-1] != 2048 {
		t.Fatalf("end points = %d,%d, want 0,2048", bank.pIndex[0], bank.pIndex[len(bank.pIndex)-1])
	}
}

func TestMelFilterBankWidensWithFrequency(t *testing.T) {
	p := params{sf: 16000, winLengthMs: 64, winShiftMs: 10, nFilters: 20, nCeps: 10, fMax: 8000}
	bank := buildFilterBank(p, buildFraming(p))
	first := len(bank.filters[0].Weights)
	last := len(bank.filters[len(bank.filters)-1].Weights)
	if last <= first {
		t.Fatalf("last filter support %d must exceed first %d on the Mel scale", last, first)
	}
}

func TestLogTriangularFBankFloors(t *testing.T) {
	filters := []Filter{
		{Start: 0, Weights: []float64{0.5, 1, 0.5}},
		{Start: 2, Weights: []float64{0.5, 1, 0.5}},
	}
	spec := []float64{0, 0, 0, 10, 4}
	dst := make([]float64, 2)
	logTriangularFBank(spec, filters, dst)

	if dst[0] != 0 {
		t.Fatalf("floored band = %g, want 0", dst[0])
	}
	if want := math.Log(12); math.Abs(dst[1]-want) > 1e-12 {
		t.Fatalf("band 1 = %g, want %g", dst[1], want)
	}
}
