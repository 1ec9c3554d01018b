package window

import (
	"errors"
	"math"
	"testing"
)

func TestGenerateAllTypes(t *testing.T) {
	types := []Type{TypeHamming, TypeHann, TypeBlackman, TypeRectangular}

	for _, typ := range types {
		t.Run(typ.String(), func(t *testing.T) {
			w := Generate(typ, 64)
			if len(w) != 64 {
				t.Fatalf("len=%d, want 64", len(w))
			}

			for i, v := range w {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("coefficient[%d] invalid: %v", i, v)
				}
			}
		})
	}
}

func TestHammingSymmetricFormula(t *testing.T) {
	const n = 160

	w := Generate(TypeHamming, n)

	for i, v := range w {
		want := 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(n-1))
		if !almostEqual(v, want, 1e-12) {
			t.Fatalf("w[%d]=%v, want %v", i, v, want)
		}
	}

	if !almostEqual(w[0], w[n-1], 1e-12) {
		t.Fatalf("symmetric window edges differ: %v %v", w[0], w[n-1])
	}
}

func TestPeriodicDiffersFromSymmetric(t *testing.T) {
	a := Generate(TypeHann, 16)
	b := Generate(TypeHann, 16, WithPeriodic())

	if almostEqual(a[15], b[15], 1e-12) {
		t.Fatal("expected different end coefficient for periodic form")
	}
}

func TestGenerateInvalidLength(t *testing.T) {
	if w := Generate(TypeHamming, 0); w != nil {
		t.Fatalf("expected nil for zero length, got %v", w)
	}

	if w := Generate(TypeHamming, -1); w != nil {
		t.Fatalf("expected nil for negative length, got %v", w)
	}
}

func TestApplyCoefficientsInPlace(t *testing.T) {
	buf := []float64{1, 2, 3, 4}
	if err := ApplyCoefficientsInPlace(buf, []float64{0, 0.5, 1, 2}); err != nil {
		t.Fatal(err)
	}

	want := []float64{0, 1, 3, 8}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf[%d]=%v, want %v", i, buf[i], want[i])
		}
	}

	err := ApplyCoefficientsInPlace(buf, []float64{1})
	if !errors.Is(err, errMismatchedLength) {
		t.Fatalf("expected length mismatch error, got %v", err)
	}
}

func TestParseType(t *testing.T) {
	for typ, name := range typeNames {
		got, err := ParseType(" " + name + " ")
		if err != nil {
			t.Fatalf("ParseType(%q): %v", name, err)
		}
		if got != typ {
			t.Fatalf("ParseType(%q)=%v, want %v", name, got, typ)
		}
	}

	if _, err := ParseType("kaiser"); err == nil {
		t.Fatal("expected error for unsupported window")
	}

	if Type(99).Valid() {
		t.Fatal("Type(99) should not be valid")
	}
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		typ          Type
		gain, enbw   float64
		scallopBelow float64
	}{
		{TypeRectangular, 1, 1, -3.9},
		{TypeHann, 0.5, 1.5, -1.4},
		{TypeHamming, 0.54, 1.36, -1.7},
	}
	for _, tt := range tests {
		// Periodic form of a long window approaches the textbook values.
		a := Analyze(Generate(tt.typ, 4096, WithPeriodic()))
		if !almostEqual(a.CoherentGain, tt.gain, 1e-3) {
			t.Fatalf("%v: coherent gain = %g, want %g", tt.typ, a.CoherentGain, tt.gain)
		}
		if !almostEqual(a.ENBW, tt.enbw, 1e-2) {
			t.Fatalf("%v: ENBW = %g, want %g", tt.typ, a.ENBW, tt.enbw)
		}
		if a.ScallopLossdB > tt.scallopBelow || a.ScallopLossdB < tt.scallopBelow-0.3 {
			t.Fatalf("%v: scallop loss = %g dB, want about %g", tt.typ, a.ScallopLossdB, tt.scallopBelow)
		}
	}

	if (Analyze(nil) != Analysis{}) {
		t.Fatal("empty window must yield the zero Analysis")
	}
}
