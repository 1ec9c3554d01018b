package window

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Analysis holds the gain properties of a window kernel.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// ScallopLossdB is the amplitude error of a tone half a bin off center.
	ScallopLossdB float64
}

// Analyze computes the gain properties of coeffs. An empty or zero-sum
// window yields the zero Analysis.
func Analyze(coeffs []float64) Analysis {
	n := len(coeffs)
	sum := floats.Sum(coeffs)
	if n == 0 || sum == 0 {
		return Analysis{}
	}

	// |W(f)| at half a bin, relative to DC.
	var re, im float64
	for i, c := range coeffs {
		phase := -math.Pi * float64(i) / float64(n)
		re += c * math.Cos(phase)
		im += c * math.Sin(phase)
	}

	return Analysis{
		CoherentGain:  sum / float64(n),
		ENBW:          float64(n) * floats.Dot(coeffs, coeffs) / (sum * sum),
		ScallopLossdB: 20 * math.Log10(math.Hypot(re, im)/math.Abs(sum)),
	}
}
