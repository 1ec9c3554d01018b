package ceps

import (
	"math"

	"github.com/cwbudde/algo-ceps/dsp/spectrum"
	"gonum.org/v1/gonum/floats"
)

// Filter is one triangular filterbank channel stored sparsely: Weights[i]
// applies to FFT bin Start+i. Every weight in the support is positive.
type Filter struct {
	Start   int
	Weights []float64
}

// End returns the last bin covered by f.
func (f Filter) End() int {
	return f.Start + len(f.Weights) - 1
}

type filterBank struct {
	pIndex  []int
	filters []Filter
}

func mel(f float64) float64 {
	return 2595 * math.Log10(1+f/700)
}

func melInv(m float64) float64 {
	return 700 * (math.Pow(10, m/2595) - 1)
}

// buildFilterBank places nFilters+2 equally spaced points over [fMin, fMax]
// on the selected scale and maps them to FFT bins of a winSize-point
// transform. Filter i rises from point i to point i+1 and falls to point i+2.
func buildFilterBank(p params, f framing) filterBank {
	points := make([]float64, p.nFilters+2)
	if p.fbLinear {
		floats.Span(points, p.fMin, p.fMax)
	} else {
		floats.Span(points, mel(p.fMin), mel(p.fMax))
		for i, m := range points {
			points[i] = melInv(m)
		}
	}

	pIndex := make([]int, len(points))
	for i, hz := range points {
		pIndex[i] = spectrum.FrequencyBin(hz, f.winSize, p.sf)
	}

	filters := make([]Filter, p.nFilters)
	for i := range filters {
		filters[i] = triangle(pIndex[i], pIndex[i+1], pIndex[i+2])
	}

	return filterBank{pIndex: pIndex, filters: filters}
}

// triangle samples a triangular filter over bins [left, right] peaking at
// center. Both slopes exclude their zero end points, so a filter whose
// corner bins coincide still carries weight.
func triangle(left, center, right int) Filter {
	weights := make([]float64, right-left+1)
	rise := float64(center - left + 1)
	fall := float64(right - center + 1)
	for b := left; b <= right; b++ {
		if b <= center {
			weights[b-left] = float64(b-left+1) / rise
		} else {
			weights[b-left] = 1 - float64(b-center)/fall
		}
	}
	return Filter{Start: left, Weights: weights}
}

// logTriangularFBank integrates spec over every filter, floors each band
// energy at FbankOutFloor and writes the natural log into dst.
func logTriangularFBank(spec []float64, filters []Filter, dst []float64) {
	for i, f := range filters {
		e := floats.Dot(f.Weights, spec[f.Start:f.Start+len(f.Weights)])
		dst[i] = math.Log(math.Max(e, FbankOutFloor))
	}
}
