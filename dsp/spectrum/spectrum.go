package spectrum

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// SplitParts copies the real and imaginary parts of bins into re and im.
// Only min(len(re), len(im), len(bins)) bins are copied; the number of
// copied bins is returned.
func SplitParts(re, im []float64, bins []complex128) int {
	n := min(len(re), len(im), len(bins))
	for i, c := range bins[:n] {
		re[i] = real(c)
		im[i] = imag(c)
	}
	return n
}

// MagnitudeFromParts computes |X[k]| = sqrt(re[k]^2 + im[k]^2) into dst.
//
// This is the zero-allocation fast path for callers that already have real and
// imaginary parts in separate slices. All three slices must have the same length.
func MagnitudeFromParts(dst, re, im []float64) {
	vecmath.Magnitude(dst, re, im)
}

// PowerFromParts computes |X[k]|^2 = re[k]^2 + im[k]^2 into dst.
//
// This is the zero-allocation fast path for callers that already have real and
// imaginary parts in separate slices. All three slices must have the same length.
func PowerFromParts(dst, re, im []float64) {
	vecmath.Power(dst, re, im)
}

// HalfSize returns the number of non-redundant bins of a real-input FFT of
// the given size: size/2 + 1.
func HalfSize(fftSize int) int {
	if fftSize <= 0 {
		return 0
	}
	return fftSize/2 + 1
}

// BinFrequency returns the center frequency in Hz of FFT bin k.
func BinFrequency(k, fftSize int, sampleRate float64) float64 {
	if fftSize <= 0 {
		return 0
	}
	return float64(k) * sampleRate / float64(fftSize)
}

// FrequencyBin maps freqHz to the nearest FFT bin index, clamped to the
// non-redundant range [0, fftSize/2].
func FrequencyBin(freqHz float64, fftSize int, sampleRate float64) int {
	if fftSize <= 0 || sampleRate <= 0 {
		return 0
	}

	k := int(math.Round(float64(fftSize) * freqHz / sampleRate))

	return max(0, min(k, fftSize/2))
}
