package ceps

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidParameter reports a parameter that violates a configuration
	// invariant. The analyzer is left unchanged.
	ErrInvalidParameter = errors.New("ceps: invalid parameter")
	// ErrShapeMismatch reports an output matrix whose shape does not match
	// the shape computed from the input length and configuration.
	ErrShapeMismatch = errors.New("ceps: shape mismatch")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidParameter}, args...)...)
}

func (p params) validate() error {
	if !(p.sf > 0) || math.IsInf(p.sf, 0) {
		return invalidf("sampling frequency must be > 0: %g", p.sf)
	}
	if p.winLengthMs <= 0 {
		return invalidf("window length must be > 0 ms: %d", p.winLengthMs)
	}
	if p.winShiftMs <= 0 {
		return invalidf("window shift must be > 0 ms: %d", p.winShiftMs)
	}
	if p.winShiftMs > p.winLengthMs {
		return invalidf("window shift %d ms exceeds window length %d ms", p.winShiftMs, p.winLengthMs)
	}

	f := buildFraming(p)
	if f.winShift < 1 {
		return invalidf("window shift of %d ms is shorter than one sample at %g Hz", p.winShiftMs, p.sf)
	}

	if p.nFilters < 1 {
		return invalidf("number of filters must be >= 1: %d", p.nFilters)
	}
	if p.nCeps < 1 || p.nCeps > p.nFilters {
		return invalidf("number of cepstral coefficients must be in [1,%d]: %d", p.nFilters, p.nCeps)
	}
	if p.fMin < 0 || math.IsNaN(p.fMin) {
		return invalidf("f_min must be >= 0: %g", p.fMin)
	}
	if !(p.fMin < p.fMax) {
		return invalidf("f_min %g must be below f_max %g", p.fMin, p.fMax)
	}
	if p.fMax > p.sf/2 {
		return invalidf("f_max %g exceeds the Nyquist frequency %g", p.fMax, p.sf/2)
	}
	if p.deltaWin < 0 {
		return invalidf("delta window must be >= 0: %d", p.deltaWin)
	}
	if !(p.preEmphasisCoeff >= 0 && p.preEmphasisCoeff <= 1) {
		return invalidf("pre-emphasis coefficient must be in [0,1]: %g", p.preEmphasisCoeff)
	}
	if p.spectrum != Magnitude && p.spectrum != Power {
		return invalidf("unknown spectrum kind: %d", int(p.spectrum))
	}
	if !p.window.Valid() {
		return invalidf("unknown window type: %v", p.window)
	}

	return nil
}
