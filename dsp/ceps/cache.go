package ceps

import (
	"math"

	"github.com/cwbudde/algo-ceps/dsp/window"
	"gonum.org/v1/gonum/mat"
)

// params is the user-visible configuration. It is a plain value so that a
// setter can validate a modified copy before committing it.
type params struct {
	sf               float64
	winLengthMs      int
	winShiftMs       int
	nFilters         int
	nCeps            int
	fMin             float64
	fMax             float64
	deltaWin         int
	preEmphasisCoeff float64
	fbLinear         bool
	dctNorm          bool
	withEnergy       bool
	withDelta        bool
	withDeltaDelta   bool
	meanNorm         bool
	normEnergy       bool
	spectrum         SpectrumKind
	window           window.Type
}

// framing holds the frame geometry in samples.
type framing struct {
	winLength int
	winShift  int
	winSize   int
}

// kernels is the derived state. Every field is immutable once built; a
// rebuild replaces fields rather than mutating them.
type kernels struct {
	framing
	window []float64
	bank   filterBank
	dct    *mat.Dense
}

// cacheEntry is a bit set of kernel fields.
type cacheEntry uint8

const (
	cacheFraming cacheEntry = 1 << iota
	cacheWindow
	cacheFilterBank
	cacheDCT

	cacheAll = cacheFraming | cacheWindow | cacheFilterBank | cacheDCT
)

// param names a setter.
type param int

const (
	paramSamplingFrequency param = iota
	paramWinLengthMs
	paramWinShiftMs
	paramNFilters
	paramNCeps
	paramFMin
	paramFMax
	paramFbLinear
	paramDctNorm
	paramWindowType
	paramDeltaWin
	paramPreEmphasis
	paramFlags
)

// invalidates maps each setter to the cache entries depending on it.
// Setters missing from the table only touch params.
var invalidates = map[param]cacheEntry{
	paramSamplingFrequency: cacheFraming | cacheWindow | cacheFilterBank,
	paramWinLengthMs:       cacheFraming | cacheWindow | cacheFilterBank,
	paramWinShiftMs:        cacheFraming,
	paramNFilters:          cacheFilterBank | cacheDCT,
	paramNCeps:             cacheDCT,
	paramFMin:              cacheFilterBank,
	paramFMax:              cacheFilterBank,
	paramFbLinear:          cacheFilterBank,
	paramDctNorm:           cacheDCT,
	paramWindowType:        cacheWindow,
}

// rebuild returns prev with the dirty entries recomputed from p. Entries are
// built in dependency order: framing feeds the window and filterbank.
func rebuild(p params, prev kernels, dirty cacheEntry) kernels {
	next := prev
	if dirty&cacheFraming != 0 {
		next.framing = buildFraming(p)
	}
	if dirty&cacheWindow != 0 {
		next.window = buildWindow(p, next.framing)
	}
	if dirty&cacheFilterBank != 0 {
		next.bank = buildFilterBank(p, next.framing)
	}
	if dirty&cacheDCT != 0 {
		next.dct = buildDCT(p)
	}
	return next
}

func buildFraming(p params) framing {
	length := int(math.Round(p.sf * float64(p.winLengthMs) / 1000))
	shift := int(math.Round(p.sf * float64(p.winShiftMs) / 1000))
	return framing{
		winLength: length,
		winShift:  shift,
		winSize:   nextPowerOf2(length),
	}
}

func buildWindow(p params, f framing) []float64 {
	return window.Generate(p.window, f.winLength)
}

// nextPowerOf2 returns the smallest power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
