package ceps

import (
	"fmt"

	"github.com/cwbudde/algo-ceps/dsp/window"
	"gonum.org/v1/gonum/mat"
)

const (
	// EnergyFloor is the lower bound applied to frame energy before the log.
	EnergyFloor = 1.0
	// FbankOutFloor is the lower bound applied to filterbank energies before
	// the log.
	FbankOutFloor = 1.0
)

const (
	defaultWinLengthMs      = 20
	defaultWinShiftMs       = 10
	defaultNFilters         = 24
	defaultNCeps            = 19
	defaultDeltaWin         = 2
	defaultPreEmphasisCoeff = 0.95
)

// SpectrumKind selects what the filterbank integrates.
type SpectrumKind int

const (
	// Magnitude integrates |X[k]|.
	Magnitude SpectrumKind = iota
	// Power integrates |X[k]|^2.
	Power
)

// String returns "magnitude" or "power".
func (s SpectrumKind) String() string {
	switch s {
	case Magnitude:
		return "magnitude"
	case Power:
		return "power"
	default:
		return fmt.Sprintf("spectrum(%d)", int(s))
	}
}

// ParseSpectrumKind maps "magnitude" or "power" to a SpectrumKind.
func ParseSpectrumKind(name string) (SpectrumKind, error) {
	switch name {
	case "magnitude", "":
		return Magnitude, nil
	case "power":
		return Power, nil
	default:
		return 0, invalidf("unknown spectrum kind %q", name)
	}
}

// Ceps extracts Mel- or linear-frequency cepstral coefficients.
//
// A Ceps owns its configuration and the kernels derived from it (window,
// filterbank, DCT basis). Setters validate and rebuild the affected kernels
// eagerly; a setter that fails leaves the analyzer unchanged. Analysis only
// reads the kernels, so one Ceps may serve concurrent analyses with distinct
// Workspaces as long as no setter runs at the same time.
type Ceps struct {
	p            params
	k            kernels
	newTransform TransformFactory
}

type settings struct {
	params
	fMaxSet   bool
	transform TransformFactory
}

// Option configures a Ceps at construction.
type Option func(*settings)

// WithWindowMs sets the frame length and shift in milliseconds.
func WithWindowMs(lengthMs, shiftMs int) Option {
	return func(s *settings) {
		s.winLengthMs = lengthMs
		s.winShiftMs = shiftMs
	}
}

// WithFilters sets the number of filterbank channels.
func WithFilters(n int) Option {
	return func(s *settings) {
		s.nFilters = n
	}
}

// WithCeps sets the number of cepstral coefficients kept per frame.
func WithCeps(n int) Option {
	return func(s *settings) {
		s.nCeps = n
	}
}

// WithFrequencyRange sets the filterbank frequency range in Hz.
// The default range is [0, samplingFrequency/2].
func WithFrequencyRange(fMin, fMax float64) Option {
	return func(s *settings) {
		s.fMin = fMin
		s.fMax = fMax
		s.fMaxSet = true
	}
}

// WithDeltaWindow sets the regression half-width in frames used for
// derivatives.
func WithDeltaWindow(frames int) Option {
	return func(s *settings) {
		s.deltaWin = frames
	}
}

// WithPreEmphasis sets the pre-emphasis coefficient, in [0,1].
func WithPreEmphasis(coeff float64) Option {
	return func(s *settings) {
		s.preEmphasisCoeff = coeff
	}
}

// WithLinearScale spaces the filterbank linearly in Hz (LFCC) instead of on
// the Mel scale.
func WithLinearScale() Option {
	return func(s *settings) {
		s.fbLinear = true
	}
}

// WithDCTNorm applies orthonormal DCT-II scaling to the coefficients.
func WithDCTNorm() Option {
	return func(s *settings) {
		s.dctNorm = true
	}
}

// WithEnergy appends the log frame energy after the cepstral coefficients.
func WithEnergy() Option {
	return func(s *settings) {
		s.withEnergy = true
	}
}

// WithDelta appends first-order derivatives.
func WithDelta() Option {
	return func(s *settings) {
		s.withDelta = true
	}
}

// WithDeltaDelta appends first- and second-order derivatives.
func WithDeltaDelta() Option {
	return func(s *settings) {
		s.withDelta = true
		s.withDeltaDelta = true
	}
}

// WithMeanNorm subtracts the per-coefficient mean over all frames from the
// static block. normEnergy includes the energy column.
func WithMeanNorm(normEnergy bool) Option {
	return func(s *settings) {
		s.meanNorm = true
		s.normEnergy = normEnergy
	}
}

// WithSpectrum selects magnitude or power spectrum integration.
func WithSpectrum(kind SpectrumKind) Option {
	return func(s *settings) {
		s.spectrum = kind
	}
}

// WithWindowType selects the analysis window; Hamming is the default.
func WithWindowType(t window.Type) Option {
	return func(s *settings) {
		s.window = t
	}
}

// WithTransform replaces the FFT backend used by new Workspaces.
func WithTransform(factory TransformFactory) Option {
	return func(s *settings) {
		if factory != nil {
			s.transform = factory
		}
	}
}

// New returns an analyzer for signals sampled at samplingFrequency Hz.
// Invalid settings are reported as ErrInvalidParameter.
func New(samplingFrequency float64, opts ...Option) (*Ceps, error) {
	s := settings{
		params: params{
			sf:               samplingFrequency,
			winLengthMs:      defaultWinLengthMs,
			winShiftMs:       defaultWinShiftMs,
			nFilters:         defaultNFilters,
			nCeps:            defaultNCeps,
			deltaWin:         defaultDeltaWin,
			preEmphasisCoeff: defaultPreEmphasisCoeff,
			spectrum:         Magnitude,
			window:           window.TypeHamming,
		},
		transform: newFFTPlan,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	if !s.fMaxSet {
		s.fMax = samplingFrequency / 2
	}

	if err := s.validate(); err != nil {
		return nil, err
	}

	return &Ceps{
		p:            s.params,
		k:            rebuild(s.params, kernels{}, cacheAll),
		newTransform: s.transform,
	}, nil
}

// SamplingFrequency returns the sampling frequency in Hz.
func (c *Ceps) SamplingFrequency() float64 { return c.p.sf }

// WinLengthMs returns the window length in milliseconds.
func (c *Ceps) WinLengthMs() int { return c.p.winLengthMs }

// WinLength returns the window length in samples.
func (c *Ceps) WinLength() int { return c.k.winLength }

// WinShiftMs returns the window shift in milliseconds.
func (c *Ceps) WinShiftMs() int { return c.p.winShiftMs }

// WinShift returns the window shift in samples.
func (c *Ceps) WinShift() int { return c.k.winShift }

// WinSize returns the FFT size: the smallest power of two >= WinLength.
func (c *Ceps) WinSize() int { return c.k.winSize }

// NFilters returns the number of filterbank channels.
func (c *Ceps) NFilters() int { return c.p.nFilters }

// NCeps returns the number of cepstral coefficients kept.
func (c *Ceps) NCeps() int { return c.p.nCeps }

// FMin returns the lower filterbank frequency in Hz.
func (c *Ceps) FMin() float64 { return c.p.fMin }

// FMax returns the upper filterbank frequency in Hz.
func (c *Ceps) FMax() float64 { return c.p.fMax }

// FbLinear reports whether the filterbank is linearly spaced.
func (c *Ceps) FbLinear() bool { return c.p.fbLinear }

// DeltaWin returns the derivative regression half-width in frames.
func (c *Ceps) DeltaWin() int { return c.p.deltaWin }

// PreEmphasisCoeff returns the pre-emphasis coefficient.
func (c *Ceps) PreEmphasisCoeff() float64 { return c.p.preEmphasisCoeff }

// DctNorm reports whether orthonormal DCT scaling is applied.
func (c *Ceps) DctNorm() bool { return c.p.dctNorm }

// WithEnergy reports whether log energy is appended.
func (c *Ceps) WithEnergy() bool { return c.p.withEnergy }

// WithDelta reports whether first-order derivatives are appended.
func (c *Ceps) WithDelta() bool { return c.p.withDelta }

// WithDeltaDelta reports whether second-order derivatives are appended.
func (c *Ceps) WithDeltaDelta() bool { return c.p.withDeltaDelta }

// MeanNorm reports whether the static block is mean-normalized.
func (c *Ceps) MeanNorm() bool { return c.p.meanNorm }

// NormEnergy reports whether mean normalization includes the energy column.
func (c *Ceps) NormEnergy() bool { return c.p.normEnergy }

// SpectrumKind returns the integrated spectrum kind.
func (c *Ceps) SpectrumKind() SpectrumKind { return c.p.spectrum }

// WindowType returns the analysis window type.
func (c *Ceps) WindowType() window.Type { return c.p.window }

// Filters returns a copy of the filterbank.
func (c *Ceps) Filters() []Filter {
	out := make([]Filter, len(c.k.bank.filters))
	for i, f := range c.k.bank.filters {
		out[i] = Filter{Start: f.Start, Weights: append([]float64(nil), f.Weights...)}
	}
	return out
}

// PIndex returns a copy of the nFilters+2 FFT bin indices delimiting the
// filterbank triangles.
func (c *Ceps) PIndex() []int {
	return append([]int(nil), c.k.bank.pIndex...)
}

// DCTBasis returns a copy of the nCeps x nFilters DCT basis.
func (c *Ceps) DCTBasis() *mat.Dense {
	return mat.DenseCopyOf(c.k.dct)
}

// Window returns a copy of the analysis window kernel.
func (c *Ceps) Window() []float64 {
	return append([]float64(nil), c.k.window...)
}
