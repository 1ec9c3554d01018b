package ceps

import "github.com/cwbudde/algo-ceps/dsp/window"

// update applies mutate to a copy of the parameters, validates the result
// and rebuilds the cache entries that depend on which. Parameters and
// kernels are committed together, so a failed update changes nothing.
func (c *Ceps) update(which param, mutate func(*params)) error {
	next := c.p
	mutate(&next)
	if err := next.validate(); err != nil {
		return err
	}

	c.k = rebuild(next, c.k, invalidates[which])
	c.p = next
	return nil
}

// SetSamplingFrequency sets the sampling frequency in Hz. f_max must stay
// at or below the new Nyquist frequency.
func (c *Ceps) SetSamplingFrequency(sf float64) error {
	return c.update(paramSamplingFrequency, func(p *params) { p.sf = sf })
}

// SetWinLengthMs sets the frame length in milliseconds.
func (c *Ceps) SetWinLengthMs(ms int) error {
	return c.update(paramWinLengthMs, func(p *params) { p.winLengthMs = ms })
}

// SetWinShiftMs sets the frame shift in milliseconds.
func (c *Ceps) SetWinShiftMs(ms int) error {
	return c.update(paramWinShiftMs, func(p *params) { p.winShiftMs = ms })
}

// SetNFilters sets the number of filterbank channels. It must not drop
// below NCeps.
func (c *Ceps) SetNFilters(n int) error {
	return c.update(paramNFilters, func(p *params) { p.nFilters = n })
}

// SetNCeps sets the number of cepstral coefficients, in [1, NFilters].
func (c *Ceps) SetNCeps(n int) error {
	return c.update(paramNCeps, func(p *params) { p.nCeps = n })
}

// SetFMin sets the lower filterbank frequency in Hz.
func (c *Ceps) SetFMin(f float64) error {
	return c.update(paramFMin, func(p *params) { p.fMin = f })
}

// SetFMax sets the upper filterbank frequency in Hz.
func (c *Ceps) SetFMax(f float64) error {
	return c.update(paramFMax, func(p *params) { p.fMax = f })
}

// SetFbLinear switches between a linear (true) and Mel (false) filterbank.
func (c *Ceps) SetFbLinear(linear bool) error {
	return c.update(paramFbLinear, func(p *params) { p.fbLinear = linear })
}

// SetDeltaWin sets the derivative regression half-width in frames.
func (c *Ceps) SetDeltaWin(frames int) error {
	return c.update(paramDeltaWin, func(p *params) { p.deltaWin = frames })
}

// SetPreEmphasisCoeff sets the pre-emphasis coefficient, in [0,1].
func (c *Ceps) SetPreEmphasisCoeff(coeff float64) error {
	return c.update(paramPreEmphasis, func(p *params) { p.preEmphasisCoeff = coeff })
}

// SetDctNorm enables orthonormal DCT-II scaling.
func (c *Ceps) SetDctNorm(norm bool) error {
	return c.update(paramDctNorm, func(p *params) { p.dctNorm = norm })
}

// SetWithEnergy enables the log-energy column.
func (c *Ceps) SetWithEnergy(on bool) error {
	return c.update(paramFlags, func(p *params) { p.withEnergy = on })
}

// SetWithDelta enables first-order derivatives. Disabling delta also
// disables delta-delta.
func (c *Ceps) SetWithDelta(on bool) error {
	return c.update(paramFlags, func(p *params) {
		p.withDelta = on
		if !on {
			p.withDeltaDelta = false
		}
	})
}

// SetWithDeltaDelta enables second-order derivatives. Enabling it also
// enables first-order derivatives.
func (c *Ceps) SetWithDeltaDelta(on bool) error {
	return c.update(paramFlags, func(p *params) {
		p.withDeltaDelta = on
		if on {
			p.withDelta = true
		}
	})
}

// SetMeanNorm enables mean normalization of the static block. normEnergy
// includes the energy column.
func (c *Ceps) SetMeanNorm(on, normEnergy bool) error {
	return c.update(paramFlags, func(p *params) {
		p.meanNorm = on
		p.normEnergy = normEnergy
	})
}

// SetSpectrumKind selects magnitude or power spectrum integration.
func (c *Ceps) SetSpectrumKind(kind SpectrumKind) error {
	return c.update(paramFlags, func(p *params) { p.spectrum = kind })
}

// SetWindowType selects the analysis window.
func (c *Ceps) SetWindowType(t window.Type) error {
	return c.update(paramWindowType, func(p *params) { p.window = t })
}
