// Package window generates the tapering windows applied to analysis frames
// before spectral analysis.
//
// Coefficients are produced in symmetric form by default (the convention used
// by cepstral front ends); [WithPeriodic] switches to the FFT-periodic form.
package window
