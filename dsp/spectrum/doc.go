// Package spectrum provides FFT-adjacent spectrum-domain utilities.
//
// The package intentionally does not implement FFT itself. It operates on
// complex spectrum bins produced by external FFT backends and provides helpers
// for splitting bins, computing magnitude or power, and mapping between bin
// indices and frequencies.
package spectrum
