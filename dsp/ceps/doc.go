// Package ceps extracts cepstral features from single-channel audio:
// Mel-frequency (MFCC) or linear-frequency (LFCC) cepstral coefficients with
// optional log energy and temporal derivatives.
//
// Each frame goes through:
//
//   - pre-emphasis: x[n] -= a*x[n-1]
//   - windowing with a Hamming (or other) kernel, zero-padded to a power of two
//   - forward FFT and magnitude (or power) spectrum
//   - a triangular filterbank, floored at [FbankOutFloor] and log-compressed
//   - a DCT-II basis keeping the first NCeps coefficients
//
// The feature matrix is then mean-normalized and extended with delta and
// delta-delta blocks when enabled. A row is laid out as
//
//	[ceps][energy?][delta ceps][delta energy?][dd ceps][dd energy?]
//
// # Usage
//
// One-shot analysis:
//
//	c, err := ceps.New(16000, ceps.WithCeps(13), ceps.WithEnergy(), ceps.WithDelta())
//	features, err := c.Analyze(samples)
//
// Repeated analysis with caller-owned buffers:
//
//	ws, err := c.NewWorkspace()
//	out := ceps.NewMatrix(c.CepsShape(len(samples)))
//	err = c.AnalyzeInto(ws, samples, out)
//
// # Kernel cache
//
// The window, filterbank and DCT basis are derived from the configuration
// and rebuilt eagerly by the setter that invalidates them. A setter
// that rejects its argument with [ErrInvalidParameter] leaves the analyzer
// untouched.
//
// # Concurrency
//
// Analysis never mutates a [Ceps]. Goroutines may analyze concurrently with
// one Ceps as long as each uses its own [Workspace] and no setter runs at the
// same time.
package ceps
