package main

import (
	"fmt"

	resampling "github.com/tphakala/go-audio-resampling"
)

const pcmScale = 32768.0

// resample converts 16-bit scale mono samples from one rate to another.
func resample(samples []float64, from, to float64) ([]float64, error) {
	rs, err := resampling.New(&resampling.Config{
		InputRate:  from,
		OutputRate: to,
		Channels:   1,
		Quality:    resampling.QualitySpec{Preset: resampling.QualityHigh},
	})
	if err != nil {
		return nil, fmt.Errorf("create resampler %g -> %g Hz: %w", from, to, err)
	}

	in := make([]float64, len(samples))
	for i, s := range samples {
		in[i] = s / pcmScale
	}

	out, err := rs.Process(in)
	if err != nil {
		return nil, fmt.Errorf("resample %g -> %g Hz: %w", from, to, err)
	}
	tail, err := rs.Flush()
	if err != nil {
		return nil, fmt.Errorf("flush resampler %g -> %g Hz: %w", from, to, err)
	}
	out = append(out, tail...)
	for i := range out {
		out[i] *= pcmScale
	}
	return out, nil
}
