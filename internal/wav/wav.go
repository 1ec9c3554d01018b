// Package wav reads and writes 16-bit PCM mono WAVE files.
package wav

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

const (
	formatPCM     = 1
	bitsPerSample = 16
)

var (
	// ErrFormat reports a file that is not a RIFF/WAVE stream.
	ErrFormat = errors.New("wav: invalid format")
	// ErrUnsupported reports a valid WAVE stream this package cannot decode.
	ErrUnsupported = errors.New("wav: unsupported encoding")
)

// Header describes a decoded stream.
type Header struct {
	SampleRate    uint32
	BitsPerSample uint16
	NumChannels   uint16
	NumSamples    int
}

// Decode reads a 16-bit PCM mono WAVE stream. Samples keep their integer
// scale, in [-32768, 32767], which is the range the cepstral floors assume.
func Decode(r io.ReadSeeker) ([]float64, Header, error) {
	d := gowav.NewDecoder(r)
	d.ReadInfo()
	if err := d.Err(); err != nil {
		return nil, Header{}, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if d.NumChans == 0 {
		return nil, Header{}, fmt.Errorf("%w: missing fmt chunk", ErrFormat)
	}

	h := Header{
		SampleRate:    d.SampleRate,
		BitsPerSample: d.BitDepth,
		NumChannels:   d.NumChans,
	}
	switch {
	case d.WavAudioFormat != formatPCM:
		return nil, h, fmt.Errorf("%w: audio format %d, want PCM", ErrUnsupported, d.WavAudioFormat)
	case d.NumChans != 1:
		return nil, h, fmt.Errorf("%w: %d channels, want mono", ErrUnsupported, d.NumChans)
	case d.BitDepth != bitsPerSample:
		return nil, h, fmt.Errorf("%w: %d bits per sample, want 16", ErrUnsupported, d.BitDepth)
	case d.SampleRate == 0:
		return nil, h, fmt.Errorf("%w: zero sample rate", ErrFormat)
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, h, fmt.Errorf("%w: read PCM data: %v", ErrFormat, err)
	}

	samples := make([]float64, len(buf.Data))
	for i, s := range buf.Data {
		samples[i] = float64(s)
	}
	h.NumSamples = len(samples)
	return samples, h, nil
}

// ReadFile decodes the WAVE file at path.
func ReadFile(path string) ([]float64, Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Header{}, err
	}
	defer f.Close()

	return Decode(f)
}

// Encode writes samples as a 16-bit PCM mono WAVE stream. Samples are
// rounded and clipped to the int16 range. The encoder seeks back to patch
// the chunk sizes, so w must be seekable.
func Encode(w io.WriteSeeker, sampleRate int, samples []float64) error {
	pcm := make([]int, len(samples))
	for i, s := range samples {
		pcm[i] = int(math.Max(math.MinInt16, math.Min(math.MaxInt16, math.Round(s))))
	}

	enc := gowav.NewEncoder(w, sampleRate, bitsPerSample, 1, formatPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           pcm,
		SourceBitDepth: bitsPerSample,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wav: write PCM data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav: finalize header: %w", err)
	}
	return nil
}

// WriteFile encodes samples into a new WAVE file at path.
func WriteFile(path string, sampleRate int, samples []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, sampleRate, samples); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
