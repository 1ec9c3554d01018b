package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cwbudde/algo-ceps/internal/wav"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "analyze FILE.wav",
		Short: "Extract cepstral features from a WAV file",
		Long: `analyze decodes a 16-bit PCM mono WAV file, resamples it to the
configured sampling frequency when the rates differ, and writes one feature
row per frame.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := encoderFor(format)
			if err != nil {
				return err
			}

			c, err := a.analyzer()
			if err != nil {
				return err
			}

			samples, h, err := wav.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			a.logger.Info("decoded input", "path", args[0], "rate", h.SampleRate, "samples", h.NumSamples)

			if rate := float64(h.SampleRate); rate != c.SamplingFrequency() {
				samples, err = resample(samples, rate, c.SamplingFrequency())
				if err != nil {
					return err
				}
				a.logger.Info("resampled input", "from", rate, "to", c.SamplingFrequency(), "samples", len(samples))
			}

			start := time.Now()
			features, err := c.Analyze(samples)
			if err != nil {
				return err
			}
			a.logger.Info("analysis done", "frames", features.Rows, "width", features.Cols, "elapsed", time.Since(start))
			if features.Rows == 0 {
				a.logger.Warn("input shorter than one window", "samples", len(samples), "win_length", c.WinLength())
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			return enc(w, c, features)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "csv", "output format (csv, yaml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}
