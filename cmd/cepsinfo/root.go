package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/cwbudde/algo-ceps/dsp/ceps"
	"github.com/cwbudde/algo-ceps/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// app carries the state shared by all subcommands once flags are parsed.
type app struct {
	configFile string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
}

// paramFlags maps command-line flags to configuration keys.
var paramFlags = []struct {
	name, key string
}{
	{"sampling-frequency", "sampling_frequency"},
	{"window-length", "window.length_ms"},
	{"window-shift", "window.shift_ms"},
	{"window-type", "window.type"},
	{"n-filters", "filterbank.n_filters"},
	{"f-min", "filterbank.f_min"},
	{"f-max", "filterbank.f_max"},
	{"linear", "filterbank.linear"},
	{"n-ceps", "cepstrum.n_ceps"},
	{"dct-norm", "cepstrum.dct_norm"},
	{"spectrum", "cepstrum.spectrum"},
	{"pre-emphasis", "pre_emphasis"},
	{"energy", "energy"},
	{"delta", "delta.enabled"},
	{"delta-delta", "delta.delta_delta"},
	{"delta-window", "delta.window"},
	{"mean-norm", "normalization.mean"},
	{"norm-energy", "normalization.energy"},
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "cepsinfo",
		Short: "MFCC/LFCC feature extraction and analyzer inspection",
		Long: `cepsinfo computes Mel- or linear-frequency cepstral coefficients from
16-bit PCM mono WAV files and prints the frame geometry, filterbank and
window of the configured analyzer.

Settings are resolved from flags, then CEPS_* environment variables, then
the YAML file given by --config, then built-in defaults.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	pf.Float64("sampling-frequency", 16000, "analysis sampling frequency in Hz")
	pf.Int("window-length", 20, "frame length in ms")
	pf.Int("window-shift", 10, "frame shift in ms")
	pf.String("window-type", "hamming", "analysis window (hamming, hann, blackman, rectangular)")
	pf.Int("n-filters", 24, "number of filterbank channels")
	pf.Float64("f-min", 0, "lower filterbank frequency in Hz")
	pf.Float64("f-max", 0, "upper filterbank frequency in Hz (0 = Nyquist)")
	pf.Bool("linear", false, "linear filterbank (LFCC) instead of Mel")
	pf.Int("n-ceps", 19, "number of cepstral coefficients")
	pf.Bool("dct-norm", false, "orthonormal DCT scaling")
	pf.String("spectrum", "magnitude", "integrated spectrum (magnitude, power)")
	pf.Float64("pre-emphasis", 0.95, "pre-emphasis coefficient in [0,1]")
	pf.Bool("energy", false, "append log energy")
	pf.Bool("delta", false, "append first-order derivatives")
	pf.Bool("delta-delta", false, "append first- and second-order derivatives")
	pf.Int("delta-window", 2, "derivative regression half-width in frames")
	pf.Bool("mean-norm", false, "mean-normalize the static coefficients")
	pf.Bool("norm-energy", false, "include log energy in mean normalization")

	root.AddCommand(
		newAnalyzeCmd(a),
		newShapeCmd(a),
		newFiltersCmd(a),
		newWindowCmd(a),
		newConfigCmd(a),
	)

	return root
}

func (a *app) init(cmd *cobra.Command) error {
	level, err := parseLevel(a.logLevel)
	if err != nil {
		return err
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	v, err := config.NewViper(a.configFile)
	if err != nil {
		return err
	}
	if err := bindFlags(cmd.Root().PersistentFlags(), v); err != nil {
		return err
	}
	if a.configFile != "" {
		a.logger.Debug("using config file", "path", v.ConfigFileUsed())
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// bindFlags binds every parameter flag to its configuration key so that a
// flag set on the command line overrides env and file values.
func bindFlags(flags *pflag.FlagSet, v *viper.Viper) error {
	for _, p := range paramFlags {
		f := flags.Lookup(p.name)
		if f == nil {
			return fmt.Errorf("flag --%s not registered", p.name)
		}
		if err := v.BindPFlag(p.key, f); err != nil {
			return fmt.Errorf("bind --%s: %w", p.name, err)
		}
	}
	return nil
}

// analyzer builds a Ceps for the resolved configuration.
func (a *app) analyzer() (*ceps.Ceps, error) {
	c, err := a.cfg.NewAnalyzer()
	if err != nil {
		return nil, err
	}
	a.logger.Debug("analyzer ready",
		"sf", c.SamplingFrequency(),
		"win_length", c.WinLength(),
		"win_shift", c.WinShift(),
		"fft_size", c.WinSize(),
		"filters", c.NFilters(),
		"ceps", c.NCeps(),
		"width", c.Width(),
	)
	return c, nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}
