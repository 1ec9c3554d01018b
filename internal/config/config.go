// Package config loads cepstral analysis settings from YAML files and
// CEPS_* environment variables and turns them into ceps options.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-ceps/dsp/ceps"
	"github.com/cwbudde/algo-ceps/dsp/window"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. CEPS_FILTERBANK_N_FILTERS.
const EnvPrefix = "CEPS"

// Config is the full analysis configuration.
type Config struct {
	SamplingFrequency float64          `mapstructure:"sampling_frequency" yaml:"sampling_frequency"`
	Window            WindowConfig     `mapstructure:"window" yaml:"window"`
	FilterBank        FilterBankConfig `mapstructure:"filterbank" yaml:"filterbank"`
	Cepstrum          CepstrumConfig   `mapstructure:"cepstrum" yaml:"cepstrum"`
	PreEmphasis       float64          `mapstructure:"pre_emphasis" yaml:"pre_emphasis"`
	Energy            bool             `mapstructure:"energy" yaml:"energy"`
	Delta             DeltaConfig      `mapstructure:"delta" yaml:"delta"`
	Normalization     NormConfig       `mapstructure:"normalization" yaml:"normalization"`
}

// WindowConfig describes framing.
type WindowConfig struct {
	LengthMs int    `mapstructure:"length_ms" yaml:"length_ms"`
	ShiftMs  int    `mapstructure:"shift_ms" yaml:"shift_ms"`
	Type     string `mapstructure:"type" yaml:"type"`
}

// FilterBankConfig describes the triangular filterbank. FMax of zero means
// the Nyquist frequency.
type FilterBankConfig struct {
	NFilters int     `mapstructure:"n_filters" yaml:"n_filters"`
	FMin     float64 `mapstructure:"f_min" yaml:"f_min"`
	FMax     float64 `mapstructure:"f_max" yaml:"f_max"`
	Linear   bool    `mapstructure:"linear" yaml:"linear"`
}

// CepstrumConfig describes the DCT stage.
type CepstrumConfig struct {
	NCeps    int    `mapstructure:"n_ceps" yaml:"n_ceps"`
	DCTNorm  bool   `mapstructure:"dct_norm" yaml:"dct_norm"`
	Spectrum string `mapstructure:"spectrum" yaml:"spectrum"`
}

// DeltaConfig describes the derivative blocks.
type DeltaConfig struct {
	Enabled    bool `mapstructure:"enabled" yaml:"enabled"`
	DeltaDelta bool `mapstructure:"delta_delta" yaml:"delta_delta"`
	Window     int  `mapstructure:"window" yaml:"window"`
}

// NormConfig describes mean normalization.
type NormConfig struct {
	Mean   bool `mapstructure:"mean" yaml:"mean"`
	Energy bool `mapstructure:"energy" yaml:"energy"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("sampling_frequency", 16000.0)

	v.SetDefault("window.length_ms", 20)
	v.SetDefault("window.shift_ms", 10)
	v.SetDefault("window.type", window.TypeHamming.String())

	v.SetDefault("filterbank.n_filters", 24)
	v.SetDefault("filterbank.f_min", 0.0)
	v.SetDefault("filterbank.f_max", 0.0)
	v.SetDefault("filterbank.linear", false)

	v.SetDefault("cepstrum.n_ceps", 19)
	v.SetDefault("cepstrum.dct_norm", false)
	v.SetDefault("cepstrum.spectrum", ceps.Magnitude.String())

	v.SetDefault("pre_emphasis", 0.95)
	v.SetDefault("energy", false)

	v.SetDefault("delta.enabled", false)
	v.SetDefault("delta.delta_delta", false)
	v.SetDefault("delta.window", 2)

	v.SetDefault("normalization.mean", false)
	v.SetDefault("normalization.energy", false)
}

// NewViper returns a viper instance with defaults and environment binding.
// path, when non-empty, names a YAML config file to read.
func NewViper(path string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	return v, nil
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the fields that have no ceps counterpart; the rest is
// validated by ceps.New.
func (c *Config) Validate() error {
	var errs []error
	if _, err := window.ParseType(c.Window.Type); err != nil {
		errs = append(errs, fmt.Errorf("window.type: %w", err))
	}
	if _, err := ceps.ParseSpectrumKind(c.Cepstrum.Spectrum); err != nil {
		errs = append(errs, fmt.Errorf("cepstrum.spectrum: %w", err))
	}
	if c.FilterBank.FMax < 0 {
		errs = append(errs, fmt.Errorf("filterbank.f_max must be >= 0: %g", c.FilterBank.FMax))
	}
	return errors.Join(errs...)
}

// Options converts c into ceps options.
func (c *Config) Options() ([]ceps.Option, error) {
	wt, err := window.ParseType(c.Window.Type)
	if err != nil {
		return nil, err
	}
	kind, err := ceps.ParseSpectrumKind(c.Cepstrum.Spectrum)
	if err != nil {
		return nil, err
	}

	fMax := c.FilterBank.FMax
	if fMax == 0 {
		fMax = c.SamplingFrequency / 2
	}

	opts := []ceps.Option{
		ceps.WithWindowMs(c.Window.LengthMs, c.Window.ShiftMs),
		ceps.WithWindowType(wt),
		ceps.WithFilters(c.FilterBank.NFilters),
		ceps.WithCeps(c.Cepstrum.NCeps),
		ceps.WithFrequencyRange(c.FilterBank.FMin, fMax),
		ceps.WithSpectrum(kind),
		ceps.WithPreEmphasis(c.PreEmphasis),
		ceps.WithDeltaWindow(c.Delta.Window),
	}
	if c.FilterBank.Linear {
		opts = append(opts, ceps.WithLinearScale())
	}
	if c.Cepstrum.DCTNorm {
		opts = append(opts, ceps.WithDCTNorm())
	}
	if c.Energy {
		opts = append(opts, ceps.WithEnergy())
	}
	if c.Delta.Enabled {
		opts = append(opts, ceps.WithDelta())
	}
	if c.Delta.DeltaDelta {
		opts = append(opts, ceps.WithDeltaDelta())
	}
	if c.Normalization.Mean {
		opts = append(opts, ceps.WithMeanNorm(c.Normalization.Energy))
	}
	return opts, nil
}

// NewAnalyzer builds a ceps analyzer for c.
func (c *Config) NewAnalyzer() (*ceps.Ceps, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return ceps.New(c.SamplingFrequency, opts...)
}
