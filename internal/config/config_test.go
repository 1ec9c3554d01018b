package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-ceps/dsp/ceps"
	"github.com/cwbudde/algo-ceps/dsp/window"
)

func TestLoadDefaults(t *testing.T) {
	v, err := NewViper("")
	if err != nil {
		t.Fatalf("NewViper: %v", err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.SamplingFrequency != 16000 || cfg.Window.LengthMs != 20 || cfg.Window.ShiftMs != 10 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.FilterBank.NFilters != 24 || cfg.Cepstrum.NCeps != 19 || cfg.PreEmphasis != 0.95 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}

	c, err := cfg.NewAnalyzer()
	if err != nil {
		t.Fatalf("NewAnalyzer: %v", err)
	}
	if c.FMax() != 8000 || c.WindowType() != window.TypeHamming || c.SpectrumKind() != ceps.Magnitude {
		t.Fatalf("analyzer fMax=%g window=%v spectrum=%v", c.FMax(), c.WindowType(), c.SpectrumKind())
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ceps.yaml")
	data := `sampling_frequency: 8000
window:
  length_ms: 25
  shift_ms: 10
  type: hann
filterbank:
  n_filters: 20
  f_min: 100
  f_max: 3800
  linear: true
cepstrum:
  n_ceps: 12
  dct_norm: true
  spectrum: power
pre_emphasis: 0.97
energy: true
delta:
  delta_delta: true
  window: 3
normalization:
  mean: true
  energy: true
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	v, err := NewViper(path)
	if err != nil {
		t.Fatalf("NewViper: %v", err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	c, err := cfg.NewAnalyzer()
	if err != nil {
		t.Fatalf("NewAnalyzer: %v", err)
	}

	switch {
	case c.SamplingFrequency() != 8000, c.WinLength() != 200, c.WinShift() != 80:
		t.Fatalf("framing %g/%d/%d", c.SamplingFrequency(), c.WinLength(), c.WinShift())
	case c.WindowType() != window.TypeHann:
		t.Fatalf("window = %v", c.WindowType())
	case c.NFilters() != 20 || c.FMin() != 100 || c.FMax() != 3800 || !c.FbLinear():
		t.Fatalf("filterbank %d [%g,%g] linear=%v", c.NFilters(), c.FMin(), c.FMax(), c.FbLinear())
	case c.NCeps() != 12 || !c.DctNorm() || c.SpectrumKind() != ceps.Power:
		t.Fatalf("cepstrum %d norm=%v spectrum=%v", c.NCeps(), c.DctNorm(), c.SpectrumKind())
	case c.PreEmphasisCoeff() != 0.97 || !c.WithEnergy():
		t.Fatalf("pre-emphasis %g energy=%v", c.PreEmphasisCoeff(), c.WithEnergy())
	case !c.WithDelta() || !c.WithDeltaDelta() || c.DeltaWin() != 3:
		t.Fatalf("delta %v/%v win=%d", c.WithDelta(), c.WithDeltaDelta(), c.DeltaWin())
	case !c.MeanNorm() || !c.NormEnergy():
		t.Fatalf("normalization %v/%v", c.MeanNorm(), c.NormEnergy())
	}
}

func TestEnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("CEPS_CEPSTRUM_N_CEPS", "7")
	t.Setenv("CEPS_SAMPLING_FREQUENCY", "22050")

	v, err := NewViper("")
	if err != nil {
		t.Fatalf("NewViper: %v", err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Cepstrum.NCeps != 7 || cfg.SamplingFrequency != 22050 {
		t.Fatalf("env not applied: n_ceps=%d sf=%g", cfg.Cepstrum.NCeps, cfg.SamplingFrequency)
	}
}

func TestLoadRejectsUnknownNames(t *testing.T) {
	v, err := NewViper("")
	if err != nil {
		t.Fatalf("NewViper: %v", err)
	}
	v.Set("window.type", "kaiser")
	v.Set("cepstrum.spectrum", "phase")

	if _, err := Load(v); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestMissingConfigFile(t *testing.T) {
	if _, err := NewViper(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for a missing config file")
	}
}

func TestInvalidValuesSurfaceFromAnalyzer(t *testing.T) {
	v, err := NewViper("")
	if err != nil {
		t.Fatalf("NewViper: %v", err)
	}
	v.Set("cepstrum.n_ceps", 30)
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := cfg.NewAnalyzer(); err == nil {
		t.Fatal("expected ErrInvalidParameter for n_ceps > n_filters")
	}
}
