package ceps

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-ceps/dsp/spectrum"
	"gonum.org/v1/gonum/mat"
)

// Transform computes a forward DFT of src into dst. Both slices have the
// power-of-two length the transform was created for.
type Transform interface {
	Forward(dst, src []complex128) error
}

// TransformFactory creates a Transform for a given power-of-two size.
type TransformFactory func(size int) (Transform, error)

func newFFTPlan(size int) (Transform, error) {
	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// Workspace holds the scratch buffers and FFT plan used while analyzing a
// signal. A Workspace must not be used by more than one goroutine at a time;
// give each goroutine its own to analyze concurrently with one [Ceps].
//
// Buffers are overwritten completely for every frame, so their content
// between calls is unspecified.
type Workspace struct {
	winSize   int
	transform Transform

	frame []float64
	in    []complex128
	out   []complex128

	re   []float64
	im   []float64
	spec []float64

	fbank *mat.VecDense
	ceps  *mat.VecDense
}

// NewWorkspace returns a Workspace sized for the current configuration.
func (c *Ceps) NewWorkspace() (*Workspace, error) {
	ws := &Workspace{}
	if err := ws.fit(c); err != nil {
		return nil, err
	}
	return ws, nil
}

// fit resizes ws for c. The FFT plan is only replaced when the window size
// changed.
func (ws *Workspace) fit(c *Ceps) error {
	winSize := c.k.winSize
	if ws.transform == nil || ws.winSize != winSize {
		t, err := c.newTransform(winSize)
		if err != nil {
			return fmt.Errorf("ceps: create %d-point transform: %w", winSize, err)
		}

		half := spectrum.HalfSize(winSize)
		ws.winSize = winSize
		ws.transform = t
		ws.frame = make([]float64, winSize)
		ws.in = make([]complex128, winSize)
		ws.out = make([]complex128, winSize)
		ws.re = make([]float64, half)
		ws.im = make([]float64, half)
		ws.spec = make([]float64, half)
	}

	if ws.fbank == nil || ws.fbank.Len() != c.p.nFilters {
		ws.fbank = mat.NewVecDense(c.p.nFilters, nil)
	}
	if ws.ceps == nil || ws.ceps.Len() != c.p.nCeps {
		ws.ceps = mat.NewVecDense(c.p.nCeps, nil)
	}

	return nil
}
