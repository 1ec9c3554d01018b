package ceps

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-ceps/dsp/spectrum"
	"github.com/cwbudde/algo-ceps/dsp/window"
	"gonum.org/v1/gonum/floats"
)

// staticWidth is the width of one derivative block: NCeps plus the energy
// column when enabled.
func (c *Ceps) staticWidth() int {
	if c.p.withEnergy {
		return c.p.nCeps + 1
	}
	return c.p.nCeps
}

// Width returns the number of columns of an analysis result.
func (c *Ceps) Width() int {
	w := c.staticWidth()
	blocks := 1
	if c.p.withDelta {
		blocks++
	}
	if c.p.withDeltaDelta {
		blocks++
	}
	return blocks * w
}

// NumFrames returns the number of complete frames in n samples.
func (c *Ceps) NumFrames(n int) int {
	if n < c.k.winLength {
		return 0
	}
	return 1 + (n-c.k.winLength)/c.k.winShift
}

// CepsShape returns the shape of the matrix Analyze produces for n samples.
// Inputs shorter than one window give zero rows.
func (c *Ceps) CepsShape(n int) (rows, cols int) {
	return c.NumFrames(n), c.Width()
}

// Analyze extracts cepstral features from input, which must be sampled at
// SamplingFrequency. It allocates a fresh Workspace and output matrix.
func (c *Ceps) Analyze(input []float64) (*Matrix, error) {
	ws, err := c.NewWorkspace()
	if err != nil {
		return nil, err
	}

	out := NewMatrix(c.CepsShape(len(input)))
	if err := c.AnalyzeInto(ws, input, out); err != nil {
		return nil, err
	}
	return out, nil
}

// AnalyzeInto extracts cepstral features from input into out using ws for
// scratch. out must have the shape returned by CepsShape(len(input)), else
// ErrShapeMismatch is returned. ws is resized when the configuration changed
// since it was created.
func (c *Ceps) AnalyzeInto(ws *Workspace, input []float64, out *Matrix) error {
	rows, cols := c.CepsShape(len(input))
	if out == nil || !out.hasShape(rows, cols) {
		var got [2]int
		if out != nil {
			got = [2]int{out.Rows, out.Cols}
		}
		return fmt.Errorf("%w: output is %dx%d, want %dx%d", ErrShapeMismatch, got[0], got[1], rows, cols)
	}
	if ws == nil {
		return fmt.Errorf("%w: nil workspace", ErrInvalidParameter)
	}
	if err := ws.fit(c); err != nil {
		return err
	}

	for t := 0; t < rows; t++ {
		if err := c.processFrame(ws, input, t*c.k.winShift, out.Row(t)); err != nil {
			return fmt.Errorf("ceps: frame %d: %w", t, err)
		}
	}

	c.postProcess(out)
	return nil
}

// processFrame writes the static part of one row: NCeps coefficients
// followed by the log energy when enabled.
func (c *Ceps) processFrame(ws *Workspace, input []float64, start int, row []float64) error {
	n := c.k.winLength
	frame := ws.frame

	copy(frame, input[start:start+n])
	clear(frame[n:])

	prev := 0.0
	if start > 0 {
		prev = input[start-1]
	}
	preEmphasis(frame[:n], prev, c.p.preEmphasisCoeff)

	var energy float64
	if c.p.withEnergy {
		energy = logEnergy(frame[:n])
	}

	if err := window.ApplyCoefficientsInPlace(frame[:n], c.k.window); err != nil {
		return err
	}

	for i, x := range frame {
		ws.in[i] = complex(x, 0)
	}
	if err := ws.transform.Forward(ws.out, ws.in); err != nil {
		return fmt.Errorf("forward transform: %w", err)
	}

	half := spectrum.SplitParts(ws.re, ws.im, ws.out)
	switch c.p.spectrum {
	case Power:
		spectrum.PowerFromParts(ws.spec[:half], ws.re[:half], ws.im[:half])
	default:
		spectrum.MagnitudeFromParts(ws.spec[:half], ws.re[:half], ws.im[:half])
	}

	logTriangularFBank(ws.spec, c.k.bank.filters, ws.fbank.RawVector().Data)
	transformDCT(c.k.dct, ws.fbank, ws.ceps)

	copy(row, ws.ceps.RawVector().Data)
	if c.p.withEnergy {
		row[c.p.nCeps] = energy
	}
	return nil
}

// preEmphasis applies x[n] -= a*x[n-1] in place. prev is the sample
// preceding x[0] in the signal, zero at the signal start.
func preEmphasis(x []float64, prev, a float64) {
	if a == 0 || len(x) == 0 {
		return
	}
	for i := len(x) - 1; i > 0; i-- {
		x[i] -= a * x[i-1]
	}
	x[0] -= a * prev
}

// logEnergy returns log(max(sum x^2, EnergyFloor)).
func logEnergy(x []float64) float64 {
	return math.Log(math.Max(floats.Dot(x, x), EnergyFloor))
}
