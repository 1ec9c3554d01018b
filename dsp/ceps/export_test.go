package ceps

// FrameLogFilterBank runs the frame processor on frame t of input and
// returns a copy of its log filterbank energies.
func (c *Ceps) FrameLogFilterBank(ws *Workspace, input []float64, t int) ([]float64, error) {
	if err := ws.fit(c); err != nil {
		return nil, err
	}
	row := make([]float64, c.staticWidth())
	if err := c.processFrame(ws, input, t*c.k.winShift, row); err != nil {
		return nil, err
	}
	return append([]float64(nil), ws.fbank.RawVector().Data...), nil
}

// PreEmphasis exposes the in-place pre-emphasis filter.
var PreEmphasis = preEmphasis
