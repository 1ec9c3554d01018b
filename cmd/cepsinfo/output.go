package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/cwbudde/algo-ceps/dsp/ceps"
	"gopkg.in/yaml.v3"
)

// encoder writes a feature matrix produced by c.
type encoder func(w io.Writer, c *ceps.Ceps, m *ceps.Matrix) error

func encoderFor(format string) (encoder, error) {
	switch format {
	case "csv", "":
		return writeCSV, nil
	case "yaml", "yml":
		return writeYAML, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want csv or yaml)", format)
	}
}

// columnNames labels the columns of a feature row: c0..cN-1, e, then the
// same names prefixed with d and dd for the derivative blocks.
func columnNames(c *ceps.Ceps) []string {
	static := make([]string, 0, c.NCeps()+1)
	for i := 0; i < c.NCeps(); i++ {
		static = append(static, "c"+strconv.Itoa(i))
	}
	if c.WithEnergy() {
		static = append(static, "e")
	}

	names := append([]string(nil), static...)
	if c.WithDelta() {
		for _, n := range static {
			names = append(names, "d"+n)
		}
	}
	if c.WithDeltaDelta() {
		for _, n := range static {
			names = append(names, "dd"+n)
		}
	}
	return names
}

func writeCSV(w io.Writer, c *ceps.Ceps, m *ceps.Matrix) error {
	cw := csv.NewWriter(w)

	header := append([]string{"frame", "time_s"}, columnNames(c)...)
	if err := cw.Write(header); err != nil {
		return err
	}

	record := make([]string, len(header))
	shift := float64(c.WinShift()) / c.SamplingFrequency()
	for i := 0; i < m.Rows; i++ {
		record[0] = strconv.Itoa(i)
		record[1] = strconv.FormatFloat(float64(i)*shift, 'f', 4, 64)
		for j, v := range m.Row(i) {
			record[j+2] = strconv.FormatFloat(v, 'g', 8, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

type yamlFeatures struct {
	SamplingFrequency float64     `yaml:"sampling_frequency"`
	WinShift          int         `yaml:"win_shift"`
	Rows              int         `yaml:"rows"`
	Cols              int         `yaml:"cols"`
	Columns           []string    `yaml:"columns"`
	Frames            [][]float64 `yaml:"frames"`
}

func writeYAML(w io.Writer, c *ceps.Ceps, m *ceps.Matrix) error {
	doc := yamlFeatures{
		SamplingFrequency: c.SamplingFrequency(),
		WinShift:          c.WinShift(),
		Rows:              m.Rows,
		Cols:              m.Cols,
		Columns:           columnNames(c),
		Frames:            make([][]float64, m.Rows),
	}
	for i := range doc.Frames {
		doc.Frames[i] = m.Row(i)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return err
	}
	return enc.Close()
}
