package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/cwbudde/algo-ceps/dsp/spectrum"
	"github.com/spf13/cobra"
)

func newFiltersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "filters",
		Short: "Print the filterbank of the configured analyzer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.analyzer()
			if err != nil {
				return err
			}

			size := c.WinSize()
			sf := c.SamplingFrequency()
			idx := c.PIndex()

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Filter\tStart\tPeak\tEnd\tStart [Hz]\tPeak [Hz]\tEnd [Hz]\tWeights\n")
			fmt.Fprintf(tw, "------\t-----\t----\t---\t----------\t---------\t--------\t-------\n")
			for i, f := range c.Filters() {
				peak := idx[i+1]
				fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%.1f\t%.1f\t%.1f\t%d\n",
					i, f.Start, peak, f.End(),
					spectrum.BinFrequency(f.Start, size, sf),
					spectrum.BinFrequency(peak, size, sf),
					spectrum.BinFrequency(f.End(), size, sf),
					len(f.Weights),
				)
			}
			return tw.Flush()
		},
	}
}
