package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/cwbudde/algo-ceps/dsp/window"
	"github.com/spf13/cobra"
)

var windowTypes = []window.Type{
	window.TypeHamming,
	window.TypeHann,
	window.TypeBlackman,
	window.TypeRectangular,
}

func newWindowCmd(a *app) *cobra.Command {
	var all, periodic bool

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Print gain properties of the analysis window",
		Long: `window prints the coherent gain, equivalent noise bandwidth and scallop
loss of the configured analysis window at the frame length in samples.
With --all every supported window type is listed. --periodic reports the
periodic (DFT-even) form instead of the symmetric form used for analysis.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.analyzer()
			if err != nil {
				return err
			}

			types := []window.Type{c.WindowType()}
			if all {
				types = windowTypes
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Window\tSize\tCoherent Gain\tENBW [bins]\tScallop [dB]\n")
			fmt.Fprintf(tw, "------\t----\t-------------\t-----------\t------------\n")
			for _, t := range types {
				var coeffs []float64
				switch {
				case periodic:
					coeffs = window.Generate(t, c.WinLength(), window.WithPeriodic())
				case t == c.WindowType():
					coeffs = c.Window()
				default:
					coeffs = window.Generate(t, c.WinLength())
				}
				an := window.Analyze(coeffs)
				fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.4f\t%.4f\n",
					t, len(coeffs), an.CoherentGain, an.ENBW, an.ScallopLossdB)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "list every window type")
	cmd.Flags().BoolVar(&periodic, "periodic", false, "analyze the periodic form of the window")
	return cmd
}
