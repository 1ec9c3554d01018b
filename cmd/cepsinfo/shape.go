package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newShapeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shape SAMPLES",
		Short: "Print the feature matrix shape for a signal length",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return fmt.Errorf("invalid sample count %q", args[0])
			}

			c, err := a.analyzer()
			if err != nil {
				return err
			}

			rows, cols := c.CepsShape(n)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d %d\n", rows, cols)
			return err
		},
	}
}
