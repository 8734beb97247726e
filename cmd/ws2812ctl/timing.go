package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"periph.io/x/conn/v3/physic"
)

func newTimingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "timing",
		Short: "Print the pulse widths and the delay cycles derived from them",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			clock := physic.Frequency(cfg.Clock)
			if clock == 0 {
				if b := simBoard(cfg.Board); b != nil {
					clock = b.Clock
				}
			}
			t := cfg.DeviceTiming()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "timing: %s\n", t)
			fmt.Fprintf(out, "period: %s\n", t.Period())
			fmt.Fprintf(out, "clock:  %s\n", clock)
			fmt.Fprintf(out, "cycles: %s\n", t.Cycles(clock))
			return nil
		},
	}
}
