package main

import (
	"fmt"

	"github.com/DerLukas15/ws2812bang"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newBoardsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "boards [name]",
		Short: "List the supported boards and their pin to port mapping",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := append(ws2812bang.BoardNames(), "rpi")
			if len(args) == 1 {
				names = args
			}
			out := cmd.OutOrStdout()
			for _, name := range names {
				b := simBoard(name)
				if b == nil {
					return errors.Errorf("unknown board %q", name)
				}
				fmt.Fprintf(out, "%s (%s)\n", b.Name, b.Clock)
				if len(args) == 0 {
					continue
				}
				for _, pin := range b.Pins() {
					pp, _ := b.Resolve(pin)
					fmt.Fprintf(out, "  %3d  %s\n", pin, pp)
				}
			}
			return nil
		},
	}
}
