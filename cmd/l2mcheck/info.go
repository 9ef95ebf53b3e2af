package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-l2math/fp"
	"github.com/ajroetker/go-l2math/l2math"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the detected floating-point target and rounding path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "platform:      %s/%s\n", runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(out, "target:        %s\n", fp.CurrentTarget())
			fmt.Fprintf(out, "rounding path: %s\n", fp.CurrentRoundingPath())
			fmt.Fprintf(out, "intcast env:   %v\n", fp.IntCastEnv())
			fmt.Fprintf(out, "symbols:       %d\n", len(l2math.Symbols()))
			return nil
		},
	}
}
