package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-l2math/l2math"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the exported symbols",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			bold := color.New(color.Bold)
			bold.Fprintf(out, "%-22s %-10s %s\n", "SYMBOL", "FUNC", "SIGNATURE")
			for _, s := range l2math.Symbols() {
				ref := ""
				if _, ok := referenceFor(s.ShortName()); ok {
					ref = " *"
				}
				fmt.Fprintf(out, "%-22s %-10s %s%s\n", s.Name, s.Func, s.Kind, ref)
			}
			fmt.Fprintln(out, "\n* has a reference for sweep")
			return nil
		},
	}
}
