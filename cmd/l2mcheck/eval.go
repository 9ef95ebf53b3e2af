package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-l2math/fp"
	"github.com/ajroetker/go-l2math/l2math"
)

func newEvalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval NAME ARG [ARG]",
		Short: "Evaluate one function",
		Long: "Evaluate one function and print the result as a decimal, a hex float and raw bits.\n" +
			"Arguments accept decimal, hex-float (0x1.8p1), inf, -inf and nan.",
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			sym, ok := l2math.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown function %q", args[0])
			}
			if got, want := len(args)-1, sym.Kind.Arity(); got != want {
				return fmt.Errorf("%s takes %d argument(s), got %d", sym.ShortName(), want, got)
			}

			bitSize := 64
			if sym.Kind.IsFloat32() {
				bitSize = 32
			}
			xs := make([]float64, 0, 2)
			for _, s := range args[1:] {
				x, err := parseArg(s, bitSize)
				if err != nil {
					return err
				}
				xs = append(xs, x)
			}

			y, _ := sym.Eval64(xs...)
			a.log.Debug().Str("func", sym.Name).Floats64("args", xs).Float64("result", y).Msg("eval")
			writeValue(cmd.OutOrStdout(), y, sym.Kind.IsFloat32())
			return nil
		},
	}
}

// parseArg accepts anything strconv.ParseFloat does, which covers decimal,
// hex floats, inf and nan in any case.
func parseArg(s string, bitSize int) (float64, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(s), bitSize)
	if err != nil {
		return 0, fmt.Errorf("invalid argument %q: %w", s, err)
	}
	return x, nil
}

func writeValue(w io.Writer, y float64, single bool) {
	if single {
		f := float32(y)
		fmt.Fprintf(w, "%v\t%x\t0x%08x\n", f, f, fp.ToBits32(f))
		return
	}
	fmt.Fprintf(w, "%v\t%x\t0x%016x\n", y, y, fp.ToBits64(y))
}
