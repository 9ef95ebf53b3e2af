package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ajroetker/go-l2math/algo"
	"github.com/ajroetker/go-l2math/internal/ulp"
	"github.com/ajroetker/go-l2math/l2math"
)

type sweepOptions struct {
	samples int
	maxULP  uint64
	workers int
}

type sweepResult struct {
	sym   l2math.Symbol
	stats ulp.Stats
}

func newSweepCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep [NAME...]",
		Short: "Compare functions against the Go standard library on a dense grid",
		Long: "Evaluate each function on a deterministic grid over its domain and report\n" +
			"the maximum and mean distance in ulps from the standard library. With no\n" +
			"names, every function that has a reference is swept.",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = sweepableNames()
			}
			opts := sweepOptions{
				samples: a.v.GetInt("samples"),
				maxULP:  a.v.GetUint64("max-ulp"),
				workers: a.v.GetInt("workers"),
			}
			if opts.samples < 2 {
				return fmt.Errorf("--samples must be at least 2, got %d", opts.samples)
			}

			results, err := a.sweep(cmd.Context(), names, opts)
			if results != nil {
				writeReport(cmd.OutOrStdout(), results, opts.maxULP)
			}
			return err
		},
	}

	cmd.Flags().Int("samples", 100000, "Samples per function")
	cmd.Flags().Uint64("max-ulp", 4, "Fail when a function's max distance exceeds this many ulps")
	_ = a.v.BindPFlag("samples", cmd.Flags().Lookup("samples"))
	_ = a.v.BindPFlag("max-ulp", cmd.Flags().Lookup("max-ulp"))
	return cmd
}

func sweepableNames() []string {
	var names []string
	for _, s := range l2math.Symbols() {
		if _, ok := referenceFor(s.ShortName()); ok {
			names = append(names, s.ShortName())
		}
	}
	sort.Strings(names)
	return names
}

// sweep runs one goroutine per function, bounded by the worker count, and
// evaluates each function's grid on a shared pool. It returns an error
// listing every function over the limit.
func (a *app) sweep(ctx context.Context, names []string, opts sweepOptions) ([]sweepResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	pool := algo.NewPool(opts.workers)
	defer pool.Close()

	results := make([]sweepResult, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(pool.NumWorkers())
	for i, name := range names {
		g.Go(func() error {
			sym, ok := l2math.Lookup(name)
			if !ok {
				return fmt.Errorf("unknown function %q", name)
			}
			ref, ok := referenceFor(sym.ShortName())
			if !ok {
				return fmt.Errorf("no reference for %s", sym.ShortName())
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			a.log.Debug().Str("func", sym.Name).Int("samples", opts.samples).Msg("sweeping")
			results[i] = sweepResult{sym: sym, stats: sweepOne(pool, sym, ref, opts.samples)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("sweep: %w", err)
	}

	return results, a.checkLimits(results, opts.maxULP)
}

// checkLimits returns one error per function that disagreed with its
// reference on NaN-ness or exceeded maxULP.
func (a *app) checkLimits(results []sweepResult, maxULP uint64) error {
	var merr *multierror.Error
	for _, r := range results {
		s := r.stats
		a.log.Info().Str("func", r.sym.Name).Uint64("max_ulp", s.Max).Float64("mean_ulp", s.Mean()).Msg("swept")
		switch {
		case s.NaNMismatches > 0:
			merr = multierror.Append(merr, fmt.Errorf("%s: %d NaN mismatches, first at %v", r.sym.ShortName(), s.NaNMismatches, s.Worst))
		case s.Max > maxULP:
			merr = multierror.Append(merr, fmt.Errorf("%s: %d ulp at %v exceeds %d", r.sym.ShortName(), s.Max, s.Worst, maxULP))
		}
	}
	return merr.ErrorOrNil()
}

// sweepOne evaluates sym on ref's grid. Binary functions take the grid
// against itself reversed.
func sweepOne(pool *algo.Pool, sym l2math.Symbol, ref reference, n int) ulp.Stats {
	xs := ref.samples(n)
	ys := make([]float64, len(xs))
	for i := range xs {
		ys[i] = xs[len(xs)-1-i]
	}
	if sym.Kind.IsFloat32() {
		for i := range xs {
			xs[i] = float64(float32(xs[i]))
			ys[i] = float64(float32(ys[i]))
		}
	}

	got := make([]float64, len(xs))
	switch sym.Kind {
	case l2math.KindF64:
		algo.Transform(pool, xs, got, sym.F64)
	case l2math.KindF64x2:
		algo.Transform2(pool, xs, ys, got, sym.F64x2)
	case l2math.KindF32:
		out := make([]float32, len(xs))
		algo.Transform(pool, toFloat32(xs), out, sym.F32)
		fromFloat32(got, out)
	case l2math.KindF32x2:
		out := make([]float32, len(xs))
		algo.Transform2(pool, toFloat32(xs), toFloat32(ys), out, sym.F32x2)
		fromFloat32(got, out)
	}

	// One accumulator per range, folded in range order so the reported
	// worst input matches a sequential pass.
	type part struct {
		start int
		stats ulp.Stats
	}
	var (
		mu    sync.Mutex
		parts []part
	)
	pool.ParallelFor(len(xs), func(start, end int) {
		var s ulp.Stats
		for i := start; i < end; i++ {
			x := xs[i]
			var want float64
			if sym.Kind.Arity() == 2 {
				want = ref.f64x2(x, ys[i])
			} else {
				want = ref.f64(x)
			}

			var d uint64
			if sym.Kind.IsFloat32() {
				d = ulp.Dist32(float32(got[i]), float32(want))
			} else {
				d = ulp.Dist64(got[i], want)
			}
			if sym.Kind.Arity() == 2 {
				s.Add(d, x, ys[i])
			} else {
				s.Add(d, x)
			}
		}
		mu.Lock()
		parts = append(parts, part{start: start, stats: s})
		mu.Unlock()
	})

	sort.Slice(parts, func(i, j int) bool { return parts[i].start < parts[j].start })
	var s ulp.Stats
	for i := range parts {
		s.Merge(&parts[i].stats)
	}
	return s
}

func toFloat32(xs []float64) []float32 {
	out := make([]float32, len(xs))
	for i, x := range xs {
		out[i] = float32(x)
	}
	return out
}

func fromFloat32(dst []float64, src []float32) {
	for i, x := range src {
		dst[i] = float64(x)
	}
}

func writeReport(w io.Writer, results []sweepResult, maxULP uint64) {
	p := message.NewPrinter(language.English)
	bold := color.New(color.Bold)
	bold.Fprintf(w, "%-10s %12s %8s %10s  %-6s %s\n", "FUNC", "SAMPLES", "MAX", "MEAN", "STATUS", "WORST")
	for _, r := range results {
		s := r.stats
		status := color.GreenString("%-6s", "ok")
		if s.NaNMismatches > 0 || s.Max > maxULP {
			status = color.RedString("%-6s", "FAIL")
		}
		fmt.Fprintf(w, "%-10s %12s %8d %10.4f  %s %s\n",
			r.sym.ShortName(), p.Sprintf("%d", s.Count), s.Max, s.Mean(), status, formatArgs(s.Worst))
	}
}

func formatArgs(xs []float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprintf("%g", x)
	}
	return strings.Join(parts, ", ")
}
