// Command l2mcheck inspects and verifies the l2math kernels.
//
// Usage:
//
//	l2mcheck list
//	l2mcheck eval ceil 1.1
//	l2mcheck eval fdim 3 0x1p0
//	l2mcheck sweep --samples 200000 --max-ulp 2 cosh asinh
//	l2mcheck info
//
// Flags can also be set from a YAML or TOML config file (--config, or
// ./l2mcheck.yaml) and from L2MCHECK_* environment variables, for example
// L2MCHECK_MAX_ULP=3.
package main

import (
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		msg := err.Error()
		if !color.NoColor {
			msg = color.RedString(msg)
		}
		os.Stderr.WriteString(msg + "\n")
		os.Exit(1)
	}
}
