// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command l2mgen generates the link-name symbol table of the l2math package.
//
// Usage:
//
//	l2mgen -pkg ./l2math -output l2math/zz_symbols.go
//
// Or via go:generate from inside the package:
//
//	//go:generate go run ../cmd/l2mgen -pkg . -output zz_symbols.go
//
// Every exported function whose signature is one of
//
//	func(float64) float64
//	func(float32) float32
//	func(float64, float64) float64
//	func(float32, float32) float32
//
// gets an entry named <prefix><lowercase name>. Other functions are skipped.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	pkgPattern = flag.String("pkg", ".", "Package to scan (import path or relative directory)")
	outputFile = flag.String("output", "zz_symbols.go", "Output file")
	prefix     = flag.String("prefix", "__l2math_", "Link name prefix")
)

func main() {
	flag.Parse()

	gen := &Generator{
		Pattern: *pkgPattern,
		Output:  *outputFile,
		Prefix:  *prefix,
	}

	n, err := gen.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully generated %d symbols in %s\n", n, *outputFile)
}
