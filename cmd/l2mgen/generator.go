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

package main

import (
	"bytes"
	"fmt"
	"go/types"
	"os"
	"sort"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/imports"
)

// Generator loads a package and writes its symbol table.
type Generator struct {
	Pattern string
	Output  string
	Prefix  string
}

// Entry is one row of the generated table.
type Entry struct {
	LinkName string
	Func     string
	// Kind is the suffix of the l2math Kind constant and the name of the
	// Symbol field holding the function: F64, F32, F64x2 or F32x2.
	Kind string
}

// Run loads the package, renders the table and writes it to g.Output. It
// returns the number of entries written.
func (g *Generator) Run() (int, error) {
	cfg := &packages.Config{Mode: packages.NeedName | packages.NeedTypes}
	pkgs, err := packages.Load(cfg, g.Pattern)
	if err != nil {
		return 0, fmt.Errorf("loading %s: %w", g.Pattern, err)
	}
	if len(pkgs) != 1 {
		return 0, fmt.Errorf("pattern %q matched %d packages, want 1", g.Pattern, len(pkgs))
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return 0, fmt.Errorf("loading %s: %v", pkg.PkgPath, pkg.Errors[0])
	}

	entries := g.Collect(pkg.Types.Scope())
	if len(entries) == 0 {
		return 0, fmt.Errorf("no eligible functions in %s", pkg.PkgPath)
	}

	src, err := Render(pkg.Name, entries)
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(g.Output, src, 0o644); err != nil {
		return 0, fmt.Errorf("writing %s: %w", g.Output, err)
	}
	return len(entries), nil
}

// Collect returns an entry for each exported function in scope with a
// supported signature, sorted by link name.
func (g *Generator) Collect(scope *types.Scope) []Entry {
	funcs := lo.FilterMap(scope.Names(), func(name string, _ int) (*types.Func, bool) {
		fn, ok := scope.Lookup(name).(*types.Func)
		return fn, ok && fn.Exported()
	})

	entries := lo.FilterMap(funcs, func(fn *types.Func, _ int) (Entry, bool) {
		kind, ok := Classify(fn.Type().(*types.Signature))
		if !ok {
			return Entry{}, false
		}
		return Entry{
			LinkName: g.Prefix + strings.ToLower(fn.Name()),
			Func:     fn.Name(),
			Kind:     kind,
		}, true
	})

	sort.Slice(entries, func(i, j int) bool { return entries[i].LinkName < entries[j].LinkName })
	return entries
}

// Classify maps a function signature onto a symbol kind. Methods, generic
// functions and variadic functions are never eligible.
func Classify(sig *types.Signature) (string, bool) {
	if sig.Recv() != nil || sig.TypeParams().Len() > 0 || sig.Variadic() {
		return "", false
	}
	if sig.Results().Len() != 1 {
		return "", false
	}

	res := sig.Results().At(0).Type()
	var base string
	switch {
	case types.Identical(res, types.Typ[types.Float64]):
		base = "F64"
	case types.Identical(res, types.Typ[types.Float32]):
		base = "F32"
	default:
		return "", false
	}

	params := sig.Params()
	for i := range params.Len() {
		if !types.Identical(params.At(i).Type(), res) {
			return "", false
		}
	}
	switch params.Len() {
	case 1:
		return base, true
	case 2:
		return base + "x2", true
	}
	return "", false
}

// Render produces the formatted Go source for the table.
func Render(pkgName string, entries []Entry) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by l2mgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkgName)
	fmt.Fprintf(&buf, "var symbols = []Symbol{\n")
	for _, e := range entries {
		fmt.Fprintf(&buf, "\t{Name: %q, Func: %q, Kind: Kind%s, %s: %s},\n", e.LinkName, e.Func, e.Kind, e.Kind, e.Func)
	}
	fmt.Fprintf(&buf, "}\n")

	formatted, err := imports.Process("zz_symbols.go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return formatted, nil
}
