package l2math

import "strings"

//go:generate go run ../cmd/l2mgen -pkg . -output zz_symbols.go

// LinkPrefix is prepended to every function name to form its C-ABI link
// name, for example __l2math_ceil.
const LinkPrefix = "__l2math_"

// Kind classifies an entry point by its signature.
type Kind int

const (
	// KindF64 is func(float64) float64.
	KindF64 Kind = iota
	// KindF32 is func(float32) float32.
	KindF32
	// KindF64x2 is func(float64, float64) float64.
	KindF64x2
	// KindF32x2 is func(float32, float32) float32.
	KindF32x2
)

// String returns the C-style signature of the kind.
func (k Kind) String() string {
	switch k {
	case KindF64:
		return "double(double)"
	case KindF32:
		return "float(float)"
	case KindF64x2:
		return "double(double, double)"
	case KindF32x2:
		return "float(float, float)"
	default:
		return "unknown"
	}
}

// Arity returns the number of arguments taken by functions of this kind.
func (k Kind) Arity() int {
	if k == KindF64x2 || k == KindF32x2 {
		return 2
	}
	return 1
}

// IsFloat32 reports whether the kind operates on binary32 values.
func (k Kind) IsFloat32() bool {
	return k == KindF32 || k == KindF32x2
}

// Symbol describes one exported entry point. Exactly one of the function
// fields is set, selected by Kind.
type Symbol struct {
	// Name is the link name, e.g. "__l2math_ceil".
	Name string
	// Func is the Go identifier, e.g. "Ceil".
	Func string
	Kind Kind

	F64   func(float64) float64
	F32   func(float32) float32
	F64x2 func(float64, float64) float64
	F32x2 func(float32, float32) float32
}

// ShortName returns the link name without LinkPrefix.
func (s Symbol) ShortName() string {
	return strings.TrimPrefix(s.Name, LinkPrefix)
}

// Eval64 evaluates the symbol on float64 arguments, converting to and from
// float32 for the binary32 kinds. It returns false if the wrong number of
// arguments is given.
func (s Symbol) Eval64(args ...float64) (float64, bool) {
	if len(args) != s.Kind.Arity() {
		return 0, false
	}
	switch s.Kind {
	case KindF64:
		return s.F64(args[0]), true
	case KindF32:
		return float64(s.F32(float32(args[0]))), true
	case KindF64x2:
		return s.F64x2(args[0], args[1]), true
	case KindF32x2:
		return float64(s.F32x2(float32(args[0]), float32(args[1]))), true
	}
	return 0, false
}

var symbolIndex map[string]int

func init() {
	symbolIndex = make(map[string]int, len(symbols))
	for i, s := range symbols {
		symbolIndex[s.Name] = i
	}
}

// Symbols returns a copy of the symbol table sorted by link name.
func Symbols() []Symbol {
	out := make([]Symbol, len(symbols))
	copy(out, symbols)
	return out
}

// Lookup finds a symbol by link name ("__l2math_ceil") or bare name
// ("ceil").
func Lookup(name string) (Symbol, bool) {
	if !strings.HasPrefix(name, LinkPrefix) {
		name = LinkPrefix + name
	}
	i, ok := symbolIndex[name]
	if !ok {
		return Symbol{}, false
	}
	return symbols[i], true
}
