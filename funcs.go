package calc

import (
	"math"
	"strconv"
)

// Func is a numeric function. min and max bound the argument counts it
// accepts; the evaluator rejects a call outside that range before invoking
// fn, so fn may index its arguments freely.
type Func struct {
	min, max int
	fn       func(args []float64) float64
}

// funcs is the function registry. Lookups fold case, so keys are lowercase.
// The map is never mutated and is safe to share between goroutines.
var funcs = map[string]Func{
	"abs":     monadic(math.Abs),
	"cos":     monadic(math.Cos),
	"degrees": monadic(func(x float64) float64 { return x * 180 / math.Pi }),
	"exp":     monadic(math.Exp),
	"ln":      monadic(math.Log),
	"log":     monadic(math.Log10),
	"radians": monadic(func(x float64) float64 { return x * math.Pi / 180 }),
	"round":   {min: 1, max: 2, fn: round},
	"sin":     monadic(math.Sin),
	"sqrt":    monadic(math.Sqrt),
	"tan":     monadic(math.Tan),
}

// constants is the constant table, keyed like funcs. NaN and infinity are
// constants rather than lexer specials so that "nan" and "NaN" fall out of
// the same case-folded lookup as "pi" and "Π".
var constants = map[string]float64{
	"e":   math.E,
	"inf": math.Inf(1),
	"nan": math.NaN(),
	"pi":  math.Pi,
	"π":   math.Pi,
}

// monadic wraps a function of one variable into a Func.
func monadic(f func(float64) float64) Func {
	return Func{min: 1, max: 1, fn: func(args []float64) float64 { return f(args[0]) }}
}

// round rounds args[0] to args[1] decimal digits, halves away from zero.
// The digit count defaults to 0 and must be a non-negative integer; any
// other value, including infinities and NaN, yields NaN.
func round(args []float64) float64 {
	n := args[0]
	if len(args) == 1 {
		return math.Round(n)
	}
	d := args[1]
	if d < 0 || d != math.Trunc(d) || math.IsInf(d, 0) {
		return math.NaN()
	}
	p := math.Pow(10, d)
	return math.Round(n*p) / p
}

// FuncError is an error from a call to a function that is not in the
// function registry.
type FuncError struct {
	// Name is the function name that was called.
	Name string
}

func (err *FuncError) Error() string {
	return "unknown function " + strconv.Quote(err.Name)
}

// CallError is an error indicating a function call with an argument count
// the function does not accept.
type CallError struct {
	// Func is the function name that was called.
	Func string
	// Len is the number of arguments in the call.
	Len int
	// Min and Max bound the argument counts the function accepts.
	Min, Max int
}

func (err *CallError) Error() string {
	if err.Len < err.Min {
		return "missing argument for " + err.Func
	}
	return "cannot call " + err.Func + " with " + strconv.Itoa(err.Len) + " arguments"
}
