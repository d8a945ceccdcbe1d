package calc_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarelli/calc"
)

// checkResult compares an evaluation result against a wanted value, treating
// NaN as equal to NaN and infinities exactly.
func checkResult(t *testing.T, want, got float64) {
	t.Helper()
	switch {
	case math.IsNaN(want):
		assert.True(t, math.IsNaN(got), "want NaN, got %g", got)
	case math.IsInf(want, 0):
		assert.Equal(t, want, got)
	default:
		assert.InDelta(t, want, got, 1e-9)
	}
}

func TestEvaluate(t *testing.T) {
	inf := math.Inf(1)
	nan := math.NaN()
	cases := []struct {
		name string
		src  string
		want float64
	}{
		// literals
		{"number", "1", 1},
		{"decimal", "3.14", 3.14},
		{"decimal-nodec", "3.", 3},
		{"sci", "3e2", 300},
		{"sci-zero", "3e0", 3},
		{"sci-capital", "3E2", 300},
		{"sci-dec-base", "3.14e1", 31.4},
		{"sci-neg-base", "-3.14e1", -31.4},
		{"sci-neg-exp", "3.14e-2", 0.0314},
		{"sci-exp-plus", "3.14e+2", 314},
		{"sci-overflow", "1e400", inf},

		// constants
		{"e", "e", math.E},
		{"e-upper", "E", math.E},
		{"pi", "pi", math.Pi},
		{"pi-upper", "PI", math.Pi},
		{"pi-utf8", "π", math.Pi},
		{"pi-utf8-cap", "Π", math.Pi},
		{"inf", "inf", inf},
		{"inf-mixed", "Inf", inf},
		{"nan", "nan", nan},
		{"nan-mixed", "NaN", nan},

		// prefix operators
		{"identity", "+1", 1},
		{"identity-inf", "+inf", inf},
		{"identity-nan", "+nan", nan},
		{"negate", "-1", -1},
		{"negate-inf", "-inf", -inf},
		{"negate-nan", "-nan", nan},
		{"prefix-multi", "-+-+-1", -1},
		{"negate-group", "-(1+2)", -3},

		{"sqrt-op", "√4", 2},
		{"sqrt-op-negative", "√-4", nan},
		{"sqrt-op-decimal", "√4.84", 2.2},
		{"sqrt-op-zero", "√0", 0},
		{"sqrt-op-inf", "√inf", inf},
		{"sqrt-op-nan", "√nan", nan},

		// postfix factorial, generalized with Γ(x+1)
		{"factorial", "5!", 120},
		{"factorial-multi", "3!!", 720},
		{"factorial-zero", "0!", 1},
		{"factorial-decimal", "3.14!", math.Gamma(4.14)},
		{"factorial-neg-int", "(-2)!", nan},
		{"factorial-inf", "inf!", inf},
		{"factorial-nan", "nan!", nan},
		{"factorial-precedence", "2 ^ 3!", 64},
		{"factorial-group", "(2 + 3)!", 120},

		// addition and subtraction
		{"add", "1 + 2", 3},
		{"add-decimals", "3.1 + 3.3", 6.4},
		{"add-negative", "1 + -2", -1},
		{"add-assoc", "2 + 5 - 3", 4},
		{"add-inf", "inf + 1", inf},
		{"add-inf-opposite", "inf + -inf", nan},
		{"add-nan", "nan + 1", nan},
		{"subtract", "1 - 2", -1},
		{"subtract-negative", "1 - -2", 3},
		{"subtract-assoc", "5 - 2 + 4", 7},
		{"subtract-inf-both", "inf - inf", nan},
		{"subtract-inf-rhs", "1 - inf", -inf},

		// multiplication and division
		{"multiply", "2 * 3", 6},
		{"multiply-negative", "2 * -3", -6},
		{"multiply-prec-add", "1 + 2 * 3", 7},
		{"multiply-prec-subtract", "1 - 2 * 3", -5},
		{"multiply-inf-opposite", "inf * -inf", -inf},
		{"multiply-nan", "2 * nan", nan},
		{"divide", "6 / 2", 3},
		{"divide-fraction", "7 / 3", 2.3333333333333335},
		{"divide-negative", "6 / -2", -3},
		{"divide-zero", "1 / 0", inf},
		{"divide-zero-negative", "-1 / 0", -inf},
		{"divide-inf-rhs", "2 / inf", 0},
		{"divide-inf-both", "inf / inf", nan},
		{"divide-huge-by-inf", "1e100 / (1/0)", 0},
		{"divide-prec-add", "5 + 6 / 3", 7},
		{"divide-prec-mult", "3 * 4 / 2", 6},

		// modulo: truncating remainder, sign of the dividend
		{"modulo", "5 % 3", 2},
		{"modulo-divisible", "4 % 2", 0},
		{"modulo-neg-dividend", "-5 % 3", -2},
		{"modulo-neg-divisor", "5 % -3", 2},
		{"modulo-decimals", "6.28 % 2.2", 1.88},
		{"modulo-zero", "1 % 0", nan},
		{"modulo-assoc", "7 % 4 % 2", 1},
		{"modulo-prec-divide", "6 / 2 % 3", 0},
		{"modulo-prec-multiply", "5 * 2 % 3", 1},
		{"modulo-inf-lhs", "inf % 1", nan},
		{"modulo-nan", "nan % 1", nan},

		// exponentiation
		{"exp", "2 ^ 3", 8},
		{"exp-decimals", "6.25 ^ 0.5", 2.5},
		{"exp-fraction", "8 ^ (1/3)", 2},
		{"exp-negative", "2 ^ -3", 0.125},
		{"exp-zero", "2 ^ 0", 1},
		{"exp-zero-zero", "0 ^ 0", 1},
		{"exp-right-assoc", "2 ^ 3 ^ 2", 512},
		{"exp-prec-multiply", "4 * 2 ^ 3", 32},
		{"exp-prec-divide", "4 / 2 ^ 3", 0.5},
		{"exp-prec-modulo", "5 % 2 ^ 3", 5},
		{"exp-inf-zero", "inf ^ 0", 1},
		{"exp-inf-rhs", "2 ^ inf", inf},
		{"exp-neginf-even", "-inf ^ 2", inf},
		{"exp-neginf-odd", "-inf ^ 3", -inf},
		{"exp-neginf-rhs", "2 ^ -inf", 0},
		{"exp-nan", "nan ^ 2", nan},
		{"exp-bad-domain", "(-2) ^ 0.5", nan},

		// functions
		{"sqrt", "sqrt(4)", 2},
		{"sqrt-one", "sqrt(1)", 1},
		{"sqrt-upper", "SQRT(4)", 2},
		{"sin-cos-sqrt", "sin(pi/4) * sqrt(2)", 1},
		{"sin-half-pi", "round(sin(1/2*pi), 2)", 1},
		{"cos-pi", "round(cos(pi), 2)", -1},
		{"cos-inf", "cos(inf)", nan},
		{"tan-quarter-pi", "round(tan(1/4*pi), 2)", 1},
		{"degrees", "degrees(pi)", 180},
		{"degrees-neg", "degrees(-pi)", -180},
		{"degrees-inf", "degrees(inf)", inf},
		{"radians", "radians(180)", math.Pi},
		{"radians-360", "radians(360)", 2 * math.Pi},
		{"abs", "abs(-3)", 3},
		{"ln", "ln(e)", 1},
		{"log", "log(1000)", 3},
		{"exp-func", "exp(1)", math.E},

		// round: half away from zero, precision must be a whole number >= 0
		{"round", "round(3.14)", 3},
		{"round-half", "round(0.5)", 1},
		{"round-half-neg", "round(-0.5)", -1},
		{"round-precision", "round(3.14, 1)", 3.1},
		{"round-precision-zero", "round(3.14, 0)", 3},
		{"round-precision-high", "round(3.14, 3)", 3.14},
		{"round-precision-neg", "round(3.14, -1)", nan},
		{"round-precision-frac", "round(3.14, 1.1)", nan},
		{"round-precision-inf", "round(3.14, inf)", nan},
		{"round-precision-nan", "round(3.14, nan)", nan},
		{"round-inf", "round(inf)", inf},
		{"round-case", "Round(3.14)", 3},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			got, err := calc.Evaluate(c.src)
			require.NoError(t, err)
			checkResult(t, c.want, got)
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	t.Run("unknown-constant", func(t *testing.T) {
		_, err := calc.Evaluate("foo")
		var nerr *calc.NameError
		require.ErrorAs(t, err, &nerr)
		assert.Equal(t, "foo", nerr.Name)
	})
	t.Run("unknown-constant-first", func(t *testing.T) {
		// The left operand evaluates first, so its error surfaces.
		_, err := calc.Evaluate("a-constant")
		var nerr *calc.NameError
		require.ErrorAs(t, err, &nerr)
		assert.Equal(t, "a", nerr.Name)
	})
	t.Run("unknown-function", func(t *testing.T) {
		_, err := calc.Evaluate("foo(1)")
		var ferr *calc.FuncError
		require.ErrorAs(t, err, &ferr)
		assert.Equal(t, "foo", ferr.Name)
	})
	t.Run("arity-over", func(t *testing.T) {
		_, err := calc.Evaluate("round(1, 2, 3)")
		var cerr *calc.CallError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, "round", cerr.Func)
		assert.Equal(t, 3, cerr.Len)
	})
	t.Run("arity-under", func(t *testing.T) {
		_, err := calc.Evaluate("sqrt()")
		var cerr *calc.CallError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, 0, cerr.Len)
	})
	t.Run("arity-sqrt-two", func(t *testing.T) {
		_, err := calc.Evaluate("sqrt(1, 2)")
		var cerr *calc.CallError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, 2, cerr.Len)
	})
}

// Layering: malformed input fails in the right stage.
func TestEvaluateErrorLayers(t *testing.T) {
	t.Run("lex", func(t *testing.T) {
		_, err := calc.Evaluate("1 $ 2")
		var lerr *calc.LexError
		assert.ErrorAs(t, err, &lerr)
	})
	t.Run("parse", func(t *testing.T) {
		_, err := calc.Evaluate("1 + ")
		var perr *calc.EOFError
		assert.ErrorAs(t, err, &perr)
	})
	t.Run("paren", func(t *testing.T) {
		_, err := calc.Evaluate("(1 + 2")
		var perr *calc.ParenError
		assert.ErrorAs(t, err, &perr)
	})
}

func TestEvaluateIdempotent(t *testing.T) {
	e, err := calc.Parse("2 ^ 10 - 24")
	require.NoError(t, err)
	a, err := e.Eval()
	require.NoError(t, err)
	b, err := e.Eval()
	require.NoError(t, err)
	assert.Equal(t, a, b)
	c, err := calc.Evaluate("2 ^ 10 - 24")
	require.NoError(t, err)
	assert.Equal(t, a, c)
}
