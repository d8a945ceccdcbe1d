package calc

import (
	"math"
	"strconv"
	"strings"
)

// Eval evaluates the expression and returns its value. Undefined numeric
// operations are not errors: they produce IEEE 754 special values, so "1/0"
// evaluates to an infinity. The error conditions are references to unknown
// constants, calls to unknown functions, and calls with an argument count
// the function does not accept.
//
// Evaluation retains no state, so an expression may be evaluated any number
// of times, concurrently if desired, with identical results.
func (e *Expr) Eval() (float64, error) {
	return e.n.eval()
}

// Evaluate is a shortcut to parse an expression and evaluate it.
func Evaluate(src string) (float64, error) {
	e, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return e.Eval()
}

// eval computes the node's value by a post-order walk. Children evaluate
// left before right, and call arguments left to right.
func (n *node) eval() (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.val, nil
	case nodeConst:
		v, ok := constants[strings.ToLower(n.name)]
		if !ok {
			return 0, &NameError{Name: n.name}
		}
		return v, nil
	case nodeCall:
		fn, ok := funcs[strings.ToLower(n.name)]
		if !ok {
			return 0, &FuncError{Name: n.name}
		}
		if len(n.args) < fn.min || len(n.args) > fn.max {
			return 0, &CallError{Func: n.name, Len: len(n.args), Min: fn.min, Max: fn.max}
		}
		args := make([]float64, len(n.args))
		for i, a := range n.args {
			v, err := a.eval()
			if err != nil {
				return 0, err
			}
			args[i] = v
		}
		return fn.fn(args), nil
	case nodeNeg:
		v, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		return -v, nil
	case nodeNop:
		return n.left.eval()
	case nodeSqrt:
		v, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		return math.Sqrt(v), nil
	case nodeFact:
		v, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		// Factorial generalized over the reals: x! is Γ(x+1).
		return math.Gamma(v + 1), nil
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodeMod, nodePow:
		l, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		r, err := n.right.eval()
		if err != nil {
			return 0, err
		}
		switch n.kind {
		case nodeAdd:
			return l + r, nil
		case nodeSub:
			return l - r, nil
		case nodeMul:
			return l * r, nil
		case nodeDiv:
			// No zero check; x/0 is ±inf or NaN per IEEE 754.
			return l / r, nil
		case nodeMod:
			// Truncating remainder: the result keeps the dividend's sign.
			return math.Mod(l, r), nil
		default: // nodePow
			return math.Pow(l, r), nil
		}
	default:
		panic("calc: invalid AST node " + n.kind.String())
	}
}

// NameError is an error from a reference to a name that is not in the
// constant table.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "unknown constant " + strconv.Quote(err.Name)
}
