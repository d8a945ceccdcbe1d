// Package calc implements a floating-point expression calculator.
//
// An expression is ordinary infix notation over float64 values: "1 + 2 * 3",
// "2 ^ 3 ^ 2", "sin(pi/4) * sqrt(2)", "5!", "√4.84". Constants and function
// names are resolved case-insensitively when the expression is evaluated,
// not when it is parsed, so syntax errors and lookup errors stay distinct.
//
// Undefined numeric operations are not errors. They follow IEEE 754, so
// "1/0" is an infinity and "√-4" is NaN, and both are printable results.
package calc
