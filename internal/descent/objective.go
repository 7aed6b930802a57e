package descent

import (
	"strconv"
	"strings"
)

// Objective is a differentiable scalar function.
type Objective interface {
	// Value returns f(x).
	Value(x float64) float64

	// Derivative returns f'(x).
	Derivative(x float64) float64
}

// Square is f(x) = x², the default objective. Its minimum is at 0.
type Square struct{}

// Value returns x².
func (Square) Value(x float64) float64 { return x * x }

// Derivative returns 2x.
func (Square) Derivative(x float64) float64 { return 2 * x }

// String implements fmt.Stringer.
func (Square) String() string { return "f(x) = x^2" }

// Quadratic is f(x) = A*x² + B*x + C.
type Quadratic struct {
	A, B, C float64
}

// Value returns A*x² + B*x + C.
func (q Quadratic) Value(x float64) float64 {
	return q.A*x*x + q.B*x + q.C
}

// Derivative returns 2A*x + B.
func (q Quadratic) Derivative(x float64) float64 {
	return 2*q.A*x + q.B
}

// String implements fmt.Stringer.
// Zero terms are dropped and unit coefficients are written without the 1,
// so Quadratic{A: 1, B: -6} prints as "f(x) = x^2 - 6x".
func (q Quadratic) String() string {
	var b strings.Builder
	b.WriteString("f(x) =")
	writeTerm(&b, q.A, "x^2")
	writeTerm(&b, q.B, "x")
	writeTerm(&b, q.C, "")
	if b.Len() == len("f(x) =") {
		b.WriteString(" 0")
	}
	return b.String()
}

func writeTerm(b *strings.Builder, coef float64, power string) {
	if coef == 0 {
		return
	}
	first := b.Len() == len("f(x) =")
	switch {
	case coef < 0 && first:
		b.WriteString(" -")
		coef = -coef
	case coef < 0:
		b.WriteString(" - ")
		coef = -coef
	case first:
		b.WriteString(" ")
	default:
		b.WriteString(" + ")
	}
	if coef != 1 || power == "" {
		b.WriteString(strconv.FormatFloat(coef, 'g', -1, 64))
	}
	b.WriteString(power)
}

// Minimizer returns the stationary point -B/(2A).
//
// It is a minimum only when A > 0. For A == 0 the result is ±Inf or NaN.
func (q Quadratic) Minimizer() float64 {
	return -q.B / (2 * q.A)
}

// Func adapts a pair of plain functions to Objective.
//
// Example:
//
//	obj := descent.Func{
//	    F:  func(x float64) float64 { return math.Cosh(x) },
//	    DF: func(x float64) float64 { return math.Sinh(x) },
//	}
type Func struct {
	F  func(x float64) float64
	DF func(x float64) float64
}

// Value returns F(x).
func (f Func) Value(x float64) float64 { return f.F(x) }

// Derivative returns DF(x).
func (f Func) Derivative(x float64) float64 { return f.DF(x) }
