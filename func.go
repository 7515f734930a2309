package hop

import "math"

// Tau is one full turn in radians.
const Tau = 2 * math.Pi

// Fn is a scalar-valued function of a parameter of type T.
//
// An Fn is immutable once constructed: every combinator returns a new
// closure and never mutates its inputs, so values may be shared freely,
// including across goroutines. Evaluation is pure computation over
// float64 and follows IEEE semantics; nothing in this package intercepts
// infinities or NaNs.
type Fn[T any] func(T) float64

// Ident returns the parameter unchanged.
func Ident() Fn[float64] {
	return func(t float64) float64 { return t }
}

// K returns the constant function v.
func K[T any](v float64) Fn[T] {
	return func(T) float64 { return v }
}

// Zero returns the constant function 0.
func Zero[T any]() Fn[T] {
	return K[T](0)
}

// One returns the constant function 1.
func One[T any]() Fn[T] {
	return K[T](1)
}

// Step returns the step function: 0 for negative input, 1 otherwise.
// The boundary at exactly 0 maps to 1.
func Step() Fn[float64] {
	return func(t float64) float64 {
		if t < 0 {
			return 0
		}
		return 1
	}
}

// Floor returns the floor function.
func Floor() Fn[float64] {
	return math.Floor
}

// HalfCircle returns the y coordinate for x on the upper unit half
// circle, sqrt(1 - x²). Outside [-1, 1] the result is NaN.
func HalfCircle() Fn[float64] {
	return func(x float64) float64 { return math.Sqrt(1 - x*x) }
}

// Add adds two functions pointwise.
func Add[T any](a, b Fn[T]) Fn[T] {
	return func(t T) float64 { return a(t) + b(t) }
}

// Sub subtracts two functions pointwise.
func Sub[T any](a, b Fn[T]) Fn[T] {
	return func(t T) float64 { return a(t) - b(t) }
}

// Mul multiplies two functions pointwise.
func Mul[T any](a, b Fn[T]) Fn[T] {
	return func(t T) float64 { return a(t) * b(t) }
}

// Div divides two functions pointwise. Where b evaluates to 0 the result
// is an IEEE infinity or NaN.
func Div[T any](a, b Fn[T]) Fn[T] {
	return func(t T) float64 { return a(t) / b(t) }
}

// Lerp returns the linear interpolation a + (b-a)*t, with the blend
// factor itself a function of the parameter. Lerp(a, b, Zero()) agrees
// with a everywhere and Lerp(a, b, One()) with b.
func Lerp[T any](a, b, t Fn[T]) Fn[T] {
	return func(v T) float64 {
		av := a(v)
		return av + (b(v)-av)*t(v)
	}
}

// Map precomposes f with g, turning a function of U into a function of
// T. This reparametrizes f; it does not change its values.
func Map[T, U any](f Fn[U], g func(T) U) Fn[T] {
	return func(t T) float64 { return f(g(t)) }
}

// Diff returns the forward-difference derivative of f with step eps,
// (f(t+eps) - f(t)) / eps. The caller chooses eps and accepts the
// truncation error; eps = 0 yields IEEE infinities or NaNs.
func Diff(f Fn[float64], eps float64) Fn[float64] {
	return func(t float64) float64 { return (f(t+eps) - f(t)) / eps }
}
