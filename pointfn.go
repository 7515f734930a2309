package hop

import "math"

// PointFn is a 3D point whose coordinates are scalar functions of a
// shared parameter of type T. All three coordinate functions accept the
// identical parameter shape; the type system enforces this, so an
// ill-shaped PointFn cannot be constructed.
//
// A PointFn is immutable after construction. Combinators never evaluate
// the coordinate functions; evaluation happens lazily when [PointFn.Call]
// (or a partial application) supplies a parameter value.
type PointFn[T any] struct {
	X Fn[T]
	Y Fn[T]
	Z Fn[T]
}

// Const returns the point function that yields pt for every parameter
// value. It is the total conversion of a concrete point into any
// parameter shape; mixing concrete points into function expressions goes
// through it (or through [PointFn.Translate]).
func Const[T any](pt Point) PointFn[T] {
	return PointFn[T]{
		X: K[T](pt.X),
		Y: K[T](pt.Y),
		Z: K[T](pt.Z),
	}
}

// Call evaluates all three coordinates at v, producing a concrete point.
func (p PointFn[T]) Call(v T) Point {
	return Point{X: p.X(v), Y: p.Y(v), Z: p.Z(v)}
}

// Add adds two point functions componentwise.
func (p PointFn[T]) Add(o PointFn[T]) PointFn[T] {
	return PointFn[T]{
		X: Add(p.X, o.X),
		Y: Add(p.Y, o.Y),
		Z: Add(p.Z, o.Z),
	}
}

// Sub subtracts two point functions componentwise.
func (p PointFn[T]) Sub(o PointFn[T]) PointFn[T] {
	return PointFn[T]{
		X: Sub(p.X, o.X),
		Y: Sub(p.Y, o.Y),
		Z: Sub(p.Z, o.Z),
	}
}

// Translate adds the constant offset o to every sampled point.
func (p PointFn[T]) Translate(o Point) PointFn[T] {
	return p.Add(Const[T](o))
}

// AddScalar adds v to every coordinate function.
func (p PointFn[T]) AddScalar(v float64) PointFn[T] {
	return p.Add(Const[T](Pt(v, v, v)))
}

// SubScalar subtracts v from every coordinate function.
func (p PointFn[T]) SubScalar(v float64) PointFn[T] {
	return p.AddScalar(-v)
}

// Mul scales every coordinate by the constant f.
func (p PointFn[T]) Mul(f float64) PointFn[T] {
	return p.MulFn(K[T](f))
}

// Div divides every coordinate by the constant f.
func (p PointFn[T]) Div(f float64) PointFn[T] {
	return p.DivFn(K[T](f))
}

// MulFn scales every coordinate by the scalar function f.
func (p PointFn[T]) MulFn(f Fn[T]) PointFn[T] {
	return PointFn[T]{
		X: Mul(p.X, f),
		Y: Mul(p.Y, f),
		Z: Mul(p.Z, f),
	}
}

// DivFn divides every coordinate by the scalar function f. Where f
// evaluates to 0 the coordinates become IEEE infinities or NaNs.
func (p PointFn[T]) DivFn(f Fn[T]) PointFn[T] {
	return PointFn[T]{
		X: Div(p.X, f),
		Y: Div(p.Y, f),
		Z: Div(p.Z, f),
	}
}

// MulElem returns the componentwise product of two point functions.
func (p PointFn[T]) MulElem(o PointFn[T]) PointFn[T] {
	return PointFn[T]{
		X: Mul(p.X, o.X),
		Y: Mul(p.Y, o.Y),
		Z: Mul(p.Z, o.Z),
	}
}

// DivElem returns the componentwise quotient of two point functions.
func (p PointFn[T]) DivElem(o PointFn[T]) PointFn[T] {
	return PointFn[T]{
		X: Div(p.X, o.X),
		Y: Div(p.Y, o.Y),
		Z: Div(p.Z, o.Z),
	}
}

// Dot returns the dot product as a scalar function of the shared
// parameter.
func (p PointFn[T]) Dot(o PointFn[T]) Fn[T] {
	return func(v T) float64 {
		return p.X(v)*o.X(v) + p.Y(v)*o.Y(v) + p.Z(v)*o.Z(v)
	}
}

// Cross returns the cross product of two point functions.
func (p PointFn[T]) Cross(o PointFn[T]) PointFn[T] {
	return PointFn[T]{
		X: func(v T) float64 { return p.Y(v)*o.Z(v) - p.Z(v)*o.Y(v) },
		Y: func(v T) float64 { return p.Z(v)*o.X(v) - p.X(v)*o.Z(v) },
		Z: func(v T) float64 { return p.X(v)*o.Y(v) - p.Y(v)*o.X(v) },
	}
}

// Norm returns the euclidean norm as a scalar function of the shared
// parameter.
func (p PointFn[T]) Norm() Fn[T] {
	d := p.Dot(p)
	return func(v T) float64 { return math.Sqrt(d(v)) }
}

// DiffPoint returns the forward-difference derivative of p with step
// eps, applied independently to all three coordinates. As with [Diff],
// eps = 0 yields IEEE infinities or NaNs.
func DiffPoint(p PointFn[float64], eps float64) PointFn[float64] {
	return PointFn[float64]{
		X: Diff(p.X, eps),
		Y: Diff(p.Y, eps),
		Z: Diff(p.Z, eps),
	}
}
