// Package hop provides a functional algebra for parametrized geometric
// points and shapes. A point here is not a triple of numbers but a
// function from a parameter to a triple of numbers; circles, lines,
// Bézier blends and surfaces are built by composing such functions with
// arithmetic, lifting, differencing and reparametrization, and are only
// evaluated at the sample points a consumer chooses.
//
// # Values and functions
//
// [Point] is a concrete 3D point. [PointFn] is its function-valued
// counterpart: three scalar functions ([Fn]) of one shared parameter
// type. [PointFn.Call] evaluates a point function at a parameter value,
// producing a concrete point.
//
// # Parameter shapes
//
// The parameter of a function may be a plain float64, a fixed-size
// array, or a nested [Pair] built by wrapping an existing shape in
// another Pair. Shapes are part of the type: combining two functions of
// different shapes does not compile. [LiftLeft], [LiftRight] and their
// point-level analogs add an unused axis so that independently defined
// functions become composable over a joint parameter; [CallLeft] and
// [CallRight] go the other way, fixing one slot of a pair and returning
// the function of the remaining slot. Stripping one layer per call is
// how composite shapes are evaluated down to concrete points.
//
// # Conventions
//
// Angles for [Circle], [ZigZag] and friends are measured in full turns:
// the parameter interval [0, 1) maps to [0, 2π). Use [CircleRadians]
// when the parameter is already in radians.
//
// All values are immutable after construction and safe to share across
// goroutines. The algebra is total: there are no runtime shape checks
// and no recoverable errors. Numeric degeneracies (division by a zero
// function, differencing with eps = 0, the norm of a zero vector)
// propagate IEEE infinities and NaNs unchanged; [Point.IsNaN] and
// [Point.IsInf] report them.
package hop
