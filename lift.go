package hop

// LiftPointLeft extends p's parameter shape with an unused axis on the
// left, preserving its value on the retained axis. The point-level
// analog of [LiftLeft].
func LiftPointLeft[A, B any](p PointFn[B]) PointFn[Pair[A, B]] {
	return PointFn[Pair[A, B]]{
		X: LiftLeft[A](p.X),
		Y: LiftLeft[A](p.Y),
		Z: LiftLeft[A](p.Z),
	}
}

// LiftPointRight extends p's parameter shape with an unused axis on the
// right.
func LiftPointRight[B, A any](p PointFn[A]) PointFn[Pair[A, B]] {
	return PointFn[Pair[A, B]]{
		X: LiftRight[B](p.X),
		Y: LiftRight[B](p.Y),
		Z: LiftRight[B](p.Z),
	}
}

// CallLeft fixes the left slot of a pair-parametrized point function,
// yielding the point function of the remaining slot. Together with
// [PointFn.Call] this strips one tuple layer per application, down to a
// concrete [Point].
func CallLeft[A, B any](p PointFn[Pair[A, B]], a A) PointFn[B] {
	return PointFn[B]{
		X: ApplyLeft(p.X, a),
		Y: ApplyLeft(p.Y, a),
		Z: ApplyLeft(p.Z, a),
	}
}

// CallRight fixes the right slot.
func CallRight[A, B any](p PointFn[Pair[A, B]], b B) PointFn[A] {
	return PointFn[A]{
		X: ApplyRight(p.X, b),
		Y: ApplyRight(p.Y, b),
		Z: ApplyRight(p.Z, b),
	}
}

// MapPoint precomposes all three coordinates with g, reparametrizing p
// over g's input type. A phase-shifted circle is
// MapPoint(Circle(), func(t float64) float64 { return t + phase }).
func MapPoint[T, U any](p PointFn[U], g func(T) U) PointFn[T] {
	return PointFn[T]{
		X: Map(p.X, g),
		Y: Map(p.Y, g),
		Z: Map(p.Z, g),
	}
}

// Flatten2 views a point function of a homogeneous pair as a point
// function of a two-element array.
func Flatten2[T any](p PointFn[Pair[T, T]]) PointFn[[2]T] {
	return MapPoint(p, func(a [2]T) Pair[T, T] {
		return Pair[T, T]{A: a[0], B: a[1]}
	})
}
