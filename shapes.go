package hop

import "math"

// Circle returns the unit circle in the xy-plane, parametrized by angle
// in full turns: t ∈ [0, 1) covers [0, 2π).
func Circle() PointFn[float64] {
	return PointFn[float64]{
		X: func(ang float64) float64 { return math.Cos(ang * Tau) },
		Y: func(ang float64) float64 { return math.Sin(ang * Tau) },
		Z: Zero[float64](),
	}
}

// CircleRadians is [Circle] with the angle already in radians.
func CircleRadians() PointFn[float64] {
	return PointFn[float64]{
		X: math.Cos,
		Y: math.Sin,
		Z: Zero[float64](),
	}
}

// ZigZag returns the staircase path in the xy-plane that alternates unit
// steps along x and y, starting along x.
func ZigZag() PointFn[float64] {
	return PointFn[float64]{
		X: Zip(Ident(), func(t float64) float64 { return math.Floor(t) + 1 }),
		Y: Zip(Floor(), Ident()),
		Z: Zero[float64](),
	}
}

// ZagZig returns the staircase path that steps along y first.
func ZagZig() PointFn[float64] {
	return PointFn[float64]{
		X: Zip(Floor(), Ident()),
		Y: Zip(Ident(), func(t float64) float64 { return math.Floor(t) + 1 }),
		Z: Zero[float64](),
	}
}

// XAxis returns points along the x axis.
func XAxis() PointFn[float64] {
	return PointFn[float64]{
		X: Ident(),
		Y: Zero[float64](),
		Z: Zero[float64](),
	}
}

// YAxis returns points along the y axis.
func YAxis() PointFn[float64] {
	return PointFn[float64]{
		X: Zero[float64](),
		Y: Ident(),
		Z: Zero[float64](),
	}
}

// ZAxis returns points along the z axis.
func ZAxis() PointFn[float64] {
	return PointFn[float64]{
		X: Zero[float64](),
		Y: Zero[float64](),
		Z: Ident(),
	}
}

// GroundPlane returns the z = 0 plane, parametrized by (x, y).
func GroundPlane() PointFn[[2]float64] {
	return PointFn[[2]float64]{
		X: func(p [2]float64) float64 { return p[0] },
		Y: func(p [2]float64) float64 { return p[1] },
		Z: Zero[[2]float64](),
	}
}

// Space returns the identity embedding of euclidean 3-space.
func Space() PointFn[[3]float64] {
	return PointFn[[3]float64]{
		X: func(p [3]float64) float64 { return p[0] },
		Y: func(p [3]float64) float64 { return p[1] },
		Z: func(p [3]float64) float64 { return p[2] },
	}
}

// Line returns the linear interpolation a + (b-a)*t of two point
// functions, with the blend factor a scalar function of the same
// parameter. Line(a, b, Zero()) agrees with a everywhere and
// Line(a, b, One()) with b. All Bézier-style constructors are nested
// applications of Line.
func Line[T any](a, b PointFn[T], t Fn[T]) PointFn[T] {
	return PointFn[T]{
		X: Lerp(a.X, b.X, t),
		Y: Lerp(a.Y, b.Y, t),
		Z: Lerp(a.Z, b.Z, t),
	}
}

// QuadBez returns the quadratic Bézier through the control points p0,
// p1, p2 as a line of two lines.
func QuadBez[T any](p0, p1, p2 PointFn[T], t Fn[T]) PointFn[T] {
	return Line(Line(p0, p1, t), Line(p1, p2, t), t)
}

// CubicBez blends the segments p0p1 and p2p3 linearly:
// Line(Line(p0, p1, t), Line(p2, p3, t), t). Note that this is a
// bilinear mix of the two edge lines, not the De Casteljau cubic through
// four control points; the formula is kept for output compatibility.
func CubicBez[T any](p0, p1, p2, p3 PointFn[T], t Fn[T]) PointFn[T] {
	return Line(Line(p0, p1, t), Line(p2, p3, t), t)
}
