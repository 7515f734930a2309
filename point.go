package hop

import (
	"fmt"
	"math"
)

// Point is a concrete 3D point: the result of calling a [PointFn] at a
// parameter value, free of any remaining function state.
type Point struct {
	X float64
	Y float64
	Z float64
}

// Pt returns the point (x, y, z).
func Pt(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// FromArray returns the point with the array's three coordinates.
func FromArray(a [3]float64) Point {
	return Point{X: a[0], Y: a[1], Z: a[2]}
}

// Array returns the point's coordinates as an array.
func (pt Point) Array() [3]float64 {
	return [3]float64{pt.X, pt.Y, pt.Z}
}

// Splat returns the point's x, y and z coordinates.
func (pt Point) Splat() (float64, float64, float64) {
	return pt.X, pt.Y, pt.Z
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", pt.X, pt.Y, pt.Z)
}

// Add adds two points componentwise.
func (pt Point) Add(o Point) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
		Z: pt.Z + o.Z,
	}
}

// Sub subtracts two points componentwise.
func (pt Point) Sub(o Point) Point {
	return Point{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
		Z: pt.Z - o.Z,
	}
}

// AddScalar adds v to every coordinate.
func (pt Point) AddScalar(v float64) Point {
	return Point{
		X: pt.X + v,
		Y: pt.Y + v,
		Z: pt.Z + v,
	}
}

// SubScalar subtracts v from every coordinate.
func (pt Point) SubScalar(v float64) Point {
	return pt.AddScalar(-v)
}

func (pt Point) Mul(f float64) Point {
	return Point{
		X: pt.X * f,
		Y: pt.Y * f,
		Z: pt.Z * f,
	}
}

func (pt Point) Div(f float64) Point {
	return Point{
		X: pt.X / f,
		Y: pt.Y / f,
		Z: pt.Z / f,
	}
}

// MulElem returns the componentwise product of two points.
func (pt Point) MulElem(o Point) Point {
	return Point{
		X: pt.X * o.X,
		Y: pt.Y * o.Y,
		Z: pt.Z * o.Z,
	}
}

// DivElem returns the componentwise quotient of two points.
func (pt Point) DivElem(o Point) Point {
	return Point{
		X: pt.X / o.X,
		Y: pt.Y / o.Y,
		Z: pt.Z / o.Z,
	}
}

// Negate returns a new point with the signs of all coordinates flipped.
func (pt Point) Negate() Point {
	return Point{
		X: -pt.X,
		Y: -pt.Y,
		Z: -pt.Z,
	}
}

// Dot returns the dot product of pt and o.
func (pt Point) Dot(o Point) float64 {
	return pt.X*o.X + pt.Y*o.Y + pt.Z*o.Z
}

// Cross returns the cross product of pt and o.
func (pt Point) Cross(o Point) Point {
	return Point{
		X: pt.Y*o.Z - pt.Z*o.Y,
		Y: pt.Z*o.X - pt.X*o.Z,
		Z: pt.X*o.Y - pt.Y*o.X,
	}
}

// Norm returns the euclidean norm of the point, sqrt(pt · pt).
func (pt Point) Norm() float64 {
	return math.Sqrt(pt.Dot(pt))
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	// pt + (o-pt)*t
	return pt.Add(o.Sub(pt).Mul(t))
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return pt.Sub(o).Norm()
}

// IsInf reports whether at least one coordinate is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) || math.IsInf(pt.Z, 0)
}

// IsNaN reports whether at least one coordinate is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsNaN(pt.Z)
}
