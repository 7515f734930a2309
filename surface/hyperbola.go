// Package surface builds surfaces of revolution from the point algebra.
// The pattern is edges → rings → surfaces: an edge is a fixed curve, a
// ring interpolates between two edges at one parameter, and a surface
// spans a ring's own parameter and a ring-selection parameter. No
// coordinates are manipulated directly; everything is hop.Line plus
// calls and lifting.
package surface

import "github.com/geomfn/hop"

// Hyperbola is a twisted cylinder: a unit bottom circle connected by
// straight lines to a copy raised by Height and rotated by Phase (in
// turns). With a nonzero phase the straight connecting lines sweep a
// hyperboloid.
type Hyperbola struct {
	Height float64
	Phase  float64
}

// Bottom returns the bottom edge, the unit circle.
func (h Hyperbola) Bottom() hop.PointFn[float64] {
	return hop.Circle()
}

// Top returns the top edge: the unit circle raised by Height and
// phase-shifted by Phase.
func (h Hyperbola) Top() hop.PointFn[float64] {
	top := hop.Circle().Translate(hop.Pt(0, 0, h.Height))
	phase := h.Phase
	return hop.MapPoint(top, func(t float64) float64 { return t + phase })
}

// Ring interpolates between the bottom and top edges at t.
func (h Hyperbola) Ring(t float64) hop.PointFn[float64] {
	return hop.Line(h.Bottom(), h.Top(), hop.K[float64](t))
}

// Surface spans the rings: parameter index 0 travels around a ring,
// index 1 selects the ring between bottom (0) and top (1).
func (h Hyperbola) Surface() hop.PointFn[[2]float64] {
	return hop.PointFn[[2]float64]{
		X: func(p [2]float64) float64 { return h.Ring(p[1]).X(p[0]) },
		Y: func(p [2]float64) float64 { return h.Ring(p[1]).Y(p[0]) },
		Z: func(p [2]float64) float64 { return h.Ring(p[1]).Z(p[0]) },
	}
}

// HyperbolaFn is a hyperbola whose height and phase are scalar functions
// of a shared parameter of type T. Calling it with a concrete T strips
// the function layer, leaving a concrete [Hyperbola]; its edge, ring and
// surface constructors instead keep T as the outer slot of a pair
// parameter, to be stripped later one layer per call.
type HyperbolaFn[T any] struct {
	Height hop.Fn[T]
	Phase  hop.Fn[T]
}

// Call evaluates height and phase at v.
func (h HyperbolaFn[T]) Call(v T) Hyperbola {
	return Hyperbola{Height: h.Height(v), Phase: h.Phase(v)}
}

// Bottom returns the bottom edge over the joint (T, angle) parameter.
func (h HyperbolaFn[T]) Bottom() hop.PointFn[hop.Pair[T, float64]] {
	return hop.PointFn[hop.Pair[T, float64]]{
		X: func(p hop.Pair[T, float64]) float64 { return h.Call(p.A).Bottom().X(p.B) },
		Y: func(p hop.Pair[T, float64]) float64 { return h.Call(p.A).Bottom().Y(p.B) },
		Z: func(p hop.Pair[T, float64]) float64 { return h.Call(p.A).Bottom().Z(p.B) },
	}
}

// Top returns the top edge over the joint (T, angle) parameter.
func (h HyperbolaFn[T]) Top() hop.PointFn[hop.Pair[T, float64]] {
	return hop.PointFn[hop.Pair[T, float64]]{
		X: func(p hop.Pair[T, float64]) float64 { return h.Call(p.A).Top().X(p.B) },
		Y: func(p hop.Pair[T, float64]) float64 { return h.Call(p.A).Top().Y(p.B) },
		Z: func(p hop.Pair[T, float64]) float64 { return h.Call(p.A).Top().Z(p.B) },
	}
}

// Ring interpolates between the lifted bottom and top edges at t.
func (h HyperbolaFn[T]) Ring(t float64) hop.PointFn[hop.Pair[T, float64]] {
	return hop.Line(h.Bottom(), h.Top(), hop.K[hop.Pair[T, float64]](t))
}

// Surface spans the rings over the joint (T, [angle, ring]) parameter.
func (h HyperbolaFn[T]) Surface() hop.PointFn[hop.Pair[T, [2]float64]] {
	return hop.PointFn[hop.Pair[T, [2]float64]]{
		X: func(p hop.Pair[T, [2]float64]) float64 { return h.Call(p.A).Surface().X(p.B) },
		Y: func(p hop.Pair[T, [2]float64]) float64 { return h.Call(p.A).Surface().Y(p.B) },
		Z: func(p hop.Pair[T, [2]float64]) float64 { return h.Call(p.A).Surface().Z(p.B) },
	}
}
