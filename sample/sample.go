// Package sample discretizes point functions into concrete point clouds
// and rasterizes them for display. It is a thin consumer of the algebra:
// it only calls point functions at parameter values of its own choosing
// and never inspects their structure. Swap it out freely.
package sample

import "github.com/geomfn/hop"

// Curve samples p at the n evenly spaced parameters i/n, i ∈ [0, n).
func Curve(p hop.PointFn[float64], n int) []hop.Point {
	pts := make([]hop.Point, n)
	for i := range pts {
		pts[i] = p.Call(float64(i) / float64(n))
	}
	return pts
}

// Grid samples p on an nu×nv grid over [0, 1)², in row-major order.
func Grid(p hop.PointFn[[2]float64], nu, nv int) []hop.Point {
	pts := make([]hop.Point, 0, nu*nv)
	for i := 0; i < nu; i++ {
		u := float64(i) / float64(nu)
		for j := 0; j < nv; j++ {
			v := float64(j) / float64(nv)
			pts = append(pts, p.Call([2]float64{u, v}))
		}
	}
	return pts
}
