package sample

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/geomfn/hop"
)

// Projection maps a 3D point to normalized view coordinates: x and y in
// [-1, 1] with y up, and a depth. Points with depth <= 0 are behind the
// viewer and are not drawn.
type Projection func(p hop.Point) (x, y, depth float64)

// Perspective returns a pinhole projection with the viewer at eye
// looking down the negative z axis, with the given focal length.
func Perspective(eye hop.Point, focal float64) Projection {
	return func(p hop.Point) (float64, float64, float64) {
		d := p.Sub(eye)
		depth := -d.Z
		return focal * d.X / depth, focal * d.Y / depth, depth
	}
}

// Renderer accumulates a cloud of sampled points and draws them as small
// squares. It holds concrete points only; the functions it samples are
// evaluated once and not retained.
type Renderer struct {
	points []hop.Point
}

// NewRenderer returns an empty renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Add appends a single concrete point to the cloud.
func (r *Renderer) Add(p hop.Point) {
	r.points = append(r.points, p)
}

// Sample appends n samples of a curve.
func (r *Renderer) Sample(p hop.PointFn[float64], n int) {
	r.points = append(r.points, Curve(p, n)...)
}

// SampleGrid appends nu×nv samples of a surface.
func (r *Renderer) SampleGrid(p hop.PointFn[[2]float64], nu, nv int) {
	r.points = append(r.points, Grid(p, nu, nv)...)
}

// Points returns the accumulated cloud.
func (r *Renderer) Points() []hop.Point {
	return r.points
}

// Rasterize projects every accumulated point with proj and draws it as a
// square of the given radius (in normalized view units) onto a white
// w×h image. Points behind the viewer are skipped.
func (r *Renderer) Rasterize(proj Projection, w, h int, radius float64) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	halfw := float64(w) / 2
	halfh := float64(h) / 2
	rad := radius * halfw

	z := vector.NewRasterizer(w, h)
	for _, p := range r.points {
		x, y, depth := proj(p)
		if depth <= 0 {
			continue
		}
		// View coordinates map to pixels with y flipped.
		px := halfw + x*halfw
		py := halfh - y*halfw
		z.MoveTo(float32(px-rad), float32(py-rad))
		z.LineTo(float32(px+rad), float32(py-rad))
		z.LineTo(float32(px+rad), float32(py+rad))
		z.LineTo(float32(px-rad), float32(py+rad))
		z.ClosePath()
	}
	z.Draw(dst, dst.Bounds(), image.NewUniform(color.Black), image.Point{})
	return dst
}
