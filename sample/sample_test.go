package sample

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geomfn/hop"
)

func TestCurve(t *testing.T) {
	pts := Curve(hop.Circle(), 4)
	require.Len(t, pts, 4)

	assert.InDelta(t, 1, pts[0].X, 1e-12)
	assert.InDelta(t, 0, pts[0].Y, 1e-12)
	assert.InDelta(t, 0, pts[1].X, 1e-12)
	assert.InDelta(t, 1, pts[1].Y, 1e-12)
	assert.InDelta(t, -1, pts[2].X, 1e-12)
	assert.InDelta(t, 0, pts[3].X, 1e-12)
	assert.InDelta(t, -1, pts[3].Y, 1e-12)
}

func TestGrid(t *testing.T) {
	pts := Grid(hop.GroundPlane(), 3, 5)
	require.Len(t, pts, 15)

	// Row-major: the first row holds u = 0.
	for j := 0; j < 5; j++ {
		assert.Equal(t, 0.0, pts[j].X)
		assert.Equal(t, float64(j)/5, pts[j].Y)
		assert.Equal(t, 0.0, pts[j].Z)
	}
	assert.Equal(t, 2.0/3.0, pts[10].X)
}

func TestRendererAccumulates(t *testing.T) {
	r := NewRenderer()
	r.Sample(hop.Circle(), 10)
	r.SampleGrid(hop.GroundPlane(), 2, 3)
	r.Add(hop.Pt(1, 2, 3))
	require.Len(t, r.Points(), 10+6+1)
}

func TestPerspective(t *testing.T) {
	proj := Perspective(hop.Pt(0, 0, 1), 1)

	x, y, depth := proj(hop.Pt(0, 0, 0))
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)
	assert.Equal(t, 1.0, depth)

	// A point off-axis projects with x/z scaling.
	x, _, depth = proj(hop.Pt(1, 0, -1))
	assert.Equal(t, 0.5, x)
	assert.Equal(t, 2.0, depth)

	// Behind the viewer.
	_, _, depth = proj(hop.Pt(0, 0, 2))
	assert.Less(t, depth, 0.0)
}

func TestRasterize(t *testing.T) {
	r := NewRenderer()
	r.Add(hop.Pt(0, 0, 0))

	img := r.Rasterize(Perspective(hop.Pt(0, 0, 1), 1), 64, 64, 0.1)
	require.Equal(t, 64, img.Bounds().Dx())
	require.Equal(t, 64, img.Bounds().Dy())

	// The point projects to the image center and must be drawn dark.
	c := img.RGBAAt(32, 32)
	assert.Less(t, int(c.R), 128)
	// A corner stays white.
	w := img.RGBAAt(1, 1)
	assert.Equal(t, uint8(255), w.R)
}

func TestRasterizeSkipsBehindViewer(t *testing.T) {
	r := NewRenderer()
	r.Add(hop.Pt(0, 0, 2))

	img := r.Rasterize(Perspective(hop.Pt(0, 0, 1), 1), 32, 32, 0.5)
	for _, p := range []image.Point{{16, 16}, {8, 8}, {30, 1}} {
		c := img.RGBAAt(p.X, p.Y)
		require.Equal(t, uint8(255), c.R, "pixel %v", p)
	}
}
