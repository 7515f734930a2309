package hop

import (
	"math"
	"testing"
)

func TestConstants(t *testing.T) {
	diff(t, 3.5, K[float64](3.5)(123))
	diff(t, 0.0, Zero[bool]()(true))
	diff(t, 1.0, One[[2]float64]()([2]float64{7, 8}))
}

func TestIdent(t *testing.T) {
	id := Ident()
	for _, v := range []float64{-2, 0, 0.5, 7} {
		diff(t, v, id(v))
	}
}

func TestStep(t *testing.T) {
	s := Step()
	diff(t, 0.0, s(-0.001))
	diff(t, 1.0, s(0))
	diff(t, 1.0, s(2))
	diff(t, 0.0, s(math.Inf(-1)))
	diff(t, 1.0, s(math.Inf(1)))
}

func TestFloor(t *testing.T) {
	f := Floor()
	diff(t, -2.0, f(-1.5))
	diff(t, 0.0, f(0.999))
	diff(t, 3.0, f(3))
}

func TestArithmetic(t *testing.T) {
	a := Ident()
	b := K[float64](2)
	diff(t, 5.0, Add(a, b)(3))
	diff(t, 1.0, Sub(a, b)(3))
	diff(t, 6.0, Mul(a, b)(3))
	diff(t, 1.5, Div(a, b)(3))
	if got := Div(a, Zero[float64]())(3); !math.IsInf(got, 1) {
		t.Errorf("got %v, want +Inf", got)
	}
}

func TestLerpEndpoints(t *testing.T) {
	a := Ident()
	b := func(t float64) float64 { return t*t + 1 }
	l0 := Lerp(a, b, Zero[float64]())
	l1 := Lerp(a, b, One[float64]())
	for _, v := range []float64{-1, 0, 0.25, 2} {
		diff(t, a(v), l0(v))
		diff(t, b(v), l1(v))
	}
	diff(t, 0.5*(a(2)+b(2)), Lerp(a, b, K[float64](0.5))(2))
}

func TestMap(t *testing.T) {
	f := func(u float64) float64 { return 2 * u }
	g := func(v float64) float64 { return v + 0.25 }
	diff(t, 2.5, Map(Fn[float64](f), g)(1))
}

func TestLiftRoundTrip(t *testing.T) {
	f := Fn[float64](func(t float64) float64 { return 3*t + 1 })
	left := LiftLeft[float64](f)
	right := LiftRight[float64](f)
	for _, fix := range []float64{-2, 0, 5} {
		for _, v := range []float64{0, 0.5, 7} {
			diff(t, f(v), left(P(fix, v)))
			diff(t, f(v), right(P(v, fix)))
		}
	}
}

func TestApply(t *testing.T) {
	f := Fn[Pair[float64, float64]](func(p Pair[float64, float64]) float64 {
		return p.A*10 + p.B
	})
	diff(t, 32.0, ApplyLeft(f, 3)(2))
	diff(t, 32.0, ApplyRight(f, 2)(3))

	// Strip two layers of a nested shape one call at a time.
	g := Fn[Pair[float64, Pair[float64, float64]]](func(p Pair[float64, Pair[float64, float64]]) float64 {
		return p.A*100 + p.B.A*10 + p.B.B
	})
	diff(t, 123.0, ApplyLeft(ApplyLeft(g, 1), 2)(3))
}

func TestDiffScalar(t *testing.T) {
	sq := Fn[float64](func(t float64) float64 { return t * t })
	const eps = 1e-7
	d := Diff(sq, eps)
	diff(t, 2.0, d(1), approx(1e-5))
	diff(t, -4.0, d(-2), approx(1e-5))
}

func TestHalfCircle(t *testing.T) {
	h := HalfCircle()
	diff(t, 1.0, h(0))
	diff(t, 0.0, h(1))
	diff(t, math.Sqrt(0.75), h(0.5))
	if got := h(2); !math.IsNaN(got) {
		t.Errorf("got %v, want NaN", got)
	}
}
