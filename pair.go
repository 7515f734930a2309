package hop

// Pair is one layer of a nested parameter tuple. Parameter shapes grow by
// wrapping an existing shape in another Pair: float64, Pair[float64,
// float64], Pair[float64, Pair[int, float64]], and so on. The shape of a
// function is fixed by its type; two functions combine only when their
// shapes unify, so mismatches are compile errors.
type Pair[A, B any] struct {
	A A
	B B
}

// P returns the pair (a, b).
func P[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{A: a, B: b}
}

// LiftLeft adds an unused parameter slot on the left: the result ignores
// the new slot and delegates to f on the retained one. Lifting two
// independently parametrized functions onto a joint pair shape is what
// makes them combinable.
func LiftLeft[A, B any](f Fn[B]) Fn[Pair[A, B]] {
	return func(p Pair[A, B]) float64 { return f(p.B) }
}

// LiftRight adds an unused parameter slot on the right.
func LiftRight[B, A any](f Fn[A]) Fn[Pair[A, B]] {
	return func(p Pair[A, B]) float64 { return f(p.A) }
}

// ApplyLeft fixes the left slot of a pair-shaped function, returning the
// function of the remaining slot. Applied repeatedly it strips one tuple
// layer at a time until a plain number remains.
func ApplyLeft[A, B any](f Fn[Pair[A, B]], a A) Fn[B] {
	return func(b B) float64 { return f(Pair[A, B]{A: a, B: b}) }
}

// ApplyRight fixes the right slot.
func ApplyRight[A, B any](f Fn[Pair[A, B]], b B) Fn[A] {
	return func(a A) float64 { return f(Pair[A, B]{A: a, B: b}) }
}
