package segtree

import "golang.org/x/exp/constraints"

// Number is the set of types the Sum combiner is defined for.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Sum is the merge operation for range sums. Its identity is the zero value.
func Sum[T Number](a, b T) T {
	return a + b
}

// Min is the merge operation for range minima. Use it together with a default
// value greater or equal to every element, e.g. math.MaxInt.
func Min[T constraints.Ordered](a, b T) T {
	if b < a {
		return b
	}
	return a
}

// Max is the merge operation for range maxima. Use it together with a default
// value less or equal to every element, e.g. math.MinInt.
func Max[T constraints.Ordered](a, b T) T {
	if b > a {
		return b
	}
	return a
}

// Monoid bundles a merge operation with its identity element.
//
// For values s, t, u, Add should be associative:
//
//     Add(Add(s, t), u) == Add(s, Add(t, u))
//
// and Zero should be the neutral element:
//
//     Add(Zero(), s) == s == Add(s, Zero())
//
type Monoid[T any] interface {
	Zero() T
	Add(a, b T) T
}

// NewSum creates a tree for range sums over elements.
func NewSum[T Number](elements []T, opts ...Option[T]) (*Tree[T], error) {
	return New(elements, Sum[T], opts...)
}

// NewMonoid creates a tree with m.Add as merge operation and m.Zero() as the
// default value for empty sub-ranges. A WithDefault option given in opts is
// overridden.
func NewMonoid[T any](elements []T, m Monoid[T], opts ...Option[T]) (*Tree[T], error) {
	if m == nil {
		return nil, errorf(ErrInvalidConfig, "monoid is required")
	}
	opts = append(opts[:len(opts):len(opts)], WithDefault(m.Zero()))
	return New(elements, m.Add, opts...)
}
