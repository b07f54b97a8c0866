package segtree

// props holds the construction-time settings of a tree.
type props[T any] struct {
	defaultValue T   // result for empty sub-ranges
	updates      int // expected number of updates, for arena sizing
}

// Option is a type to help initializing segment trees at creation time.
type Option[T any] func(props[T]) props[T]

// WithDefault sets the value a query receives for sub-ranges which contain no
// elements. Without this option the zero value of T is used.
//
// The default value has to be an identity for the merge operation, i.e.
// merge(d, x) == x == merge(x, d) for all x. This is not checked.
//
//     tree, err := segtree.New(values, segtree.Min[int], segtree.WithDefault(math.MaxInt))
//
func WithDefault[T any](value T) Option[T] {
	return func(p props[T]) props[T] {
		p.defaultValue = value
		return p
	}
}

// maxPresizedUpdates caps the ExpectedUpdates hint. Trees growing beyond it
// allocate on demand.
const maxPresizedUpdates = 1 << 16

// ExpectedUpdates pre-sizes the node storage of a tree for k updates.
// It is a hint only; trees grow beyond it as needed. Negative values are ignored,
// values above 65536 are treated as 65536.
//
//     tree, err := segtree.NewSum(values, segtree.ExpectedUpdates[int](1000))
//
func ExpectedUpdates[T any](k int) Option[T] {
	return func(p props[T]) props[T] {
		switch {
		case k > maxPresizedUpdates:
			p.updates = maxPresizedUpdates
		case k > 0:
			p.updates = k
		}
		return p
	}
}

// arenaSize estimates the number of nodes for n elements and k updates:
// a build creates 2n-1 nodes, an update one node per tree level.
func arenaSize(n, k int) int {
	return 2*n - 1 + k*(height(n)+1)
}

// height is ⌈log₂ n⌉, the number of inner levels above the leafs.
func height(n int) int {
	h := 0
	for w := 1; w < n; w <<= 1 {
		h++
	}
	return h
}
