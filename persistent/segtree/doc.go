/*
Package segtree implements a persistent (multi-version) segment tree.

A segment tree answers range queries over an array for an associative merge
operation, e.g. sums, minima or maxima over a slice of the array. This package keeps
every state the tree has ever been in: each call to Update creates a new version
of the whole structure, leaving all earlier versions unchanged and queryable.

Updates use path copying. Only the nodes on the path from the changed leaf up to the
root are created anew; every subtree not containing the changed position is shared
with the previous version. An update therefore costs O(log n) new nodes, and
memory grows by that amount with every update. Old versions are never released.

    tree, err := segtree.NewSum([]int{1, 2, 3, 4, 5, 6, 7, 8})
    err = tree.Update(2, 10)
    sum, err := tree.Query(0, 2)                    // 13
    old, err := tree.QueryVersion(0, 2, 0)          // 6

Merge order

Inner nodes combine their children as merge(right, left), and range queries combine
partial results in the same order. For commutative operations this is irrelevant.
Clients providing a non-commutative merge (string concatenation, matrix products)
must be aware of it.

Default values

Sub-ranges which do not intersect a query contribute a default value to the result.
The default value has to be a two-sided identity for merge, otherwise range
results are wrong at split boundaries. NewMonoid derives it from the monoid's Zero.

Concurrency

A Tree is not safe for concurrent mutation; callers have to serialize Update.
Snapshots are immutable and may be read from many goroutines, even while
the tree is being updated.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package segtree

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.segtree'.
func tracer() tracing.Trace {
	return tracing.Select("fp.segtree")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("segtree: "+msg, msgargs...)
		panic(msg)
	}
}
