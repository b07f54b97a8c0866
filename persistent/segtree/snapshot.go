package segtree

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Snapshot is a read-only view of a single version of a tree.
//
// The zero value is not a usable snapshot; get snapshots from Tree.Snapshot.
type Snapshot[T any] struct {
	nodes        arena[T] // prefix of the tree's arena, never appended to
	root         ref
	version      int
	n            int
	merge        func(T, T) T
	defaultValue T
}

// Version returns the number of the tree version this snapshot shows.
func (s Snapshot[T]) Version() int {
	return s.version
}

// Len returns the number of elements.
func (s Snapshot[T]) Len() int {
	return s.n
}

// Total returns the merged value of all elements.
func (s Snapshot[T]) Total() T {
	return s.nodes.at(s.root).value
}

// Query merges the elements in the index range [x,y], both inclusive.
// If x > y, the bounds are swapped. If x or y is not in [0, Len()), an error
// wrapping ErrOutOfRange is returned.
func (s Snapshot[T]) Query(x, y int) (T, error) {
	if x > y {
		x, y = y, x
	}
	if x < 0 || y >= s.n {
		var none T
		return none, errorf(ErrOutOfRange, "query bounds [%d,%d] not in [0,%d)", x, y, s.n)
	}
	return s.query(s.root, 0, s.n-1, x, y), nil
}

// At returns the element at position pos.
func (s Snapshot[T]) At(pos int) (T, error) {
	return s.Query(pos, pos)
}

// query decomposes [l,r] against the range [tl,tr] of node v. Sub-ranges which
// became empty contribute the default value; an exact cover returns the node's value
// without descending further.
func (s Snapshot[T]) query(v ref, tl, tr, l, r int) T {
	if l > r {
		return s.defaultValue
	}
	cur := s.nodes.at(v)
	if l == tl && r == tr {
		return cur.value
	}
	tm := mid(tl, tr)
	left := s.query(cur.left, tl, tm, l, min(r, tm))
	right := s.query(cur.right, tm+1, tr, max(l, tm+1), r)
	return s.merge(right, left)
}

// Values returns the elements of this version, in index order.
func (s Snapshot[T]) Values() []T {
	values := make([]T, 0, s.n)
	return s.leafs(values, s.root)
}

func (s Snapshot[T]) leafs(values []T, v ref) []T {
	cur := s.nodes.at(v)
	if cur.isLeaf() {
		return append(values, cur.value)
	}
	values = s.leafs(values, cur.left)
	return s.leafs(values, cur.right)
}

// Dump returns a printable rendering of the tree of this version.
func (s Snapshot[T]) Dump() string {
	header := fmt.Sprintf("\nSegTree(version=%d, len=%d)\n", s.version, s.n)
	printer := treeprint.New()
	s.dump(printer, s.root, 0, s.n-1)
	return header + printer.String()
}

func (s Snapshot[T]) dump(printer treeprint.Tree, v ref, tl, tr int) {
	cur := s.nodes.at(v)
	label := fmt.Sprintf("[%d…%d] %v", tl, tr, cur.value)
	if cur.isLeaf() {
		printer.AddNode(label)
		return
	}
	branch := printer.AddBranch(label)
	tm := mid(tl, tr)
	s.dump(branch, cur.left, tl, tm)
	s.dump(branch, cur.right, tm+1, tr)
}

// --- Helpers ---------------------------------------------------------------

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
