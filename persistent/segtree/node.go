package segtree

import (
	"fmt"
	"math"
)

// ref is a handle of a node within the node arena of a tree. Children and version
// roots are stored as refs, never as pointers: a node may be a child of many
// parents across versions, and the arena is the single owner of all of them.
type ref int32

// nilRef is the child handle of leaf nodes.
const nilRef ref = -1

// node is an immutable cell of the tree. It holds the combined value of the index
// range it covers; the range itself is implicit in the node's position.
//
// Nodes are appended to the arena once and never changed afterwards.
type node[T any] struct {
	value T
	left  ref
	right ref
}

func leaf[T any](value T) node[T] {
	return node[T]{value: value, left: nilRef, right: nilRef}
}

func (n node[T]) isLeaf() bool {
	return n.left == nilRef
}

func (n node[T]) String() string {
	if n.isLeaf() {
		return fmt.Sprintf("(%v)", n.value)
	}
	return fmt.Sprintf("(%v ▪︎%d ▪︎%d)", n.value, n.left, n.right)
}

// arena is the append-only store of all nodes ever created for a tree.
//
// Appending may move the backing array, but a copy of an arena (a slice header)
// still sees all nodes which existed at the time of copying. Snapshots rely on this.
type arena[T any] []node[T]

func (a arena[T]) at(r ref) node[T] {
	assertThat(r >= 0 && int(r) < len(a), "node handle %d out of arena bounds [0,%d)", r, len(a))
	return a[r]
}

// push appends a node and returns its handle together with the grown arena.
func (a arena[T]) push(n node[T]) (arena[T], ref) {
	a = append(a, n)
	return a, lastRef(len(a))
}

// lastRef is the handle of the last node in an arena of the given length.
func lastRef(length int) ref {
	assertThat(length > 0 && int64(length) <= math.MaxInt32, "arena of %d nodes exceeds node handle range", length)
	return ref(length - 1)
}

// inner creates a node for two children which already live in the arena.
// The node's value is merge(right, left), preserving right-then-left order.
func (a arena[T]) inner(l, r ref, merge func(T, T) T) (arena[T], ref) {
	value := merge(a.at(r).value, a.at(l).value)
	return a.push(node[T]{value: value, left: l, right: r})
}

// mid splits the index range [tl,tr] the way every operation of the tree does.
func mid(tl, tr int) int {
	return (tl + tr) / 2
}
