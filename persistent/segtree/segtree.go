package segtree

/*
Remarks:
--------

- Index ranges are inclusive: [tl,tr] is the range a node covers, [l,r] the part of
  a query falling into it.

- Functions which create nodes receive the arena and return the grown arena. The tree
  stores it back only after an operation is complete, so a failing call never leaves
  half-built versions behind.

- A new version of a tree always is reflected by a new entry in tree.versions.

*/

import (
	"github.com/versioned/fp/maybe"
)

// Latest selects the most recent version of a tree, wherever a version number is expected.
const Latest = -1

// Tree is a persistent segment tree over elements of type T.
//
// Every call to Update creates a new version; versions are numbered 0, 1, 2, …
// in order of creation, version 0 being the tree as constructed. All versions
// remain queryable for the lifetime of the tree.
//
// A Tree must not be updated concurrently. See Snapshot for concurrent reading.
type Tree[T any] struct {
	props[T]
	merge    func(T, T) T
	elements []T      // current (latest) leaf values
	nodes    arena[T] // every node ever created
	versions []ref    // root of each version, append-only
}

// New constructs a tree over a copy of elements, combining values with merge.
// This is version 0 of the tree.
//
// merge should be associative. It is called as merge(right, left), with right being
// the value of the higher index range. Use it like this:
//
//     tree, err := segtree.New([]string{"a", "b", "c"}, func(r, l string) string {
//         return l + r
//     })
//     s, _ := tree.Query(0, 2)   // "abc"
//
// New fails with ErrInvalidConfig if merge is nil, and with ErrEmptyInput if
// elements is empty.
func New[T any](elements []T, merge func(T, T) T, opts ...Option[T]) (*Tree[T], error) {
	if merge == nil {
		return nil, errorf(ErrInvalidConfig, "merge operation is required")
	}
	if len(elements) == 0 {
		return nil, errorf(ErrEmptyInput, "cannot build tree from empty slice")
	}
	tree := &Tree[T]{merge: merge}
	for _, option := range opts {
		tree.props = option(tree.props)
	}
	n := len(elements)
	tree.elements = make([]T, n)
	copy(tree.elements, elements)
	tree.nodes = make(arena[T], 0, arenaSize(n, tree.updates))
	tree.versions = make([]ref, 0, tree.updates+1)
	var root ref
	tree.nodes, root = tree.build(tree.nodes, 0, n-1)
	tree.versions = append(tree.versions, root)
	tracer().Debugf("build: %d elements, %d nodes, root = %s", n, len(tree.nodes), tree.nodes.at(root))
	return tree, nil
}

func (t *Tree[T]) build(a arena[T], tl, tr int) (arena[T], ref) {
	if tl == tr {
		return a.push(leaf(t.elements[tl]))
	}
	tm := mid(tl, tr)
	a, l := t.build(a, tl, tm)
	a, r := t.build(a, tm+1, tr)
	return a.inner(l, r, t.merge)
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements of the tree. It is the same for all versions.
func (t *Tree[T]) Len() int {
	return len(t.elements)
}

// Versions returns the number of versions of the tree, i.e. 1 + the number of updates.
func (t *Tree[T]) Versions() int {
	return len(t.versions)
}

// LatestVersion returns the number of the most recent version.
func (t *Tree[T]) LatestVersion() int {
	return len(t.versions) - 1
}

// NodeCount returns the number of nodes held for all versions together.
func (t *Tree[T]) NodeCount() int {
	return len(t.nodes)
}

// Elements returns a copy of the element values of the latest version.
func (t *Tree[T]) Elements() []T {
	e := make([]T, len(t.elements))
	copy(e, t.elements)
	return e
}

// Update sets the element at position pos to value, creating a new version of the
// tree. All previous versions remain unchanged.
//
// If pos is not in [0, Len()), Update returns an error wrapping ErrOutOfRange and
// the tree is not modified; in particular, no version is created.
func (t *Tree[T]) Update(pos int, value T) error {
	if pos < 0 || pos >= len(t.elements) {
		return errorf(ErrOutOfRange, "update position %d not in [0,%d)", pos, len(t.elements))
	}
	nodes, root := t.update(t.nodes, t.versions[len(t.versions)-1], 0, len(t.elements)-1, pos, value)
	t.nodes = nodes
	t.versions = append(t.versions, root)
	t.elements[pos] = value
	tracer().Debugf("update: version %d sets [%d] = %v, root = %s", len(t.versions)-1, pos, value,
		t.nodes.at(root))
	return nil
}

// update copies the path from node v down to the leaf at pos. The child not
// containing pos is linked into the copy as-is.
func (t *Tree[T]) update(a arena[T], v ref, tl, tr, pos int, value T) (arena[T], ref) {
	if tl == tr {
		return a.push(leaf(value))
	}
	cur := a.at(v)
	assertThat(!cur.isLeaf(), "inconsistency: node for range [%d,%d] is a leaf", tl, tr)
	tm := mid(tl, tr)
	if pos <= tm {
		a, l := t.update(a, cur.left, tl, tm, pos, value)
		return a.inner(l, cur.right, t.merge)
	}
	a, r := t.update(a, cur.right, tm+1, tr, pos, value)
	return a.inner(cur.left, r, t.merge)
}

// Query merges the elements in the index range [x,y] of the latest version.
// See QueryVersion.
func (t *Tree[T]) Query(x, y int) (T, error) {
	return t.QueryVersion(x, y, Latest)
}

// QueryVersion merges the elements in the index range [x,y] (both inclusive)
// as they were in a given version. If x > y, the bounds are swapped.
// version may be Latest.
//
// An error wrapping ErrOutOfRange is returned if x or y is not in [0, Len()), or
// if the version does not exist.
func (t *Tree[T]) QueryVersion(x, y, version int) (T, error) {
	s, err := t.snapshot(version)
	if err != nil {
		var none T
		return none, err
	}
	return s.Query(x, y)
}

// At returns the element at position pos in a given version.
func (t *Tree[T]) At(pos, version int) (T, error) {
	return t.QueryVersion(pos, pos, version)
}

// Lookup is like QueryVersion, but returns Nothing instead of an error if the
// bounds or the version are out of range.
// Misses are expected results here and are not traced.
func (t *Tree[T]) Lookup(x, y, version int) maybe.Maybe[T] {
	if !t.covers(x, y, version) {
		return maybe.Nothing[T]()
	}
	value, err := t.QueryVersion(x, y, version)
	return maybe.Try(value, err)
}

// covers checks bounds and version the way QueryVersion does, without creating errors.
func (t *Tree[T]) covers(x, y, version int) bool {
	if x > y {
		x, y = y, x
	}
	return x >= 0 && y < len(t.elements) && version >= Latest && version < len(t.versions)
}

// Snapshot returns a read-only view of a version of the tree. version may be Latest.
//
// Snapshots are immutable. They stay valid and unchanged when the tree is updated
// later on, and they may be used by multiple goroutines concurrently, even while the
// tree is being updated. Creating the snapshot, however, has to be serialized with
// calls to Update.
func (t *Tree[T]) Snapshot(version int) (Snapshot[T], error) {
	s, err := t.snapshot(version)
	if err == nil {
		tracer().Debugf("snapshot of version %d, %d nodes visible", s.version, len(s.nodes))
	}
	return s, err
}

func (t *Tree[T]) snapshot(version int) (Snapshot[T], error) {
	if version < Latest || version >= len(t.versions) {
		return Snapshot[T]{}, errorf(ErrOutOfRange, "version %d not in [0,%d)", version, len(t.versions))
	}
	if version == Latest {
		version = len(t.versions) - 1
	}
	return Snapshot[T]{
		nodes:        t.nodes[:len(t.nodes):len(t.nodes)],
		root:         t.versions[version],
		version:      version,
		n:            len(t.elements),
		merge:        t.merge,
		defaultValue: t.defaultValue,
	}, nil
}

// Dump returns a printable rendering of a version of the tree, one line per node,
// showing the index range covered and the node's value.
func (t *Tree[T]) Dump(version int) (string, error) {
	s, err := t.snapshot(version)
	if err != nil {
		return "", err
	}
	return s.Dump(), nil
}
