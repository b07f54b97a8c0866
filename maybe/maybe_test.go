package maybe_test

import (
	"errors"
	"testing"

	"github.com/versioned/fp/maybe"
	"github.com/versioned/fp/persistent/segtree"
)

func TestMaybeFromTreeLookup(t *testing.T) {
	tree, err := segtree.NewSum([]int{4, 8, 15, 16, 23, 42})
	if err != nil {
		t.Fatal(err)
	}
	_ = tree.Update(0, 0)
	hit := tree.Lookup(0, 2, segtree.Latest)
	if hit.IsNothing() {
		t.Fatalf("expected lookup of [0,2] to hit, is %s", hit)
	}
	if v := hit.WithDefault(-1); v != 23 {
		t.Errorf("expected latest sum of [0,2] to be 23, is %d", v)
	}
	old := tree.Lookup(0, 2, 0)
	if v := old.WithDefault(-1); v != 27 {
		t.Errorf("expected sum of [0,2] in version 0 to be 27, is %d", v)
	}
	if s := old.String(); s != "Just(27)" {
		t.Errorf("expected Just(27), is %q", s)
	}
}

func TestMaybeMissesFromTreeLookup(t *testing.T) {
	tree, _ := segtree.NewSum([]int{4, 8, 15})
	for _, miss := range []maybe.Maybe[int]{
		tree.Lookup(0, 3, segtree.Latest),
		tree.Lookup(0, 1, 1),
	} {
		if !miss.IsNothing() {
			t.Errorf("expected miss to be Nothing, is %s", miss)
		}
		if v := miss.WithDefault(-1); v != -1 {
			t.Errorf("expected Nothing to fall back to -1, is %d", v)
		}
	}
}

func TestMaybeTry(t *testing.T) {
	tree, _ := segtree.New([]string{"ab", "c"}, func(r, l string) string { return l + r })
	s, err := tree.Query(0, 1)
	m := maybe.Try(s, err)
	if m.WithDefault("") != "abc" {
		t.Errorf("expected Try to keep \"abc\", is %s", m)
	}
	m = maybe.Try("abc", errors.New("rejected"))
	if !m.IsNothing() || m.String() != "Nothing" {
		t.Errorf("expected Try with error to be Nothing, is %s", m)
	}
	var zero maybe.Maybe[string]
	if !zero.IsNothing() {
		t.Error("expected zero Maybe to be Nothing")
	}
}
