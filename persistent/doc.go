/*
Package persistent is the home of persistent data structures: structures which keep
every earlier state of themselves when modified.

Immutable data structures in many cases offer benefits over mutable data structures in terms
of concurrent access and functional reasoning. *Persistent* data structures offer
structural sharing, which means that if two versions of a structure are mostly the same,
most of the memory they take up will be shared between them. This makes keeping old
versions around relatively cheap in terms of space- and time-complexity.

Sub-package segtree implements a persistent segment tree for range queries over
versioned arrays.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package persistent
