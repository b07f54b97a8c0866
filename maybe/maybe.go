/*
Package maybe implements optional values.

A Maybe[T] either holds a value of type T (Just) or holds nothing (Nothing).
Results of lookups which may miss are handed out as Maybe values; clients
test with IsNothing or supply a fallback with WithDefault.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package maybe

import "fmt"

// Maybe is an optional value of type T.
type Maybe[T any] struct {
	value T
	just  bool
}

// Just wraps x.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, just: true}
}

// Nothing returns an empty Maybe. It is the same as the zero value.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Try converts the results of a fallible function into a Maybe: Just(x) for a nil
// error, Nothing otherwise. The error itself is dropped.
//
//     n, err := strconv.Atoi(s)
//     m := maybe.Try(n, err)
//
func Try[T any](x T, err error) Maybe[T] {
	if err != nil {
		return Nothing[T]()
	}
	return Just(x)
}

// IsNothing is true for an empty Maybe.
func (m Maybe[T]) IsNothing() bool {
	return !m.just
}

// WithDefault returns the value held by m, or def for Nothing.
func (m Maybe[T]) WithDefault(def T) T {
	if m.just {
		return m.value
	}
	return def
}

func (m Maybe[T]) String() string {
	if m.just {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return "Nothing"
}
