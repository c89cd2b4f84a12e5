package term

import (
	"github.com/halvorsen-lang/dparse/forest"
	"github.com/halvorsen-lang/dparse/term/hashset"
)

// Empty constructs the term recognizing no strings at all — the
// empty language over A. Its own derivative is itself, by identity
// (spec §4.1): there is nothing further to learn by consuming a
// terminal from a language with no strings in it.
func Empty[T comparable, A any]() *Node[T, A] {
	n := &Node[T, A]{
		empty:     true,
		nullable:  false,
		parseNull: hashset.New[A](),
	}
	n.ref = &ref{
		id:         idAlloc.Next().Uint64(),
		label:      forest.LabelEmptySet,
		childrenFn: noChildren,
	}
	n.deriveFn = func(T) (*Node[T, A], error) { return n, nil }
	return n
}

// Epsilon constructs the term recognizing only the empty string,
// producing every value in seeds when the empty string is parsed.
// Its derivative by any terminal is Empty: consuming a terminal from
// a language containing only ε always fails.
func Epsilon[T comparable, A any](seeds ...A) *Node[T, A] {
	n := &Node[T, A]{
		empty:     false,
		nullable:  true,
		parseNull: hashset.Of(seeds...),
	}
	n.ref = &ref{
		id:         idAlloc.Next().Uint64(),
		label:      forest.LabelEmptyString,
		childrenFn: noChildren,
	}
	n.deriveFn = func(T) (*Node[T, A], error) { return Empty[T, A](), nil }
	return n
}

// Terminal constructs the term recognizing exactly the single
// terminal t. Its value type is T itself: parsing it successfully
// returns the terminal that was matched.
func Terminal[T comparable](t T) *Node[T, T] {
	n := &Node[T, T]{
		empty:     false,
		nullable:  false,
		parseNull: hashset.New[T](),
	}
	n.ref = &ref{
		id:         idAlloc.Next().Uint64(),
		label:      forest.LabelTerminalParser,
		childrenFn: noChildren,
	}
	n.deriveFn = func(next T) (*Node[T, T], error) {
		if next == t {
			return Epsilon[T, T](t), nil
		}
		return Empty[T, T](), nil
	}
	return n
}

func noChildren() []*ref { return nil }
