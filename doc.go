/*
Package treemap provides an ordered map: an associative container with
unique, totally-ordered keys and logarithmic lookup, insertion and
removal, iterable in ascending key order in both directions.

# Ordered maps

Go's built-in map type is unordered, and ranging over it visits keys in
deliberately random order. Systems that build indices, ordered caches or
symbol tables need the other thing: a mapping that hands back its entries
sorted by key, that can answer "what is the next key after this one?",
and that stays cheap while being mutated. That is the classic sorted
tree map, and this package is an in-process rendition of it.

The backing structure is a height-balanced binary search tree, found in
package treemap/avl. Every mutating operation keeps the height
difference of sibling subtrees at most 1, which bounds the cost of all
single-key operations:

	Operation     |  treemap.Map    |  built-in map
	--------------+-----------------+--------------
	Lookup        |   O(log n)      |   O(1)
	Insert        |   O(log n)      |   O(1)
	Delete        |   O(log n)      |   O(1)
	Ordered walk  |   O(n)          |   not available

Key ordering is an injected predicate implementing a strict weak
ordering; two keys are equivalent iff neither orders before the other.
Use New for keys with Go's standard ordering, NewFunc for everything
else.

Iterators come in a mutable and a read-only flavor and stay valid across
mutations of other keys: erasing an entry invalidates exactly the
iterators parked on that entry, nothing else.

A Map is not safe for concurrent mutation. Confine it to one goroutine
or synchronize around it; the package performs no internal locking.

_________________________________________________________________________

# BSD 3-Clause License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the LICENSE file for details.
*/
package treemap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'treemap'
func tracer() tracing.Trace {
	return tracing.Select("treemap")
}

// MapError is an error type for the treemap module.
type MapError string

func (e MapError) Error() string {
	return string(e)
}

// ErrKeyNotFound is flagged by the bounds-checked accessors whenever a
// key is not present in the map.
const ErrKeyNotFound = MapError("key not found in map")

// ErrInvalidIterator is flagged for any iterator operation on a
// past-the-end, unbound or foreign position: dereferencing or advancing
// past the end, retreating from the first entry, or erasing a position
// that does not belong to the map.
const ErrInvalidIterator = MapError("invalid iterator position")
