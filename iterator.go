package treemap

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "github.com/npillmayer/treemap/avl"

// position is the (node reference, owning-map identity) state shared by
// both iterator flavors. A nil node denotes the past-the-end position;
// a nil owner marks an unbound iterator, which fails every operation.
type position[K, V any] struct {
	cur   *avl.Node[K, V]
	owner *Map[K, V]
}

func (pos position[K, V]) atEnd() bool {
	return pos.cur == nil
}

// next advances to the in-order successor. Advancing from the maximum
// entry lands on past-the-end; advancing from there is an error.
func (pos *position[K, V]) next() error {
	if pos.owner == nil || pos.cur == nil {
		return ErrInvalidIterator
	}
	pos.cur = pos.cur.Next()
	return nil
}

// prev retreats to the in-order predecessor. Retreating from
// past-the-end lands on the maximum entry of a non-empty map;
// retreating from the minimum entry is an error.
func (pos *position[K, V]) prev() error {
	if pos.owner == nil {
		return ErrInvalidIterator
	}
	if pos.cur == nil {
		last := pos.owner.tree.Last()
		if last == nil {
			return ErrInvalidIterator
		}
		pos.cur = last
		return nil
	}
	p := pos.cur.Prev()
	if p == nil {
		return ErrInvalidIterator
	}
	pos.cur = p
	return nil
}

func (pos position[K, V]) pair() (Pair[K, V], error) {
	if pos.owner == nil || pos.cur == nil {
		return Pair[K, V]{}, ErrInvalidIterator
	}
	return Pair[K, V]{Key: pos.cur.Key(), Value: pos.cur.Value()}, nil
}

func (pos position[K, V]) equal(other position[K, V]) bool {
	return pos.owner == other.owner && pos.cur == other.cur
}

// Iterator denotes a position in a Map: either one entry or the
// past-the-end position. The zero value is unbound and fails every
// operation with ErrInvalidIterator.
//
// An iterator stays valid until the entry it denotes is erased or its
// map is cleared or assigned over; mutations of other keys never
// disturb it.
type Iterator[K, V any] struct {
	position[K, V]
}

// ConstIterator is the read-only counterpart of Iterator: the same
// position semantics without SetValue. It is constructed from an
// Iterator via Const; there is no way back.
type ConstIterator[K, V any] struct {
	position[K, V]
}

// Const returns a read-only view of the iterator's position.
func (it Iterator[K, V]) Const() ConstIterator[K, V] {
	return ConstIterator[K, V]{it.position}
}

// AtEnd reports whether the iterator denotes the past-the-end position.
func (it Iterator[K, V]) AtEnd() bool { return it.atEnd() }

// Next advances the iterator to the next entry in key order.
func (it *Iterator[K, V]) Next() error { return it.next() }

// Prev retreats the iterator to the previous entry in key order.
func (it *Iterator[K, V]) Prev() error { return it.prev() }

// Pair dereferences the iterator. It fails with ErrInvalidIterator on a
// past-the-end or unbound position.
func (it Iterator[K, V]) Pair() (Pair[K, V], error) { return it.pair() }

// Key dereferences the iterator and returns the entry's key.
func (it Iterator[K, V]) Key() (K, error) {
	p, err := it.pair()
	return p.Key, err
}

// Value dereferences the iterator and returns the entry's value.
func (it Iterator[K, V]) Value() (V, error) {
	p, err := it.pair()
	return p.Value, err
}

// SetValue overwrites the value of the entry the iterator denotes.
func (it Iterator[K, V]) SetValue(v V) error {
	if it.owner == nil || it.cur == nil {
		return ErrInvalidIterator
	}
	it.cur.SetValue(v)
	return nil
}

// Equal reports whether two iterators denote the same position in the
// same map. All past-the-end positions of one map are equal.
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.equal(other.position)
}

// AtEnd reports whether the iterator denotes the past-the-end position.
func (it ConstIterator[K, V]) AtEnd() bool { return it.atEnd() }

// Next advances the iterator to the next entry in key order.
func (it *ConstIterator[K, V]) Next() error { return it.next() }

// Prev retreats the iterator to the previous entry in key order.
func (it *ConstIterator[K, V]) Prev() error { return it.prev() }

// Pair dereferences the iterator.
func (it ConstIterator[K, V]) Pair() (Pair[K, V], error) { return it.pair() }

// Key dereferences the iterator and returns the entry's key.
func (it ConstIterator[K, V]) Key() (K, error) {
	p, err := it.pair()
	return p.Key, err
}

// Value dereferences the iterator and returns the entry's value.
func (it ConstIterator[K, V]) Value() (V, error) {
	p, err := it.pair()
	return p.Value, err
}

// Equal reports whether two iterators denote the same position in the
// same map.
func (it ConstIterator[K, V]) Equal(other ConstIterator[K, V]) bool {
	return it.equal(other.position)
}
