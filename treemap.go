package treemap

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"iter"

	"github.com/npillmayer/treemap/avl"
)

// Pair is one key/value entry of a Map, as handed out by iterators and
// ordered walks.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Map is an ordered map from keys K to values V with unique keys.
//
// A map created by New or NewFunc is empty and ready to use. The zero
// value of Map is not usable, as it carries no ordering predicate.
//
// Methods never mutate the map when they fail: lookups and validity
// checks happen before any structural change.
type Map[K, V any] struct {
	tree *avl.Tree[K, V]
}

// New creates an empty map ordered by Go's standard ordering of K.
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return NewFunc[K, V](func(a, b K) bool { return a < b })
}

// NewFunc creates an empty map ordered by less, which must implement a
// strict weak ordering over K. Two keys are treated as equivalent iff
// neither orders before the other.
func NewFunc[K, V any](less func(K, K) bool) *Map[K, V] {
	tree, err := avl.New[K, V](less)
	assert(err == nil, "treemap requires an ordering predicate")
	return &Map[K, V]{tree: tree}
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.tree.IsEmpty()
}

// At returns the value stored for key. It fails with ErrKeyNotFound if
// no equivalent key is present.
func (m *Map[K, V]) At(key K) (V, error) {
	node := m.tree.Search(key)
	if node == nil {
		var none V
		return none, ErrKeyNotFound
	}
	return node.Value(), nil
}

// SetAt overwrites the value stored for an existing key. It fails with
// ErrKeyNotFound if no equivalent key is present; SetAt never creates
// an entry (use Insert or Ref for that).
func (m *Map[K, V]) SetAt(key K, value V) error {
	node := m.tree.Search(key)
	if node == nil {
		return ErrKeyNotFound
	}
	node.SetValue(value)
	return nil
}

// Ref returns the address of the value stored for key, inserting a zero
// value first if the key is absent. The address stays valid until that
// key is erased from the map, surviving mutations of other keys.
func (m *Map[K, V]) Ref(key K) *V {
	if node := m.tree.Search(key); node != nil {
		return node.ValueRef()
	}
	var zero V
	node, added := m.tree.Insert(key, zero)
	assert(added, "getsert of an absent key must insert")
	tracer().Debugf("treemap: created default entry for key %v", key)
	return node.ValueRef()
}

// Insert adds a key/value entry. When an equivalent key is already
// present the map is left unchanged and Insert reports false; the
// returned iterator denotes the entry holding the key either way.
func (m *Map[K, V]) Insert(key K, value V) (Iterator[K, V], bool) {
	node, added := m.tree.Insert(key, value)
	return Iterator[K, V]{position[K, V]{cur: node, owner: m}}, added
}

// Erase removes the entry at pos. It fails with ErrInvalidIterator if
// pos is unbound, past-the-end, or belongs to another map. Afterwards
// pos and any other iterator parked on the same entry are invalid;
// every other iterator keeps denoting the entry it did before.
func (m *Map[K, V]) Erase(pos Iterator[K, V]) error {
	if pos.owner != m || pos.cur == nil {
		return ErrInvalidIterator
	}
	if !m.tree.Erase(pos.cur) {
		return ErrInvalidIterator
	}
	return nil
}

// Delete removes the entry for key and reports whether an entry was
// removed.
func (m *Map[K, V]) Delete(key K) bool {
	node := m.tree.Search(key)
	if node == nil {
		return false
	}
	return m.tree.Erase(node)
}

// Count returns the number of entries with a key equivalent to key,
// which is 0 or 1, as the map does not allow duplicates.
func (m *Map[K, V]) Count(key K) int {
	if m.tree.Search(key) == nil {
		return 0
	}
	return 1
}

// Find returns an iterator denoting the entry for key, or the
// past-the-end position if no equivalent key is present.
func (m *Map[K, V]) Find(key K) Iterator[K, V] {
	return Iterator[K, V]{position[K, V]{cur: m.tree.Search(key), owner: m}}
}

// Begin returns an iterator on the entry with the minimum key. For an
// empty map it equals End.
func (m *Map[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{position[K, V]{cur: m.tree.First(), owner: m}}
}

// End returns the past-the-end position.
func (m *Map[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{position[K, V]{owner: m}}
}

// CBegin is the read-only counterpart of Begin.
func (m *Map[K, V]) CBegin() ConstIterator[K, V] {
	return m.Begin().Const()
}

// CEnd is the read-only counterpart of End.
func (m *Map[K, V]) CEnd() ConstIterator[K, V] {
	return m.End().Const()
}

// Clear removes all entries, resetting the map to empty.
func (m *Map[K, V]) Clear() {
	m.tree.Clear()
}

// Clone returns a deep copy of the map. The copy shares no structure
// with the original; mutating one never disturbs the other.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{tree: m.tree.Clone()}
}

// Assign replaces the receiver's entries with a deep copy of other's,
// like copy assignment. Assigning a map to itself is a no-op.
func (m *Map[K, V]) Assign(other *Map[K, V]) {
	if m == other {
		tracer().Debugf("treemap: self-assignment is a no-op")
		return
	}
	m.tree = other.tree.Clone()
}

// All returns an in-order iterator over all entries, usable in a
// range-over-func loop.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for node := m.tree.First(); node != nil; node = node.Next() {
			if !yield(node.Key(), node.Value()) {
				return
			}
		}
	}
}

// Each visits all entries in ascending key order. Iteration stops at
// the first callback error and returns that error to the caller.
func (m *Map[K, V]) Each(f func(K, V) error) error {
	for node := m.tree.First(); node != nil; node = node.Next() {
		if err := f(node.Key(), node.Value()); err != nil {
			return err
		}
	}
	return nil
}

// Keys returns all keys in ascending order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.Len())
	for node := m.tree.First(); node != nil; node = node.Next() {
		keys = append(keys, node.Key())
	}
	return keys
}

// Values returns all values, ordered by their keys.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.Len())
	for node := m.tree.First(); node != nil; node = node.Next() {
		values = append(values, node.Value())
	}
	return values
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
