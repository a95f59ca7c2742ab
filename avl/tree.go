package avl

// Tree is a height-balanced binary search tree over keys of type K with
// an associated value of type V per key. Keys are unique under the
// ordering predicate given to New.
//
// All balance-invariant maintenance lives in this type; clients hold
// *Node references handed out by Search/Insert/First/Last and step
// through the tree with Next/Prev.
type Tree[K, V any] struct {
	root *Node[K, V]
	n    int
	less func(K, K) bool
}

// Node is a vertex of the tree. The key is immutable for the node's
// lifetime; the value may be overwritten in place.
type Node[K, V any] struct {
	key    K
	value  V
	left   *Node[K, V] // owning child links
	right  *Node[K, V]
	up     *Node[K, V] // parent back-reference, non-owning
	height int         // cached subtree height, single node = 1
}

// New creates an empty tree ordered by less, which must implement a
// strict weak ordering over K.
func New[K, V any](less func(K, K) bool) (*Tree[K, V], error) {
	if less == nil {
		return nil, ErrNoOrder
	}
	return &Tree[K, V]{less: less}, nil
}

// Len returns the number of nodes in the tree.
func (t *Tree[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.n
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree[K, V]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree[K, V]) Root() *Node[K, V] {
	if t == nil {
		return nil
	}
	return t.root
}

// Search finds the node holding a key equivalent to key, or nil.
func (t *Tree[K, V]) Search(key K) *Node[K, V] {
	if t == nil {
		return nil
	}
	cur := t.root
	for cur != nil {
		switch {
		case t.less(key, cur.key):
			cur = cur.left
		case t.less(cur.key, key):
			cur = cur.right
		default:
			return cur
		}
	}
	return nil
}

// First returns the node with the minimum key, or nil for an empty tree.
func (t *Tree[K, V]) First() *Node[K, V] {
	if t == nil {
		return nil
	}
	return t.root.first()
}

// Last returns the node with the maximum key, or nil for an empty tree.
func (t *Tree[K, V]) Last() *Node[K, V] {
	if t == nil {
		return nil
	}
	return t.root.last()
}

// internal: lowest node in a subtree
func (p *Node[K, V]) first() *Node[K, V] {
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// internal: highest node in a subtree
func (p *Node[K, V]) last() *Node[K, V] {
	if p == nil {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}

// Next returns the node with the next higher key, or nil when p holds
// the maximum. The walk follows parent links by identity, so it works
// without touching the comparator.
func (p *Node[K, V]) Next() *Node[K, V] {
	if p == nil {
		return nil
	}
	if p.right != nil {
		return p.right.first()
	}
	up := p.up
	for up != nil && p == up.right {
		p, up = up, up.up
	}
	return up
}

// Prev returns the node with the next lower key, or nil when p holds
// the minimum.
func (p *Node[K, V]) Prev() *Node[K, V] {
	if p == nil {
		return nil
	}
	if p.left != nil {
		return p.left.last()
	}
	up := p.up
	for up != nil && p == up.left {
		p, up = up, up.up
	}
	return up
}

// Left returns the left child of a node, or nil.
func (p *Node[K, V]) Left() *Node[K, V] {
	return p.left
}

// Right returns the right child of a node, or nil.
func (p *Node[K, V]) Right() *Node[K, V] {
	return p.right
}

// Parent returns the parent of a node; nil for the root.
func (p *Node[K, V]) Parent() *Node[K, V] {
	return p.up
}

// Height returns the cached subtree height of a node; a single node has
// height 1.
func (p *Node[K, V]) Height() int {
	return p.h()
}

// Key reads the key of a node.
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value reads the value of a node.
func (p *Node[K, V]) Value() V {
	return p.value
}

// SetValue overwrites the value of a node in place.
func (p *Node[K, V]) SetValue(v V) {
	p.value = v
}

// ValueRef returns the address of the node's value slot. The address
// stays valid until the node's key is erased from its tree.
func (p *Node[K, V]) ValueRef() *V {
	return &p.value
}

// h is the cached subtree height; 0 for an absent subtree.
func (p *Node[K, V]) h() int {
	if p == nil {
		return 0
	}
	return p.height
}

// bf is the balance factor height(left) - height(right).
func (p *Node[K, V]) bf() int {
	if p == nil {
		return 0
	}
	return p.left.h() - p.right.h()
}

// update recomputes the cached height from the children's caches.
func (p *Node[K, V]) update() {
	p.height = 1 + max(p.left.h(), p.right.h())
}

// reparent repairs both children's back-references; rotations further
// down may have changed which node sits here.
func (p *Node[K, V]) reparent() {
	if p.left != nil {
		p.left.up = p
	}
	if p.right != nil {
		p.right.up = p
	}
}
