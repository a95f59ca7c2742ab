package avl

// Clone returns a deep copy of the tree: fresh nodes, identical shape,
// same keys and values, same ordering predicate. The two trees share no
// structure afterwards.
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	if t == nil {
		return nil
	}
	c := &Tree[K, V]{less: t.less, n: t.n}
	c.root = cloneSubtree(t.root, nil)
	return c
}

func cloneSubtree[K, V any](p, parent *Node[K, V]) *Node[K, V] {
	if p == nil {
		return nil
	}
	q := &Node[K, V]{key: p.key, value: p.value, up: parent, height: p.height}
	q.left = cloneSubtree(p.left, q)
	q.right = cloneSubtree(p.right, q)
	return q
}

// Clear resets the tree to empty. Unhooking the root makes the whole
// node graph unreachable at once; no per-node walk is needed under a
// tracing garbage collector, parent back-references notwithstanding.
func (t *Tree[K, V]) Clear() {
	if t == nil {
		return
	}
	t.root = nil
	t.n = 0
}
