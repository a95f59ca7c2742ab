package avl

// Insert adds a key/value binding. When the key is not yet present a
// fresh node is created and Insert reports true; otherwise the existing
// node is returned untouched and Insert reports false. Either way the
// returned node is the one holding the key.
func (t *Tree[K, V]) Insert(key K, value V) (*Node[K, V], bool) {
	root, where, added := t.insert(t.root, nil, key, value)
	t.root = root
	t.root.up = nil
	if added {
		t.n++
	}
	return where, added
}

// insert descends recursively to the key's slot and rebalances every
// node on the way back up. It returns the possibly rotated subtree root
// together with the node holding the key.
func (t *Tree[K, V]) insert(p, parent *Node[K, V], key K, value V) (root, where *Node[K, V], added bool) {
	if p == nil {
		n := &Node[K, V]{key: key, value: value, up: parent, height: 1}
		return n, n, true
	}
	switch {
	case t.less(key, p.key):
		p.left, where, added = t.insert(p.left, p, key, value)
	case t.less(p.key, key):
		p.right, where, added = t.insert(p.right, p, key, value)
	default:
		// equivalent key already present, leave the node untouched
		return p, p, false
	}
	res := t.rebalance(p)
	res.reparent()
	res.up = parent
	return res, where, added
}

// rotateRight pivots the edge between y and its left child and returns
// the new local subtree root. Both heights are recomputed; relinking the
// returned root into its former position is the caller's job.
func (t *Tree[K, V]) rotateRight(y *Node[K, V]) *Node[K, V] {
	x := y.left
	b := x.right
	x.right = y
	y.up = x
	y.left = b
	if b != nil {
		b.up = y
	}
	y.update()
	x.update()
	return x
}

// rotateLeft is the mirror image of rotateRight.
func (t *Tree[K, V]) rotateLeft(x *Node[K, V]) *Node[K, V] {
	y := x.right
	b := y.left
	y.left = x
	x.up = y
	x.right = b
	if b != nil {
		b.up = x
	}
	x.update()
	y.update()
	return y
}

// rebalance recomputes p's height cache and restores the balance
// invariant locally with at most one single or double rotation. Callers
// repair the returned root's parent link.
func (t *Tree[K, V]) rebalance(p *Node[K, V]) *Node[K, V] {
	p.update()
	switch b := p.bf(); {
	case b > 1: // left-heavy
		if p.left.bf() < 0 { // LR case
			p.left = t.rotateLeft(p.left)
			p.left.up = p
		}
		root := t.rotateRight(p)
		root.reparent()
		return root
	case b < -1: // right-heavy
		if p.right.bf() > 0 { // RL case
			p.right = t.rotateRight(p.right)
			p.right.up = p
		}
		root := t.rotateLeft(p)
		root.reparent()
		return root
	}
	return p
}
