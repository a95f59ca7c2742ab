package avl

// Erase unlinks target from the tree and reports whether a node was
// removed. The descent is guided by target's key, termination by node
// identity, so a node that happens to hold an equivalent key but lives
// in another tree is never removed.
//
// A target with two children is replaced by splicing its in-order
// successor into its position. No payload is copied: every surviving
// node, the successor included, keeps denoting the same key/value it
// did before the call. Only the erased node itself becomes unusable.
func (t *Tree[K, V]) Erase(target *Node[K, V]) bool {
	if t == nil || t.root == nil || target == nil {
		return false
	}
	root, erased := t.erase(t.root, nil, target)
	t.root = root
	if t.root != nil {
		t.root.up = nil
	}
	if erased {
		t.n--
	}
	return erased
}

func (t *Tree[K, V]) erase(p, parent *Node[K, V], target *Node[K, V]) (*Node[K, V], bool) {
	if p == nil { // target is not in this tree
		return nil, false
	}
	var erased bool
	switch {
	case p == target:
		if p.left == nil || p.right == nil {
			// at most one child: splice it into p's slot
			child := p.left
			if child == nil {
				child = p.right
			}
			if child != nil {
				child.up = parent
			}
			p.left, p.right, p.up = nil, nil, nil
			return child, true
		}
		// two children: detach the in-order successor from the right
		// subtree and relink it into p's position
		var succ *Node[K, V]
		p.right, succ = t.detachMin(p.right, p)
		succ.left = p.left
		succ.right = p.right
		succ.reparent()
		p.left, p.right, p.up = nil, nil, nil
		p = succ
		erased = true
	case t.less(target.key, p.key):
		p.left, erased = t.erase(p.left, p, target)
	default:
		p.right, erased = t.erase(p.right, p, target)
	}
	res := t.rebalance(p)
	res.reparent()
	res.up = parent
	return res, erased
}

// detachMin unlinks the leftmost node of the subtree rooted at p and
// returns the rebalanced remainder together with the detached node. The
// detached node keeps its key and value but is unhooked entirely.
func (t *Tree[K, V]) detachMin(p, parent *Node[K, V]) (root, min *Node[K, V]) {
	assert(p != nil, "detachMin called with empty subtree")
	if p.left == nil {
		rest := p.right
		if rest != nil {
			rest.up = parent
		}
		p.right, p.up = nil, nil
		return rest, p
	}
	p.left, min = t.detachMin(p.left, p)
	res := t.rebalance(p)
	res.reparent()
	res.up = parent
	return res, min
}
