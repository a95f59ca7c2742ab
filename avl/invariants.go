package avl

import "fmt"

// Check validates the structural tree invariants: ordering of keys,
// balance, height caches, parent back-references and the node count.
//
// This checker is intentionally strict and meant to run in tests after
// every mutation step.
func (t *Tree[K, V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariant)
	}
	if t.less == nil {
		return fmt.Errorf("%w: no ordering predicate", ErrNoOrder)
	}
	count, _, err := t.checkNode(t.root, nil)
	if err != nil {
		return err
	}
	if count != t.n {
		return fmt.Errorf("%w: count mismatch (have %d, counted %d)", ErrInvariant, t.n, count)
	}
	if t.root != nil && t.root.up != nil {
		return fmt.Errorf("%w: root has a parent", ErrInvariant)
	}
	var prev *Node[K, V]
	for p := t.First(); p != nil; p = p.Next() {
		if prev != nil && !t.less(prev.key, p.key) {
			return fmt.Errorf("%w: keys out of order at %v", ErrInvariant, p.key)
		}
		prev = p
	}
	return nil
}

func (t *Tree[K, V]) checkNode(p, up *Node[K, V]) (count, height int, err error) {
	if p == nil {
		return 0, 0, nil
	}
	if p.up != up {
		return 0, 0, fmt.Errorf("%w: broken parent link at key %v", ErrInvariant, p.key)
	}
	lc, lh, err := t.checkNode(p.left, p)
	if err != nil {
		return 0, 0, err
	}
	rc, rh, err := t.checkNode(p.right, p)
	if err != nil {
		return 0, 0, err
	}
	if p.height != 1+max(lh, rh) {
		return 0, 0, fmt.Errorf("%w: stale height cache at key %v (have %d, want %d)",
			ErrInvariant, p.key, p.height, 1+max(lh, rh))
	}
	if lh-rh > 1 || rh-lh > 1 {
		return 0, 0, fmt.Errorf("%w: out of balance at key %v (left %d, right %d)",
			ErrInvariant, p.key, lh, rh)
	}
	return lc + rc + 1, p.height, nil
}
