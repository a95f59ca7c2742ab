/*
Package avl implements the height-balanced binary search tree backing
package treemap.

The tree keeps, per node, the two owning child links, a non-owning parent
back-reference used for traversal and rebalancing, and a cached subtree
height. Rebalancing is done with single and double rotations on the way
back up the insertion or deletion path, which keeps the height difference
of sibling subtrees at most 1.

Design points:
  - key ordering is an injected strict-weak-order predicate; two keys are
    equivalent iff neither orders before the other,
  - rotation primitives return the new local subtree root and leave the
    relinking into the parent to the caller,
  - deletion of a node with two children splices the in-order successor
    into the deleted node's position instead of copying its payload, so
    node memory hosts the same key for its whole lifetime,
  - successor/predecessor steps walk parent links by identity and never
    call the comparator,
  - the engine signals nothing: absent nodes and false flags are the only
    failure indications, error reporting is the caller's business.

The tree is not safe for concurrent mutation; clients synchronize access
or confine a tree to a single goroutine.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package avl

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
