package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"sync"
)

// ErrInvalidNodeRef is thrown if a node reference does not denote a live
// node of the tree.
var ErrInvalidNodeRef = errors.New("node reference is invalid")

/*
We manage trees of mutable nodes. Nodes live in an arena owned by the tree
and are addressed by integer references. Parent links are therefore always
safe index lookups: a retired node's reference is detectable as stale
instead of dangling.

Each node carries a payload of type parameter T, plus a 'changed' mark
which clients use to flag nodes whose styling inputs have been touched
since the last styling pass.
*/

// NodeRef is an arena reference to a node of a Tree. The zero tree has no
// nodes; NullNode is the reference to "no node".
type NodeRef int32

// NullNode denotes the absence of a node, e.g. the parent of a root.
const NullNode NodeRef = -1

// Tree is an arena of nodes. The zero value is an empty tree, ready to use.
//
// All operations on a tree are concurrency-safe.
type Tree[T any] struct {
	mu    sync.RWMutex
	nodes []slot[T]
	free  []NodeRef
}

type slot[T any] struct {
	parent   NodeRef
	children []NodeRef
	payload  T
	inuse    bool
	changed  bool
}

// New creates an empty tree.
func New[T any]() *Tree[T] {
	return &Tree[T]{}
}

// AddNode allocates a node with a given payload and links it to a parent.
// Pass NullNode as parent to create a root-level node.
func (t *Tree[T]) AddNode(payload T, parent NodeRef) NodeRef {
	t.mu.Lock()
	defer t.mu.Unlock()
	var ref NodeRef
	if n := len(t.free); n > 0 {
		ref = t.free[n-1]
		t.free = t.free[:n-1]
		t.nodes[ref] = slot[T]{}
	} else {
		t.nodes = append(t.nodes, slot[T]{})
		ref = NodeRef(len(t.nodes) - 1)
	}
	t.nodes[ref].payload = payload
	t.nodes[ref].parent = parent
	t.nodes[ref].inuse = true
	if parent != NullNode && t.valid(parent) {
		t.nodes[parent].children = append(t.nodes[parent].children, ref)
	}
	return ref
}

// Retire removes a node and its complete subtree from the tree. Their
// references become invalid. Retiring an invalid reference is a no-op.
func (t *Tree[T]) Retire(ref NodeRef) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.valid(ref) {
		return
	}
	if p := t.nodes[ref].parent; p != NullNode && t.valid(p) {
		ch := t.nodes[p].children
		for i, c := range ch {
			if c == ref {
				t.nodes[p].children = append(ch[:i], ch[i+1:]...)
				break
			}
		}
	}
	t.retireSubtree(ref)
}

func (t *Tree[T]) retireSubtree(ref NodeRef) {
	for _, ch := range t.nodes[ref].children {
		t.retireSubtree(ch)
	}
	var zero T
	t.nodes[ref].payload = zero
	t.nodes[ref].children = nil
	t.nodes[ref].parent = NullNode
	t.nodes[ref].inuse = false
	t.nodes[ref].changed = false
	t.free = append(t.free, ref)
}

// Parent returns the parent reference of a node, or NullNode for roots and
// invalid references.
func (t *Tree[T]) Parent(ref NodeRef) NodeRef {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if !t.valid(ref) {
		return NullNode
	}
	return t.nodes[ref].parent
}

// Children returns the child references of a node, in insertion order.
func (t *Tree[T]) Children(ref NodeRef) []NodeRef {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if !t.valid(ref) {
		return nil
	}
	children := make([]NodeRef, len(t.nodes[ref].children))
	copy(children, t.nodes[ref].children)
	return children
}

// Payload returns the payload of a node. The second return value is false
// for invalid references.
func (t *Tree[T]) Payload(ref NodeRef) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if !t.valid(ref) {
		var zero T
		return zero, false
	}
	return t.nodes[ref].payload, true
}

// IsValid checks if a reference denotes a live node of this tree.
func (t *Tree[T]) IsValid(ref NodeRef) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.valid(ref)
}

func (t *Tree[T]) valid(ref NodeRef) bool {
	return ref >= 0 && int(ref) < len(t.nodes) && t.nodes[ref].inuse
}

// NodeCount returns the number of live nodes.
func (t *Tree[T]) NodeCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.nodes) - len(t.free)
}

// --- Changed marks ---------------------------------------------------------

// MarkChanged flags a node as changed since the last styling pass. If
// subtree is set, all descendants are flagged, too (mutations which are
// visible through ancestor chains invalidate whole subtrees).
func (t *Tree[T]) MarkChanged(ref NodeRef, subtree bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.valid(ref) {
		return
	}
	t.mark(ref, subtree)
}

func (t *Tree[T]) mark(ref NodeRef, subtree bool) {
	t.nodes[ref].changed = true
	if subtree {
		for _, ch := range t.nodes[ref].children {
			t.mark(ch, true)
		}
	}
}

// MarkAllChanged flags every live node as changed. Clients call this when
// the set of active stylesheets changes.
func (t *Tree[T]) MarkAllChanged() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.nodes {
		if t.nodes[i].inuse {
			t.nodes[i].changed = true
		}
	}
}

// ClearChanged removes the changed mark from a node.
func (t *Tree[T]) ClearChanged(ref NodeRef) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.valid(ref) {
		t.nodes[ref].changed = false
	}
}

// IsChanged checks the changed mark of a node.
func (t *Tree[T]) IsChanged(ref NodeRef) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.valid(ref) && t.nodes[ref].changed
}

// ChangedNodes returns the references of all nodes currently marked as
// changed, in arena order.
func (t *Tree[T]) ChangedNodes() []NodeRef {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var refs []NodeRef
	for i := range t.nodes {
		if t.nodes[i].inuse && t.nodes[i].changed {
			refs = append(refs, NodeRef(i))
		}
	}
	return refs
}

// --- Traversal -------------------------------------------------------------

// Ancestors returns the chain of references from a root down to and
// including ref. The chain is ordered root first.
func (t *Tree[T]) Ancestors(ref NodeRef) []NodeRef {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if !t.valid(ref) {
		return nil
	}
	var chain []NodeRef
	for r := ref; r != NullNode && t.valid(r); r = t.nodes[r].parent {
		chain = append(chain, r)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// Walk visits ref and all its descendants in depth-first pre-order. The
// visitor may return false to prune the subtree below the visited node.
func (t *Tree[T]) Walk(ref NodeRef, visit func(NodeRef) bool) {
	if !t.IsValid(ref) {
		return
	}
	if !visit(ref) {
		return
	}
	for _, ch := range t.Children(ref) {
		t.Walk(ch, visit)
	}
}

func (t *Tree[T]) String() string {
	return fmt.Sprintf("(Tree #nodes=%d)", t.NodeCount())
}
