package styledtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/ess/style"
	"github.com/npillmayer/ess/tree"
)

// Tree is a styled scene graph: an arena of styled nodes. Use AddElement
// and AddVirtual to grow it.
type Tree struct {
	arena *tree.Tree[*StyNode]
	root  tree.NodeRef
}

// NewTree creates an empty styled tree.
func NewTree() *Tree {
	return &Tree{arena: tree.New[*StyNode](), root: tree.NullNode}
}

// StyNode is a styled node, the building block of the styled tree. It is
// created and destroyed by the tree it belongs to; user code mutates its
// classes, state flags, attributes and direct overrides; the style engine
// only ever writes applied values.
//
// StyNode implements style.StyledNode.
type StyNode struct {
	tree      *Tree
	ref       tree.NodeRef
	tag       string // "" ⇒ virtual node
	id        string
	classes   *hashset.Set
	states    *hashset.Set
	attrs     *hashset.Set
	overrides map[string]style.Override
	applied   map[string]style.Value
}

func (t *Tree) newNode(tag string, parent *StyNode) *StyNode {
	sn := &StyNode{
		tree:    t,
		tag:     tag,
		classes: hashset.New(),
		states:  hashset.New(),
		attrs:   hashset.New(),
	}
	pref := tree.NullNode
	if parent != nil {
		pref = parent.ref
	}
	sn.ref = t.arena.AddNode(sn, pref)
	if parent == nil && t.root == tree.NullNode {
		t.root = sn.ref
	}
	t.arena.MarkChanged(sn.ref, false) // fresh nodes need an initial styling pass
	return sn
}

// AddElement creates a tagged node as a child of parent. A nil parent
// creates the root.
func (t *Tree) AddElement(parent *StyNode, tag string) *StyNode {
	return t.newNode(tag, parent)
}

// AddVirtual creates a virtual (untagged) node as a child of parent.
// Virtual nodes exist only to host children: they never satisfy a
// selector matcher, but may still carry direct overrides for inheritance.
func (t *Tree) AddVirtual(parent *StyNode) *StyNode {
	return t.newNode("", parent)
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree) Root() *StyNode {
	sn, ok := t.arena.Payload(t.root)
	if !ok {
		return nil
	}
	return sn
}

// Remove retires a node and its complete subtree.
func (t *Tree) Remove(sn *StyNode) {
	if sn == nil {
		return
	}
	if sn.ref == t.root {
		t.root = tree.NullNode
	}
	tracer().Debugf("retiring styled node %v and its subtree", sn)
	t.arena.Retire(sn.ref)
}

// ChangedNodes returns all nodes currently marked as changed, in arena
// order.
func (t *Tree) ChangedNodes() []*StyNode {
	refs := t.arena.ChangedNodes()
	nodes := make([]*StyNode, 0, len(refs))
	for _, ref := range refs {
		if sn, ok := t.arena.Payload(ref); ok {
			nodes = append(nodes, sn)
		}
	}
	return nodes
}

// MarkAllChanged flags every node for re-styling, e.g. after the set of
// active stylesheets changed.
func (t *Tree) MarkAllChanged() {
	t.arena.MarkAllChanged()
}

// --- Node: tree structure --------------------------------------------------

// Ref returns the arena reference of this node.
func (sn *StyNode) Ref() tree.NodeRef {
	return sn.ref
}

// Parent returns the parent node as a style.StyledNode, or nil for the
// root.
func (sn *StyNode) Parent() style.StyledNode {
	p := sn.ParentNode()
	if p == nil {
		return nil // explicit nil interface, callers compare against it
	}
	return p
}

// ParentNode returns the concrete parent node, or nil for the root.
func (sn *StyNode) ParentNode() *StyNode {
	pref := sn.tree.arena.Parent(sn.ref)
	p, ok := sn.tree.arena.Payload(pref)
	if !ok {
		return nil
	}
	return p
}

// Children returns the concrete children of this node.
func (sn *StyNode) Children() []*StyNode {
	refs := sn.tree.arena.Children(sn.ref)
	children := make([]*StyNode, 0, len(refs))
	for _, ref := range refs {
		if ch, ok := sn.tree.arena.Payload(ref); ok {
			children = append(children, ch)
		}
	}
	return children
}

// --- Node: matcher view ----------------------------------------------------

// Tag returns the element tag. ok is false for virtual nodes.
func (sn *StyNode) Tag() (string, bool) {
	return sn.tag, sn.tag != ""
}

// IsVirtual checks if this is a virtual (untagged) node.
func (sn *StyNode) IsVirtual() bool {
	return sn.tag == ""
}

// ID returns the element id, if set.
func (sn *StyNode) ID() (string, bool) {
	return sn.id, sn.id != ""
}

// HasClass checks class membership.
func (sn *StyNode) HasClass(class string) bool {
	return sn.classes.Contains(class)
}

// HasAttr checks attribute presence.
func (sn *StyNode) HasAttr(attr string) bool {
	return sn.attrs.Contains(attr)
}

// HasState checks a state flag, e.g. "hover".
func (sn *StyNode) HasState(state string) bool {
	return sn.states.Contains(state)
}

// --- Node: mutation --------------------------------------------------------

// Mutations of styling inputs mark the node and its whole subtree as
// changed: descendants see this node through their ancestor chains.

// SetID sets the element id.
func (sn *StyNode) SetID(id string) {
	if sn.id == id {
		return
	}
	sn.id = id
	sn.invalidate()
}

// AddClass adds a class name.
func (sn *StyNode) AddClass(class string) {
	if sn.classes.Contains(class) {
		return
	}
	sn.classes.Add(class)
	sn.invalidate()
}

// RemoveClass removes a class name.
func (sn *StyNode) RemoveClass(class string) {
	if !sn.classes.Contains(class) {
		return
	}
	sn.classes.Remove(class)
	sn.invalidate()
}

// SetAttr records the presence of an attribute.
func (sn *StyNode) SetAttr(attr string) {
	if sn.attrs.Contains(attr) {
		return
	}
	sn.attrs.Add(attr)
	sn.invalidate()
}

// ClearAttr removes an attribute.
func (sn *StyNode) ClearAttr(attr string) {
	if !sn.attrs.Contains(attr) {
		return
	}
	sn.attrs.Remove(attr)
	sn.invalidate()
}

// SetState sets a state flag, e.g. "hover" or "pressed".
func (sn *StyNode) SetState(state string) {
	if sn.states.Contains(state) {
		return
	}
	sn.states.Add(state)
	sn.invalidate()
}

// ClearState removes a state flag.
func (sn *StyNode) ClearState(state string) {
	if !sn.states.Contains(state) {
		return
	}
	sn.states.Remove(state)
	sn.invalidate()
}

func (sn *StyNode) invalidate() {
	sn.tree.arena.MarkChanged(sn.ref, true)
}

// --- Node: overrides and applied values ------------------------------------

// SetOverride declares a direct property value on the node. Direct
// declarations beat stylesheet rules, independent of specificity.
func (sn *StyNode) SetOverride(property string, v style.Value) {
	sn.setOverride(property, style.Override{Value: v})
}

// SetManaged marks a property as managed: owned by code outside the
// cascade. The resolver will leave it alone entirely. The value serves as
// an optional default for the host's property-application layer; pass the
// zero Value for none.
func (sn *StyNode) SetManaged(property string, deflt style.Value) {
	sn.setOverride(property, style.Override{Value: deflt, Managed: true})
}

func (sn *StyNode) setOverride(property string, ov style.Override) {
	if sn.overrides == nil {
		sn.overrides = make(map[string]style.Override)
	}
	sn.overrides[property] = ov
	sn.tree.arena.MarkChanged(sn.ref, true) // overrides inherit through virtual children
}

// ClearOverride removes a direct declaration (managed or not).
func (sn *StyNode) ClearOverride(property string) {
	if _, ok := sn.overrides[property]; !ok {
		return
	}
	delete(sn.overrides, property)
	sn.tree.arena.MarkChanged(sn.ref, true)
}

// Override returns the direct declaration for a property, if present.
func (sn *StyNode) Override(property string) (style.Override, bool) {
	ov, ok := sn.overrides[property]
	return ov, ok
}

// Applied returns the value currently applied to the node for a property.
func (sn *StyNode) Applied(property string) (style.Value, bool) {
	v, ok := sn.applied[property]
	return v, ok
}

// SetApplied records the applied value for a property. It is called by
// the host's property-application layer (via package engine), never by
// user code.
func (sn *StyNode) SetApplied(property string, v style.Value) {
	if sn.applied == nil {
		sn.applied = make(map[string]style.Value)
	}
	sn.applied[property] = v
}

// --- Node: changed mark ----------------------------------------------------

// MarkChanged flags the node for the next styling pass.
func (sn *StyNode) MarkChanged() {
	sn.tree.arena.MarkChanged(sn.ref, false)
}

// ClearChanged removes the changed mark, typically at the end of a pass.
func (sn *StyNode) ClearChanged() {
	sn.tree.arena.ClearChanged(sn.ref)
}

// IsChanged checks if the node is marked for re-styling.
func (sn *StyNode) IsChanged() bool {
	return sn.tree.arena.IsChanged(sn.ref)
}

func (sn *StyNode) String() string {
	var b strings.Builder
	if sn.IsVirtual() {
		b.WriteString("<virtual>")
	} else {
		b.WriteString(sn.tag)
	}
	if sn.id != "" {
		b.WriteString("#")
		b.WriteString(sn.id)
	}
	for _, c := range sn.classes.Values() {
		fmt.Fprintf(&b, ".%v", c)
	}
	for _, s := range sn.states.Values() {
		fmt.Fprintf(&b, ":%v", s)
	}
	return b.String()
}

var _ style.StyledNode = &StyNode{}
