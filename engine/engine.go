/*
Package engine drives style passes over a styled tree.

Overview

An Engine ties the pieces of the style system together: a styled tree, a
stylesheet registry and a property registry. One call to Pass re-styles
every node currently marked as changed, property by property, and
reports whether any applied value actually changed. The host runs passes
until a pass reports no change (other systems observing applied values
may mark further nodes changed in between); the fixed-point loop itself
belongs to the host, not to the engine.

Nodes are processed sequentially per property. Virtual nodes are only
resolved for properties flagged as inheritable across virtual nodes.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package engine

import (
	"github.com/npillmayer/ess/style"
	"github.com/npillmayer/ess/style/cascade"
	"github.com/npillmayer/ess/style/cssom"
	"github.com/npillmayer/ess/styledtree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ess.engine'.
func tracer() tracing.Trace {
	return tracing.Select("ess.engine")
}

// ApplyFunc is called by the engine for every freshly resolved value,
// before the value is recorded on the node. Hosts hook their concrete
// visual attributes in here.
type ApplyFunc func(node *styledtree.StyNode, property string, v style.Value)

// Engine re-styles changed nodes of a styled tree.
type Engine struct {
	tree  *styledtree.Tree
	reg   *cssom.Registry
	props *style.Properties
	apply ApplyFunc
}

// New creates an engine for a styled tree. apply may be nil if the host
// only reads applied values off the nodes.
func New(t *styledtree.Tree, reg *cssom.Registry, props *style.Properties, apply ApplyFunc) *Engine {
	return &Engine{tree: t, reg: reg, props: props, apply: apply}
}

// Registry returns the engine's stylesheet registry.
func (e *Engine) Registry() *cssom.Registry {
	return e.reg
}

// InvalidateAll marks every node of the tree for re-styling. Call it
// after activating, removing or reloading stylesheets.
func (e *Engine) InvalidateAll() {
	e.tree.MarkAllChanged()
}

// Pass resolves every known property on every changed node and records
// fresh values. It returns true if at least one applied value changed,
// i.e. another pass may be needed to reach a fixed point. Changed marks
// are cleared afterwards, so a pass with no intervening mutations is a
// no-op.
func (e *Engine) Pass() bool {
	nodes := e.tree.ChangedNodes()
	if len(nodes) == 0 {
		return false
	}
	tracer().Debugf("style pass over %d changed node(s)", len(nodes))
	dirty := false
	for _, name := range e.props.Names() {
		spec, _ := e.props.Spec(name)
		for _, sn := range nodes {
			if sn.IsVirtual() && !spec.AffectsVirtual {
				continue
			}
			out := cascade.Resolve(sn, name, e.reg)
			if v, ok := out.Value(); ok {
				if e.apply != nil {
					e.apply(sn, name, v)
				}
				sn.SetApplied(name, v)
				dirty = true
			}
		}
	}
	for _, sn := range nodes {
		sn.ClearChanged()
	}
	return dirty
}
