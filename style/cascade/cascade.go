/*
Package cascade resolves property values for styled nodes.

Overview

The resolver is the part of the style engine which answers the question:
"which value does property P have on node N, given all active
stylesheets and N's own declarations?" It is a pure function of its
inputs and is invoked by the host once per changed node and property.

Resolution follows the cascade: direct declarations on the node beat
stylesheet rules unconditionally; among matching rules, specificity
dominates, then stylesheet activation order; among rules of equal rank,
a rule matching closer to the node wins. Properties marked as managed on
a node are frozen: the resolver will not touch them, whatever the active
stylesheets say.

The resolver reports one of three outcomes: the property is unset (no
declaration applies), unchanged (the winning value is already applied,
or the property is managed), or a fresh value for the host to apply.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cascade

import (
	"github.com/npillmayer/ess/style"
	"github.com/npillmayer/ess/style/cssom"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ess.style'.
func tracer() tracing.Trace {
	return tracing.Select("ess.style")
}

// Outcome is the result of a resolver call.
type Outcome struct {
	kind  outcomeKind
	value style.Value
}

type outcomeKind int8

const (
	unset outcomeKind = iota
	unchanged
	changed
)

// Unset reports that no declaration applies to the node.
func Unset() Outcome {
	return Outcome{kind: unset}
}

// Unchanged reports that the applied value is already correct.
func Unchanged() Outcome {
	return Outcome{kind: unchanged}
}

// Changed wraps a fresh value for the host to apply.
func Changed(v style.Value) Outcome {
	return Outcome{kind: changed, value: v}
}

// IsUnset checks for the unset outcome.
func (o Outcome) IsUnset() bool {
	return o.kind == unset
}

// IsUnchanged checks for the unchanged outcome.
func (o Outcome) IsUnchanged() bool {
	return o.kind == unchanged
}

// Value returns the fresh value. ok is false unless the outcome is
// Changed.
func (o Outcome) Value() (style.Value, bool) {
	return o.value, o.kind == changed
}

func (o Outcome) String() string {
	switch o.kind {
	case unset:
		return "Unset"
	case unchanged:
		return "Unchanged"
	}
	return "Value(" + o.value.String() + ")"
}

// BuildChain collects the ancestor chain for a node: all non-virtual
// nodes from the root down to the node itself, in root-first order.
// Virtual nodes are skipped; for a virtual target node the chain ends at
// its nearest non-virtual ancestor. Chains are ephemeral and rebuilt per
// resolution call.
func BuildChain(node style.StyledNode) []style.Styler {
	var chain []style.Styler
	for n := node; n != nil; n = n.Parent() {
		if !n.IsVirtual() {
			chain = append(chain, n)
		}
	}
	// collected leaf-first, reverse to root-first
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// Resolve determines the value of a property on a node, consulting the
// node's direct declarations and the active stylesheets of reg.
//
// Direct declarations win over rules. A managed declaration freezes the
// property: the outcome is Unchanged, unconditionally. Virtual nodes
// without a declaration of their own inherit direct declarations from
// their ancestors, up to and including the nearest non-virtual one.
// Among matching rules the best order key wins (see cssom.RuleRef);
// rules of equal rank are broken by match depth, closer to the node
// first, and finally by declaration order, last one winning.
//
// Resolve never fails: every call yields Unset, Unchanged or a value.
func Resolve(node style.StyledNode, property string, reg *cssom.Registry) Outcome {
	if ov, ok := node.Override(property); ok {
		if ov.Managed {
			return Unchanged()
		}
		return diff(node, property, ov.Value)
	}
	if node.IsVirtual() {
		if out, done := inheritOverride(node, property); done {
			return out
		}
	}
	chain := BuildChain(node)
	if len(chain) == 0 {
		return Unset()
	}
	winner, found := selectRule(reg.RulesFor(property), chain)
	if !found {
		return Unset()
	}
	return diff(node, property, winner.Rule.Declarations[property])
}

// inheritOverride walks the parent links of a virtual node, looking for
// a direct declaration of the property. The walk stops at the first
// non-virtual ancestor, which is still inspected.
func inheritOverride(node style.StyledNode, property string) (Outcome, bool) {
	for n := node.Parent(); n != nil; n = n.Parent() {
		if ov, ok := n.Override(property); ok {
			if ov.Managed {
				return Unchanged(), true
			}
			return diff(node, property, ov.Value), true
		}
		if !n.IsVirtual() {
			break
		}
	}
	return Outcome{}, false
}

// selectRule matches every candidate rule against the chain and picks
// the winner.
func selectRule(candidates []cssom.RuleRef, chain []style.Styler) (cssom.RuleRef, bool) {
	var winner cssom.RuleRef
	winnerDepth, found := 0, false
	for _, cand := range candidates {
		depth, ok := cand.Rule.Selector.Match(chain)
		if !ok {
			continue
		}
		tracer().Debugf("match: %v at depth %d, weight %d", cand.Rule.Selector, depth, cand.SheetWeight)
		switch {
		case !found:
		case cand.Outranks(winner):
		case winner.Outranks(cand):
			continue
		case depth > winnerDepth: // equal rank, farther from the node
			continue
		}
		// equal rank and depth falls through: last declaration wins
		winner, winnerDepth, found = cand, depth, true
	}
	return winner, found
}

// diff turns the winning value into the final outcome, comparing it
// against the value currently applied to the node.
func diff(node style.StyledNode, property string, v style.Value) Outcome {
	if applied, ok := node.Applied(property); ok && applied.Equals(v) {
		return Unchanged()
	}
	return Changed(v)
}
