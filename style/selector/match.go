package selector

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/ess/style"
)

/*
Descendant matching with backtracking.

The chain is the root→leaf path of non-virtual nodes for a target node.
The last segment of a selector always describes the target itself, so it
is anchored at the leaf. The remaining segments are matched walking
leftwards through the selector and leafwards→rootwards through the chain.
Because 'descendant' is the only combinator, any number of intermediate
ancestors may be skipped, and a naive greedy walk is not enough: for
selector "a a b" against chain [a, a, b] there are two legitimate ways to
split the match, and the search must explore both "consume this level now"
and "skip this level, retry above" to find one that fully succeeds.
*/

// Match reports whether the selector matches a chain of nodes, ordered
// root first, with the match target as the last element. On success it
// returns the match depth: the number of ancestor hops between the leaf
// and the node that satisfied the first (leftmost) segment. A smaller
// depth denotes a tighter match.
//
// A failed match is a normal outcome, not an error.
func (sel *Selector) Match(chain []style.Styler) (depth int, ok bool) {
	if len(sel.segments) == 0 || len(chain) == 0 {
		return 0, false
	}
	leaf := len(chain) - 1
	last := len(sel.segments) - 1
	if !sel.segments[last].Match(chain[leaf]) {
		return 0, false
	}
	if last == 0 {
		return 0, true
	}
	at, ok := matchUp(sel.segments[:last], chain, leaf-1)
	if !ok {
		return 0, false
	}
	return leaf - at, true
}

// matchUp tries to satisfy the remaining segments against chain[0…pos],
// rightmost segment first. It returns the chain position which satisfied
// the leftmost segment. Trying to consume a level before skipping it
// keeps the reported depth minimal.
func matchUp(segments []Segment, chain []style.Styler, pos int) (int, bool) {
	seg := segments[len(segments)-1]
	for p := pos; p >= 0; p-- {
		if !seg.Match(chain[p]) {
			continue
		}
		if len(segments) == 1 {
			return p, true
		}
		if at, ok := matchUp(segments[:len(segments)-1], chain, p-1); ok {
			return at, true
		}
		// backtrack: skip this level, retry the same segment higher up
	}
	return 0, false
}
