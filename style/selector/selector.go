/*
Package selector implements the ESS selector data model, parser and
ancestor-chain matcher.

Overview

A selector is an ordered, non-empty sequence of segments, separated by
whitespace in the textual form. Whitespace denotes the descendant
relationship: the only combinator this engine supports. Each segment is a
conjunction of matchers for one node: a tag, an id, classes, attribute
presence, and state flags (pseudo-classes), e.g.

	panel .title:hover

Selectors are matched against ancestor chains: the root→leaf path of
non-virtual nodes above (and including) a target node. The last segment
must describe the leaf itself; remaining segments may be satisfied by any
ancestor, in order, with backtracking (see Selector.Match).

There is no support for the child ('>') or sibling ('~', '+')
combinators, attribute-value matching, or '!important'.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package selector

import (
	"strings"

	"github.com/npillmayer/ess/style"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ess.style'.
func tracer() tracing.Trace {
	return tracing.Select("ess.style")
}

// MatcherKind discriminates the matchers a segment may contain.
type MatcherKind uint8

// Matcher kinds, ordered by their specificity bucket: the id bucket
// dominates the class bucket, which dominates the tag bucket.
const (
	TagMatcher   MatcherKind = iota // plain identifier: matches the node's tag
	IDMatcher                       // #name
	ClassMatcher                    // .name
	AttrMatcher                     // [name], presence only
	StateMatcher                    // :name, a state flag / pseudo-class
)

func (k MatcherKind) String() string {
	switch k {
	case TagMatcher:
		return "tag"
	case IDMatcher:
		return "id"
	case ClassMatcher:
		return "class"
	case AttrMatcher:
		return "attr"
	case StateMatcher:
		return "state"
	}
	return "?"
}

// Matcher is a single test against one node.
type Matcher struct {
	Kind MatcherKind
	Name string
}

// Match checks the matcher against a node. Virtual nodes never satisfy
// any matcher.
func (m Matcher) Match(node style.Styler) bool {
	if node.IsVirtual() {
		return false
	}
	switch m.Kind {
	case TagMatcher:
		tag, ok := node.Tag()
		return ok && tag == m.Name
	case IDMatcher:
		id, ok := node.ID()
		return ok && id == m.Name
	case ClassMatcher:
		return node.HasClass(m.Name)
	case AttrMatcher:
		return node.HasAttr(m.Name)
	case StateMatcher:
		return node.HasState(m.Name)
	}
	return false
}

func (m Matcher) String() string {
	switch m.Kind {
	case IDMatcher:
		return "#" + m.Name
	case ClassMatcher:
		return "." + m.Name
	case AttrMatcher:
		return "[" + m.Name + "]"
	case StateMatcher:
		return ":" + m.Name
	}
	return m.Name
}

// Segment is a conjunction of matchers which one single node has to
// satisfy in full. A segment without matchers never matches anything.
type Segment struct {
	Matchers []Matcher
}

// Match checks all matchers of the segment against a node.
func (seg Segment) Match(node style.Styler) bool {
	if len(seg.Matchers) == 0 {
		return false
	}
	for _, m := range seg.Matchers {
		if !m.Match(node) {
			return false
		}
	}
	return true
}

// add appends a matcher to the segment. Tag and id matchers are unique
// per segment; a duplicate overwrites the previous one.
func (seg *Segment) add(m Matcher) {
	if m.Kind == TagMatcher || m.Kind == IDMatcher {
		for i, prev := range seg.Matchers {
			if prev.Kind == m.Kind {
				seg.Matchers[i] = m
				return
			}
		}
	}
	seg.Matchers = append(seg.Matchers, m)
}

func (seg Segment) String() string {
	var b strings.Builder
	for _, m := range seg.Matchers {
		b.WriteString(m.String())
	}
	return b.String()
}

// Specificity is the precedence weight of a selector, derived from its
// matcher kinds: (id count, class+state+attr count, tag count), compared
// lexicographically. An id-containing selector outranks any selector
// without one, regardless of class and tag counts.
type Specificity [3]int

// Less reports s < other, strictly.
func (s Specificity) Less(other Specificity) bool {
	for i := range s {
		if s[i] < other[i] {
			return true
		}
		if s[i] > other[i] {
			return false
		}
	}
	return false
}

func (s Specificity) add(other Specificity) Specificity {
	for i, sp := range other {
		s[i] += sp
	}
	return s
}

func (m Matcher) specificity() Specificity {
	switch m.Kind {
	case IDMatcher:
		return Specificity{1, 0, 0}
	case ClassMatcher, AttrMatcher, StateMatcher:
		return Specificity{0, 1, 0}
	case TagMatcher:
		return Specificity{0, 0, 1}
	}
	return Specificity{}
}

// Selector is a parsed selector: an ordered, non-empty sequence of
// segments plus the precomputed specificity. Selectors are created by
// Parse and immutable afterwards.
type Selector struct {
	segments []Segment
	spec     Specificity
	source   string
}

// Segments returns the segments of the selector, ordered like the textual
// form (the last segment describes the match target).
func (sel *Selector) Segments() []Segment {
	return sel.segments
}

// Specificity returns the selector's precomputed specificity.
func (sel *Selector) Specificity() Specificity {
	return sel.spec
}

// String reconstructs the canonical textual form of the selector.
func (sel *Selector) String() string {
	var b strings.Builder
	for i, seg := range sel.segments {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(seg.String())
	}
	return b.String()
}

func (sel *Selector) computeSpecificity() {
	var s Specificity
	for _, seg := range sel.segments {
		for _, m := range seg.Matchers {
			s = s.add(m.specificity())
		}
	}
	sel.spec = s
}
