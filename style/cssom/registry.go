package cssom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sync"
)

// Registry owns the set of currently active stylesheets and their cascade
// ordering. It is an explicit context object: clients create one and pass
// it to the resolver; there is no ambient global sheet set.
//
// Order weights are assigned by activation order, starting at 1. The
// defaults sheet is pinned at weight 0, so it only ever loses against
// user sheets of equal specificity. Whenever the active set changes
// (activation, removal, hot reload), the full ordering is reassigned, so
// cross-sheet precedence stays deterministic and matches
// "later-registered wins".
type Registry struct {
	mu       sync.RWMutex
	defaults *StyleSheet
	active   []*StyleSheet
}

// NewRegistry creates a registry with no active sheets and no defaults.
func NewRegistry() *Registry {
	return &Registry{}
}

// SetDefaults installs the built-in defaults sheet, pinned at order
// weight 0. A previously installed defaults sheet is replaced.
func (reg *Registry) SetDefaults(sheet *StyleSheet) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.defaults = sheet
	reg.renumber()
	tracer().Infof("defaults stylesheet set to %v", sheet)
}

// Activate appends a sheet to the active set. Re-activating an already
// active sheet moves it to the end, i.e. gives it the highest precedence
// among equal-specificity rules.
func (reg *Registry) Activate(sheet *StyleSheet) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.removeLocked(sheet)
	reg.active = append(reg.active, sheet)
	reg.renumber()
	tracer().Infof("activated stylesheet %v", sheet)
}

// Remove deactivates a sheet. Remaining sheets are renumbered densely in
// activation order. Removing an inactive sheet is a no-op.
func (reg *Registry) Remove(sheet *StyleSheet) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.removeLocked(sheet)
	reg.renumber()
}

// Reload replaces the rules of an active sheet in place, e.g. after its
// source file changed on disk. The sheet keeps its activation position;
// all weights are refreshed.
func (reg *Registry) Reload(sheet *StyleSheet, rules []*StyleRule) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	sheet.rules = rules
	reg.renumber()
	tracer().Infof("reloaded stylesheet %v", sheet)
}

func (reg *Registry) removeLocked(sheet *StyleSheet) {
	for i, s := range reg.active {
		if s == sheet {
			reg.active = append(reg.active[:i], reg.active[i+1:]...)
			return
		}
	}
}

// renumber reassigns order weights: defaults pinned at 0, active sheets
// numbered from 1 in activation order.
func (reg *Registry) renumber() {
	if reg.defaults != nil {
		reg.defaults.weight = 0
	}
	for i, sheet := range reg.active {
		sheet.weight = i + 1
	}
}

// ActiveSheets returns the defaults sheet (if any) followed by the active
// sheets in activation order.
func (reg *Registry) ActiveSheets() []*StyleSheet {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	var sheets []*StyleSheet
	if reg.defaults != nil {
		sheets = append(sheets, reg.defaults)
	}
	return append(sheets, reg.active...)
}

// RuleRef is a rule bound to the order weight of the sheet it came from.
// OrderKey = (selector specificity, sheet weight), compared
// lexicographically with specificity dominating.
type RuleRef struct {
	Rule        *StyleRule
	SheetWeight int
}

// Outranks reports whether r wins against other: higher specificity
// first, then the higher sheet weight.
func (r RuleRef) Outranks(other RuleRef) bool {
	if r.Rule.Selector.Specificity().Less(other.Rule.Selector.Specificity()) {
		return false
	}
	if other.Rule.Selector.Specificity().Less(r.Rule.Selector.Specificity()) {
		return true
	}
	return r.SheetWeight > other.SheetWeight
}

// OrderEquals reports whether two rule refs carry the same order key.
func (r RuleRef) OrderEquals(other RuleRef) bool {
	return r.Rule.Selector.Specificity() == other.Rule.Selector.Specificity() &&
		r.SheetWeight == other.SheetWeight
}

// RulesFor enumerates the rules of all active sheets which declare a
// given property, in sheet activation order and rule declaration order.
// This iteration order is the deterministic tie-break of last resort for
// the cascade: among equal weight and depth, the last enumerated rule
// wins.
func (reg *Registry) RulesFor(property string) []RuleRef {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	var refs []RuleRef
	appendRules := func(sheet *StyleSheet) {
		for _, r := range sheet.rules {
			if _, ok := r.Declarations[property]; ok {
				refs = append(refs, RuleRef{Rule: r, SheetWeight: sheet.weight})
			}
		}
	}
	if reg.defaults != nil {
		appendRules(reg.defaults)
	}
	for _, sheet := range reg.active {
		appendRules(sheet)
	}
	return refs
}
