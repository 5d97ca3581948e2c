package cssom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/ess/style"
	"github.com/npillmayer/ess/style/selector"
)

// StyleRule pairs a selector with the property values it declares.
// Declared values are well-typed for their property by the time a rule is
// constructed: validation is a load-time concern (see douceuradapter),
// matching and resolution never see malformed values.
type StyleRule struct {
	Selector     *selector.Selector
	Declarations map[string]style.Value
}

// NewStyleRule creates a rule for a selector, with an empty declaration
// set.
func NewStyleRule(sel *selector.Selector) *StyleRule {
	return &StyleRule{
		Selector:     sel,
		Declarations: make(map[string]style.Value),
	}
}

// Declare sets a property value on the rule, overwriting a previous
// declaration for the same property.
func (r *StyleRule) Declare(property string, v style.Value) *StyleRule {
	r.Declarations[property] = v
	return r
}

func (r *StyleRule) String() string {
	return fmt.Sprintf("(Rule %q #decl=%d)", r.Selector, len(r.Declarations))
}

// StyleSheet is an ordered list of style rules, plus a single order
// weight shared by all its rules. The weight is owned by the Registry the
// sheet is activated in and read-only during matching.
type StyleSheet struct {
	name   string
	weight int
	rules  []*StyleRule
}

// NewStyleSheet creates an empty stylesheet. The name is used for
// diagnostics only.
func NewStyleSheet(name string) *StyleSheet {
	return &StyleSheet{name: name}
}

// Name returns the diagnostic name of the sheet.
func (sheet *StyleSheet) Name() string {
	return sheet.name
}

// AppendRule appends a rule to the sheet. Within a sheet, later rules win
// against earlier ones when weight and match depth tie.
func (sheet *StyleSheet) AppendRule(r *StyleRule) {
	sheet.rules = append(sheet.rules, r)
}

// AppendRules appends all rules from another stylesheet.
func (sheet *StyleSheet) AppendRules(other *StyleSheet) {
	sheet.rules = append(sheet.rules, other.rules...)
}

// Rules returns all the rules of the sheet, in declaration order.
func (sheet *StyleSheet) Rules() []*StyleRule {
	return sheet.rules
}

// Empty checks if this stylesheet contains any rules.
func (sheet *StyleSheet) Empty() bool {
	return len(sheet.rules) == 0
}

// OrderWeight returns the cascade weight currently assigned to the sheet
// (0 for the defaults sheet and for sheets not activated anywhere).
func (sheet *StyleSheet) OrderWeight() int {
	return sheet.weight
}

func (sheet *StyleSheet) String() string {
	return fmt.Sprintf("(StyleSheet %q w=%d #rules=%d)", sheet.name, sheet.weight, len(sheet.rules))
}
