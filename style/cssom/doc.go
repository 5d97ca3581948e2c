/*
Package cssom manages stylesheets, style rules, and their cascade ordering.

Overview

A StyleSheet is an ordered list of rules; a rule pairs a selector with a
map of declared property values. Stylesheets become effective by being
activated in a Registry, which owns the "order weight" of each sheet: a
number assigned in activation order through which later-registered sheets
win against earlier ones whenever selector specificity ties. A designated
defaults sheet is pinned at weight 0, so user stylesheets always outrank
built-in defaults.

CSS handling is de-coupled from any concrete parser: this package only
sees parsed selectors and well-typed values. Sub-package douceuradapter
turns .ess/.css source text into StyleSheet values using the douceur
parser.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'ess.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("ess.cssom")
}
