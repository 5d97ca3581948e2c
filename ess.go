/*
Package ess implements a style engine for retained-mode UI scene graphs.

ESS ("element style sheets") is a CSS-like styling language: stylesheets
contain rules, rules pair a selector with a set of property declarations,
and selectors are matched against the ancestor chain of nodes in a scene
graph. The engine resolves competing declarations into a single winning
value per property per node (the cascade) and keeps resolved values in
sync as the tree and the rule set change.

The module is organized into small, decoupled packages:

▪︎ tree is an arena-backed general purpose tree, the substrate for scene
graphs (integer node references instead of pointers).

▪︎ style holds the property model: a closed sum type for property values,
a registry of known properties, and the view interfaces the matcher and
resolver need from scene-graph nodes.

▪︎ style/selector is the selector data model, parser and ancestor-chain
matcher.

▪︎ style/cssom manages stylesheets, rules and the registry of active
sheets, including their cascade ordering.

▪︎ style/cascade selects the winning declared value for one property of
one node.

▪︎ styledtree is the default implementation of a styled scene graph.

▪︎ engine drives one styling pass over the changed nodes of a styled tree.

Clients parse stylesheet text with style/cssom/douceuradapter, activate
the resulting sheets in a cssom.Registry, and run engine passes until a
pass reports no further changes.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ess
