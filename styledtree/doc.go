/*
Package styledtree implements a styled scene graph.

Overview

A styled tree is the data structure the style engine operates on: a tree
of nodes which carry the inputs of selector matching (tag, id, classes,
state flags, attributes) together with the outputs of the cascade
(applied property values). Nodes live in an arena (see package tree) and
are addressed by stable references.

Nodes come in two flavours: element nodes carry a tag and participate in
selector matching; virtual nodes carry no tag, never match any selector,
and exist to group children. Virtual nodes may still hold direct property
overrides, which their descendants inherit for inheritable properties.

Mutating a node's matcher-visible features (classes, states, attributes,
id, overrides) marks the node and its subtree as changed; the next engine
pass re-styles exactly the changed nodes.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'ess.styles'.
func tracer() tracing.Trace {
	return tracing.Select("ess.styles")
}
