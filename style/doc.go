/*
Package style holds the property model of the style engine.

Overview

Style properties are identified by name ("padding-top", "color", …) and
carry values of a small closed set of shapes: numbers, colors, lengths,
keywords, rects, strings, plus one boxed variant for custom payloads
(type Value). A registry of known properties (type Properties) associates
every property name with its value shape and cascade behavior; stylesheet
loaders consult it to validate declarations at load time.

The package also defines the view interfaces Styler and StyledNode,
through which the selector matcher and the cascade resolver read
scene-graph nodes. Concrete scene graphs implement these interfaces;
package styledtree is the default implementation.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ess.style'.
func tracer() tracing.Trace {
	return tracing.Select("ess.style")
}
