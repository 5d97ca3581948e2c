package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Styler is the minimal read interface the selector matcher needs from a
// scene-graph node. We de-couple the matching engine from any concrete
// scene-graph implementation by only ever talking to nodes through this
// interface (package styledtree provides the default implementation).
type Styler interface {
	Tag() (string, bool)    // element tag; ok=false for virtual nodes
	ID() (string, bool)     // element id, if set
	HasClass(string) bool   // class set membership
	HasAttr(string) bool    // attribute presence
	HasState(string) bool   // state flag (pseudo-class) membership
	IsVirtual() bool        // virtual nodes never satisfy matchers
}

// Override is a directly-declared property value on a node. Direct
// declarations always beat stylesheet rules. A managed override marks the
// property as owned by code outside the cascade: the resolver will never
// touch it. Managed overrides may still carry a default value for the
// host's property-application layer to fall back on.
type Override struct {
	Value   Value
	Managed bool
}

// StyledNode is the view the cascade resolver needs from a scene-graph
// node: the matcher view plus parent link, direct overrides, and the
// value currently applied per property.
//
// Implementations must return a true nil interface from Parent for roots.
type StyledNode interface {
	Styler
	Parent() StyledNode
	Override(property string) (Override, bool)
	Applied(property string) (Value, bool)
}
