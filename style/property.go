package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strings"
)

// KeyValue is a container for a raw style declaration.
type KeyValue struct {
	Key   string
	Value string
}

// PropertySpec describes one known style property: its name, the shape of
// its values, and its cascade behavior.
type PropertySpec struct {
	Name string
	// Parse turns the raw declaration text into a well-typed Value.
	Parse func(raw string) (Value, error)
	// AffectsVirtual is set for properties which are resolved for virtual
	// (untagged) nodes, too. Most visual properties aren't.
	AffectsVirtual bool
}

// Properties is a registry of known style properties. Stylesheet loaders
// consult it to validate declarations; the engine iterates it to drive
// per-property styling passes.
//
// A nil Properties knows no properties.
type Properties struct {
	specs map[string]PropertySpec
}

// NewProperties creates an empty property registry.
func NewProperties() *Properties {
	return &Properties{specs: make(map[string]PropertySpec)}
}

// Register adds a property to the registry. Registering a name twice is an
// error (it almost certainly hides a programming mistake).
func (p *Properties) Register(spec PropertySpec) error {
	if spec.Name == "" || spec.Parse == nil {
		return fmt.Errorf("property spec needs a name and a parse function")
	}
	if _, ok := p.specs[spec.Name]; ok {
		return fmt.Errorf("property %q already registered", spec.Name)
	}
	p.specs[spec.Name] = spec
	tracer().Debugf("registered style property %q", spec.Name)
	return nil
}

// Knows checks if a property name is registered.
func (p *Properties) Knows(name string) bool {
	if p == nil {
		return false
	}
	_, ok := p.specs[name]
	return ok
}

// Spec returns the registered spec for a property name.
func (p *Properties) Spec(name string) (PropertySpec, bool) {
	if p == nil {
		return PropertySpec{}, false
	}
	spec, ok := p.specs[name]
	return spec, ok
}

// Names returns all registered property names, sorted. The engine relies
// on the deterministic order for reproducible styling passes.
func (p *Properties) Names() []string {
	if p == nil {
		return nil
	}
	names := make([]string, 0, len(p.specs))
	for name := range p.specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StandardProperties returns a registry pre-filled with the engine's
// built-in property set. Hosts extend it with Register for custom
// properties.
func StandardProperties() *Properties {
	p := NewProperties()
	for _, spec := range standardSpecs {
		if err := p.Register(spec); err != nil {
			panic(err) // duplicate in the built-in table is a bug
		}
	}
	return p
}

var standardSpecs = []PropertySpec{
	{Name: "display", Parse: ParseKeywordOf("flex", "grid", "none")},
	{Name: "visibility", Parse: ParseKeywordOf("visible", "hidden")},
	{Name: "position-type", Parse: ParseKeywordOf("absolute", "relative")},
	{Name: "overflow", Parse: ParseKeywordOf("visible", "hidden")},
	{Name: "width", Parse: ParseLength},
	{Name: "height", Parse: ParseLength},
	{Name: "min-width", Parse: ParseLength},
	{Name: "min-height", Parse: ParseLength},
	{Name: "max-width", Parse: ParseLength},
	{Name: "max-height", Parse: ParseLength},
	{Name: "left", Parse: ParseLength},
	{Name: "right", Parse: ParseLength},
	{Name: "top", Parse: ParseLength},
	{Name: "bottom", Parse: ParseLength},
	{Name: "margin-left", Parse: ParseLength},
	{Name: "margin-right", Parse: ParseLength},
	{Name: "margin-top", Parse: ParseLength},
	{Name: "margin-bottom", Parse: ParseLength},
	{Name: "padding-left", Parse: ParseLength},
	{Name: "padding-right", Parse: ParseLength},
	{Name: "padding-top", Parse: ParseLength},
	{Name: "padding-bottom", Parse: ParseLength},
	{Name: "border-left", Parse: ParseLength},
	{Name: "border-right", Parse: ParseLength},
	{Name: "border-top", Parse: ParseLength},
	{Name: "border-bottom", Parse: ParseLength},
	{Name: "flex-grow", Parse: ParseNumber},
	{Name: "flex-shrink", Parse: ParseNumber},
	{Name: "flex-basis", Parse: ParseLength},
	{Name: "flex-direction", Parse: ParseKeywordOf("row", "column", "row-reverse", "column-reverse")},
	{Name: "flex-wrap", Parse: ParseKeywordOf("nowrap", "wrap", "wrap-reverse")},
	{Name: "align-items", Parse: ParseKeywordOf("flex-start", "flex-end", "center", "baseline", "stretch")},
	{Name: "align-self", Parse: ParseKeywordOf("auto", "flex-start", "flex-end", "center", "baseline", "stretch")},
	{Name: "align-content", Parse: ParseKeywordOf("flex-start", "flex-end", "center", "stretch", "space-between", "space-around")},
	{Name: "justify-content", Parse: ParseKeywordOf("flex-start", "flex-end", "center", "space-between", "space-around", "space-evenly")},
	{Name: "color", Parse: ParseColor, AffectsVirtual: true},
	{Name: "background-color", Parse: ParseColor},
	{Name: "font", Parse: ParseString, AffectsVirtual: true},
	{Name: "font-size", Parse: ParseLength, AffectsVirtual: true},
	{Name: "z-index", Parse: ParseNumber},
	{Name: "scale", Parse: ParseNumber},
}

// --- Compound properties ---------------------------------------------------

// SplitCompoundProperty splits up a shorthand declaration into its
// individual components, returning raw key-value pairs ready for
// per-property parsing. Example:
//
//	SplitCompoundProperty("padding", "3px 1px")
//
// will return
//
//	"padding-top"    => "3px"
//	"padding-right"  => "1px"
//	"padding-bottom" => "3px"
//	"padding-left"   => "1px"
//
// An error return means the key is not a compound property.
func SplitCompoundProperty(key string, value string) ([]KeyValue, error) {
	fields := strings.Fields(value)
	switch key {
	case "margin":
		return feazeCompound4("margin", "", fourDirs, fields)
	case "padding":
		return feazeCompound4("padding", "", fourDirs, fields)
	case "border":
		return feazeCompound4("border", "", fourDirs, fields)
	case "position":
		return feazeCompound4("", "", [4]string{"top", "right", "bottom", "left"}, fields)
	}
	return nil, fmt.Errorf("not recognized as compound property: %s", key)
}

// IsCompound checks if a property key is a shorthand for a group of
// fine-grained properties.
func IsCompound(key string) bool {
	switch key {
	case "margin", "padding", "border", "position":
		return true
	}
	return false
}

// CSS logic to distribute individual values from compound shorthands is as
// follows: https://www.w3schools.com/css/css_border.asp
func feazeCompound4(pre string, suf string, dirs [4]string, fields []string) ([]KeyValue, error) {
	l := len(fields)
	if l == 0 || l > 4 {
		return nil, fmt.Errorf("expecting 1-4 values for %s-%s", pre, suf)
	}
	r := make([]KeyValue, 4)
	r[0] = KeyValue{p(pre, suf, dirs[0]), fields[0]}
	if l >= 2 {
		r[1] = KeyValue{p(pre, suf, dirs[1]), fields[1]}
		if l >= 3 {
			r[2] = KeyValue{p(pre, suf, dirs[2]), fields[2]}
			if l == 4 {
				r[3] = KeyValue{p(pre, suf, dirs[3]), fields[3]}
			} else {
				r[3] = KeyValue{p(pre, suf, dirs[3]), fields[1]}
			}
		} else {
			r[2] = KeyValue{p(pre, suf, dirs[2]), fields[0]}
			r[3] = KeyValue{p(pre, suf, dirs[3]), fields[1]}
		}
	} else {
		r[1] = KeyValue{p(pre, suf, dirs[1]), fields[0]}
		r[2] = KeyValue{p(pre, suf, dirs[2]), fields[0]}
		r[3] = KeyValue{p(pre, suf, dirs[3]), fields[0]}
	}
	return r, nil
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}

func p(prefix string, suffix string, tag string) string {
	if suffix == "" && prefix == "" {
		return tag
	}
	if suffix == "" {
		return prefix + "-" + tag
	}
	if prefix == "" {
		return tag + "-" + suffix
	}
	return prefix + "-" + tag + "-" + suffix
}
