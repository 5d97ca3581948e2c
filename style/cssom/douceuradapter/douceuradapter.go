/*
Package douceuradapter feeds .ess/.css stylesheet text into the style
engine, using the douceur CSS parser.

Douceur splits source text into rules with a selector prelude and raw
declarations. This adapter parses each prelude with the engine's selector
parser, validates every declaration against the registry of known
properties, and assembles cssom.StyleSheet values from the survivors.
Malformed selectors and unknown or malformed declarations produce a
diagnostic pinpointing the rule; they abort only the offending rule or
declaration, never the whole sheet.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	douceurcss "github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/ess/style"
	"github.com/npillmayer/ess/style/cssom"
	"github.com/npillmayer/ess/style/selector"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'ess.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("ess.cssom")
}

// ParseSheet parses stylesheet source text into a StyleSheet, validating
// declarations against props. The name is attached to the sheet for
// diagnostics.
//
// Rules with malformed selectors are skipped with a diagnostic; the rest
// of the sheet stays intact. A declaration for an unknown property is
// reported once per property per sheet and ignored; a declaration whose
// value does not parse for its property is ignored likewise. Grouped
// preludes ("a, b { … }") yield one rule per selector, sharing the
// declared values.
//
// Only a completely unparseable source returns an error.
func ParseSheet(name string, source string, props *style.Properties) (*cssom.StyleSheet, error) {
	parsed, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}
	sheet := cssom.NewStyleSheet(name)
	reported := make(map[string]bool) // unknown properties already warned about
	for _, rule := range parsed.Rules {
		if rule.Kind != douceurcss.QualifiedRule {
			tracer().Infof("stylesheet %q: at-rules are not supported, skipping @%s", name, rule.Name)
			continue
		}
		decls := convertDeclarations(name, rule, props, reported)
		if len(decls) == 0 {
			continue
		}
		for _, seltext := range rule.Selectors {
			sel, serr := selector.Parse(seltext)
			if serr != nil {
				tracer().Errorf("stylesheet %q: dropping rule %q: %v", name, seltext, serr)
				continue
			}
			r := cssom.NewStyleRule(sel)
			for key, v := range decls {
				r.Declare(key, v)
			}
			sheet.AppendRule(r)
		}
	}
	return sheet, nil
}

// convertDeclarations validates and parses the declarations of one rule.
// Compound shorthands are expanded into their fine-grained components
// first.
func convertDeclarations(name string, rule *douceurcss.Rule, props *style.Properties,
	reported map[string]bool) map[string]style.Value {
	//
	decls := make(map[string]style.Value)
	for _, d := range rule.Declarations {
		kvs := []style.KeyValue{{Key: d.Property, Value: d.Value}}
		if style.IsCompound(d.Property) {
			expanded, err := style.SplitCompoundProperty(d.Property, d.Value)
			if err != nil {
				tracer().Errorf("stylesheet %q, rule %q: %v", name, rule.Prelude, err)
				continue
			}
			kvs = expanded
		}
		for _, kv := range kvs {
			spec, ok := props.Spec(kv.Key)
			if !ok {
				if !reported[kv.Key] {
					reported[kv.Key] = true
					tracer().Errorf("stylesheet %q: unknown property %q, ignoring", name, kv.Key)
				}
				continue
			}
			v, err := spec.Parse(kv.Value)
			if err != nil {
				tracer().Errorf("stylesheet %q, rule %q: %v", name, rule.Prelude, err)
				continue
			}
			decls[kv.Key] = v
		}
	}
	return decls
}

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style-elements as style sheets.
func ExtractStyleElements(htmldoc *html.Node, props *style.Properties) []*cssom.StyleSheet {
	var sheets []*cssom.StyleSheet
	for i, h := range []*html.Node{findElement(atom.Head, htmldoc), findElement(atom.Body, htmldoc)} {
		for _, source := range extractStyles(h) {
			sheet, err := ParseSheet("embedded", source, props)
			if err != nil {
				tracer().Errorf("embedded style element #%d: %v", i, err)
				continue
			}
			sheets = append(sheets, sheet)
		}
	}
	return sheets
}

func extractStyles(h *html.Node) []string {
	if h == nil {
		return nil
	}
	var styles []string
	ch := h.FirstChild
	for ch != nil {
		if ch.DataAtom == atom.Style && ch.FirstChild != nil {
			styles = append(styles, ch.FirstChild.Data)
		}
		ch = ch.NextSibling
	}
	return styles
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	ch := h.FirstChild
	for ch != nil {
		r := findElement(a, ch)
		if r != nil && r.DataAtom == a {
			return r
		}
		ch = ch.NextSibling
	}
	return nil
}
