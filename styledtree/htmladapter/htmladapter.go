/*
Package htmladapter builds styled trees from HTML parse trees.

HTML documents are a convenient source for styled scene graphs, in tests
as well as in hosts which describe their UI in markup. This package
walks a parse tree produced by golang.org/x/net/html and creates a
styled node per element: the element name becomes the tag, 'id' and
'class' attributes map to the node's id and class set, and every other
attribute is recorded by name for attribute-presence matching.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htmladapter

import (
	"io"
	"strings"

	"github.com/npillmayer/ess/styledtree"
	"golang.org/x/net/html"
)

// FromHTML parses an HTML document and builds a styled tree from its
// body. The body element becomes the root of the styled tree.
func FromHTML(r io.Reader) (*styledtree.Tree, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return FromHTMLParseTree(doc), nil
}

// FromHTMLParseTree builds a styled tree from an already parsed HTML
// document. It returns nil if the document has no body.
func FromHTMLParseTree(doc *html.Node) *styledtree.Tree {
	body := findBody(doc)
	if body == nil {
		return nil
	}
	t := styledtree.NewTree()
	buildSubtree(t, nil, body)
	return t
}

func buildSubtree(t *styledtree.Tree, parent *styledtree.StyNode, h *html.Node) {
	sn := t.AddElement(parent, h.Data)
	for _, attr := range h.Attr {
		switch attr.Key {
		case "id":
			sn.SetID(attr.Val)
		case "class":
			for _, class := range strings.Fields(attr.Val) {
				sn.AddClass(class)
			}
		default:
			sn.SetAttr(attr.Key)
		}
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode {
			buildSubtree(t, sn, ch)
		}
	}
}

func findBody(h *html.Node) *html.Node {
	if h.Type == html.ElementNode && h.Data == "body" {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if body := findBody(ch); body != nil {
			return body
		}
	}
	return nil
}
