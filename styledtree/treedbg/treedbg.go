/*
Package treedbg provides debugging helpers for styled trees.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package treedbg

import (
	"fmt"

	"github.com/npillmayer/ess/style"
	"github.com/npillmayer/ess/styledtree"
	tp "github.com/xlab/treeprint"
)

// Print renders a styled tree as an indented text diagram, one line per
// node. Nodes marked as changed carry a '*' suffix.
func Print(t *styledtree.Tree) string {
	root := t.Root()
	if root == nil {
		return "(empty tree)\n"
	}
	p := tp.New()
	ppn(p, root)
	return p.String()
}

func ppn(p tp.Tree, sn *styledtree.StyNode) {
	children := sn.Children()
	if len(children) == 0 {
		p.AddNode(label(sn))
		return
	}
	branch := p.AddBranch(label(sn))
	for _, ch := range children {
		ppn(branch, ch)
	}
}

func label(sn *styledtree.StyNode) string {
	if sn.IsChanged() {
		return sn.String() + " *"
	}
	return sn.String()
}

// PrintApplied lists the applied property values of a node, sorted by
// property name.
func PrintApplied(sn *styledtree.StyNode, props *style.Properties) string {
	out := sn.String() + "\n"
	for _, name := range props.Names() {
		if v, ok := sn.Applied(name); ok {
			out += fmt.Sprintf("    %-20s = %s\n", name, v.String())
		}
	}
	return out
}
