package tree

import (
	"testing"
)

func TestTreeEmpty(t *testing.T) {
	tr := New[string]()
	if tr.NodeCount() != 0 {
		t.Errorf("expected empty tree to have 0 nodes, has %d", tr.NodeCount())
	}
	if tr.IsValid(NullNode) {
		t.Error("expected NullNode to be invalid, isn't")
	}
}

func TestTreeAddNodes(t *testing.T) {
	tr := New[string]()
	root := tr.AddNode("root", NullNode)
	a := tr.AddNode("a", root)
	b := tr.AddNode("b", root)
	if tr.NodeCount() != 3 {
		t.Fatalf("expected 3 nodes, have %d", tr.NodeCount())
	}
	if tr.Parent(a) != root || tr.Parent(b) != root {
		t.Error("expected a and b to be children of root, aren't")
	}
	children := tr.Children(root)
	if len(children) != 2 || children[0] != a || children[1] != b {
		t.Errorf("expected root children [a b], have %v", children)
	}
	if payload, ok := tr.Payload(a); !ok || payload != "a" {
		t.Errorf("expected payload of a to be 'a', is %q", payload)
	}
}

func TestTreeRetireSubtree(t *testing.T) {
	tr := New[string]()
	root := tr.AddNode("root", NullNode)
	a := tr.AddNode("a", root)
	aa := tr.AddNode("aa", a)
	b := tr.AddNode("b", root)
	tr.Retire(a)
	if tr.IsValid(a) || tr.IsValid(aa) {
		t.Error("expected a and aa to be retired, aren't")
	}
	if !tr.IsValid(b) {
		t.Error("expected b to survive retirement of a, didn't")
	}
	if tr.NodeCount() != 2 {
		t.Errorf("expected 2 nodes after retirement, have %d", tr.NodeCount())
	}
}

func TestTreeSlotReuse(t *testing.T) {
	tr := New[string]()
	root := tr.AddNode("root", NullNode)
	a := tr.AddNode("a", root)
	tr.Retire(a)
	c := tr.AddNode("c", root)
	if c != a {
		t.Errorf("expected retired slot %d to be reused, got %d", a, c)
	}
	if payload, _ := tr.Payload(c); payload != "c" {
		t.Errorf("expected reused slot to carry 'c', carries %q", payload)
	}
}

func TestTreeAncestors(t *testing.T) {
	tr := New[string]()
	root := tr.AddNode("root", NullNode)
	a := tr.AddNode("a", root)
	aa := tr.AddNode("aa", a)
	chain := tr.Ancestors(aa)
	if len(chain) != 3 {
		t.Fatalf("expected ancestor chain of length 3, have %v", chain)
	}
	if chain[0] != root || chain[1] != a || chain[2] != aa {
		t.Errorf("expected chain [root a aa], have %v", chain)
	}
}

func TestTreeChangedMarks(t *testing.T) {
	tr := New[string]()
	root := tr.AddNode("root", NullNode)
	a := tr.AddNode("a", root)
	aa := tr.AddNode("aa", a)
	b := tr.AddNode("b", root)
	if len(tr.ChangedNodes()) != 0 {
		t.Fatal("expected no changed nodes in a fresh tree, have some")
	}
	tr.MarkChanged(a, true)
	changed := tr.ChangedNodes()
	if len(changed) != 2 {
		t.Fatalf("expected subtree mark to flag 2 nodes, flags %v", changed)
	}
	if !tr.IsChanged(a) || !tr.IsChanged(aa) {
		t.Error("expected a and aa to be changed, aren't")
	}
	if tr.IsChanged(b) {
		t.Error("expected b to be unchanged, isn't")
	}
	tr.ClearChanged(a)
	tr.ClearChanged(aa)
	if len(tr.ChangedNodes()) != 0 {
		t.Error("expected no changed nodes after clearing, have some")
	}
}

func TestTreeWalk(t *testing.T) {
	tr := New[string]()
	root := tr.AddNode("root", NullNode)
	a := tr.AddNode("a", root)
	tr.AddNode("aa", a)
	tr.AddNode("b", root)
	var visited []string
	tr.Walk(root, func(ref NodeRef) bool {
		payload, _ := tr.Payload(ref)
		visited = append(visited, payload)
		return true
	})
	if len(visited) != 4 || visited[0] != "root" || visited[1] != "a" || visited[2] != "aa" {
		t.Errorf("expected depth-first walk [root a aa b], have %v", visited)
	}
}
