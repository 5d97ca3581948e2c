package styledtree

import (
	"testing"

	"github.com/npillmayer/ess/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func buildTestTree() (*Tree, *StyNode, *StyNode, *StyNode) {
	t := NewTree()
	body := t.AddElement(nil, "body")
	card := t.AddElement(body, "panel")
	card.AddClass("card")
	title := t.AddElement(card, "label")
	title.AddClass("title")
	return t, body, card, title
}

func TestNodeMatcherView(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ess.styles")
	defer teardown()
	//
	_, _, card, _ := buildTestTree()
	if tag, ok := card.Tag(); !ok || tag != "panel" {
		t.Errorf("expected tag 'panel', have %q", tag)
	}
	if !card.HasClass("card") || card.HasClass("title") {
		t.Error("unexpected class membership")
	}
	card.SetID("main-card")
	if id, ok := card.ID(); !ok || id != "main-card" {
		t.Errorf("expected id 'main-card', have %q", id)
	}
	card.SetState("hover")
	if !card.HasState("hover") {
		t.Error("expected hover state, missing")
	}
	card.ClearState("hover")
	if card.HasState("hover") {
		t.Error("expected hover state to be cleared, isn't")
	}
	card.SetAttr("flat")
	if !card.HasAttr("flat") {
		t.Error("expected flat attribute, missing")
	}
}

func TestNodeVirtual(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ess.styles")
	defer teardown()
	//
	tree, body, _, _ := buildTestTree()
	v := tree.AddVirtual(body)
	if !v.IsVirtual() {
		t.Error("expected node to be virtual, isn't")
	}
	if _, ok := v.Tag(); ok {
		t.Error("expected virtual node to have no tag, has one")
	}
}

func TestNodeParentLinks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ess.styles")
	defer teardown()
	//
	_, body, card, title := buildTestTree()
	if title.ParentNode() != card || card.ParentNode() != body {
		t.Error("unexpected parent links")
	}
	if body.Parent() != nil {
		t.Error("expected root parent to be nil, isn't")
	}
	// Parent() must be comparable against nil through the interface
	var p style.StyledNode = title
	hops := 0
	for p != nil {
		p = p.Parent()
		hops++
	}
	if hops != 3 {
		t.Errorf("expected 3 hops to the root, have %d", hops)
	}
}

func TestNodeChangedBookkeeping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ess.styles")
	defer teardown()
	//
	tree, body, card, title := buildTestTree()
	for _, sn := range tree.ChangedNodes() {
		sn.ClearChanged()
	}
	if len(tree.ChangedNodes()) != 0 {
		t.Fatal("expected no changed nodes after clearing, have some")
	}
	card.AddClass("expanded")
	changed := tree.ChangedNodes()
	if len(changed) != 2 {
		t.Fatalf("expected class change to flag card and title, flags %d node(s)", len(changed))
	}
	if !card.IsChanged() || !title.IsChanged() {
		t.Error("expected card and title to be changed, aren't")
	}
	if body.IsChanged() {
		t.Error("expected body to be unchanged, isn't")
	}
	// adding an already present class must not re-flag anything
	card.ClearChanged()
	title.ClearChanged()
	card.AddClass("expanded")
	if len(tree.ChangedNodes()) != 0 {
		t.Error("expected no-op mutation not to flag nodes, does")
	}
}

func TestNodeOverrides(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ess.styles")
	defer teardown()
	//
	_, _, card, _ := buildTestTree()
	card.SetOverride("width", style.Length(100, style.UnitPx))
	ov, ok := card.Override("width")
	if !ok || ov.Managed {
		t.Fatal("expected a plain override for width")
	}
	if n, _, _ := ov.Value.AsLength(); n != 100 {
		t.Errorf("expected override 100px, have %v", ov.Value)
	}
	card.SetManaged("top", style.Value{})
	if ov, _ := card.Override("top"); !ov.Managed {
		t.Error("expected top to be managed, isn't")
	}
	card.ClearOverride("width")
	if _, ok := card.Override("width"); ok {
		t.Error("expected width override to be cleared, isn't")
	}
}

func TestNodeAppliedValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ess.styles")
	defer teardown()
	//
	_, _, _, title := buildTestTree()
	if _, ok := title.Applied("color"); ok {
		t.Error("expected no applied value initially, have one")
	}
	title.SetApplied("color", style.Keyword("x"))
	v, ok := title.Applied("color")
	if !ok || !v.Equals(style.Keyword("x")) {
		t.Errorf("expected applied value to round-trip, have %v", v)
	}
}

func TestTreeRemoveSubtree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ess.styles")
	defer teardown()
	//
	tree, _, card, _ := buildTestTree()
	tree.Remove(card)
	root := tree.Root()
	if root == nil || len(root.Children()) != 0 {
		t.Error("expected root to have no children after removal")
	}
}
