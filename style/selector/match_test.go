package selector

import (
	"testing"

	"github.com/npillmayer/ess/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// testNode is a minimal style.Styler for matcher tests.
type testNode struct {
	tag     string
	id      string
	classes []string
	states  []string
	attrs   []string
}

func (n *testNode) Tag() (string, bool) { return n.tag, n.tag != "" }
func (n *testNode) ID() (string, bool)  { return n.id, n.id != "" }
func (n *testNode) IsVirtual() bool     { return n.tag == "" }

func (n *testNode) HasClass(class string) bool { return contains(n.classes, class) }
func (n *testNode) HasState(state string) bool { return contains(n.states, state) }
func (n *testNode) HasAttr(attr string) bool   { return contains(n.attrs, attr) }

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

func chainOf(nodes ...*testNode) []style.Styler {
	chain := make([]style.Styler, len(nodes))
	for i, n := range nodes {
		chain[i] = n
	}
	return chain
}

// The branch used by most matching tests below:
//
//	div.red#id:pressed  >  span.green  >  span.red
var testBranch = chainOf(
	&testNode{tag: "div", id: "id", classes: []string{"red"}, states: []string{"pressed"}},
	&testNode{tag: "span", classes: []string{"green"}},
	&testNode{tag: "span", classes: []string{"red"}},
)

func TestMatchBranch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ess.style")
	defer teardown()
	//
	matching := []string{
		"span",
		".red",
		"span.red",
		"div span",
		"div .red",
		"#id .red",
		"div.red:pressed span.green .red",
		".green span",
		"div span span",
	}
	for _, text := range matching {
		if _, ok := MustParse(text).Match(testBranch); !ok {
			t.Errorf("expected %q to match branch, doesn't", text)
		}
	}
	failing := []string{
		"div",        // leaf is a span
		".green",     // leaf has no green class
		"span .green",
		"div:hover span",
		"#other span",
		"div span span span", // not enough levels
	}
	for _, text := range failing {
		if _, ok := MustParse(text).Match(testBranch); ok {
			t.Errorf("expected %q not to match branch, does", text)
		}
	}
}

func TestMatchLeafAnchoring(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ess.style")
	defer teardown()
	//
	chain := chainOf(
		&testNode{tag: "div"},
		&testNode{tag: "button"},
	)
	if _, ok := MustParse("div").Match(chain); ok {
		t.Error("expected 'div' not to match a button leaf, does")
	}
	if _, ok := MustParse("button").Match(chain); !ok {
		t.Error("expected 'button' to match the leaf, doesn't")
	}
}

func TestMatchBacktracking(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ess.style")
	defer teardown()
	//
	aab := chainOf(
		&testNode{tag: "a"},
		&testNode{tag: "a"},
		&testNode{tag: "b"},
	)
	if _, ok := MustParse("a a b").Match(aab); !ok {
		t.Error("expected 'a a b' to match chain [a a b], doesn't")
	}
	ab := chainOf(
		&testNode{tag: "a"},
		&testNode{tag: "b"},
	)
	if _, ok := MustParse("a b c").Match(ab); ok {
		t.Error("expected 'a b c' not to match chain [a b], does")
	}
	axbyc := chainOf(
		&testNode{tag: "a"},
		&testNode{tag: "x"},
		&testNode{tag: "b"},
		&testNode{tag: "y"},
		&testNode{tag: "c"},
	)
	if _, ok := MustParse("a b c").Match(axbyc); !ok {
		t.Error("expected 'a b c' to match chain [a x b y c], doesn't")
	}
}

func TestMatchDepth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ess.style")
	defer teardown()
	//
	chain := chainOf(
		&testNode{tag: "body"},
		&testNode{tag: "panel", classes: []string{"card"}},
		&testNode{tag: "label", classes: []string{"title"}, states: []string{"hover"}},
	)
	sel := MustParse(".card .title:hover")
	depth, ok := sel.Match(chain)
	if !ok {
		t.Fatal("expected selector to match chain, doesn't")
	}
	if depth != 1 {
		t.Errorf("expected match depth 1, have %d", depth)
	}
	// leaf-only match has depth 0
	depth, ok = MustParse(".title").Match(chain)
	if !ok || depth != 0 {
		t.Errorf("expected leaf match at depth 0, have %d (ok=%v)", depth, ok)
	}
	// removing the state makes the match fail
	chain[2].(*testNode).states = nil
	if _, ok := sel.Match(chain); ok {
		t.Error("expected selector to fail without hover state, doesn't")
	}
}

func TestMatchDepthMinimal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ess.style")
	defer teardown()
	//
	// two ways to place the 'a' segment; the closer one counts
	chain := chainOf(
		&testNode{tag: "a"},
		&testNode{tag: "a"},
		&testNode{tag: "b"},
	)
	depth, ok := MustParse("a b").Match(chain)
	if !ok {
		t.Fatal("expected 'a b' to match chain [a a b], doesn't")
	}
	if depth != 1 {
		t.Errorf("expected minimal depth 1, have %d", depth)
	}
}

func TestMatchVirtualNeverMatches(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ess.style")
	defer teardown()
	//
	virtual := &testNode{classes: []string{"red"}}
	if _, ok := MustParse(".red").Match(chainOf(virtual)); ok {
		t.Error("expected virtual node not to match, does")
	}
}

func TestMatchEmptyChain(t *testing.T) {
	if _, ok := MustParse("div").Match(nil); ok {
		t.Error("expected empty chain not to match, does")
	}
}
