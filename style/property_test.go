package style

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestPropertiesRegister(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ess.style")
	defer teardown()
	//
	props := NewProperties()
	err := props.Register(PropertySpec{Name: "blur-radius", Parse: ParseLength})
	if err != nil {
		t.Fatalf("cannot register property: %v", err)
	}
	if !props.Knows("blur-radius") {
		t.Error("expected registry to know blur-radius, doesn't")
	}
	err = props.Register(PropertySpec{Name: "blur-radius", Parse: ParseLength})
	if err == nil {
		t.Error("expected duplicate registration to fail, didn't")
	}
}

func TestPropertiesStandardSet(t *testing.T) {
	props := StandardProperties()
	for _, name := range []string{"display", "width", "margin-left", "color", "flex-grow"} {
		if !props.Knows(name) {
			t.Errorf("expected standard set to include %q, doesn't", name)
		}
	}
	spec, ok := props.Spec("color")
	if !ok || !spec.AffectsVirtual {
		t.Error("expected color to be inheritable across virtual nodes, isn't")
	}
	spec, _ = props.Spec("width")
	if spec.AffectsVirtual {
		t.Error("expected width to skip virtual nodes, doesn't")
	}
}

func TestSplitCompoundProperty(t *testing.T) {
	kvs, err := SplitCompoundProperty("padding", "3px 1px")
	if err != nil {
		t.Fatalf("cannot split padding shorthand: %v", err)
	}
	expected := []KeyValue{
		{"padding-top", "3px"},
		{"padding-right", "1px"},
		{"padding-bottom", "3px"},
		{"padding-left", "1px"},
	}
	if len(kvs) != 4 {
		t.Fatalf("expected 4 components, have %v", kvs)
	}
	for i, kv := range expected {
		if kvs[i] != kv {
			t.Errorf("component %d: expected %v, have %v", i, kv, kvs[i])
		}
	}
}

func TestSplitCompoundPropertyPosition(t *testing.T) {
	kvs, err := SplitCompoundProperty("position", "10px 20px 30px 40px")
	if err != nil {
		t.Fatalf("cannot split position shorthand: %v", err)
	}
	if kvs[0].Key != "top" || kvs[3].Key != "left" || kvs[3].Value != "40px" {
		t.Errorf("unexpected position components: %v", kvs)
	}
}

func TestSplitCompoundPropertyRejectsSimpleKeys(t *testing.T) {
	if _, err := SplitCompoundProperty("width", "100px"); err == nil {
		t.Error("expected width to be rejected as compound, wasn't")
	}
	if IsCompound("width") {
		t.Error("expected width not to be compound, is")
	}
	if !IsCompound("margin") {
		t.Error("expected margin to be compound, isn't")
	}
}
