package style

import (
	"image/color"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestValueParseLength(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ess.style")
	defer teardown()
	//
	v, err := ParseLength("12px")
	assert.NoError(t, err)
	assert.Equal(t, Length(12, UnitPx), v)
	//
	v, err = ParseLength("1.5em")
	assert.NoError(t, err)
	assert.Equal(t, Length(1.5, UnitEm), v)
	//
	v, err = ParseLength("50%")
	assert.NoError(t, err)
	assert.Equal(t, Length(50, UnitPercent), v)
}

func TestValueParseLengthBareNumber(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ess.style")
	defer teardown()
	//
	v, err := ParseLength("20")
	if err != nil {
		t.Fatalf("cannot parse bare number as length: %v", err)
	}
	n, u, ok := v.AsLength()
	if !ok || n != 20 || u != UnitPx {
		t.Errorf("expected bare number to default to px, have %v", v)
	}
}

func TestValueParseLengthAuto(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ess.style")
	defer teardown()
	//
	v, err := ParseLength("auto")
	assert.NoError(t, err)
	assert.Equal(t, Auto(), v)
	//
	_, err = ParseLength("fnord")
	assert.Error(t, err)
	_, err = ParseLength("12 13")
	assert.Error(t, err)
}

func TestValueParseColor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ess.style")
	defer teardown()
	//
	v, err := ParseColor("#2f71e4")
	assert.NoError(t, err)
	c, ok := v.AsColor()
	assert.True(t, ok)
	assert.Equal(t, color.RGBA{0x2f, 0x71, 0xe4, 0xff}, c)
	//
	v, err = ParseColor("#f00")
	assert.NoError(t, err)
	c, _ = v.AsColor()
	assert.Equal(t, color.RGBA{0xff, 0x00, 0x00, 0xff}, c)
	//
	v, err = ParseColor("red")
	assert.NoError(t, err)
	c, _ = v.AsColor()
	assert.Equal(t, color.RGBA{0xff, 0x00, 0x00, 0xff}, c)
	//
	_, err = ParseColor("#12345")
	assert.Error(t, err)
	_, err = ParseColor("ochre")
	assert.Error(t, err)
}

func TestValueParseRect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ess.style")
	defer teardown()
	//
	v, err := ParseRect("2px 4px")
	if err != nil {
		t.Fatalf("cannot parse 2-valued rect: %v", err)
	}
	sides, ok := v.AsRect()
	if !ok {
		t.Fatalf("expected a rect value, have %v", v)
	}
	assert.Equal(t, Length(2, UnitPx), sides[0]) // top
	assert.Equal(t, Length(4, UnitPx), sides[1]) // right
	assert.Equal(t, Length(2, UnitPx), sides[2]) // bottom
	assert.Equal(t, Length(4, UnitPx), sides[3]) // left
	//
	_, err = ParseRect("1px 2px 3px 4px 5px")
	assert.Error(t, err)
}

func TestValueParseKeywordOf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ess.style")
	defer teardown()
	//
	parse := ParseKeywordOf("grid", "flexbox", "none")
	v, err := parse("Flexbox")
	assert.NoError(t, err)
	kw, _ := v.AsKeyword()
	assert.Equal(t, "flexbox", kw)
	//
	_, err = parse("table")
	assert.Error(t, err)
}

func TestValueEquals(t *testing.T) {
	if !Length(12, UnitPx).Equals(Length(12, UnitPx)) {
		t.Error("expected equal lengths to be equal, aren't")
	}
	if Length(12, UnitPx).Equals(Length(12, UnitEm)) {
		t.Error("expected lengths of different units to differ, don't")
	}
	if Keyword("auto").Equals(String("auto")) {
		t.Error("expected values of different kind to differ, don't")
	}
	r1, _ := ParseRect("1px 2px")
	r2, _ := ParseRect("1px 2px 1px 2px")
	if !r1.Equals(r2) {
		t.Error("expected equivalent rects to be equal, aren't")
	}
	if (Value{}).Equals(Number(0)) {
		t.Error("expected the void value to differ from 0, doesn't")
	}
}
