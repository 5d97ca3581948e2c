package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/gorilla/css/scanner"
)

// ValueKind discriminates the shapes a property value can take.
type ValueKind uint8

// Value shapes. Every declared or applied property value has exactly one
// of these kinds.
const (
	NoValue ValueKind = iota // zero value; never the result of a successful parse
	NumberKind
	ColorKind
	LengthKind
	KeywordKind
	RectKind
	StringKind
	BoxedKind
)

func (k ValueKind) String() string {
	switch k {
	case NumberKind:
		return "number"
	case ColorKind:
		return "color"
	case LengthKind:
		return "length"
	case KeywordKind:
		return "keyword"
	case RectKind:
		return "rect"
	case StringKind:
		return "string"
	case BoxedKind:
		return "boxed"
	}
	return "no-value"
}

// Unit is the measurement unit of a length value.
type Unit uint8

// Units for length values. UnitAuto marks the 'auto' length, which carries
// no number.
const (
	UnitPx Unit = iota
	UnitEm
	UnitRem
	UnitVw
	UnitVh
	UnitPercent
	UnitAuto
)

var unitNames = map[Unit]string{
	UnitPx:      "px",
	UnitEm:      "em",
	UnitRem:     "rem",
	UnitVw:      "vw",
	UnitVh:      "vh",
	UnitPercent: "%",
	UnitAuto:    "auto",
}

func (u Unit) String() string {
	return unitNames[u]
}

// Value is a property value: a closed tagged union over the supported
// value shapes. The zero Value has kind NoValue.
//
// Values are immutable once created; they are shared freely between rules,
// nodes and resolver results.
type Value struct {
	kind  ValueKind
	num   float64
	unit  Unit
	str   string
	color color.RGBA
	rect  *[4]Value
	boxed interface{}
}

// Number creates a numeric value.
func Number(n float64) Value {
	return Value{kind: NumberKind, num: n}
}

// Length creates a length value with a unit.
func Length(n float64, u Unit) Value {
	return Value{kind: LengthKind, num: n, unit: u}
}

// Auto creates the 'auto' length.
func Auto() Value {
	return Value{kind: LengthKind, unit: UnitAuto}
}

// Keyword creates a keyword value. Keywords are lower-cased.
func Keyword(kw string) Value {
	return Value{kind: KeywordKind, str: strings.ToLower(kw)}
}

// String creates a string value.
func String(s string) Value {
	return Value{kind: StringKind, str: s}
}

// Color creates a color value.
func Color(c color.RGBA) Value {
	return Value{kind: ColorKind, color: c}
}

// Rect creates a four-sided value (top, right, bottom, left).
func Rect(top, right, bottom, left Value) Value {
	return Value{kind: RectKind, rect: &[4]Value{top, right, bottom, left}}
}

// Boxed wraps an opaque payload into a value. The payload must be of a
// comparable type for Value.Equals to work.
func Boxed(v interface{}) Value {
	return Value{kind: BoxedKind, boxed: v}
}

// Kind returns the shape of a value.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsNone checks if v is the zero value, i.e. carries nothing.
func (v Value) IsNone() bool {
	return v.kind == NoValue
}

// AsNumber returns the numeric payload, if v is a number.
func (v Value) AsNumber() (float64, bool) {
	return v.num, v.kind == NumberKind
}

// AsLength returns the length payload, if v is a length. For the 'auto'
// length the returned unit is UnitAuto and the number is 0.
func (v Value) AsLength() (float64, Unit, bool) {
	return v.num, v.unit, v.kind == LengthKind
}

// AsKeyword returns the keyword, if v is a keyword.
func (v Value) AsKeyword() (string, bool) {
	return v.str, v.kind == KeywordKind
}

// AsString returns the string payload, if v is a string.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == StringKind
}

// AsColor returns the color payload, if v is a color.
func (v Value) AsColor() (color.RGBA, bool) {
	return v.color, v.kind == ColorKind
}

// AsRect returns the four sides (top, right, bottom, left), if v is a rect.
func (v Value) AsRect() ([4]Value, bool) {
	if v.kind != RectKind {
		return [4]Value{}, false
	}
	return *v.rect, true
}

// AsBoxed returns the boxed payload, if v is boxed.
func (v Value) AsBoxed() (interface{}, bool) {
	return v.boxed, v.kind == BoxedKind
}

// Equals compares two values for equality of kind and payload. The cascade
// resolver relies on this to decide if a newly resolved value differs from
// the one currently applied.
func (v Value) Equals(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case NoValue:
		return true
	case NumberKind:
		return v.num == other.num
	case LengthKind:
		return v.unit == other.unit && (v.unit == UnitAuto || v.num == other.num)
	case KeywordKind, StringKind:
		return v.str == other.str
	case ColorKind:
		return v.color == other.color
	case RectKind:
		for i := range v.rect {
			if !v.rect[i].Equals(other.rect[i]) {
				return false
			}
		}
		return true
	case BoxedKind:
		return v.boxed == other.boxed
	}
	return false
}

func (v Value) String() string {
	switch v.kind {
	case NumberKind:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case LengthKind:
		if v.unit == UnitAuto {
			return "auto"
		}
		return strconv.FormatFloat(v.num, 'g', -1, 64) + v.unit.String()
	case KeywordKind:
		return v.str
	case StringKind:
		return strconv.Quote(v.str)
	case ColorKind:
		if v.color.A != 0xff {
			return fmt.Sprintf("#%02x%02x%02x%02x", v.color.R, v.color.G, v.color.B, v.color.A)
		}
		return fmt.Sprintf("#%02x%02x%02x", v.color.R, v.color.G, v.color.B)
	case RectKind:
		return fmt.Sprintf("%s %s %s %s", v.rect[0], v.rect[1], v.rect[2], v.rect[3])
	case BoxedKind:
		return fmt.Sprintf("boxed(%v)", v.boxed)
	}
	return "<none>"
}

// --- Parsing ---------------------------------------------------------------

// Declaration values arrive as raw text; the primitive tokens are supplied
// by the gorilla/css scanner. The functions below turn a raw declaration
// string into a Value of a required shape. They are the building blocks
// for the Parse functions of PropertySpec.

// ParseNumber parses a plain numeric value, like "1.5".
func ParseNumber(raw string) (Value, error) {
	tokens, err := valueTokens(raw)
	if err != nil {
		return Value{}, err
	}
	if len(tokens) != 1 || tokens[0].Type != scanner.TokenNumber {
		return Value{}, fmt.Errorf("expected a number, have %q", raw)
	}
	n, err := strconv.ParseFloat(tokens[0].Value, 64)
	if err != nil {
		return Value{}, fmt.Errorf("malformed number %q", tokens[0].Value)
	}
	return Number(n), nil
}

// ParseLength parses a dimension ("12px", "1.5em"), a percentage ("50%"),
// a bare number (treated as px, as the original engine does), or "auto".
func ParseLength(raw string) (Value, error) {
	tokens, err := valueTokens(raw)
	if err != nil {
		return Value{}, err
	}
	if len(tokens) != 1 {
		return Value{}, fmt.Errorf("expected a single length, have %q", raw)
	}
	return lengthFromToken(tokens[0])
}

func lengthFromToken(t *scanner.Token) (Value, error) {
	switch t.Type {
	case scanner.TokenIdent:
		if strings.EqualFold(t.Value, "auto") {
			return Auto(), nil
		}
		return Value{}, fmt.Errorf("unknown length keyword %q", t.Value)
	case scanner.TokenNumber:
		n, err := strconv.ParseFloat(t.Value, 64)
		if err != nil {
			return Value{}, fmt.Errorf("malformed number %q", t.Value)
		}
		return Length(n, UnitPx), nil
	case scanner.TokenPercentage:
		n, err := strconv.ParseFloat(strings.TrimSuffix(t.Value, "%"), 64)
		if err != nil {
			return Value{}, fmt.Errorf("malformed percentage %q", t.Value)
		}
		return Length(n, UnitPercent), nil
	case scanner.TokenDimension:
		i := len(t.Value)
		for i > 0 && !isDigit(t.Value[i-1]) && t.Value[i-1] != '.' {
			i--
		}
		n, err := strconv.ParseFloat(t.Value[:i], 64)
		if err != nil {
			return Value{}, fmt.Errorf("malformed dimension %q", t.Value)
		}
		for u, name := range unitNames {
			if u != UnitAuto && u != UnitPercent && strings.EqualFold(t.Value[i:], name) {
				return Length(n, u), nil
			}
		}
		return Value{}, fmt.Errorf("unknown unit in %q", t.Value)
	}
	return Value{}, fmt.Errorf("expected a length, have %q", t.Value)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// ParseColor parses hash colors (#rgb, #rrggbb, #rrggbbaa) and a small set
// of named colors.
func ParseColor(raw string) (Value, error) {
	tokens, err := valueTokens(raw)
	if err != nil {
		return Value{}, err
	}
	if len(tokens) != 1 {
		return Value{}, fmt.Errorf("expected a single color, have %q", raw)
	}
	t := tokens[0]
	switch t.Type {
	case scanner.TokenHash:
		return hashColor(strings.TrimPrefix(t.Value, "#"))
	case scanner.TokenIdent:
		c, ok := namedColors[strings.ToLower(t.Value)]
		if !ok {
			return Value{}, fmt.Errorf("unknown color name %q", t.Value)
		}
		return Color(c), nil
	}
	return Value{}, fmt.Errorf("expected a color, have %q", t.Value)
}

func hashColor(hex string) (Value, error) {
	var c color.RGBA
	c.A = 0xff
	switch len(hex) {
	case 3:
		_, err := fmt.Sscanf(hex, "%1x%1x%1x", &c.R, &c.G, &c.B)
		if err != nil {
			return Value{}, fmt.Errorf("malformed hash color #%s", hex)
		}
		c.R *= 0x11
		c.G *= 0x11
		c.B *= 0x11
	case 6:
		_, err := fmt.Sscanf(hex, "%02x%02x%02x", &c.R, &c.G, &c.B)
		if err != nil {
			return Value{}, fmt.Errorf("malformed hash color #%s", hex)
		}
	case 8:
		_, err := fmt.Sscanf(hex, "%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
		if err != nil {
			return Value{}, fmt.Errorf("malformed hash color #%s", hex)
		}
	default:
		return Value{}, fmt.Errorf("malformed hash color #%s", hex)
	}
	return Color(c), nil
}

var namedColors = map[string]color.RGBA{
	"black":       {0x00, 0x00, 0x00, 0xff},
	"white":       {0xff, 0xff, 0xff, 0xff},
	"red":         {0xff, 0x00, 0x00, 0xff},
	"green":       {0x00, 0x80, 0x00, 0xff},
	"blue":        {0x00, 0x00, 0xff, 0xff},
	"yellow":      {0xff, 0xff, 0x00, 0xff},
	"gray":        {0x80, 0x80, 0x80, 0xff},
	"grey":        {0x80, 0x80, 0x80, 0xff},
	"transparent": {0x00, 0x00, 0x00, 0x00},
}

// ParseKeywordOf returns a parse function accepting exactly the given set
// of keywords (case-insensitive).
func ParseKeywordOf(keywords ...string) func(string) (Value, error) {
	allowed := make(map[string]bool, len(keywords))
	for _, kw := range keywords {
		allowed[strings.ToLower(kw)] = true
	}
	return func(raw string) (Value, error) {
		tokens, err := valueTokens(raw)
		if err != nil {
			return Value{}, err
		}
		if len(tokens) != 1 || tokens[0].Type != scanner.TokenIdent {
			return Value{}, fmt.Errorf("expected a keyword, have %q", raw)
		}
		kw := strings.ToLower(tokens[0].Value)
		if !allowed[kw] {
			return Value{}, fmt.Errorf("keyword %q not allowed here", kw)
		}
		return Keyword(kw), nil
	}
}

// ParseString parses a quoted string or a bare identifier.
func ParseString(raw string) (Value, error) {
	tokens, err := valueTokens(raw)
	if err != nil {
		return Value{}, err
	}
	if len(tokens) != 1 {
		return Value{}, fmt.Errorf("expected a single string, have %q", raw)
	}
	t := tokens[0]
	switch t.Type {
	case scanner.TokenString:
		return String(strings.Trim(t.Value, "\"'")), nil
	case scanner.TokenIdent:
		return String(t.Value), nil
	}
	return Value{}, fmt.Errorf("expected a string, have %q", t.Value)
}

// ParseRect parses 1 to 4 lengths into a four-sided value, with the usual
// CSS shorthand distribution (top right bottom left).
func ParseRect(raw string) (Value, error) {
	tokens, err := valueTokens(raw)
	if err != nil {
		return Value{}, err
	}
	if len(tokens) == 0 || len(tokens) > 4 {
		return Value{}, fmt.Errorf("expected 1…4 lengths, have %q", raw)
	}
	sides := make([]Value, len(tokens))
	for i, t := range tokens {
		if sides[i], err = lengthFromToken(t); err != nil {
			return Value{}, err
		}
	}
	switch len(sides) {
	case 1:
		return Rect(sides[0], sides[0], sides[0], sides[0]), nil
	case 2:
		return Rect(sides[0], sides[1], sides[0], sides[1]), nil
	case 3:
		return Rect(sides[0], sides[1], sides[2], sides[1]), nil
	}
	return Rect(sides[0], sides[1], sides[2], sides[3]), nil
}

// valueTokens scans a raw declaration value into its significant tokens,
// dropping whitespace and comments.
func valueTokens(raw string) ([]*scanner.Token, error) {
	s := scanner.New(raw)
	var tokens []*scanner.Token
	for {
		t := s.Next()
		switch t.Type {
		case scanner.TokenEOF:
			return tokens, nil
		case scanner.TokenError:
			return nil, fmt.Errorf("cannot scan value %q: %s", raw, t.Value)
		case scanner.TokenS, scanner.TokenComment:
			continue
		default:
			tokens = append(tokens, t)
		}
	}
}
