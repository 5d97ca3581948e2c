package selector

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/gorilla/css/scanner"
)

// ParseError is returned for malformed selector text. It carries the
// source position of the offending token for diagnostics; formatting a
// user-facing message is left to the caller.
type ParseError struct {
	Msg    string
	Line   int
	Column int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("selector: %s at %d:%d", e.Msg, e.Line, e.Column)
}

func parseError(msg string, t *scanner.Token) *ParseError {
	return &ParseError{Msg: msg, Line: t.Line, Column: t.Column}
}

/*
Grammar: a selector is one or more segments, separated by mandatory
whitespace. Within a segment

	identifier    tag matcher
	#identifier   id matcher
	.identifier   class matcher
	:identifier   state matcher
	[identifier]  attribute-presence matcher

The primitive tokens come from the gorilla/css scanner; this parser is its
only caller for selector text. Whitespace always yields a segment
boundary, so consecutive segments with no separator cannot occur.
*/

// Parse parses a selector string into its AST and precomputes the
// selector's specificity.
func Parse(text string) (*Selector, error) {
	s := scanner.New(text)
	sel := &Selector{source: text}
	var seg Segment
	var pending byte // delimiter waiting for its identifier: '.', ':' or '['

	closeSegment := func() {
		if len(seg.Matchers) > 0 {
			sel.segments = append(sel.segments, seg)
			seg = Segment{}
		}
	}

	for {
		t := s.Next()
		switch t.Type {
		case scanner.TokenEOF:
			if pending != 0 {
				return nil, parseError(fmt.Sprintf("unterminated %q matcher", pending), t)
			}
			closeSegment()
			if len(sel.segments) == 0 {
				return nil, parseError("empty selector", t)
			}
			sel.computeSpecificity()
			tracer().Debugf("parsed selector %q, specificity %v", sel, sel.spec)
			return sel, nil
		case scanner.TokenError:
			return nil, parseError(fmt.Sprintf("cannot scan: %s", t.Value), t)
		case scanner.TokenS:
			if pending != 0 {
				return nil, parseError(fmt.Sprintf("unterminated %q matcher", pending), t)
			}
			closeSegment()
		case scanner.TokenComment:
			// ignored, like whitespace within a segment would be an error,
			// but comments only occur between tokens
		case scanner.TokenIdent:
			switch pending {
			case '.':
				seg.add(Matcher{Kind: ClassMatcher, Name: t.Value})
			case ':':
				seg.add(Matcher{Kind: StateMatcher, Name: t.Value})
			case '[':
				seg.add(Matcher{Kind: AttrMatcher, Name: t.Value})
				if err := expectChar(s, ']'); err != nil {
					return nil, err
				}
			default:
				if len(seg.Matchers) > 0 {
					return nil, parseError(fmt.Sprintf("unexpected identifier %q", t.Value), t)
				}
				seg.add(Matcher{Kind: TagMatcher, Name: t.Value})
			}
			pending = 0
		case scanner.TokenHash:
			if pending != 0 {
				return nil, parseError(fmt.Sprintf("unterminated %q matcher", pending), t)
			}
			name := t.Value
			if len(name) > 0 && name[0] == '#' {
				name = name[1:]
			}
			if name == "" {
				return nil, parseError("empty id matcher", t)
			}
			seg.add(Matcher{Kind: IDMatcher, Name: name})
		case scanner.TokenChar:
			if pending != 0 {
				return nil, parseError(fmt.Sprintf("unterminated %q matcher", pending), t)
			}
			switch t.Value {
			case ".", ":", "[":
				pending = t.Value[0]
			default:
				return nil, parseError(fmt.Sprintf("unexpected token %q", t.Value), t)
			}
		default:
			return nil, parseError(fmt.Sprintf("unexpected token %q", t.Value), t)
		}
	}
}

// expectChar consumes the next token and checks it to be the given
// delimiter character.
func expectChar(s *scanner.Scanner, c byte) error {
	t := s.Next()
	if t.Type != scanner.TokenChar || t.Value != string(c) {
		return parseError(fmt.Sprintf("expected %q, have %q", c, t.Value), t)
	}
	return nil
}

// MustParse is Parse for statically known selector text; it panics on
// malformed input. Intended for tests and built-in default sheets.
func MustParse(text string) *Selector {
	sel, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return sel
}
