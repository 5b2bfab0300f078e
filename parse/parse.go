// Package parse turns a JSON-encoded byte slice into a value.Document
// using an explicit work stack rather than recursive descent, so nesting
// depth is bounded only by available memory, not goroutine stack growth.
package parse

import (
	"fmt"

	"github.com/vellumjson/vellum/arena"
	"github.com/vellumjson/vellum/scan"
	"github.com/vellumjson/vellum/value"
)

type frameKind uint8

const (
	frameArray frameKind = iota
	frameObject
)

// frameState tracks what token is valid next for the container on top of
// the work stack.
type frameState uint8

const (
	stateWantFirst frameState = iota // no elements yet: value/key or closer
	stateWantNext                    // after an element: ',' or closer
	stateWantValue                    // object only: colon just consumed
)

type frame struct {
	kind  frameKind
	state frameState
	arr   *arrayDeque
	obj   *objectDeque
	key   []byte
}

// Parse decodes d into a Document, which must be released with
// Document.Close once the caller is done reading it.
func Parse(d []byte, opts ...Option) (*value.Document, error) {
	o := &parseOpts{}
	for _, f := range opts {
		f(o)
	}
	a := o.arena
	owns := a == nil
	if owns {
		a = arena.New()
	}
	root, err := build(d, a, o)
	if err != nil {
		if owns {
			a.Release()
		}
		return nil, err
	}
	return value.NewDocument(a, root), nil
}

func build(d []byte, a *arena.Arena, o *parseOpts) (value.Value, error) {
	var zero value.Value
	pos := skipWS(d, 0)
	if pos >= len(d) {
		return zero, newParseError(UnexpectedEndOfInput, pos, "no value found")
	}

	var stack []*frame
	var root value.Value
	haveRoot := false

	attach := func(v value.Value) {
		if len(stack) == 0 {
			root = v
			haveRoot = true
			return
		}
		top := stack[len(stack)-1]
		switch top.kind {
		case frameArray:
			*top.arr.push() = v
		case frameObject:
			e := top.obj.push()
			e.key = top.key
			e.val = v
			top.key = nil
		}
		top.state = stateWantNext
	}

	pop := func() {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		var v value.Value
		switch top.kind {
		case frameArray:
			items := top.arr.commit(a)
			v = value.NewArenaArray(a, items)
		case frameObject:
			keys, vals := top.obj.commit(a)
			v = value.NewArenaObject(a, keys, vals)
		}
		attach(v)
	}

	for {
		if len(stack) == 0 && haveRoot {
			pos = skipWS(d, pos)
			if pos != len(d) {
				return zero, newParseError(TrailingGarbage, pos, "trailing garbage after top-level value")
			}
			return root, nil
		}

		pos = skipWS(d, pos)
		if pos >= len(d) {
			return zero, newParseError(UnexpectedEndOfInput, pos, "unexpected end of input")
		}

		var top *frame
		if len(stack) > 0 {
			top = stack[len(stack)-1]
		}

		if top != nil && top.kind == frameObject && top.state != stateWantValue {
			c := d[pos]
			if c == '}' {
				pos++
				pop()
				continue
			}
			if c == ',' {
				if top.state != stateWantNext {
					return zero, newParseError(UnexpectedToken, pos, "unexpected ','")
				}
				pos++
				pos = skipWS(d, pos)
				if pos >= len(d) {
					return zero, newParseError(UnexpectedEndOfInput, pos, "unexpected end of input")
				}
				c = d[pos]
				if c != '"' {
					return zero, newParseError(ExpectedKeyString, pos, "expected key string")
				}
			} else if top.state == stateWantNext {
				return zero, newParseError(ExpectedComma, pos, "expected ','")
			} else if c != '"' {
				return zero, newParseError(ExpectedKeyString, pos, "expected key string")
			}

			keyBytes, n, err := readString(d, pos, a)
			if err != nil {
				return zero, err
			}
			pos += n
			pos = skipWS(d, pos)
			if pos >= len(d) || d[pos] != ':' {
				return zero, newParseError(ExpectedColon, pos, "expected ':'")
			}
			pos++
			top.key = keyBytes
			top.state = stateWantValue
			continue
		}

		if top != nil && top.kind == frameArray && top.state == stateWantNext {
			c := d[pos]
			if c == ']' {
				pos++
				pop()
				continue
			}
			if c != ',' {
				return zero, newParseError(ExpectedComma, pos, "expected ','")
			}
			pos++
			pos = skipWS(d, pos)
			if pos >= len(d) {
				return zero, newParseError(UnexpectedEndOfInput, pos, "unexpected end of input")
			}
		}

		if top != nil && top.kind == frameArray && top.state == stateWantFirst && d[pos] == ']' {
			pos++
			pop()
			continue
		}

		// A value is expected: a scalar, or the opening of a new container.
		switch d[pos] {
		case '{':
			if o.maxDepth > 0 && len(stack)+1 > o.maxDepth {
				return zero, fmt.Errorf("parse: %w at offset %d", ErrMaxDepthExceeded, pos)
			}
			pos++
			stack = append(stack, &frame{kind: frameObject, state: stateWantFirst, obj: &objectDeque{}})
		case '[':
			if o.maxDepth > 0 && len(stack)+1 > o.maxDepth {
				return zero, fmt.Errorf("parse: %w at offset %d", ErrMaxDepthExceeded, pos)
			}
			pos++
			stack = append(stack, &frame{kind: frameArray, state: stateWantFirst, arr: &arrayDeque{}})
		case '"':
			s, n, err := readString(d, pos, a)
			if err != nil {
				return zero, err
			}
			pos += n
			attach(value.NewArenaString(a, s))
		case 't':
			if !hasLiteral(d, pos, "true") {
				return zero, newParseError(UnexpectedToken, pos, "invalid literal")
			}
			pos += 4
			attach(value.NewArenaBool(a, true))
		case 'f':
			if !hasLiteral(d, pos, "false") {
				return zero, newParseError(UnexpectedToken, pos, "invalid literal")
			}
			pos += 5
			attach(value.NewArenaBool(a, false))
		case 'n':
			if !hasLiteral(d, pos, "null") {
				return zero, newParseError(UnexpectedToken, pos, "invalid literal")
			}
			pos += 4
			attach(value.NewArenaNull(a))
		case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			n, kind, iv, uv, fv, err := scan.Number(d[pos:])
			if err != nil {
				return zero, numberError(err, pos)
			}
			switch kind {
			case scan.NumInt:
				attach(value.NewArenaInt(a, iv))
			case scan.NumUint:
				attach(value.NewArenaUint(a, uv))
			case scan.NumFloat:
				attach(value.NewArenaFloat(a, fv))
			}
			pos += n
		default:
			return zero, newParseError(UnexpectedToken, pos, fmt.Sprintf("unexpected character %q", d[pos]))
		}
	}
}

func numberError(err error, pos int) error {
	switch err {
	case scan.ErrNumberOverflow:
		return newParseError(NumberOverflow, pos, "number overflow")
	default:
		return newParseError(InvalidNumber, pos, "invalid number")
	}
}

func readString(d []byte, pos int, a *arena.Arena) ([]byte, int, error) {
	n, raw, hasEscapes, err := scan.String(d[pos:])
	if err != nil {
		return nil, 0, stringError(err, pos)
	}
	if !hasEscapes {
		return a.AllocBytes(raw), n, nil
	}
	dst, err := scan.Decode(raw, nil)
	if err != nil {
		return nil, 0, stringError(err, pos)
	}
	return a.AllocBytes(dst), n, nil
}

func stringError(err error, pos int) error {
	switch err {
	case scan.ErrUnterminatedString:
		return newParseError(UnterminatedString, pos, "unterminated string")
	case scan.ErrInvalidEscape:
		return newParseError(InvalidEscape, pos, "invalid escape sequence")
	case scan.ErrInvalidUTF16CodeUnit:
		return newParseError(InvalidUTF16CodeUnit, pos, "invalid utf-16 code unit")
	case scan.ErrInvalidUTF8Codepoint:
		return newParseError(InvalidUTF8Codepoint, pos, "invalid utf-8 codepoint")
	default:
		return newParseError(UnexpectedToken, pos, "invalid string")
	}
}

func hasLiteral(d []byte, pos int, lit string) bool {
	if pos+len(lit) > len(d) {
		return false
	}
	return string(d[pos:pos+len(lit)]) == lit
}

func skipWS(d []byte, pos int) int {
	for pos < len(d) {
		switch d[pos] {
		case ' ', '\t', '\n', '\r':
			pos++
		default:
			return pos
		}
	}
	return pos
}
