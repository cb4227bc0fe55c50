package vdf

import (
	"fmt"

	"steamtools/internal/textutil"
)

// Parse builds the tree for a token stream. The root is always an object.
func Parse(tokens []Token) Object {
	p := &parser{tokens: tokens}
	return p.object(false)
}

// ParseString tokenizes and parses text in one step.
func ParseString(text string) Object {
	return Parse(Tokenize(text))
}

// ParseFile reads path with best-effort decoding and parses it. Only the
// read can fail.
func ParseFile(path string) (Object, error) {
	text, err := textutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseString(text), nil
}

type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) next() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	tok := p.tokens[p.pos]
	p.pos++
	return tok, true
}

// object consumes key/value pairs until the matching '}' (nested only) or
// the end of input.
//
// A key followed by '}' gets no value and the '}' is consumed as the value
// slot, so the enclosing object stays open.
func (p *parser) object(nested bool) Object {
	obj := Object{}
	for {
		tok, ok := p.next()
		if !ok {
			return obj
		}
		switch tok.Type {
		case TClose:
			if nested {
				return obj
			}
			continue
		case TOpen:
			continue
		}

		key := tok.Text
		value, ok := p.next()
		if !ok {
			return obj
		}
		switch value.Type {
		case TOpen:
			obj[key] = p.object(true)
		case TString:
			obj[key] = Scalar(value.Text)
		}
	}
}
