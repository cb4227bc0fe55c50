package vdf

import "fmt"

type TokenType int

const (
	TString TokenType = iota
	TOpen
	TClose
)

func (t TokenType) String() string {
	switch t {
	case TString:
		return "TString"
	case TOpen:
		return "TOpen"
	case TClose:
		return "TClose"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token is one lexical unit. Text is only set for TString.
type Token struct {
	Type TokenType
	Text string
}

func (t Token) String() string {
	if t.Type == TString {
		return fmt.Sprintf("%s %q", t.Type, t.Text)
	}
	return t.Type.String()
}

// Tokenize scans text left to right for quoted strings, '{' and '}'.
// Everything else is skipped. A '"' with no closing quote after it is
// skipped as a single character and scanning resumes right after it.
func Tokenize(text string) []Token {
	var tokens []Token
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '"':
			end := indexQuote(text, i+1)
			if end < 0 {
				continue
			}
			tokens = append(tokens, Token{Type: TString, Text: text[i+1 : end]})
			i = end
		case '{':
			tokens = append(tokens, Token{Type: TOpen})
		case '}':
			tokens = append(tokens, Token{Type: TClose})
		}
	}
	return tokens
}

func indexQuote(text string, from int) int {
	for j := from; j < len(text); j++ {
		if text[j] == '"' {
			return j
		}
	}
	return -1
}
