package vdf

import (
	"reflect"
	"testing"
)

func TestTokenizeBasic(t *testing.T) {
	input := `// header comment
"AppState"
{
	"appid"		"730"
	bare words are skipped
}`
	got := Tokenize(input)
	want := []Token{
		{Type: TString, Text: "AppState"},
		{Type: TOpen},
		{Type: TString, Text: "appid"},
		{Type: TString, Text: "730"},
		{Type: TClose},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected tokens:\n got %v\nwant %v", got, want)
	}
}

func TestTokenizeKeepsBracesInsideQuotes(t *testing.T) {
	got := Tokenize(`"a{b}c" "}" "{"`)
	want := []Token{
		{Type: TString, Text: "a{b}c"},
		{Type: TString, Text: "}"},
		{Type: TString, Text: "{"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected tokens:\n got %v\nwant %v", got, want)
	}
}

func TestTokenizeEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{name: "empty", input: "", want: nil},
		{name: "empty string", input: `""`, want: []Token{{Type: TString, Text: ""}}},
		{name: "multiline string", input: "\"a\nb\"", want: []Token{{Type: TString, Text: "a\nb"}}},
		{
			name:  "unterminated quote is skipped",
			input: `"abc { }`,
			want:  []Token{{Type: TOpen}, {Type: TClose}},
		},
		{
			name:  "escape is not special",
			input: `"a\" "b"`,
			want:  []Token{{Type: TString, Text: `a\`}, {Type: TString, Text: "b"}},
		},
		{name: "only noise", input: "// x\n\t#base file.vdf\n", want: nil},
		{name: "utf8", input: `"名前" "ゲーム"`, want: []Token{{Type: TString, Text: "名前"}, {Type: TString, Text: "ゲーム"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Tokenize(%q):\n got %v\nwant %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenTypeString(t *testing.T) {
	if TOpen.String() != "TOpen" {
		t.Fatalf("unexpected name %q", TOpen.String())
	}
	if TokenType(42).String() != "TokenType(42)" {
		t.Fatalf("unexpected name %q", TokenType(42).String())
	}
}
