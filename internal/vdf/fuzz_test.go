package vdf

import "testing"

func FuzzParse(f *testing.F) {
	seeds := []string{
		``,
		`"A" "1"`,
		`"A" { "B" "1" "C" { "D" "2" } }`,
		`"A" { "B" "1"`,
		`} } {`,
		`"unterminated`,
		`"a{b}" { "}" "{" }`,
		"// comment\n\"AppState\"\n{\n\t\"appid\"\t\"10\"\n}\n",
		`"O" { "k" } "next" "v" }`,
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		tokens := Tokenize(input)
		for _, tok := range tokens {
			if tok.Type != TString && tok.Text != "" {
				t.Fatalf("brace token carries text: %v", tok)
			}
		}
		if Parse(tokens) == nil {
			t.Fatal("Parse returned nil root")
		}
	})
}
