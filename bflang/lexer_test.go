package bflang

import (
	"os"
	"testing"
)

func TestLex(t *testing.T) {
	tests := []struct {
		input  string
		tokens []Token
	}{
		{
			input:  "",
			tokens: nil,
		},
		{
			input: "+-><.,[]",
			tokens: []Token{
				TokenIncrement,
				TokenDecrement,
				TokenMoveRight,
				TokenMoveLeft,
				TokenOutput,
				TokenInput,
				TokenLoopBegin,
				TokenLoopEnd,
			},
		},
		{
			input:  "this is a comment",
			tokens: nil,
		},
		{
			input: "inc + and dec -\n",
			tokens: []Token{
				TokenIncrement,
				TokenDecrement,
			},
		},
		{
			input: "\t[ loop body ]\t",
			tokens: []Token{
				TokenLoopBegin,
				TokenLoopEnd,
			},
		},
	}

	for _, test := range tests {
		tokens := Lex(test.input)
		if len(tokens) != len(test.tokens) {
			t.Fatalf("input %q: got %v", test.input, tokens)
		}
		for i, token := range tokens {
			if token != test.tokens[i] {
				t.Fatalf("input %q: got %v", test.input, tokens)
			}
		}
	}
}

func TestLexHelloWorld(t *testing.T) {
	content, err := os.ReadFile("testdata/hello-world.bf")
	if err != nil {
		t.Fatal(err)
	}
	tokens := Lex(string(content))
	if len(tokens) != 111 {
		t.Fatalf("got %d tokens", len(tokens))
	}
	if tokens[0] != TokenIncrement {
		t.Fatalf("got %v", tokens[0])
	}
	if tokens[len(tokens)-1] != TokenOutput {
		t.Fatalf("got %v", tokens[len(tokens)-1])
	}
}
