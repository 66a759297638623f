package lexer_test

import (
	"strings"
	"testing"

	"wx-yz/bfc/lexer"
)

func TestRunLengthCoalescing(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		expect []lexer.Token
	}{
		{
			name:   "Single Plus",
			src:    "+",
			expect: []lexer.Token{{Type: lexer.TokenIncrement, Count: 1}},
		},
		{
			name:   "Run Of Three",
			src:    ">>>",
			expect: []lexer.Token{{Type: lexer.TokenMoveRight, Count: 3}},
		},
		{
			name: "Alternating Runs",
			src:  "<<++>>--",
			expect: []lexer.Token{
				{Type: lexer.TokenMoveLeft, Count: 2},
				{Type: lexer.TokenIncrement, Count: 2, Pos: 2},
				{Type: lexer.TokenMoveRight, Count: 2, Pos: 4},
				{Type: lexer.TokenDecrement, Count: 2, Pos: 6},
			},
		},
		{
			name: "Long Run",
			src:  strings.Repeat("+", 300),
			expect: []lexer.Token{
				{Type: lexer.TokenIncrement, Count: 300},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := lexer.NewLexer(tt.src).Lex()
			if len(tokens) != len(tt.expect) {
				t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(tt.expect), tokens)
			}
			for i, want := range tt.expect {
				if tokens[i] != want {
					t.Errorf("token %d: got %v, want %v", i, tokens[i], want)
				}
			}
		})
	}
}

func TestSingleCharacterTokens(t *testing.T) {
	tokens := lexer.NewLexer(".,[]").Lex()

	expect := []lexer.TokenType{
		lexer.TokenWrite,
		lexer.TokenRead,
		lexer.TokenLoopOpen,
		lexer.TokenLoopClose,
	}
	if len(tokens) != len(expect) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(expect))
	}
	for i, want := range expect {
		if tokens[i].Type != want {
			t.Errorf("token %d: got %v, want %v", i, tokens[i].Type, want)
		}
		if tokens[i].Count != 0 {
			t.Errorf("token %d: single-character token carries count %d", i, tokens[i].Count)
		}
	}
}

func TestCommentaryIsSkipped(t *testing.T) {
	// Commentary produces no token, but it still breaks a run in two.
	tokens := lexer.NewLexer("+ comment +").Lex()
	if len(tokens) != 2 {
		t.Fatalf("got %d tokens, want 2: %v", len(tokens), tokens)
	}
	for i, tok := range tokens {
		if tok.Type != lexer.TokenIncrement || tok.Count != 1 {
			t.Errorf("token %d: got %v, want Increment(1)", i, tok)
		}
	}
}

func TestLexingIsTotal(t *testing.T) {
	inputs := []string{
		"",
		"hello world",
		"\x00\xff\xfe",
		"日本語のコメント+",
		"[->+<] a loop with commentary\n\t",
	}
	for _, src := range inputs {
		tokens := lexer.NewLexer(src).Lex()
		for _, tok := range tokens {
			switch tok.Type {
			case lexer.TokenMoveLeft, lexer.TokenMoveRight, lexer.TokenIncrement, lexer.TokenDecrement:
				if tok.Count < 1 {
					t.Errorf("input %q: token %v has count < 1", src, tok)
				}
			}
		}
	}
}

func TestEmptyInput(t *testing.T) {
	if tokens := lexer.NewLexer("").Lex(); len(tokens) != 0 {
		t.Errorf("empty input lexed to %d tokens, want 0", len(tokens))
	}
}

func TestTokenPositions(t *testing.T) {
	tokens := lexer.NewLexer(">>> .").Lex()
	if len(tokens) != 2 {
		t.Fatalf("got %d tokens, want 2", len(tokens))
	}
	if tokens[0].Pos != 0 {
		t.Errorf("first token at offset %d, want 0", tokens[0].Pos)
	}
	if tokens[1].Pos != 4 {
		t.Errorf("second token at offset %d, want 4", tokens[1].Pos)
	}
}
