// lexer/lexer.go
package lexer

import "fmt"

// TokenType represents the type of a token.
type TokenType int

const (
	TokenMoveLeft  TokenType = iota // < (run-length coalesced)
	TokenMoveRight                  // > (run-length coalesced)
	TokenIncrement                  // + (run-length coalesced)
	TokenDecrement                  // - (run-length coalesced)
	TokenRead                       // ,
	TokenWrite                      // .
	TokenLoopOpen                   // [
	TokenLoopClose                  // ]
)

// String returns a string representation of the token type.
func (t TokenType) String() string {
	switch t {
	case TokenMoveLeft:
		return "MoveLeft"
	case TokenMoveRight:
		return "MoveRight"
	case TokenIncrement:
		return "Increment"
	case TokenDecrement:
		return "Decrement"
	case TokenRead:
		return "Read"
	case TokenWrite:
		return "Write"
	case TokenLoopOpen:
		return "LoopOpen"
	case TokenLoopClose:
		return "LoopClose"
	default:
		return fmt.Sprintf("UnknownToken(%d)", t)
	}
}

// Token represents a lexical token. Count is the length of the coalesced
// run for the four directional/arithmetic tokens and is always >= 1 there;
// it is 0 for the single-character tokens. Pos is the byte offset of the
// token's first source character.
type Token struct {
	Type  TokenType
	Count int
	Pos   int
}

// String renders a token for error messages and debug output.
func (t Token) String() string {
	switch t.Type {
	case TokenMoveLeft, TokenMoveRight, TokenIncrement, TokenDecrement:
		return fmt.Sprintf("%s(%d)", t.Type, t.Count)
	default:
		return t.Type.String()
	}
}

// Lexer transforms a string of source code into a slice of Tokens.
type Lexer struct {
	source string
	pos    int
}

// NewLexer creates a new Lexer.
func NewLexer(source string) *Lexer {
	return &Lexer{source: source}
}

// readRun consumes the maximal run of the byte at the current position and
// returns its length.
func (l *Lexer) readRun() int {
	ch := l.source[l.pos]
	start := l.pos
	for l.pos < len(l.source) && l.source[l.pos] == ch {
		l.pos++
	}
	return l.pos - start
}

// Lex performs lexical analysis and returns the token sequence. Lexing is
// total: any byte outside the eight-symbol set is commentary and is skipped,
// so there is no error return.
func (l *Lexer) Lex() []Token {
	var tokens []Token

	for l.pos < len(l.source) {
		tok := Token{Pos: l.pos}

		switch l.source[l.pos] {
		case '<':
			tok.Type = TokenMoveLeft
			tok.Count = l.readRun()
		case '>':
			tok.Type = TokenMoveRight
			tok.Count = l.readRun()
		case '+':
			tok.Type = TokenIncrement
			tok.Count = l.readRun()
		case '-':
			tok.Type = TokenDecrement
			tok.Count = l.readRun()
		case ',':
			tok.Type = TokenRead
			l.pos++
		case '.':
			tok.Type = TokenWrite
			l.pos++
		case '[':
			tok.Type = TokenLoopOpen
			l.pos++
		case ']':
			tok.Type = TokenLoopClose
			l.pos++
		default:
			// Commentary; no token.
			l.pos++
			continue
		}
		tokens = append(tokens, tok)
	}

	return tokens
}
