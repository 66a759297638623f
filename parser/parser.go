// parser/parser.go
package parser

import (
	"fmt"

	"wx-yz/bfc/debug"
	"wx-yz/bfc/lexer"
)

// Severity classifies a parse error for the alternative-trying block loop.
// A recoverable error means "this token does not start a statement, let the
// caller decide there are no more statements"; a fatal error aborts parsing
// immediately with no further alternatives attempted. Only the recoverable
// severity is produced today; fatal is the extension point for constructs
// that must not allow backtracking.
type Severity int

const (
	SeverityRecoverable Severity = iota
	SeverityFatal
)

// ErrorKind identifies the concrete parse failure.
type ErrorKind int

const (
	// ErrUnexpectedToken reports a token that starts no valid statement
	// and is not a legal block terminator at this point.
	ErrUnexpectedToken ErrorKind = iota
	// ErrEndOfInput reports that the token stream ended while a specific
	// token was still expected.
	ErrEndOfInput
)

// Error is a classified parse error. Token is valid only for
// ErrUnexpectedToken.
type Error struct {
	Severity Severity
	Kind     ErrorKind
	Token    lexer.Token
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrUnexpectedToken:
		return fmt.Sprintf("unexpected token %s at offset %d", e.Token, e.Token.Pos)
	case ErrEndOfInput:
		return "unexpected end of input"
	default:
		return fmt.Sprintf("unknown parse error kind %d", e.Kind)
	}
}

func unexpectedToken(tok lexer.Token) *Error {
	return &Error{Severity: SeverityRecoverable, Kind: ErrUnexpectedToken, Token: tok}
}

func endOfInput() *Error {
	return &Error{Severity: SeverityRecoverable, Kind: ErrEndOfInput}
}

// Parser holds the state of the parser.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// NewParser creates a new Parser over a token sequence.
func NewParser(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) currentToken() (lexer.Token, bool) {
	if p.pos >= len(p.tokens) {
		return lexer.Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *Parser) nextToken() {
	if p.pos < len(p.tokens) {
		p.pos++
	}
}

// expectToken consumes the current token if it has the wanted type and
// returns a classified error otherwise.
func (p *Parser) expectToken(t lexer.TokenType) *Error {
	tok, ok := p.currentToken()
	if !ok {
		return endOfInput()
	}
	if tok.Type != t {
		return unexpectedToken(tok)
	}
	p.nextToken()
	return nil
}

// Parse is the top-level entry point. The outer block must consume the
// entire token stream; if tokens remain (such as a stray LoopClose), the
// recoverable error that ended the block is reported as the parse failure.
func (p *Parser) Parse() (*Block, error) {
	block, term := p.parseBlock()
	if term.Severity == SeverityFatal {
		return nil, term
	}
	if _, ok := p.currentToken(); ok {
		return nil, term
	}
	debug.PrintParser("parsed %d top-level statements", len(block.Statements))
	return block, nil
}

// parseBlock is greedy-and-stop: it parses statements until the first
// recoverable mismatch, which ends the block with the offending tokens left
// unconsumed. The terminating error is always returned alongside the block
// so callers can surface it when the block was required to consume more;
// a fatal error propagates unchanged with a nil block.
func (p *Parser) parseBlock() (*Block, *Error) {
	block := &Block{}
	for {
		start := p.pos
		stmt, err := p.parseStatement()
		if err != nil {
			if err.Severity == SeverityFatal {
				return nil, err
			}
			p.pos = start
			return block, err
		}
		block.Statements = append(block.Statements, stmt)
	}
}

func (p *Parser) parseStatement() (Statement, *Error) {
	tok, ok := p.currentToken()
	if !ok {
		return nil, endOfInput()
	}

	switch tok.Type {
	case lexer.TokenMoveLeft:
		p.nextToken()
		return &MoveLeftStatement{Count: tok.Count}, nil
	case lexer.TokenMoveRight:
		p.nextToken()
		return &MoveRightStatement{Count: tok.Count}, nil
	case lexer.TokenIncrement:
		p.nextToken()
		return &AddStatement{Count: tok.Count}, nil
	case lexer.TokenDecrement:
		p.nextToken()
		return &SubtractStatement{Count: tok.Count}, nil
	case lexer.TokenRead:
		p.nextToken()
		return &ReadStatement{}, nil
	case lexer.TokenWrite:
		p.nextToken()
		return &WriteStatement{}, nil
	case lexer.TokenLoopOpen:
		p.nextToken()
		body, term := p.parseBlock()
		if term.Severity == SeverityFatal {
			return nil, term
		}
		if err := p.expectToken(lexer.TokenLoopClose); err != nil {
			return nil, err
		}
		return &LoopStatement{Body: body}, nil
	default:
		return nil, unexpectedToken(tok)
	}
}
