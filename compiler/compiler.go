// compiler/compiler.go
package compiler

import (
	"fmt"

	"wx-yz/bfc/backend"
	"wx-yz/bfc/debug"
	"wx-yz/bfc/lexer"
	"wx-yz/bfc/parser"
)

// Compiler orchestrates the compilation pipeline: source text to tokens to
// AST to textual IR module. Each stage completes fully before the next
// begins.
type Compiler struct{}

// NewCompiler creates a new Compiler instance.
func NewCompiler() *Compiler {
	return &Compiler{}
}

// Compile takes source code as input and returns the generated module text
// or a classified error. A parse failure aborts the whole compilation with
// no partial output.
func (c *Compiler) Compile(source string) (string, error) {
	tokens := lexer.NewLexer(source).Lex()
	debug.PrintLexer("lexed %d tokens from %d source bytes", len(tokens), len(source))

	prog, err := parser.NewParser(tokens).Parse()
	if err != nil {
		return "", fmt.Errorf("parsing error: %w", err)
	}

	out, err := backend.NewCodeGenerator().Generate(prog)
	if err != nil {
		return "", fmt.Errorf("code generation error: %w", err)
	}

	return out, nil
}

// ParseAST runs only the front half of the pipeline and returns the AST,
// for callers that want the tree debug view.
func (c *Compiler) ParseAST(source string) (*parser.Block, error) {
	tokens := lexer.NewLexer(source).Lex()
	prog, err := parser.NewParser(tokens).Parse()
	if err != nil {
		return nil, fmt.Errorf("parsing error: %w", err)
	}
	return prog, nil
}
