// parser/ast.go
package parser

import (
	"fmt"
	"strings"
)

// Attr is the attribute slot attached to every AST node. It is empty today
// and reserved for metadata such as source positions.
type Attr struct{}

// Node is the interface for all AST nodes.
type Node interface {
	String() string
	writeTree(sb *strings.Builder, depth int)
}

// Statement is a sub-interface for statement nodes.
type Statement interface {
	Node
	statementNode()
}

// Block represents an ordered sequence of statements. Statement order is
// execution order. A Block is owned by the program root or by exactly one
// enclosing LoopStatement; the AST is a strict tree.
type Block struct {
	Attr       Attr
	Statements []Statement
}

func (b *Block) String() string {
	var sb strings.Builder
	b.writeTree(&sb, 0)
	return sb.String()
}

func (b *Block) writeTree(sb *strings.Builder, depth int) {
	indent(sb, depth)
	sb.WriteString("Block\n")
	for _, stmt := range b.Statements {
		stmt.writeTree(sb, depth+1)
	}
}

func indent(sb *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteString("  ")
	}
}

// MoveLeftStatement moves the tape pointer Count cells to the left.
type MoveLeftStatement struct {
	Attr  Attr
	Count int
}

func (s *MoveLeftStatement) String() string { return fmt.Sprintf("MoveLeft(%d)", s.Count) }
func (s *MoveLeftStatement) writeTree(sb *strings.Builder, depth int) {
	indent(sb, depth)
	sb.WriteString(s.String() + "\n")
}
func (s *MoveLeftStatement) statementNode() {}

// MoveRightStatement moves the tape pointer Count cells to the right.
type MoveRightStatement struct {
	Attr  Attr
	Count int
}

func (s *MoveRightStatement) String() string { return fmt.Sprintf("MoveRight(%d)", s.Count) }
func (s *MoveRightStatement) writeTree(sb *strings.Builder, depth int) {
	indent(sb, depth)
	sb.WriteString(s.String() + "\n")
}
func (s *MoveRightStatement) statementNode() {}

// AddStatement adds Count to the current cell.
type AddStatement struct {
	Attr  Attr
	Count int
}

func (s *AddStatement) String() string { return fmt.Sprintf("Add(%d)", s.Count) }
func (s *AddStatement) writeTree(sb *strings.Builder, depth int) {
	indent(sb, depth)
	sb.WriteString(s.String() + "\n")
}
func (s *AddStatement) statementNode() {}

// SubtractStatement subtracts Count from the current cell.
type SubtractStatement struct {
	Attr  Attr
	Count int
}

func (s *SubtractStatement) String() string { return fmt.Sprintf("Subtract(%d)", s.Count) }
func (s *SubtractStatement) writeTree(sb *strings.Builder, depth int) {
	indent(sb, depth)
	sb.WriteString(s.String() + "\n")
}
func (s *SubtractStatement) statementNode() {}

// ReadStatement reads one byte from stdin into the current cell.
type ReadStatement struct {
	Attr Attr
}

func (s *ReadStatement) String() string { return "Read" }
func (s *ReadStatement) writeTree(sb *strings.Builder, depth int) {
	indent(sb, depth)
	sb.WriteString(s.String() + "\n")
}
func (s *ReadStatement) statementNode() {}

// WriteStatement writes the current cell as one byte to stdout.
type WriteStatement struct {
	Attr Attr
}

func (s *WriteStatement) String() string { return "Write" }
func (s *WriteStatement) writeTree(sb *strings.Builder, depth int) {
	indent(sb, depth)
	sb.WriteString(s.String() + "\n")
}
func (s *WriteStatement) statementNode() {}

// LoopStatement runs Body repeatedly while the current cell is nonzero. It
// exclusively owns its nested Block.
type LoopStatement struct {
	Attr Attr
	Body *Block
}

func (s *LoopStatement) String() string { return "Loop" }
func (s *LoopStatement) writeTree(sb *strings.Builder, depth int) {
	indent(sb, depth)
	sb.WriteString("Loop\n")
	s.Body.writeTree(sb, depth+1)
}
func (s *LoopStatement) statementNode() {}
