// backend/generate_statement.go
package backend

import (
	"fmt"

	"wx-yz/bfc/debug"
	"wx-yz/bfc/parser"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// generateBlock lowers a block's statements in order. Lowering a statement
// may split control flow, so the current basic block is threaded through
// and the block generation ends in is returned.
func (cg *CodeGenerator) generateBlock(b *ir.Block, block *parser.Block) *ir.Block {
	for _, stmt := range block.Statements {
		b = cg.generateStatement(b, stmt)
	}
	return b
}

func (cg *CodeGenerator) generateStatement(b *ir.Block, stmt parser.Statement) *ir.Block {
	switch s := stmt.(type) {
	case *parser.MoveLeftStatement:
		return cg.generateMove(b, -int64(s.Count))
	case *parser.MoveRightStatement:
		return cg.generateMove(b, int64(s.Count))
	case *parser.AddStatement:
		cg.generateCellArith(b, s.Count, false)
		return b
	case *parser.SubtractStatement:
		cg.generateCellArith(b, s.Count, true)
		return b
	case *parser.ReadStatement:
		// ssize_t read(int fd, void *buf, size_t count); status ignored.
		p := cg.loadPtr(b)
		call := b.NewCall(cg.readFn,
			constant.NewInt(types.I32, 0),
			p,
			constant.NewInt(types.I64, 1))
		call.SetName(cg.nextTmp())
		return b
	case *parser.WriteStatement:
		// ssize_t write(int fd, const void *buf, size_t count); status ignored.
		p := cg.loadPtr(b)
		call := b.NewCall(cg.writeFn,
			constant.NewInt(types.I32, 1),
			p,
			constant.NewInt(types.I64, 1))
		call.SetName(cg.nextTmp())
		return b
	case *parser.LoopStatement:
		return cg.generateLoop(b, s)
	default:
		debug.PrintWarning("unknown statement kind %T, skipping", stmt)
		return b
	}
}

// generateMove shifts the pointer by cells cells and emits the guard that
// follows every pointer move.
func (cg *CodeGenerator) generateMove(b *ir.Block, cells int64) *ir.Block {
	p := cg.loadPtr(b)
	np := b.NewGetElementPtr(types.I8, p, constant.NewInt(types.I64, cells*cellStride))
	np.SetName(cg.nextTmp())
	b.NewStore(np, cg.ptrSlot)
	return cg.generateBoundsCheck(b, np)
}

// generateCellArith loads the current cell, adds or subtracts count, and
// stores the result back. Every arithmetic statement does a fresh load and
// store; cell values are never cached across statements.
func (cg *CodeGenerator) generateCellArith(b *ir.Block, count int, subtract bool) {
	p := cg.loadPtr(b)
	v := b.NewLoad(types.I8, p)
	v.SetName(cg.nextTmp())

	// Cells are bytes; counts wrap mod 256.
	n := constant.NewInt(types.I8, int64(uint8(count)))
	var res value.Value
	if subtract {
		r := b.NewSub(v, n)
		r.SetName(cg.nextTmp())
		res = r
	} else {
		r := b.NewAdd(v, n)
		r.SetName(cg.nextTmp())
		res = r
	}
	b.NewStore(res, p)
}

// generateLoop lowers a loop with the test at both top and bottom: jump
// past the body when the cell is zero on entry, re-test after each
// iteration. Begin/end labels are freshly allocated per loop and never
// reused, so arbitrarily nested loops cannot collide.
func (cg *CodeGenerator) generateLoop(b *ir.Block, s *parser.LoopStatement) *ir.Block {
	c := cg.labelCounter
	cg.labelCounter++
	begin := cg.fn.NewBlock(fmt.Sprintf("loop%d", c))
	end := cg.fn.NewBlock(fmt.Sprintf("end%d", c))

	cond := cg.loadCellNonzero(b)
	b.NewCondBr(cond, begin, end)

	cur := cg.generateBlock(begin, s.Body)

	cond = cg.loadCellNonzero(cur)
	cur.NewCondBr(cond, begin, end)

	return end
}

// loadCellNonzero loads the current cell and compares it against zero.
func (cg *CodeGenerator) loadCellNonzero(b *ir.Block) value.Value {
	p := cg.loadPtr(b)
	v := b.NewLoad(types.I8, p)
	v.SetName(cg.nextTmp())
	cond := b.NewICmp(enum.IPredNE, v, constant.NewInt(types.I8, 0))
	cond.SetName(cg.nextTmp())
	return cond
}

// generateBoundsCheck emits the guard that follows a pointer move: the
// pointer's offset from the tape base must stay under half the allocation,
// otherwise the procedure returns status 1 immediately. The comparison is
// a signed greater-than against the half range only; offsets below the
// base are negative and also satisfy it. That matches the original
// magnitude check and is kept as-is.
func (cg *CodeGenerator) generateBoundsCheck(b *ir.Block, p value.Value) *ir.Block {
	contName := cg.nextLabel("cont")
	haltName := cg.nextLabel("halt")

	addr := b.NewPtrToInt(p, types.I64)
	addr.SetName(cg.nextTmp())
	offset := b.NewSub(addr, cg.baseInt)
	offset.SetName(cg.nextTmp())
	inBounds := b.NewICmp(enum.IPredSGT, constant.NewInt(types.I64, cg.tapeLen/2), offset)
	inBounds.SetName(cg.nextTmp())

	halt := cg.fn.NewBlock(haltName)
	cont := cg.fn.NewBlock(contName)
	b.NewCondBr(inBounds, cont, halt)

	halt.NewRet(constant.NewInt(types.I32, 1))
	return cont
}
