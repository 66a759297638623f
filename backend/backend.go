// backend/backend.go
package backend

import (
	"fmt"
	"strings"

	"wx-yz/bfc/debug"
	"wx-yz/bfc/parser"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// TapeCells is the number of cells a compiled program may address.
const TapeCells = 30000

// cellStride is the distance in bytes between adjacent cells. Cells are
// i8, so the tape is dense.
const cellStride = 1

// CodeGenerator lowers an AST into an LLVM IR module holding a single
// public main function with no parameters and an i32 status result. Every
// temporary and label is drawn from one of two monotonically increasing
// counters, so identifiers never collide and output is byte-identical for
// a given tree. A CodeGenerator is created per compilation and must not be
// reused across programs.
type CodeGenerator struct {
	tmpCounter   int
	labelCounter int
	tapeLen      int64 // bytes allocated for the tape

	fn      *ir.Func
	ptrSlot *ir.InstAlloca // i8* slot holding the current cell pointer
	baseInt value.Value    // tape base address as i64, for bounds offsets
	readFn  *ir.Func
	writeFn *ir.Func
}

// NewCodeGenerator creates a code generator with fresh counters.
func NewCodeGenerator() *CodeGenerator {
	return &CodeGenerator{
		// Twice the addressable range: the guard admits offsets below
		// half the allocation, so the usable tape is exactly TapeCells.
		tapeLen: 2 * TapeCells * cellStride,
	}
}

// Generate walks the AST once and returns the textual LLVM module. The
// error result is an extension point; generation itself cannot fail today.
func (cg *CodeGenerator) Generate(prog *parser.Block) (string, error) {
	m := ir.NewModule()

	// POSIX-style byte I/O, resolved by the backend toolchain.
	cg.readFn = m.NewFunc("read", types.I64,
		ir.NewParam("fd", types.I32),
		ir.NewParam("buf", types.I8Ptr),
		ir.NewParam("count", types.I64))
	cg.writeFn = m.NewFunc("write", types.I64,
		ir.NewParam("fd", types.I32),
		ir.NewParam("buf", types.I8Ptr),
		ir.NewParam("count", types.I64))

	cg.fn = m.NewFunc("main", types.I32)

	runtime := cg.fn.NewBlock("runtime")
	cg.generateRuntime(runtime)

	start := cg.fn.NewBlock("start")
	runtime.NewBr(start)

	debug.PrintBackend("lowering %d top-level statements", len(prog.Statements))
	cur := cg.generateBlock(start, prog)
	cur.NewRet(constant.NewInt(types.I32, 0))

	out := m.String()
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out, nil
}

// nextTmp allocates the next temporary name.
func (cg *CodeGenerator) nextTmp() string {
	c := cg.tmpCounter
	cg.tmpCounter++
	return fmt.Sprintf("v%d", c)
}

// nextLabel allocates the next label with the given prefix.
func (cg *CodeGenerator) nextLabel(prefix string) string {
	c := cg.labelCounter
	cg.labelCounter++
	return fmt.Sprintf("%s%d", prefix, c)
}

// loadPtr loads the current cell pointer out of its slot.
func (cg *CodeGenerator) loadPtr(b *ir.Block) value.Value {
	p := b.NewLoad(types.I8Ptr, cg.ptrSlot)
	p.SetName(cg.nextTmp())
	return p
}
