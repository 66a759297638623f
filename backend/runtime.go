// backend/runtime.go
package backend

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
)

// generateRuntime emits the prologue: one contiguous stack allocation for
// the tape and a pointer slot initialized to its base address. The base
// address is also captured as an integer once; every bounds check computes
// its offset against it.
func (cg *CodeGenerator) generateRuntime(b *ir.Block) {
	tapeType := types.NewArray(uint64(cg.tapeLen), types.I8)
	tape := b.NewAlloca(tapeType)
	tape.SetName("tape")

	zero := constant.NewInt(types.I64, 0)
	base := b.NewGetElementPtr(tapeType, tape, zero, zero)
	base.SetName("base")

	cg.ptrSlot = b.NewAlloca(types.I8Ptr)
	cg.ptrSlot.SetName("ptr")
	b.NewStore(base, cg.ptrSlot)

	baseInt := b.NewPtrToInt(base, types.I64)
	baseInt.SetName("base.addr")
	cg.baseInt = baseInt
}
