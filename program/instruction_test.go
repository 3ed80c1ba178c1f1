package program

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInstruction_SrcRegsRespectsOpcodeArity(t *testing.T) {
	inst := Instruction{
		Opcode: OpMov, // arity 1
		Src: [3]Operand{
			{File: FileTemporary, Index: 5},
			{File: FileInput, Index: 0}, // unused placeholder, must be ignored
			{File: FileInput, Index: 0}, // unused placeholder, must be ignored
		},
	}

	regs := inst.SrcRegs()
	require.Len(t, regs, 1)
	require.Equal(t, FileTemporary, regs[0].File)
	require.Equal(t, 5, regs[0].Index)
}

func TestInstruction_SrcRegsFullArity(t *testing.T) {
	inst := Instruction{
		Opcode: OpMad, // arity 3
		Src: [3]Operand{
			{File: FileTemporary, Index: 0},
			{File: FileTemporary, Index: 1},
			{File: FileTemporary, Index: 2},
		},
	}
	require.Len(t, inst.SrcRegs(), 3)
}

func TestInstruction_IsTexInstruction(t *testing.T) {
	require.True(t, (&Instruction{Opcode: OpTex}).IsTexInstruction())
	require.False(t, (&Instruction{Opcode: OpMov}).IsTexInstruction())
}

func TestOperand_HasIndex2(t *testing.T) {
	idx := 3
	op := Operand{Index2: &idx}
	require.True(t, op.HasIndex2())
	require.False(t, (&Operand{}).HasIndex2())
}
