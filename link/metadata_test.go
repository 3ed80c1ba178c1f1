package link

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/shaderlink/program"
)

func TestRecomputeMetadata_BasicMasksAndCounts(t *testing.T) {
	ctx := DefaultContext()
	stage := program.NewStageProgram(program.StageVertex)
	stage.Instructions = []program.Instruction{
		{
			Opcode: program.OpMov,
			Dst:    program.Operand{File: program.FileTemporary, Index: 2},
			Src:    [3]program.Operand{{File: program.FileInput, Index: program.VertAttribGeneric0}},
		},
		{
			Opcode: program.OpMov,
			Dst:    program.Operand{File: program.FileOutput, Index: program.VertResultPos},
			Src:    [3]program.Operand{{File: program.FileTemporary, Index: 2}},
		},
	}

	recomputeMetadata(ctx, stage)

	require.Equal(t, uint32(1)<<program.VertAttribGeneric0, stage.InputsRead)
	require.Equal(t, uint64(1)<<program.VertResultPos, stage.OutputsWritten)
	require.Equal(t, 3, stage.NumTemporaries)
}

func TestRecomputeMetadata_RelativeAddressingExpandsFullRange(t *testing.T) {
	ctx := DefaultContext()
	stage := program.NewStageProgram(program.StageFragment)
	stage.Instructions = []program.Instruction{{
		Opcode: program.OpMov,
		Dst:    program.Operand{File: program.FileOutput, Index: program.FragResultColor},
		Src: [3]program.Operand{{
			File: program.FileInput, Index: program.FragAttribVar0, RelAddr: true,
		}},
	}}

	recomputeMetadata(ctx, stage)

	want := bitRange32(program.FragAttribVar0, program.FragAttribVar0+ctx.MaxVarying-1)
	require.Equal(t, want, stage.InputsRead)
}

func TestRecomputeMetadata_UnusedSrcSlotsIgnored(t *testing.T) {
	ctx := DefaultContext()
	stage := program.NewStageProgram(program.StageVertex)
	// OpMov has arity 1: Src[1]/Src[2] are zero-valued placeholders and must
	// not be counted as reads of input register 0.
	stage.Instructions = []program.Instruction{{
		Opcode: program.OpMov,
		Dst:    program.Operand{File: program.FileOutput, Index: program.VertResultPos},
		Src:    [3]program.Operand{{File: program.FileInput, Index: program.VertAttribGeneric0}},
	}}

	recomputeMetadata(ctx, stage)

	require.Equal(t, uint32(1)<<program.VertAttribGeneric0, stage.InputsRead)
}
