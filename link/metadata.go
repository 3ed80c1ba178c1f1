package link

import "github.com/gogpu/shaderlink/program"

// recomputeMetadata implements spec.md §4.5: after instructions have been
// rewritten by the varying/uniform/attribute passes, recompute InputsRead,
// OutputsWritten, NumTemporaries and NumAddressRegs on stage from its final
// instruction stream. SamplersUsed/ShadowSamplers are set by mergeUniforms.
func recomputeMetadata(ctx *Context, stage *program.StageProgram) {
	var inputsRead uint32
	var outputsWritten uint64
	maxTemp := -1
	maxAddr := -1

	for idx := range stage.Instructions {
		inst := &stage.Instructions[idx]

		if inst.Dst.File == program.FileTemporary && inst.Dst.Index > maxTemp {
			maxTemp = inst.Dst.Index
		}
		if inst.Dst.File == program.FileAddress && inst.Dst.Index > maxAddr {
			maxAddr = inst.Dst.Index
		}
		if inst.Dst.File == program.FileOutput {
			outputsWritten |= outputsWrittenMask(stage.Stage, inst.Dst.Index, inst.Dst.RelAddr, ctx)
		}

		for _, src := range inst.SrcRegs() {
			if src.File == program.FileTemporary && src.Index > maxTemp {
				maxTemp = src.Index
			}
			if src.File == program.FileAddress && src.Index > maxAddr {
				maxAddr = src.Index
			}
			if src.File == program.FileInput {
				inputsRead |= inputsReadMask(stage.Stage, src.Index, src.RelAddr, ctx)
			}
		}
	}

	stage.NumTemporaries = maxTemp + 1
	stage.NumAddressRegs = maxAddr + 1
	stage.InputsRead = inputsRead
	stage.OutputsWritten = outputsWritten
}

// inputsReadMask computes the bitmask of inputs a single INPUT operand may
// reference, expanding to the owning array's full range when relAddr
// indicates relative (indexed) addressing (spec.md §4.5, §6).
func inputsReadMask(stage program.StageType, index int, relAddr bool, ctx *Context) uint32 {
	mask := uint32(1) << uint(index)
	if !relAddr {
		return mask
	}

	switch stage {
	case program.StageVertex:
		switch index {
		case program.VertAttribTex0:
			return bitRange32(program.VertAttribTex0, program.VertAttribTex0+ctx.MaxTextureCoordUnits-1)
		case program.VertAttribGeneric0:
			return ^uint32(0) &^ (uint32(1)<<uint(program.VertAttribGeneric0) - 1)
		}
	case program.StageFragment:
		switch index {
		case program.FragAttribTex0:
			return bitRange32(program.FragAttribTex0, program.FragAttribTex0+ctx.MaxTextureCoordUnits-1)
		case program.FragAttribVar0:
			return bitRange32(program.FragAttribVar0, program.FragAttribVar0+ctx.MaxVarying-1)
		}
	case program.StageGeometry:
		if index == program.GeomAttribVar0 {
			return bitRange32(program.GeomAttribVar0, program.GeomAttribVar0+ctx.MaxVarying-1)
		}
	}
	return mask
}

// outputsWrittenMask is the OutputsWritten analog of inputsReadMask
// (spec.md §4.5, §6).
func outputsWrittenMask(stage program.StageType, index int, relAddr bool, ctx *Context) uint64 {
	mask := uint64(1) << uint(index)
	if !relAddr {
		return mask
	}

	switch stage {
	case program.StageVertex:
		switch index {
		case program.VertResultTex0:
			return bitRange64(program.VertResultTex0, program.VertResultTex0+ctx.MaxTextureCoordUnits-1)
		case program.VertResultVar0:
			return bitRange64(program.VertResultVar0, program.VertResultVar0+ctx.MaxVarying-1)
		}
	case program.StageFragment:
		if index == program.FragResultData0 {
			return bitRange64(program.FragResultData0, program.FragResultData0+ctx.MaxDrawBuffers-1)
		}
	case program.StageGeometry:
		switch index {
		case program.GeomResultTex0:
			return bitRange64(program.GeomResultTex0, program.GeomResultTex0+ctx.MaxTextureCoordUnits-1)
		case program.GeomResultVar0:
			return bitRange64(program.GeomResultVar0, program.GeomResultVar0+ctx.MaxVarying-1)
		}
	}
	return mask
}

func bitRange32(low, high int) uint32 {
	return ((uint32(1) << uint(high+1)) - 1) &^ ((uint32(1) << uint(low)) - 1)
}

func bitRange64(low, high int) uint64 {
	return ((uint64(1) << uint(high+1)) - 1) &^ ((uint64(1) << uint(low)) - 1)
}
