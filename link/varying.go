package link

import (
	"fmt"

	"github.com/gogpu/shaderlink/program"
)

// mergeVaryings implements spec.md §4.2: rewrite stage's VARYING-file
// operands to INPUT/OUTPUT against the program-wide varying table, adding
// new entries as needed and checking size/centroid/invariant agreement for
// names already present.
func mergeVaryings(ctx *Context, prog *program.ShaderProgram, stage *program.StageProgram) *LinkError {
	firstSrc, firstDst, srcFile, dstFile := stageVaryingBase(stage.Stage)

	// Collect the stage's local varying parameter entries in index order.
	var localVaryings []int
	for i := range stage.Parameters.Params {
		if stage.Parameters.Params[i].Kind == program.ParamVarying {
			localVaryings = append(localVaryings, i)
		}
	}

	// map[localParamIndex] = program-wide varying slot
	slotMap := make(map[int]int, len(localVaryings))

	for _, i := range localVaryings {
		p := &stage.Parameters.Params[i]

		slot := prog.Varyings.Lookup(p.Name)
		if slot >= 0 {
			existing := prog.Varyings.At(slot)
			if existing.Size != p.Size {
				return linkErrorf(SymbolMismatch, "mismatched varying variable types for %q", p.Name)
			}
			if !program.Agree(existing.Flags, p.Flags, program.FlagCentroid) {
				return linkErrorf(SymbolMismatch, "centroid modifier mismatch for %q", p.Name)
			}
			if !program.Agree(existing.Flags, p.Flags, program.FlagInvariant) {
				return linkErrorf(SymbolMismatch, "invariant modifier mismatch for %q", p.Name)
			}
		} else {
			var err error
			slot, err = prog.Varyings.Add(program.Varying{
				Name:     p.Name,
				Size:     p.Size,
				DataType: p.DataType,
				Flags:    p.Flags,
			})
			if err != nil {
				return linkErrorf(SymbolMismatch, "%v", err)
			}
		}

		if prog.Varyings.Len() > ctx.MaxVarying {
			return linkErrorf(LimitExceeded, "too many varying variables")
		}

		slotMap[i] = slot
	}

	recordVaryingFlags(stage, firstDst, slotMap, localVaryings)

	for idx := range stage.Instructions {
		inst := &stage.Instructions[idx]
		if inst.Dst.File == program.FileVarying {
			slot, ok := slotMap[inst.Dst.Index]
			if !ok {
				return linkErrorf(SymbolMismatch, "unmapped varying reference in %s shader", stage.Stage)
			}
			inst.Dst.File = dstFile
			inst.Dst.Index = slot + firstDst
		}
		for j := range inst.Src {
			if inst.Src[j].File != program.FileVarying {
				continue
			}
			slot, ok := slotMap[inst.Src[j].Index]
			if !ok {
				return linkErrorf(SymbolMismatch, "unmapped varying reference in %s shader", stage.Stage)
			}
			inst.Src[j].File = srcFile
			inst.Src[j].Index = slot + firstSrc
		}
	}

	// These are recomputed by the metadata pass once all merges complete
	// (spec.md §4.5); clear the stale pre-merge values now.
	stage.InputsRead = 0
	stage.OutputsWritten = 0

	return nil
}

// recordVaryingFlags writes each merged varying's qualifier flags into the
// stage's Input/OutputFlags map at its rewritten register index, for every
// register a multi-register (array or large-type) varying spans.
func recordVaryingFlags(stage *program.StageProgram, firstDst int, slotMap map[int]int, localVaryings []int) {
	flags := stage.OutputFlags
	if stage.Stage == program.StageFragment {
		flags = stage.InputFlags
	}
	for _, i := range localVaryings {
		p := &stage.Parameters.Params[i]
		slot := slotMap[i]
		regs := (p.Size + 3) / 4
		if regs < 1 {
			regs = 1
		}
		for r := 0; r < regs; r++ {
			flags[firstDst+slot+r] = p.Flags
		}
	}
}

// stageVaryingBase returns the register-file base indices and file tags a
// stage rewrites its VARYING operands to (spec.md §4.2): vertex varyings
// become program outputs, fragment varyings become program inputs, and
// geometry reads from GEOM_ATTRIB_VAR0 but writes to GEOM_RESULT_VAR0.
func stageVaryingBase(stage program.StageType) (firstSrc, firstDst int, srcFile, dstFile program.OperandFile) {
	switch stage {
	case program.StageVertex:
		return program.VertResultVar0, program.VertResultVar0, program.FileOutput, program.FileOutput
	case program.StageGeometry:
		return program.GeomAttribVar0, program.GeomResultVar0, program.FileInput, program.FileOutput
	case program.StageFragment:
		return program.FragAttribVar0, program.FragAttribVar0, program.FileInput, program.FileInput
	default:
		panic(fmt.Sprintf("mergeVaryings: unknown stage %v", stage))
	}
}
