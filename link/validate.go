package link

import "github.com/gogpu/shaderlink/program"

// validateProgram implements spec.md §4.6: the cross-stage checks run once
// every stage has been merged and had its metadata recomputed.
func validateProgram(ctx *Context, prog *program.ShaderProgram) *LinkError {
	if ctx.Profile == ProfileStrictES && (prog.VertexProgram == nil || prog.FragmentProgram == nil) {
		return linkErrorf(InputInvalid, "both a vertex and a fragment shader are required")
	}

	if prog.VertexProgram != nil {
		if prog.VertexProgram.OutputsWritten&(1<<program.VertResultPos) == 0 {
			return linkErrorf(CrossStageMismatch, "gl_Position was not written by vertex shader")
		}
	}

	if prog.GeometryProgram != nil {
		if prog.VertexProgram == nil {
			return linkErrorf(CrossStageMismatch, "geometry shader without a vertex shader is illegal")
		}
		if prog.Geometry.VerticesOut == 0 {
			return linkErrorf(CrossStageMismatch, "GEOMETRY_VERTICES_OUT is zero")
		}
	}

	if prog.FragmentProgram != nil {
		varyingRead := prog.FragmentProgram.InputsRead >> uint(program.FragAttribVar0)
		var varyingWritten uint32
		if prog.VertexProgram != nil {
			varyingWritten = uint32(prog.VertexProgram.OutputsWritten >> uint(program.VertResultVar0))
		}
		if varyingRead&varyingWritten != varyingRead {
			return linkErrorf(CrossStageMismatch, "fragment program using varying vars not written by vertex shader")
		}

		outputsWritten := prog.FragmentProgram.OutputsWritten
		if outputsWritten&(1<<program.FragResultColor) != 0 && outputsWritten >= (1<<program.FragResultData0) {
			return linkErrorf(CrossStageMismatch, "fragment program cannot write both gl_FragColor and gl_FragData[]")
		}
	}

	if err := validateTransformFeedback(ctx, prog); err != nil {
		return err
	}

	return nil
}

// validateTransformFeedback implements the transform-feedback checks of
// spec.md §4.6.
func validateTransformFeedback(ctx *Context, prog *program.ShaderProgram) *LinkError {
	names := prog.Feedback.VaryingNames
	if len(names) == 0 {
		return nil
	}

	if prog.VertexProgram == nil {
		return linkErrorf(CrossStageMismatch, "transform feedback without vertex shader")
	}

	var totalComps int
	var varyingMask uint64

	for _, name := range names {
		slot := prog.Varyings.Lookup(name)
		if slot < 0 {
			return linkErrorf(CrossStageMismatch, "vertex shader does not emit %s", name)
		}
		if varyingMask&(1<<uint(slot)) != 0 {
			return linkErrorf(CrossStageMismatch, "duplicated transform feedback varying name: %s", name)
		}
		varyingMask |= 1 << uint(slot)

		totalComps += prog.Varyings.At(slot).DataType.SizeInFloats()
	}

	var maxComps int
	if prog.Feedback.Mode == program.FeedbackInterleaved {
		maxComps = ctx.MaxTransformFeedbackInterleavedComponents
	} else {
		maxComps = ctx.MaxTransformFeedbackSeparateComponents
	}

	if totalComps > maxComps {
		return linkErrorf(LimitExceeded, "Too many feedback components: %d, max is %d", totalComps, maxComps)
	}

	return nil
}

// builtinVaryingNames gives the introspection name for a built-in
// (pre-defined) vertex/geometry output register, used by
// updateVaryingVarList to populate the program-wide varying table with
// names like gl_Position even though they're never explicitly declared as
// varyings (spec.md §4.6 "update_varying_var_list" equivalent).
var builtinVaryingNames = map[int]string{
	program.VertResultPos:    "gl_Position",
	program.VertResultColor0: "gl_FrontColor",
	program.VertResultColor1: "gl_FrontSecondaryColor",
	program.VertResultFogc:   "gl_FogFragCoord",
}

// updateVaryingVarList appends names for any built-in output registers
// written by the vertex stage that aren't already in the program-wide
// varying table, so later introspection sees them (spec.md §4.6). Outputs
// written by a geometry stage are not scanned.
func updateVaryingVarList(prog *program.ShaderProgram) {
	addBuiltins := func(written uint64, names map[int]string, maxIndex int) {
		for i := 0; i < maxIndex; i++ {
			if written&(1<<uint(i)) == 0 {
				continue
			}
			name, ok := names[i]
			if !ok {
				continue
			}
			if prog.Varyings.Lookup(name) >= 0 {
				continue
			}
			prog.Varyings.Add(program.Varying{Name: name, Size: 4, DataType: program.TypeVec4})
		}
	}

	if prog.VertexProgram != nil {
		addBuiltins(prog.VertexProgram.OutputsWritten, builtinVaryingNames, program.VertResultVar0)
	}
}
