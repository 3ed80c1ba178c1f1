package link

import (
	"github.com/gogpu/shaderlink/program"
)

// mergeUniforms implements spec.md §4.3: record stage's uniform and sampler
// parameters in the program-wide uniform table, and remap stage-local
// sampler numbers to program-wide sampler units via samplerUnit, which is
// shared (and mutated) across every stage of one link attempt.
func mergeUniforms(ctx *Context, prog *program.ShaderProgram, stage *program.StageProgram, samplerUnit *int) *LinkError {
	samplerMap := make(map[int]int)

	for i := range stage.Parameters.Params {
		p := &stage.Parameters.Params[i]

		if (p.Kind == program.ParamUniform || p.Kind == program.ParamSampler) && p.Used {
			prog.Uniforms.Append(p.Name, stage.Stage, i, false)
		}

		// FIX NEEDED: state-var uniforms (gl_ModelViewMatrix and friends)
		// should also be added to the program-wide table; left unresolved
		// to match the unresolved question in the source this is based on.

		if p.Kind == program.ParamSampler && p.Used {
			oldUnit := int(p.Value[0])
			newUnit := *samplerUnit
			if newUnit >= ctx.MaxTextureImageUnits {
				return linkErrorf(LimitExceeded, "too many texture samplers (%d, max is %d)", newUnit, ctx.MaxTextureImageUnits)
			}
			samplerMap[oldUnit] = newUnit
			p.Value[0] = float32(newUnit)
			(*samplerUnit)++
		}
	}

	stage.SamplersUsed = 0
	stage.ShadowSamplers = 0
	for idx := range stage.Instructions {
		inst := &stage.Instructions[idx]
		if !inst.IsTexInstruction() {
			continue
		}
		newUnit, ok := samplerMap[inst.Src[0].SamplerUnit]
		if !ok {
			continue
		}
		inst.Src[0].SamplerUnit = newUnit
		stage.SetSamplerTarget(newUnit, inst.Src[0].TexTarget)
		stage.SamplersUsed |= 1 << uint(newUnit)
		if inst.Src[0].Shadow {
			stage.ShadowSamplers |= 1 << uint(newUnit)
		}
	}

	return nil
}
