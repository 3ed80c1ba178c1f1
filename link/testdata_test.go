package link

import (
	"fmt"

	"github.com/gogpu/shaderlink/program"
)

// The types and decoders in this file turn a JSON scenario fixture
// (testdata/in/*.json) into a program.ShaderProgram with fully pre-compiled
// stage programs, so the golden test can exercise every merge/validate pass
// without going through the Compiler collaborator.

type scenarioFile struct {
	Context  *scenarioContext            `json:"context,omitempty"`
	Programs map[string]*scenarioProgram `json:"programs"`
	Feedback *scenarioFeedback           `json:"transform_feedback,omitempty"`
	Geometry *scenarioGeometry           `json:"geometry,omitempty"`
	Bindings map[string]int              `json:"attrib_bindings,omitempty"`
}

type scenarioContext struct {
	MaxVarying              int `json:"max_varying,omitempty"`
	MaxTextureImageUnits    int `json:"max_texture_image_units,omitempty"`
	MaxVertexGenericAttribs int `json:"max_vertex_generic_attribs,omitempty"`
}

type scenarioFeedback struct {
	Mode     string   `json:"mode"`
	Varyings []string `json:"varyings"`
}

type scenarioGeometry struct {
	InputType   string `json:"input_type"`
	VerticesOut int    `json:"vertices_out"`
}

type scenarioProgram struct {
	Parameters   []scenarioParam  `json:"parameters,omitempty"`
	Attributes   []scenarioAttrib `json:"attributes,omitempty"`
	Instructions []scenarioInst   `json:"instructions"`
}

type scenarioParam struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
	Size int    `json:"size"`
}

type scenarioAttrib struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

type scenarioInst struct {
	Op  string            `json:"op"`
	Dst scenarioOperand   `json:"dst"`
	Src []scenarioOperand `json:"src,omitempty"`
}

type scenarioOperand struct {
	File    string `json:"file"`
	Index   int    `json:"index"`
	RelAddr bool   `json:"rel_addr,omitempty"`
}

func buildShaderProgram(sf *scenarioFile) (*program.ShaderProgram, *Context, error) {
	sp := program.NewShaderProgram()
	for name, slot := range sf.Bindings {
		sp.UserAttribBindings[name] = slot
	}
	if sf.Feedback != nil {
		sp.Feedback.VaryingNames = sf.Feedback.Varyings
		if sf.Feedback.Mode == "separate" {
			sp.Feedback.Mode = program.FeedbackSeparate
		}
	}
	if sf.Geometry != nil {
		sp.Geometry.VerticesOut = sf.Geometry.VerticesOut
		sp.Geometry.InputType = parseScenarioPrimitive(sf.Geometry.InputType)
	}

	for stageName, sprog := range sf.Programs {
		stage, err := parseScenarioStage(stageName)
		if err != nil {
			return nil, nil, err
		}
		stageProg, err := decodeStageProgram(stage, sprog)
		if err != nil {
			return nil, nil, err
		}
		sp.Shaders = append(sp.Shaders, program.CompiledUnit{
			Stage:         stage,
			CompileStatus: true,
			DefinesMain:   true,
			Program:       stageProg,
		})
	}

	ctx := DefaultContext()
	if sf.Context != nil {
		if sf.Context.MaxVarying != 0 {
			ctx.MaxVarying = sf.Context.MaxVarying
		}
		if sf.Context.MaxTextureImageUnits != 0 {
			ctx.MaxTextureImageUnits = sf.Context.MaxTextureImageUnits
		}
		if sf.Context.MaxVertexGenericAttribs != 0 {
			ctx.MaxVertexGenericAttribs = sf.Context.MaxVertexGenericAttribs
		}
	}

	return sp, ctx, nil
}

func decodeStageProgram(stage program.StageType, sprog *scenarioProgram) (*program.StageProgram, error) {
	out := program.NewStageProgram(stage)

	for _, p := range sprog.Parameters {
		kind, err := parseScenarioParamKind(p.Kind)
		if err != nil {
			return nil, err
		}
		out.Parameters.Add(program.Param{
			Name:     p.Name,
			Kind:     kind,
			Size:     p.Size,
			DataType: program.TypeVec4,
			Used:     true,
		})
	}

	for _, a := range sprog.Attributes {
		out.Attributes = append(out.Attributes, program.AttributeParam{
			Name:     a.Name,
			Size:     a.Size,
			DataType: program.TypeVec4,
		})
	}

	for _, si := range sprog.Instructions {
		inst := program.Instruction{Opcode: parseScenarioOp(si.Op)}
		var err error
		inst.Dst, err = decodeOperand(si.Dst, out)
		if err != nil {
			return nil, err
		}
		for i, s := range si.Src {
			if i >= len(inst.Src) {
				break
			}
			inst.Src[i], err = decodeOperand(s, out)
			if err != nil {
				return nil, err
			}
		}
		out.Instructions = append(out.Instructions, inst)

		if inst.Dst.File == program.FileInput {
			out.InputsRead |= 1 << uint(inst.Dst.Index)
		}
		// Only the operands the opcode actually reads count: Src entries
		// beyond an opcode's arity are zero-valued placeholders, and a
		// zero-valued Operand decodes as FileInput register 0.
		last := &out.Instructions[len(out.Instructions)-1]
		for _, s := range last.SrcRegs() {
			if s.File == program.FileInput {
				out.InputsRead |= 1 << uint(s.Index)
			}
		}
	}

	return out, nil
}

func decodeOperand(so scenarioOperand, sp *program.StageProgram) (program.Operand, error) {
	file, err := parseScenarioFile(so.File)
	if err != nil {
		return program.Operand{}, err
	}
	idx := so.Index
	if file == program.FileVarying {
		idx = sp.Parameters.IndexOf(varyingNameAt(sp, so.Index))
	}
	return program.Operand{File: file, Index: idx, RelAddr: so.RelAddr}, nil
}

// varyingNameAt resolves a scenario's positional varying index (the i-th
// ParamVarying entry declared on the stage) to that parameter's name, so
// instructions can reference "the 2nd varying" without repeating its name.
func varyingNameAt(sp *program.StageProgram, position int) string {
	count := 0
	for i := range sp.Parameters.Params {
		if sp.Parameters.Params[i].Kind != program.ParamVarying {
			continue
		}
		if count == position {
			return sp.Parameters.Params[i].Name
		}
		count++
	}
	return ""
}

func parseScenarioStage(s string) (program.StageType, error) {
	switch s {
	case "vertex":
		return program.StageVertex, nil
	case "geometry":
		return program.StageGeometry, nil
	case "fragment":
		return program.StageFragment, nil
	default:
		return 0, fmt.Errorf("unknown scenario stage %q", s)
	}
}

func parseScenarioFile(s string) (program.OperandFile, error) {
	switch s {
	case "input":
		return program.FileInput, nil
	case "output":
		return program.FileOutput, nil
	case "temporary":
		return program.FileTemporary, nil
	case "varying":
		return program.FileVarying, nil
	case "uniform":
		return program.FileUniform, nil
	case "sampler":
		return program.FileSampler, nil
	case "state":
		return program.FileState, nil
	case "address":
		return program.FileAddress, nil
	case "constant":
		return program.FileConstant, nil
	default:
		return 0, fmt.Errorf("unknown scenario operand file %q", s)
	}
}

func parseScenarioParamKind(s string) (program.ParamKind, error) {
	switch s {
	case "uniform":
		return program.ParamUniform, nil
	case "sampler":
		return program.ParamSampler, nil
	case "varying":
		return program.ParamVarying, nil
	case "state_var":
		return program.ParamStateVar, nil
	default:
		return 0, fmt.Errorf("unknown scenario param kind %q", s)
	}
}

func parseScenarioOp(s string) program.Opcode {
	switch s {
	case "mov":
		return program.OpMov
	case "add":
		return program.OpAdd
	case "end":
		return program.OpEnd
	default:
		return program.OpNop
	}
}

func parseScenarioPrimitive(s string) program.PrimitiveType {
	switch s {
	case "lines":
		return program.PrimLines
	case "triangles":
		return program.PrimTriangles
	default:
		return program.PrimPoints
	}
}
