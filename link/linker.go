package link

import (
	"github.com/gogpu/shaderlink/program"
)

// linkState names one step of the Linker's fixed pipeline (spec.md §4.7).
type linkState uint8

const (
	stateInit linkState = iota
	stateSelectMain
	stateClone
	stateMergeVaryings
	stateMergeUniforms
	stateResolveAttributes
	stateRecompute
	stateValidate
	stateNotify
	stateDone
	stateFailed
)

// Linker runs the fixed pipeline of spec.md §4.7 over a ShaderProgram.
type Linker struct {
	Compiler Compiler
	Notifier DriverNotifier

	// Log, if set, receives one line per state transition. Left nil the
	// linker core stays silent (spec.md §5); cmd/shaderlinkc wires a
	// logger in when --verbose is passed.
	Log func(state string, prog *program.ShaderProgram)
}

// NewLinker returns a Linker using compiler as its front-end collaborator.
// A nil notifier accepts every stage unconditionally.
func NewLinker(compiler Compiler, notifier DriverNotifier) *Linker {
	if notifier == nil {
		notifier = NotifierFunc(func(program.StageType, *program.StageProgram) bool { return true })
	}
	return &Linker{Compiler: compiler, Notifier: notifier}
}

// Link runs the linker's pipeline against prog, mutating it in place and
// returning the same *LinkError it also records as prog.InfoLog /
// prog.LinkStatus (spec.md §4.7, §7). A nil return means the link
// succeeded.
func (l *Linker) Link(ctx *Context, prog *program.ShaderProgram) error {
	prog.ResetLinkState()

	if lerr := l.link(ctx, prog); lerr != nil {
		prog.LinkStatus = false
		prog.InfoLog = lerr.Message
		prog.VertexProgram = nil
		prog.GeometryProgram = nil
		prog.FragmentProgram = nil
		return lerr
	}

	prog.LinkStatus = prog.VertexProgram != nil || prog.FragmentProgram != nil
	if !prog.LinkStatus {
		lerr := linkErrorf(InputInvalid, "no vertex or fragment shader attached")
		prog.InfoLog = lerr.Message
		return lerr
	}
	return nil
}

func (l *Linker) link(ctx *Context, prog *program.ShaderProgram) *LinkError {
	state := stateInit
	l.trace(state, prog)

	state = stateSelectMain
	l.trace(state, prog)
	vertexUnit, lerr := selectMainShader(prog, program.StageVertex, l.Compiler)
	if lerr != nil {
		return lerr
	}
	geomUnit, lerr := selectMainShader(prog, program.StageGeometry, l.Compiler)
	if lerr != nil {
		return lerr
	}
	fragUnit, lerr := selectMainShader(prog, program.StageFragment, l.Compiler)
	if lerr != nil {
		return lerr
	}

	state = stateClone
	l.trace(state, prog)
	var vertex, geom, frag *program.StageProgram
	var origVertexAttribs []program.AttributeParam
	var origVertexInputsRead uint32
	if vertexUnit != nil {
		origVertexAttribs = vertexUnit.Program.Attributes
		origVertexInputsRead = vertexUnit.Program.InputsRead
		vertex = vertexUnit.Program.Clone()
		prog.SetStageProgram(vertex)
	}
	if geomUnit != nil {
		geom = geomUnit.Program.Clone()
		prog.SetStageProgram(geom)
	}
	if fragUnit != nil {
		frag = fragUnit.Program.Clone()
		prog.SetStageProgram(frag)
	}

	stages := stagesInOrder(vertex, geom, frag)

	state = stateMergeVaryings
	l.trace(state, prog)
	for _, s := range stages {
		if lerr := mergeVaryings(ctx, prog, s); lerr != nil {
			return lerr
		}
	}

	state = stateMergeUniforms
	l.trace(state, prog)
	samplerUnit := 0
	for _, s := range stages {
		if lerr := mergeUniforms(ctx, prog, s, &samplerUnit); lerr != nil {
			return lerr
		}
	}

	state = stateResolveAttributes
	l.trace(state, prog)
	if vertex != nil {
		if lerr := resolveAttributes(ctx, prog, vertex, origVertexAttribs, origVertexInputsRead); lerr != nil {
			return lerr
		}
	}

	state = stateRecompute
	l.trace(state, prog)
	for _, s := range stages {
		recomputeMetadata(ctx, s)
	}

	state = stateValidate
	l.trace(state, prog)
	if lerr := validateProgram(ctx, prog); lerr != nil {
		return lerr
	}
	updateVaryingVarList(prog)

	state = stateNotify
	l.trace(state, prog)
	for _, s := range stages {
		if !l.Notifier.Notify(s.Stage, s) {
			return linkErrorf(DriverRejected, "%s program rejected by driver", s.Stage)
		}
	}

	state = stateDone
	l.trace(state, prog)
	return nil
}

func stagesInOrder(vertex, geom, frag *program.StageProgram) []*program.StageProgram {
	var out []*program.StageProgram
	for _, s := range []*program.StageProgram{vertex, geom, frag} {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

func (l *Linker) trace(state linkState, prog *program.ShaderProgram) {
	if l.Log == nil {
		return
	}
	l.Log(stateName(state), prog)
}

func stateName(s linkState) string {
	switch s {
	case stateInit:
		return "INIT"
	case stateSelectMain:
		return "SELECT_MAIN"
	case stateClone:
		return "CLONE"
	case stateMergeVaryings:
		return "MERGE_VARYINGS"
	case stateMergeUniforms:
		return "MERGE_UNIFORMS"
	case stateResolveAttributes:
		return "RESOLVE_ATTRIBUTES"
	case stateRecompute:
		return "RECOMPUTE"
	case stateValidate:
		return "VALIDATE"
	case stateNotify:
		return "NOTIFY"
	case stateDone:
		return "DONE"
	case stateFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}
