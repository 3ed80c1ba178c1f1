package program

// PrimitiveType identifies a geometry-stage input or output primitive
// topology.
type PrimitiveType uint8

const (
	PrimPoints PrimitiveType = iota
	PrimLines
	PrimTriangles
	PrimLinesAdjacency
	PrimTrianglesAdjacency
	PrimLineStrip
	PrimTriangleStrip
)

// VerticesPerPrimitive returns the number of vertices a single instance of
// the given input primitive provides, used to synthesize gl_VerticesIn
// when concatenating geometry-stage sources (spec.md §4.1).
func VerticesPerPrimitive(p PrimitiveType) int {
	switch p {
	case PrimPoints:
		return 1
	case PrimLines:
		return 2
	case PrimTriangles:
		return 3
	case PrimLinesAdjacency:
		return 4
	case PrimTrianglesAdjacency:
		return 6
	default:
		return 3
	}
}

// FeedbackMode selects how transform-feedback varyings are captured.
type FeedbackMode uint8

const (
	FeedbackInterleaved FeedbackMode = iota
	FeedbackSeparate
)

// TransformFeedbackConfig is the program's transform-feedback request,
// populated by the caller before Link (spec.md §3).
type TransformFeedbackConfig struct {
	Mode          FeedbackMode
	VaryingNames  []string
}

// GeometryConfig is the program's geometry-stage configuration, populated
// by the caller before Link (spec.md §3).
type GeometryConfig struct {
	InputType    PrimitiveType
	OutputType   PrimitiveType
	VerticesOut  int
}

// ShaderProgram is the linkable container (spec.md §3): the compiled
// per-stage units supplied by the caller, the linked stage programs
// published on a successful link, and the program-wide symbol tables the
// linker builds while merging stages.
type ShaderProgram struct {
	Shaders []CompiledUnit

	VertexProgram   *StageProgram
	GeometryProgram *StageProgram
	FragmentProgram *StageProgram

	Varyings   *VaryingTable
	Uniforms   *UniformTable
	Attributes *AttributeTable

	LinkStatus bool
	InfoLog    string

	Feedback TransformFeedbackConfig
	Geometry GeometryConfig

	// UserAttribBindings is the caller-populated name -> slot pre-binding
	// table consulted by the attribute resolver (spec.md §4.4). Populated
	// before Link, e.g. via an equivalent of glBindAttribLocation.
	UserAttribBindings map[string]int
}

// NewShaderProgram returns an empty, unlinked ShaderProgram.
func NewShaderProgram() *ShaderProgram {
	return &ShaderProgram{UserAttribBindings: make(map[string]int)}
}

// ResetLinkState clears LinkStatus, InfoLog, and the program-wide symbol
// tables, and drops any previously published linked stage programs. Called
// at the start of every link attempt (spec.md §3, §5 Resource ownership):
// any pre-existing table instance is released before a fresh one is built.
func (sp *ShaderProgram) ResetLinkState() {
	sp.LinkStatus = false
	sp.InfoLog = ""
	sp.Varyings = NewVaryingTable()
	sp.Uniforms = NewUniformTable()
	sp.Attributes = NewAttributeTable()
	sp.VertexProgram = nil
	sp.GeometryProgram = nil
	sp.FragmentProgram = nil
}

// UnitsOfStage returns every compiled unit of the given stage type, in the
// order they were attached to the program.
func (sp *ShaderProgram) UnitsOfStage(stage StageType) []*CompiledUnit {
	var out []*CompiledUnit
	for i := range sp.Shaders {
		if sp.Shaders[i].Stage == stage {
			out = append(out, &sp.Shaders[i])
		}
	}
	return out
}

// StageProgramFor returns the linked StageProgram for stage, or nil if that
// stage isn't present in this linked program.
func (sp *ShaderProgram) StageProgramFor(stage StageType) *StageProgram {
	switch stage {
	case StageVertex:
		return sp.VertexProgram
	case StageGeometry:
		return sp.GeometryProgram
	case StageFragment:
		return sp.FragmentProgram
	default:
		return nil
	}
}

// SetStageProgram publishes prog as the linked program for its own Stage.
func (sp *ShaderProgram) SetStageProgram(prog *StageProgram) {
	switch prog.Stage {
	case StageVertex:
		sp.VertexProgram = prog
	case StageGeometry:
		sp.GeometryProgram = prog
	case StageFragment:
		sp.FragmentProgram = prog
	}
}
