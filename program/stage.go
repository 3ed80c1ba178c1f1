package program

// AttributeParam is one entry of a vertex program's original attribute
// list: a generic vertex input's name, size, and type, as declared by the
// compiled unit before attribute slots are assigned.
type AttributeParam struct {
	Name     string
	Size     int
	DataType DataType
}

// StageProgram is one compiled or linked instruction stream for a single
// pipeline stage (spec.md §3). The same type is used both for a compiled
// unit's program (pre-link) and for the linker's working clone of it
// (post-link); the linker never mutates a compiled unit's StageProgram in
// place (spec.md §3 Lifecycle, §5 Resource ownership).
type StageProgram struct {
	Stage        StageType
	Instructions []Instruction
	Parameters   *ParameterList
	Attributes   []AttributeParam // vertex stage only

	InputsRead     uint32
	OutputsWritten uint64
	NumTemporaries int
	NumAddressRegs int
	SamplersUsed   uint32
	ShadowSamplers uint32

	// SamplerTargets is indexed by program-wide sampler unit; grown on
	// demand as units are assigned.
	SamplerTargets []TextureTarget

	// InputFlags/OutputFlags record the per-register qualifier bits
	// (centroid, invariant, ...) copied over during varying merging,
	// indexed by the stage's rewritten input/output register index.
	InputFlags  map[int]ParamFlags
	OutputFlags map[int]ParamFlags
}

// NewStageProgram returns an empty StageProgram for the given stage.
func NewStageProgram(stage StageType) *StageProgram {
	return &StageProgram{
		Stage:       stage,
		Parameters:  &ParameterList{},
		InputFlags:  make(map[int]ParamFlags),
		OutputFlags: make(map[int]ParamFlags),
	}
}

// SetSamplerTarget records the texture target bound to sampler unit,
// growing SamplerTargets as needed.
func (sp *StageProgram) SetSamplerTarget(unit int, target TextureTarget) {
	for len(sp.SamplerTargets) <= unit {
		sp.SamplerTargets = append(sp.SamplerTargets, Target2D)
	}
	sp.SamplerTargets[unit] = target
}

// Clone returns a deep copy of sp, suitable for the linker to mutate
// without affecting the source compiled unit (spec.md §3 Lifecycle).
func (sp *StageProgram) Clone() *StageProgram {
	if sp == nil {
		return nil
	}
	out := &StageProgram{
		Stage:          sp.Stage,
		Instructions:   make([]Instruction, len(sp.Instructions)),
		Parameters:     sp.Parameters.Clone(),
		Attributes:     append([]AttributeParam(nil), sp.Attributes...),
		InputsRead:     sp.InputsRead,
		OutputsWritten: sp.OutputsWritten,
		NumTemporaries: sp.NumTemporaries,
		NumAddressRegs: sp.NumAddressRegs,
		SamplersUsed:   sp.SamplersUsed,
		ShadowSamplers: sp.ShadowSamplers,
		SamplerTargets: append([]TextureTarget(nil), sp.SamplerTargets...),
		InputFlags:     make(map[int]ParamFlags, len(sp.InputFlags)),
		OutputFlags:    make(map[int]ParamFlags, len(sp.OutputFlags)),
	}
	copy(out.Instructions, sp.Instructions)
	for k, v := range sp.InputFlags {
		out.InputFlags[k] = v
	}
	for k, v := range sp.OutputFlags {
		out.OutputFlags[k] = v
	}
	return out
}

// CompiledUnit is one compiled shader source unit as supplied by the
// front end: a compile-status flag, whether it defines main and has
// unresolved references, its source text, and (if CompileStatus) the
// compiled register program (spec.md §6).
type CompiledUnit struct {
	Stage             StageType
	Source            string
	Pragmas           string
	CompileStatus     bool
	DefinesMain       bool
	HasUnresolvedRefs bool
	Program           *StageProgram
}
