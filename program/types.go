package program

import "fmt"

// StageType identifies one of the three pipeline stages a linker deals with.
type StageType uint8

const (
	StageVertex StageType = iota
	StageGeometry
	StageFragment
)

// String returns a human-readable stage name.
func (s StageType) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageGeometry:
		return "geometry"
	case StageFragment:
		return "fragment"
	default:
		return fmt.Sprintf("StageType(%d)", uint8(s))
	}
}

// OperandFile selects the register bank an Operand's Index refers into.
type OperandFile uint8

const (
	FileInput OperandFile = iota
	FileOutput
	FileTemporary
	FileVarying // pre-link only; rewritten to Input/Output by the varying merger
	FileUniform
	FileSampler
	FileState
	FileAddress
	FileConstant
)

// String returns a human-readable file-tag name.
func (f OperandFile) String() string {
	switch f {
	case FileInput:
		return "INPUT"
	case FileOutput:
		return "OUTPUT"
	case FileTemporary:
		return "TEMPORARY"
	case FileVarying:
		return "VARYING"
	case FileUniform:
		return "UNIFORM"
	case FileSampler:
		return "SAMPLER"
	case FileState:
		return "STATE"
	case FileAddress:
		return "ADDRESS"
	case FileConstant:
		return "CONSTANT"
	default:
		return fmt.Sprintf("OperandFile(%d)", uint8(f))
	}
}

// Opcode identifies an instruction operation. The linker does not interpret
// opcode semantics beyond recognizing texture instructions (IsTexture) and
// opcode arity (NumSrcRegs); full decoding is a code-generation concern, out
// of scope for the linker.
type Opcode uint16

const (
	OpNop Opcode = iota
	OpMov
	OpAdd
	OpMul
	OpMad
	OpDp3
	OpDp4
	OpMin
	OpMax
	OpRsq
	OpTex
	OpTxb
	OpTxp
	OpTxd
	OpEnd
)

// texOpcodes is the set of opcodes that read a sampler.
var texOpcodes = map[Opcode]bool{
	OpTex: true,
	OpTxb: true,
	OpTxp: true,
	OpTxd: true,
}

// IsTexture reports whether op reads a texture sampler.
func (op Opcode) IsTexture() bool {
	return texOpcodes[op]
}

// numSrcRegs gives the number of source operands each opcode actually uses;
// unused trailing Instruction.Src entries are ignored by every pass.
var numSrcRegs = map[Opcode]int{
	OpNop: 0,
	OpMov: 1,
	OpAdd: 2,
	OpMul: 2,
	OpMad: 3,
	OpDp3: 2,
	OpDp4: 2,
	OpMin: 2,
	OpMax: 2,
	OpRsq: 1,
	OpTex: 1,
	OpTxb: 1,
	OpTxp: 1,
	OpTxd: 2,
	OpEnd: 0,
}

// NumSrcRegs returns how many of an instruction's source operands are
// actually read for this opcode.
func (op Opcode) NumSrcRegs() int {
	if n, ok := numSrcRegs[op]; ok {
		return n
	}
	return 3
}

// DataType is the GLSL-like scalar/vector/matrix/sampler type of a
// parameter-list entry.
type DataType uint8

const (
	TypeFloat DataType = iota
	TypeVec2
	TypeVec3
	TypeVec4
	TypeMat2
	TypeMat3
	TypeMat4
	TypeInt
	TypeBool
	TypeSampler2D
	TypeSamplerCube
	TypeSampler2DShadow
)

// SizeInFloats returns the number of floats a value of this type occupies,
// with each matrix column padded to a full 4-float register.
func (t DataType) SizeInFloats() int {
	switch t {
	case TypeFloat, TypeInt, TypeBool:
		return 1
	case TypeVec2:
		return 2
	case TypeVec3:
		return 3
	case TypeVec4, TypeSampler2D, TypeSamplerCube, TypeSampler2DShadow:
		return 4
	case TypeMat2:
		return 8
	case TypeMat3:
		return 12
	case TypeMat4:
		return 16
	default:
		return 4
	}
}

// TextureTarget identifies the texture dimensionality a sampler instruction
// addresses.
type TextureTarget uint8

const (
	Target2D TextureTarget = iota
	Target3D
	TargetCube
	Target2DArray
	TargetRect
)

// ParamKind classifies a StageProgram parameter-list entry.
type ParamKind uint8

const (
	ParamUniform ParamKind = iota
	ParamSampler
	ParamVarying
	ParamStateVar
)

// ParamFlags carries per-varying qualifier bits, checked for agreement
// across stages during varying merging.
type ParamFlags uint32

const (
	FlagCentroid ParamFlags = 1 << iota
	FlagInvariant
)

// Agree reports whether flags f and g agree on every bit set in mask.
func Agree(f, g, mask ParamFlags) bool {
	return f&mask == g&mask
}
