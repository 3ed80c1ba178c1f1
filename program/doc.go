// Package program defines the data model the shader program linker
// operates on: compiled per-stage register programs, their instruction
// streams, and the program-wide symbol tables the linker builds while
// merging stages together.
//
// # Structure
//
// The model is organized around a ShaderProgram, the linkable container,
// which holds:
//   - Shaders: the compiled per-stage units supplied by the front end
//   - VertexProgram / GeometryProgram / FragmentProgram: the linked stage
//     programs, populated on a successful Link
//   - Varyings / Uniforms / Attributes: program-wide symbol tables
//
// Each StageProgram carries an instruction stream operating on a small set
// of register files (input, output, temporary, uniform, sampler, ...); see
// Instruction and Operand.
//
// This package has no knowledge of how programs are linked together; see
// package link for that.
package program
